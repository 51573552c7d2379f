// Comando admin: gestión de usuarios_api desde la terminal, sin pasar por HTTP.
//
//	admin listar
//	admin criar -usuario rita -email rita@linhagro.com.br -perfil rh   (senha por -senha o stdin)
//	admin senha -usuario rita
//	admin perfil -usuario rita -perfil gerente
//	admin ativar -usuario rita
//	admin desativar -usuario rita
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/usecase"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/infrastructure/postgres"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/config"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	db := postgres.NewDB(pool)
	defer db.Close()

	users := usecase.NewUserUseCase(postgres.NewUserRepository(db), cfg.Admin.AllowedEmailDomains, log)
	c := &cli{users: users, out: os.Stdout, in: os.Stdin}

	if err := c.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}
