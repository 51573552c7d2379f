package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	_ "github.com/y22pdf86w4-crypto/apilinhagrolitho/docs"
	appanalytics "github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/analytics"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/auth"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/filter"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/usecase"
	infrapdf "github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/infrastructure/pdf"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/infrastructure/postgres"
	httpRouter "github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/interfaces/http"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/config"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/jwt"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/logger"
)

// @title                       API Linhagro
// @version                     1.0
// @description                 Indicadores de atividades comerciais por vendedor.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("ids_bloqueados", len(cfg.Report.BlockedVendorIDs)).
		Msg("iniciando aplicación")
	if cfg.JWT.UsingDevSecret {
		log.Warn().Msg("JWT_SECRET no definido: usando secreto de desarrollo")
	}

	// Porcentajes como número en el JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	db := postgres.NewDB(pool)
	defer db.Close()

	tokens, err := jwt.NewService(jwt.Config{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("servicio JWT")
	}

	userRepo := postgres.NewUserRepository(db)
	reportRepo := postgres.NewReportRepository(pool, cfg.Report.BlockedVendorIDs)

	userUC := usecase.NewUserUseCase(userRepo, cfg.Admin.AllowedEmailDomains, log)
	authUC := auth.NewAuthUseCase(userUC, tokens, log)
	dashboardUC := appanalytics.NewDashboardUseCase(
		reportRepo,
		filter.NewNormalizer(cfg.App.Location()),
		cfg.Report,
		infrapdf.NewSummaryPDF("Linhagro"),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ProxyHeader:  fiber.HeaderXForwardedFor,
	})

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "API Linhagro",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		Tokens:      tokens,
		RateLimit:   cfg.RateLimit,
		Log:         log,
		ServiceName: cfg.App.Name,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
