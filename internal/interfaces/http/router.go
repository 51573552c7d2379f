package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/analytics"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/auth"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/usecase"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/config"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/logger"
)

// APIVersion versión informada en GET /.
const APIVersion = "1.0.0"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *analytics.DashboardUseCase
	Tokens      TokenVerifier
	RateLimit   config.RateLimitConfig
	Log         *logger.Logger
	ServiceName string
}

// Router registra middlewares globales y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(RequestLogger(deps.Log))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"api":       "linhagro-v1.0",
			"status":    "online",
			"versao":    APIVersion,
			"seguranca": "ativa",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api", apiLimiter(deps.RateLimit))
	linhagro := api.Group("/linhagro")

	// Login (público, limitado aparte)
	authHandler := NewAuthHandler(deps.AuthUC)
	linhagro.Post("/login", loginLimiter(deps.RateLimit), authHandler.Login)

	// Reportes (requieren Bearer Token)
	protected := linhagro.Group("", RequireAuth(deps.Tokens))
	reportHandler := NewReportHandler(deps.DashboardUC)
	protected.Get("/resumo-geral", reportHandler.Summary)
	protected.Get("/resumo-geral/pdf", reportHandler.SummaryPDF)
	protected.Get("/evolucao", reportHandler.Evolution)
	protected.Get("/distribuicao", reportHandler.Distribution)
	protected.Get("/historico-global", reportHandler.GlobalHistory)
	protected.Get("/filtros", reportHandler.Filters)

	// Admin de usuarios
	admin := protected.Group("/admin/usuarios", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminUserHandler(deps.UserUC)
	admin.Post("/", adminHandler.Create)
	admin.Get("/", adminHandler.List)
	admin.Put("/:usuario/desativar", adminHandler.Deactivate)
	admin.Put("/:usuario/reativar", adminHandler.Reactivate)
	admin.Put("/:usuario/senha", adminHandler.ChangePassword)
	admin.Put("/:usuario/perfil", adminHandler.ChangeRole)
}

// apiLimiter límite general por IP sobre /api.
func apiLimiter(cfg config.RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        positive(cfg.APIMax, 5000),
		Expiration: window(cfg.Window),
		LimitReached: func(c *fiber.Ctx) error {
			return fail(c, fiber.StatusTooManyRequests, "Muitas requisições. Tente novamente mais tarde.", "RATE_LIMIT")
		},
	})
}

// loginLimiter solo cuenta intentos fallidos.
func loginLimiter(cfg config.RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:                    positive(cfg.LoginMax, 500),
		Expiration:             window(cfg.Window),
		SkipSuccessfulRequests: true,
		LimitReached: func(c *fiber.Ctx) error {
			return fail(c, fiber.StatusTooManyRequests, "Bloqueado por tentativas excessivas.", "RATE_LIMIT")
		},
	})
}

func positive(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func window(d time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return 15 * time.Minute
}
