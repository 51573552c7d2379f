package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/logger"
)

// RequestLogger registra método, ruta, status, latencia y usuario de cada request.
// Nunca registra el body (lleva contraseñas en login y admin).
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// el ErrorHandler todavía no escribió la respuesta
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Str("usuario", GetUsuario(c)).
			Msg("request")
		return nil
	}
}
