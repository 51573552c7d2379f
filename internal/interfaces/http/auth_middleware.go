package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/jwt"
)

// Locals keys para usuario y perfil en Fiber.
const (
	LocalUsuario = "usuario"
	LocalPerfil  = "perfil"
)

// TokenVerifier lo implementa jwt.Service.
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// RequireAuth valida el Bearer Token JWT y deja usuario y perfil en c.Locals.
func RequireAuth(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "Token não fornecido", "MISSING_TOKEN")
		}
		// Esquema exacto "Bearer" y un único espacio antes del token.
		parts := strings.Split(authHeader, " ")
		if len(parts) < 2 || parts[0] != "Bearer" || parts[1] == "" {
			return fail(c, fiber.StatusUnauthorized, "Use Bearer <token>", "MALFORMED_TOKEN")
		}
		claims, err := verifier.Verify(parts[1])
		if err != nil {
			return fail(c, fiber.StatusForbidden, "Token inválido ou expirado", "INVALID_TOKEN")
		}
		c.Locals(LocalUsuario, claims.Usuario)
		c.Locals(LocalPerfil, claims.Perfil)
		return c.Next()
	}
}

// RequireRole exige el perfil indicado. Va siempre después de RequireAuth.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		perfil := GetPerfil(c)
		if perfil == "" {
			return fail(c, fiber.StatusUnauthorized, "Token não fornecido", "UNAUTHENTICATED")
		}
		if perfil != role {
			return fail(c, fiber.StatusForbidden, "Requer perfil "+role, "FORBIDDEN")
		}
		return c.Next()
	}
}

// GetUsuario devuelve el login autenticado (después de RequireAuth).
func GetUsuario(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsuario).(string)
	return s
}

// GetPerfil devuelve el perfil autenticado (después de RequireAuth).
func GetPerfil(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalPerfil).(string)
	return s
}
