package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/interfaces/http"
)

func TestRequireAuth_SinHeader(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/linhagro/filtros", "", "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, false, body["sucesso"])
	assert.Equal(t, "Token não fornecido", body["erro"])
}

func TestRequireAuth_EsquemaIncorrecto(t *testing.T) {
	env := newTestEnv(t)
	for _, h := range []string{"Basic dXNlcjpwYXNz", "Bearer", "Token abc"} {
		resp := env.do(t, http.MethodGet, "/api/linhagro/filtros", h, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, h)
		assert.Equal(t, "Use Bearer <token>", decode(t, resp)["erro"], h)
	}
}

func TestRequireAuth_TokenInvalido(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/linhagro/filtros", "Bearer no.es.jwt", "")

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Token inválido ou expirado", decode(t, resp)["erro"])
}

func TestRequireAuth_TokenExpirado(t *testing.T) {
	env := newTestEnv(t)
	old := env.tokens.WithClock(func() time.Time { return time.Now().Add(-30 * 24 * time.Hour) })
	tok, _, err := old.Issue("ana", "consultor")
	require.NoError(t, err)

	resp := env.do(t, http.MethodGet, "/api/linhagro/filtros", "Bearer "+tok, "")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAuth_EsquemaEstricto(t *testing.T) {
	env := newTestEnv(t)
	// sin expectativas en reports: ningún handler debe ejecutarse
	tok, _, err := env.tokens.Issue("ana", "consultor")
	require.NoError(t, err)

	for _, h := range []string{"bearer " + tok, "BEARER " + tok, "Bearer  " + tok} {
		resp := env.do(t, http.MethodGet, "/api/linhagro/filtros", h, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, h)
		assert.Equal(t, "Use Bearer <token>", decode(t, resp)["erro"], h)
	}
}

func TestRequireRole_NoAdminRecibe403(t *testing.T) {
	env := newTestEnv(t)
	// sin expectativas en users: el repositorio no debe tocarse
	resp := env.do(t, http.MethodPut, "/api/linhagro/admin/usuarios/ana/desativar", env.bearer(t, "bruno", "gerente"), "")

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Requer perfil admin", decode(t, resp)["erro"])
}

func TestRequireRole_SinPerfilRecibe401(t *testing.T) {
	app := fiber.New()
	app.Get("/solo-admin", apphttp.RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(newRequest(http.MethodGet, "/solo-admin"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_GuardaUsuarioYPerfil(t *testing.T) {
	env := newTestEnv(t)
	app := fiber.New()
	app.Get("/yo", apphttp.RequireAuth(env.tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"usuario": apphttp.GetUsuario(c), "perfil": apphttp.GetPerfil(c)})
	})

	req := newRequest(http.MethodGet, "/yo")
	req.Header.Set("Authorization", env.bearer(t, "rita", "rh"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "rita", body["usuario"])
	assert.Equal(t, "rh", body["perfil"])
}
