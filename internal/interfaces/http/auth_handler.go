package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/auth"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/linhagro/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Dados obrigatórios", "VALIDATION")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return fail(c, fiber.StatusBadRequest, "Dados obrigatórios", "VALIDATION")
		case errors.Is(err, domain.ErrInvalidCredentials):
			return fail(c, fiber.StatusUnauthorized, "Credenciais inválidas", "UNAUTHORIZED")
		default:
			return failDetail(c, fiber.StatusInternalServerError, "Erro interno no login", nil)
		}
	}
	return c.JSON(out)
}
