package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/usecase"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain"
)

// AdminUserHandler administración de usuarios de la API (solo perfil admin).
type AdminUserHandler struct {
	uc *usecase.UserUseCase
}

// NewAdminUserHandler construye el handler.
func NewAdminUserHandler(uc *usecase.UserUseCase) *AdminUserHandler {
	return &AdminUserHandler{uc: uc}
}

// userError traduce errores del directorio de usuarios a HTTP.
func userError(c *fiber.Ctx, err error, internalMsg string) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Sucesso: false, Erro: ve.Message, Codigo: "VALIDATION", Detalhe: ve.Field,
		})
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return fail(c, fiber.StatusConflict, "Usuário já existe", "USER_EXISTS")
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Usuário não encontrado", "NOT_FOUND")
	default:
		return failDetail(c, fiber.StatusInternalServerError, internalMsg, err)
	}
}

// Create godoc
// @Summary      Criar usuário
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateUserRequest  true  "usuario, senha, email, perfil"
// @Success      201   {object}  dto.CreateUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/linhagro/admin/usuarios [post]
func (h *AdminUserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Usuário, Senha e Email são obrigatórios", "VALIDATION")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return userError(c, err, "Erro ao criar usuário.")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar usuários
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListUsersResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/linhagro/admin/usuarios [get]
func (h *AdminUserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.UserContext())
	if err != nil {
		return userError(c, err, "Erro ao listar usuários.")
	}
	return c.JSON(dto.ListUsersResponse{Sucesso: true, Usuarios: users})
}

// Deactivate godoc
// @Summary      Desativar usuário
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        usuario  path  string  true  "login"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/linhagro/admin/usuarios/{usuario}/desativar [put]
func (h *AdminUserHandler) Deactivate(c *fiber.Ctx) error {
	usuario := c.Params("usuario")
	if err := h.uc.Deactivate(c.UserContext(), usuario); err != nil {
		return userError(c, err, "Erro ao desativar usuário.")
	}
	return c.JSON(dto.MessageResponse{Sucesso: true, Mensagem: "Usuário " + usuario + " desativado"})
}

// Reactivate godoc
// @Summary      Reativar usuário
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        usuario  path  string  true  "login"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/linhagro/admin/usuarios/{usuario}/reativar [put]
func (h *AdminUserHandler) Reactivate(c *fiber.Ctx) error {
	usuario := c.Params("usuario")
	if err := h.uc.Reactivate(c.UserContext(), usuario); err != nil {
		return userError(c, err, "Erro ao reativar usuário.")
	}
	return c.JSON(dto.MessageResponse{Sucesso: true, Mensagem: "Usuário " + usuario + " reativado"})
}

// ChangePassword godoc
// @Summary      Alterar senha
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        usuario  path  string                     true  "login"
// @Param        body     body  dto.ChangePasswordRequest  true  "senha"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/linhagro/admin/usuarios/{usuario}/senha [put]
func (h *AdminUserHandler) ChangePassword(c *fiber.Ctx) error {
	usuario := c.Params("usuario")
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Senha obrigatória", "VALIDATION")
	}
	if err := h.uc.ChangePassword(c.UserContext(), usuario, in); err != nil {
		return userError(c, err, "Erro ao alterar senha.")
	}
	return c.JSON(dto.MessageResponse{Sucesso: true, Mensagem: "Senha de " + usuario + " alterada"})
}

// ChangeRole godoc
// @Summary      Alterar perfil
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        usuario  path  string                 true  "login"
// @Param        body     body  dto.ChangeRoleRequest  true  "perfil"
// @Success      200  {object}  dto.ChangeRoleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/linhagro/admin/usuarios/{usuario}/perfil [put]
func (h *AdminUserHandler) ChangeRole(c *fiber.Ctx) error {
	usuario := c.Params("usuario")
	var in dto.ChangeRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Perfil obrigatório", "VALIDATION")
	}
	dashboards, err := h.uc.ChangeRole(c.UserContext(), usuario, in)
	if err != nil {
		return userError(c, err, "Erro ao alterar perfil.")
	}
	return c.JSON(dto.ChangeRoleResponse{Sucesso: true, Usuario: usuario, Perfil: strings.TrimSpace(in.Perfil), Dashboards: dashboards})
}
