package dto

import "time"

// LoginRequest entrada de POST /login.
type LoginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Sucesso    bool     `json:"sucesso"`
	Usuario    string   `json:"usuario"`
	Perfil     string   `json:"perfil"`
	Dashboards []string `json:"dashboards"`
	Token      string   `json:"token"`
	Expiracao  string   `json:"expiracao"`
}

// CreateUserRequest entrada para crear un usuario (senha en texto, se hashea en el use case).
type CreateUserRequest struct {
	Usuario string `json:"usuario" validate:"required,max=100"`
	Senha   string `json:"senha" validate:"required,max=72"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Perfil  string `json:"perfil" validate:"omitempty,oneof=admin gerente analista operador consultor rh"`
}

// CreateUserResponse salida de la creación.
type CreateUserResponse struct {
	Sucesso    bool     `json:"sucesso"`
	ID         string   `json:"id"`
	Dashboards []string `json:"dashboards"`
}

// ChangePasswordRequest entrada de PUT /admin/usuarios/:usuario/senha.
type ChangePasswordRequest struct {
	Senha string `json:"senha" validate:"required,max=72"`
}

// ChangeRoleRequest entrada de PUT /admin/usuarios/:usuario/perfil.
type ChangeRoleRequest struct {
	Perfil string `json:"perfil" validate:"required,oneof=admin gerente analista operador consultor rh"`
}

// UserResponse salida de un usuario (sin senha_hash).
type UserResponse struct {
	ID              string     `json:"id"`
	Usuario         string     `json:"usuario"`
	Email           string     `json:"email"`
	Perfil          string     `json:"perfil"`
	Dashboards      []string   `json:"dashboards"`
	Ativo           bool       `json:"ativo"`
	DataCriacao     time.Time  `json:"data_criacao"`
	DataAtualizacao *time.Time `json:"data_atualizacao,omitempty"`
}

// ListUsersResponse salida de GET /admin/usuarios.
type ListUsersResponse struct {
	Sucesso  bool           `json:"sucesso"`
	Usuarios []UserResponse `json:"usuarios"`
}

// ChangeRoleResponse salida del cambio de perfil con los dashboards resultantes.
type ChangeRoleResponse struct {
	Sucesso    bool     `json:"sucesso"`
	Usuario    string   `json:"usuario"`
	Perfil     string   `json:"perfil"`
	Dashboards []string `json:"dashboards"`
}
