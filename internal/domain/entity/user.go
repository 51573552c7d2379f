package entity

import (
	"encoding/json"
	"time"
)

// Perfiles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleGerente   = "gerente"
	RoleAnalista  = "analista"
	RoleOperador  = "operador"
	RoleConsultor = "consultor"
	RoleRH        = "rh"
)

// DefaultRole se aplica cuando no se informa perfil.
const DefaultRole = RoleConsultor

// Roles lista ordenada de perfiles válidos.
var Roles = []string{RoleAdmin, RoleGerente, RoleAnalista, RoleOperador, RoleConsultor, RoleRH}

var dashboardsByRole = map[string][]string{
	RoleAdmin:     {"vendas", "financeiro", "operacional", "rh", "estoque", "relatorios"},
	RoleGerente:   {"vendas", "relatorios"},
	RoleAnalista:  {"financeiro", "relatorios"},
	RoleOperador:  {"operacional", "estoque"},
	RoleConsultor: {"vendas", "relatorios"},
	RoleRH:        {"rh", "relatorios"},
}

// User representa un usuario de la API (tabla usuarios_api). Nunca se borra, solo se desactiva.
type User struct {
	ID           string
	Usuario      string
	PasswordHash string // bcrypt, nunca sale de la capa de aplicación
	Email        string
	Perfil       string
	Dashboards   []string
	Ativo        bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// IsValidRole indica si role pertenece al conjunto de perfiles.
func IsValidRole(role string) bool {
	_, ok := dashboardsByRole[role]
	return ok
}

// DashboardsForRole devuelve las secciones del dashboard del perfil.
// Perfiles desconocidos reciben las de consultor. Devuelve siempre una copia.
func DashboardsForRole(role string) []string {
	d, ok := dashboardsByRole[role]
	if !ok {
		d = dashboardsByRole[DefaultRole]
	}
	return append([]string(nil), d...)
}

// ParseDashboards interpreta la columna dashboards (JSON). Un escalar JSON se
// envuelve en lista; vacío o ilegible cae en DashboardsForRole(role).
func ParseDashboards(raw, role string) []string {
	if raw == "" {
		return DashboardsForRole(role)
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		if list == nil {
			return DashboardsForRole(role)
		}
		return list
	}
	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil && single != "" {
		return []string{single}
	}
	return DashboardsForRole(role)
}

// EncodeDashboards serializa la lista para persistirla.
func EncodeDashboards(d []string) string {
	if d == nil {
		d = []string{}
	}
	b, _ := json.Marshal(d)
	return string(b)
}
