package repository

import (
	"context"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
)

//go:generate mockgen -source=user_repository.go -destination=../../mock/user_repository_mock.go -package=mock

// UserRepository define el puerto de persistencia para User (tabla usuarios_api).
// Los métodos de escritura devuelven domain.ErrNotFound si el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindActiveByUsuario devuelve nil, nil si no hay usuario activo con ese login.
	FindActiveByUsuario(ctx context.Context, usuario string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	SetActive(ctx context.Context, usuario string, active bool) error
	UpdatePassword(ctx context.Context, usuario, passwordHash string) error
	UpdateRole(ctx context.Context, usuario, perfil string, dashboards []string) error
}
