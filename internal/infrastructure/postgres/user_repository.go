package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const (
	insertUser = `
		INSERT INTO usuarios_api (id, usuario, senha_hash, email, perfil, dashboards, ativo, data_criacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	selectActiveUser = `
		SELECT id, usuario, senha_hash, email, perfil, dashboards, ativo, data_criacao, data_atualizacao
		FROM usuarios_api
		WHERE usuario = $1 AND ativo = true`

	// Sin senha_hash: el listado nunca transporta el hash.
	listUsers = `
		SELECT id, usuario, email, perfil, dashboards, ativo, data_criacao, data_atualizacao
		FROM usuarios_api
		ORDER BY data_criacao DESC, usuario`

	updateUserActive = `
		UPDATE usuarios_api SET ativo = $2, data_atualizacao = NOW()
		WHERE usuario = $1`

	updateUserPassword = `
		UPDATE usuarios_api SET senha_hash = $2, data_atualizacao = NOW()
		WHERE usuario = $1`

	updateUserRole = `
		UPDATE usuarios_api SET perfil = $2, dashboards = $3, data_atualizacao = NOW()
		WHERE usuario = $1`
)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db DBTX
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DBTX) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. Login repetido => domain.ErrUserAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	_, err := r.db.ExecContext(ctx, insertUser,
		user.ID, user.Usuario, user.PasswordHash, user.Email, user.Perfil,
		entity.EncodeDashboards(user.Dashboards), user.Ativo, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindActiveByUsuario devuelve nil, nil si no existe o está inactivo.
func (r *UserRepo) FindActiveByUsuario(ctx context.Context, usuario string) (*entity.User, error) {
	var (
		u          entity.User
		perfil     sql.NullString
		dashboards sql.NullString
		updatedAt  sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, selectActiveUser, usuario).Scan(
		&u.ID, &u.Usuario, &u.PasswordHash, &u.Email, &perfil, &dashboards, &u.Ativo, &u.CreatedAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by usuario: %w", err)
	}
	fillRoleFields(&u, perfil, dashboards, updatedAt)
	return &u, nil
}

// List devuelve todos los usuarios (activos e inactivos), más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []*entity.User{}
	for rows.Next() {
		var (
			u          entity.User
			perfil     sql.NullString
			dashboards sql.NullString
			updatedAt  sql.NullTime
		)
		if err := rows.Scan(&u.ID, &u.Usuario, &u.Email, &perfil, &dashboards, &u.Ativo, &u.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		fillRoleFields(&u, perfil, dashboards, updatedAt)
		users = append(users, &u)
	}
	return users, rows.Err()
}

// SetActive activa o desactiva. Nunca se borra un usuario.
func (r *UserRepo) SetActive(ctx context.Context, usuario string, active bool) error {
	return r.execOne(ctx, "set user active", updateUserActive, usuario, active)
}

func (r *UserRepo) UpdatePassword(ctx context.Context, usuario, passwordHash string) error {
	return r.execOne(ctx, "update user password", updateUserPassword, usuario, passwordHash)
}

func (r *UserRepo) UpdateRole(ctx context.Context, usuario, perfil string, dashboards []string) error {
	return r.execOne(ctx, "update user role", updateUserRole, usuario, perfil, entity.EncodeDashboards(dashboards))
}

// execOne ejecuta un UPDATE por login; 0 filas => domain.ErrNotFound.
func (r *UserRepo) execOne(ctx context.Context, op, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// fillRoleFields aplica los defaults de perfil y dashboards de registros viejos.
func fillRoleFields(u *entity.User, perfil, dashboards sql.NullString, updatedAt sql.NullTime) {
	u.Perfil = perfil.String
	if u.Perfil == "" {
		u.Perfil = entity.DefaultRole
	}
	u.Dashboards = entity.ParseDashboards(dashboards.String, u.Perfil)
	if updatedAt.Valid {
		t := updatedAt.Time
		u.UpdatedAt = &t
	}
}
