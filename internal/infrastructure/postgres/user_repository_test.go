package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
)

func newTestUserRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(db), mock
}

var userColumns = []string{"id", "usuario", "senha_hash", "email", "perfil", "dashboards", "ativo", "data_criacao", "data_atualizacao"}

func TestUserRepo_Create(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()
	u := &entity.User{
		ID: "8c1f", Usuario: "rita", PasswordHash: "$2a$10$hash", Email: "rita@linhagro.com.br",
		Perfil: entity.RoleRH, Dashboards: []string{"rh", "relatorios"}, Ativo: true, CreatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO usuarios_api")).
		WithArgs("8c1f", "rita", "$2a$10$hash", "rita@linhagro.com.br", "rh", `["rh","relatorios"]`, true, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_CreateDuplicado(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectExec("INSERT INTO usuarios_api").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), &entity.User{Usuario: "rita"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserRepo_CreateErrorGenerico(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectExec("INSERT INTO usuarios_api").WillReturnError(errors.New("timeout"))

	err := repo.Create(context.Background(), &entity.User{Usuario: "rita"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserRepo_FindActiveByUsuario(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	created := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE usuario = $1 AND ativo = true")).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("id-1", "ana", "$2a$10$x", "ana@linhagro.com.br", "gerente", `"vendas"`, true, created, nil))

	u, err := repo.FindActiveByUsuario(context.Background(), "ana")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "gerente", u.Perfil)
	assert.Equal(t, []string{"vendas"}, u.Dashboards)
	assert.Nil(t, u.UpdatedAt)
	assert.Equal(t, "$2a$10$x", u.PasswordHash)
}

func TestUserRepo_FindActiveByUsuario_NoExiste(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("FROM usuarios_api").WithArgs("ana").WillReturnError(sql.ErrNoRows)

	u, err := repo.FindActiveByUsuario(context.Background(), "ana")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_List(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	created := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY data_criacao DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario", "email", "perfil", "dashboards", "ativo", "data_criacao", "data_atualizacao"}).
			AddRow("id-1", "ana", "ana@linhagro.com.br", "admin", `["vendas"]`, true, created, updated).
			AddRow("id-2", "beto", "beto@lithoplant.com.br", nil, "lixo{", false, created, nil))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, []string{"vendas"}, users[0].Dashboards)
	require.NotNil(t, users[0].UpdatedAt)
	assert.Equal(t, updated, *users[0].UpdatedAt)
	assert.Empty(t, users[0].PasswordHash)

	// Perfil ausente cae en consultor; dashboards ilegibles, en la tabla del perfil.
	assert.Equal(t, entity.RoleConsultor, users[1].Perfil)
	assert.Equal(t, []string{"vendas", "relatorios"}, users[1].Dashboards)
	assert.False(t, users[1].Ativo)
}

func TestUserRepo_SetActive(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE usuarios_api SET ativo = $2")).
		WithArgs("ana", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetActive(context.Background(), "ana", false))
}

func TestUserRepo_SetActive_NoExiste(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectExec("UPDATE usuarios_api").
		WithArgs("x", false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.SetActive(context.Background(), "x", false), domain.ErrNotFound)
}

func TestUserRepo_UpdatePasswordYRole(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("SET senha_hash = $2")).
		WithArgs("ana", "$2a$10$nuevo").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET perfil = $2, dashboards = $3")).
		WithArgs("ana", "analista", `["financeiro","relatorios"]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePassword(context.Background(), "ana", "$2a$10$nuevo"))
	require.NoError(t, repo.UpdateRole(context.Background(), "ana", "analista", []string{"financeiro", "relatorios"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
