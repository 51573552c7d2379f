package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/usecase"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/mock"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/logger"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/password"
)

func newTestCLI(t *testing.T, stdin string) (*cli, *mock.MockUserRepository, *bytes.Buffer) {
	t.Helper()
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	out := &bytes.Buffer{}
	return &cli{
		users: usecase.NewUserUseCase(repo, []string{"@linhagro.com.br", "@lithoplant.com.br"}, logger.Nop()),
		out:   out,
		in:    strings.NewReader(stdin),
	}, repo, out
}

func TestCLI_Listar(t *testing.T) {
	c, repo, out := newTestCLI(t, "")
	repo.EXPECT().List(gomock.Any()).Return([]*entity.User{
		{Usuario: "rita", Email: "rita@linhagro.com.br", Perfil: "rh", Dashboards: []string{"rh", "relatorios"}, Ativo: true, CreatedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{Usuario: "ana", Email: "ana@linhagro.com.br", Perfil: "consultor", Dashboards: []string{"vendas", "relatorios"}, CreatedAt: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
	}, nil)

	require.NoError(t, c.run(context.Background(), "listar", nil))
	s := out.String()
	assert.Contains(t, s, "rita")
	assert.Contains(t, s, "rh,relatorios")
	assert.Contains(t, s, "02/03/2025")
	assert.Contains(t, s, "não")
	assert.Contains(t, s, "2 usuário(s)")
}

func TestCLI_ListarVacio(t *testing.T) {
	c, repo, out := newTestCLI(t, "")
	repo.EXPECT().List(gomock.Any()).Return([]*entity.User{}, nil)

	require.NoError(t, c.run(context.Background(), "listar", nil))
	assert.Contains(t, out.String(), "Nenhum usuário cadastrado.")
}

func TestCLI_CriarLeeSenhaDelStdin(t *testing.T) {
	c, repo, out := newTestCLI(t, "Segredo#1\n")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
		assert.Equal(t, "rita", u.Usuario)
		assert.Equal(t, entity.RoleRH, u.Perfil)
		assert.True(t, password.Verify("Segredo#1", u.PasswordHash))
		return nil
	})

	err := c.run(context.Background(), "criar", []string{"-usuario", "rita", "-email", "rita@linhagro.com.br", "-perfil", "rh"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usuário rita criado")
	assert.Contains(t, out.String(), "rh, relatorios")
}

func TestCLI_CriarDuplicado(t *testing.T) {
	c, repo, _ := newTestCLI(t, "")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrUserAlreadyExists)

	err := c.run(context.Background(), "criar", []string{"-usuario", "rita", "-email", "rita@linhagro.com.br", "-senha", "x"})
	require.Error(t, err)
	assert.Equal(t, "usuário já existe", err.Error())
}

func TestCLI_CriarEmailInvalido(t *testing.T) {
	c, _, _ := newTestCLI(t, "")
	err := c.run(context.Background(), "criar", []string{"-usuario", "rita", "-email", "rita@gmail.com", "-senha", "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCLI_Perfil(t *testing.T) {
	c, repo, out := newTestCLI(t, "")
	repo.EXPECT().UpdateRole(gomock.Any(), "ana", "gerente", []string{"vendas", "relatorios"}).Return(nil)

	require.NoError(t, c.run(context.Background(), "perfil", []string{"-usuario", "ana", "-perfil", "gerente"}))
	assert.Contains(t, out.String(), "Perfil de ana alterado para gerente")
}

func TestCLI_Senha(t *testing.T) {
	c, repo, out := newTestCLI(t, "")
	repo.EXPECT().UpdatePassword(gomock.Any(), "ana", gomock.Any()).Return(nil)

	require.NoError(t, c.run(context.Background(), "senha", []string{"-usuario", "ana", "-senha", "Nova#2025"}))
	assert.Contains(t, out.String(), "Senha de ana alterada")
}

func TestCLI_AtivarDesativar(t *testing.T) {
	c, repo, out := newTestCLI(t, "")
	gomock.InOrder(
		repo.EXPECT().SetActive(gomock.Any(), "ana", false).Return(nil),
		repo.EXPECT().SetActive(gomock.Any(), "ana", true).Return(nil),
		repo.EXPECT().SetActive(gomock.Any(), "ninguem", true).Return(domain.ErrNotFound),
	)

	require.NoError(t, c.run(context.Background(), "desativar", []string{"-usuario", "ana"}))
	require.NoError(t, c.run(context.Background(), "ativar", []string{"-usuario", "ana"}))
	assert.Contains(t, out.String(), "Usuário ana desativado")
	assert.Contains(t, out.String(), "Usuário ana reativado")

	err := c.run(context.Background(), "ativar", []string{"-usuario", "ninguem"})
	require.Error(t, err)
	assert.Equal(t, "usuário não encontrado", err.Error())
}

func TestCLI_SinUsuario(t *testing.T) {
	c, _, _ := newTestCLI(t, "")
	for _, cmd := range []string{"senha", "perfil", "ativar", "desativar"} {
		err := c.run(context.Background(), cmd, nil)
		require.Error(t, err, cmd)
		assert.Equal(t, "informe -usuario", err.Error(), cmd)
	}
}

func TestCLI_ComandoDesconocido(t *testing.T) {
	c, _, out := newTestCLI(t, "")
	err := c.run(context.Background(), "borrar", nil)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Uso: admin <comando>")
}

func TestCLI_FlagInvalido(t *testing.T) {
	c, _, _ := newTestCLI(t, "")
	err := c.run(context.Background(), "ativar", []string{"-nope"})
	assert.ErrorIs(t, err, errUsage)
}
