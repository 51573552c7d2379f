package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/usecase"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	inactiveCell = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// errUsage argumentos inválidos; el FlagSet ya imprimió la ayuda.
var errUsage = errors.New("uso incorrecto")

type cli struct {
	users *usecase.UserUseCase
	out   io.Writer
	in    io.Reader
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Gerenciador de usuários Linhagro (usuarios_api)"))
	fmt.Fprintln(w, `
Uso: admin <comando> [opções]

Comandos:
  listar                                       lista todos os usuários
  criar     -usuario U -email E [-perfil P]    cria usuário (senha por -senha ou stdin)
  senha     -usuario U                         altera senha (por -senha ou stdin)
  perfil    -usuario U -perfil P               altera perfil e dashboards
  ativar    -usuario U                         reativa usuário
  desativar -usuario U                         desativa usuário`)
}

func (c *cli) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "listar":
		return c.list(ctx)
	case "criar":
		return c.create(ctx, args)
	case "senha":
		return c.password(ctx, args)
	case "perfil":
		return c.role(ctx, args)
	case "ativar":
		return c.setActive(ctx, args, true)
	case "desativar":
		return c.setActive(ctx, args, false)
	case "-h", "--help", "help", "ajuda":
		printUsage(c.out)
		return nil
	default:
		printUsage(c.out)
		return fmt.Errorf("comando desconhecido: %s", cmd)
	}
}

// newFlags FlagSet por subcomando; los errores de parseo no terminan el proceso.
func (c *cli) newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

func (c *cli) list(ctx context.Context) error {
	users, err := c.users.List(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(c.out, "Nenhum usuário cadastrado.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("USUÁRIO", "EMAIL", "PERFIL", "DASHBOARDS", "ATIVO", "CRIADO EM").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return titleStyle.Padding(0, 1)
			}
			if row >= 0 && row < len(users) && !users[row].Ativo {
				return inactiveCell
			}
			return cellStyle
		})
	for _, u := range users {
		ativo := "sim"
		if !u.Ativo {
			ativo = "não"
		}
		t.Row(u.Usuario, u.Email, u.Perfil, strings.Join(u.Dashboards, ","), ativo, u.DataCriacao.Format("02/01/2006"))
	}
	fmt.Fprintln(c.out, t.Render())
	fmt.Fprintf(c.out, "%d usuário(s)\n", len(users))
	return nil
}

func (c *cli) create(ctx context.Context, args []string) error {
	fs := c.newFlags("criar")
	usuario := fs.String("usuario", "", "login")
	email := fs.String("email", "", "email (@linhagro.com.br ou @lithoplant.com.br)")
	perfil := fs.String("perfil", "", "admin|gerente|analista|operador|consultor|rh (padrão consultor)")
	senha := fs.String("senha", "", "senha; vazio lê uma linha do stdin")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	pass, err := c.secret(*senha)
	if err != nil {
		return err
	}
	out, err := c.users.Create(ctx, dto.CreateUserRequest{Usuario: *usuario, Senha: pass, Email: *email, Perfil: *perfil})
	if err != nil {
		return describe(err)
	}
	c.ok(fmt.Sprintf("Usuário %s criado (id %s, dashboards: %s)", *usuario, out.ID, strings.Join(out.Dashboards, ", ")))
	return nil
}

func (c *cli) password(ctx context.Context, args []string) error {
	fs := c.newFlags("senha")
	usuario := fs.String("usuario", "", "login")
	senha := fs.String("senha", "", "nova senha; vazio lê uma linha do stdin")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := requireUser(*usuario); err != nil {
		return err
	}

	pass, err := c.secret(*senha)
	if err != nil {
		return err
	}
	if err := c.users.ChangePassword(ctx, *usuario, dto.ChangePasswordRequest{Senha: pass}); err != nil {
		return describe(err)
	}
	c.ok("Senha de " + *usuario + " alterada")
	return nil
}

func (c *cli) role(ctx context.Context, args []string) error {
	fs := c.newFlags("perfil")
	usuario := fs.String("usuario", "", "login")
	perfil := fs.String("perfil", "", "novo perfil")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := requireUser(*usuario); err != nil {
		return err
	}

	dashboards, err := c.users.ChangeRole(ctx, *usuario, dto.ChangeRoleRequest{Perfil: *perfil})
	if err != nil {
		return describe(err)
	}
	c.ok(fmt.Sprintf("Perfil de %s alterado para %s (dashboards: %s)", *usuario, *perfil, strings.Join(dashboards, ", ")))
	return nil
}

func (c *cli) setActive(ctx context.Context, args []string, active bool) error {
	name := "desativar"
	if active {
		name = "ativar"
	}
	fs := c.newFlags(name)
	usuario := fs.String("usuario", "", "login")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := requireUser(*usuario); err != nil {
		return err
	}

	var err error
	if active {
		err = c.users.Reactivate(ctx, *usuario)
	} else {
		err = c.users.Deactivate(ctx, *usuario)
	}
	if err != nil {
		return describe(err)
	}
	if active {
		c.ok("Usuário " + *usuario + " reativado")
	} else {
		c.ok("Usuário " + *usuario + " desativado")
	}
	return nil
}

// secret devuelve la senha del flag o la primera línea del stdin.
func (c *cli) secret(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("ler senha: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *cli) ok(msg string) {
	fmt.Fprintln(c.out, okStyle.Render("✓ "+msg))
}

func requireUser(usuario string) error {
	if strings.TrimSpace(usuario) == "" {
		return errors.New("informe -usuario")
	}
	return nil
}

// describe mensajes legibles para los errores de dominio.
func describe(err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return errors.New("usuário já existe")
	case errors.Is(err, domain.ErrNotFound):
		return errors.New("usuário não encontrado")
	default:
		return err
	}
}
