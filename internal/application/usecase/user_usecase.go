package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/repository"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/logger"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/password"
)

// UserUseCase directorio de usuarios de la API: alta, listado, activación y cambios de
// contraseña/perfil. Lo usan tanto las rutas /admin como el CLI de administración.
type UserUseCase struct {
	repo           repository.UserRepository
	allowedDomains []string
	log            *logger.Logger
	now            func() time.Time
}

// NewUserUseCase construye el caso de uso. allowedDomains vacío acepta cualquier email.
func NewUserUseCase(repo repository.UserRepository, allowedDomains []string, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{
		repo:           repo,
		allowedDomains: allowedDomains,
		log:            log.Component("usuarios"),
		now:            time.Now,
	}
}

// Create valida, hashea la contraseña y persiste. Perfil vacío => consultor.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	in.Usuario = strings.TrimSpace(in.Usuario)
	in.Email = strings.TrimSpace(in.Email)
	in.Perfil = strings.TrimSpace(in.Perfil)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if !uc.emailAllowed(in.Email) {
		return nil, domain.NewValidationError("email", "Email inválido! Use "+strings.Join(uc.allowedDomains, " ou "))
	}

	perfil := in.Perfil
	if perfil == "" {
		perfil = entity.DefaultRole
	}

	hash, err := password.Hash(in.Senha)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Usuario:      in.Usuario,
		PasswordHash: hash,
		Email:        in.Email,
		Perfil:       perfil,
		Dashboards:   entity.DashboardsForRole(perfil),
		Ativo:        true,
		CreatedAt:    uc.now(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		if !errors.Is(err, domain.ErrUserAlreadyExists) {
			uc.log.Err(err).Str("usuario", user.Usuario).Msg("error creando usuario")
		}
		return nil, err
	}

	uc.log.Info().Str("usuario", user.Usuario).Str("perfil", perfil).Msg("usuario creado")
	return &dto.CreateUserResponse{Sucesso: true, ID: user.ID, Dashboards: user.Dashboards}, nil
}

func (uc *UserUseCase) emailAllowed(email string) bool {
	if len(uc.allowedDomains) == 0 {
		return true
	}
	email = strings.ToLower(email)
	for _, d := range uc.allowedDomains {
		if strings.HasSuffix(email, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// List todos los usuarios, activos e inactivos.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Deactivate desactiva el login. domain.ErrNotFound si no existe.
func (uc *UserUseCase) Deactivate(ctx context.Context, usuario string) error {
	return uc.setActive(ctx, usuario, false)
}

// Reactivate vuelve a activar el login. domain.ErrNotFound si no existe.
func (uc *UserUseCase) Reactivate(ctx context.Context, usuario string) error {
	return uc.setActive(ctx, usuario, true)
}

func (uc *UserUseCase) setActive(ctx context.Context, usuario string, active bool) error {
	if err := uc.repo.SetActive(ctx, usuario, active); err != nil {
		return err
	}
	uc.log.Info().Str("usuario", usuario).Bool("ativo", active).Msg("estado de usuario actualizado")
	return nil
}

// ChangePassword reemplaza el hash de la contraseña.
func (uc *UserUseCase) ChangePassword(ctx context.Context, usuario string, in dto.ChangePasswordRequest) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	hash, err := password.Hash(in.Senha)
	if err != nil {
		return err
	}
	if err := uc.repo.UpdatePassword(ctx, usuario, hash); err != nil {
		return err
	}
	uc.log.Info().Str("usuario", usuario).Msg("contraseña actualizada")
	return nil
}

// ChangeRole cambia el perfil y reinicia los dashboards al default del nuevo perfil.
func (uc *UserUseCase) ChangeRole(ctx context.Context, usuario string, in dto.ChangeRoleRequest) ([]string, error) {
	in.Perfil = strings.TrimSpace(in.Perfil)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	dashboards := entity.DashboardsForRole(in.Perfil)
	if err := uc.repo.UpdateRole(ctx, usuario, in.Perfil, dashboards); err != nil {
		return nil, err
	}
	uc.log.Info().Str("usuario", usuario).Str("perfil", in.Perfil).Msg("perfil actualizado")
	return dashboards, nil
}

// VerifyCredentials devuelve el usuario si está activo y la contraseña coincide.
// Usuario inexistente, inactivo o contraseña incorrecta => domain.ErrInvalidCredentials,
// con el mismo costo de bcrypt en todos los casos.
func (uc *UserUseCase) VerifyCredentials(ctx context.Context, usuario, senha string) (*entity.User, error) {
	user, err := uc.repo.FindActiveByUsuario(ctx, usuario)
	if err != nil {
		return nil, fmt.Errorf("verificar credenciales: %w", err)
	}
	if user == nil {
		password.VerifyDummy(senha)
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(senha, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              u.ID,
		Usuario:         u.Usuario,
		Email:           u.Email,
		Perfil:          u.Perfil,
		Dashboards:      u.Dashboards,
		Ativo:           u.Ativo,
		DataCriacao:     u.CreatedAt,
		DataAtualizacao: u.UpdatedAt,
	}
}
