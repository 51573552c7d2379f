package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/config"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/logger"
)

// CredentialVerifier lo implementa usecase.UserUseCase.
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, usuario, senha string) (*entity.User, error)
}

// TokenIssuer lo implementa jwt.Service.
type TokenIssuer interface {
	Issue(usuario, perfil string) (string, time.Time, error)
	Expiration() time.Duration
}

// AuthUseCase login: verifica credenciales y emite el JWT.
type AuthUseCase struct {
	users  CredentialVerifier
	tokens TokenIssuer
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users CredentialVerifier, tokens TokenIssuer, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{users: users, tokens: tokens, log: log.Component("auth")}
}

// Login devuelve ErrValidation si falta usuario o senha y ErrInvalidCredentials
// para cualquier fallo de credenciales (sin distinguir la causa).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario := strings.TrimSpace(in.Usuario)
	if usuario == "" || in.Senha == "" {
		return nil, domain.NewValidationError("", "Dados obrigatórios")
	}

	user, err := uc.users.VerifyCredentials(ctx, usuario, in.Senha)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			uc.log.Warn().Str("usuario", usuario).Msg("login rechazado")
		}
		return nil, err
	}

	token, _, err := uc.tokens.Issue(user.Usuario, user.Perfil)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("usuario", user.Usuario).Str("perfil", user.Perfil).Msg("login")
	return &dto.LoginResponse{
		Sucesso:    true,
		Usuario:    user.Usuario,
		Perfil:     user.Perfil,
		Dashboards: user.Dashboards,
		Token:      token,
		Expiracao:  config.FormatExpiry(uc.tokens.Expiration()),
	}, nil
}
