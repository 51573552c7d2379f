package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration vigencia de un token cuando la configuración no indica otra.
const DefaultExpiration = 7 * 24 * time.Hour

// ErrInvalidOrExpired agrupa cualquier fallo de firma, formato o vigencia.
// No se distingue la causa para no dar pistas al cliente.
var ErrInvalidOrExpired = errors.New("jwt: token inválido o expirado")

// Claims incluye los claims estándar JWT más usuario y perfil.
// El perfil va en el token para que RequireRole decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Usuario string `json:"usuario"`
	Perfil  string `json:"perfil"`
}

// Config parámetros de firma.
type Config struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// Service emite y verifica tokens HS256 con un secreto fijo de proceso.
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewService construye el servicio. El secreto ya debe venir resuelto por config.Load.
func NewService(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	ttl := cfg.Expiration
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		issuer: cfg.Issuer,
		now:    time.Now,
	}, nil
}

// WithClock reemplaza el reloj (tests de expiración).
func (s *Service) WithClock(now func() time.Time) *Service {
	cp := *s
	cp.now = now
	return &cp
}

// Expiration devuelve la vigencia configurada.
func (s *Service) Expiration() time.Duration { return s.ttl }

// Issue genera un token firmado para usuario/perfil y devuelve también su vencimiento.
func (s *Service) Issue(usuario, perfil string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   usuario,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Usuario: usuario,
		Perfil:  perfil,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: firmar: %w", err)
	}
	return signed, exp, nil
}

// Verify valida firma y vigencia. Cualquier error se reduce a ErrInvalidOrExpired.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Usuario == "" {
		return nil, ErrInvalidOrExpired
	}
	return claims, nil
}
