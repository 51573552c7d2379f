package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvProduction es el valor de APP_ENV que activa las validaciones estrictas.
const EnvProduction = "production"

// DevJWTSecret solo se usa fuera de producción cuando JWT_SECRET no está definido.
const DevJWTSecret = "api_linhagro_dev_secret"

// ErrMissingJWTSecret se devuelve si APP_ENV=production y no hay JWT_SECRET.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET es obligatorio en producción")

// DefaultBlockedVendorIDs vendedores excluidos de todos los reportes (cuentas internas y de prueba).
var DefaultBlockedVendorIDs = []int{
	5, 22, 55, 78, 80, 97, 116, 122, 130, 137, 138, 140,
	166, 167, 168, 169, 175, 176, 177, 179, 180, 181, 182, 183,
}

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Report    ReportConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	Docs      DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	Timezone string // zona usada para resolver "hoy" en los filtros de fecha
}

// IsProduction indica si la app corre con APP_ENV=production.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

// Location devuelve la zona horaria configurada; UTC si no se puede cargar.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT. Secret ya viene resuelto por Load.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
	// UsingDevSecret es true cuando se aplicó DevJWTSecret por falta de JWT_SECRET.
	UsingDevSecret bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReportConfig parámetros de los reportes del dashboard.
type ReportConfig struct {
	BlockedVendorIDs []int
	DefaultStartDate string // YYYY-MM-DD, resumen/evolución/distribución/filtros
	HistoryStartDate string // YYYY-MM-DD, histórico global
}

// AdminConfig reglas para la administración de usuarios.
type AdminConfig struct {
	AllowedEmailDomains []string
}

// RateLimitConfig límites por IP.
type RateLimitConfig struct {
	Window   time.Duration
	APIMax   int
	LoginMax int
}

// DocsConfig ubicación del swagger.json servido en /docs.
type DocsConfig struct {
	SwaggerFile string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Falla si el entorno es producción y no hay JWT_SECRET.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	expiry, err := ParseExpiry(getString(v, "JWT_EXPIRY", "7d"))
	if err != nil {
		return nil, err
	}
	blocked, err := parseIntList(getString(v, "REPORT_BLOCKED_VENDOR_IDS", ""))
	if err != nil {
		return nil, fmt.Errorf("config: REPORT_BLOCKED_VENDOR_IDS: %w", err)
	}
	if blocked == nil {
		blocked = append([]int(nil), DefaultBlockedVendorIDs...)
	}
	window, err := ParseExpiry(getString(v, "RATE_LIMIT_WINDOW", "15m"))
	if err != nil {
		return nil, fmt.Errorf("config: RATE_LIMIT_WINDOW: %w", err)
	}

	port := getInt(v, "HTTP_PORT", 0)
	if port == 0 {
		// Render y similares exponen solo PORT
		port = getInt(v, "PORT", 3001)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "api-linhagro"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			Timezone: getString(v, "APP_TIMEZONE", "America/Sao_Paulo"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "dwaw2"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: expiry,
			Issuer:     getString(v, "JWT_ISSUER", "api-linhagro"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: port,
		},
		Report: ReportConfig{
			BlockedVendorIDs: blocked,
			DefaultStartDate: getString(v, "REPORT_DEFAULT_START_DATE", "2025-01-01"),
			HistoryStartDate: getString(v, "REPORT_HISTORY_START_DATE", "2020-01-01"),
		},
		Admin: AdminConfig{
			AllowedEmailDomains: splitList(getString(v, "ADMIN_ALLOWED_EMAIL_DOMAINS", "@linhagro.com.br,@lithoplant.com.br")),
		},
		RateLimit: RateLimitConfig{
			Window:   window,
			APIMax:   getInt(v, "RATE_LIMIT_API_MAX", 5000),
			LoginMax: getInt(v, "RATE_LIMIT_LOGIN_MAX", 500),
		},
		Docs: DocsConfig{
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if err := resolveJWTSecret(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveJWTSecret aplica la política del secreto una sola vez al arrancar.
func resolveJWTSecret(cfg *Config) error {
	if cfg.JWT.Secret != "" {
		return nil
	}
	if cfg.App.IsProduction() {
		return ErrMissingJWTSecret
	}
	cfg.JWT.Secret = DevJWTSecret
	cfg.JWT.UsingDevSecret = true
	return nil
}

// ParseExpiry acepta duraciones de Go (12h, 90m) y además días ("7d").
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil || days <= 0 {
			return 0, fmt.Errorf("config: duración inválida %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("config: duración inválida %q", s)
	}
	return d, nil
}

// FormatExpiry es la inversa de ParseExpiry para mostrar al cliente ("7d").
func FormatExpiry(d time.Duration) string {
	day := 24 * time.Hour
	if d >= day && d%day == 0 {
		return fmt.Sprintf("%dd", d/day)
	}
	return d.String()
}

func parseIntList(s string) ([]int, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("valor no numérico %q", p)
		}
		out = append(out, n)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
