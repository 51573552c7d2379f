package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, DefaultBlockedVendorIDs, cfg.Report.BlockedVendorIDs)
	assert.Equal(t, "2025-01-01", cfg.Report.DefaultStartDate)
	assert.Equal(t, "2020-01-01", cfg.Report.HistoryStartDate)
	assert.Equal(t, []string{"@linhagro.com.br", "@lithoplant.com.br"}, cfg.Admin.AllowedEmailDomains)
	assert.Equal(t, 3001, cfg.HTTP.Port)
}

func TestFromViper_DevSecretFueraDeProduccion(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DevJWTSecret, cfg.JWT.Secret)
	assert.True(t, cfg.JWT.UsingDevSecret)
}

func TestFromViper_ProduccionSinSecretFalla(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := fromViper(v)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestFromViper_ProduccionConSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("JWT_SECRET", "s3cr3t")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
	assert.False(t, cfg.JWT.UsingDevSecret)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("REPORT_BLOCKED_VENDOR_IDS", "1, 2,3")
	v.Set("JWT_EXPIRY", "12h")
	v.Set("PORT", "8081")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, cfg.Report.BlockedVendorIDs)
	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 8081, cfg.HTTP.Port)
}

func TestFromViper_BlocklistInvalida(t *testing.T) {
	v := viper.New()
	v.Set("REPORT_BLOCKED_VENDOR_IDS", "1,abc")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"7d", 7 * 24 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"90m", 90 * time.Minute, false},
		{"0d", 0, true},
		{"-1h", 0, true},
		{"semana", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExpiry(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "7d", FormatExpiry(7*24*time.Hour))
	assert.Equal(t, "12h0m0s", FormatExpiry(12*time.Hour))
}
