package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_DevFallbackSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, InsecureDevSecret, cfg.JWT.Secret)
}

func TestLoad_ProductionRefusesMissingSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "pw")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_ProductionRefusesPlaceholderSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", InsecureDevSecret)
	t.Setenv("DB_PASSWORD", "pw")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ProductionWithRealSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "a-real-256-bit-secret")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "a-real-256-bit-secret", cfg.JWT.Secret)
	require.True(t, cfg.IsProduction())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.App.Port)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, "fashionstore", cfg.Database.Database)
	require.Equal(t, 587, cfg.Email.SMTPPort)
}
