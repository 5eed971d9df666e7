package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("PORT", "")
	t.Setenv("API_VERSION", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("REFRESH_TOKEN_EXPIRE_DAYS", "")
	t.Setenv("AUDIT_ENABLED", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "v1", cfg.APIVersion)
	require.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	require.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	require.False(t, cfg.Audit.Enabled)
}

func TestLoad_TokenLifetimesFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	t.Setenv("REFRESH_TOKEN_EXPIRE_DAYS", "14")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 30*time.Minute, cfg.JWT.AccessTTL)
	require.Equal(t, 14*24*time.Hour, cfg.JWT.RefreshTTL)
}
