package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"yatra/backend/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("YATRA_ADDR", ":9999")
	t.Setenv("YATRA_DATA_DIR", "/tmp/yatra")
	t.Setenv("YATRA_LOG_LEVEL", "debug")
	t.Setenv("YATRA_ENABLE_SWAGGER", "true")
	t.Setenv("TURNSTILE_SECRET_KEY", "0xsecret")
	t.Setenv("TURNSTILE_ALLOWED_HOSTNAMES", "yatra.example, www.yatra.example ,")
	t.Setenv("GEOAPIFY_API_KEY", "geo-key")

	cfg := config.Load()
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "/tmp/yatra", cfg.DataDir)
	require.Contains(t, cfg.DBPath, "/tmp/yatra/yatra.db")
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.EnableSwagger)
	require.Equal(t, "0xsecret", cfg.TurnstileSecret)
	require.Equal(t, []string{"yatra.example", "www.yatra.example"}, cfg.TurnstileHostnames)
	require.True(t, cfg.TurnstileRequired)
	require.Equal(t, "geo-key", cfg.GeoapifyAPIKey)
}

func TestLoad_Defaults(t *testing.T) {
	for _, name := range []string{
		"YATRA_ADDR", "YATRA_DATA_DIR", "YATRA_DB_PATH", "YATRA_LOG_LEVEL",
		"YATRA_ENABLE_SWAGGER", "TURNSTILE_SECRET_KEY", "TURNSTILE_ALLOWED_HOSTNAMES",
		"TURNSTILE_REQUIRED", "GEOAPIFY_API_KEY",
	} {
		t.Setenv(name, "")
	}

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "data", cfg.DataDir)
	require.Contains(t, cfg.DBPath, "yatra.db")
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.EnableSwagger)
	require.Empty(t, cfg.TurnstileSecret)
	require.Nil(t, cfg.TurnstileHostnames)
	require.True(t, cfg.TurnstileRequired, "verification defaults on; opting out must be explicit")
}

func TestLoad_TurnstileDisabled(t *testing.T) {
	t.Setenv("TURNSTILE_REQUIRED", "false")

	cfg := config.Load()
	require.False(t, cfg.TurnstileRequired)
}
