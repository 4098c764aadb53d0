package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.DriverPostgres, cfg.Storage.NormalizedDriver())
	assert.Equal(t, "crowdfund", cfg.Auth.Issuer)
	assert.False(t, cfg.Ledger.AllowDeposits)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("STORAGE_SQLITE_PATH", "/tmp/cf.db")
	t.Setenv("AUTH_ISSUER", "issuer")
	t.Setenv("LEDGER_ALLOW_DEPOSITS", "true")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("PSQL_MAX_CONNS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, configs.DriverSQLite, cfg.Storage.NormalizedDriver())
	assert.Equal(t, "/tmp/cf.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "issuer", cfg.Auth.Issuer)
	assert.True(t, cfg.Ledger.AllowDeposits)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, int32(7), cfg.Psql.MaxConns)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "not-a-port")
		_, err := Load()
		assert.ErrorContains(t, err, "parse env")
	})
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongo")
		_, err := Load()
		assert.ErrorContains(t, err, "unknown storage driver")
	})
}

func TestLogger_Fallbacks(t *testing.T) {
	c := configs.Logger{Level: "loud", Format: "xml"}
	assert.Equal(t, slog.LevelInfo, c.SlogLevel())
	assert.Equal(t, "text", c.SlogFormat())
	assert.Equal(t, slog.LevelWarn, configs.Logger{Level: "WARNING"}.SlogLevel())
}

func TestLogger_Handler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(configs.Logger{Level: "warn", Format: "json"}.Handler(&buf))

	logger.Info("dropped")
	logger.Warn("kept", slog.String("campaign_id", "c1"))

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"campaign_id":"c1"`)
}
