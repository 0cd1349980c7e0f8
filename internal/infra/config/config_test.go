package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_HOST", "db.example.com")
	t.Setenv("DATABASE_NAME", "notifier")
	t.Setenv("DATABASE_USER", "app")
	t.Setenv("DATABASE_ACCESS_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("CRON_SPEC_MONTHLY", "")
	t.Setenv("CRON_SPEC_DAILY", "")
	t.Setenv("HTTP_LISTEN_ADDR", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("EMAIL_TO", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.DatabasePort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0 5 1 * *", cfg.CronSpecMonthly)
	assert.Equal(t, "30 5 * * *", cfg.CronSpecDaily)
	assert.Equal(t, ":8080", cfg.HTTPListenAddr)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Empty(t, cfg.EmailTo)
}

func TestLoadMissingDatabaseHost(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_HOST")
}

func TestLoadMissingAccessSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_ACCESS_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_ACCESS_SECRET")
}

func TestLoadInvalidDatabasePort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_PORT")
}

func TestLoadParsesRecipientList(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("EMAIL_TO", "a@x.com, b@x.com ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, cfg.EmailTo)
}
