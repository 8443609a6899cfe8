package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "prompts")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "prompts")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "host=localhost user=prompts password=secret dbname=prompts port=5432 sslmode=disable", cfg.DSN())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 100, cfg.LogMaxSize)
	assert.True(t, cfg.LogCompress)
}

func TestLoadConfigSQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/prompts.db")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("LOG_MAX_SIZE", "not-a-number")
	t.Setenv("LOG_COMPRESS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/prompts.db", cfg.DSN())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 100, cfg.LogMaxSize)
	assert.False(t, cfg.LogCompress)
}

func TestLoadConfigUnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoggerConfig(t *testing.T) {
	cfg := &Config{LogLevel: "DEBUG", LogFilename: "app.log", LogMaxSize: 1, LogMaxBackups: 2, LogMaxAge: 3}

	lc := cfg.LoggerConfig()
	assert.Equal(t, "DEBUG", lc.Level)
	assert.Equal(t, "app.log", lc.Filename)
	assert.Equal(t, 2, lc.MaxBackups)
}
