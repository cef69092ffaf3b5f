package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(originalWD)
	})
}

func defaults() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("missing")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Application.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "./data/settleup.db", cfg.Database.Path)
	assert.Equal(t, DevJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, LockMemory, cfg.Lock.Backend)
	assert.Equal(t, EventsLog, cfg.Events.Backend)
	assert.Equal(t, "ledger_events", cfg.Events.Queue)
	assert.Equal(t, 4, cfg.Summary.Concurrency)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	content := "SERVER_PORT=9090\nLOG_LEVEL=debug\nLOCK_BACKEND=redis\nREDIS_ADDR=redis:6379\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "test.env"), []byte(content), 0o644))
	chdir(t, dir)

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("SUMMARY_CONCURRENCY", "8")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port, "environment overrides the file")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, LockRedis, cfg.Lock.Backend)
	assert.Equal(t, "redis:6379", cfg.Lock.RedisAddr)
	assert.Equal(t, 8, cfg.Summary.Concurrency)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("EVENTS_BACKEND", "kafka")

	_, err := Load("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EVENTS_BACKEND must be log or amqp")
}

func TestConfig_Validate_HappyPath(t *testing.T) {
	assert.NoError(t, defaults().Validate())
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "SERVER_PORT must be greater than 0"},
		{"db path", func(c *Config) { c.Database.Path = "" }, "DB_PATH is required"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL must be one of"},
		{"dev secret in production", func(c *Config) { c.Application.Env = "production" }, "JWT_SECRET must be set outside development"},
		{"no secret", func(c *Config) { c.Auth.JWTSecret = "" }, "JWT_SECRET is required"},
		{"redis without addr", func(c *Config) { c.Lock.Backend = LockRedis }, "REDIS_ADDR is required"},
		{"unknown lock", func(c *Config) { c.Lock.Backend = "etcd" }, "LOCK_BACKEND must be memory or redis"},
		{"amqp without url", func(c *Config) { c.Events.Backend = EventsAMQP }, "AMQP_URL is required"},
		{"concurrency", func(c *Config) { c.Summary.Concurrency = 0 }, "SUMMARY_CONCURRENCY must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := defaults()
	cfg.Server.Port = -1
	cfg.Summary.Concurrency = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
	assert.Contains(t, err.Error(), "SUMMARY_CONCURRENCY")
}
