package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// Load reads configs/<name>.env or ./<name>.env if present, then the
// environment, on top of the defaults, and validates the result.
func Load(name string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(name + ".env")
	v.SetConfigType("env")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
		slog.Debug("No config file found, using environment and defaults", "name", name)
	} else {
		slog.Debug("Config loaded from file", "path", v.ConfigFileUsed())
	}

	v.AutomaticEnv()

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Application: ApplicationConfig{
			Env: v.GetString("APP_ENV"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("DB_PATH"),
		},
		Auth: AuthConfig{
			JWTSecret:     v.GetString("JWT_SECRET"),
			TokenDuration: v.GetDuration("JWT_TOKEN_DURATION"),
		},
		Lock: LockConfig{
			Backend:       v.GetString("LOCK_BACKEND"),
			TTL:           v.GetDuration("LOCK_TTL"),
			RedisAddr:     v.GetString("REDIS_ADDR"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),
		},
		Events: EventsConfig{
			Backend:  v.GetString("EVENTS_BACKEND"),
			AMQPURL:  v.GetString("AMQP_URL"),
			Exchange: v.GetString("AMQP_EXCHANGE"),
			Queue:    v.GetString("AMQP_QUEUE"),
		},
		Summary: SummaryConfig{
			Concurrency: v.GetInt("SUMMARY_CONCURRENCY"),
		},
	}
	if cfg.Auth.JWTSecret == "" && cfg.IsDevelopment() {
		cfg.Auth.JWTSecret = DevJWTSecret
	}
	return cfg
}

// setDefaults registers every key so AutomaticEnv picks all of them up.
func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second)

	v.SetDefault("DB_PATH", "./data/settleup.db")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TOKEN_DURATION", 24*time.Hour)

	v.SetDefault("LOCK_BACKEND", LockMemory)
	v.SetDefault("LOCK_TTL", 5*time.Second)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("EVENTS_BACKEND", EventsLog)
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "settleup")
	v.SetDefault("AMQP_QUEUE", "ledger_events")

	v.SetDefault("SUMMARY_CONCURRENCY", 4)
}
