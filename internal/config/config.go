// Package config loads the service configuration from defaults, an optional
// .env file and the environment, in that order of precedence.
package config

import (
	"errors"
	"strings"
	"time"
)

// Lock backends.
const (
	LockMemory = "memory"
	LockRedis  = "redis"
)

// Event backends.
const (
	EventsLog  = "log"
	EventsAMQP = "amqp"
)

// DevJWTSecret is the signing key used when APP_ENV is development and no
// JWT_SECRET is set. It is rejected in any other environment.
const DevJWTSecret = "settleup-development-secret"

// Config holds the complete application configuration.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Lock        LockConfig
	Events      EventsConfig
	Summary     SummaryConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// DatabaseConfig points at the SQLite file.
type DatabaseConfig struct {
	Path string
}

// AuthConfig contains JWT settings.
type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
}

// LockConfig selects how ledger appends are serialized per scope.
type LockConfig struct {
	Backend       string // LockMemory or LockRedis
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// EventsConfig selects where recorded transactions are published.
type EventsConfig struct {
	Backend  string // EventsLog or EventsAMQP
	AMQPURL  string
	Exchange string
	Queue    string
}

// SummaryConfig bounds the fan-out when summarizing many scopes at once.
type SummaryConfig struct {
	Concurrency int
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Application.Env == "development"
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var validationErrors []string

	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}

	if c.Database.Path == "" {
		validationErrors = append(validationErrors, "DB_PATH is required")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "LOG_LEVEL must be one of debug, info, warn, error")
	}

	if c.Auth.JWTSecret == "" {
		validationErrors = append(validationErrors, "JWT_SECRET is required")
	} else if c.Auth.JWTSecret == DevJWTSecret && !c.IsDevelopment() {
		validationErrors = append(validationErrors, "JWT_SECRET must be set outside development")
	}
	if c.Auth.TokenDuration <= 0 {
		validationErrors = append(validationErrors, "JWT_TOKEN_DURATION must be greater than 0")
	}

	switch c.Lock.Backend {
	case LockMemory:
	case LockRedis:
		if c.Lock.RedisAddr == "" {
			validationErrors = append(validationErrors, "REDIS_ADDR is required when LOCK_BACKEND is redis")
		}
		if c.Lock.TTL <= 0 {
			validationErrors = append(validationErrors, "LOCK_TTL must be greater than 0")
		}
	default:
		validationErrors = append(validationErrors, "LOCK_BACKEND must be memory or redis")
	}

	switch c.Events.Backend {
	case EventsLog:
	case EventsAMQP:
		if c.Events.AMQPURL == "" {
			validationErrors = append(validationErrors, "AMQP_URL is required when EVENTS_BACKEND is amqp")
		}
		if c.Events.Exchange == "" {
			validationErrors = append(validationErrors, "AMQP_EXCHANGE is required")
		}
		if c.Events.Queue == "" {
			validationErrors = append(validationErrors, "AMQP_QUEUE is required")
		}
	default:
		validationErrors = append(validationErrors, "EVENTS_BACKEND must be log or amqp")
	}

	if c.Summary.Concurrency <= 0 {
		validationErrors = append(validationErrors, "SUMMARY_CONCURRENCY must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}
	return nil
}
