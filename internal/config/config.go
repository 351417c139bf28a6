// Package config loads the application configuration from the environment.
//
// Values come from process environment variables (and a `.env` file when
// present, via godotenv autoload), are mapped into typed structs with koanf
// and are checked with go-playground/validator so the process fails fast on
// missing settings.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the FLATS_ prefix. The prefix is stripped, the
	rest is lowercased, and a double underscore marks a nesting level:

		FLATS_SERVER__PORT            -> server.port        -> Config.Server.Port
		FLATS_MAIL__RESEND_API_KEY    -> mail.resend_api_key

	Single underscores stay part of the key name.
*/

const (
	envPrefix = "FLATS_"

	// DefaultMailFrom is the sender used for notification mails when
	// FLATS_MAIL__FROM is not set.
	DefaultMailFrom = "noreply@local.com"

	// DefaultRateLimit is the per-client request rate (requests/second)
	// used when FLATS_SERVER__RATE_LIMIT is not set.
	DefaultRateLimit = 20
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because the whole block is optional; defaults
// are filled in before the environment is applied.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Mail          MailConfig           `koanf:"mail" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the number of requests per second a single client IP
	// may issue.
	RateLimit float64 `koanf:"rate_limit" validate:"gt=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// ConnMaxLifetime and ConnMaxIdleTime are whole seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// MailConfig configures the notification mail sent when a flat is created.
//
// AppBaseURL and Token are rendered into the mail body so the recipient
// can reach the listing.
type MailConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
	From         string `koanf:"from" validate:"required,email"`
	AppBaseURL   string `koanf:"app_base_url" validate:"required,url"`
	Token        string `koanf:"token" validate:"required"`
}

// LoadConfig reads the environment into a validated Config.
//
// Optional values are pre-populated with defaults before the environment
// is unmarshalled on top of them, so partially configured blocks still
// end up complete. The observability service name and environment are
// always derived, never configured.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{
		Server: ServerConfig{
			RateLimit: DefaultRateLimit,
		},
		Mail: MailConfig{
			From: DefaultMailFrom,
		},
		Observability: DefaultObservabilityConfig(),
	}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mainConfig.Observability.ServiceName = "flats-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// envKey maps FLATS_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
