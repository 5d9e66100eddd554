// Package config loads the service configuration from the environment.
//
// Values are read from SIGNUP_-prefixed environment variables (a `.env`
// file is autoloaded first), unmarshalled into typed structs and
// validated so the process fails fast on missing settings.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads a `.env` file into the process environment, if one exists,
	// before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"golang.org/x/crypto/bcrypt"
)

// EnvPrefix is stripped from every environment variable name. The rest of
// the name is lowercased and split on "." into the config path, so
// SIGNUP_SERVER.PORT becomes server.port.
const EnvPrefix = "SIGNUP_"

// Config is the root configuration object.
//
// Signup and Observability are optional blocks; LoadConfig seeds them with
// defaults before the environment is applied on top.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Signup        *SignupConfig        `koanf:"signup"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment
// ("local", "development", "production").
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server. Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// ConnMaxLifetime and ConnMaxIdleTime are seconds.
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

// RedisConfig contains the Redis "host:port" address used by the job queue
// and the health check.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// IntegrationConfig holds credentials for third-party providers.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
	EmailFrom    string `koanf:"email_from"`
}

// SignupConfig tunes the signup flow.
type SignupConfig struct {
	// WelcomeEmailEnabled enqueues a welcome email after each account is created.
	WelcomeEmailEnabled bool `koanf:"welcome_email_enabled"`

	// BcryptCost is the work factor used to hash passwords.
	BcryptCost int `koanf:"bcrypt_cost" validate:"min=4,max=31"`

	// RateLimit is the sustained number of signup requests per second
	// allowed from one client IP; RateBurst is the bucket size.
	RateLimit float64 `koanf:"rate_limit" validate:"gt=0"`
	RateBurst int     `koanf:"rate_burst" validate:"min=1"`
}

// DefaultSignupConfig returns the signup settings used when none are configured.
func DefaultSignupConfig() *SignupConfig {
	return &SignupConfig{
		WelcomeEmailEnabled: true,
		BcryptCost:          bcrypt.DefaultCost,
		RateLimit:           5,
		RateBurst:           10,
	}
}

// LoadConfig reads the environment, applies defaults, validates the result
// and returns it.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Defaults go in first so a partially configured block keeps the
	// values the environment does not mention.
	mainConfig := &Config{
		Signup:        DefaultSignupConfig(),
		Observability: DefaultObservabilityConfig(),
	}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Integration.EmailFrom == "" {
		mainConfig.Integration.EmailFrom = "Signup <onboarding@resend.dev>"
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = "signup"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
