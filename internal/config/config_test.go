package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"SIGNUP_PRIMARY.ENV":                 "local",
		"SIGNUP_SERVER.PORT":                 "8080",
		"SIGNUP_SERVER.READ_TIMEOUT":         "30",
		"SIGNUP_SERVER.WRITE_TIMEOUT":        "30",
		"SIGNUP_SERVER.IDLE_TIMEOUT":         "60",
		"SIGNUP_SERVER.CORS_ALLOWED_ORIGINS": "http://localhost:3000",
		"SIGNUP_DATABASE.HOST":               "localhost",
		"SIGNUP_DATABASE.PORT":               "5432",
		"SIGNUP_DATABASE.USER":               "signup",
		"SIGNUP_DATABASE.PASSWORD":           "secret",
		"SIGNUP_DATABASE.NAME":               "signup",
		"SIGNUP_DATABASE.SSL_MODE":           "disable",
		"SIGNUP_DATABASE.MAX_OPEN_CONNS":     "10",
		"SIGNUP_DATABASE.MAX_IDLE_CONNS":     "2",
		"SIGNUP_DATABASE.CONN_MAX_LIFETIME":  "300",
		"SIGNUP_DATABASE.CONN_MAX_IDLE_TIME": "60",
		"SIGNUP_REDIS.ADDRESS":               "localhost:6379",
		"SIGNUP_INTEGRATION.RESEND_API_KEY":  "re_test",
	}

	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "Signup <onboarding@resend.dev>", cfg.Integration.EmailFrom)

	require.NotNil(t, cfg.Signup)
	assert.Equal(t, DefaultSignupConfig(), cfg.Signup)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "signup", cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SIGNUP_SIGNUP.BCRYPT_COST", "12")
	t.Setenv("SIGNUP_SIGNUP.WELCOME_EMAIL_ENABLED", "false")
	t.Setenv("SIGNUP_OBSERVABILITY.LOGGING.LEVEL", "debug")
	t.Setenv("SIGNUP_OBSERVABILITY.HEALTH_CHECKS.TIMEOUT", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Signup.BcryptCost)
	assert.False(t, cfg.Signup.WelcomeEmailEnabled)
	assert.Equal(t, 10, cfg.Signup.RateBurst)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, 2*time.Second, cfg.Observability.HealthChecks.Timeout)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SIGNUP_DATABASE.HOST", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadConfigRejectsBadLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SIGNUP_OBSERVABILITY.LOGGING.LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestObservabilityGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestObservabilityHealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.True(t, cfg.HealthCheckEnabled("database"))
	assert.True(t, cfg.HealthCheckEnabled("redis"))
	assert.False(t, cfg.HealthCheckEnabled("kafka"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HealthCheckEnabled("database"))
}
