package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-signup/internal/middleware"
	"github.com/deppfellow/go-signup/internal/server"
)

// dependencyCheck pings one backing service. A failing required check
// makes the whole service unhealthy; an optional one is only reported.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks  []dependencyCheck
	timeout time.Duration
}

// NewHealthHandler registers the checks enabled in the observability
// config. PostgreSQL is required. Redis only delays welcome emails, so it
// is optional.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		timeout: 5 * time.Second,
	}

	obs := s.Config.Observability
	if obs == nil {
		return h
	}

	if obs.HealthChecks.Timeout > 0 {
		h.timeout = obs.HealthChecks.Timeout
	}

	if obs.HealthCheckEnabled("database") && s.DB != nil {
		h.checks = append(h.checks, dependencyCheck{
			name:     "database",
			required: true,
			ping:     s.DB.Pool.Ping,
		})
	}

	if obs.HealthCheckEnabled("redis") && s.Redis != nil {
		h.checks = append(h.checks, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error {
				return s.Redis.Ping(ctx).Err()
			},
		})
	}

	return h
}

// CheckHealth answers 200 when every required check passes and 503
// otherwise. Each check is reported with its response time.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any, len(h.checks))
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			checks[check.name] = map[string]any{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}

			if check.required {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordHealthCheckError(map[string]any{
				"check_type":       check.name,
				"operation":        "health_check",
				"error_type":       check.name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})

			continue
		}

		checks[check.name] = map[string]any{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}

		logger.Debug().
			Str("check", check.name).
			Dur("response_time", elapsed).
			Msg("health check passed")
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		h.recordHealthCheckError(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) recordHealthCheckError(attrs map[string]any) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
