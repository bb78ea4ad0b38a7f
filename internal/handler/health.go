package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/server"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthHandler reports whether the service and its dependencies are
// reachable, for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns 200 when every enabled check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult),
	}

	obs := h.server.Config.Observability

	// ---------------- Redis connectivity check -------------------------------
	if h.server.Redis != nil && obs.HealthCheckEnabled("redis") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthChecks.Timeout)
		defer cancel()

		redisStart := time.Now()

		if err := h.server.Redis.Ping(ctx).Err(); err != nil {
			response.Checks["redis"] = CheckResult{
				Status:       statusUnhealthy,
				ResponseTime: time.Since(redisStart).String(),
				Error:        err.Error(),
			}
			response.Status = statusUnhealthy

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(redisStart)).
				Msg("redis health check failed")

			h.recordHealthCheckError("redis", map[string]interface{}{
				"response_time_ms": time.Since(redisStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		} else {
			response.Checks["redis"] = CheckResult{
				Status:       statusHealthy,
				ResponseTime: time.Since(redisStart).String(),
			}

			logger.Debug().
				Dur("response_time", time.Since(redisStart)).
				Msg("redis health check passed")
		}
	}

	if response.Status != statusHealthy {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError("overall", map[string]interface{}{
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

// recordHealthCheckError sends a HealthCheckError custom event to New Relic.
func (h *HealthHandler) recordHealthCheckError(checkType string, attrs map[string]interface{}) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	attrs["check_type"] = checkType
	attrs["operation"] = "health_check"
	attrs["error_type"] = checkType + "_unhealthy"
	app.RecordCustomEvent("HealthCheckError", attrs)
}
