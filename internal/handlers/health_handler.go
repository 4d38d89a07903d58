package handlers

import (
	"context"
	"net/http"
	"time"

	"finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// PingFunc reports whether the backing store is reachable
type PingFunc func(ctx context.Context) error

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	service string
	ping    PingFunc
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(service string, ping PingFunc) *HealthCheckHandler {
	return &HealthCheckHandler{service: service, ping: ping}
}

// HealthCheck reports service and database status
//
// Method: GET /health
//
// Success Response: 200 OK {status, service, time}
// Error Responses:
//   - 503: SYSTEM_003 database unreachable
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": h.service,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
