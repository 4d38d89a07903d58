package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs every request through slog and, when sink is non-nil,
// hands a models.Log to it for asynchronous persistence. The response is
// never delayed by persistence.
func RequestLogger(service string, logger *slog.Logger, sink services.LogServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status is final.
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			level := levelForStatus(status)
			traceID := GetTraceID(c)
			duration := time.Since(start)

			logger.Log(req.Context(), slogLevel(level), "request",
				"service", service,
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", duration.Milliseconds(),
				"remote_ip", c.RealIP(),
				"trace_id", traceID,
			)

			if sink != nil {
				sink.Enqueue(models.Log{
					Level:   level,
					Message: fmt.Sprintf("%s %s %d %dms", req.Method, req.URL.Path, status, duration.Milliseconds()),
					Service: service,
					Method:  req.Method,
					Path:    truncate(req.URL.Path, 2048),
					Status:  status,
					TraceID: traceID,
				})
			}

			return nil
		}
	}
}

func levelForStatus(status int) string {
	switch {
	case status >= 500:
		return models.LogLevelError
	case status >= 400:
		return models.LogLevelWarn
	default:
		return models.LogLevelInfo
	}
}

func slogLevel(level string) slog.Level {
	switch level {
	case models.LogLevelError:
		return slog.LevelError
	case models.LogLevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
