package handlers

import (
	"net/http"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// LogHandler serves the logs service
type LogHandler struct {
	logService services.LogServiceInterface
}

// NewLogHandler creates a new log handler
func NewLogHandler(logService services.LogServiceInterface) *LogHandler {
	return &LogHandler{logService: logService}
}

// ListLogs returns persisted request logs, newest first
//
// Method: GET /api/logs?limit=&offset=
//
// Query parameters:
//   - limit: page size (default: 1000, max: 5000)
//   - offset: rows to skip (default: 0)
func (h *LogHandler) ListLogs(c echo.Context) error {
	var req dto.ListLogsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("limit and offset must be integers"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	logs, err := h.logService.ListLogs(c.Request().Context(), req.Offset, req.Limit)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, logs)
}
