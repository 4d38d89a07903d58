package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// CostHandler serves the costs service: adding costs and monthly reports
type CostHandler struct {
	costService   services.CostServiceInterface
	reportService services.ReportServiceInterface
}

// NewCostHandler creates a new cost handler
func NewCostHandler(costService services.CostServiceInterface, reportService services.ReportServiceInterface) *CostHandler {
	return &CostHandler{
		costService:   costService,
		reportService: reportService,
	}
}

// AddCost records a new cost for an existing user
//
// Method: POST /api/add
//
// Request body: {description, category, userid, sum, created_at?}
// created_at accepts RFC3339 or YYYY-MM-DD and defaults to now.
//
// Success Response: 201 Created with the saved cost
// Error Responses:
//   - 400: VALIDATION_001 invalid body, COST_001 unknown category
//   - 404: USER_001 user does not exist
//   - 500: SYSTEM_001
func (h *CostHandler) AddCost(c echo.Context) error {
	var req dto.AddCostRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	cost, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	cost, err = h.costService.AddCost(c.Request().Context(), cost)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, cost)
}

// GetReport returns the monthly report of a user
//
// Method: GET /api/report?id=&year=&month=
//
// Past months are served from the stored report when one exists; the
// current and future months are always computed.
//
// Success Response: 200 OK {userid, year, month, costs}
// Error Responses:
//   - 400: REPORT_001 missing parameter, VALIDATION_003 non-integer parameter,
//     REPORT_002 month out of range
//   - 404: USER_001 user does not exist
//   - 500: SYSTEM_001
func (h *CostHandler) GetReport(c echo.Context) error {
	var req dto.ReportRequest
	var missing []string

	for _, p := range []struct {
		name string
		dst  func(int64)
	}{
		{"id", func(v int64) { req.UserID = v }},
		{"year", func(v int64) { req.Year = int(v) }},
		{"month", func(v int64) { req.Month = int(v) }},
	} {
		value, err := requiredInt64Param(c, p.name)
		switch {
		case errors.Is(err, errMissingParam):
			missing = append(missing, p.name)
		case err != nil:
			return SendError(c, apierrors.ValidationInvalidFormat,
				apierrors.WithDetails(fmt.Sprintf("%s must be an integer", p.name)))
		default:
			p.dst(value)
		}
	}

	if len(missing) > 0 {
		details := make([]string, len(missing))
		for i, name := range missing {
			details[i] = name + ": is required"
		}
		return SendError(c, apierrors.ReportMissingParameters, apierrors.WithDetails(details...))
	}

	if req.Month < 1 || req.Month > 12 {
		return SendError(c, apierrors.ReportInvalidPeriod, apierrors.WithDetails("month must be between 1 and 12"))
	}

	report, err := h.reportService.GetReport(c.Request().Context(), req.UserID, req.Year, req.Month)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
