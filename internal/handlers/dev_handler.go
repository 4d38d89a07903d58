package handlers

import (
	"fmt"
	"net/http"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultGeneratedCosts  = 50
	defaultGeneratedMonths = 3
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	costService services.CostServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(costService services.CostServiceInterface) *DevHandler {
	return &DevHandler{costService: costService}
}

// GenerateCosts fabricates realistic costs for an existing user
//
// Method: POST /api/dev/users/:id/generate-costs
// Environment: Development only
//
// Query parameters:
//   - count: Number of costs to generate (default: 50, max: 500)
//   - months: Months of history ending with the current one (default: 3, max: 24)
//
// Success Response: 201 Created {data, message, meta}
// Error Responses:
//   - 400: Invalid user id or parameters
//   - 404: User not found
//   - 500: Internal server error
func (h *DevHandler) GenerateCosts(c echo.Context) error {
	userID, err := pathInt64Param(c, "id")
	if err != nil {
		return SendError(c, apierrors.UserInvalidID, apierrors.WithDetails("id must be a positive integer"))
	}

	var req dto.GenerateCostsRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("count and months must be integers"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.Count == 0 {
		req.Count = defaultGeneratedCosts
	}
	if req.Months == 0 {
		req.Months = defaultGeneratedMonths
	}

	costs, err := h.costService.GenerateCosts(c.Request().Context(), userID, req.Count, req.Months)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    costs,
		Message: fmt.Sprintf("generated %d costs", len(costs)),
		Meta: dto.GenerateCostsMeta{
			UserID: userID,
			Count:  len(costs),
			Months: req.Months,
		},
	})
}
