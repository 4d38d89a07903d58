package handlers

import (
	"net/http"

	"finance-tracker/internal/models"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the admin service
type AdminHandler struct {
	developers []models.Developer
}

// NewAdminHandler creates an admin handler for a fixed team list
func NewAdminHandler(developers []models.Developer) *AdminHandler {
	if developers == nil {
		developers = []models.Developer{}
	}
	return &AdminHandler{developers: developers}
}

// About lists the developers of the project
//
// Method: GET /api/about
//
// Success Response: 200 OK [{first_name, last_name}]
func (h *AdminHandler) About(c echo.Context) error {
	return c.JSON(http.StatusOK, h.developers)
}
