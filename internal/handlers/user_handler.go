package handlers

import (
	"net/http"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the users service
type UserHandler struct {
	userService services.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// AddUser registers a user with a client-chosen id
//
// Method: POST /api/add
//
// Request body: {id, first_name, last_name, birthday}
//
// Success Response: 201 Created with the saved user
// Error Responses:
//   - 400: VALIDATION_001
//   - 409: USER_002 id already taken
//   - 500: SYSTEM_001
func (h *UserHandler) AddUser(c echo.Context) error {
	var req dto.AddUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	created, err := h.userService.CreateUser(c.Request().Context(), user)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// ListUsers returns every registered user
//
// Method: GET /api/users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, users)
}

// GetUser returns a user with the total of all their costs
//
// Method: GET /api/users/:id
//
// Success Response: 200 OK {first_name, last_name, id, total}
// Error Responses:
//   - 400: USER_003 id is not a positive integer
//   - 404: USER_001
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := pathInt64Param(c, "id")
	if err != nil {
		return SendError(c, apierrors.UserInvalidID, apierrors.WithDetails("id must be a positive integer"))
	}

	details, err := h.userService.GetUserDetails(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, details)
}
