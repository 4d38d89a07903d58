package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerSuite))
}

type UserHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	userService *service_mocks.MockUserServiceInterface
	handler     *UserHandler
	e           *echo.Echo
}

func (s *UserHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userService = service_mocks.NewMockUserServiceInterface(s.ctrl)
	s.handler = NewUserHandler(s.userService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *UserHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UserHandlerSuite) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *UserHandlerSuite) TestAddUser() {
	s.userService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, user *models.User) (*models.User, error) {
			s.Equal(int64(123123), user.ID)
			s.Equal("mosh", user.FirstName)
			s.Equal("israeli", user.LastName)
			s.Equal(time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC), user.Birthday)
			return user, nil
		})

	c, rec := s.request(http.MethodPost, "/api/add", `{"id":123123,"first_name":"mosh","last_name":"israeli","birthday":"1990-01-15"}`)
	s.NoError(s.handler.AddUser(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"id":123123,"first_name":"mosh","last_name":"israeli","birthday":"1990-01-15T00:00:00Z"}`, rec.Body.String())
}

func (s *UserHandlerSuite) TestAddUser_Duplicate() {
	s.userService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserAlreadyExists)

	c, rec := s.request(http.MethodPost, "/api/add", `{"id":1,"first_name":"a","last_name":"b","birthday":"2000-02-02"}`)
	s.NoError(s.handler.AddUser(c))
	s.Equal(http.StatusConflict, rec.Code)

	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("USER_002", resp.Code)
}

func (s *UserHandlerSuite) TestAddUser_Invalid() {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing id", `{"first_name":"a","last_name":"b","birthday":"2000-02-02"}`, "id"},
		{"negative id", `{"id":-1,"first_name":"a","last_name":"b","birthday":"2000-02-02"}`, "id"},
		{"missing first name", `{"id":1,"last_name":"b","birthday":"2000-02-02"}`, "first_name"},
		{"bad birthday", `{"id":1,"first_name":"a","last_name":"b","birthday":"02/02/2000"}`, "birthday"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, _ := s.request(http.MethodPost, "/api/add", tt.body)
			err := s.handler.AddUser(c)

			var verrs validator.ValidationErrors
			s.Require().True(errors.As(err, &verrs))
			s.Equal(tt.field, verrs[0].Field())
		})
	}
}

func (s *UserHandlerSuite) TestListUsers() {
	users := []models.User{
		{ID: 1, FirstName: "a", LastName: "b"},
		{ID: 2, FirstName: "c", LastName: "d"},
	}
	s.userService.EXPECT().ListUsers(gomock.Any()).Return(users, nil)

	c, rec := s.request(http.MethodGet, "/api/users", "")
	s.NoError(s.handler.ListUsers(c))
	s.Equal(http.StatusOK, rec.Code)

	var got []models.User
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Len(got, 2)
}

func (s *UserHandlerSuite) TestListUsers_Failure() {
	s.userService.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("boom"))

	c, rec := s.request(http.MethodGet, "/api/users", "")
	s.NoError(s.handler.ListUsers(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "boom")
}

func (s *UserHandlerSuite) TestGetUser() {
	s.userService.EXPECT().GetUserDetails(gomock.Any(), int64(123123)).Return(&models.UserDetails{
		FirstName: "mosh",
		LastName:  "israeli",
		ID:        123123,
		Total:     decimal.RequireFromString("20.5"),
	}, nil)

	c, rec := s.request(http.MethodGet, "/api/users/123123", "")
	c.SetParamNames("id")
	c.SetParamValues("123123")

	s.NoError(s.handler.GetUser(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"first_name":"mosh","last_name":"israeli","id":123123,"total":20.5}`, rec.Body.String())
}

func (s *UserHandlerSuite) TestGetUser_Errors() {
	tests := []struct {
		name       string
		param      string
		setupMocks func()
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not a number",
			param:      "abc",
			setupMocks: func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "USER_003",
		},
		{
			name:       "not found",
			param:      "42",
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_001",
			setupMocks: func() {
				s.userService.EXPECT().GetUserDetails(gomock.Any(), int64(42)).Return(nil, services.ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setupMocks()

			c, rec := s.request(http.MethodGet, "/api/users/"+tt.param, "")
			c.Set(TraceIDContextKey, "trace-9")
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			s.NoError(s.handler.GetUser(c))
			s.Equal(tt.wantStatus, rec.Code)

			var resp ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(tt.wantCode, resp.Code)
			s.Equal("trace-9", resp.ID)
			s.NotEmpty(resp.Message)
		})
	}
}
