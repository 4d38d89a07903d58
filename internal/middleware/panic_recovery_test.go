package middleware

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo   *echo.Echo
	buf    *bytes.Buffer
	logger *slog.Logger
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
	s.buf = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.buf, nil))
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestPanicBecomesError() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		panic("test panic")
	})

	var err error
	s.NotPanics(func() {
		err = handler(c)
	})

	var panicErr *PanicError
	s.Require().True(stderrors.As(err, &panicErr))
	s.Equal("test panic", panicErr.Value)
	s.NotEmpty(panicErr.Stack)
	s.Equal("panic: test panic", err.Error())
	s.False(c.Response().Committed)

	s.Contains(s.buf.String(), `"msg":"panic recovered"`)
	s.Contains(s.buf.String(), `"trace_id":"test-trace-id"`)
}

func (s *PanicRecoveryTestSuite) TestRenderedAsSystemError() {
	s.echo.Use(PanicRecovery(s.logger))
	s.echo.GET("/boom", func(c echo.Context) error {
		panic("test panic")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Code)
	s.Equal("unknown", errorResponse.ID)
	s.NotContains(rec.Body.String(), "test panic")
}

func (s *PanicRecoveryTestSuite) TestNormalFlow() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.buf.String())
}

func (s *PanicRecoveryTestSuite) TestDifferentPanicTypes() {
	testCases := []struct {
		name      string
		panicWith interface{}
	}{
		{"String panic", "string panic"},
		{"Int panic", 42},
		{"Struct panic", struct{ msg string }{"error"}},
		{"Error panic", stderrors.New("wrapped")},
		{"Nil panic", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

			handler := PanicRecovery(s.logger)(func(c echo.Context) error {
				panic(tc.panicWith)
			})

			var err error
			s.NotPanics(func() {
				err = handler(c)
			})

			var panicErr *PanicError
			s.True(stderrors.As(err, &panicErr))
		})
	}
}

func (s *PanicRecoveryTestSuite) TestAbortHandlerIsRepanicked() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	s.PanicsWithValue(http.ErrAbortHandler, func() {
		_ = handler(c)
	})
}

func (s *PanicRecoveryTestSuite) TestPanickedRequestIsStillLogged() {
	ctrl := gomock.NewController(s.T())
	sink := service_mocks.NewMockLogServiceInterface(ctrl)

	var queued []models.Log
	sink.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(entry models.Log) bool {
		queued = append(queued, entry)
		return true
	}).Times(2)

	s.echo.Use(RequestID())
	s.echo.Use(PanicRecovery(s.logger))
	api := s.echo.Group("/api", RequestLogger("costs", s.logger, sink), PanicRecovery(s.logger))
	api.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	api.GET("/boom", func(c echo.Context) error {
		panic("handler bug")
	})

	for _, path := range []string{"/api/ok", "/api/boom"} {
		s.echo.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	s.Require().Len(queued, 2)
	s.Equal(http.StatusOK, queued[0].Status)

	boom := queued[1]
	s.Equal("/api/boom", boom.Path)
	s.Equal(http.StatusInternalServerError, boom.Status)
	s.Equal(models.LogLevelError, boom.Level)
	s.NotEmpty(boom.TraceID)
	s.Contains(s.buf.String(), `"msg":"request"`)
}
