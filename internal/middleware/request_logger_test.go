package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/models"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestLoggerTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	sink   *service_mocks.MockLogServiceInterface
	buf    *bytes.Buffer
	logger *slog.Logger
	echo   *echo.Echo
}

func TestRequestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestLoggerTestSuite))
}

func (s *RequestLoggerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sink = service_mocks.NewMockLogServiceInterface(s.ctrl)
	s.buf = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func (s *RequestLoggerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RequestLoggerTestSuite) serve(sink *service_mocks.MockLogServiceInterface, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/report?id=1", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc")

	var mw echo.MiddlewareFunc
	if sink == nil {
		mw = RequestLogger("costs", s.logger, nil)
	} else {
		mw = RequestLogger("costs", s.logger, sink)
	}
	s.NoError(mw(next)(c))
	return rec
}

func (s *RequestLoggerTestSuite) TestPersistsSuccessfulRequest() {
	s.sink.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(entry models.Log) bool {
		s.Equal(models.LogLevelInfo, entry.Level)
		s.Equal("costs", entry.Service)
		s.Equal(http.MethodGet, entry.Method)
		s.Equal("/api/report", entry.Path)
		s.Equal(http.StatusOK, entry.Status)
		s.Equal("trace-abc", entry.TraceID)
		s.Contains(entry.Message, "GET /api/report 200")
		return true
	})

	rec := s.serve(s.sink, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.buf.String(), `"trace_id":"trace-abc"`)
	s.Contains(s.buf.String(), `"level":"INFO"`)
}

func (s *RequestLoggerTestSuite) TestRecordsFinalStatusOfHandlerError() {
	s.sink.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(entry models.Log) bool {
		s.Equal(models.LogLevelError, entry.Level)
		s.Equal(http.StatusInternalServerError, entry.Status)
		return true
	})

	rec := s.serve(s.sink, func(c echo.Context) error {
		return errors.New("boom")
	})

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.Contains(s.buf.String(), `"level":"ERROR"`)
}

func (s *RequestLoggerTestSuite) TestDroppedEntryDoesNotFailRequest() {
	s.sink.EXPECT().Enqueue(gomock.Any()).Return(false)

	rec := s.serve(s.sink, func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(s.buf.String(), `"level":"WARN"`)
}

func (s *RequestLoggerTestSuite) TestWithoutSinkOnlyLogs() {
	rec := s.serve(nil, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	s.Equal(http.StatusNoContent, rec.Code)
	s.Contains(s.buf.String(), `"service":"costs"`)
}
