package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func testConfig(service string) *config.Config {
	return &config.Config{
		Service: service,
		Server: config.ServerConfig{
			Port:             "0",
			Host:             "127.0.0.1",
			Environment:      "development",
			ReadTimeout:      5 * time.Second,
			WriteTimeout:     5 * time.Second,
			ShutdownTimeout:  5 * time.Second,
			CORSAllowOrigins: []string{"*"},
		},
		Security: config.SecurityConfig{RateLimitPerSecond: 1000, RateLimitBurst: 1000},
		Admin: config.AdminConfig{Developers: []config.Developer{
			{FirstName: "Michael", LastName: "Yehoshua"},
			{FirstName: "Shaked", LastName: "Avdar"},
		}},
		Logging: config.LoggingConfig{Level: slog.LevelInfo, Persist: false},
	}
}

type ServerSuite struct {
	suite.Suite
	db     *database.DB
	stores *Stores
	logger *slog.Logger
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.stores = NewGormStores(s.db)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *ServerSuite) newServer(service string) *Server {
	srv, err := New(testConfig(service), s.stores, s.logger, WithClock(func() time.Time { return fixedNow }), WithGeneratorSeed(7))
	s.Require().NoError(err)
	return srv
}

func (s *ServerSuite) do(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) countReports() int64 {
	var n int64
	s.Require().NoError(s.db.Model(&models.Report{}).Count(&n).Error)
	return n
}

func (s *ServerSuite) TestCostsService_ReportLifecycle() {
	database.CreateTestUser(s.T(), s.db, 123123)
	srv := s.newServer(config.ServiceCosts)

	rec := s.do(srv, http.MethodPost, "/api/add",
		`{"description":"pizza","category":"food","userid":123123,"sum":8,"created_at":"2025-02-05T12:00:00Z"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))

	rec = s.do(srv, http.MethodGet, "/api/report?id=123123&year=2025&month=2", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	want := `{"userid":123123,"year":2025,"month":2,"costs":[
		{"food":[{"sum":8,"description":"pizza","day":5}]},
		{"health":[]},{"housing":[]},{"sports":[]},{"education":[]}]}`
	s.JSONEq(want, rec.Body.String())
	s.Equal(int64(1), s.countReports())

	// A late cost for the closed month does not change the stored report.
	rec = s.do(srv, http.MethodPost, "/api/add",
		`{"description":"salad","category":"health","userid":123123,"sum":4,"created_at":"2025-02-20T12:00:00Z"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(srv, http.MethodGet, "/api/report?id=123123&year=2025&month=2", "")
	s.JSONEq(want, rec.Body.String())
	s.Equal(int64(1), s.countReports())
}

func (s *ServerSuite) TestCostsService_CurrentMonthIsNeverStored() {
	database.CreateTestUser(s.T(), s.db, 1)
	srv := s.newServer(config.ServiceCosts)

	rec := s.do(srv, http.MethodPost, "/api/add", `{"description":"rent","category":"housing","userid":1,"sum":1500}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(srv, http.MethodGet, "/api/report?id=1&year=2025&month=3", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"housing":[{"sum":1500,"description":"rent","day":15}]`)
	s.Equal(int64(0), s.countReports())
}

func (s *ServerSuite) TestCostsService_Errors() {
	srv := s.newServer(config.ServiceCosts)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"unknown user report", http.MethodGet, "/api/report?id=9&year=2025&month=2", "", http.StatusNotFound, "USER_001"},
		{"missing params", http.MethodGet, "/api/report?id=9", "", http.StatusBadRequest, "REPORT_001"},
		{"invalid category", http.MethodPost, "/api/add", `{"description":"x","category":"travel","userid":9,"sum":1}`, http.StatusBadRequest, "VALIDATION_001"},
		{"unknown user cost", http.MethodPost, "/api/add", `{"description":"x","category":"food","userid":9,"sum":1}`, http.StatusNotFound, "USER_001"},
		{"unknown route", http.MethodGet, "/api/nope", "", http.StatusNotFound, "RESOURCE_001"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(srv, tt.method, tt.target, tt.body)
			s.Equal(tt.wantStatus, rec.Code, rec.Body.String())

			var resp map[string]interface{}
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(tt.wantCode, resp["code"])
			s.NotEmpty(resp["id"])
			s.NotEmpty(resp["message"])
		})
	}
}

func (s *ServerSuite) TestCostsService_DevGenerator() {
	database.CreateTestUser(s.T(), s.db, 5)
	srv := s.newServer(config.ServiceCosts)

	rec := s.do(srv, http.MethodPost, "/api/dev/users/5/generate-costs?count=12&months=2", "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var n int64
	s.Require().NoError(s.db.Model(&models.Cost{}).Where("user_id = ?", 5).Count(&n).Error)
	s.Equal(int64(12), n)
}

func (s *ServerSuite) TestUsersService() {
	srv := s.newServer(config.ServiceUsers)

	body := `{"id":123123,"first_name":"mosh","last_name":"israeli","birthday":"1990-01-15"}`
	rec := s.do(srv, http.MethodPost, "/api/add", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(srv, http.MethodPost, "/api/add", body)
	s.Equal(http.StatusConflict, rec.Code)

	database.CreateTestCost(s.T(), s.db, 123123, "food", "pizza", 8, fixedNow)
	database.CreateTestCost(s.T(), s.db, 123123, "sports", "gym", 12, fixedNow)

	rec = s.do(srv, http.MethodGet, "/api/users/123123", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"first_name":"mosh","last_name":"israeli","id":123123,"total":20}`, rec.Body.String())

	rec = s.do(srv, http.MethodGet, "/api/users", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var users []models.User
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &users))
	s.Len(users, 1)

	rec = s.do(srv, http.MethodGet, "/api/users/77", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerSuite) TestAdminService() {
	srv := s.newServer(config.ServiceAdmin)

	rec := s.do(srv, http.MethodGet, "/api/about", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"first_name":"Michael","last_name":"Yehoshua"},{"first_name":"Shaked","last_name":"Avdar"}]`, rec.Body.String())
}

func (s *ServerSuite) TestLogsService_ListsPersistedRequests() {
	cfg := testConfig(config.ServiceAdmin)
	cfg.Logging.Persist = true
	admin, err := New(cfg, s.stores, s.logger)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		admin.logService.Run(ctx)
	}()

	s.Equal(http.StatusOK, s.do(admin, http.MethodGet, "/api/about", "").Code)
	s.Equal(http.StatusOK, s.do(admin, http.MethodGet, "/api/about", "").Code)

	cancel()
	<-done

	logs := s.newServer(config.ServiceLogs)
	rec := s.do(logs, http.MethodGet, "/api/logs?limit=10", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var entries []models.Log
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entries))
	s.Require().Len(entries, 2)
	for _, entry := range entries {
		s.Equal("admin", entry.Service)
		s.Equal("/api/about", entry.Path)
		s.Equal(http.StatusOK, entry.Status)
		s.NotEmpty(entry.TraceID)
	}
}

func (s *ServerSuite) TestHealthAndMetrics() {
	srv := s.newServer(config.ServiceCosts)

	rec := s.do(srv, http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"service":"costs"`)

	database.CreateTestUser(s.T(), s.db, 3)
	s.do(srv, http.MethodGet, "/api/report?id=3&year=2024&month=1", "")

	rec = s.do(srv, http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "report_cache_lookups_total")
	s.Contains(rec.Body.String(), "go_goroutines")
}

func (s *ServerSuite) TestDocsServeServiceDocument() {
	srv := s.newServer(config.ServiceUsers)

	rec := s.do(srv, http.MethodGet, "/docs/openapi.json", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"/api/users/{id}"`)
	s.NotContains(rec.Body.String(), `"/api/report"`)

	rec = s.do(srv, http.MethodGet, "/docs", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Security-Policy"), "cdn.jsdelivr.net")
}

func (s *ServerSuite) TestUnknownService() {
	_, err := New(testConfig("billing"), s.stores, s.logger)
	s.Error(err)
}

func (s *ServerSuite) TestInvalidTrustedProxies() {
	cfg := testConfig(config.ServiceAdmin)
	cfg.Security.TrustedProxies = []string{"10.0.0.0/33"}

	_, err := New(cfg, s.stores, s.logger)
	s.ErrorContains(err, "trusted proxy")
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	db := database.SetupTestDB(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	srv, err := New(testConfig(config.ServiceAdmin), NewGormStores(db), logger)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if !strings.Contains(buf.String(), "shutting down") {
		t.Errorf("expected shutdown log, got %q", buf.String())
	}
}
