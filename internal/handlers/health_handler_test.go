package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		ping       PingFunc
		wantStatus int
		wantCode   string
	}{
		{
			name:       "healthy",
			ping:       func(context.Context) error { return nil },
			wantStatus: http.StatusOK,
		},
		{
			name:       "database down",
			ping:       func(context.Context) error { return errors.New("dial tcp: refused") },
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SYSTEM_003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			require.NoError(t, NewHealthCheckHandler("costs", tt.ping).HealthCheck(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantCode == "" {
				assert.Equal(t, "healthy", body["status"])
				assert.Equal(t, "costs", body["service"])
				return
			}
			assert.Equal(t, tt.wantCode, body["code"])
			assert.NotContains(t, rec.Body.String(), "refused")
		})
	}
}
