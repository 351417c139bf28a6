package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/flats-api/internal/config"
	"github.com/deppfellow/flats-api/internal/server"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func newHealthHandler(db Pinger, checksEnabled bool) *HealthHandler {
	logger := zerolog.Nop()
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Enabled = checksEnabled

	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: obs,
		},
		Logger: &logger,
	}
	return &HealthHandler{Handler: NewHandler(s), db: db}
}

func checkHealth(t *testing.T, h *HealthHandler) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
	require.NoError(t, h.CheckHealth(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		checks     bool
		wantStatus int
		wantState  string
	}{
		{"database reachable", fakePinger{}, true, http.StatusOK, "healthy"},
		{"database down", fakePinger{err: errors.New("connection refused")}, true, http.StatusServiceUnavailable, "unhealthy"},
		{"no database configured", nil, true, http.StatusServiceUnavailable, "unhealthy"},
		{"checks disabled", fakePinger{err: errors.New("connection refused")}, false, http.StatusOK, "healthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := checkHealth(t, newHealthHandler(tt.db, tt.checks))
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantState, body["status"])
			assert.Equal(t, "test", body["environment"])
		})
	}
}

func TestCheckHealthReportsDatabaseError(t *testing.T) {
	_, body := checkHealth(t, newHealthHandler(fakePinger{err: errors.New("connection refused")}, true))

	checks := body["checks"].(map[string]any)
	database := checks["database"].(map[string]any)
	assert.Equal(t, "unhealthy", database["status"])
	assert.Equal(t, "connection refused", database["error"])
}
