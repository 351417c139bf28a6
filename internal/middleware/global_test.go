package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/flats-api/internal/config"
	"github.com/deppfellow/flats-api/internal/errs"
	"github.com/deppfellow/flats-api/internal/server"
)

func newGlobal() *GlobalMiddlewares {
	logger := zerolog.Nop()
	return NewGlobalMiddlewares(&server.Server{
		Config: &config.Config{Server: config.ServerConfig{CORSAllowedOrigins: []string{"*"}}},
		Logger: &logger,
	})
}

func renderError(t *testing.T, method string, err error) (int, errs.HTTPError, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(method, "/flats", nil), rec)
	newGlobal().GlobalErrorHandler(err, c)

	var body errs.HTTPError
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body, rec.Body.String()
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"domain error", errs.NewNotFoundError("Flat not found", true, nil), http.StatusNotFound, "NOT_FOUND"},
		{"wrapped domain error", fmt.Errorf("get: %w", errs.NewBadRequestError("bad", false, nil, nil)), http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrong method", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"unique violation", &pgconn.PgError{Code: "23505", TableName: "flats", ConstraintName: "flats_email_key"}, http.StatusBadRequest, "FLAT_ALREADY_EXISTS"},
		{"plain error", errors.New("dial tcp 10.0.0.5:5432: connection refused"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, _ := renderError(t, http.MethodGet, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestGlobalErrorHandlerHidesInternalDetails(t *testing.T) {
	_, body, raw := renderError(t, http.MethodPost, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, "Internal Server Error", body.Message)
	assert.NotContains(t, raw, "10.0.0.5")
}

func TestGlobalErrorHandlerHeadHasNoBody(t *testing.T) {
	status, _, raw := renderError(t, http.MethodHead, echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Empty(t, raw)
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	}, RequestID())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestEnhanceContextSharesLogger(t *testing.T) {
	logger := zerolog.New(nil)
	ce := NewContextEnhancer(&server.Server{Logger: &logger})

	e := echo.New()
	var fromEcho, fromContext *zerolog.Logger
	e.GET("/flats/:id", func(c echo.Context) error {
		fromEcho = GetLogger(c)
		fromContext = zerolog.Ctx(c.Request().Context())
		return nil
	}, RequestID(), ce.EnhanceContext())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/flats/1", nil))
	require.NotNil(t, fromEcho)
	assert.Equal(t, *fromEcho, *fromContext)
}
