package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/api/middleware"
	"github/chapool/go-transfer/internal/util"
)

func TestLoggerNeverLogsBodies(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Level:            zerolog.InfoLevel,
		LogRequestHeader: true,
	}))

	var requestID string
	e.POST("/transfer", func(c echo.Context) error {
		id, err := util.RequestIDFromContext(c.Request().Context())
		require.NoError(t, err)
		requestID = id

		util.LogFromEchoContext(c).Info().Msg("inside handler")

		return c.NoContent(http.StatusNoContent)
	})

	body := `{"secret_key":"abandon abandon abandon"}`
	req := httptest.NewRequest(http.MethodPost, "/transfer", strings.NewReader(body))
	req.Header.Set(echo.HeaderAuthorization, "Bearer top-secret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotEmpty(t, requestID)
	assert.Equal(t, requestID, rec.Header().Get(echo.HeaderXRequestID))

	out := buf.String()
	assert.Contains(t, out, "inside handler")
	assert.Contains(t, out, "http_request")
	assert.Contains(t, out, requestID)
	assert.NotContains(t, out, "abandon")
	assert.NotContains(t, out, "top-secret")
}

func TestRequestIDKeepsClientValue(t *testing.T) {
	e := echo.New()
	e.Use(middleware.RequestID())
	e.GET("/", func(c echo.Context) error {
		id, err := util.RequestIDFromContext(c.Request().Context())
		require.NoError(t, err)

		return c.String(http.StatusOK, id)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id", rec.Body.String())
}
