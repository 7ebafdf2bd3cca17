package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeFunc func(e *echo.Echo)

func (f routeFunc) RegisterRoutes(e *echo.Echo) { f(e) }

type allowN struct{ left int }

func (a *allowN) Allow(string) bool {
	a.left--
	return a.left >= 0
}

func TestServerRateLimitUsesErrorEnvelope(t *testing.T) {
	routes := routeFunc(func(e *echo.Echo) {
		e.GET("/ok", func(c echo.Context) error { return SuccessResponse(c, "ok") })
	})
	srv := NewServer(routes, WithCORS(false), WithRateLimit(&allowN{left: 1}))

	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body struct {
		Status  int        `json:"status"`
		Message string     `json:"message"`
		Data    []AppError `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusTooManyRequests, body.Status)
	assert.Equal(t, "Too Many Requests", body.Message)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "ERR_RATE_LIMITED", body.Data[0].Code)
	assert.Equal(t, "rate limit exceeded", body.Data[0].Message)
}
