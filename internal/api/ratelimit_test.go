package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPRateLimiter_AllowsBurstThenThrottles(t *testing.T) {
	e := echo.New()
	limiter := newIPRateLimiter(3)
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	codes := []int{}
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{200, 200, 200, 429, 429}, codes)
}

func TestIPRateLimiter_PerIPIsolation(t *testing.T) {
	e := echo.New()
	limiter := newIPRateLimiter(1)
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	first := httptest.NewRequest(http.MethodPost, "/", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(first, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Same IP is now throttled...
	again := httptest.NewRequest(http.MethodPost, "/", nil)
	again.RemoteAddr = "10.0.0.1:5678"
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(again, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// ...but a different IP has its own budget.
	other := httptest.NewRequest(http.MethodPost, "/", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(other, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
