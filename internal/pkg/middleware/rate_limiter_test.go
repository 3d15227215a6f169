package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiter(t *testing.T, limit int) (echo.HandlerFunc, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	mw := RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "ratelimit",
		Limit:       limit,
		Period:      time.Minute,
	})

	return mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}), mr
}

func performLimitedRequest(t *testing.T, handler echo.HandlerFunc) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/users/login")

	require.NoError(t, handler(c))
	return rec.Code
}

func TestRateLimiterMiddleware_UnderLimit(t *testing.T) {
	handler, _ := setupRateLimiter(t, 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, performLimitedRequest(t, handler))
	}
}

func TestRateLimiterMiddleware_OverLimit(t *testing.T) {
	handler, _ := setupRateLimiter(t, 2)

	assert.Equal(t, http.StatusOK, performLimitedRequest(t, handler))
	assert.Equal(t, http.StatusOK, performLimitedRequest(t, handler))
	assert.Equal(t, http.StatusTooManyRequests, performLimitedRequest(t, handler))
}

func TestRateLimiterMiddleware_WindowReset(t *testing.T) {
	handler, mr := setupRateLimiter(t, 1)

	assert.Equal(t, http.StatusOK, performLimitedRequest(t, handler))
	assert.Equal(t, http.StatusTooManyRequests, performLimitedRequest(t, handler))

	// Expire the window
	mr.FastForward(2 * time.Minute)

	assert.Equal(t, http.StatusOK, performLimitedRequest(t, handler))
}
