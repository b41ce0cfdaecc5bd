package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/config"
)

func testRateConfig(capacity int) config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       capacity,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            10 * time.Minute,
		KeyStrategy:    "ip_route",
		Prefix:         "tbp:rl",
	}
}

func newLimitedServer(cfg config.RateLimitConfig, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.Use(NewTokenBucket(cfg, rdb))
	e.GET("/v1/tours", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestTokenBucketBlocksWhenEmpty(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	e := newLimitedServer(testRateConfig(2), rdb)

	for i := 0; i < 2; i++ {
		rec := serve(e, http.MethodGet, "/v1/tours", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := serve(e, http.MethodGet, "/v1/tours", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestTokenBucketFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	e := newLimitedServer(testRateConfig(1), rdb)
	mr.Close()

	// With Redis gone every request passes.
	for i := 0; i < 3; i++ {
		rec := serve(e, http.MethodGet, "/v1/tours", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestTokenBucketNoopWithoutRedis(t *testing.T) {
	e := newLimitedServer(testRateConfig(1), nil)
	for i := 0; i < 3; i++ {
		rec := serve(e, http.MethodGet, "/v1/tours", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

// The default key is ip+route; user segments only appear on strategies
// meant for limiters mounted behind the JWT middleware.
func TestBuildRateKeyStrategies(t *testing.T) {
	newCtx := func() echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/v1/tours", nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())
		c.SetPath("/v1/tours")
		return c
	}

	cfg := testRateConfig(1)
	require.NotContains(t, buildRateKey(cfg, newCtx()), "anon")

	cfg.KeyStrategy = "user_route"
	require.Contains(t, buildRateKey(cfg, newCtx()), "user:anon")

	c := newCtx()
	c.Set("user_id", uint64(42))
	require.Contains(t, buildRateKey(cfg, c), "user:42")
}
