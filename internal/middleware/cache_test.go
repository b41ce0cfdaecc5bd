package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/config"
	"github.com/sonamdorji/tour-booking-platform/internal/utils"
)

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{http.MethodGet: true},
		TTL:          time.Minute,
		KeyStrategy:  "route_query",
		Prefix:       "tbp:cache",
		MaxBodyBytes: 1 << 20,
	}
}

// newCachedServer wires the cache the same way main does: globally, in
// front of the per-group auth middleware. hits counts handler
// executions on the public route.
func newCachedServer(t *testing.T, rdb *redis.Client) (*echo.Echo, *atomic.Int64) {
	t.Helper()
	e := echo.New()
	e.Use(NewRedisCache(testCacheConfig(), rdb))

	var hits atomic.Int64
	e.GET("/v1/tours", func(c echo.Context) error {
		hits.Add(1)
		return c.JSON(http.StatusOK, []string{"Druk Path Trek"})
	})

	admin := e.Group("/v1/admin", JWTAuth(testSecret), RequireRole("ADMIN"))
	admin.GET("/bookings", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"bookings": "admin only"})
	})
	return e, &hits
}

func serve(e *echo.Echo, method, target, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCacheHitOnPublicRoute(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	e, hits := newCachedServer(t, rdb)

	first := serve(e, http.MethodGet, "/v1/tours", "")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := serve(e, http.MethodGet, "/v1/tours", "")
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, "HIT", second.Header().Get("X-Cache"))
	require.Equal(t, first.Body.String(), second.Body.String())
	require.Equal(t, int64(1), hits.Load())
}

// An authorized response must never be replayed to a caller that did not
// authenticate: the cache skips requests carrying Authorization, so an
// anonymous request to an admin route always reaches the auth middleware.
func TestCacheNeverLeaksAuthorizedResponses(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	e, _ := newCachedServer(t, rdb)

	tok, err := utils.NewAccessToken(testSecret, 1, "admin@example.bt", "ADMIN", 15)
	require.NoError(t, err)

	// Prime: the admin sees their data, and nothing is stored.
	rec := serve(e, http.MethodGet, "/v1/admin/bookings", tok.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("X-Cache"))
	require.Empty(t, mr.Keys())

	// Anonymous replay attempt still hits JWTAuth and is rejected.
	rec = serve(e, http.MethodGet, "/v1/admin/bookings", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotEqual(t, "HIT", rec.Header().Get("X-Cache"))
	require.NotContains(t, rec.Body.String(), "admin only")

	// The 401 itself is not cached either.
	rec = serve(e, http.MethodGet, "/v1/admin/bookings", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotEqual(t, "HIT", rec.Header().Get("X-Cache"))
}

func TestCacheSkipsRequestsWithBearer(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	e, hits := newCachedServer(t, rdb)

	// Anonymous traffic fills the cache for the public route.
	serve(e, http.MethodGet, "/v1/tours", "")
	require.Equal(t, int64(1), hits.Load())

	// A caller with a token bypasses it in both directions.
	tok, err := utils.NewAccessToken(testSecret, 1, "admin@example.bt", "ADMIN", 15)
	require.NoError(t, err)
	rec := serve(e, http.MethodGet, "/v1/tours", tok.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("X-Cache"))
	require.Equal(t, int64(2), hits.Load())
}

func TestCacheNoopWithoutRedis(t *testing.T) {
	e, hits := newCachedServer(t, nil)

	for i := 0; i < 2; i++ {
		rec := serve(e, http.MethodGet, "/v1/tours", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("X-Cache"))
	}
	require.Equal(t, int64(2), hits.Load())
}

func TestCacheFailsOpenWhenRedisDies(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	e, hits := newCachedServer(t, rdb)
	mr.Close()

	rec := serve(e, http.MethodGet, "/v1/tours", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(1), hits.Load())
}
