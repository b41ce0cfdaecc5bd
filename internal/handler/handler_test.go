package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/config"
	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store/memory"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		AccessTokenTTLMin:  15,
		RefreshTokenTTLDay: 7,
		BcryptCost:         4, // keep the test suite fast
	}
}

// doJSON runs a handler against a JSON request and returns the recorder.
func doJSON(t *testing.T, h echo.HandlerFunc, method, target string, body any, setup func(echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	require.NoError(t, h(c))
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// newQueryRequest builds a GET request whose query string survives into
// echo's QueryParam.
func newQueryRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func runHandler(t *testing.T, h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func withParam(name, value string) func(echo.Context) {
	return func(c echo.Context) {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}
}

func seedActiveTour(t *testing.T, s *memory.Store) *model.Tour {
	t.Helper()
	tour := &model.Tour{Name: "Valley Circuit", DurationDays: 7, PriceCents: 100_000, Category: "Cultural"}
	require.NoError(t, s.CreateTour(context.Background(), tour))
	return tour
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	c := echo.New().NewContext(req, rec)
	require.NoError(t, Health(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}
