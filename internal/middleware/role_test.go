package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/utils"
)

func runRoleChain(t *testing.T, role string, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}
	handler := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRole(t *testing.T) {
	require.Equal(t, http.StatusOK, runRoleChain(t, "ADMIN", "ADMIN").Code)
	require.Equal(t, http.StatusForbidden, runRoleChain(t, "TOURIST", "ADMIN").Code)
	require.Equal(t, http.StatusForbidden, runRoleChain(t, "", "ADMIN").Code)
	require.Equal(t, http.StatusOK, runRoleChain(t, "DRIVER", "GUIDE", "DRIVER").Code)
}

// Tourist access tokens must not open admin routes even when the token
// itself is perfectly valid.
func TestAdminRouteRejectsTouristToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "pema@example.bt", "TOURIST", 15)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	chain := JWTAuth(testSecret)(RequireRole("ADMIN")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))
	require.NoError(t, chain(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
}
