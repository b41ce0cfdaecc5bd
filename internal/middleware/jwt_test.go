package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/utils"
)

const testSecret = "test-secret"

func runChain(t *testing.T, mw echo.MiddlewareFunc, authorization string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "pema@example.bt", "TOURIST", 15)
	require.NoError(t, err)

	rec, c := runChain(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, uint64(42), c.Get("user_id"))
	require.Equal(t, "pema@example.bt", c.Get("email"))
	require.Equal(t, "TOURIST", c.Get("role"))
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec, _ := runChain(t, JWTAuth(testSecret), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 42, "pema@example.bt", "TOURIST", 15)
	require.NoError(t, err)

	rec, _ := runChain(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "pema@example.bt", "TOURIST", -1)
	require.NoError(t, err)

	rec, _ := runChain(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsGarbage(t *testing.T) {
	rec, _ := runChain(t, JWTAuth(testSecret), "Bearer not.a.jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
