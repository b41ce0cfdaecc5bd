package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/store/memory"
)

func registerUser(t *testing.T, h *AuthHandler, email string) authResp {
	t.Helper()
	rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register", map[string]any{
		"email":     email,
		"password":  "correct-horse",
		"full_name": "Pema Choden",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[authResp](t, rec)
}

func TestRegisterIssuesTokenPair(t *testing.T) {
	h := NewAuthHandler(testConfig(), memory.New())

	resp := registerUser(t, h, "pema@example.bt")
	require.NotEmpty(t, resp.Access.Token)
	require.NotEmpty(t, resp.Refresh.Token)
	require.Equal(t, "TOURIST", resp.User.Role)
	require.Empty(t, resp.User.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	h := NewAuthHandler(testConfig(), memory.New())

	rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register", map[string]any{
		"email": "pema@example.bt", "password": "short", "full_name": "Pema",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h.Register, http.MethodPost, "/v1/auth/register", map[string]any{
		"password": "correct-horse", "full_name": "Pema",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := NewAuthHandler(testConfig(), memory.New())
	registerUser(t, h, "pema@example.bt")

	rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register", map[string]any{
		"email": "PEMA@example.bt", "password": "correct-horse", "full_name": "Pema Choden",
	}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterCannotSelfAssignAdmin(t *testing.T) {
	h := NewAuthHandler(testConfig(), memory.New())

	rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register", map[string]any{
		"email": "boss@example.bt", "password": "correct-horse", "full_name": "Boss", "role": "ADMIN",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[authResp](t, rec)
	require.Equal(t, "TOURIST", resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	h := NewAuthHandler(testConfig(), memory.New())
	registerUser(t, h, "pema@example.bt")

	rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login", map[string]any{
		"email": "pema@example.bt", "password": "wrong-horse",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown accounts answer the same way.
	rec = doJSON(t, h.Login, http.MethodPost, "/v1/auth/login", map[string]any{
		"email": "nobody@example.bt", "password": "correct-horse",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginSucceeds(t *testing.T) {
	h := NewAuthHandler(testConfig(), memory.New())
	registerUser(t, h, "pema@example.bt")

	rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login", map[string]any{
		"email": "Pema@Example.BT", "password": "correct-horse",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[authResp](t, rec)
	require.Equal(t, "pema@example.bt", resp.User.Email)
	require.NotEmpty(t, resp.Access.Token)
}

func TestRefreshRotationInvalidatesOldToken(t *testing.T) {
	h := NewAuthHandler(testConfig(), memory.New())
	first := registerUser(t, h, "pema@example.bt")

	rec := doJSON(t, h.Refresh, http.MethodPost, "/v1/auth/refresh", map[string]any{
		"refresh_token": first.Refresh.Token,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeBody[authResp](t, rec)
	require.NotEqual(t, first.Refresh.Token, second.Refresh.Token)

	// Replaying the rotated token must fail.
	rec = doJSON(t, h.Refresh, http.MethodPost, "/v1/auth/refresh", map[string]any{
		"refresh_token": first.Refresh.Token,
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// The new one still works.
	rec = doJSON(t, h.Refresh, http.MethodPost, "/v1/auth/refresh", map[string]any{
		"refresh_token": second.Refresh.Token,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	h := NewAuthHandler(testConfig(), memory.New())
	pair := registerUser(t, h, "pema@example.bt")

	rec := doJSON(t, h.Logout, http.MethodPost, "/v1/auth/logout", map[string]any{
		"refresh_token": pair.Refresh.Token,
	}, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h.Refresh, http.MethodPost, "/v1/auth/refresh", map[string]any{
		"refresh_token": pair.Refresh.Token,
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	h := NewAuthHandler(testConfig(), memory.New())
	pair := registerUser(t, h, "pema@example.bt")

	rec := doJSON(t, h.Me, http.MethodGet, "/v1/me", nil, func(c echo.Context) {
		c.Set("user_id", pair.User.ID)
	})
	require.Equal(t, http.StatusOK, rec.Code)
}
