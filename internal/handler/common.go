// Package handler implements the HTTP endpoints. Handlers bind and
// validate request bodies, call the store with a bounded context and
// translate sentinel errors into status codes.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

const dbTimeout = 5 * time.Second

// reqCtx bounds a storage call to the request with a hard timeout.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// parseID reads a positive uint64 path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// storeErr maps storage sentinels onto HTTP responses. Anything
// unrecognised is a 500.
func storeErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, store.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	case errors.Is(err, store.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	case errors.Is(err, store.ErrGuideUnavailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "guide or driver unavailable"})
	case errors.Is(err, store.ErrCapacityFull):
		return c.JSON(http.StatusConflict, echo.Map{"error": "capacity full"})
	case errors.Is(err, store.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "conflict"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// authedUserID returns the user id stored by the JWT middleware, or 0.
func authedUserID(c echo.Context) uint64 {
	id, _ := c.Get("user_id").(uint64)
	return id
}

// authedEmail returns the email claim stored by the JWT middleware.
func authedEmail(c echo.Context) string {
	email, _ := c.Get("email").(string)
	return email
}

// validDate reports whether s is a YYYY-MM-DD calendar date. Dates are
// kept as strings throughout so range checks are lexicographic.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
