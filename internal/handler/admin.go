package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/seed"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// AdminHandler serves the dashboard aggregate and the demo dataset
// operations.
type AdminHandler struct {
	Store store.Store
}

func NewAdminHandler(s store.Store) *AdminHandler {
	return &AdminHandler{Store: s}
}

func (h *AdminHandler) Stats(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	stats, err := h.Store.Stats(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Seed loads the demo dataset. Idempotence is not attempted: seeding
// twice duplicates the catalogue, so clear first.
func (h *AdminHandler) Seed(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := seed.Load(ctx, h.Store); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "seeded"})
}

// Clear wipes every record.
func (h *AdminHandler) Clear(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.Clear(ctx); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "cleared"})
}
