package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// TourHandler serves the tour catalogue, public browse plus admin CRUD.
type TourHandler struct {
	Store store.Store
}

func NewTourHandler(s store.Store) *TourHandler {
	return &TourHandler{Store: s}
}

type tourReq struct {
	OperatorID   *uint64  `json:"operator_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	DurationDays int      `json:"duration_days"`
	PriceCents   uint32   `json:"price_cents"`
	Category     string   `json:"category"`
	Rating       float64  `json:"rating"`
	Highlights   []string `json:"highlights"`
}

func (r *tourReq) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name required"
	}
	if r.DurationDays < 1 {
		return "duration_days must be at least 1"
	}
	if r.Rating < 0 || r.Rating > 5 {
		return "rating must be between 0 and 5"
	}
	return ""
}

// List returns active tours, optionally filtered by ?category=.
func (h *TourHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	tours, err := h.Store.ListTours(ctx, store.TourFilter{Category: c.QueryParam("category")})
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, tours)
}

// AdminList includes soft-deleted tours.
func (h *TourHandler) AdminList(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	tours, err := h.Store.ListTours(ctx, store.TourFilter{
		Category:        c.QueryParam("category"),
		IncludeInactive: true,
	})
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, tours)
}

func (h *TourHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Store.GetTour(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TourHandler) Create(c echo.Context) error {
	var req tourReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	t := &model.Tour{
		OperatorID:   req.OperatorID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		DurationDays: req.DurationDays,
		PriceCents:   req.PriceCents,
		Category:     req.Category,
		Rating:       req.Rating,
		Highlights:   req.Highlights,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateTour(ctx, t); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TourHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req tourReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Store.GetTour(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	t.OperatorID = req.OperatorID
	t.Name = strings.TrimSpace(req.Name)
	t.Description = req.Description
	t.DurationDays = req.DurationDays
	t.PriceCents = req.PriceCents
	t.Category = req.Category
	t.Rating = req.Rating
	t.Highlights = req.Highlights
	if err := h.Store.UpdateTour(ctx, t); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Delete soft-deletes: the tour drops out of public listings but its
// bookings keep a valid reference.
func (h *TourHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.DeactivateTour(ctx, id); err != nil {
		return storeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
