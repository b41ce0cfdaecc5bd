package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// FestivalHandler serves the festival calendar and ticket bookings.
type FestivalHandler struct {
	Store store.Store
}

func NewFestivalHandler(s store.Store) *FestivalHandler {
	return &FestivalHandler{Store: s}
}

type festivalReq struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	MaxCapacity      int    `json:"max_capacity"`
	TicketPriceCents uint32 `json:"ticket_price_cents"`
}

func (r *festivalReq) validate() string {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return "name required"
	case !validDate(r.StartDate) || !validDate(r.EndDate):
		return "start_date and end_date must be YYYY-MM-DD"
	case r.EndDate < r.StartDate:
		return "end_date before start_date"
	case r.MaxCapacity < 1:
		return "max_capacity must be at least 1"
	}
	return ""
}

func (h *FestivalHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	fests, err := h.Store.ListFestivals(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, fests)
}

func (h *FestivalHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	f, err := h.Store.GetFestival(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FestivalHandler) Create(c echo.Context) error {
	var req festivalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	f := &model.Festival{
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		Location:         req.Location,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		MaxCapacity:      req.MaxCapacity,
		TicketPriceCents: req.TicketPriceCents,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateFestival(ctx, f); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FestivalHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req festivalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	f, err := h.Store.GetFestival(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	f.Name = strings.TrimSpace(req.Name)
	f.Description = req.Description
	f.Location = req.Location
	f.StartDate = req.StartDate
	f.EndDate = req.EndDate
	f.MaxCapacity = req.MaxCapacity
	f.TicketPriceCents = req.TicketPriceCents
	if err := h.Store.UpdateFestival(ctx, f); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// Delete refuses (409) while the festival still has bookings.
func (h *FestivalHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.DeleteFestival(ctx, id); err != nil {
		return storeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type festivalBookingReq struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Tickets  int    `json:"tickets"`
}

// CreateBooking reserves tickets; the store enforces max_capacity, so a
// sold-out festival answers 409.
func (h *FestivalHandler) CreateBooking(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req festivalBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case req.FullName == "" || req.Email == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name and email required"})
	case req.Tickets < 1:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tickets must be at least 1"})
	}

	b := &model.FestivalBooking{
		FestivalID: id,
		Reference:  uuid.NewString(),
		FullName:   req.FullName,
		Email:      req.Email,
		Tickets:    req.Tickets,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateFestivalBooking(ctx, b); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *FestivalHandler) ListBookings(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	bookings, err := h.Store.ListFestivalBookings(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}
