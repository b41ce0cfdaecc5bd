package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/queue"
	queue_publisher "github.com/sonamdorji/tour-booking-platform/internal/service"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// BookingHandler serves the public booking form and the admin booking
// list.
type BookingHandler struct {
	Store store.Store
	// PublishEvents gates the best-effort broker publish so tests and
	// brokerless deployments skip it entirely.
	PublishEvents bool
}

func NewBookingHandler(s store.Store, publish bool) *BookingHandler {
	return &BookingHandler{Store: s, PublishEvents: publish}
}

type bookingReq struct {
	TourID          uint64 `json:"tour_id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	TravelDate      string `json:"travel_date"`
	GroupSize       int    `json:"group_size"`
	SpecialRequests string `json:"special_requests"`
}

// Create accepts a booking request against an active tour. Status is
// always pending on create; duplicate submissions become distinct
// bookings with their own reference.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case req.TourID == 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tour_id required"})
	case req.FullName == "" || req.Email == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name and email required"})
	case !validDate(req.TravelDate):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "travel_date must be YYYY-MM-DD"})
	case req.GroupSize < 1:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "group_size must be at least 1"})
	}

	b := &model.Booking{
		TourID:          req.TourID,
		Reference:       uuid.NewString(),
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		TravelDate:      req.TravelDate,
		GroupSize:       req.GroupSize,
		SpecialRequests: req.SpecialRequests,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	tour, err := h.Store.GetTour(ctx, req.TourID)
	if err != nil {
		return storeErr(c, err)
	}
	if err := h.Store.CreateBooking(ctx, b); err != nil {
		return storeErr(c, err)
	}

	if h.PublishEvents {
		ev := queue.BookingCreatedEvent{
			BookingID:       b.ID,
			Reference:       b.Reference,
			TourID:          tour.ID,
			TourTitle:       tour.Name,
			CustomerName:    b.FullName,
			CustomerEmail:   b.Email,
			TravelDate:      b.TravelDate,
			GroupSize:       b.GroupSize,
			TotalPriceCents: tour.PriceCents * uint32(b.GroupSize),
			CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
		}
		go func() {
			pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pcancel()
			_ = queue_publisher.PublishBookingCreated(pctx, ev) // best effort
		}()
	}

	return c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	bookings, err := h.Store.ListBookings(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	b, err := h.Store.GetBooking(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

type statusReq struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// UpdateStatus moves a booking through its lifecycle. Unknown statuses
// are a 400 before the store is touched.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidBookingStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	b, err := h.Store.UpdateBookingStatus(ctx, id, req.Status)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, b)
}
