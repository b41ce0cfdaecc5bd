package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/queue"
	queue_publisher "github.com/sonamdorji/tour-booking-platform/internal/service"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// ItineraryHandler serves scheduled tour runs: admin CRUD with day
// plans, participant registration and the guide-facing assignment list.
type ItineraryHandler struct {
	Store         store.Store
	PublishEvents bool
}

func NewItineraryHandler(s store.Store, publish bool) *ItineraryHandler {
	return &ItineraryHandler{Store: s, PublishEvents: publish}
}

type itineraryDayReq struct {
	DayNumber     int      `json:"day_number"`
	Activities    []string `json:"activities"`
	Accommodation string   `json:"accommodation"`
	Meals         []string `json:"meals"`
}

type itineraryReq struct {
	TourID          uint64            `json:"tour_id"`
	Name            string            `json:"name"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	GuideID         *uint64           `json:"guide_id"`
	DriverID        *uint64           `json:"driver_id"`
	MaxParticipants int               `json:"max_participants"`
	Days            []itineraryDayReq `json:"days"`
}

func (r *itineraryReq) validate() string {
	switch {
	case r.TourID == 0:
		return "tour_id required"
	case strings.TrimSpace(r.Name) == "":
		return "name required"
	case !validDate(r.StartDate) || !validDate(r.EndDate):
		return "start_date and end_date must be YYYY-MM-DD"
	case r.EndDate < r.StartDate:
		return "end_date before start_date"
	case r.MaxParticipants < 1:
		return "max_participants must be at least 1"
	}
	seen := map[int]bool{}
	for _, d := range r.Days {
		if d.DayNumber < 1 {
			return "day_number must be at least 1"
		}
		if seen[d.DayNumber] {
			return "duplicate day_number"
		}
		seen[d.DayNumber] = true
	}
	return ""
}

// Create builds the itinerary together with its day plan and claims the
// referenced guide and driver in one atomic step. Either everything
// lands or nothing does.
func (h *ItineraryHandler) Create(c echo.Context) error {
	var req itineraryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	it := &model.Itinerary{
		TourID:          req.TourID,
		Name:            strings.TrimSpace(req.Name),
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		GuideID:         req.GuideID,
		DriverID:        req.DriverID,
		MaxParticipants: req.MaxParticipants,
		Status:          model.ItineraryActive,
	}
	for _, d := range req.Days {
		it.Days = append(it.Days, model.ItineraryDay{
			DayNumber:     d.DayNumber,
			Activities:    d.Activities,
			Accommodation: d.Accommodation,
			Meals:         d.Meals,
		})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateItinerary(ctx, it); err != nil {
		return storeErr(c, err)
	}

	if h.PublishEvents && it.GuideID != nil {
		h.publishAssignment(ctx, it)
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *ItineraryHandler) publishAssignment(ctx context.Context, it *model.Itinerary) {
	ev := queue.GuideAssignedEvent{
		ItineraryID: it.ID,
		Title:       it.Name,
		StartDate:   it.StartDate,
		AssignedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if g, err := h.Store.GetGuide(ctx, *it.GuideID); err == nil {
		ev.GuideID = g.ID
		ev.GuideName = g.Name
	}
	if it.DriverID != nil {
		if d, err := h.Store.GetGuide(ctx, *it.DriverID); err == nil {
			ev.DriverID = d.ID
			ev.DriverName = d.Name
		}
	}
	go func() {
		pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pcancel()
		_ = queue_publisher.PublishGuideAssigned(pctx, ev) // best effort
	}()
}

func (h *ItineraryHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	its, err := h.Store.ListItineraries(ctx, store.ItineraryFilter{})
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, its)
}

func (h *ItineraryHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	it, err := h.Store.GetItinerary(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

type itineraryUpdateReq struct {
	Name            string `json:"name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	MaxParticipants int    `json:"max_participants"`
	Status          string `json:"status"`
}

// Update edits schedule fields and status. Leaving the active status
// releases the assigned guide and driver back to not_assigned.
func (h *ItineraryHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req itineraryUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch {
	case strings.TrimSpace(req.Name) == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	case !validDate(req.StartDate) || !validDate(req.EndDate):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date and end_date must be YYYY-MM-DD"})
	case req.EndDate < req.StartDate:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date before start_date"})
	case req.MaxParticipants < 1:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_participants must be at least 1"})
	case !model.ValidItineraryStatus(req.Status):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	it, err := h.Store.GetItinerary(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	it.Name = strings.TrimSpace(req.Name)
	it.StartDate = req.StartDate
	it.EndDate = req.EndDate
	it.MaxParticipants = req.MaxParticipants
	it.Status = req.Status
	if err := h.Store.UpdateItinerary(ctx, it); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

type participantsReq struct {
	Count int `json:"count"`
}

// RegisterParticipants bumps the head count, bounded by
// max_participants.
func (h *ItineraryHandler) RegisterParticipants(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req participantsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Count < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "count must be at least 1"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	it, err := h.Store.RegisterParticipants(ctx, id, req.Count)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *ItineraryHandler) AddDay(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req itineraryDayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.DayNumber < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "day_number must be at least 1"})
	}

	d := &model.ItineraryDay{
		ItineraryID:   id,
		DayNumber:     req.DayNumber,
		Activities:    req.Activities,
		Accommodation: req.Accommodation,
		Meals:         req.Meals,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.AddItineraryDay(ctx, d); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *ItineraryHandler) UpdateDay(c echo.Context) error {
	itID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	dayID, err := parseID(c, "dayID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid day id"})
	}
	var req itineraryDayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.DayNumber < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "day_number must be at least 1"})
	}

	d := &model.ItineraryDay{
		ID:            dayID,
		ItineraryID:   itID,
		DayNumber:     req.DayNumber,
		Activities:    req.Activities,
		Accommodation: req.Accommodation,
		Meals:         req.Meals,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.UpdateItineraryDay(ctx, d); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *ItineraryHandler) DeleteDay(c echo.Context) error {
	itID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	dayID, err := parseID(c, "dayID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid day id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.DeleteItineraryDay(ctx, itID, dayID); err != nil {
		return storeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MyItineraries lists the assignments for the guide record that shares
// the caller's email. A user without a guide record simply sees an
// empty list.
func (h *ItineraryHandler) MyItineraries(c echo.Context) error {
	email := authedEmail(c)
	if email == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	g, err := h.Store.GetGuideByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusOK, []*model.Itinerary{})
	}
	if err != nil {
		return storeErr(c, err)
	}

	f := store.ItineraryFilter{}
	if g.RegistrationType == model.RegistrationDriver {
		f.DriverID = g.ID
	} else {
		f.GuideID = g.ID
	}
	its, err := h.Store.ListItineraries(ctx, f)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, its)
}
