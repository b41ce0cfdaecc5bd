package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store/memory"
)

func TestBookingCreate(t *testing.T) {
	s := memory.New()
	tour := seedActiveTour(t, s)
	h := NewBookingHandler(s, false)

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/bookings", map[string]any{
		"tour_id":     tour.ID,
		"full_name":   "Karma Wangchuk",
		"email":       "Karma@Example.BT",
		"travel_date": "2026-10-12",
		"group_size":  2,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	b := decodeBody[model.Booking](t, rec)
	require.Equal(t, model.BookingPending, b.Status)
	require.NotEmpty(t, b.Reference)
	require.Equal(t, "karma@example.bt", b.Email)
}

func TestBookingCreateValidation(t *testing.T) {
	s := memory.New()
	tour := seedActiveTour(t, s)
	h := NewBookingHandler(s, false)

	cases := []map[string]any{
		{"full_name": "K", "email": "k@x.bt", "travel_date": "2026-10-12", "group_size": 1},                      // no tour
		{"tour_id": tour.ID, "email": "k@x.bt", "travel_date": "2026-10-12", "group_size": 1},                    // no name
		{"tour_id": tour.ID, "full_name": "K", "email": "k@x.bt", "travel_date": "12/10/2026", "group_size": 1},  // bad date
		{"tour_id": tour.ID, "full_name": "K", "email": "k@x.bt", "travel_date": "2026-10-12", "group_size": 0},  // empty group
		{"tour_id": tour.ID, "full_name": "K", "email": "k@x.bt", "travel_date": "2026-10-12", "group_size": -3}, // negative group
	}
	for _, body := range cases {
		rec := doJSON(t, h.Create, http.MethodPost, "/v1/bookings", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestBookingCreateUnknownTour(t *testing.T) {
	h := NewBookingHandler(memory.New(), false)

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/bookings", map[string]any{
		"tour_id":     99,
		"full_name":   "Karma Wangchuk",
		"email":       "karma@example.bt",
		"travel_date": "2026-10-12",
		"group_size":  2,
	}, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingCreateInactiveTour(t *testing.T) {
	s := memory.New()
	tour := seedActiveTour(t, s)
	require.NoError(t, s.DeactivateTour(context.Background(), tour.ID))
	h := NewBookingHandler(s, false)

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/bookings", map[string]any{
		"tour_id":     tour.ID,
		"full_name":   "Karma Wangchuk",
		"email":       "karma@example.bt",
		"travel_date": "2026-10-12",
		"group_size":  2,
	}, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingDuplicateSubmissionsGetOwnReference(t *testing.T) {
	s := memory.New()
	tour := seedActiveTour(t, s)
	h := NewBookingHandler(s, false)

	body := map[string]any{
		"tour_id":     tour.ID,
		"full_name":   "Karma Wangchuk",
		"email":       "karma@example.bt",
		"travel_date": "2026-10-12",
		"group_size":  2,
	}
	first := decodeBody[model.Booking](t, doJSON(t, h.Create, http.MethodPost, "/v1/bookings", body, nil))
	second := decodeBody[model.Booking](t, doJSON(t, h.Create, http.MethodPost, "/v1/bookings", body, nil))
	require.NotEqual(t, first.ID, second.ID)
	require.NotEqual(t, first.Reference, second.Reference)
}

func TestBookingUpdateStatus(t *testing.T) {
	s := memory.New()
	tour := seedActiveTour(t, s)
	h := NewBookingHandler(s, false)

	created := decodeBody[model.Booking](t, doJSON(t, h.Create, http.MethodPost, "/v1/bookings", map[string]any{
		"tour_id": tour.ID, "full_name": "K", "email": "k@x.bt", "travel_date": "2026-10-12", "group_size": 1,
	}, nil))

	rec := doJSON(t, h.UpdateStatus, http.MethodPatch, "/v1/admin/bookings/1/status", map[string]any{
		"status": "shipped",
	}, withParam("id", "1"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h.UpdateStatus, http.MethodPatch, "/v1/admin/bookings/1/status", map[string]any{
		"status": model.BookingConfirmed,
	}, withParam("id", "1"))
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[model.Booking](t, rec)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, model.BookingConfirmed, updated.Status)
}
