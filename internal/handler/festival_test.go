package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store/memory"
)

func createFestival(t *testing.T, h *FestivalHandler, capacity int) model.Festival {
	t.Helper()
	rec := doJSON(t, h.Create, http.MethodPost, "/v1/admin/festivals", map[string]any{
		"name":               "Paro Tshechu",
		"location":           "Paro Dzong",
		"start_date":         "2027-03-19",
		"end_date":           "2027-03-23",
		"max_capacity":       capacity,
		"ticket_price_cents": 2_500_00,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[model.Festival](t, rec)
}

func TestFestivalBookingSoldOut(t *testing.T) {
	h := NewFestivalHandler(memory.New())
	f := createFestival(t, h, 5)

	book := func(tickets int) int {
		rec := doJSON(t, h.CreateBooking, http.MethodPost, "/v1/festivals/1/bookings", map[string]any{
			"full_name": "Karma Wangchuk",
			"email":     "karma@example.bt",
			"tickets":   tickets,
		}, withParam("id", "1"))
		return rec.Code
	}

	require.Equal(t, http.StatusCreated, book(3))
	// Two seats left, so three more is too many.
	require.Equal(t, http.StatusConflict, book(3))
	// Exactly filling the remainder still works.
	require.Equal(t, http.StatusCreated, book(2))

	require.Equal(t, 5, f.MaxCapacity)
}

func TestFestivalBookingValidation(t *testing.T) {
	h := NewFestivalHandler(memory.New())
	createFestival(t, h, 10)

	rec := doJSON(t, h.CreateBooking, http.MethodPost, "/v1/festivals/1/bookings", map[string]any{
		"full_name": "Karma", "email": "karma@example.bt", "tickets": 0,
	}, withParam("id", "1"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h.CreateBooking, http.MethodPost, "/v1/festivals/9/bookings", map[string]any{
		"full_name": "Karma", "email": "karma@example.bt", "tickets": 1,
	}, withParam("id", "9"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFestivalDeleteWithBookings(t *testing.T) {
	h := NewFestivalHandler(memory.New())
	createFestival(t, h, 10)

	rec := doJSON(t, h.CreateBooking, http.MethodPost, "/v1/festivals/1/bookings", map[string]any{
		"full_name": "Karma", "email": "karma@example.bt", "tickets": 2,
	}, withParam("id", "1"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h.Delete, http.MethodDelete, "/v1/admin/festivals/1", nil, withParam("id", "1"))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestFestivalCreateValidation(t *testing.T) {
	h := NewFestivalHandler(memory.New())

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/admin/festivals", map[string]any{
		"name": "Paro Tshechu", "start_date": "2027-03-23", "end_date": "2027-03-19", "max_capacity": 10,
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
