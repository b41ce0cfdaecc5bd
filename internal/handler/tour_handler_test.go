package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store/memory"
)

func TestTourCreateAndGet(t *testing.T) {
	h := NewTourHandler(memory.New())

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/admin/tours", map[string]any{
		"name":          "Druk Path Trek",
		"category":      "Trekking",
		"duration_days": 6,
		"price_cents":   180_000,
		"rating":        4.5,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[model.Tour](t, rec)
	require.True(t, created.IsActive)

	rec = doJSON(t, h.Get, http.MethodGet, "/v1/tours/1", nil, withParam("id", "1"))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTourCreateValidation(t *testing.T) {
	h := NewTourHandler(memory.New())

	cases := []map[string]any{
		{"duration_days": 6},                     // no name
		{"name": "X", "duration_days": 0},        // zero duration
		{"name": "X", "duration_days": 3, "rating": 5.5}, // rating out of range
	}
	for _, body := range cases {
		rec := doJSON(t, h.Create, http.MethodPost, "/v1/admin/tours", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestTourSoftDelete(t *testing.T) {
	s := memory.New()
	seedActiveTour(t, s)
	h := NewTourHandler(s)

	rec := doJSON(t, h.Delete, http.MethodDelete, "/v1/admin/tours/1", nil, withParam("id", "1"))
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Public lookups no longer see it.
	rec = doJSON(t, h.Get, http.MethodGet, "/v1/tours/1", nil, withParam("id", "1"))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// The admin listing still does.
	rec = doJSON(t, h.AdminList, http.MethodGet, "/v1/admin/tours", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tours := decodeBody[[]model.Tour](t, rec)
	require.Len(t, tours, 1)
	require.False(t, tours[0].IsActive)
}

func TestTourGetInvalidID(t *testing.T) {
	h := NewTourHandler(memory.New())
	rec := doJSON(t, h.Get, http.MethodGet, "/v1/tours/abc", nil, withParam("id", "abc"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
