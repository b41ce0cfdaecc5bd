package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store/memory"
)

func seedGuide(t *testing.T, s *memory.Store, email string) *model.Guide {
	t.Helper()
	g := &model.Guide{
		Name:             "Tashi Norbu",
		Email:            email,
		RegistrationType: model.RegistrationGuide,
	}
	require.NoError(t, s.CreateGuide(context.Background(), g))
	return g
}

func TestItineraryCreateWithGuide(t *testing.T) {
	s := memory.New()
	tour := seedActiveTour(t, s)
	g := seedGuide(t, s, "tashi@example.bt")
	h := NewItineraryHandler(s, false)

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/admin/itineraries", map[string]any{
		"tour_id":          tour.ID,
		"name":             "October Departure",
		"start_date":       "2026-10-01",
		"end_date":         "2026-10-07",
		"guide_id":         g.ID,
		"max_participants": 12,
		"days": []map[string]any{
			{"day_number": 1, "activities": []string{"Airport pickup", "Memorial Chorten"}},
			{"day_number": 2, "activities": []string{"Taktsang hike"}, "meals": []string{"breakfast", "lunch"}},
		},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	it := decodeBody[model.Itinerary](t, rec)
	require.Equal(t, model.ItineraryActive, it.Status)
	require.Len(t, it.Days, 2)

	claimed, err := s.GetGuide(context.Background(), g.ID)
	require.NoError(t, err)
	require.Equal(t, model.GuideAssigned, claimed.Status)
}

func TestItineraryCreateGuideAlreadyAssigned(t *testing.T) {
	s := memory.New()
	tour := seedActiveTour(t, s)
	g := seedGuide(t, s, "tashi@example.bt")
	h := NewItineraryHandler(s, false)

	body := map[string]any{
		"tour_id":          tour.ID,
		"name":             "October Departure",
		"start_date":       "2026-10-01",
		"end_date":         "2026-10-07",
		"guide_id":         g.ID,
		"max_participants": 12,
	}
	rec := doJSON(t, h.Create, http.MethodPost, "/v1/admin/itineraries", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	body["name"] = "November Departure"
	rec = doJSON(t, h.Create, http.MethodPost, "/v1/admin/itineraries", body, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestItineraryCreateValidation(t *testing.T) {
	s := memory.New()
	tour := seedActiveTour(t, s)
	h := NewItineraryHandler(s, false)

	cases := []map[string]any{
		{"name": "X", "start_date": "2026-10-01", "end_date": "2026-10-07", "max_participants": 5},
		{"tour_id": tour.ID, "name": "X", "start_date": "2026-10-07", "end_date": "2026-10-01", "max_participants": 5},
		{"tour_id": tour.ID, "name": "X", "start_date": "2026-10-01", "end_date": "2026-10-07", "max_participants": 0},
		{
			"tour_id": tour.ID, "name": "X", "start_date": "2026-10-01", "end_date": "2026-10-07", "max_participants": 5,
			"days": []map[string]any{{"day_number": 1}, {"day_number": 1}},
		},
	}
	for _, body := range cases {
		rec := doJSON(t, h.Create, http.MethodPost, "/v1/admin/itineraries", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestItineraryRegisterParticipantsOverCapacity(t *testing.T) {
	s := memory.New()
	tour := seedActiveTour(t, s)
	h := NewItineraryHandler(s, false)

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/admin/itineraries", map[string]any{
		"tour_id":          tour.ID,
		"name":             "Small Group",
		"start_date":       "2026-10-01",
		"end_date":         "2026-10-07",
		"max_participants": 3,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	it := decodeBody[model.Itinerary](t, rec)
	require.Equal(t, model.ItineraryActive, it.Status)

	rec = doJSON(t, h.RegisterParticipants, http.MethodPost, "/v1/admin/itineraries/1/participants", map[string]any{
		"count": 2,
	}, withParam("id", "1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h.RegisterParticipants, http.MethodPost, "/v1/admin/itineraries/1/participants", map[string]any{
		"count": 2,
	}, withParam("id", "1"))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestMyItinerariesForUnknownGuideIsEmpty(t *testing.T) {
	s := memory.New()
	h := NewItineraryHandler(s, false)

	rec := doJSON(t, h.MyItineraries, http.MethodGet, "/v1/my/itineraries", nil, func(c echo.Context) {
		c.Set("email", "nobody@example.bt")
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}
