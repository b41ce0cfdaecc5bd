package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

func seedTourAndCrew(t *testing.T, s *Store) (tourID, guideID, driverID uint64) {
	t.Helper()
	ctx := context.Background()

	tour := &model.Tour{Name: "Circuit", DurationDays: 7}
	require.NoError(t, s.CreateTour(ctx, tour))

	guide := &model.Guide{Name: "Tashi", Email: "tashi@example.com", RegistrationType: model.RegistrationGuide}
	require.NoError(t, s.CreateGuide(ctx, guide))
	driver := &model.Guide{Name: "Sonam", Email: "sonam@example.com", RegistrationType: model.RegistrationDriver, LicenseNumber: "BT-1"}
	require.NoError(t, s.CreateGuide(ctx, driver))

	return tour.ID, guide.ID, driver.ID
}

func TestCreateItineraryAssignsCrew(t *testing.T) {
	s := New()
	ctx := context.Background()
	tourID, guideID, driverID := seedTourAndCrew(t, s)

	it := &model.Itinerary{
		TourID:          tourID,
		Name:            "April departure",
		StartDate:       "2026-04-06",
		EndDate:         "2026-04-12",
		GuideID:         &guideID,
		DriverID:        &driverID,
		MaxParticipants: 10,
		Days: []model.ItineraryDay{
			{DayNumber: 1, Activities: []string{"arrival"}},
			{DayNumber: 2, Activities: []string{"hike"}},
		},
	}
	require.NoError(t, s.CreateItinerary(ctx, it))
	require.NotZero(t, it.ID)
	require.Len(t, it.Days, 2)

	g, err := s.GetGuide(ctx, guideID)
	require.NoError(t, err)
	require.Equal(t, model.GuideAssigned, g.Status)
	d, err := s.GetGuide(ctx, driverID)
	require.NoError(t, err)
	require.Equal(t, model.GuideAssigned, d.Status)

	got, err := s.GetItinerary(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, got.Days, 2)
	require.Equal(t, 1, got.Days[0].DayNumber)
}

func TestCreateItineraryUnavailableGuideLeavesNothing(t *testing.T) {
	s := New()
	ctx := context.Background()
	tourID, guideID, driverID := seedTourAndCrew(t, s)

	// Claim the guide once.
	first := &model.Itinerary{TourID: tourID, Name: "first", StartDate: "2026-04-01",
		EndDate: "2026-04-05", GuideID: &guideID, MaxParticipants: 5}
	require.NoError(t, s.CreateItinerary(ctx, first))

	// Second itinerary wants the same guide plus the free driver.
	second := &model.Itinerary{TourID: tourID, Name: "second", StartDate: "2026-04-10",
		EndDate: "2026-04-14", GuideID: &guideID, DriverID: &driverID, MaxParticipants: 5}
	err := s.CreateItinerary(ctx, second)
	require.ErrorIs(t, err, store.ErrGuideUnavailable)

	// The driver must not have been flipped by the failed create.
	d, err := s.GetGuide(ctx, driverID)
	require.NoError(t, err)
	require.Equal(t, model.GuideNotAssigned, d.Status)

	its, err := s.ListItineraries(ctx, store.ItineraryFilter{})
	require.NoError(t, err)
	require.Len(t, its, 1)
}

func TestCreateItineraryBlacklistedGuide(t *testing.T) {
	s := New()
	ctx := context.Background()
	tourID, guideID, _ := seedTourAndCrew(t, s)

	_, err := s.UpdateGuideStatus(ctx, guideID, model.GuideBlacklisted)
	require.NoError(t, err)

	it := &model.Itinerary{TourID: tourID, Name: "x", StartDate: "2026-04-01",
		EndDate: "2026-04-02", GuideID: &guideID, MaxParticipants: 5}
	require.ErrorIs(t, s.CreateItinerary(ctx, it), store.ErrGuideUnavailable)
}

func TestCompletingItineraryReleasesCrew(t *testing.T) {
	s := New()
	ctx := context.Background()
	tourID, guideID, driverID := seedTourAndCrew(t, s)

	it := &model.Itinerary{TourID: tourID, Name: "run", StartDate: "2026-04-01",
		EndDate: "2026-04-07", GuideID: &guideID, DriverID: &driverID, MaxParticipants: 8}
	require.NoError(t, s.CreateItinerary(ctx, it))

	it.Status = model.ItineraryCompleted
	require.NoError(t, s.UpdateItinerary(ctx, it))

	g, err := s.GetGuide(ctx, guideID)
	require.NoError(t, err)
	require.Equal(t, model.GuideNotAssigned, g.Status)
	d, err := s.GetGuide(ctx, driverID)
	require.NoError(t, err)
	require.Equal(t, model.GuideNotAssigned, d.Status)
}

func TestRegisterParticipantsCapacity(t *testing.T) {
	s := New()
	ctx := context.Background()
	tourID, _, _ := seedTourAndCrew(t, s)

	it := &model.Itinerary{TourID: tourID, Name: "run", StartDate: "2026-04-01",
		EndDate: "2026-04-07", MaxParticipants: 3}
	require.NoError(t, s.CreateItinerary(ctx, it))

	got, err := s.RegisterParticipants(ctx, it.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 2, got.CurrentParticipants)

	_, err = s.RegisterParticipants(ctx, it.ID, 2)
	require.ErrorIs(t, err, store.ErrCapacityFull)

	got, err = s.RegisterParticipants(ctx, it.ID, 1)
	require.NoError(t, err)
	require.Equal(t, 3, got.CurrentParticipants)
}

func TestItineraryDayNumberUnique(t *testing.T) {
	s := New()
	ctx := context.Background()
	tourID, _, _ := seedTourAndCrew(t, s)

	it := &model.Itinerary{TourID: tourID, Name: "run", StartDate: "2026-04-01",
		EndDate: "2026-04-07", MaxParticipants: 5,
		Days: []model.ItineraryDay{{DayNumber: 1}}}
	require.NoError(t, s.CreateItinerary(ctx, it))

	dup := &model.ItineraryDay{ItineraryID: it.ID, DayNumber: 1}
	require.ErrorIs(t, s.AddItineraryDay(ctx, dup), store.ErrConflict)

	ok := &model.ItineraryDay{ItineraryID: it.ID, DayNumber: 2, Activities: []string{"drive"}}
	require.NoError(t, s.AddItineraryDay(ctx, ok))

	require.NoError(t, s.DeleteItineraryDay(ctx, it.ID, ok.ID))
	require.ErrorIs(t, s.DeleteItineraryDay(ctx, it.ID, ok.ID), store.ErrNotFound)
}

func TestGuideFilterListing(t *testing.T) {
	s := New()
	ctx := context.Background()
	tourID, guideID, _ := seedTourAndCrew(t, s)

	it := &model.Itinerary{TourID: tourID, Name: "run", StartDate: "2026-04-01",
		EndDate: "2026-04-07", GuideID: &guideID, MaxParticipants: 5}
	require.NoError(t, s.CreateItinerary(ctx, it))

	assigned, err := s.ListGuides(ctx, store.GuideFilter{Status: model.GuideAssigned})
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	require.Equal(t, guideID, assigned[0].ID)

	drivers, err := s.ListGuides(ctx, store.GuideFilter{RegistrationType: model.RegistrationDriver})
	require.NoError(t, err)
	require.Len(t, drivers, 1)

	mine, err := s.ListItineraries(ctx, store.ItineraryFilter{GuideID: guideID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
}
