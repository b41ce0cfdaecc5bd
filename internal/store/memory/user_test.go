package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

func TestCreateUserUniqueEmail(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &model.User{Email: "Jane@Example.com", PasswordHash: "x", FullName: "Jane", Role: model.RoleTourist}
	require.NoError(t, s.CreateUser(ctx, u))
	require.Equal(t, "jane@example.com", u.Email)
	require.True(t, u.IsActive)

	dup := &model.User{Email: "jane@example.com", PasswordHash: "y", FullName: "Other", Role: model.RoleTourist}
	require.ErrorIs(t, s.CreateUser(ctx, dup), store.ErrEmailExists)

	got, err := s.GetUserByEmail(ctx, "JANE@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestRefreshTokenLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &model.User{Email: "a@example.com", PasswordHash: "x", FullName: "A", Role: model.RoleTourist}
	require.NoError(t, s.CreateUser(ctx, u))

	exp := time.Now().UTC().Add(time.Hour)
	require.NoError(t, s.StoreRefresh(ctx, u.ID, "hash-1", exp))

	uid, err := s.ValidateRefresh(ctx, "hash-1")
	require.NoError(t, err)
	require.Equal(t, u.ID, uid)

	require.NoError(t, s.RevokeRefreshByHash(ctx, "hash-1"))
	_, err = s.ValidateRefresh(ctx, "hash-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRefreshTokenExpiry(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &model.User{Email: "a@example.com", PasswordHash: "x", FullName: "A", Role: model.RoleTourist}
	require.NoError(t, s.CreateUser(ctx, u))

	require.NoError(t, s.StoreRefresh(ctx, u.ID, "stale", time.Now().UTC().Add(-time.Minute)))
	_, err := s.ValidateRefresh(ctx, "stale")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRevokeAllForUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &model.User{Email: "a@example.com", PasswordHash: "x", FullName: "A", Role: model.RoleTourist}
	require.NoError(t, s.CreateUser(ctx, u))
	other := &model.User{Email: "b@example.com", PasswordHash: "x", FullName: "B", Role: model.RoleTourist}
	require.NoError(t, s.CreateUser(ctx, other))

	exp := time.Now().UTC().Add(time.Hour)
	require.NoError(t, s.StoreRefresh(ctx, u.ID, "h1", exp))
	require.NoError(t, s.StoreRefresh(ctx, u.ID, "h2", exp))
	require.NoError(t, s.StoreRefresh(ctx, other.ID, "h3", exp))

	require.NoError(t, s.RevokeAllRefreshForUser(ctx, u.ID))

	_, err := s.ValidateRefresh(ctx, "h1")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.ValidateRefresh(ctx, "h2")
	require.ErrorIs(t, err, store.ErrNotFound)

	uid, err := s.ValidateRefresh(ctx, "h3")
	require.NoError(t, err)
	require.Equal(t, other.ID, uid)
}

func TestFeedbackReferencesChecked(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &model.User{Email: "a@example.com", PasswordHash: "x", FullName: "A", Role: model.RoleTourist}
	require.NoError(t, s.CreateUser(ctx, u))

	missing := uint64(99)
	err := s.CreateFeedback(ctx, &model.Feedback{UserID: u.ID, TourID: &missing, Rating: 5})
	require.ErrorIs(t, err, store.ErrNotFound)

	tour := &model.Tour{Name: "A", DurationDays: 1}
	require.NoError(t, s.CreateTour(ctx, tour))
	fb := &model.Feedback{UserID: u.ID, TourID: &tour.ID, Rating: 4, IsPublic: true}
	require.NoError(t, s.CreateFeedback(ctx, fb))

	private := &model.Feedback{UserID: u.ID, Rating: 2}
	require.NoError(t, s.CreateFeedback(ctx, private))

	public, err := s.ListFeedback(ctx, store.FeedbackFilter{PublicOnly: true})
	require.NoError(t, err)
	require.Len(t, public, 1)

	mine, err := s.ListFeedback(ctx, store.FeedbackFilter{UserID: u.ID})
	require.NoError(t, err)
	require.Len(t, mine, 2)
}

func TestStatsAndClear(t *testing.T) {
	s := New()
	ctx := context.Background()

	tour := &model.Tour{Name: "A", DurationDays: 1}
	require.NoError(t, s.CreateTour(ctx, tour))
	require.NoError(t, s.CreateBooking(ctx, &model.Booking{TourID: tour.ID, FullName: "X", Email: "x@example.com"}))
	require.NoError(t, s.CreateInquiry(ctx, &model.Inquiry{FullName: "Y", Email: "y@example.com", Message: "hi"}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Tours)
	require.Equal(t, 1, stats.Bookings)
	require.Equal(t, 1, stats.PendingBookings)
	require.Equal(t, 1, stats.Inquiries)

	require.NoError(t, s.Clear(ctx))
	stats, err = s.Stats(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.Tours)
	require.Zero(t, stats.Bookings)

	// Counters restart after a clear.
	fresh := &model.Tour{Name: "B", DurationDays: 1}
	require.NoError(t, s.CreateTour(ctx, fresh))
	require.Equal(t, uint64(1), fresh.ID)
}

func TestCustomTourRequestFlow(t *testing.T) {
	s := New()
	ctx := context.Background()

	r := &model.CustomTourRequest{FullName: "A", Email: "a@example.com", DurationDays: 5,
		GroupSize: 2, Interests: []string{"birding"}, Status: model.RequestAccepted} // status ignored
	require.NoError(t, s.CreateCustomTourRequest(ctx, r))
	require.Equal(t, model.RequestPending, r.Status)

	_, err := s.UpdateCustomTourRequestStatus(ctx, r.ID, "maybe", "")
	require.ErrorIs(t, err, store.ErrInvalidStatus)

	got, err := s.UpdateCustomTourRequestStatus(ctx, r.ID, model.RequestAccepted, "call to discuss route")
	require.NoError(t, err)
	require.Equal(t, model.RequestAccepted, got.Status)
	require.Equal(t, "call to discuss route", got.AdminNotes)
}
