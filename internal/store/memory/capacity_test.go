package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

func TestFestivalBookingCapacity(t *testing.T) {
	s := New()
	ctx := context.Background()

	f := &model.Festival{Name: "Tshechu", StartDate: "2026-03-28", EndDate: "2026-04-01", MaxCapacity: 5}
	require.NoError(t, s.CreateFestival(ctx, f))

	b1 := &model.FestivalBooking{FestivalID: f.ID, Reference: "r1", FullName: "A", Email: "a@example.com", Tickets: 3}
	require.NoError(t, s.CreateFestivalBooking(ctx, b1))
	require.Equal(t, model.BookingPending, b1.Status)

	over := &model.FestivalBooking{FestivalID: f.ID, Reference: "r2", FullName: "B", Email: "b@example.com", Tickets: 3}
	require.ErrorIs(t, s.CreateFestivalBooking(ctx, over), store.ErrCapacityFull)

	exact := &model.FestivalBooking{FestivalID: f.ID, Reference: "r3", FullName: "C", Email: "c@example.com", Tickets: 2}
	require.NoError(t, s.CreateFestivalBooking(ctx, exact))

	bookings, err := s.ListFestivalBookings(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
}

func TestDeleteFestivalWithBookings(t *testing.T) {
	s := New()
	ctx := context.Background()

	f := &model.Festival{Name: "Tshechu", StartDate: "2026-03-28", EndDate: "2026-04-01", MaxCapacity: 10}
	require.NoError(t, s.CreateFestival(ctx, f))
	require.NoError(t, s.CreateFestivalBooking(ctx, &model.FestivalBooking{
		FestivalID: f.ID, Reference: "r", FullName: "A", Email: "a@example.com", Tickets: 1}))

	require.ErrorIs(t, s.DeleteFestival(ctx, f.ID), store.ErrConflict)
}

func seedHotelRoom(t *testing.T, s *Store, totalRooms int) (hotelID, roomID uint64) {
	t.Helper()
	ctx := context.Background()
	h := &model.Hotel{Name: "Lodge", Location: "Phobjikha"}
	require.NoError(t, s.CreateHotel(ctx, h))
	r := &model.HotelRoom{HotelID: h.ID, RoomType: "suite", MaxOccupancy: 2, TotalRooms: totalRooms}
	require.NoError(t, s.CreateHotelRoom(ctx, r))
	return h.ID, r.ID
}

func TestHotelBookingOverlapCapacity(t *testing.T) {
	s := New()
	ctx := context.Background()
	hotelID, roomID := seedHotelRoom(t, s, 1)

	first := &model.HotelBooking{HotelID: hotelID, RoomID: roomID, Reference: "r1",
		FullName: "A", Email: "a@example.com", CheckIn: "2026-05-01", CheckOut: "2026-05-05", Guests: 2}
	require.NoError(t, s.CreateHotelBooking(ctx, first))

	overlap := &model.HotelBooking{HotelID: hotelID, RoomID: roomID, Reference: "r2",
		FullName: "B", Email: "b@example.com", CheckIn: "2026-05-04", CheckOut: "2026-05-08", Guests: 1}
	require.ErrorIs(t, s.CreateHotelBooking(ctx, overlap), store.ErrCapacityFull)

	// Back-to-back stays share a turnover day and both fit.
	adjacent := &model.HotelBooking{HotelID: hotelID, RoomID: roomID, Reference: "r3",
		FullName: "C", Email: "c@example.com", CheckIn: "2026-05-05", CheckOut: "2026-05-09", Guests: 1}
	require.NoError(t, s.CreateHotelBooking(ctx, adjacent))
}

func TestHotelBookingOccupancyLimit(t *testing.T) {
	s := New()
	ctx := context.Background()
	hotelID, roomID := seedHotelRoom(t, s, 3)

	crowded := &model.HotelBooking{HotelID: hotelID, RoomID: roomID, Reference: "r",
		FullName: "A", Email: "a@example.com", CheckIn: "2026-05-01", CheckOut: "2026-05-02", Guests: 5}
	require.ErrorIs(t, s.CreateHotelBooking(ctx, crowded), store.ErrConflict)
}

func TestDeleteRoomWithBookings(t *testing.T) {
	s := New()
	ctx := context.Background()
	hotelID, roomID := seedHotelRoom(t, s, 2)

	b := &model.HotelBooking{HotelID: hotelID, RoomID: roomID, Reference: "r",
		FullName: "A", Email: "a@example.com", CheckIn: "2026-05-01", CheckOut: "2026-05-02", Guests: 1}
	require.NoError(t, s.CreateHotelBooking(ctx, b))

	require.ErrorIs(t, s.DeleteHotelRoom(ctx, hotelID, roomID), store.ErrConflict)
}
