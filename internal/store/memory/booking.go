package memory

import (
	"context"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// CreateBooking stores a booking against an existing active tour.
// Status is forced to pending regardless of what the caller filled in.
func (s *Store) CreateBooking(_ context.Context, b *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tours[b.TourID]
	if !ok || !t.IsActive {
		return store.ErrNotFound
	}
	b.ID = s.nextID("bookings")
	b.Status = model.BookingPending
	b.CreatedAt = now()
	b.UpdatedAt = b.CreatedAt
	c := *b
	s.bookings[b.ID] = &c
	return nil
}

func (s *Store) GetBooking(_ context.Context, id uint64) (*model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *b
	return &c, nil
}

func (s *Store) ListBookings(_ context.Context) ([]*model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Booking, 0, len(s.bookings))
	for _, id := range sortedIDs(s.bookings) {
		c := *s.bookings[id]
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) UpdateBookingStatus(_ context.Context, id uint64, status string) (*model.Booking, error) {
	if !model.ValidBookingStatus(status) {
		return nil, store.ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = now()
	c := *b
	return &c, nil
}
