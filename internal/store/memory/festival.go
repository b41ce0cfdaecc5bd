package memory

import (
	"context"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

func (s *Store) CreateFestival(_ context.Context, f *model.Festival) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.nextID("festivals")
	f.CreatedAt = now()
	f.UpdatedAt = f.CreatedAt
	c := *f
	s.festivals[f.ID] = &c
	return nil
}

func (s *Store) GetFestival(_ context.Context, id uint64) (*model.Festival, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.festivals[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *f
	return &c, nil
}

func (s *Store) ListFestivals(_ context.Context) ([]*model.Festival, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Festival, 0, len(s.festivals))
	for _, id := range sortedIDs(s.festivals) {
		c := *s.festivals[id]
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) UpdateFestival(_ context.Context, f *model.Festival) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.festivals[f.ID]
	if !ok {
		return store.ErrNotFound
	}
	f.CreatedAt = cur.CreatedAt
	f.UpdatedAt = now()
	c := *f
	s.festivals[f.ID] = &c
	return nil
}

// DeleteFestival refuses to remove a festival that still has bookings.
func (s *Store) DeleteFestival(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.festivals[id]; !ok {
		return store.ErrNotFound
	}
	for _, b := range s.festBookings {
		if b.FestivalID == id {
			return store.ErrConflict
		}
	}
	delete(s.festivals, id)
	return nil
}

// CreateFestivalBooking checks remaining capacity and inserts under one
// lock, so two concurrent bookings cannot both squeeze past the cap.
func (s *Store) CreateFestivalBooking(_ context.Context, b *model.FestivalBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.festivals[b.FestivalID]
	if !ok {
		return store.ErrNotFound
	}
	sold := 0
	for _, existing := range s.festBookings {
		if existing.FestivalID == b.FestivalID && existing.Status != model.BookingCancelled {
			sold += existing.Tickets
		}
	}
	if f.MaxCapacity > 0 && sold+b.Tickets > f.MaxCapacity {
		return store.ErrCapacityFull
	}
	b.ID = s.nextID("festival_bookings")
	b.Status = model.BookingPending
	b.CreatedAt = now()
	c := *b
	s.festBookings[b.ID] = &c
	return nil
}

func (s *Store) ListFestivalBookings(_ context.Context, festivalID uint64) ([]*model.FestivalBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.FestivalBooking, 0)
	for _, id := range sortedIDs(s.festBookings) {
		if s.festBookings[id].FestivalID == festivalID {
			c := *s.festBookings[id]
			out = append(out, &c)
		}
	}
	return out, nil
}
