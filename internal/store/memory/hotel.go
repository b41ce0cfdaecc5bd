package memory

import (
	"context"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

func (s *Store) CreateHotel(_ context.Context, h *model.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = s.nextID("hotels")
	h.CreatedAt = now()
	h.UpdatedAt = h.CreatedAt
	c := *h
	s.hotels[h.ID] = &c
	return nil
}

func (s *Store) GetHotel(_ context.Context, id uint64) (*model.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hotels[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *h
	return &c, nil
}

func (s *Store) ListHotels(_ context.Context) ([]*model.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Hotel, 0, len(s.hotels))
	for _, id := range sortedIDs(s.hotels) {
		c := *s.hotels[id]
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) UpdateHotel(_ context.Context, h *model.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.hotels[h.ID]
	if !ok {
		return store.ErrNotFound
	}
	h.CreatedAt = cur.CreatedAt
	h.UpdatedAt = now()
	c := *h
	s.hotels[h.ID] = &c
	return nil
}

// DeleteHotel removes the hotel with its rooms; hotels with bookings
// cannot be removed.
func (s *Store) DeleteHotel(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hotels[id]; !ok {
		return store.ErrNotFound
	}
	for _, b := range s.hotelBookings {
		if b.HotelID == id {
			return store.ErrConflict
		}
	}
	for rid, r := range s.rooms {
		if r.HotelID == id {
			delete(s.rooms, rid)
		}
	}
	delete(s.hotels, id)
	return nil
}

func (s *Store) CreateHotelRoom(_ context.Context, r *model.HotelRoom) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hotels[r.HotelID]; !ok {
		return store.ErrNotFound
	}
	r.ID = s.nextID("hotel_rooms")
	r.CreatedAt = now()
	c := *r
	s.rooms[r.ID] = &c
	return nil
}

func (s *Store) ListHotelRooms(_ context.Context, hotelID uint64) ([]*model.HotelRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.hotels[hotelID]; !ok {
		return nil, store.ErrNotFound
	}
	out := make([]*model.HotelRoom, 0)
	for _, id := range sortedIDs(s.rooms) {
		if s.rooms[id].HotelID == hotelID {
			c := *s.rooms[id]
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *Store) UpdateHotelRoom(_ context.Context, r *model.HotelRoom) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.rooms[r.ID]
	if !ok || cur.HotelID != r.HotelID {
		return store.ErrNotFound
	}
	r.CreatedAt = cur.CreatedAt
	c := *r
	s.rooms[r.ID] = &c
	return nil
}

func (s *Store) DeleteHotelRoom(_ context.Context, hotelID, roomID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomID]
	if !ok || r.HotelID != hotelID {
		return store.ErrNotFound
	}
	for _, b := range s.hotelBookings {
		if b.RoomID == roomID {
			return store.ErrConflict
		}
	}
	delete(s.rooms, roomID)
	return nil
}

// datesOverlap treats check-in as inclusive and check-out as exclusive;
// lexicographic comparison works because dates are YYYY-MM-DD.
func datesOverlap(aIn, aOut, bIn, bOut string) bool {
	return aIn < bOut && bIn < aOut
}

// CreateHotelBooking counts overlapping non-cancelled stays for the
// room type and rejects the booking when every physical room is taken.
func (s *Store) CreateHotelBooking(_ context.Context, b *model.HotelBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[b.RoomID]
	if !ok || r.HotelID != b.HotelID {
		return store.ErrNotFound
	}
	if b.Guests > r.MaxOccupancy {
		return store.ErrConflict
	}
	occupied := 0
	for _, existing := range s.hotelBookings {
		if existing.RoomID == b.RoomID && existing.Status != model.BookingCancelled &&
			datesOverlap(existing.CheckIn, existing.CheckOut, b.CheckIn, b.CheckOut) {
			occupied++
		}
	}
	if occupied >= r.TotalRooms {
		return store.ErrCapacityFull
	}
	b.ID = s.nextID("hotel_bookings")
	b.Status = model.BookingPending
	b.CreatedAt = now()
	c := *b
	s.hotelBookings[b.ID] = &c
	return nil
}

func (s *Store) ListHotelBookings(_ context.Context, hotelID uint64) ([]*model.HotelBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.HotelBooking, 0)
	for _, id := range sortedIDs(s.hotelBookings) {
		if s.hotelBookings[id].HotelID == hotelID {
			c := *s.hotelBookings[id]
			out = append(out, &c)
		}
	}
	return out, nil
}
