package memory

import (
	"context"
	"sort"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

func cloneDay(d *model.ItineraryDay) *model.ItineraryDay {
	c := *d
	c.Activities = copyStrings(d.Activities)
	c.Meals = copyStrings(d.Meals)
	return &c
}

// daysFor collects an itinerary's days ordered by day number. Callers
// must hold mu.
func (s *Store) daysFor(itineraryID uint64) []model.ItineraryDay {
	var out []model.ItineraryDay
	for _, id := range sortedIDs(s.days) {
		if s.days[id].ItineraryID == itineraryID {
			out = append(out, *cloneDay(s.days[id]))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayNumber < out[j].DayNumber })
	return out
}

func (s *Store) cloneItinerary(it *model.Itinerary) *model.Itinerary {
	c := *it
	c.GuideID = copyID(it.GuideID)
	c.DriverID = copyID(it.DriverID)
	c.Days = s.daysFor(it.ID)
	return &c
}

// CreateItinerary creates the itinerary, its days and the guide/driver
// assignment under one lock. Availability is checked before anything is
// written, so a failure leaves no partial state behind.
func (s *Store) CreateItinerary(_ context.Context, it *model.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tours[it.TourID]
	if !ok || !t.IsActive {
		return store.ErrNotFound
	}
	var guide, driver *model.Guide
	if it.GuideID != nil {
		g, ok := s.guides[*it.GuideID]
		if !ok {
			return store.ErrNotFound
		}
		if g.Status != model.GuideNotAssigned {
			return store.ErrGuideUnavailable
		}
		guide = g
	}
	if it.DriverID != nil {
		d, ok := s.guides[*it.DriverID]
		if !ok {
			return store.ErrNotFound
		}
		if d.Status != model.GuideNotAssigned {
			return store.ErrGuideUnavailable
		}
		driver = d
	}

	it.ID = s.nextID("itineraries")
	it.Status = model.ItineraryActive
	it.CurrentParticipants = 0
	it.CreatedAt = now()
	it.UpdatedAt = it.CreatedAt
	for i := range it.Days {
		d := &it.Days[i]
		d.ID = s.nextID("itinerary_days")
		d.ItineraryID = it.ID
		s.days[d.ID] = cloneDay(d)
	}
	stored := *it
	stored.GuideID = copyID(it.GuideID)
	stored.DriverID = copyID(it.DriverID)
	stored.Days = nil
	s.itineraries[it.ID] = &stored

	if guide != nil {
		guide.Status = model.GuideAssigned
		guide.UpdatedAt = now()
	}
	if driver != nil {
		driver.Status = model.GuideAssigned
		driver.UpdatedAt = now()
	}
	it.Days = s.daysFor(it.ID)
	return nil
}

func (s *Store) GetItinerary(_ context.Context, id uint64) (*model.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.itineraries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s.cloneItinerary(it), nil
}

func (s *Store) ListItineraries(_ context.Context, f store.ItineraryFilter) ([]*model.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Itinerary, 0)
	for _, id := range sortedIDs(s.itineraries) {
		it := s.itineraries[id]
		if f.GuideID != 0 && (it.GuideID == nil || *it.GuideID != f.GuideID) {
			continue
		}
		if f.DriverID != 0 && (it.DriverID == nil || *it.DriverID != f.DriverID) {
			continue
		}
		out = append(out, s.cloneItinerary(it))
	}
	return out, nil
}

// UpdateItinerary changes name, dates, status and max_participants.
// Completing or cancelling an itinerary releases its guide and driver
// back to not_assigned.
func (s *Store) UpdateItinerary(_ context.Context, it *model.Itinerary) error {
	if !model.ValidItineraryStatus(it.Status) {
		return store.ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.itineraries[it.ID]
	if !ok {
		return store.ErrNotFound
	}
	release := cur.Status == model.ItineraryActive && it.Status != model.ItineraryActive
	cur.Name = it.Name
	cur.StartDate = it.StartDate
	cur.EndDate = it.EndDate
	cur.Status = it.Status
	cur.MaxParticipants = it.MaxParticipants
	cur.UpdatedAt = now()
	if release {
		s.releaseAssignment(cur.GuideID)
		s.releaseAssignment(cur.DriverID)
	}
	*it = *s.cloneItinerary(cur)
	return nil
}

// releaseAssignment flips an assigned person back to not_assigned.
// Blacklisted people stay blacklisted. Callers must hold mu.
func (s *Store) releaseAssignment(id *uint64) {
	if id == nil {
		return
	}
	if g, ok := s.guides[*id]; ok && g.Status == model.GuideAssigned {
		g.Status = model.GuideNotAssigned
		g.UpdatedAt = now()
	}
}

func (s *Store) RegisterParticipants(_ context.Context, id uint64, n int) (*model.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.itineraries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if it.Status != model.ItineraryActive {
		return nil, store.ErrConflict
	}
	if it.MaxParticipants > 0 && it.CurrentParticipants+n > it.MaxParticipants {
		return nil, store.ErrCapacityFull
	}
	it.CurrentParticipants += n
	it.UpdatedAt = now()
	return s.cloneItinerary(it), nil
}

func (s *Store) AddItineraryDay(_ context.Context, d *model.ItineraryDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.itineraries[d.ItineraryID]; !ok {
		return store.ErrNotFound
	}
	for _, existing := range s.days {
		if existing.ItineraryID == d.ItineraryID && existing.DayNumber == d.DayNumber {
			return store.ErrConflict
		}
	}
	d.ID = s.nextID("itinerary_days")
	s.days[d.ID] = cloneDay(d)
	return nil
}

func (s *Store) UpdateItineraryDay(_ context.Context, d *model.ItineraryDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.days[d.ID]
	if !ok || cur.ItineraryID != d.ItineraryID {
		return store.ErrNotFound
	}
	for _, other := range s.days {
		if other.ID != d.ID && other.ItineraryID == d.ItineraryID && other.DayNumber == d.DayNumber {
			return store.ErrConflict
		}
	}
	s.days[d.ID] = cloneDay(d)
	return nil
}

func (s *Store) DeleteItineraryDay(_ context.Context, itineraryID, dayID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.days[dayID]
	if !ok || d.ItineraryID != itineraryID {
		return store.ErrNotFound
	}
	delete(s.days, dayID)
	return nil
}
