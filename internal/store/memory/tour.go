package memory

import (
	"context"
	"strings"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

func cloneTour(t *model.Tour) *model.Tour {
	c := *t
	c.OperatorID = copyID(t.OperatorID)
	c.Highlights = copyStrings(t.Highlights)
	return &c
}

// CreateTour stores a new tour. IsActive defaults to true: the create
// path never produces a hidden tour.
func (s *Store) CreateTour(_ context.Context, t *model.Tour) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextID("tours")
	t.IsActive = true
	t.CreatedAt = now()
	t.UpdatedAt = t.CreatedAt
	s.tours[t.ID] = cloneTour(t)
	return nil
}

// GetTour returns an active tour by id. Soft-deleted tours behave as
// missing.
func (s *Store) GetTour(_ context.Context, id uint64) (*model.Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tours[id]
	if !ok || !t.IsActive {
		return nil, store.ErrNotFound
	}
	return cloneTour(t), nil
}

func (s *Store) ListTours(_ context.Context, f store.TourFilter) ([]*model.Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Tour, 0)
	for _, id := range sortedIDs(s.tours) {
		t := s.tours[id]
		if !t.IsActive && !f.IncludeInactive {
			continue
		}
		if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
			continue
		}
		out = append(out, cloneTour(t))
	}
	return out, nil
}

func (s *Store) UpdateTour(_ context.Context, t *model.Tour) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.tours[t.ID]
	if !ok || !cur.IsActive {
		return store.ErrNotFound
	}
	t.CreatedAt = cur.CreatedAt
	t.IsActive = cur.IsActive
	t.UpdatedAt = now()
	s.tours[t.ID] = cloneTour(t)
	return nil
}

func (s *Store) DeactivateTour(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tours[id]
	if !ok || !t.IsActive {
		return store.ErrNotFound
	}
	t.IsActive = false
	t.UpdatedAt = now()
	return nil
}

func cloneOperator(o *model.TourOperator) *model.TourOperator {
	c := *o
	c.Specialties = copyStrings(o.Specialties)
	c.Certifications = copyStrings(o.Certifications)
	return &c
}

func (s *Store) CreateOperator(_ context.Context, o *model.TourOperator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.nextID("operators")
	o.CreatedAt = now()
	o.UpdatedAt = o.CreatedAt
	s.operators[o.ID] = cloneOperator(o)
	return nil
}

func (s *Store) GetOperator(_ context.Context, id uint64) (*model.TourOperator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.operators[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneOperator(o), nil
}

func (s *Store) ListOperators(_ context.Context) ([]*model.TourOperator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.TourOperator, 0, len(s.operators))
	for _, id := range sortedIDs(s.operators) {
		out = append(out, cloneOperator(s.operators[id]))
	}
	return out, nil
}

func (s *Store) UpdateOperator(_ context.Context, o *model.TourOperator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.operators[o.ID]
	if !ok {
		return store.ErrNotFound
	}
	o.CreatedAt = cur.CreatedAt
	o.UpdatedAt = now()
	s.operators[o.ID] = cloneOperator(o)
	return nil
}

// DeleteOperator removes the operator and detaches its tours. Both
// mutations happen under the same lock, so readers never observe a tour
// pointing at a vanished operator.
func (s *Store) DeleteOperator(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.operators[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.operators, id)
	for _, t := range s.tours {
		if t.OperatorID != nil && *t.OperatorID == id {
			t.OperatorID = nil
			t.UpdatedAt = now()
		}
	}
	return nil
}
