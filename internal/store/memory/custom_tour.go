package memory

import (
	"context"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

func cloneRequest(r *model.CustomTourRequest) *model.CustomTourRequest {
	c := *r
	c.Interests = copyStrings(r.Interests)
	c.Destinations = copyStrings(r.Destinations)
	return &c
}

func (s *Store) CreateCustomTourRequest(_ context.Context, r *model.CustomTourRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID("custom_requests")
	r.Status = model.RequestPending
	r.AdminNotes = ""
	r.CreatedAt = now()
	r.UpdatedAt = r.CreatedAt
	s.customRequests[r.ID] = cloneRequest(r)
	return nil
}

func (s *Store) GetCustomTourRequest(_ context.Context, id uint64) (*model.CustomTourRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.customRequests[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneRequest(r), nil
}

func (s *Store) ListCustomTourRequests(_ context.Context) ([]*model.CustomTourRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.CustomTourRequest, 0, len(s.customRequests))
	for _, id := range sortedIDs(s.customRequests) {
		out = append(out, cloneRequest(s.customRequests[id]))
	}
	return out, nil
}

func (s *Store) UpdateCustomTourRequestStatus(_ context.Context, id uint64, status, notes string) (*model.CustomTourRequest, error) {
	if !model.ValidRequestStatus(status) {
		return nil, store.ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.customRequests[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	r.Status = status
	r.AdminNotes = notes
	r.UpdatedAt = now()
	return cloneRequest(r), nil
}
