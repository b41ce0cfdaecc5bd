package memory

import (
	"context"
	"strings"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

func cloneGuide(g *model.Guide) *model.Guide {
	c := *g
	c.Specializations = copyStrings(g.Specializations)
	return &c
}

// CreateGuide registers a guide or driver. Status always starts as
// not_assigned.
func (s *Store) CreateGuide(_ context.Context, g *model.Guide) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.nextID("guides")
	g.Status = model.GuideNotAssigned
	g.Email = strings.ToLower(strings.TrimSpace(g.Email))
	g.CreatedAt = now()
	g.UpdatedAt = g.CreatedAt
	s.guides[g.ID] = cloneGuide(g)
	return nil
}

func (s *Store) GetGuide(_ context.Context, id uint64) (*model.Guide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.guides[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneGuide(g), nil
}

func (s *Store) GetGuideByEmail(_ context.Context, email string) (*model.Guide, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedIDs(s.guides) {
		if s.guides[id].Email == email {
			return cloneGuide(s.guides[id]), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListGuides(_ context.Context, f store.GuideFilter) ([]*model.Guide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Guide, 0)
	for _, id := range sortedIDs(s.guides) {
		g := s.guides[id]
		if f.Status != "" && g.Status != f.Status {
			continue
		}
		if f.RegistrationType != "" && g.RegistrationType != f.RegistrationType {
			continue
		}
		out = append(out, cloneGuide(g))
	}
	return out, nil
}

func (s *Store) UpdateGuideStatus(_ context.Context, id uint64, status string) (*model.Guide, error) {
	if !model.ValidGuideStatus(status) {
		return nil, store.ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.guides[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	g.Status = status
	g.UpdatedAt = now()
	return cloneGuide(g), nil
}
