package memory

import (
	"context"
	"strings"
	"time"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// CreateUser stores an account with a normalised, unique email.
func (s *Store) CreateUser(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrEmailExists
		}
	}
	u.ID = s.nextID("users")
	u.IsActive = true
	u.CreatedAt = now()
	u.UpdatedAt = u.CreatedAt
	c := *u
	s.users[u.ID] = &c
	return nil
}

func (s *Store) GetUser(_ context.Context, id uint64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedIDs(s.users) {
		if s.users[id].Email == email {
			c := *s.users[id]
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) StoreRefresh(_ context.Context, userID uint64, tokenHash string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshTokens[tokenHash] = &model.RefreshToken{
		ID:        s.nextID("refresh_tokens"),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: exp,
		CreatedAt: now(),
	}
	return nil
}

func (s *Store) ValidateRefresh(_ context.Context, tokenHash string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.refreshTokens[tokenHash]
	if !ok || t.RevokedAt != nil || now().After(t.ExpiresAt) {
		return 0, store.ErrNotFound
	}
	return t.UserID, nil
}

func (s *Store) RevokeRefreshByHash(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.refreshTokens[tokenHash]; ok && t.RevokedAt == nil {
		ts := now()
		t.RevokedAt = &ts
	}
	return nil
}

func (s *Store) RevokeAllRefreshForUser(_ context.Context, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := now()
	for _, t := range s.refreshTokens {
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &ts
		}
	}
	return nil
}
