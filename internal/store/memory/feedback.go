package memory

import (
	"context"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

func (s *Store) CreateFeedback(_ context.Context, f *model.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[f.UserID]; !ok {
		return store.ErrNotFound
	}
	if f.TourID != nil {
		if _, ok := s.tours[*f.TourID]; !ok {
			return store.ErrNotFound
		}
	}
	if f.ItineraryID != nil {
		if _, ok := s.itineraries[*f.ItineraryID]; !ok {
			return store.ErrNotFound
		}
	}
	f.ID = s.nextID("feedback")
	f.CreatedAt = now()
	c := *f
	c.TourID = copyID(f.TourID)
	c.ItineraryID = copyID(f.ItineraryID)
	s.feedback[f.ID] = &c
	return nil
}

func (s *Store) ListFeedback(_ context.Context, flt store.FeedbackFilter) ([]*model.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Feedback, 0)
	for _, id := range sortedIDs(s.feedback) {
		f := s.feedback[id]
		if flt.PublicOnly && !f.IsPublic {
			continue
		}
		if flt.UserID != 0 && f.UserID != flt.UserID {
			continue
		}
		c := *f
		c.TourID = copyID(f.TourID)
		c.ItineraryID = copyID(f.ItineraryID)
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) CreateInquiry(_ context.Context, i *model.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i.ID = s.nextID("inquiries")
	i.Responded = false
	i.CreatedAt = now()
	c := *i
	s.inquiries[i.ID] = &c
	return nil
}

func (s *Store) ListInquiries(_ context.Context) ([]*model.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Inquiry, 0, len(s.inquiries))
	for _, id := range sortedIDs(s.inquiries) {
		c := *s.inquiries[id]
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) MarkInquiryResponded(_ context.Context, id uint64) (*model.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.inquiries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	i.Responded = true
	c := *i
	return &c, nil
}

func (s *Store) CreateTestimonial(_ context.Context, t *model.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextID("testimonials")
	t.Approved = false
	t.CreatedAt = now()
	c := *t
	s.testimonials[t.ID] = &c
	return nil
}

func (s *Store) ListTestimonials(_ context.Context, approvedOnly bool) ([]*model.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Testimonial, 0)
	for _, id := range sortedIDs(s.testimonials) {
		t := s.testimonials[id]
		if approvedOnly && !t.Approved {
			continue
		}
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) ApproveTestimonial(_ context.Context, id uint64) (*model.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.testimonials[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	t.Approved = true
	c := *t
	return &c, nil
}

func (s *Store) DeleteTestimonial(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.testimonials[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.testimonials, id)
	return nil
}

func (s *Store) Stats(_ context.Context) (*model.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pending := 0
	for _, b := range s.bookings {
		if b.Status == model.BookingPending {
			pending++
		}
	}
	return &model.Stats{
		Tours:           len(s.tours),
		Operators:       len(s.operators),
		Bookings:        len(s.bookings),
		PendingBookings: pending,
		Guides:          len(s.guides),
		Itineraries:     len(s.itineraries),
		CustomRequests:  len(s.customRequests),
		Festivals:       len(s.festivals),
		Hotels:          len(s.hotels),
		Users:           len(s.users),
		Feedback:        len(s.feedback),
		Inquiries:       len(s.inquiries),
	}, nil
}

// Clear drops every record and restarts the id counters.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return nil
}
