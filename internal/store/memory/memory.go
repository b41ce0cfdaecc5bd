// Package memory implements the storage contract on plain maps. It
// backs demo mode (no database configured) and the test suite. One
// RWMutex serialises every operation, so multi-record writes such as
// itinerary assignment are atomic by construction. The store holds no
// process-global state: construct one per server or per test.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
)

// Store is the in-memory backend. All maps are keyed by record ID;
// seq holds one auto-increment counter per entity family.
type Store struct {
	mu sync.RWMutex

	tours          map[uint64]*model.Tour
	operators      map[uint64]*model.TourOperator
	bookings       map[uint64]*model.Booking
	guides         map[uint64]*model.Guide
	itineraries    map[uint64]*model.Itinerary
	days           map[uint64]*model.ItineraryDay
	customRequests map[uint64]*model.CustomTourRequest
	festivals      map[uint64]*model.Festival
	festBookings   map[uint64]*model.FestivalBooking
	hotels         map[uint64]*model.Hotel
	rooms          map[uint64]*model.HotelRoom
	hotelBookings  map[uint64]*model.HotelBooking
	users          map[uint64]*model.User
	refreshTokens  map[string]*model.RefreshToken
	feedback       map[uint64]*model.Feedback
	inquiries      map[uint64]*model.Inquiry
	testimonials   map[uint64]*model.Testimonial

	seq map[string]uint64
}

// New returns an empty memory store.
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

// reset reinitialises every map. Callers must hold mu (or own the store
// exclusively, as New does).
func (s *Store) reset() {
	s.tours = make(map[uint64]*model.Tour)
	s.operators = make(map[uint64]*model.TourOperator)
	s.bookings = make(map[uint64]*model.Booking)
	s.guides = make(map[uint64]*model.Guide)
	s.itineraries = make(map[uint64]*model.Itinerary)
	s.days = make(map[uint64]*model.ItineraryDay)
	s.customRequests = make(map[uint64]*model.CustomTourRequest)
	s.festivals = make(map[uint64]*model.Festival)
	s.festBookings = make(map[uint64]*model.FestivalBooking)
	s.hotels = make(map[uint64]*model.Hotel)
	s.rooms = make(map[uint64]*model.HotelRoom)
	s.hotelBookings = make(map[uint64]*model.HotelBooking)
	s.users = make(map[uint64]*model.User)
	s.refreshTokens = make(map[string]*model.RefreshToken)
	s.feedback = make(map[uint64]*model.Feedback)
	s.inquiries = make(map[uint64]*model.Inquiry)
	s.testimonials = make(map[uint64]*model.Testimonial)
	s.seq = make(map[string]uint64)
}

// nextID returns the next auto-increment value for the named family.
// Callers must hold mu for writing.
func (s *Store) nextID(family string) uint64 {
	s.seq[family]++
	return s.seq[family]
}

func now() time.Time { return time.Now().UTC() }

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyID(p *uint64) *uint64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// sortedIDs orders ids ascending so listings are stable across calls.
func sortedIDs[M any](m map[uint64]M) []uint64 {
	ids := make([]uint64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
