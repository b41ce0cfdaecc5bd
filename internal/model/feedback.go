package model

import "time"

// Feedback is a post-trip rating left by an authenticated user,
// optionally tied to a tour or itinerary. Rating is 1..5.
type Feedback struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	TourID      *uint64   `json:"tour_id,omitempty"`
	ItineraryID *uint64   `json:"itinerary_id,omitempty"`
	Rating      int       `json:"rating"`
	Category    string    `json:"category"`
	Comment     string    `json:"comment,omitempty"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
}

// Inquiry is a message submitted through the public contact form.
type Inquiry struct {
	ID        uint64    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Responded bool      `json:"responded"`
	CreatedAt time.Time `json:"created_at"`
}

// Testimonial is a public quote shown on the marketing pages. Only
// approved testimonials are visible to guests.
type Testimonial struct {
	ID        uint64    `json:"id"`
	Author    string    `json:"author"`
	Country   string    `json:"country,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats aggregates per-family record counts for the admin dashboard.
type Stats struct {
	Tours           int `json:"tours"`
	Operators       int `json:"operators"`
	Bookings        int `json:"bookings"`
	PendingBookings int `json:"pending_bookings"`
	Guides          int `json:"guides"`
	Itineraries     int `json:"itineraries"`
	CustomRequests  int `json:"custom_requests"`
	Festivals       int `json:"festivals"`
	Hotels          int `json:"hotels"`
	Users           int `json:"users"`
	Feedback        int `json:"feedback"`
	Inquiries       int `json:"inquiries"`
}
