package model

import "time"

// Booking statuses. Status is server-assigned on create and only moves
// through values in this set; anything else is rejected at the API
// boundary.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// ValidBookingStatus reports whether s is a recognised booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking is a traveller's request for a seat on a tour, created from
// the public booking form. Reference is a generated UUID handed back to
// the client so duplicate submissions can be told apart.
type Booking struct {
	ID              uint64    `json:"id"`
	TourID          uint64    `json:"tour_id"`
	Reference       string    `json:"reference"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	TravelDate      string    `json:"travel_date"` // YYYY-MM-DD
	GroupSize       int       `json:"group_size"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
