package model

import "time"

// Itinerary statuses.
const (
	ItineraryActive    = "active"
	ItineraryCompleted = "completed"
	ItineraryCancelled = "cancelled"
)

// ValidItineraryStatus reports whether s is a recognised itinerary status.
func ValidItineraryStatus(s string) bool {
	switch s {
	case ItineraryActive, ItineraryCompleted, ItineraryCancelled:
		return true
	}
	return false
}

// Itinerary is a scheduled instance of a tour with an optional guide and
// driver assignment and a day-by-day plan. Creation is atomic with the
// guide/driver status flips: either the itinerary exists and both people
// are marked assigned, or nothing changed.
type Itinerary struct {
	ID                  uint64         `json:"id"`
	TourID              uint64         `json:"tour_id"`
	Name                string         `json:"name"`
	StartDate           string         `json:"start_date"` // YYYY-MM-DD
	EndDate             string         `json:"end_date"`
	GuideID             *uint64        `json:"guide_id,omitempty"`
	DriverID            *uint64        `json:"driver_id,omitempty"`
	MaxParticipants     int            `json:"max_participants"`
	CurrentParticipants int            `json:"current_participants"`
	Status              string         `json:"status"`
	Days                []ItineraryDay `json:"days,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// ItineraryDay is one day of an itinerary's plan. DayNumber is unique
// within an itinerary.
type ItineraryDay struct {
	ID            uint64   `json:"id"`
	ItineraryID   uint64   `json:"itinerary_id"`
	DayNumber     int      `json:"day_number"`
	Activities    []string `json:"activities"`
	Accommodation string   `json:"accommodation,omitempty"`
	Meals         []string `json:"meals"`
}
