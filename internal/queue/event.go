// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a tour booking is accepted.  It
// carries enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID       uint64 `json:"booking_id"`
	Reference       string `json:"reference"`
	TourID          uint64 `json:"tour_id"`
	TourTitle       string `json:"tour_title"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	TravelDate      string `json:"travel_date"`
	GroupSize       int    `json:"group_size"`
	TotalPriceCents uint32 `json:"total_price_cents"`
	CreatedAt       string `json:"created_at"`
}

// GuideAssignedEvent is published when an itinerary is created with a guide
// (and optionally a driver) attached.
type GuideAssignedEvent struct {
	ItineraryID uint64 `json:"itinerary_id"`
	Title       string `json:"title"`
	GuideID     uint64 `json:"guide_id"`
	GuideName   string `json:"guide_name"`
	DriverID    uint64 `json:"driver_id,omitempty"`
	DriverName  string `json:"driver_name,omitempty"`
	StartDate   string `json:"start_date"`
	AssignedAt  string `json:"assigned_at"`
}
