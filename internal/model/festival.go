package model

import "time"

// Festival is a dated event with a hard ticket capacity. MaxCapacity is
// enforced: the total tickets across non-cancelled bookings never
// exceeds it.
type Festival struct {
	ID               uint64    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	StartDate        string    `json:"start_date"` // YYYY-MM-DD
	EndDate          string    `json:"end_date"`
	MaxCapacity      int       `json:"max_capacity"`
	TicketPriceCents uint32    `json:"ticket_price_cents"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FestivalBooking reserves tickets for a festival.
type FestivalBooking struct {
	ID         uint64    `json:"id"`
	FestivalID uint64    `json:"festival_id"`
	Reference  string    `json:"reference"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Tickets    int       `json:"tickets"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
