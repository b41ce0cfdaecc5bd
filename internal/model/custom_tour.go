package model

import "time"

// Custom tour request statuses.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestDeclined = "declined"
)

// ValidRequestStatus reports whether s is a recognised request status.
func ValidRequestStatus(s string) bool {
	switch s {
	case RequestPending, RequestAccepted, RequestDeclined:
		return true
	}
	return false
}

// CustomTourRequest is a free-form trip inquiry awaiting admin curation
// into a priced itinerary.
type CustomTourRequest struct {
	ID           uint64    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	DurationDays int       `json:"duration_days"`
	GroupSize    int       `json:"group_size"`
	BudgetCents  uint32    `json:"budget_cents"`
	Interests    []string  `json:"interests"`
	Destinations []string  `json:"destinations"`
	Status       string    `json:"status"`
	AdminNotes   string    `json:"admin_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
