// Package model defines the domain entities persisted by the storage
// backends. Structs carry json tags because they are written straight to
// API responses; list-valued columns are serialised as JSON text by the
// MySQL backend.
package model

import "time"

// Tour categories are free-form strings chosen by administrators
// ("Cultural", "Trekking", "Luxury", ...). Listing endpoints filter on
// the lower-cased value so categories behave case-insensitively.

// Tour is a marketable tour package. Tours are never hard-deleted:
// removal flips IsActive and inactive tours disappear from every
// public read path.
type Tour struct {
	ID           uint64    `json:"id"`
	OperatorID   *uint64   `json:"operator_id,omitempty"` // optional owning operator
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DurationDays int       `json:"duration_days"`
	PriceCents   uint32    `json:"price_cents"`
	Category     string    `json:"category"`
	Rating       float64   `json:"rating"`
	Highlights   []string  `json:"highlights"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TourOperator is an agency that runs tours. Deleting an operator keeps
// its tours but clears their operator reference.
type TourOperator struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	Website        string    `json:"website"`
	Specialties    []string  `json:"specialties"`
	Rating         float64   `json:"rating"`
	Certifications []string  `json:"certifications"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
