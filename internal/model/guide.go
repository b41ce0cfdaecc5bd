package model

import "time"

// Guide registration types. A single registry covers both tour guides
// and drivers; RegistrationType is the discriminant.
const (
	RegistrationGuide  = "guide"
	RegistrationDriver = "driver"
)

// Guide assignment statuses.
const (
	GuideNotAssigned = "not_assigned"
	GuideAssigned    = "assigned"
	GuideBlacklisted = "blacklisted"
)

// ValidRegistrationType reports whether t is "guide" or "driver".
func ValidRegistrationType(t string) bool {
	return t == RegistrationGuide || t == RegistrationDriver
}

// ValidGuideStatus reports whether s is a recognised assignment status.
func ValidGuideStatus(s string) bool {
	switch s {
	case GuideNotAssigned, GuideAssigned, GuideBlacklisted:
		return true
	}
	return false
}

// Guide is a registered guide or driver. New registrations always start
// as not_assigned; the status flips to assigned when an itinerary claims
// the person and back when the itinerary releases them.
type Guide struct {
	ID               uint64    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	RegistrationType string    `json:"registration_type"`
	LicenseNumber    string    `json:"license_number,omitempty"`
	Specializations  []string  `json:"specializations"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
