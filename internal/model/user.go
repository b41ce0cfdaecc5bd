package model

import "time"

// Account roles. Role names are stored upper-case in both the database
// and JWT claims.
const (
	RoleTourist = "TOURIST"
	RoleGuide   = "GUIDE"
	RoleDriver  = "DRIVER"
	RoleAdmin   = "ADMIN"
)

// ValidRole reports whether r is a recognised account role. ADMIN is
// deliberately excluded from self-service registration and must be
// granted out of band.
func ValidRole(r string) bool {
	switch r {
	case RoleTourist, RoleGuide, RoleDriver:
		return true
	}
	return false
}

// User is an account record. PasswordHash holds a bcrypt hash and is
// never serialised.
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken is a stored refresh-token row. Only the SHA-256 hash of
// the raw token ever reaches storage.
type RefreshToken struct {
	ID        uint64
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
