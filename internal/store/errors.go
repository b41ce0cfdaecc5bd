// Package store defines the storage contract shared by the memory and
// MySQL backends, plus the sentinel errors handlers use to pick HTTP
// status codes. Not-found and backend failures are distinct on purpose:
// an update that touched no row returns ErrNotFound, while a driver
// error surfaces wrapped and untouched.
package store

import "errors"

// ErrNotFound is returned when the requested record does not exist.
// Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an operation cannot proceed because of
// existing dependent state. Handlers translate it into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrCapacityFull is returned when a festival, itinerary or hotel room
// has no remaining capacity for the requested booking.
var ErrCapacityFull = errors.New("capacity full")

// ErrEmailExists is returned when registering an account with an email
// that is already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrGuideUnavailable is returned when an itinerary tries to claim a
// guide or driver whose status is not not_assigned.
var ErrGuideUnavailable = errors.New("guide or driver unavailable")

// ErrInvalidStatus is returned when a status transition targets a value
// outside the entity's allowed set. Handlers translate it into HTTP 400.
var ErrInvalidStatus = errors.New("invalid status")
