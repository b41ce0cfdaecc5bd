package model

import "time"

// Hotel is an accommodation listing with one or more room types.
type Hotel struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"` // e.g. "3-star", "luxury"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HotelRoom is a room type within a hotel. TotalRooms bounds how many
// overlapping bookings the type can hold at once.
type HotelRoom struct {
	ID                 uint64    `json:"id"`
	HotelID            uint64    `json:"hotel_id"`
	RoomType           string    `json:"room_type"`
	PricePerNightCents uint32    `json:"price_per_night_cents"`
	MaxOccupancy       int       `json:"max_occupancy"`
	TotalRooms         int       `json:"total_rooms"`
	CreatedAt          time.Time `json:"created_at"`
}

// HotelBooking reserves one room of a room type for a date range.
// CheckIn is inclusive, CheckOut exclusive; two bookings overlap when
// their [CheckIn, CheckOut) ranges intersect.
type HotelBooking struct {
	ID        uint64    `json:"id"`
	HotelID   uint64    `json:"hotel_id"`
	RoomID    uint64    `json:"room_id"`
	Reference string    `json:"reference"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CheckIn   string    `json:"check_in"` // YYYY-MM-DD
	CheckOut  string    `json:"check_out"`
	Guests    int       `json:"guests"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
