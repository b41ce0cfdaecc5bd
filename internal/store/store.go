package store

import (
	"context"
	"time"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
)

// TourFilter narrows tour listings. Category matches case-insensitively;
// the zero value lists every active tour.
type TourFilter struct {
	Category        string
	IncludeInactive bool
}

// GuideFilter narrows guide listings by status and/or registration type.
type GuideFilter struct {
	Status           string
	RegistrationType string
}

// ItineraryFilter narrows itinerary listings to a guide or driver
// assignment.
type ItineraryFilter struct {
	GuideID  uint64
	DriverID uint64
}

// FeedbackFilter narrows feedback listings.
type FeedbackFilter struct {
	PublicOnly bool
	UserID     uint64
}

// TourStore covers tours and operators.
type TourStore interface {
	CreateTour(ctx context.Context, t *model.Tour) error
	GetTour(ctx context.Context, id uint64) (*model.Tour, error)
	ListTours(ctx context.Context, f TourFilter) ([]*model.Tour, error)
	UpdateTour(ctx context.Context, t *model.Tour) error
	// DeactivateTour soft-deletes: the tour stays on disk but leaves
	// every read path.
	DeactivateTour(ctx context.Context, id uint64) error

	CreateOperator(ctx context.Context, o *model.TourOperator) error
	GetOperator(ctx context.Context, id uint64) (*model.TourOperator, error)
	ListOperators(ctx context.Context) ([]*model.TourOperator, error)
	UpdateOperator(ctx context.Context, o *model.TourOperator) error
	// DeleteOperator removes the operator and clears operator_id on its
	// tours in the same transaction.
	DeleteOperator(ctx context.Context, id uint64) error
}

// BookingStore covers tour bookings.
type BookingStore interface {
	CreateBooking(ctx context.Context, b *model.Booking) error
	GetBooking(ctx context.Context, id uint64) (*model.Booking, error)
	ListBookings(ctx context.Context) ([]*model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uint64, status string) (*model.Booking, error)
}

// GuideStore covers guide/driver registrations.
type GuideStore interface {
	CreateGuide(ctx context.Context, g *model.Guide) error
	GetGuide(ctx context.Context, id uint64) (*model.Guide, error)
	GetGuideByEmail(ctx context.Context, email string) (*model.Guide, error)
	ListGuides(ctx context.Context, f GuideFilter) ([]*model.Guide, error)
	UpdateGuideStatus(ctx context.Context, id uint64, status string) (*model.Guide, error)
}

// ItineraryStore covers itineraries and their day plans.
type ItineraryStore interface {
	// CreateItinerary atomically creates the itinerary with its days and
	// flips any referenced guide/driver to assigned. A referenced person
	// who is not not_assigned aborts the whole creation with
	// ErrGuideUnavailable.
	CreateItinerary(ctx context.Context, it *model.Itinerary) error
	GetItinerary(ctx context.Context, id uint64) (*model.Itinerary, error)
	ListItineraries(ctx context.Context, f ItineraryFilter) ([]*model.Itinerary, error)
	UpdateItinerary(ctx context.Context, it *model.Itinerary) error
	// RegisterParticipants increments current_participants by n, failing
	// with ErrCapacityFull when the result would exceed max_participants.
	RegisterParticipants(ctx context.Context, id uint64, n int) (*model.Itinerary, error)

	AddItineraryDay(ctx context.Context, d *model.ItineraryDay) error
	UpdateItineraryDay(ctx context.Context, d *model.ItineraryDay) error
	DeleteItineraryDay(ctx context.Context, itineraryID, dayID uint64) error
}

// CustomTourStore covers custom tour requests.
type CustomTourStore interface {
	CreateCustomTourRequest(ctx context.Context, r *model.CustomTourRequest) error
	GetCustomTourRequest(ctx context.Context, id uint64) (*model.CustomTourRequest, error)
	ListCustomTourRequests(ctx context.Context) ([]*model.CustomTourRequest, error)
	UpdateCustomTourRequestStatus(ctx context.Context, id uint64, status, notes string) (*model.CustomTourRequest, error)
}

// FestivalStore covers festivals and capacity-checked festival bookings.
type FestivalStore interface {
	CreateFestival(ctx context.Context, f *model.Festival) error
	GetFestival(ctx context.Context, id uint64) (*model.Festival, error)
	ListFestivals(ctx context.Context) ([]*model.Festival, error)
	UpdateFestival(ctx context.Context, f *model.Festival) error
	DeleteFestival(ctx context.Context, id uint64) error

	// CreateFestivalBooking enforces the festival's max_capacity against
	// the ticket total of non-cancelled bookings.
	CreateFestivalBooking(ctx context.Context, b *model.FestivalBooking) error
	ListFestivalBookings(ctx context.Context, festivalID uint64) ([]*model.FestivalBooking, error)
}

// HotelStore covers hotels, room types and availability-checked hotel
// bookings.
type HotelStore interface {
	CreateHotel(ctx context.Context, h *model.Hotel) error
	GetHotel(ctx context.Context, id uint64) (*model.Hotel, error)
	ListHotels(ctx context.Context) ([]*model.Hotel, error)
	UpdateHotel(ctx context.Context, h *model.Hotel) error
	DeleteHotel(ctx context.Context, id uint64) error

	CreateHotelRoom(ctx context.Context, r *model.HotelRoom) error
	ListHotelRooms(ctx context.Context, hotelID uint64) ([]*model.HotelRoom, error)
	UpdateHotelRoom(ctx context.Context, r *model.HotelRoom) error
	DeleteHotelRoom(ctx context.Context, hotelID, roomID uint64) error

	// CreateHotelBooking enforces the room type's total_rooms against
	// overlapping non-cancelled stays.
	CreateHotelBooking(ctx context.Context, b *model.HotelBooking) error
	ListHotelBookings(ctx context.Context, hotelID uint64) ([]*model.HotelBooking, error)
}

// UserStore covers accounts and refresh tokens.
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUser(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error
	// ValidateRefresh returns the owning user ID for a live (non-revoked,
	// non-expired) token hash, or ErrNotFound.
	ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error)
	RevokeRefreshByHash(ctx context.Context, tokenHash string) error
	RevokeAllRefreshForUser(ctx context.Context, userID uint64) error
}

// FeedbackStore covers user feedback, contact inquiries and
// testimonials.
type FeedbackStore interface {
	CreateFeedback(ctx context.Context, f *model.Feedback) error
	ListFeedback(ctx context.Context, flt FeedbackFilter) ([]*model.Feedback, error)

	CreateInquiry(ctx context.Context, i *model.Inquiry) error
	ListInquiries(ctx context.Context) ([]*model.Inquiry, error)
	MarkInquiryResponded(ctx context.Context, id uint64) (*model.Inquiry, error)

	CreateTestimonial(ctx context.Context, t *model.Testimonial) error
	ListTestimonials(ctx context.Context, approvedOnly bool) ([]*model.Testimonial, error)
	ApproveTestimonial(ctx context.Context, id uint64) (*model.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uint64) error
}

// AdminStore covers dashboard aggregates and the destructive demo
// operations.
type AdminStore interface {
	Stats(ctx context.Context) (*model.Stats, error)
	// Clear wipes every record. Exposed only through the admin router
	// group.
	Clear(ctx context.Context) error
}

// Store is the uniform storage surface. Both backends implement the
// whole interface; selection happens once at startup.
type Store interface {
	TourStore
	BookingStore
	GuideStore
	ItineraryStore
	CustomTourStore
	FestivalStore
	HotelStore
	UserStore
	FeedbackStore
	AdminStore
}
