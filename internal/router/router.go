// Package router wires handlers onto the Echo instance. Public browse
// routes are unauthenticated; admin and guide groups sit behind the JWT
// and role middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/handler"
)

// Handlers collects every handler the route groups need.
type Handlers struct {
	Auth      *handler.AuthHandler
	Tours     *handler.TourHandler
	Operators *handler.OperatorHandler
	Bookings  *handler.BookingHandler
	Guides    *handler.GuideHandler
	Itins     *handler.ItineraryHandler
	Custom    *handler.CustomTourHandler
	Festivals *handler.FestivalHandler
	Hotels    *handler.HotelHandler
	Feedback  *handler.FeedbackHandler
	Admin     *handler.AdminHandler
}

// RegisterRoutes registers the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated browse and submission
// endpoints under /v1.
func RegisterPublic(e *echo.Echo, h Handlers) {
	v1 := e.Group("/v1")

	v1.GET("/tours", h.Tours.List)
	v1.GET("/tours/:id", h.Tours.Get)
	v1.GET("/operators", h.Operators.List)
	v1.GET("/operators/:id", h.Operators.Get)
	v1.GET("/festivals", h.Festivals.List)
	v1.GET("/festivals/:id", h.Festivals.Get)
	v1.GET("/hotels", h.Hotels.List)
	v1.GET("/hotels/:id", h.Hotels.Get)
	v1.GET("/hotels/:id/rooms", h.Hotels.ListRooms)
	v1.GET("/testimonials", h.Feedback.ListTestimonials)

	// Guest submissions.
	v1.POST("/bookings", h.Bookings.Create)
	v1.POST("/guides/register", h.Guides.Register)
	v1.POST("/custom-tours", h.Custom.Create)
	v1.POST("/inquiries", h.Feedback.CreateInquiry)
	v1.POST("/festivals/:id/bookings", h.Festivals.CreateBooking)
	v1.POST("/hotels/:id/bookings", h.Hotels.CreateBooking)
}
