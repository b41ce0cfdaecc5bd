package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/middleware"
	"github.com/sonamdorji/tour-booking-platform/internal/model"
)

// RegisterAdmin registers the back-office surface under /v1/admin.
// Every route requires a valid token with the ADMIN role.
func RegisterAdmin(e *echo.Echo, h Handlers, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))

	// Catalogue management.
	g.GET("/tours", h.Tours.AdminList)
	g.POST("/tours", h.Tours.Create)
	g.PUT("/tours/:id", h.Tours.Update)
	g.DELETE("/tours/:id", h.Tours.Delete)

	g.POST("/operators", h.Operators.Create)
	g.PUT("/operators/:id", h.Operators.Update)
	g.DELETE("/operators/:id", h.Operators.Delete)

	g.POST("/festivals", h.Festivals.Create)
	g.PUT("/festivals/:id", h.Festivals.Update)
	g.DELETE("/festivals/:id", h.Festivals.Delete)
	g.GET("/festivals/:id/bookings", h.Festivals.ListBookings)

	g.POST("/hotels", h.Hotels.Create)
	g.PUT("/hotels/:id", h.Hotels.Update)
	g.DELETE("/hotels/:id", h.Hotels.Delete)
	g.POST("/hotels/:id/rooms", h.Hotels.CreateRoom)
	g.PUT("/hotels/:id/rooms/:roomID", h.Hotels.UpdateRoom)
	g.DELETE("/hotels/:id/rooms/:roomID", h.Hotels.DeleteRoom)
	g.GET("/hotels/:id/bookings", h.Hotels.ListBookings)

	// Booking lifecycle.
	g.GET("/bookings", h.Bookings.List)
	g.GET("/bookings/:id", h.Bookings.Get)
	g.PATCH("/bookings/:id/status", h.Bookings.UpdateStatus)

	// Guide registry.
	g.GET("/guides", h.Guides.List)
	g.GET("/guides/:id", h.Guides.Get)
	g.PATCH("/guides/:id/status", h.Guides.UpdateStatus)

	// Itineraries.
	g.GET("/itineraries", h.Itins.List)
	g.POST("/itineraries", h.Itins.Create)
	g.GET("/itineraries/:id", h.Itins.Get)
	g.PUT("/itineraries/:id", h.Itins.Update)
	g.POST("/itineraries/:id/participants", h.Itins.RegisterParticipants)
	g.POST("/itineraries/:id/days", h.Itins.AddDay)
	g.PUT("/itineraries/:id/days/:dayID", h.Itins.UpdateDay)
	g.DELETE("/itineraries/:id/days/:dayID", h.Itins.DeleteDay)

	// Custom tour requests.
	g.GET("/custom-tours", h.Custom.List)
	g.GET("/custom-tours/:id", h.Custom.Get)
	g.PATCH("/custom-tours/:id/status", h.Custom.UpdateStatus)

	// Feedback and marketing content.
	g.GET("/feedback", h.Feedback.AdminList)
	g.GET("/inquiries", h.Feedback.ListInquiries)
	g.PATCH("/inquiries/:id/respond", h.Feedback.MarkInquiryResponded)
	g.GET("/testimonials", h.Feedback.AdminListTestimonials)
	g.POST("/testimonials", h.Feedback.CreateTestimonial)
	g.POST("/testimonials/:id/approve", h.Feedback.ApproveTestimonial)
	g.DELETE("/testimonials/:id", h.Feedback.DeleteTestimonial)

	// Dashboard and demo data.
	g.GET("/stats", h.Admin.Stats)
	g.POST("/seed", h.Admin.Seed)
	g.POST("/clear", h.Admin.Clear)
}

// RegisterGuide registers the guide/driver self-service group.
func RegisterGuide(e *echo.Echo, h Handlers, jwtSecret string) {
	g := e.Group("/v1/my")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleGuide, model.RoleDriver))

	g.GET("/itineraries", h.Itins.MyItineraries)
}
