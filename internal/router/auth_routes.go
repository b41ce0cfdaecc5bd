package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/middleware"
	"github.com/sonamdorji/tour-booking-platform/internal/model"
)

// RegisterAuth registers the session endpoints and the authenticated
// user routes. Logout stays outside the JWT middleware so a refresh
// token alone can end a session.
func RegisterAuth(e *echo.Echo, h Handlers, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", h.Auth.Register)
	g.POST("/login", h.Auth.Login)
	g.POST("/refresh", h.Auth.Refresh)
	g.POST("/logout", h.Auth.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", h.Auth.Me)

	anyRole := middleware.RequireRole(model.RoleTourist, model.RoleGuide, model.RoleDriver, model.RoleAdmin)
	auth.POST("/feedback", h.Feedback.Create, anyRole)
	auth.GET("/me/feedback", h.Feedback.MyFeedback, anyRole)
}
