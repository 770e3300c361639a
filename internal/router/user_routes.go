package router

import (
	"github.com/iliyamo/store-rating-platform/internal/handler"
	"github.com/iliyamo/store-rating-platform/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterUser registers user-scoped endpoints.  Rating submission and
// listing require a valid JWT and the user role; the password update
// endpoint is additionally open to store owners.
func RegisterUser(e *echo.Echo, r *handler.RatingHandler, u *handler.UserHandler, jwtSecret string) {
	g := e.Group(
		"/ratings",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("user"),
	)
	g.POST("/submit", r.Submit)
	g.GET("", r.List)

	// Password updates are self-service for both rating users and store
	// owners; admins manage their own accounts through /users/add.
	p := e.Group(
		"/users",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("user", "store_owner"),
	)
	p.POST("/update-password", u.UpdatePassword)
}
