package router // router defines how HTTP routes are registered for the API

import (
	"github.com/iliyamo/store-rating-platform/internal/handler"    // owner handlers
	"github.com/iliyamo/store-rating-platform/internal/middleware" // JWT + role middlewares
	"github.com/labstack/echo/v4"
)

// RegisterOwner registers store-owner endpoints under /owner.
// All routes require a valid JWT and the store_owner role.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/owner",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("store_owner"),
	)

	g.GET("/dashboard", o.Dashboard) // average rating + list of raters for the owner's store
}
