package router

import (
	"github.com/iliyamo/store-rating-platform/internal/handler"
	"github.com/iliyamo/store-rating-platform/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterAdmin registers the administration endpoints.  Every route in
// here requires a valid JWT carrying the admin role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, u *handler.UserHandler, s *handler.StoreHandler, jwtSecret string) {
	g := e.Group(
		"/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("admin"),
	)

	g.GET("/stats", a.Stats)       // platform-wide user/store/rating counts
	g.GET("/users", a.Users)       // filterable user listing
	g.GET("/users/:id", a.UserByID) // single user detail, with owner rating
	g.GET("/stores", a.Stores)     // store listing with average ratings

	// User and store creation live outside the /admin prefix but carry the
	// same role requirement.
	m := e.Group(
		"",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("admin"),
	)
	m.POST("/users/add", u.Add)
	m.POST("/stores/add", s.Add)
	m.GET("/stores", s.ListAdmin)
}
