package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/store-rating-platform/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/store-rating-platform/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes and the generic
// protected /me endpoint.  The provided AuthHandler implements the
// logic for each endpoint, and the jwtSecret is used to verify JWT
// tokens on protected routes.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Route group for operations that do not require an existing session.
	g := e.Group("/auth")
	// Register a POST endpoint to handle user registration at /auth/register.
	g.POST("/register", a.Register)
	// Register a POST endpoint to handle user login at /auth/login.
	g.POST("/login", a.Login)

	// Protected group: any authenticated role may inspect its own identity.
	auth := e.Group(
		"",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("admin", "store_owner", "user"),
	)
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated store browsing endpoints on
// the provided Echo instance. The optional cache middleware (built over
// Redis) may be passed to memoize responses; call with no extra middleware
// to serve directly from the database. These routes apply no JWT or role
// middleware and are intended for guest users.
func RegisterPublic(e *echo.Echo, s *handler.StoreHandler, mw ...echo.MiddlewareFunc) {
	// Expose the full store list
	e.GET("/stores/stores", s.ListPublic, mw...)
	// Substring search over store name and address
	e.GET("/stores/search", s.Search, mw...)
}
