package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/movie-wishlist/internal/handler"    // handlers implementing the endpoints
	"github.com/iliyamo/movie-wishlist/internal/middleware" // JWT verification middleware
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check,
// used by load balancers and monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterMovies registers every movie and interest endpoint under /v1.
// All of them require a verified bearer token; JWTAuth runs before any
// handler so the handlers can trust the identity stored in the context.
func RegisterMovies(e *echo.Echo, h *handler.MovieHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.POST("/movies", h.CreateMovie)
	g.GET("/movies", h.ListMovies)
	g.PATCH("/movies/:id/status", h.UpdateStatus)
	g.DELETE("/movies/:id", h.DeleteMovie)

	g.POST("/movies/:id/interest", h.AddInterest)
	g.DELETE("/movies/:id/interest", h.RemoveInterest)
	g.GET("/movies/:id/interests", h.ListInterestedUsers)
}
