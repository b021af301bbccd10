// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/car-dealership/internal/handler"
	"github.com/iliyamo/car-dealership/internal/middleware"
)

// RegisterRoutes wires the public API surface onto the provided Echo
// instance.  rateLimit guards the inquiry form; the seed endpoint is
// registered only when an admin token is configured, and always behind
// a bearer-token check.
func RegisterRoutes(
	e *echo.Echo,
	cars *handler.CarHandler,
	inquiries *handler.InquiryHandler,
	admin *handler.AdminHandler,
	rateLimit echo.MiddlewareFunc,
	adminToken string,
) {
	// The catalog is consumed by a browser frontend served from a
	// different origin.
	e.Use(echomw.CORS())

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.GET("/cars", cars.GetCars)
	api.GET("/cars/:id", cars.GetCar)
	api.POST("/inquiry", inquiries.SubmitInquiry, rateLimit)

	if adminToken != "" {
		api.GET("/seed", admin.Seed, middleware.RequireToken(adminToken))
	}
}
