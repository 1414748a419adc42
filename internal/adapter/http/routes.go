package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all trip planner API routes.
// The legacy /plan_trip path is kept for existing clients.
func RegisterRoutes(e *echo.Echo, h *TripHandler) {
	if e.Validator == nil {
		e.Validator = NewRequestValidator()
	}

	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	e.POST("/plan_trip", h.PlanTrip)

	api := e.Group("/api/v1")
	trips := api.Group("/trips")
	trips.POST("/plan", h.PlanTrip)
}
