package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "trip-planner"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"trip-planner"`
}

// Health reports that the process is serving. It does not probe the upstream providers.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: ServiceName,
	})
}
