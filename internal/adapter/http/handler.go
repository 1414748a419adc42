// Package http provides the HTTP handler layer for the trip planner API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trip-planner/trip-planner-service/internal/adapter/http/response"
	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
	"github.com/trip-planner/trip-planner-service/internal/usecase"
)

// TripHandler handles HTTP requests for trip planning endpoints.
type TripHandler struct {
	planner usecase.TripPlanner
	log     zerolog.Logger
}

// NewTripHandler creates a new TripHandler with the given planner.
func NewTripHandler(planner usecase.TripPlanner, log zerolog.Logger) *TripHandler {
	return &TripHandler{
		planner: planner,
		log:     log,
	}
}

// PlanTrip handles POST /api/v1/trips/plan and the legacy POST /plan_trip.
//
// @Summary Plan a trip
// @Description Extracts a trip from free text and returns flights and a weather summary
// @Tags trips
// @Accept json
// @Produce json
// @Param request body PlanTripRequest true "Trip description"
// @Success 200 {object} PlanTripResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No airport code or no flights"
// @Failure 422 {object} response.ErrorDetail "Trip could not be extracted"
// @Failure 502 {object} response.ErrorDetail "Upstream provider failure"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/trips/plan [post]
func (h *TripHandler) PlanTrip(c echo.Context) error {
	var req PlanTripRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	req.Normalize()

	if err := c.Validate(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx := c.Request().Context()
	plan, err := h.planner.PlanTrip(ctx, req.UserInput)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToPlanTripResponse(plan))
}

// handleValidationError handles request validation errors and returns a 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps planner errors to HTTP responses.
// Context errors are checked first: a provider call cut off by the deadline maps to 504.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	log := logger.FromContext(c.Request().Context(), h.log)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case domain.IsValidation(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	case domain.IsExtraction(err):
		return response.ExtractionFailed(c)
	case domain.IsResolution(err):
		return response.ResolutionFailed(c, err.Error())
	case domain.IsNoFlightsFound(err):
		return response.NoFlightsFound(c)
	case domain.IsProviderFailure(err):
		return response.ProviderFailure(c)
	}

	log.Error().Err(err).Msg("Unclassified trip planning error")
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}
