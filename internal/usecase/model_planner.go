package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/retry"
)

const modelPlanPromptTemplate = `The CONTEXT below describes a trip. Work out the places and dates, find the
IATA codes, and look up flights and the weather forecast for the trip.

Answer with JSON only, following this example exactly:
{
  "trip_plan": {
    "description": "Here is your trip plan to Tel-Aviv from November 12th to November 15th.",
    "flights": {
      "Departure": ["Flight AF962 departing on November 12th from CDG to TLV"],
      "Return": ["Flight AF963 departing on November 15th from TLV to CDG"]
    },
    "weather_forecast": [
      "November 12th: clear sky, 20.69 °C",
      "November 13th: broken clouds, 20.36 °C"
    ]
  }
}

CONTEXT:
%s`

type modelPlanner struct {
	model domain.LanguageModel
	modelSettings
}

// NewModelPlanner creates a TripPlanner that asks the language model for the
// whole plan instead of calling the flight and weather providers.
func NewModelPlanner(model domain.LanguageModel, opts ...Option) TripPlanner {
	return &modelPlanner{model: model, modelSettings: newModelSettings(opts)}
}

func (p *modelPlanner) PlanTrip(ctx context.Context, text string) (*domain.TripPlan, error) {
	log := logger.FromContext(ctx, p.log)
	prompt := fmt.Sprintf(modelPlanPromptTemplate, strings.TrimSpace(text))

	cfg := p.retry.WithOnRetry(func(attempt int, err error) {
		log.Warn().Err(err).Int("attempt", attempt).Msg("Model plan failed, retrying")
	})

	plan, err := retry.DoWithResult(ctx, func() (*domain.TripPlan, error) {
		content, err := p.model.Complete(ctx, prompt)
		if err != nil {
			return nil, err
		}
		var envelope struct {
			TripPlan *domain.TripPlan `json:"trip_plan"`
		}
		if err := json.Unmarshal([]byte(StripCodeFence(content)), &envelope); err != nil {
			return nil, fmt.Errorf("decode model output: %w", err)
		}
		return envelope.TripPlan, nil
	}, cfg)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}

	if plan == nil || strings.TrimSpace(plan.Description) == "" {
		return nil, fmt.Errorf("%w: missing trip_plan.description", domain.ErrMalformedResponse)
	}

	log.Info().Int("departure_legs", len(plan.Flights.Departure)).Msg("Trip planned by model")
	return domain.NewTripPlan(plan.Description, plan.Flights.Departure, plan.Flights.Return, plan.WeatherForecast), nil
}
