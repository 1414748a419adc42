// Package usecase contains the trip planning business logic.
// It sequences extraction, validation, code resolution, flight search,
// itinerary selection and weather aggregation into a single TripPlan.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/timeutil"
)

// TripPlanner defines the trip planning operation exposed to transports.
type TripPlanner interface {
	// PlanTrip turns a free-text trip description into a TripPlan.
	// Failures are classified with the domain sentinel errors; no partial plan is returned.
	PlanTrip(ctx context.Context, text string) (*domain.TripPlan, error)
}

// Dependencies holds the collaborators of the pipeline planner.
// Extractor, Selector, Aggregator and Clock fall back to defaults when nil.
type Dependencies struct {
	Model      domain.LanguageModel
	Resolver   domain.CodeResolver
	Describer  domain.LocationDescriber
	Flights    domain.FlightSearcher
	Weather    domain.WeatherForecaster
	Extractor  TripExtractor
	Selector   ItinerarySelector
	Aggregator ForecastAggregator
	Clock      timeutil.Clock
	Logger     zerolog.Logger
}

type pipelinePlanner struct {
	extractor  TripExtractor
	resolver   domain.CodeResolver
	flights    domain.FlightSearcher
	weather    domain.WeatherForecaster
	selector   ItinerarySelector
	aggregator ForecastAggregator
	renderer   flightRenderer
	clock      timeutil.Clock
	log        zerolog.Logger
}

// NewPipelinePlanner creates a TripPlanner that runs the stages strictly in order.
func NewPipelinePlanner(deps Dependencies) TripPlanner {
	p := &pipelinePlanner{
		extractor:  deps.Extractor,
		resolver:   deps.Resolver,
		flights:    deps.Flights,
		weather:    deps.Weather,
		selector:   deps.Selector,
		aggregator: deps.Aggregator,
		renderer:   flightRenderer{describer: deps.Describer},
		clock:      deps.Clock,
		log:        deps.Logger,
	}
	if p.extractor == nil {
		p.extractor = NewModelTripExtractor(deps.Model, WithLogger(deps.Logger))
	}
	if p.selector == nil {
		p.selector = NewFewestSegmentsSelector()
	}
	if p.aggregator == nil {
		p.aggregator = NewDailyForecastAggregator()
	}
	if p.clock == nil {
		p.clock = timeutil.NewRealClock()
	}
	return p
}

func (p *pipelinePlanner) PlanTrip(ctx context.Context, text string) (*domain.TripPlan, error) {
	log := logger.FromContext(ctx, p.log)
	now := p.clock.Now()

	// 1. Extract
	trip, err := p.extractor.Extract(ctx, text, now.Year(), now.Month())
	if err != nil {
		return nil, p.fail(log, "extract", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2. Validate city flags
	if err := validateCities(trip); err != nil {
		return nil, p.fail(log, "validate", err)
	}

	// 3. Parse and validate dates
	dates, err := parseTripDates(trip, now)
	if err != nil {
		return nil, p.fail(log, "dates", err)
	}

	// 4. Resolve codes
	origin, err := p.resolveCode(ctx, domain.SideOrigin, trip.Origin)
	if err != nil {
		return nil, p.fail(log, "resolve", err)
	}
	destination, err := p.resolveCode(ctx, domain.SideDestination, trip.Destination)
	if err != nil {
		return nil, p.fail(log, "resolve", err)
	}
	log.Debug().Str("origin_code", origin).Str("destination_code", destination).Msg("Airport codes resolved")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 5. Search flights
	query := domain.NewFlightQuery(origin, destination, dates.Start, dates.End)
	if err := query.Validate(); err != nil {
		return nil, p.fail(log, "search", err)
	}
	offers, err := p.flights.SearchFlights(ctx, query)
	if err != nil {
		return nil, p.fail(log, "search", classifyProviderError(ctx, "flight search", err))
	}
	if len(offers) == 0 {
		return nil, p.fail(log, "search", fmt.Errorf("%w: %s to %s between %s and %s",
			domain.ErrNoFlightsFound, origin, destination, query.DepartureDate, query.ReturnDate))
	}
	log.Debug().Int("offers", len(offers)).Msg("Flight offers received")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 6. Select itinerary
	selected, err := p.selector.SelectBest(offers)
	if err != nil {
		if errors.Is(err, domain.ErrNoOffers) {
			err = fmt.Errorf("%w: %w", domain.ErrNoFlightsFound, err)
		}
		return nil, p.fail(log, "select", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 7. Fetch and aggregate weather
	location := trip.Destination.WeatherLocation()
	entries, err := p.weather.Forecast(ctx, location)
	if err != nil {
		return nil, p.fail(log, "weather", classifyProviderError(ctx, "weather forecast", err))
	}
	summaries := p.aggregator.Aggregate(entries, dates.Start, dates.End)
	log.Debug().Str("location", location).Int("entries", len(entries)).Int("days", len(summaries)).Msg("Weather aggregated")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 8. Assemble
	flights := p.renderer.Render(ctx, selected)
	weather := lo.Map(summaries, func(s domain.DailySummary, _ int) string {
		return s.String()
	})

	log.Info().
		Str("origin", origin).
		Str("destination", destination).
		Int("departure_legs", len(flights.Departure)).
		Int("return_legs", len(flights.Return)).
		Msg("Trip planned")

	return domain.NewTripPlan(trip.Description, flights.Departure, flights.Return, weather), nil
}

// resolveCode uses the place's own code, then the nearest airport's code, then
// asks the resolver for the nearest airport name (or the place name).
func (p *pipelinePlanner) resolveCode(ctx context.Context, side string, place domain.Place) (string, error) {
	if code := domain.NormalizeAirportCode(place.Code); code != "" {
		return code, nil
	}
	if code := domain.NormalizeAirportCode(place.Nearest.Code); code != "" {
		return code, nil
	}

	name := place.WeatherLocation()
	if name == "" {
		return "", domain.WrapResolutionFailed(side, name, nil)
	}
	code, err := p.resolver.ResolveCode(ctx, name)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if domain.IsProviderFailure(err) && !domain.IsResolution(err) {
			return "", fmt.Errorf("resolve %s %q: %w", side, name, err)
		}
		return "", domain.WrapResolutionFailed(side, name, err)
	}
	if normalized := domain.NormalizeAirportCode(code); normalized != "" {
		return normalized, nil
	}
	return "", domain.WrapResolutionFailed(side, name, nil)
}

func (p *pipelinePlanner) fail(log zerolog.Logger, stage string, err error) error {
	log.Warn().Err(err).Str("stage", stage).Msg("Trip planning failed")
	return err
}

// validateCities rejects trips whose origin or destination is not a city, destination first.
func validateCities(trip *domain.ExtractedTrip) error {
	if !trip.Destination.IsCity {
		return domain.NewNotACityError(domain.SideDestination, trip.Destination.Name)
	}
	if !trip.Origin.IsCity {
		return domain.NewNotACityError(domain.SideOrigin, trip.Origin.Name)
	}
	return nil
}

// parseTripDates parses both dates and checks they are strictly after now and ordered.
func parseTripDates(trip *domain.ExtractedTrip, now time.Time) (domain.TripDates, error) {
	var dates domain.TripDates

	start, err := timeutil.ParseDate(trip.StartDate)
	if err != nil {
		return dates, domain.WrapInvalidDate("start_date %q is not in YYYY-MM-DD format", trip.StartDate)
	}
	end, err := timeutil.ParseDate(trip.EndDate)
	if err != nil {
		return dates, domain.WrapInvalidDate("end_date %q is not in YYYY-MM-DD format", trip.EndDate)
	}

	if !start.After(now) || !end.After(now) {
		return dates, domain.WrapInvalidDate("travel dates must be in the future")
	}
	if start.After(end) {
		return dates, domain.WrapInvalidDate("start date %s must not be after end date %s", trip.StartDate, trip.EndDate)
	}

	dates.Start, dates.End = start, end
	return dates, nil
}

// classifyProviderError wraps unclassified collaborator failures as provider failures.
func classifyProviderError(ctx context.Context, what string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if domain.IsClassified(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrProviderFailure, what, err)
}
