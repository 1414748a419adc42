package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/retry"
	"github.com/trip-planner/trip-planner-service/internal/usecase"
	"github.com/trip-planner/trip-planner-service/test/mock"
)

func TestPipeline_RetriesExtractionUntilValidJSON(t *testing.T) {
	f := NewFixture(t)
	f.Model = mock.NewLanguageModel(
		mock.Reply{Err: ProviderDown("openai")},
		mock.Reply{Content: "not json"},
		mock.Reply{Content: mock.TripJSON(StartDate, EndDate)},
	)

	plan, err := f.Planner(t).PlanTrip(context.Background(), "Paris to Tel Aviv")

	require.NoError(t, err)
	assert.Equal(t, "A week in Tel Aviv", plan.Description)
	assert.Equal(t, 3, f.Model.CallCount())
}

func TestPipeline_ExtractionExhaustsRetries(t *testing.T) {
	f := NewFixture(t)
	f.Model = mock.NewLanguageModel(mock.Reply{Content: "{broken"})

	_, err := f.Planner(t).PlanTrip(context.Background(), "Paris to Tel Aviv")

	require.Error(t, err)
	assert.True(t, domain.IsExtraction(err))
	assert.Equal(t, 3, f.Model.CallCount())
	assert.Zero(t, f.Flights.CallCount(), "no later stage may run")
}

func TestPipeline_NotACityIsNotRetried(t *testing.T) {
	f := NewFixture(t)
	f.Model = mock.NewLanguageModel(mock.Reply{Content: `{
		"destination": {"name": "Israel", "city": false, "nearest": {"name": "Ben Gurion Airport", "code": "TLV"}},
		"origin": {"name": "Paris", "city": true, "nearest": {"name": "Charles de Gaulle Airport", "code": "CDG"}},
		"start_date": "2030-12-21", "end_date": "2030-12-28", "description": "x"
	}`})

	_, err := f.Planner(t).PlanTrip(context.Background(), "Paris to Israel")

	var notCity *domain.NotACityError
	require.ErrorAs(t, err, &notCity)
	assert.Equal(t, domain.SideDestination, notCity.Side)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, 1, f.Model.CallCount())
}

func TestPipeline_PromptCarriesReferenceMonth(t *testing.T) {
	f := NewFixture(t)

	_, err := f.Planner(t).PlanTrip(context.Background(), "Paris to Tel Aviv next month")

	require.NoError(t, err)
	prompt := f.Model.LastPrompt()
	assert.Contains(t, prompt, "2030")
	assert.Contains(t, prompt, "Paris to Tel Aviv next month")
}

func TestPipeline_ResolverOutageIsProviderFailure(t *testing.T) {
	f := NewFixture(t)
	f.Airports = mock.DefaultAirports().WithResolveError(ProviderDown("amadeus"))

	_, err := f.Planner(t).PlanTrip(context.Background(), "Paris to Tel Aviv")

	require.Error(t, err)
	assert.True(t, domain.IsProviderFailure(err))
	assert.False(t, domain.IsResolution(err))
}

func TestPipeline_OneWayOffersRenderEmptyReturn(t *testing.T) {
	f := NewFixture(t)
	offers := mock.SampleOffers(time.Date(2030, 12, 21, 0, 0, 0, 0, time.UTC), time.Date(2030, 12, 28, 0, 0, 0, 0, time.UTC))
	for i := range offers {
		offers[i].Itineraries = offers[i].Itineraries[:1]
	}
	f.Flights = mock.NewFlightSearcher().WithOffers(offers)

	plan, err := f.Planner(t).PlanTrip(context.Background(), "Paris to Tel Aviv")

	require.NoError(t, err)
	assert.Len(t, plan.Flights.Departure, 1)
	assert.NotNil(t, plan.Flights.Return)
	assert.Empty(t, plan.Flights.Return)
}

func TestPipeline_CancelledContext(t *testing.T) {
	f := NewFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Planner(t).PlanTrip(ctx, "Paris to Tel Aviv")

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, f.Flights.CallCount())
}

func TestModelPlanner_EndToEnd(t *testing.T) {
	model := mock.NewLanguageModel(mock.Reply{Content: "```json\n" + `{"trip_plan": {
		"description": "Three days in Rome",
		"flights": {"Departure": ["Flight AZ317 departing on May 3rd from CDG to FCO"], "Return": []},
		"weather_forecast": ["May 3rd: sunny, 21.00 °C"]
	}}` + "\n```"})
	planner := usecase.NewModelPlanner(model, usecase.WithRetryConfig(retry.FixedConfig(2, time.Millisecond)))
	ts := NewTestServer(planner, time.Second)

	resp := ts.PlanRequest("Rome for a long weekend")

	require.Equal(t, 200, resp.Code, string(resp.Body))
	plan, err := resp.ParsePlan()
	require.NoError(t, err)
	assert.Equal(t, "Three days in Rome", plan.TripPlan.Description)
	assert.Equal(t, []string{"Flight AZ317 departing on May 3rd from CDG to FCO"}, plan.TripPlan.Flights.Departure)
	assert.Equal(t, []string{}, plan.TripPlan.Flights.Return)
}
