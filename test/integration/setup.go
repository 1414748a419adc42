// Package integration provides helpers and integration tests for the trip planner.
// Integration tests drive the real HTTP layer, middleware and pipeline planner
// against the configurable fakes in test/mock.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/trip-planner/trip-planner-service/internal/adapter/http"
	"github.com/trip-planner/trip-planner-service/internal/adapter/http/middleware"
	"github.com/trip-planner/trip-planner-service/internal/adapter/http/response"
	"github.com/trip-planner/trip-planner-service/internal/adapter/provider/providerhttp"
	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/retry"
	"github.com/trip-planner/trip-planner-service/internal/usecase"
	"github.com/trip-planner/trip-planner-service/test/mock"
	"github.com/trip-planner/trip-planner-service/test/testutil"
)

// Trip window used throughout the suite. The clock is frozen before it.
const (
	Now       = "2030-12-01T09:00:00Z"
	StartDate = "2030-12-21"
	EndDate   = "2030-12-28"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer creates a test server with the production middleware chain.
func NewTestServer(planner usecase.TripPlanner, requestTimeout time.Duration) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	log := logger.Nop()
	middleware.Setup(e, log)
	e.Use(middleware.Deadline(requestTimeout))
	httpAdapter.RegisterRoutes(e, httpAdapter.NewTripHandler(planner, log))

	return &TestServer{Echo: e}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(method, path string, body interface{}) Response {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// PlanRequest posts a trip description to the versioned endpoint.
func (ts *TestServer) PlanRequest(input string) Response {
	return ts.Do(http.MethodPost, "/api/v1/trips/plan", map[string]string{"user_input": input})
}

// ParsePlan parses the response body as a PlanTripResponse.
func (r *Response) ParsePlan() (*httpAdapter.PlanTripResponse, error) {
	var resp httpAdapter.PlanTripResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an ErrorDetail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Fixture bundles the fakes behind one pipeline planner.
type Fixture struct {
	Model    *mock.LanguageModel
	Airports *mock.Airports
	Flights  *mock.FlightSearcher
	Weather  *mock.WeatherForecaster
}

// NewFixture returns fakes that plan the sample Paris to Tel Aviv trip successfully.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	start := testutil.MustParseDate(t, StartDate)
	end := testutil.MustParseDate(t, EndDate)

	return &Fixture{
		Model:    mock.NewLanguageModel(mock.Reply{Content: mock.TripJSON(StartDate, EndDate)}),
		Airports: mock.DefaultAirports(),
		Flights:  mock.NewFlightSearcher().WithOffers(mock.SampleOffers(start, end)),
		Weather:  mock.NewWeatherForecaster().WithEntries(mock.SampleForecast(start.AddDate(0, 0, -2), 14)),
	}
}

// Planner builds the pipeline planner over the fixture with a frozen clock and
// a retry policy without delays.
func (f *Fixture) Planner(t *testing.T) usecase.TripPlanner {
	t.Helper()
	return usecase.NewPipelinePlanner(usecase.Dependencies{
		Model:     f.Model,
		Resolver:  f.Airports,
		Describer: f.Airports,
		Flights:   f.Flights,
		Weather:   f.Weather,
		Extractor: usecase.NewModelTripExtractor(f.Model, usecase.WithRetryConfig(retry.FixedConfig(3, time.Millisecond))),
		Clock:     testutil.FixedClock(t, Now),
		Logger:    logger.Nop(),
	})
}

// Server builds a TestServer over the fixture's planner.
func (f *Fixture) Server(t *testing.T) *TestServer {
	t.Helper()
	return NewTestServer(f.Planner(t), 5*time.Second)
}

// ProviderDown returns a provider error the way the HTTP adapters report outages.
func ProviderDown(provider string) error {
	return domain.NewRetryableProviderError(provider, &providerhttp.StatusError{StatusCode: http.StatusServiceUnavailable})
}
