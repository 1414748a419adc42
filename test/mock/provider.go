// Package mock provides test doubles for the trip planner collaborators.
// These fakes are designed for integration testing where we need
// configurable behavior (delays, errors, scripted responses).
package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// LanguageModel is a scripted domain.LanguageModel.
// Each call consumes the next reply; the last reply repeats once the script runs out.
type LanguageModel struct {
	replies   []Reply
	delay     time.Duration
	callCount int
	prompts   []string
	mu        sync.Mutex
}

// Reply is one scripted model answer.
type Reply struct {
	Content string
	Err     error
}

// NewLanguageModel creates a model that answers with the given replies in order.
func NewLanguageModel(replies ...Reply) *LanguageModel {
	return &LanguageModel{replies: replies}
}

// WithDelay configures the model to wait the given duration before answering.
func (m *LanguageModel) WithDelay(d time.Duration) *LanguageModel {
	m.delay = d
	return m
}

// Complete implements domain.LanguageModel.
func (m *LanguageModel) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	idx := m.callCount
	m.callCount++
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if err := wait(ctx, m.delay); err != nil {
		return "", err
	}

	if len(m.replies) == 0 {
		return "", fmt.Errorf("no scripted reply")
	}
	if idx >= len(m.replies) {
		idx = len(m.replies) - 1
	}
	r := m.replies[idx]
	return r.Content, r.Err
}

// CallCount returns the number of times Complete was called.
func (m *LanguageModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastPrompt returns the most recent prompt, or "" before the first call.
func (m *LanguageModel) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// Location is a reference data entry known to the fake Airports.
type Location struct {
	Code    string
	City    string
	Country string
}

// Airports is an in-memory domain.CodeResolver and domain.LocationDescriber.
type Airports struct {
	byName     map[string]Location
	byCode     map[string]Location
	resolveErr error
	resolved   []string
	mu         sync.Mutex
}

// NewAirports creates an empty reference data fake.
func NewAirports() *Airports {
	return &Airports{
		byName: make(map[string]Location),
		byCode: make(map[string]Location),
	}
}

// WithLocation registers loc under name (case-insensitive) and its code.
func (a *Airports) WithLocation(name string, loc Location) *Airports {
	a.byName[strings.ToLower(name)] = loc
	a.byCode[loc.Code] = loc
	return a
}

// WithResolveError makes every ResolveCode call fail with err.
func (a *Airports) WithResolveError(err error) *Airports {
	a.resolveErr = err
	return a
}

// ResolveCode implements domain.CodeResolver.
func (a *Airports) ResolveCode(ctx context.Context, name string) (string, error) {
	a.mu.Lock()
	a.resolved = append(a.resolved, name)
	a.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if a.resolveErr != nil {
		return "", a.resolveErr
	}
	loc, ok := a.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrResolutionFailed, name)
	}
	return loc.Code, nil
}

// Describe implements domain.LocationDescriber.
func (a *Airports) Describe(ctx context.Context, code string) (string, string, bool) {
	loc, ok := a.byCode[code]
	if !ok {
		return "", "", false
	}
	return loc.City, loc.Country, true
}

// Resolved returns the names passed to ResolveCode, in call order.
func (a *Airports) Resolved() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.resolved...)
}

// FlightSearcher is a configurable domain.FlightSearcher.
type FlightSearcher struct {
	offers    []domain.FlightOffer
	err       error
	delay     time.Duration
	queries   []domain.FlightQuery
	callCount int
	mu        sync.Mutex
}

// NewFlightSearcher creates a searcher that returns no offers until configured.
func NewFlightSearcher() *FlightSearcher {
	return &FlightSearcher{}
}

// WithOffers configures the searcher to return the given offers.
func (f *FlightSearcher) WithOffers(offers []domain.FlightOffer) *FlightSearcher {
	f.offers = offers
	return f
}

// WithError configures the searcher to return the given error.
func (f *FlightSearcher) WithError(err error) *FlightSearcher {
	f.err = err
	return f
}

// WithDelay configures the searcher to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (f *FlightSearcher) WithDelay(d time.Duration) *FlightSearcher {
	f.delay = d
	return f
}

// SearchFlights implements domain.FlightSearcher.
func (f *FlightSearcher) SearchFlights(ctx context.Context, query domain.FlightQuery) ([]domain.FlightOffer, error) {
	f.mu.Lock()
	f.callCount++
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if err := wait(ctx, f.delay); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.offers, nil
}

// CallCount returns the number of times SearchFlights was called.
func (f *FlightSearcher) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

// LastQuery returns the most recent query.
func (f *FlightSearcher) LastQuery() domain.FlightQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return domain.FlightQuery{}
	}
	return f.queries[len(f.queries)-1]
}

// WeatherForecaster is a configurable domain.WeatherForecaster.
type WeatherForecaster struct {
	entries   []domain.ForecastEntry
	err       error
	locations []string
	mu        sync.Mutex
}

// NewWeatherForecaster creates a forecaster with an empty series.
func NewWeatherForecaster() *WeatherForecaster {
	return &WeatherForecaster{}
}

// WithEntries configures the forecast series.
func (w *WeatherForecaster) WithEntries(entries []domain.ForecastEntry) *WeatherForecaster {
	w.entries = entries
	return w
}

// WithError configures the forecaster to return the given error.
func (w *WeatherForecaster) WithError(err error) *WeatherForecaster {
	w.err = err
	return w
}

// Forecast implements domain.WeatherForecaster.
func (w *WeatherForecaster) Forecast(ctx context.Context, location string) ([]domain.ForecastEntry, error) {
	w.mu.Lock()
	w.locations = append(w.locations, location)
	w.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w.err != nil {
		return nil, w.err
	}
	return w.entries, nil
}

// Locations returns the locations passed to Forecast, in call order.
func (w *WeatherForecaster) Locations() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.locations...)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Ensure the fakes implement the domain ports at compile time.
var (
	_ domain.LanguageModel     = (*LanguageModel)(nil)
	_ domain.CodeResolver      = (*Airports)(nil)
	_ domain.LocationDescriber = (*Airports)(nil)
	_ domain.FlightSearcher    = (*FlightSearcher)(nil)
	_ domain.WeatherForecaster = (*WeatherForecaster)(nil)
)
