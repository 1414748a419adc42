package domain

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

import "context"

// LanguageModel completes a prompt with free text.
// Failures may be transient (timeouts, rate limits).
type LanguageModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CodeResolver maps a city or airport name to an IATA code.
// Returns an error wrapping ErrResolutionFailed when nothing matches.
type CodeResolver interface {
	ResolveCode(ctx context.Context, name string) (string, error)
}

// LocationDescriber looks up the city and country of an airport code.
// It never fails: ok is false when the code is unknown or the lookup errors.
type LocationDescriber interface {
	Describe(ctx context.Context, code string) (city, country string, ok bool)
}

// FlightSearcher searches round-trip flight offers.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, query FlightQuery) ([]FlightOffer, error)
}

// WeatherForecaster returns the provider's forecast series for a location.
// The caller filters the series to its own date range.
type WeatherForecaster interface {
	Forecast(ctx context.Context, location string) ([]ForecastEntry, error)
}
