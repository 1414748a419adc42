// Package openweather adapts the OpenWeather 5 day / 3 hour forecast API to domain.WeatherForecaster.
package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/trip-planner-service/internal/adapter/provider/providerhttp"
	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
)

// ProviderName identifies OpenWeather in errors and logs.
const ProviderName = "openweather"

// DefaultBaseURL is the public OpenWeather API.
const DefaultBaseURL = "https://api.openweathermap.org"

const forecastPath = "/data/2.5/forecast"

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("openweather api key is not configured")

// Config holds the OpenWeather connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Adapter implements domain.WeatherForecaster.
type Adapter struct {
	apiKey  string
	baseURL string
	http    *providerhttp.Client
	log     zerolog.Logger
}

// NewAdapter creates an OpenWeather adapter.
func NewAdapter(cfg Config, log zerolog.Logger) *Adapter {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Adapter{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    providerhttp.NewClient(ProviderName, cfg.HTTPClient, cfg.Timeout),
		log:     logger.WithProvider(log, ProviderName),
	}
}

// forecastResponse is the payload of the forecast endpoint.
type forecastResponse struct {
	List []struct {
		Dt    int64  `json:"dt"`
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Forecast returns the 3-hourly forecast series for location in metric units.
func (a *Adapter) Forecast(ctx context.Context, location string) ([]domain.ForecastEntry, error) {
	if a.apiKey == "" {
		return nil, domain.NewProviderError(ProviderName, ErrMissingAPIKey)
	}

	query := url.Values{
		"q":     {strings.TrimSpace(location)},
		"appid": {a.apiKey},
		"units": {"metric"},
	}

	var resp forecastResponse
	if err := a.http.GetJSON(ctx, a.baseURL+forecastPath+"?"+query.Encode(), &resp); err != nil {
		return nil, err
	}

	entries := make([]domain.ForecastEntry, 0, len(resp.List))
	for _, item := range resp.List {
		ts, ok := entryTime(item.DtTxt, item.Dt)
		if !ok {
			continue
		}
		condition := ""
		if len(item.Weather) > 0 {
			condition = item.Weather[0].Description
		}
		entries = append(entries, domain.ForecastEntry{
			Timestamp:          ts,
			Condition:          condition,
			TemperatureCelsius: item.Main.Temp,
		})
	}

	a.log.Debug().Str("location", location).Int("entries", len(entries)).Msg("Forecast fetched")
	return entries, nil
}

// entryTime prefers dt_txt ("2006-01-02 15:04:05", UTC) and falls back to the unix dt.
func entryTime(dtTxt string, dt int64) (time.Time, bool) {
	if dtTxt != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", dtTxt, time.UTC); err == nil {
			return t, true
		}
	}
	if dt > 0 {
		return time.Unix(dt, 0).UTC(), true
	}
	return time.Time{}, false
}

var _ domain.WeatherForecaster = (*Adapter)(nil)
