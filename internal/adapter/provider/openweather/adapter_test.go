package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
)

const forecastBody = `{
	"cod": "200",
	"list": [
		{"dt": 1924416000, "dt_txt": "2030-12-25 12:00:00", "main": {"temp": 5.0}, "weather": [{"main": "Clear", "description": "clear sky"}]},
		{"dt": 1924426800, "dt_txt": "", "main": {"temp": 7.0}, "weather": [{"main": "Clouds", "description": "few clouds"}]},
		{"dt": 0, "dt_txt": "garbage", "main": {"temp": 1.0}, "weather": []}
	]
}`

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAdapter(Config{APIKey: "weather-key", BaseURL: server.URL, Timeout: 2 * time.Second}, logger.Nop())
}

func TestAdapter_Forecast(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, forecastPath, r.URL.Path)
		assert.Equal(t, "Tel Aviv", r.URL.Query().Get("q"))
		assert.Equal(t, "weather-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		_, _ = w.Write([]byte(forecastBody))
	})

	entries, err := adapter.Forecast(context.Background(), "Tel Aviv")

	require.NoError(t, err)
	require.Len(t, entries, 2, "entries without a usable timestamp are skipped")
	assert.Equal(t, domain.ForecastEntry{
		Timestamp:          time.Date(2030, 12, 25, 12, 0, 0, 0, time.UTC),
		Condition:          "clear sky",
		TemperatureCelsius: 5.0,
	}, entries[0])
	assert.Equal(t, time.Unix(1924426800, 0).UTC(), entries[1].Timestamp)
	assert.Equal(t, "few clouds", entries[1].Condition)
}

func TestAdapter_Forecast_CityNotFound(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	_, err := adapter.Forecast(context.Background(), "Atlantis")

	var pe *domain.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ProviderName, pe.Provider)
	assert.Contains(t, err.Error(), "city not found")
}

func TestAdapter_Forecast_MissingAPIKey(t *testing.T) {
	adapter := NewAdapter(Config{}, logger.Nop())

	_, err := adapter.Forecast(context.Background(), "Rome")

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.True(t, domain.IsProviderFailure(err))
}
