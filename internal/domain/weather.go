package domain

import (
	"fmt"
	"time"
)

// ForecastEntry is one timestamped reading from a provider's multi-day forecast.
type ForecastEntry struct {
	Timestamp          time.Time `json:"timestamp"`
	Condition          string    `json:"condition"`
	TemperatureCelsius float64   `json:"temperatureCelsius"`
}

// DailySummary collapses all forecast entries of one calendar day.
type DailySummary struct {
	// DateLabel is the ordinal-formatted day, e.g. "December 25th"
	DateLabel string `json:"dateLabel"`

	// DominantCondition is the most frequent condition of the day
	DominantCondition string `json:"dominantCondition"`

	// AverageTemperatureCelsius is rounded to 2 decimals
	AverageTemperatureCelsius float64 `json:"averageTemperatureCelsius"`
}

// String renders the summary as "December 25th: clear sky, 6.00 °C".
func (d DailySummary) String() string {
	return fmt.Sprintf("%s: %s, %.2f °C", d.DateLabel, d.DominantCondition, d.AverageTemperatureCelsius)
}
