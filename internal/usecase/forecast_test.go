package usecase

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

func entry(month time.Month, day, hour int, condition string, temp float64) domain.ForecastEntry {
	return domain.ForecastEntry{
		Timestamp:          time.Date(2030, month, day, hour, 0, 0, 0, time.UTC),
		Condition:          condition,
		TemperatureCelsius: temp,
	}
}

func day(month time.Month, d int) time.Time {
	return time.Date(2030, month, d, 0, 0, 0, 0, time.UTC)
}

func render(summaries []domain.DailySummary) []string {
	return lo.Map(summaries, func(s domain.DailySummary, _ int) string { return s.String() })
}

func TestDailyForecastAggregator_Example(t *testing.T) {
	entries := []domain.ForecastEntry{
		entry(time.December, 25, 12, "clear sky", 5.0),
		entry(time.December, 25, 15, "few clouds", 7.0),
		entry(time.December, 26, 12, "rain", 4.0),
	}

	got := NewDailyForecastAggregator().Aggregate(entries, day(time.December, 25), day(time.December, 26))

	assert.Equal(t, []string{
		"December 25th: clear sky, 6.00 °C",
		"December 26th: rain, 4.00 °C",
	}, render(got))
}

func TestDailyForecastAggregator(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.ForecastEntry
		start   time.Time
		end     time.Time
		want    []domain.DailySummary
	}{
		{
			name:    "no entries",
			entries: nil,
			start:   day(time.December, 25),
			end:     day(time.December, 26),
			want:    []domain.DailySummary{},
		},
		{
			name: "all entries outside range",
			entries: []domain.ForecastEntry{
				entry(time.December, 20, 12, "rain", 3),
				entry(time.December, 28, 0, "snow", -1),
			},
			start: day(time.December, 25),
			end:   day(time.December, 26),
			want:  []domain.DailySummary{},
		},
		{
			name: "end date includes the whole day",
			entries: []domain.ForecastEntry{
				entry(time.December, 26, 21, "mist", 2),
				entry(time.December, 27, 0, "rain", 3),
			},
			start: day(time.December, 25),
			end:   day(time.December, 26),
			want: []domain.DailySummary{
				{DateLabel: "December 26th", DominantCondition: "mist", AverageTemperatureCelsius: 2},
			},
		},
		{
			name: "most frequent condition wins",
			entries: []domain.ForecastEntry{
				entry(time.December, 25, 0, "rain", 1),
				entry(time.December, 25, 3, "clear sky", 2),
				entry(time.December, 25, 6, "clear sky", 3),
			},
			start: day(time.December, 25),
			end:   day(time.December, 25),
			want: []domain.DailySummary{
				{DateLabel: "December 25th", DominantCondition: "clear sky", AverageTemperatureCelsius: 2},
			},
		},
		{
			name: "tie goes to first occurrence",
			entries: []domain.ForecastEntry{
				entry(time.December, 25, 0, "rain", 1),
				entry(time.December, 25, 3, "snow", 1),
				entry(time.December, 25, 6, "snow", 1),
				entry(time.December, 25, 9, "rain", 1),
			},
			start: day(time.December, 25),
			end:   day(time.December, 25),
			want: []domain.DailySummary{
				{DateLabel: "December 25th", DominantCondition: "rain", AverageTemperatureCelsius: 1},
			},
		},
		{
			name: "average rounded to two decimals",
			entries: []domain.ForecastEntry{
				entry(time.December, 25, 0, "rain", 1),
				entry(time.December, 25, 3, "rain", 2),
				entry(time.December, 25, 6, "rain", 2),
			},
			start: day(time.December, 25),
			end:   day(time.December, 25),
			want: []domain.DailySummary{
				{DateLabel: "December 25th", DominantCondition: "rain", AverageTemperatureCelsius: 1.67},
			},
		},
		{
			name: "days keep first-seen order",
			entries: []domain.ForecastEntry{
				entry(time.December, 26, 0, "rain", 4),
				entry(time.December, 25, 0, "sun", 10),
				entry(time.December, 26, 3, "rain", 6),
			},
			start: day(time.December, 25),
			end:   day(time.December, 26),
			want: []domain.DailySummary{
				{DateLabel: "December 26th", DominantCondition: "rain", AverageTemperatureCelsius: 5},
				{DateLabel: "December 25th", DominantCondition: "sun", AverageTemperatureCelsius: 10},
			},
		},
	}

	agg := NewDailyForecastAggregator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := agg.Aggregate(tt.entries, tt.start, tt.end)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDailyForecastAggregator_AverageEqualsMean(t *testing.T) {
	temps := []float64{-3.5, 0, 4.25, 10.1, 7.7, 2}
	entries := make([]domain.ForecastEntry, 0, len(temps))
	for i, temp := range temps {
		entries = append(entries, entry(time.March, 3, i*3, "clouds", temp))
	}

	got := NewDailyForecastAggregator().Aggregate(entries, day(time.March, 3), day(time.March, 3))

	assert.Len(t, got, 1)
	assert.InDelta(t, lo.Sum(temps)/float64(len(temps)), got[0].AverageTemperatureCelsius, 0.01)
}
