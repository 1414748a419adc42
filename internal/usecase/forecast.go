package usecase

import (
	"math"
	"time"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/timeutil"
)

// ForecastAggregator collapses a forecast series into daily summaries.
type ForecastAggregator interface {
	// Aggregate keeps entries within [start, end] (end inclusive to the end of its day)
	// and returns one summary per day in first-seen order.
	Aggregate(entries []domain.ForecastEntry, start, end time.Time) []domain.DailySummary
}

type dailyForecastAggregator struct{}

// NewDailyForecastAggregator returns the default ForecastAggregator.
func NewDailyForecastAggregator() ForecastAggregator {
	return dailyForecastAggregator{}
}

// dayBucket accumulates the entries of one calendar day.
type dayBucket struct {
	label      string
	conditions []string
	counts     map[string]int
	sum        float64
	n          int
}

func (dailyForecastAggregator) Aggregate(entries []domain.ForecastEntry, start, end time.Time) []domain.DailySummary {
	order := make([]string, 0)
	buckets := make(map[string]*dayBucket)

	for _, e := range entries {
		if !timeutil.WithinDays(e.Timestamp, start, end) {
			continue
		}

		key := timeutil.FormatDate(e.Timestamp)
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{label: FormatOrdinalDate(e.Timestamp), counts: make(map[string]int)}
			buckets[key] = b
			order = append(order, key)
		}

		if b.counts[e.Condition] == 0 {
			b.conditions = append(b.conditions, e.Condition)
		}
		b.counts[e.Condition]++
		b.sum += e.TemperatureCelsius
		b.n++
	}

	summaries := make([]domain.DailySummary, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		summaries = append(summaries, domain.DailySummary{
			DateLabel:                 b.label,
			DominantCondition:         b.dominant(),
			AverageTemperatureCelsius: round2(b.sum / float64(b.n)),
		})
	}
	return summaries
}

// dominant returns the most frequent condition; ties go to the first seen.
func (b *dayBucket) dominant() string {
	best, bestCount := "", 0
	for _, c := range b.conditions {
		if b.counts[c] > bestCount {
			best, bestCount = c, b.counts[c]
		}
	}
	return best
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
