package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrent_MultiplePlanRequests tests that concurrent requests through one
// planner are handled independently.
func TestConcurrent_MultiplePlanRequests(t *testing.T) {
	f := NewFixture(t)
	f.Flights = f.Flights.WithDelay(10 * time.Millisecond)
	ts := f.Server(t)

	const numRequests = 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.PlanRequest(fmt.Sprintf("Paris to Tel Aviv, traveler %d", idx))
		}(i)
	}
	wg.Wait()

	ids := make(map[string]bool, numRequests)
	for i, resp := range results {
		require.Equal(t, http.StatusOK, resp.Code, "request %d should succeed", i)

		plan, err := resp.ParsePlan()
		require.NoError(t, err)
		assert.Len(t, plan.TripPlan.Flights.Departure, 1, "request %d", i)
		assert.Len(t, plan.TripPlan.WeatherForecast, 8, "request %d", i)

		ids[resp.Headers.Get("X-Request-ID")] = true
	}

	assert.Len(t, ids, numRequests, "every request gets its own id")
	assert.Equal(t, numRequests, f.Model.CallCount())
	assert.Equal(t, numRequests, f.Flights.CallCount())
}
