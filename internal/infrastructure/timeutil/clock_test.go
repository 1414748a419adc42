package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2030, 12, 15, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixedTime)

	assert.Equal(t, fixedTime, clock.Now())
	assert.Equal(t, fixedTime, clock.Now())
}

func TestMockClock_SetAndAdvance(t *testing.T) {
	clock := NewMockClock(time.Date(2030, 12, 15, 10, 0, 0, 0, time.UTC))

	clock.Advance(30 * time.Minute)
	assert.Equal(t, time.Date(2030, 12, 15, 10, 30, 0, 0, time.UTC), clock.Now())

	clock.AdvanceDays(2)
	assert.Equal(t, time.Date(2030, 12, 17, 10, 30, 0, 0, time.UTC), clock.Now())

	newTime := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(newTime)
	assert.Equal(t, newTime, clock.Now())
}

func TestMockClock_ConcurrentAccess(t *testing.T) {
	clock := NewMockClock(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			clock.Advance(time.Second)
		}()
		go func() {
			defer wg.Done()
			_ = clock.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 50, 0, time.UTC), clock.Now())
}

func TestClockFunc(t *testing.T) {
	instant := time.Date(2030, 12, 1, 9, 0, 0, 0, time.UTC)
	var clock Clock = ClockFunc(func() time.Time { return instant })

	assert.Equal(t, instant, clock.Now())
}

func TestMockClock_AdvanceDaysKeepsWallTime(t *testing.T) {
	clock := NewMockClock(time.Date(2030, 12, 31, 23, 15, 0, 0, time.UTC))

	clock.AdvanceDays(1)
	assert.Equal(t, time.Date(2031, 1, 1, 23, 15, 0, 0, time.UTC), clock.Now())
}
