package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTestData(t *testing.T) {
	data := LoadTestData(t, "extracted_trip_fenced.txt")
	require.NotEmpty(t, data)
	assert.Contains(t, string(data), `"start_date": "2030-12-21"`)
}

func TestLoadModelReply(t *testing.T) {
	reply := LoadModelReply(t, "extracted_trip_fenced.txt")
	assert.True(t, strings.HasPrefix(reply, "```"))
}

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{"valid RFC3339", "2030-12-15T08:00:00Z"},
		{"valid RFC3339 with timezone", "2030-12-15T08:00:00+02:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, MustParseTime(t, tt.dateStr).IsZero())
		})
	}
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{"valid date", "2030-12-15", 2030, time.December, 15},
		{"january date", "2031-01-01", 2031, time.January, 1},
		{"leap year date", "2032-02-29", 2032, time.February, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
			assert.Equal(t, time.UTC, result.Location())
		})
	}
}

func TestFixedClock(t *testing.T) {
	clock := FixedClock(t, "2030-12-01T09:30:00Z")

	assert.Equal(t, time.Date(2030, 12, 1, 9, 30, 0, 0, time.UTC), clock.Now())
	clock.AdvanceDays(1)
	assert.Equal(t, 2, clock.Now().Day())
}
