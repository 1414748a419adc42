// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/trip-planner/trip-planner-service/internal/infrastructure/timeutil"
)

// testdataDir resolves test/testdata from this file's location so helpers work
// from any package's working directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot resolve testutil source path")
	}
	return filepath.Join(filepath.Dir(currentFile), "..", "testdata")
}

// LoadTestData reads a fixture from test/testdata.
func LoadTestData(t *testing.T, filename string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(testdataDir(t), filename))
	if err != nil {
		t.Fatalf("load fixture %s: %v", filename, err)
	}
	return data
}

// LoadModelReply reads a recorded language model reply from test/testdata.
func LoadModelReply(t *testing.T, filename string) string {
	t.Helper()
	return string(LoadTestData(t, filename))
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format as UTC midnight.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseDate(dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// FixedClock returns a mock clock frozen at the given RFC3339 instant.
func FixedClock(t *testing.T, instant string) *timeutil.MockClock {
	t.Helper()
	return timeutil.NewMockClock(MustParseTime(t, instant))
}
