package usecase

import (
	"strconv"
	"time"
)

// FormatOrdinalDate renders t as month name plus ordinal day, e.g. "December 21st".
func FormatOrdinalDate(t time.Time) string {
	day := t.Day()
	return t.Month().String() + " " + strconv.Itoa(day) + ordinalSuffix(day)
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
