package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar format exchanged with the language model and the flight provider.
const DateLayout = "2006-01-02"

// FlightQuery defines the parameters for a round-trip flight search.
type FlightQuery struct {
	// Origin is the IATA code of the departure airport or city (e.g., "CDG")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport or city (e.g., "TLV")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Adults is the number of travelers (always 1, multi-traveler search is out of scope)
	Adults int `json:"adults"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// IsAirportCode reports whether code looks like an IATA airport or city code.
func IsAirportCode(code string) bool {
	return airportCodeRegex.MatchString(code)
}

// NormalizeAirportCode upper-cases and trims code. It returns "" when the result
// is not a three-letter code.
func NormalizeAirportCode(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if !IsAirportCode(normalized) {
		return ""
	}
	return normalized
}

// NewFlightQuery builds a single-traveler round-trip query.
func NewFlightQuery(origin, destination string, start, end time.Time) FlightQuery {
	return FlightQuery{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: start.Format(DateLayout),
		ReturnDate:    end.Format(DateLayout),
		Adults:        1,
	}
}

// Validate checks if the flight query is well formed.
// Returns a wrapped ErrValidationFailed error if validation fails.
func (q *FlightQuery) Validate() error {
	if !IsAirportCode(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrValidationFailed, q.Origin)
	}
	if !IsAirportCode(q.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrValidationFailed, q.Destination)
	}

	departure, err := time.Parse(DateLayout, q.DepartureDate)
	if err != nil {
		return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrValidationFailed, q.DepartureDate)
	}
	ret, err := time.Parse(DateLayout, q.ReturnDate)
	if err != nil {
		return fmt.Errorf("%w: returnDate is not a valid date: %s", ErrValidationFailed, q.ReturnDate)
	}
	if departure.After(ret) {
		return fmt.Errorf("%w: departureDate must not be after returnDate", ErrValidationFailed)
	}

	if q.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrValidationFailed)
	}
	return nil
}
