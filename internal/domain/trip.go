package domain

import "time"

// NearestAirport is the airport the language model considers closest to a place.
type NearestAirport struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Place is one side (origin or destination) of an extracted trip.
type Place struct {
	// Name is the place name as understood from the user's text (e.g., "Paris")
	Name string `json:"name"`

	// IsCity reports whether the language model recognized the place as a city
	IsCity bool `json:"city"`

	// Code is the optional IATA code supplied by the model, "" when absent
	Code string `json:"code,omitempty"`

	// Nearest is the nearest airport to the place
	Nearest NearestAirport `json:"nearest"`
}

// WeatherLocation returns the name used for forecast lookups.
func (p Place) WeatherLocation() string {
	if p.Nearest.Name != "" {
		return p.Nearest.Name
	}
	return p.Name
}

// ExtractedTrip holds the structured trip parameters extracted from free text.
// Dates are kept in DateLayout form until the planner parses and validates them.
type ExtractedTrip struct {
	Destination Place  `json:"destination"`
	Origin      Place  `json:"origin"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// TripDates is the validated travel window of an ExtractedTrip.
type TripDates struct {
	Start time.Time
	End   time.Time
}

// FlightDirections holds the rendered flight lines for each direction.
type FlightDirections struct {
	Departure []string `json:"Departure"`
	Return    []string `json:"Return"`
}

// TripPlan is the final response payload of a trip planning request.
type TripPlan struct {
	// Description is the short trip description produced during extraction
	Description string `json:"description"`

	// Flights contains one rendered line per selected segment
	Flights FlightDirections `json:"flights"`

	// WeatherForecast contains one rendered daily summary per day in range
	WeatherForecast []string `json:"weather_forecast"`
}

// NewTripPlan creates a TripPlan, replacing nil slices with empty ones so the
// payload always serializes arrays.
func NewTripPlan(description string, departure, ret, weather []string) *TripPlan {
	if departure == nil {
		departure = []string{}
	}
	if ret == nil {
		ret = []string{}
	}
	if weather == nil {
		weather = []string{}
	}
	return &TripPlan{
		Description: description,
		Flights: FlightDirections{
			Departure: departure,
			Return:    ret,
		},
		WeatherForecast: weather,
	}
}
