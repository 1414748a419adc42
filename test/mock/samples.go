package mock

import (
	"fmt"
	"time"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// TripJSON renders a model reply for a Paris to Tel Aviv trip between start and end (YYYY-MM-DD).
func TripJSON(start, end string) string {
	return fmt.Sprintf(`{
  "destination": {"name": "Tel Aviv", "city": true, "code": "", "nearest": {"name": "Ben Gurion Airport", "code": "TLV"}},
  "origin": {"name": "Paris", "city": true, "code": "", "nearest": {"name": "Charles de Gaulle Airport", "code": ""}},
  "start_date": %q,
  "end_date": %q,
  "description": "A week in Tel Aviv"
}`, start, end)
}

// DefaultAirports returns reference data for the sample trip.
func DefaultAirports() *Airports {
	return NewAirports().
		WithLocation("Charles de Gaulle Airport", Location{Code: "CDG", City: "PARIS", Country: "France"}).
		WithLocation("Ben Gurion Airport", Location{Code: "TLV", City: "TEL AVIV", Country: "Israel"}).
		WithLocation("Istanbul Airport", Location{Code: "IST", City: "ISTANBUL", Country: "Turkey"})
}

// SampleOffers returns two offers for the sample trip: a one-stop offer first and a
// direct offer second, so the selector must pick the later one.
func SampleOffers(start, end time.Time) []domain.FlightOffer {
	at := func(day time.Time, hour int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
	}
	return []domain.FlightOffer{
		{Itineraries: []domain.Itinerary{
			{
				{CarrierCode: "TK", FlightNumber: "1822", DepartureAirportCode: "CDG", ArrivalAirportCode: "IST", DepartureTime: at(start, 7)},
				{CarrierCode: "TK", FlightNumber: "784", DepartureAirportCode: "IST", ArrivalAirportCode: "TLV", DepartureTime: at(start, 13)},
			},
			{
				{CarrierCode: "TK", FlightNumber: "785", DepartureAirportCode: "TLV", ArrivalAirportCode: "IST", DepartureTime: at(end, 9)},
				{CarrierCode: "TK", FlightNumber: "1823", DepartureAirportCode: "IST", ArrivalAirportCode: "CDG", DepartureTime: at(end, 15)},
			},
		}},
		{Itineraries: []domain.Itinerary{
			{{CarrierCode: "AF", FlightNumber: "962", DepartureAirportCode: "CDG", ArrivalAirportCode: "TLV", DepartureTime: at(start, 10)}},
			{{CarrierCode: "LY", FlightNumber: "325", DepartureAirportCode: "TLV", ArrivalAirportCode: "CDG", DepartureTime: at(end, 16)}},
		}},
	}
}

// SampleForecast returns a 3-hourly series from start covering days days,
// alternating "clear sky" and "light rain" with clear sky winning each day.
func SampleForecast(start time.Time, days int) []domain.ForecastEntry {
	var entries []domain.ForecastEntry
	base := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	for d := 0; d < days; d++ {
		for slot := 0; slot < 3; slot++ {
			condition := "clear sky"
			if slot == 1 {
				condition = "light rain"
			}
			entries = append(entries, domain.ForecastEntry{
				Timestamp:          base.AddDate(0, 0, d).Add(time.Duration(slot*3) * time.Hour),
				Condition:          condition,
				TemperatureCelsius: float64(10 + slot),
			})
		}
	}
	return entries
}
