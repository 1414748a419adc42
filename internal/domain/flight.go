// Package domain contains the core business entities and rules for the trip planner.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import "time"

// Direction names used for the two legs of a round trip.
const (
	DirectionDeparture = "Departure"
	DirectionReturn    = "Return"
)

// FlightSegment is a single non-stop leg, sourced verbatim from the flight provider.
type FlightSegment struct {
	// CarrierCode is the IATA airline code (e.g., "AF")
	CarrierCode string `json:"carrierCode"`

	// FlightNumber is the carrier's flight number without the carrier prefix (e.g., "962")
	FlightNumber string `json:"flightNumber"`

	// DepartureAirportCode is the IATA code of the departure airport
	DepartureAirportCode string `json:"departureAirportCode"`

	// ArrivalAirportCode is the IATA code of the arrival airport
	ArrivalAirportCode string `json:"arrivalAirportCode"`

	// DepartureTime is the scheduled local departure time
	DepartureTime time.Time `json:"departureTime"`
}

// Designator returns the flight designator, e.g. "AF962".
func (s FlightSegment) Designator() string {
	return s.CarrierCode + s.FlightNumber
}

// Itinerary is the ordered sequence of segments for one direction of a trip.
type Itinerary []FlightSegment

// Len returns the number of legs in the itinerary.
func (it Itinerary) Len() int {
	return len(it)
}

// FlightOffer is one candidate round trip returned by the flight provider.
// By convention Itineraries[0] is the departure and Itineraries[1], when present, the return.
type FlightOffer struct {
	Itineraries []Itinerary `json:"itineraries"`
}

// SelectedTrip is the chosen itinerary per direction.
// Return is nil when no offer carried a return itinerary.
type SelectedTrip struct {
	Departure Itinerary `json:"departure"`
	Return    Itinerary `json:"return,omitempty"`
}

// HasReturn reports whether a return itinerary was selected.
func (s SelectedTrip) HasReturn() bool {
	return len(s.Return) > 0
}
