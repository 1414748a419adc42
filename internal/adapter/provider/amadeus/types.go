package amadeus

// locationsResponse is the payload of the reference-data locations endpoints.
type locationsResponse struct {
	Data []location `json:"data"`
}

type location struct {
	SubType  string  `json:"subType"`
	Name     string  `json:"name"`
	IATACode string  `json:"iataCode"`
	Address  address `json:"address"`
}

type address struct {
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
}

// flightOffersResponse is the payload of the flight offers search endpoint.
type flightOffersResponse struct {
	Data []flightOffer `json:"data"`
}

type flightOffer struct {
	ID          string      `json:"id"`
	Itineraries []itinerary `json:"itineraries"`
}

type itinerary struct {
	Duration string    `json:"duration"`
	Segments []segment `json:"segments"`
}

type segment struct {
	Departure   endpoint `json:"departure"`
	Arrival     endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
}

type endpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}
