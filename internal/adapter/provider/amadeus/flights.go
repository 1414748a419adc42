package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// SearchFlights queries round-trip flight offers for query.
func (c *Client) SearchFlights(ctx context.Context, query domain.FlightQuery) ([]domain.FlightOffer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	params := url.Values{
		"originLocationCode":      {query.Origin},
		"destinationLocationCode": {query.Destination},
		"departureDate":           {query.DepartureDate},
		"returnDate":              {query.ReturnDate},
		"adults":                  {strconv.Itoa(query.Adults)},
	}

	var resp flightOffersResponse
	if err := c.http.GetJSON(ctx, c.endpoint(offersPath, params), &resp); err != nil {
		return nil, err
	}

	offers := normalize(resp.Data)
	c.log.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Int("raw_offers", len(resp.Data)).
		Int("offers", len(offers)).
		Msg("Flight offers fetched")
	return offers, nil
}

// normalize converts Amadeus offers to domain offers.
// Offers with a segment that cannot be parsed are skipped whole so that
// itinerary positions keep their direction.
func normalize(raw []flightOffer) []domain.FlightOffer {
	result := make([]domain.FlightOffer, 0, len(raw))
	for _, o := range raw {
		offer, err := normalizeOffer(o)
		if err != nil {
			continue
		}
		result = append(result, offer)
	}
	return result
}

func normalizeOffer(o flightOffer) (domain.FlightOffer, error) {
	itineraries := make([]domain.Itinerary, 0, len(o.Itineraries))
	for _, it := range o.Itineraries {
		var parseErr error
		segments := lo.Map(it.Segments, func(s segment, _ int) domain.FlightSegment {
			seg, err := normalizeSegment(s)
			if err != nil && parseErr == nil {
				parseErr = err
			}
			return seg
		})
		if parseErr != nil {
			return domain.FlightOffer{}, fmt.Errorf("offer %s: %w", o.ID, parseErr)
		}
		itineraries = append(itineraries, segments)
	}
	return domain.FlightOffer{Itineraries: itineraries}, nil
}

func normalizeSegment(s segment) (domain.FlightSegment, error) {
	departure, err := parseDateTime(s.Departure.At)
	if err != nil {
		return domain.FlightSegment{}, fmt.Errorf("failed to parse departure time: %w", err)
	}
	return domain.FlightSegment{
		CarrierCode:          s.CarrierCode,
		FlightNumber:         s.Number,
		DepartureAirportCode: s.Departure.IATACode,
		ArrivalAirportCode:   s.Arrival.IATACode,
		DepartureTime:        departure,
	}, nil
}

// parseDateTime parses Amadeus local times ("2006-01-02T15:04:05"), with RFC3339 as fallback.
func parseDateTime(dateTime string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05", dateTime); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, dateTime); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime %q", dateTime)
}
