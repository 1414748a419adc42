package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// flightRenderer turns selected itineraries into human-readable lines.
type flightRenderer struct {
	describer domain.LocationDescriber
}

// Render returns one line per segment of each direction.
func (r flightRenderer) Render(ctx context.Context, trip domain.SelectedTrip) domain.FlightDirections {
	return domain.FlightDirections{
		Departure: r.renderItinerary(ctx, trip.Departure),
		Return:    r.renderItinerary(ctx, trip.Return),
	}
}

func (r flightRenderer) renderItinerary(ctx context.Context, it domain.Itinerary) []string {
	return lo.Map(it, func(seg domain.FlightSegment, _ int) string {
		return r.renderSegment(ctx, seg)
	})
}

func (r flightRenderer) renderSegment(ctx context.Context, seg domain.FlightSegment) string {
	return fmt.Sprintf("Flight %s departing on %s from %s to %s",
		seg.Designator(),
		FormatOrdinalDate(seg.DepartureTime),
		r.descriptor(ctx, seg.DepartureAirportCode),
		r.descriptor(ctx, seg.ArrivalAirportCode),
	)
}

// descriptor renders "{city}, {country} ({code})", or the bare code when the
// location is unknown.
func (r flightRenderer) descriptor(ctx context.Context, code string) string {
	if r.describer == nil {
		return code
	}
	city, country, ok := r.describer.Describe(ctx, code)
	if !ok || city == "" || country == "" {
		return code
	}
	return fmt.Sprintf("%s, %s (%s)", city, country, code)
}
