package usecase

import "github.com/trip-planner/trip-planner-service/internal/domain"

// ItinerarySelector picks one itinerary per direction from a set of offers.
type ItinerarySelector interface {
	SelectBest(offers []domain.FlightOffer) (domain.SelectedTrip, error)
}

type fewestSegmentsSelector struct{}

// NewFewestSegmentsSelector returns a selector that minimizes leg count per direction.
// On equal leg counts the first itinerary encountered wins.
func NewFewestSegmentsSelector() ItinerarySelector {
	return fewestSegmentsSelector{}
}

func (fewestSegmentsSelector) SelectBest(offers []domain.FlightOffer) (domain.SelectedTrip, error) {
	if len(offers) == 0 {
		return domain.SelectedTrip{}, domain.ErrNoOffers
	}

	var departure, ret domain.Itinerary
	var haveDeparture, haveReturn bool
	for _, offer := range offers {
		for i, it := range offer.Itineraries {
			switch i {
			case 0:
				if !haveDeparture || it.Len() < departure.Len() {
					departure, haveDeparture = it, true
				}
			case 1:
				if !haveReturn || it.Len() < ret.Len() {
					ret, haveReturn = it, true
				}
			}
		}
	}

	return domain.SelectedTrip{Departure: departure, Return: ret}, nil
}
