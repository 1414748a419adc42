package http

import "github.com/trip-planner/trip-planner-service/internal/domain"

// PlanTripResponse is the success body of the trip planning endpoints.
type PlanTripResponse struct {
	TripPlan TripPlanDTO `json:"trip_plan"`
}

// TripPlanDTO is the wire form of domain.TripPlan.
// @Description Trip plan with flights per direction and a daily weather summary
type TripPlanDTO struct {
	// Description is the model's summary of the trip
	Description string `json:"description" example:"A week in Tel Aviv over Christmas"`

	// Flights holds one rendered line per segment, keyed by direction
	Flights FlightsDTO `json:"flights"`

	// WeatherForecast holds one line per day within the travel window
	WeatherForecast []string `json:"weather_forecast" example:"December 25th: clear sky, 6.00 °C"`
}

// FlightsDTO keeps the capitalized direction keys of the public contract.
type FlightsDTO struct {
	Departure []string `json:"Departure" example:"Flight AF962 departing on December 21st from PARIS, France (CDG) to TEL AVIV, Israel (TLV)"`
	Return    []string `json:"Return"`
}

// ToPlanTripResponse converts a domain.TripPlan to its response body.
// Nil slices are rendered as empty arrays.
func ToPlanTripResponse(plan *domain.TripPlan) PlanTripResponse {
	if plan == nil {
		plan = domain.NewTripPlan("", nil, nil, nil)
	}
	return PlanTripResponse{
		TripPlan: TripPlanDTO{
			Description: plan.Description,
			Flights: FlightsDTO{
				Departure: nonNil(plan.Flights.Departure),
				Return:    nonNil(plan.Flights.Return),
			},
			WeatherForecast: nonNil(plan.WeatherForecast),
		},
	}
}

func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}
