package amadeus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/trip-planner/trip-planner-service/internal/adapter/provider/providerhttp"
	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// ResolveCode returns the IATA code of the first airport or city matching name.
func (c *Client) ResolveCode(ctx context.Context, name string) (string, error) {
	locations, err := c.searchLocations(ctx, name)
	if err != nil {
		if providerhttp.IsStatus(err, http.StatusNotFound) {
			return "", fmt.Errorf("%w: %q", domain.ErrResolutionFailed, name)
		}
		return "", err
	}

	for _, loc := range locations {
		if code := domain.NormalizeAirportCode(loc.IATACode); code != "" {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: IATA code for %q not found", domain.ErrResolutionFailed, name)
}

// Describe returns the city and country code of an airport or city code.
// It falls back to the cities endpoint and reports ok=false on any failure.
func (c *Client) Describe(ctx context.Context, code string) (string, string, bool) {
	locations, err := c.searchLocations(ctx, code)
	if err != nil {
		c.log.Debug().Err(err).Str("code", code).Msg("Location lookup failed")
		return "", "", false
	}

	if len(locations) == 0 {
		var resp locationsResponse
		if err := c.http.GetJSON(ctx, c.endpoint(citiesPath, url.Values{"keyword": {code}}), &resp); err != nil {
			c.log.Debug().Err(err).Str("code", code).Msg("City lookup failed")
			return "", "", false
		}
		locations = resp.Data
	}

	if len(locations) == 0 {
		return "", "", false
	}
	return describeLocation(locations[0])
}

func (c *Client) searchLocations(ctx context.Context, keyword string) ([]location, error) {
	query := url.Values{
		"keyword": {strings.TrimSpace(keyword)},
		"subType": {"AIRPORT,CITY"},
	}
	var resp locationsResponse
	if err := c.http.GetJSON(ctx, c.endpoint(locationsPath, query), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func describeLocation(loc location) (string, string, bool) {
	city := loc.Address.CityName
	if city == "" {
		city = loc.Name
	}
	country := loc.Address.CountryCode
	if city == "" || country == "" {
		return "", "", false
	}
	return city, country, true
}
