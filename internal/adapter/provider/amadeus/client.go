// Package amadeus adapts the Amadeus Self-Service APIs to the planner's code
// resolution, location lookup and flight search ports.
package amadeus

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/trip-planner/trip-planner-service/internal/adapter/provider/providerhttp"
	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
)

// ProviderName identifies Amadeus in errors and logs.
const ProviderName = "amadeus"

// DefaultBaseURL is the Amadeus test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

const (
	tokenPath     = "/v1/security/oauth2/token"
	locationsPath = "/v1/reference-data/locations"
	citiesPath    = "/v1/reference-data/locations/cities"
	offersPath    = "/v2/shopping/flight-offers"
)

// Config holds the Amadeus connection settings.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	Timeout      time.Duration

	// HTTPClient is the base transport used for token and API calls, mainly for tests.
	HTTPClient *http.Client
}

// Client implements domain.CodeResolver, domain.LocationDescriber and domain.FlightSearcher.
type Client struct {
	baseURL string
	http    *providerhttp.Client
	log     zerolog.Logger
}

// NewClient creates an Amadeus client. Access tokens are obtained with the OAuth2
// client-credentials grant and refreshed automatically.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: cfg.Timeout}
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	authed := cc.Client(tokenCtx)
	authed.Timeout = base.Timeout

	return &Client{
		baseURL: baseURL,
		http:    providerhttp.NewClient(ProviderName, authed, cfg.Timeout),
		log:     logger.WithProvider(log, ProviderName),
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	return c.baseURL + path + "?" + query.Encode()
}

var (
	_ domain.CodeResolver      = (*Client)(nil)
	_ domain.LocationDescriber = (*Client)(nil)
	_ domain.FlightSearcher    = (*Client)(nil)
)
