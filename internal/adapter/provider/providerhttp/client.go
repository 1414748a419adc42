// Package providerhttp holds the outbound HTTP plumbing shared by the provider adapters:
// circuit breaking, status classification and JSON decoding.
package providerhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// maxBodyBytes bounds how much of a provider response is read.
const maxBodyBytes = 10 << 20

// StatusError reports a non-2xx provider response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Transient reports whether the status is worth retrying later.
func (e *StatusError) Transient() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// NewBreaker creates a circuit breaker for one provider.
// Client errors (4xx other than 429) do not count as failures.
func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		IsSuccessful: func(err error) bool {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return !statusErr.Transient()
			}
			return err == nil
		},
	})
}

// Client executes provider requests through a circuit breaker.
type Client struct {
	provider string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker
}

// NewClient creates a Client for provider. A nil httpClient uses a client with the given timeout.
func NewClient(provider string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		provider: provider,
		http:     httpClient,
		breaker:  NewBreaker(provider),
	}
}

// Provider returns the provider name used in errors.
func (c *Client) Provider() string {
	return c.provider
}

// Do executes req and returns the response body.
// Failures are returned as *domain.ProviderError; context errors are returned as is.
func (c *Client) Do(ctx context.Context, req *http.Request) ([]byte, error) {
	req = req.WithContext(ctx)

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 256)}
		}
		return body, nil
	})
	if err != nil {
		return nil, c.classify(ctx, err)
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, domain.NewProviderError(c.provider, errors.New("unexpected result type from circuit breaker"))
	}
	return body, nil
}

// GetJSON performs a GET request to url and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.NewProviderError(c.provider, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewProviderError(c.provider, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) classify(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		if statusErr.Transient() {
			return domain.NewRetryableProviderError(c.provider, statusErr)
		}
		return domain.NewProviderError(c.provider, statusErr)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return domain.NewRetryableProviderError(c.provider, fmt.Errorf("circuit breaker open: %w", err))
	default:
		return domain.NewRetryableProviderError(c.provider, err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// IsStatus reports whether err carries a provider response with the given status code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
