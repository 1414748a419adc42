package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the trip planning failure classes.
var (
	// ErrExtractionFailed indicates the language model call exhausted its retries
	// or returned content that could not be decoded.
	ErrExtractionFailed = errors.New("trip extraction failed")

	// ErrValidationFailed indicates the extracted trip or the request is invalid.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotACity indicates the origin or destination is not a recognized city.
	ErrNotACity = fmt.Errorf("%w: not a city", ErrValidationFailed)

	// ErrMalformedResponse indicates required fields are missing from the extracted trip.
	ErrMalformedResponse = fmt.Errorf("%w: malformed response", ErrValidationFailed)

	// ErrInvalidDate indicates a date could not be parsed or violates the travel window rules.
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrValidationFailed)

	// ErrResolutionFailed indicates a place name could not be mapped to an airport code.
	ErrResolutionFailed = errors.New("airport code resolution failed")

	// ErrNoFlightsFound indicates the flight search returned no offers.
	ErrNoFlightsFound = errors.New("no flights found")

	// ErrProviderFailure indicates the flight or weather provider itself failed.
	ErrProviderFailure = errors.New("provider failure")

	// ErrNoOffers indicates the itinerary selector received no offers.
	ErrNoOffers = errors.New("no offers")
)

// Sides of a trip, used to name which place failed validation or resolution.
const (
	SideOrigin      = "origin"
	SideDestination = "destination"
)

// NotACityError reports which side of the trip was not recognized as a city.
type NotACityError struct {
	Side string
	Name string
}

// Error implements the error interface.
func (e *NotACityError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s is not a city", e.Side)
	}
	return fmt.Sprintf("%s %q is not a city", e.Side, e.Name)
}

// Unwrap lets errors.Is match ErrNotACity and ErrValidationFailed.
func (e *NotACityError) Unwrap() error {
	return ErrNotACity
}

// NewNotACityError creates a NotACityError for the given side.
func NewNotACityError(side, name string) *NotACityError {
	return &NotACityError{Side: side, Name: name}
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ProviderError represents an error from an external provider.
type ProviderError struct {
	// Provider is the name of the provider that failed
	Provider string

	// Err is the underlying error
	Err error

	// Retryable indicates whether the failure is transient
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports ErrProviderFailure as a match for every ProviderError.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderFailure
}

// NewProviderError creates a new non-retryable ProviderError.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Err:       err,
		Retryable: false,
	}
}

// NewRetryableProviderError creates a new ProviderError marked as retryable.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Err:       err,
		Retryable: true,
	}
}

// WrapResolutionFailed wraps a resolution failure for the given side.
func WrapResolutionFailed(side, name string, cause error) error {
	if cause == nil || errors.Is(cause, ErrResolutionFailed) {
		return fmt.Errorf("%w: no airport code for %s %q", ErrResolutionFailed, side, name)
	}
	return fmt.Errorf("%w: no airport code for %s %q: %w", ErrResolutionFailed, side, name, cause)
}

// WrapInvalidDate wraps a date rule violation.
func WrapInvalidDate(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidDate, fmt.Sprintf(format, args...))
}

// IsExtraction checks if the error is an extraction failure.
func IsExtraction(err error) bool {
	return errors.Is(err, ErrExtractionFailed)
}

// IsValidation checks if the error is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// IsNotACity checks if the error reports a place that is not a city.
func IsNotACity(err error) bool {
	return errors.Is(err, ErrNotACity)
}

// IsResolution checks if the error is a code resolution failure.
func IsResolution(err error) bool {
	return errors.Is(err, ErrResolutionFailed)
}

// IsNoFlightsFound checks if the error reports an empty flight search.
func IsNoFlightsFound(err error) bool {
	return errors.Is(err, ErrNoFlightsFound)
}

// IsProviderFailure checks if the error comes from a failing provider.
func IsProviderFailure(err error) bool {
	return errors.Is(err, ErrProviderFailure)
}

// IsClassified reports whether err already belongs to one of the trip planning failure classes.
func IsClassified(err error) bool {
	return IsExtraction(err) || IsValidation(err) || IsResolution(err) ||
		IsNoFlightsFound(err) || IsProviderFailure(err)
}
