package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/retry"
)

// TripExtractor turns free text into structured trip parameters.
type TripExtractor interface {
	// Extract asks for the trip parameters in text. refYear and refMonth fill in
	// dates that omit them.
	Extract(ctx context.Context, text string, refYear int, refMonth time.Month) (*domain.ExtractedTrip, error)
}

// modelSettings are shared by the components that call the language model.
type modelSettings struct {
	retry retry.Config
	log   zerolog.Logger
}

func newModelSettings(opts []Option) modelSettings {
	s := modelSettings{retry: retry.ExtractionConfig, log: logger.Nop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures the model-backed extractor and planner.
type Option func(*modelSettings)

// WithRetryConfig overrides the retry policy around the model call.
func WithRetryConfig(cfg retry.Config) Option {
	return func(s *modelSettings) {
		s.retry = cfg
	}
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(l zerolog.Logger) Option {
	return func(s *modelSettings) {
		s.log = l
	}
}

type modelTripExtractor struct {
	model domain.LanguageModel
	modelSettings
}

// NewModelTripExtractor creates a TripExtractor backed by a language model.
// The call and decode are retried with retry.ExtractionConfig unless overridden.
func NewModelTripExtractor(model domain.LanguageModel, opts ...Option) TripExtractor {
	return &modelTripExtractor{
		model:         model,
		modelSettings: newModelSettings(opts),
	}
}

func (e *modelTripExtractor) Extract(ctx context.Context, text string, refYear int, refMonth time.Month) (*domain.ExtractedTrip, error) {
	log := logger.FromContext(ctx, e.log)
	prompt := BuildExtractionPrompt(text, refYear, refMonth)

	cfg := e.retry.WithOnRetry(func(attempt int, err error) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("delay", e.retry.InitialDelay).Msg("Trip extraction failed, retrying")
	})

	trip, err := retry.DoWithResult(ctx, func() (*domain.ExtractedTrip, error) {
		content, err := e.model.Complete(ctx, prompt)
		if err != nil {
			return nil, err
		}
		var t domain.ExtractedTrip
		if err := json.Unmarshal([]byte(StripCodeFence(content)), &t); err != nil {
			return nil, fmt.Errorf("decode model output: %w", err)
		}
		return &t, nil
	}, cfg)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}

	normalizeTrip(trip)
	if err := validateExtractedTrip(trip); err != nil {
		log.Warn().Err(err).Msg("Extracted trip rejected")
		return nil, err
	}

	log.Debug().
		Str("origin", trip.Origin.Name).
		Str("destination", trip.Destination.Name).
		Str("start_date", trip.StartDate).
		Str("end_date", trip.EndDate).
		Msg("Trip extracted")
	return trip, nil
}

// StripCodeFence removes a surrounding ``` block (with optional language tag).
func StripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// normalizeTrip trims names and drops codes that are not three letters.
func normalizeTrip(t *domain.ExtractedTrip) {
	for _, p := range []*domain.Place{&t.Destination, &t.Origin} {
		p.Name = strings.TrimSpace(p.Name)
		p.Code = domain.NormalizeAirportCode(p.Code)
		p.Nearest.Name = strings.TrimSpace(p.Nearest.Name)
		p.Nearest.Code = domain.NormalizeAirportCode(p.Nearest.Code)
	}
	t.StartDate = strings.TrimSpace(t.StartDate)
	t.EndDate = strings.TrimSpace(t.EndDate)
	t.Description = strings.TrimSpace(t.Description)
}

// validateExtractedTrip checks city flags (destination first), then required fields.
func validateExtractedTrip(t *domain.ExtractedTrip) error {
	if !t.Destination.IsCity {
		return domain.NewNotACityError(domain.SideDestination, t.Destination.Name)
	}
	if !t.Origin.IsCity {
		return domain.NewNotACityError(domain.SideOrigin, t.Origin.Name)
	}

	var missing []string
	for _, side := range []struct {
		name  string
		place domain.Place
	}{
		{domain.SideDestination, t.Destination},
		{domain.SideOrigin, t.Origin},
	} {
		if side.place.Name == "" {
			missing = append(missing, side.name+".name")
		}
		if side.place.Nearest.Name == "" && side.place.Nearest.Code == "" {
			missing = append(missing, side.name+".nearest")
		}
	}
	if t.StartDate == "" {
		missing = append(missing, "start_date")
	}
	if t.EndDate == "" {
		missing = append(missing, "end_date")
	}
	if t.Description == "" {
		missing = append(missing, "description")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", domain.ErrMalformedResponse, strings.Join(missing, ", "))
	}
	return nil
}

const extractionPromptTemplate = `Read the trip request in CONTEXT and do the following:
1. Identify the destination, the origin, the start date and the end date.
2. Write both dates as YYYY-MM-DD. When the year is missing use %d; when the month is missing use %d.
3. Decide whether the origin and the destination are real cities (true or false).
4. Give the IATA code of each place, or null when there is none.
5. Give the nearest city with an airport as "nearest", with its name and IATA code.
6. Write a one-sentence summary such as "Here is your trip plan to Rome from November 1st to November 10th."

CONTEXT:
%s

Answer with JSON only, exactly in this shape:
{
  "destination": {"name": string, "city": boolean, "code": string or null, "nearest": {"name": string, "code": string}},
  "origin": {"name": string, "city": boolean, "code": string or null, "nearest": {"name": string, "code": string}},
  "start_date": string,
  "end_date": string,
  "description": string
}`

// BuildExtractionPrompt renders the extraction instruction for text.
func BuildExtractionPrompt(text string, refYear int, refMonth time.Month) string {
	return fmt.Sprintf(extractionPromptTemplate, refYear, int(refMonth), strings.TrimSpace(text))
}
