package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/retry"
)

const validTripJSON = `{
	"destination": {"name": "Tel Aviv", "city": true, "code": "TLV", "nearest": {"name": "Tel Aviv", "code": "TLV"}},
	"origin": {"name": "Paris", "city": true, "code": null, "nearest": {"name": "Paris", "code": "cdg"}},
	"start_date": "2030-12-21",
	"end_date": "2030-12-28",
	"description": "Here is your trip plan to Tel Aviv from December 21st to December 28th."
}`

func fastRetry() Option {
	return WithRetryConfig(retry.FixedConfig(3, time.Millisecond))
}

func TestModelTripExtractor_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := domain.NewMockLanguageModel(ctrl)

	model.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Paris to Tel Aviv next Christmas")
			assert.Contains(t, prompt, "2030")
			return validTripJSON, nil
		})

	trip, err := NewModelTripExtractor(model, fastRetry()).
		Extract(context.Background(), "Paris to Tel Aviv next Christmas", 2030, time.December)

	require.NoError(t, err)
	assert.Equal(t, "Tel Aviv", trip.Destination.Name)
	assert.Equal(t, "TLV", trip.Destination.Code)
	assert.Equal(t, "", trip.Origin.Code)
	assert.Equal(t, "CDG", trip.Origin.Nearest.Code, "codes are upper-cased")
	assert.Equal(t, "2030-12-21", trip.StartDate)
}

func TestModelTripExtractor_StripsCodeFence(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := domain.NewMockLanguageModel(ctrl)
	model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("```json\n"+validTripJSON+"\n```", nil)

	trip, err := NewModelTripExtractor(model, fastRetry()).Extract(context.Background(), "trip", 2030, time.January)

	require.NoError(t, err)
	assert.Equal(t, "Paris", trip.Origin.Name)
}

func TestModelTripExtractor_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := domain.NewMockLanguageModel(ctrl)

	gomock.InOrder(
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited")),
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("not json", nil),
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(validTripJSON, nil),
	)

	trip, err := NewModelTripExtractor(model, fastRetry()).Extract(context.Background(), "trip", 2030, time.January)

	require.NoError(t, err)
	assert.Equal(t, "Tel Aviv", trip.Destination.Name)
}

func TestModelTripExtractor_ExhaustedRetriesFailLoudly(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := domain.NewMockLanguageModel(ctrl)
	lastErr := errors.New("third failure")

	gomock.InOrder(
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("first failure")),
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("second failure")),
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", lastErr),
	)

	trip, err := NewModelTripExtractor(model, fastRetry()).Extract(context.Background(), "trip", 2030, time.January)

	assert.Nil(t, trip)
	assert.True(t, domain.IsExtraction(err))
	assert.ErrorIs(t, err, lastErr)
}

func TestModelTripExtractor_UnparseableContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := domain.NewMockLanguageModel(ctrl)
	model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Sure! Here is your trip.", nil).Times(3)

	_, err := NewModelTripExtractor(model, fastRetry()).Extract(context.Background(), "trip", 2030, time.January)

	assert.True(t, domain.IsExtraction(err))
	assert.False(t, domain.IsValidation(err))
}

func TestModelTripExtractor_CancelledDuringRetryWait(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := domain.NewMockLanguageModel(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	model.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string) (string, error) {
			cancel()
			return "", errors.New("timeout")
		})

	_, err := NewModelTripExtractor(model, WithRetryConfig(retry.FixedConfig(3, time.Minute))).
		Extract(ctx, "trip", 2030, time.January)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestModelTripExtractor_Validation(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSide string
		check    func(error) bool
	}{
		{
			name:     "destination not a city",
			content:  `{"destination": {"name": "Mars", "city": false}, "origin": {"name": "Paris", "city": false}}`,
			wantSide: domain.SideDestination,
			check:    domain.IsNotACity,
		},
		{
			name:     "origin not a city",
			content:  `{"destination": {"name": "Rome", "city": true}, "origin": {"name": "Atlantis", "city": false}}`,
			wantSide: domain.SideOrigin,
			check:    domain.IsNotACity,
		},
		{
			name: "missing description",
			content: `{
				"destination": {"name": "Rome", "city": true, "nearest": {"name": "Rome", "code": "FCO"}},
				"origin": {"name": "Paris", "city": true, "nearest": {"name": "Paris", "code": "CDG"}},
				"start_date": "2030-11-01", "end_date": "2030-11-10"
			}`,
			check: func(err error) bool { return errors.Is(err, domain.ErrMalformedResponse) },
		},
		{
			name: "missing nearest airport",
			content: `{
				"destination": {"name": "Rome", "city": true},
				"origin": {"name": "Paris", "city": true, "nearest": {"name": "Paris", "code": "CDG"}},
				"start_date": "2030-11-01", "end_date": "2030-11-10", "description": "Rome"
			}`,
			check: func(err error) bool { return errors.Is(err, domain.ErrMalformedResponse) },
		},
		{
			name: "missing dates",
			content: `{
				"destination": {"name": "Rome", "city": true, "nearest": {"name": "Rome", "code": "FCO"}},
				"origin": {"name": "Paris", "city": true, "nearest": {"name": "Paris", "code": "CDG"}},
				"description": "Rome"
			}`,
			check: func(err error) bool { return errors.Is(err, domain.ErrMalformedResponse) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			model := domain.NewMockLanguageModel(ctrl)
			// Validation failures are not retried.
			model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(tt.content, nil).Times(1)

			_, err := NewModelTripExtractor(model, fastRetry()).Extract(context.Background(), "trip", 2030, time.January)

			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.True(t, tt.check(err))
			if tt.wantSide != "" {
				var notACity *domain.NotACityError
				require.ErrorAs(t, err, &notACity)
				assert.Equal(t, tt.wantSide, notACity.Side)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain json", input: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", input: "  \n```json\n{\"a\":1}\n```\n ", want: `{"a":1}`},
		{name: "unterminated fence", input: "```json\n{\"a\":1}", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.input))
		})
	}
}

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt("  Rome in November  ", 2031, time.March)

	assert.Contains(t, prompt, "use 2031")
	assert.Contains(t, prompt, "use 3")
	assert.Contains(t, prompt, "CONTEXT:\nRome in November\n")
	assert.Contains(t, prompt, `"start_date"`)
	assert.Contains(t, prompt, `"nearest"`)
}
