// Package openai adapts the OpenAI chat completions API to domain.LanguageModel.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// ProviderName identifies the language model provider in errors and logs.
const ProviderName = "openai"

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// ErrEmptyCompletion is returned when the model answers without any choice.
var ErrEmptyCompletion = errors.New("completion has no choices")

// Config holds the OpenAI connection settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Adapter implements domain.LanguageModel with a single user message per prompt.
type Adapter struct {
	client openaisdk.Client
	model  string
}

// NewAdapter creates an Adapter. Retries are left to the caller.
func NewAdapter(cfg Config) *Adapter {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	} else if cfg.Timeout > 0 {
		opts = append(opts, option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Adapter{
		client: openaisdk.NewClient(opts...),
		model:  model,
	}
}

// Complete sends prompt as a user message and returns the trimmed content of the first choice.
func (a *Adapter) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := a.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		var apiErr *openaisdk.Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500) {
			return "", domain.NewRetryableProviderError(ProviderName, err)
		}
		return "", domain.NewProviderError(ProviderName, err)
	}

	if len(completion.Choices) == 0 {
		return "", domain.NewProviderError(ProviderName, ErrEmptyCompletion)
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// Model returns the configured chat model.
func (a *Adapter) Model() string {
	return a.model
}

var _ domain.LanguageModel = (*Adapter)(nil)

// String describes the adapter for logs.
func (a *Adapter) String() string {
	return fmt.Sprintf("%s(%s)", ProviderName, a.model)
}
