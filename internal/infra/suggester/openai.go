package suggester

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/calebmoores/content-dashboard/internal/resilience/circuitbreaker"
	"github.com/calebmoores/content-dashboard/internal/resilience/retry"
	"github.com/calebmoores/content-dashboard/internal/usecase/suggest"
)

// OpenAI implements the suggestion provider using the OpenAI chat API.
// It includes circuit breaker and retry logic for improved reliability.
type OpenAI struct {
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         Config
}

// NewOpenAI creates a new OpenAI suggestion provider with the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	config := LoadConfig()
	if config.Model == "" {
		config.Model = openai.GPT4oMini
	}

	slog.Info("initialized openai suggester",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens))

	return &OpenAI{
		client:         openai.NewClient(apiKey),
		circuitBreaker: circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:    retry.AIAPIConfig(),
		config:         config,
	}
}

// Suggest generates an editorial suggestion using OpenAI.
func (o *OpenAI) Suggest(ctx context.Context, action suggest.Action, text string) (*suggest.Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var reply string
	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doSuggest(ctx, action, text)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}
		reply = cbResult.(string)
		return nil
	})
	if retryErr != nil {
		return nil, fmt.Errorf("openai suggest failed after retries: %w", retryErr)
	}

	return parseSuggestion(action, reply), nil
}

// doSuggest performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doSuggest(ctx context.Context, action suggest.Action, inputText string) (string, error) {
	requestID := uuid.New().String()
	prompt := buildPrompt(action, inputText)

	slog.InfoContext(ctx, "calling openai api",
		slog.String("request_id", requestID),
		slog.String("action", string(action)))

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "openai api call failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned empty response")
	}

	slog.InfoContext(ctx, "openai api call completed",
		slog.String("request_id", requestID),
		slog.Duration("duration", duration))

	return resp.Choices[0].Message.Content, nil
}

// Close implements the Provider interface. The SDK client holds no
// long-lived resources.
func (o *OpenAI) Close() error { return nil }
