package suggester

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/calebmoores/content-dashboard/internal/resilience/circuitbreaker"
	"github.com/calebmoores/content-dashboard/internal/resilience/retry"
	"github.com/calebmoores/content-dashboard/internal/usecase/suggest"
)

// Claude implements the suggestion provider using Anthropic's Claude API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client         anthropic.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         Config
}

// NewClaude creates a new Claude suggestion provider with the given API key.
func NewClaude(apiKey string) *Claude {
	config := LoadConfig()
	if config.Model == "" {
		config.Model = string(anthropic.ModelClaudeSonnet4_5_20250929)
	}

	slog.Info("initialized claude suggester",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens))

	return &Claude{
		client:         anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker: circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:    retry.AIAPIConfig(),
		config:         config,
	}
}

// Suggest generates an editorial suggestion using Claude.
func (c *Claude) Suggest(ctx context.Context, action suggest.Action, text string) (*suggest.Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var reply string
	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doSuggest(ctx, action, text)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}
		reply = cbResult.(string)
		return nil
	})
	if retryErr != nil {
		return nil, fmt.Errorf("claude suggest failed after retries: %w", retryErr)
	}

	return parseSuggestion(action, reply), nil
}

// doSuggest performs the actual API call without retry or circuit breaker.
func (c *Claude) doSuggest(ctx context.Context, action suggest.Action, inputText string) (string, error) {
	requestID := uuid.New().String()
	prompt := buildPrompt(action, inputText)

	slog.InfoContext(ctx, "calling claude api",
		slog.String("request_id", requestID),
		slog.String("action", string(action)))

	start := time.Now()
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "claude api call failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("claude api returned empty response")
	}
	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	slog.InfoContext(ctx, "claude api call completed",
		slog.String("request_id", requestID),
		slog.Duration("duration", duration))

	return textBlock.Text, nil
}

// Close implements the Provider interface. The SDK client holds no
// long-lived resources.
func (c *Claude) Close() error { return nil }
