package suggester

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/calebmoores/content-dashboard/internal/usecase/suggest"
)

// Config holds the shared configuration for the API-backed providers.
type Config struct {
	// Model is the provider-specific model identifier. Empty selects the
	// provider's default.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single suggestion API call.
	Timeout time.Duration
}

// LoadConfig loads provider configuration from environment variables.
//
// Environment variables:
//   - SUGGESTER_MODEL: model identifier (default: provider-specific)
//   - SUGGESTER_MAX_TOKENS: response token cap (default: 1024, range 1-8192)
func LoadConfig() Config {
	const (
		defaultMaxTokens = 1024
		maxMaxTokens     = 8192
	)

	maxTokens := defaultMaxTokens
	if raw := os.Getenv("SUGGESTER_MAX_TOKENS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxMaxTokens {
			slog.Warn("invalid SUGGESTER_MAX_TOKENS, using default",
				slog.String("value", raw),
				slog.Int("default", defaultMaxTokens))
		} else {
			maxTokens = parsed
		}
	}

	return Config{
		Model:     os.Getenv("SUGGESTER_MODEL"),
		MaxTokens: maxTokens,
		Timeout:   60 * time.Second,
	}
}

// NewFromEnv selects a provider from environment configuration.
//
// SUGGESTER_PROVIDER chooses the backend: "claude", "openai" or "noop"
// (default). The claude and openai providers require ANTHROPIC_API_KEY or
// OPENAI_API_KEY respectively; a missing key falls back to NoOp with a
// warning rather than failing startup, so the dashboard stays usable
// without any AI configuration.
func NewFromEnv(logger *slog.Logger) suggest.Provider {
	provider := os.Getenv("SUGGESTER_PROVIDER")
	switch provider {
	case "claude":
		if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
			return NewClaude(key)
		}
		logger.Warn("SUGGESTER_PROVIDER=claude but ANTHROPIC_API_KEY is not set, using noop provider")
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return NewOpenAI(key)
		}
		logger.Warn("SUGGESTER_PROVIDER=openai but OPENAI_API_KEY is not set, using noop provider")
	case "", "noop":
	default:
		logger.Warn("unknown SUGGESTER_PROVIDER, using noop provider",
			slog.String("value", provider))
	}
	return NewNoOp()
}
