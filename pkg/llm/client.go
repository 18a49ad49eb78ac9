// Package llm wraps the completion provider behind a small client interface
// so review modules can be exercised against a mock in tests.
package llm

import "context"

// GenerationOptions are the knobs forwarded to the completion provider.
// Zero values fall back to the provider defaults.
type GenerationOptions struct {
	Model            string
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// Client is the completion provider contract. Implementations perform a single
// round trip and return the raw completion text.
type Client interface {
	GenerateCompletion(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

// Settings configure a concrete client implementation.
type Settings struct {
	APIKey  string
	BaseURL string
	Model   string // Default model when GenerationOptions.Model is empty
}
