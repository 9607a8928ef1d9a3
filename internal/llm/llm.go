package llm

import (
	"context"
	"errors"
)

// Client completes a single text prompt against an LLM provider.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Provider is implemented by clients that report which backend they call.
type Provider interface {
	Provider() string
}

const (
	// DefaultMaxTokens caps the length of a generated resume.
	DefaultMaxTokens = 2000
	// DefaultTemperature keeps resume wording varied without drifting.
	DefaultTemperature = 0.7
)

var (
	// ErrNotConfigured is returned when no provider credentials are available.
	ErrNotConfigured = errors.New("llm provider not configured")
	// ErrEmptyCompletion is returned when the provider answered without text.
	ErrEmptyCompletion = errors.New("llm response empty content")
)

// ProviderName returns the provider label of c, or "unknown".
func ProviderName(c Client) string {
	if p, ok := c.(Provider); ok {
		return p.Provider()
	}
	return "unknown"
}
