package driven

import "context"

// GenerateOptions configures a single LLM generation call.
type GenerateOptions struct {
	// MaxTokens limits the response length (0 = provider default).
	MaxTokens int

	// Temperature controls randomness (0 = deterministic).
	Temperature float64
}

// LLMService is a black-box text generator used for profile
// normalisation and quiz generation. Replies requested as JSON are
// best-effort only; call sites parse defensively and substitute fixed
// fallback values on failure.
type LLMService interface {
	// Generate produces a completion for the prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the configured model identifier.
	ModelName() string

	// Close releases resources.
	Close() error
}
