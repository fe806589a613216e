// Package backend abstracts LLM completion providers behind a uniform
// interface and a named registry, so the review engine never depends on a
// specific vendor API.
package backend

import (
	"context"

	"github.com/openimpact/impacteval/internal/model"
)

// Response format hints. Providers that cannot honor a hint ignore it.
const (
	FormatText = ""            // Free text, parsed by the review engine
	FormatJSON = "json_object" // Provider-native structured response
)

// CompleteOptions are per-call completion parameters
type CompleteOptions struct {
	// Model overrides the backend's default model when non-empty
	Model string

	// Temperature for sampling
	Temperature float64

	// MaxTokens limits the response length; 0 means backend default
	MaxTokens int

	// ResponseFormat is an optional structured-output hint
	ResponseFormat string
}

// Backend is an LLM provider that can produce completions.
//
// Complete is a plain blocking call: no retries, no backoff. Callers
// wanting reliability engineering wrap it outside this core.
type Backend interface {
	// Name returns the registered provider name
	Name() string

	// Complete returns the assistant's text response for the messages
	Complete(ctx context.Context, messages []model.Message, opts CompleteOptions) (string, error)
}
