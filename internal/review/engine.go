package review

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/openimpact/impacteval/internal/backend"
	"github.com/openimpact/impacteval/internal/model"
	"github.com/openimpact/impacteval/internal/prompt"
)

// Engine drives a single review round trip: render the prompt, call the
// backend, parse the response into dimension scores.
type Engine struct {
	backend     backend.Backend
	model       string
	temperature float64
	maxTokens   int
}

// NewEngine builds an engine on an existing backend
func NewEngine(b backend.Backend, cfg model.BackendConfig) *Engine {
	return &Engine{
		backend:     b,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// FromConfig builds an engine by instantiating the configured backend
func FromConfig(cfg *model.Config) (*Engine, error) {
	b, err := backend.Create(cfg.Backend.Type, cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}
	return NewEngine(b, cfg.Backend), nil
}

// Review renders spec against the artifact, completes it, and parses the
// response. A response with neither dimensions nor an overall score is
// not an error; it yields a zero result and a warning on stderr.
func (e *Engine) Review(ctx context.Context, artifact model.ArtifactPayload, spec model.PromptSpec, knowledgeContext string) (model.ReviewResult, error) {
	vars := map[string]any{
		"artifact":          artifact.ArtifactText,
		"initiative_id":     artifact.InitiativeID,
		"model_type":        artifact.ModelType,
		"sample_size":       artifact.SampleSize,
		"knowledge_context": knowledgeContext,
	}
	for k, v := range artifact.Metadata {
		if _, exists := vars[k]; !exists {
			vars[k] = v
		}
	}

	messages := prompt.Render(spec, vars)

	response, err := e.backend.Complete(ctx, messages, backend.CompleteOptions{
		Model:       e.model,
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		return model.ReviewResult{}, fmt.Errorf("review %s: %w", artifact.InitiativeID, err)
	}

	dims := ParseDimensions(response)
	overall := ParseOverall(response, dims)
	if overall == 0 && len(dims) == 0 {
		fmt.Fprintf(os.Stderr, "warning: review of %s produced no parseable scores\n", artifact.InitiativeID)
	}

	return model.ReviewResult{
		InitiativeID:  artifact.InitiativeID,
		PromptName:    spec.Name,
		PromptVersion: spec.Version,
		BackendName:   e.backend.Name(),
		Model:         e.model,
		Dimensions:    dims,
		OverallScore:  overall,
		RawResponse:   response,
		Timestamp:     time.Now().UTC(),
	}, nil
}
