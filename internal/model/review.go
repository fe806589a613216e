package model

import "time"

// Message roles understood by all backends.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message sent to an LLM backend
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ArtifactPayload is the reviewable unit: concatenated evidence text plus
// the identity fields the prompt templates interpolate.
type ArtifactPayload struct {
	InitiativeID string         `json:"initiative_id"`
	ArtifactText string         `json:"artifact_text"`
	ModelType    string         `json:"model_type,omitempty"`
	SampleSize   int            `json:"sample_size,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"` // Extra template variables, passed through verbatim
}

// PromptSpec is the metadata and template content of a review prompt.
// Dimensions declare what the parser expects from model output; they are
// advisory, not enforced at parse time.
type PromptSpec struct {
	Name           string   `yaml:"name" json:"name"`
	Version        string   `yaml:"version" json:"version"`
	Description    string   `yaml:"description" json:"description,omitempty"`
	Dimensions     []string `yaml:"dimensions" json:"dimensions,omitempty"`
	SystemTemplate string   `yaml:"system" json:"system_template,omitempty"`
	UserTemplate   string   `yaml:"user" json:"user_template,omitempty"`
}

// ReviewDimension is a single scored axis of an artifact review
type ReviewDimension struct {
	Name          string  `json:"name"`
	Score         float64 `json:"score"` // Clamped to [0,1]
	Justification string  `json:"justification"`
}

// ReviewResult is the complete outcome of one artifact review
type ReviewResult struct {
	InitiativeID  string            `json:"initiative_id"`
	PromptName    string            `json:"prompt_name"`
	PromptVersion string            `json:"prompt_version"`
	BackendName   string            `json:"backend_name"`
	Model         string            `json:"model"`
	Dimensions    []ReviewDimension `json:"dimensions"`
	OverallScore  float64           `json:"overall_score"`
	RawResponse   string            `json:"raw_response"` // Full untouched model output, retained for audit
	Timestamp     time.Time         `json:"timestamp"`
}
