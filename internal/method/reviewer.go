// Package method maps methodology names ("experiment",
// "quasi_experimental", ...) to reviewers that bundle a confidence range,
// an artifact loader, and default prompt/knowledge resources.
package method

import (
	"io/fs"

	"github.com/openimpact/impacteval/internal/model"
)

// Reviewer is a methodology-specific artifact reviewer
type Reviewer interface {
	// Name is the registry key, matching the manifest's model_type
	Name() string

	// Description is a human-readable summary of the methodology
	Description() string

	// ConfidenceRange is the a-priori credibility bounds of the methodology
	ConfidenceRange() model.ConfidenceRange

	// PromptName is the filename stem of the default prompt template
	PromptName() string

	// LoadArtifact reads the manifest-listed files into a reviewable payload
	LoadArtifact(m model.Manifest, jobDir string) (model.ArtifactPayload, error)

	// TemplateFS holds this reviewer's prompt templates; nil means none
	TemplateFS() fs.FS

	// KnowledgeFS holds this reviewer's knowledge files; nil means none
	KnowledgeFS() fs.FS
}

// reviewer is the common implementation backing the built-in methodologies.
// Artifact loading uses the default loader in artifact.go.
type reviewer struct {
	name        string
	promptName  string
	description string
	confRange   model.ConfidenceRange
	templates   fs.FS
	knowledge   fs.FS
}

func (r *reviewer) Name() string                           { return r.name }
func (r *reviewer) Description() string                    { return r.description }
func (r *reviewer) ConfidenceRange() model.ConfidenceRange { return r.confRange }
func (r *reviewer) PromptName() string                     { return r.promptName }
func (r *reviewer) TemplateFS() fs.FS                      { return r.templates }
func (r *reviewer) KnowledgeFS() fs.FS                     { return r.knowledge }

func (r *reviewer) LoadArtifact(m model.Manifest, jobDir string) (model.ArtifactPayload, error) {
	return LoadArtifact(m, jobDir)
}
