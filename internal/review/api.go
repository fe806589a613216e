package review

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openimpact/impacteval/internal/job"
	"github.com/openimpact/impacteval/internal/knowledge"
	"github.com/openimpact/impacteval/internal/method"
	"github.com/openimpact/impacteval/internal/model"
	"github.com/openimpact/impacteval/internal/prompt"
)

// ResultFilename is written into the job directory by Review
const ResultFilename = "review_result.json"

// Compute runs a review for the job directory and returns the result
// without writing anything.
//
// The manifest's model_type selects the reviewer, which in turn selects
// the prompt and knowledge base. Per-method config entries override
// either selection by registry name.
func Compute(ctx context.Context, jobDir string, cfg *model.Config) (model.ReviewResult, error) {
	manifest, err := job.LoadManifest(jobDir)
	if err != nil {
		return model.ReviewResult{}, err
	}

	reviewer, err := method.Create(manifest.ModelType)
	if err != nil {
		return model.ReviewResult{}, err
	}

	artifact, err := reviewer.LoadArtifact(manifest, jobDir)
	if err != nil {
		return model.ReviewResult{}, fmt.Errorf("load artifact: %w", err)
	}

	overrides := cfg.Methods[manifest.ModelType]

	promptName := overrides.Prompt
	if promptName == "" {
		promptName = reviewer.PromptName()
	}
	spec, err := prompt.Load(promptName)
	if err != nil {
		return model.ReviewResult{}, fmt.Errorf("resolve prompt: %w", err)
	}

	// An explicit override must resolve; a reviewer without a registered
	// knowledge base just reviews without extra context.
	var knowledgeContext string
	if overrides.KnowledgeBase != "" {
		knowledgeContext, err = knowledge.LoadBase(overrides.KnowledgeBase)
		if err != nil {
			return model.ReviewResult{}, fmt.Errorf("resolve knowledge base: %w", err)
		}
	} else if knowledgeContext, err = knowledge.LoadBase(reviewer.Name()); err != nil {
		knowledgeContext = ""
	}

	engine, err := FromConfig(cfg)
	if err != nil {
		return model.ReviewResult{}, err
	}

	return engine.Review(ctx, artifact, spec, knowledgeContext)
}

// Review runs Compute and persists the result as review_result.json in
// the job directory.
func Review(ctx context.Context, jobDir string, cfg *model.Config) (model.ReviewResult, error) {
	result, err := Compute(ctx, jobDir, cfg)
	if err != nil {
		return model.ReviewResult{}, err
	}

	if err := WriteResult(jobDir, result); err != nil {
		return model.ReviewResult{}, err
	}
	return result, nil
}

// WriteResult persists a review result into the job directory
func WriteResult(jobDir string, result model.ReviewResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal review result: %w", err)
	}
	path := filepath.Join(jobDir, ResultFilename)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ResultFilename, err)
	}
	return nil
}
