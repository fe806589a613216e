// Package evaluate routes a job directory to its evaluation strategy and
// produces the final confidence result.
package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openimpact/impacteval/internal/job"
	"github.com/openimpact/impacteval/internal/method"
	"github.com/openimpact/impacteval/internal/model"
	"github.com/openimpact/impacteval/internal/review"
	"github.com/openimpact/impacteval/internal/score"
)

// Result filenames written into the job directory
const (
	ResultFilename      = "evaluate_result.json"
	ScoreResultFilename = "score_result.json"
)

// ErrUnknownStrategy indicates a manifest strategy outside score/review
var ErrUnknownStrategy = errors.New("unknown evaluate strategy")

// Options tune a single evaluation
type Options struct {
	// CostToScale overrides the cost-to-scale value from the job
	// directory artifacts when non-nil
	CostToScale *float64
}

// Route validates the manifest's dispatch axes and resolves the method
// reviewer. It fails before any file is written, so an invalid manifest
// never leaves partial results behind.
func Route(manifest model.Manifest) (string, method.Reviewer, error) {
	strategy := manifest.EvaluateStrategy
	if strategy != model.StrategyScore && strategy != model.StrategyReview {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	reviewer, err := method.Create(manifest.ModelType)
	if err != nil {
		return "", nil, err
	}
	return strategy, reviewer, nil
}

// EvaluateConfidence evaluates the confidence of a job directory.
//
// The manifest's evaluate_strategy selects between the deterministic
// score path and the LLM review path. Both write evaluate_result.json;
// the score path additionally writes score_result.json and the review
// path review_result.json. The manifest itself is never rewritten.
func EvaluateConfidence(ctx context.Context, cfg *model.Config, jobDir string, opts Options) (model.EvaluateResult, error) {
	manifest, err := job.LoadManifest(jobDir)
	if err != nil {
		return model.EvaluateResult{}, err
	}

	strategy, reviewer, err := Route(manifest)
	if err != nil {
		return model.EvaluateResult{}, err
	}

	var overrides *job.Overrides
	if opts.CostToScale != nil {
		overrides = &job.Overrides{CostToScale: opts.CostToScale}
	}
	event, err := job.LoadScorerEvent(manifest, jobDir, overrides)
	if err != nil {
		return model.EvaluateResult{}, err
	}

	confidenceRange := reviewer.ConfidenceRange()

	var confidence float64
	var report model.Report
	switch strategy {
	case model.StrategyScore:
		scoreResult := score.Confidence(event.InitiativeID, confidenceRange)
		if err := writeJSON(jobDir, ScoreResultFilename, scoreResult); err != nil {
			return model.EvaluateResult{}, err
		}
		confidence = scoreResult.Confidence
		report = model.Report{
			Kind: model.ReportKindScore,
			Text: fmt.Sprintf("Confidence drawn uniformly between %.2f and %.2f",
				confidenceRange.Low(), confidenceRange.High()),
		}
	case model.StrategyReview:
		reviewResult, err := review.Review(ctx, jobDir, cfg)
		if err != nil {
			return model.EvaluateResult{}, err
		}
		confidence = reviewResult.OverallScore
		report = model.Report{
			Kind:   model.ReportKindReview,
			Review: &reviewResult,
		}
	}

	result := model.EvaluateResult{
		InitiativeID:    event.InitiativeID,
		Confidence:      confidence,
		ConfidenceRange: confidenceRange,
		Strategy:        strategy,
		Report:          report,
	}

	if err := writeJSON(jobDir, ResultFilename, result); err != nil {
		return model.EvaluateResult{}, err
	}

	fmt.Fprintf(os.Stderr, "evaluated initiative=%s strategy=%s confidence=%.3f\n",
		result.InitiativeID, strategy, result.Confidence)
	return result, nil
}

func writeJSON(jobDir, filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filename, err)
	}
	path := filepath.Join(jobDir, filename)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
