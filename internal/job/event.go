package job

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openimpact/impacteval/internal/model"
)

// ResultsFilename is the fixed name of the MEASURE stage's numeric output.
const ResultsFilename = "impact_results.json"

// ErrResultsNotFound indicates the job directory has no impact_results.json
var ErrResultsNotFound = errors.New("impact results not found")

// Overrides carries caller-supplied values that win over file-derived ones
type Overrides struct {
	CostToScale *float64
}

// LoadScorerEvent assembles a ScorerEvent from a job directory's
// impact_results.json. Missing numeric fields default to zero: partial
// results beat hard failure. Overrides are applied last.
func LoadScorerEvent(m model.Manifest, jobDir string, overrides *Overrides) (model.ScorerEvent, error) {
	path := filepath.Join(jobDir, ResultsFilename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.ScorerEvent{}, fmt.Errorf("%w: %s", ErrResultsNotFound, path)
		}
		return model.ScorerEvent{}, fmt.Errorf("read results %s: %w", path, err)
	}

	var raw struct {
		CIUpper        float64 `json:"ci_upper"`
		EffectEstimate float64 `json:"effect_estimate"`
		CILower        float64 `json:"ci_lower"`
		CostToScale    float64 `json:"cost_to_scale"`
		SampleSize     int     `json:"sample_size"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.ScorerEvent{}, fmt.Errorf("parse results %s: %w", path, err)
	}

	event := model.ScorerEvent{
		InitiativeID:   m.InitiativeID,
		ModelType:      m.ModelType,
		CIUpper:        raw.CIUpper,
		EffectEstimate: raw.EffectEstimate,
		CILower:        raw.CILower,
		CostToScale:    raw.CostToScale,
		SampleSize:     raw.SampleSize,
	}
	if event.InitiativeID == "" {
		event.InitiativeID = filepath.Base(filepath.Clean(jobDir))
	}

	if overrides != nil && overrides.CostToScale != nil {
		event.CostToScale = *overrides.CostToScale
	}

	return event, nil
}
