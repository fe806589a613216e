package job

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/openimpact/impacteval/internal/model"
)

func writeResults(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, ResultsFilename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write results: %v", err)
	}
}

func TestLoadScorerEvent_Complete(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, `{
		"effect_estimate": 0.12,
		"ci_lower": 0.05,
		"ci_upper": 0.19,
		"cost_to_scale": 1500.0,
		"sample_size": 2400
	}`)

	m := model.Manifest{InitiativeID: "init-001", ModelType: "experiment"}
	event, err := LoadScorerEvent(m, dir, nil)
	if err != nil {
		t.Fatalf("LoadScorerEvent failed: %v", err)
	}

	if event.InitiativeID != "init-001" {
		t.Errorf("Expected initiative id init-001, got %q", event.InitiativeID)
	}
	if event.EffectEstimate != 0.12 {
		t.Errorf("Expected effect estimate 0.12, got %v", event.EffectEstimate)
	}
	if event.SampleSize != 2400 {
		t.Errorf("Expected sample size 2400, got %d", event.SampleSize)
	}
}

func TestLoadScorerEvent_MissingFieldsDefaultToZero(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, `{"effect_estimate": 0.3}`)

	m := model.Manifest{InitiativeID: "init-001", ModelType: "experiment"}
	event, err := LoadScorerEvent(m, dir, nil)
	if err != nil {
		t.Fatalf("LoadScorerEvent failed: %v", err)
	}

	if event.CostToScale != 0 || event.SampleSize != 0 || event.CIUpper != 0 {
		t.Errorf("Expected zero defaults for missing fields, got %+v", event)
	}
}

func TestLoadScorerEvent_NotFound(t *testing.T) {
	m := model.Manifest{InitiativeID: "init-001"}
	_, err := LoadScorerEvent(m, t.TempDir(), nil)
	if !errors.Is(err, ErrResultsNotFound) {
		t.Errorf("Expected ErrResultsNotFound, got %v", err)
	}
}

func TestLoadScorerEvent_CostToScaleOverride(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, `{"cost_to_scale": 1500.0}`)

	override := 99.5
	m := model.Manifest{InitiativeID: "init-001"}
	event, err := LoadScorerEvent(m, dir, &Overrides{CostToScale: &override})
	if err != nil {
		t.Fatalf("LoadScorerEvent failed: %v", err)
	}

	if event.CostToScale != 99.5 {
		t.Errorf("Expected override 99.5, got %v", event.CostToScale)
	}
}

func TestLoadScorerEvent_InitiativeIDFallsBackToDirName(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "init-fallback")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeResults(t, dir, `{}`)

	event, err := LoadScorerEvent(model.Manifest{}, dir, nil)
	if err != nil {
		t.Fatalf("LoadScorerEvent failed: %v", err)
	}
	if event.InitiativeID != "init-fallback" {
		t.Errorf("Expected initiative id from directory name, got %q", event.InitiativeID)
	}
}
