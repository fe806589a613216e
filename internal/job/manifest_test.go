package job

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/openimpact/impacteval/internal/model"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, model.ManifestFilename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

func TestLoadManifest_Complete(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{
		"schema_version": "1.0",
		"model_type": "experiment",
		"initiative_id": "init-001",
		"evaluate_strategy": "score",
		"files": {"results": {"path": "impact_results.json", "format": "json"}}
	}`)

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}

	if m.InitiativeID != "init-001" {
		t.Errorf("Expected initiative id init-001, got %q", m.InitiativeID)
	}
	if m.EvaluateStrategy != "score" {
		t.Errorf("Expected strategy score, got %q", m.EvaluateStrategy)
	}
	if len(m.Files) != 1 {
		t.Errorf("Expected 1 file entry, got %d", len(m.Files))
	}
}

func TestLoadManifest_NotFound(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	if !errors.Is(err, ErrManifestNotFound) {
		t.Errorf("Expected ErrManifestNotFound, got %v", err)
	}
}

func TestLoadManifest_MissingSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"model_type": "experiment"}`)

	_, err := LoadManifest(dir)
	if !errors.Is(err, ErrManifestInvalid) {
		t.Errorf("Expected ErrManifestInvalid, got %v", err)
	}
}

func TestLoadManifest_MissingModelType(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"schema_version": "1.0"}`)

	_, err := LoadManifest(dir)
	if !errors.Is(err, ErrManifestInvalid) {
		t.Errorf("Expected ErrManifestInvalid, got %v", err)
	}
}

func TestLoadManifest_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{not json`)

	_, err := LoadManifest(dir)
	if !errors.Is(err, ErrManifestInvalid) {
		t.Errorf("Expected ErrManifestInvalid, got %v", err)
	}
}

func TestLoadManifest_InitiativeIDFallsBackToDirName(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "init-042")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeManifest(t, dir, `{"schema_version": "1.0", "model_type": "experiment"}`)

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.InitiativeID != "init-042" {
		t.Errorf("Expected initiative id from directory name, got %q", m.InitiativeID)
	}
}

func TestLoadManifest_StrategyDefaultsToReview(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"schema_version": "1.0", "model_type": "experiment"}`)

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.EvaluateStrategy != model.DefaultStrategy {
		t.Errorf("Expected default strategy %q, got %q", model.DefaultStrategy, m.EvaluateStrategy)
	}
	if m.Files == nil {
		t.Error("Expected files map initialized, got nil")
	}
}
