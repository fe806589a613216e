package method

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openimpact/impacteval/internal/model"
)

func stageFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadArtifact_ConcatenatesWithHeaders(t *testing.T) {
	dir := t.TempDir()
	stageFile(t, dir, "results.json", `{"sample_size": 2400, "effect_estimate": 0.12}`)
	stageFile(t, dir, "notes.md", "# Analysis notes")

	m := model.Manifest{
		InitiativeID: "init-001",
		ModelType:    "experiment",
		Files: map[string]model.FileEntry{
			"results": {Path: "results.json", Format: "json"},
			"notes":   {Path: "notes.md", Format: "md"},
		},
	}

	payload, err := LoadArtifact(m, dir)
	if err != nil {
		t.Fatalf("LoadArtifact failed: %v", err)
	}

	if !strings.Contains(payload.ArtifactText, "=== results (json) ===") {
		t.Error("Expected results section header")
	}
	if !strings.Contains(payload.ArtifactText, "=== notes (md) ===") {
		t.Error("Expected notes section header")
	}
	if !strings.Contains(payload.ArtifactText, "# Analysis notes") {
		t.Error("Expected notes content in artifact text")
	}

	// Logical names sort: notes before results
	notesIdx := strings.Index(payload.ArtifactText, "=== notes")
	resultsIdx := strings.Index(payload.ArtifactText, "=== results")
	if notesIdx > resultsIdx {
		t.Error("Expected sections in sorted logical-name order")
	}
}

func TestLoadArtifact_ExtractsSampleSize(t *testing.T) {
	dir := t.TempDir()
	stageFile(t, dir, "results.json", `{"sample_size": 2400}`)

	m := model.Manifest{
		InitiativeID: "init-001",
		Files:        map[string]model.FileEntry{"results": {Path: "results.json", Format: "json"}},
	}

	payload, err := LoadArtifact(m, dir)
	if err != nil {
		t.Fatalf("LoadArtifact failed: %v", err)
	}
	if payload.SampleSize != 2400 {
		t.Errorf("Expected sample size 2400, got %d", payload.SampleSize)
	}
}

func TestLoadArtifact_NoFiles(t *testing.T) {
	m := model.Manifest{InitiativeID: "init-001"}
	_, err := LoadArtifact(m, t.TempDir())
	if !errors.Is(err, ErrNoFiles) {
		t.Errorf("Expected ErrNoFiles, got %v", err)
	}
}

func TestLoadArtifact_MissingFileFails(t *testing.T) {
	m := model.Manifest{
		InitiativeID: "init-001",
		Files:        map[string]model.FileEntry{"results": {Path: "gone.json", Format: "json"}},
	}
	if _, err := LoadArtifact(m, t.TempDir()); err == nil {
		t.Error("Expected error for missing artifact file")
	}
}

func TestLoadArtifact_NonJSONFilesSkippedForSampleSize(t *testing.T) {
	dir := t.TempDir()
	stageFile(t, dir, "notes.md", "sample_size: 9000")

	m := model.Manifest{
		InitiativeID: "init-001",
		Files:        map[string]model.FileEntry{"notes": {Path: "notes.md", Format: "md"}},
	}

	payload, err := LoadArtifact(m, dir)
	if err != nil {
		t.Fatalf("LoadArtifact failed: %v", err)
	}
	if payload.SampleSize != 0 {
		t.Errorf("Expected sample size 0 without JSON files, got %d", payload.SampleSize)
	}
}
