// Package job reads the artifacts a job directory stages for evaluation:
// the manifest and the upstream MEASURE stage's numeric results.
package job

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openimpact/impacteval/internal/model"
)

// ErrManifestNotFound indicates the job directory has no manifest.json
var ErrManifestNotFound = errors.New("manifest not found")

// ErrManifestInvalid indicates a manifest missing required fields
var ErrManifestInvalid = errors.New("invalid manifest")

// LoadManifest loads and validates manifest.json from a job directory.
//
// The manifest must declare schema_version and model_type. initiative_id
// falls back to the job directory's base name; evaluate_strategy falls
// back to model.DefaultStrategy. Read-only: the manifest file is never
// rewritten by this stage.
func LoadManifest(jobDir string) (model.Manifest, error) {
	path := filepath.Join(jobDir, model.ManifestFilename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Manifest{}, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return model.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m model.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return model.Manifest{}, fmt.Errorf("%w: parse %s: %v", ErrManifestInvalid, path, err)
	}

	if m.SchemaVersion == "" {
		return model.Manifest{}, fmt.Errorf("%w: missing required field schema_version", ErrManifestInvalid)
	}
	if m.ModelType == "" {
		return model.Manifest{}, fmt.Errorf("%w: missing required field model_type", ErrManifestInvalid)
	}

	if m.InitiativeID == "" {
		m.InitiativeID = filepath.Base(filepath.Clean(jobDir))
	}
	if m.EvaluateStrategy == "" {
		m.EvaluateStrategy = model.DefaultStrategy
	}
	if m.Files == nil {
		m.Files = map[string]model.FileEntry{}
	}

	return m, nil
}
