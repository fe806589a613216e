package method

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openimpact/impacteval/internal/model"
)

// ErrNoFiles indicates a manifest listing zero files for artifact loading
var ErrNoFiles = errors.New("manifest has no file entries")

// LoadArtifact is the default artifact loader: every manifest-listed file
// is read and concatenated under a "=== name (format) ===" header, in
// logical-name order. sample_size is extracted from the first JSON file
// that carries the key; initiative identity falls back to the job
// directory's base name.
func LoadArtifact(m model.Manifest, jobDir string) (model.ArtifactPayload, error) {
	if len(m.Files) == 0 {
		return model.ArtifactPayload{}, fmt.Errorf("%w: nothing to review in %s", ErrNoFiles, jobDir)
	}

	names := make([]string, 0, len(m.Files))
	for name := range m.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	var sections []string
	sampleSize := 0

	for _, name := range names {
		entry := m.Files[name]
		path := filepath.Join(jobDir, entry.Path)
		content, err := os.ReadFile(path)
		if err != nil {
			return model.ArtifactPayload{}, fmt.Errorf("read artifact file %s: %w", path, err)
		}

		sections = append(sections, fmt.Sprintf("=== %s (%s) ===\n%s", name, entry.Format, content))

		if sampleSize == 0 && entry.Format == "json" {
			sampleSize = extractSampleSize(content)
		}
	}

	initiativeID := m.InitiativeID
	if initiativeID == "" {
		initiativeID = filepath.Base(filepath.Clean(jobDir))
	}

	return model.ArtifactPayload{
		InitiativeID: initiativeID,
		ArtifactText: strings.Join(sections, "\n\n"),
		ModelType:    m.ModelType,
		SampleSize:   sampleSize,
	}, nil
}

// extractSampleSize pulls sample_size from a JSON document, best-effort
func extractSampleSize(content []byte) int {
	var doc struct {
		SampleSize int `json:"sample_size"`
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		return 0
	}
	return doc.SampleSize
}
