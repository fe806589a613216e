// Package prompt loads YAML prompt templates and renders them into chat
// messages for the review engine.
package prompt

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openimpact/impacteval/internal/model"
)

// ErrTemplateNotFound indicates a missing prompt template file
var ErrTemplateNotFound = errors.New("prompt template not found")

// promptFile mirrors the on-disk YAML shape. dimensions tolerates both a
// YAML list and a comma-separated string.
type promptFile struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	Dimensions  any    `yaml:"dimensions"`
	System      string `yaml:"system"`
	User        string `yaml:"user"`
}

// LoadSpec reads a PromptSpec from a YAML file within fsys
func LoadSpec(fsys fs.FS, path string) (model.PromptSpec, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.PromptSpec{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return model.PromptSpec{}, fmt.Errorf("read prompt template %s: %w", path, err)
	}

	var file promptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return model.PromptSpec{}, fmt.Errorf("parse prompt template %s: %w", path, err)
	}

	spec := model.PromptSpec{
		Name:           file.Name,
		Version:        file.Version,
		Description:    file.Description,
		Dimensions:     normalizeDimensions(file.Dimensions),
		SystemTemplate: file.System,
		UserTemplate:   file.User,
	}
	if spec.Name == "" {
		spec.Name = "unknown"
	}
	if spec.Version == "" {
		spec.Version = "0.0"
	}
	return spec, nil
}

func normalizeDimensions(raw any) []string {
	switch v := raw.(type) {
	case []any:
		dims := make([]string, 0, len(v))
		for _, d := range v {
			dims = append(dims, strings.TrimSpace(fmt.Sprint(d)))
		}
		return dims
	case string:
		var dims []string
		for _, d := range strings.Split(v, ",") {
			if d = strings.TrimSpace(d); d != "" {
				dims = append(dims, d)
			}
		}
		return dims
	default:
		return nil
	}
}
