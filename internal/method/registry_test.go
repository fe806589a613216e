package method

import (
	"errors"
	"strings"
	"testing"

	"github.com/openimpact/impacteval/internal/model"
)

func TestRegistry_BuiltinsAvailable(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	available := Available()
	want := []string{"experiment", "quasi_experimental"}
	if len(available) != len(want) {
		t.Fatalf("Expected %v, got %v", want, available)
	}
	for i, name := range want {
		if available[i] != name {
			t.Errorf("Expected %q at position %d, got %q", name, i, available[i])
		}
	}
}

func TestRegistry_CreateExperiment(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	r, err := Create("experiment")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if r.Name() != "experiment" {
		t.Errorf("Expected name experiment, got %q", r.Name())
	}
	if r.ConfidenceRange() != (model.ConfidenceRange{0.85, 1.0}) {
		t.Errorf("Expected range [0.85, 1.0], got %v", r.ConfidenceRange())
	}
	if r.PromptName() != "experiment_review" {
		t.Errorf("Expected prompt name experiment_review, got %q", r.PromptName())
	}
	if r.TemplateFS() == nil {
		t.Error("Expected embedded template FS, got nil")
	}
}

func TestRegistry_CreateQuasiExperimental(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	r, err := Create("quasi_experimental")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if r.ConfidenceRange() != (model.ConfidenceRange{0.60, 0.85}) {
		t.Errorf("Expected range [0.60, 0.85], got %v", r.ConfidenceRange())
	}
	if r.PromptName() != "quasi_experimental_review" {
		t.Errorf("Expected prompt name quasi_experimental_review, got %q", r.PromptName())
	}
}

func TestRegistry_UnknownMethod(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, err := Create("synth_control")
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("Expected ErrUnknownMethod, got %v", err)
	}
	if !strings.Contains(err.Error(), "experiment") {
		t.Errorf("Expected error to list available methods, got %q", err.Error())
	}
}

func TestRegistry_CustomRegistration(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("custom", func() Reviewer {
		return &reviewer{
			name:       "custom",
			promptName: "custom_review",
			confRange:  model.ConfidenceRange{0.1, 0.2},
		}
	})

	r, err := Create("custom")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if r.Name() != "custom" {
		t.Errorf("Expected custom reviewer, got %q", r.Name())
	}
}
