package backend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/openimpact/impacteval/internal/model"
)

func TestRegistry_DefaultsAvailable(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	available := Available()
	want := []string{"anthropic", "ollama", "openai"}
	if len(available) != len(want) {
		t.Fatalf("Expected %v, got %v", want, available)
	}
	for i, name := range want {
		if available[i] != name {
			t.Errorf("Expected %q at position %d, got %q", name, i, available[i])
		}
	}
}

func TestRegistry_UnknownBackend(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, err := Create("mystery", model.BackendConfig{})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("Expected ErrUnknownBackend, got %v", err)
	}
	if !strings.Contains(err.Error(), "anthropic") {
		t.Errorf("Expected error to list available backends, got %q", err.Error())
	}
}

type echoBackend struct{ reply string }

func (e *echoBackend) Name() string { return "echo" }
func (e *echoBackend) Complete(ctx context.Context, messages []model.Message, opts CompleteOptions) (string, error) {
	return e.reply, nil
}

func TestRegistry_CustomBackend(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("echo", func(cfg model.BackendConfig) (Backend, error) {
		return &echoBackend{reply: "hello"}, nil
	})

	b, err := Create("echo", model.BackendConfig{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	text, err := b.Complete(context.Background(), nil, CompleteOptions{})
	if err != nil || text != "hello" {
		t.Errorf("Unexpected completion: %q, %v", text, err)
	}
}
