package backend

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/openimpact/impacteval/internal/model"
)

// ErrUnknownBackend indicates a provider name with no registered factory
var ErrUnknownBackend = errors.New("unknown backend")

// Factory constructs a backend from its configuration
type Factory func(cfg model.BackendConfig) (Backend, error)

var (
	factories      = map[string]Factory{}
	defaultsLoaded bool
)

// ensureDefaults lazily registers the built-in providers on first access
func ensureDefaults() {
	if defaultsLoaded {
		return
	}
	defaultsLoaded = true
	factories["openai"] = newOpenAI
	factories["anthropic"] = newAnthropic
	factories["ollama"] = newOllama
}

// Register adds a backend factory under name. Existing entries are
// replaced. Not safe for concurrent use; register at startup or in tests,
// never while evaluations are in flight.
func Register(name string, factory Factory) {
	ensureDefaults()
	factories[name] = factory
}

// Create instantiates the backend registered under name. Unknown names
// fail with an error enumerating all registered backends.
func Create(name string, cfg model.BackendConfig) (Backend, error) {
	ensureDefaults()
	factory, ok := factories[name]
	if !ok {
		available := strings.Join(Available(), ", ")
		if available == "" {
			available = "(none)"
		}
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, available)
	}
	return factory(cfg)
}

// Available returns the sorted list of registered backend names
func Available() []string {
	ensureDefaults()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears the registry and re-arms default loading. For tests.
func Reset() {
	factories = map[string]Factory{}
	defaultsLoaded = false
}
