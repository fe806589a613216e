package method

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownMethod indicates a methodology with no registered reviewer
var ErrUnknownMethod = errors.New("unknown method")

var (
	factories      = map[string]func() Reviewer{}
	defaultsLoaded bool
)

// ensureDefaults lazily registers the built-in reviewers on first access
func ensureDefaults() {
	if defaultsLoaded {
		return
	}
	defaultsLoaded = true
	registerBuiltins()
}

// Register adds a reviewer factory under name. Existing entries are
// replaced. Not safe for concurrent use; register at startup or in tests,
// never while evaluations are in flight.
func Register(name string, factory func() Reviewer) {
	ensureDefaults()
	factories[name] = factory
}

// Create instantiates the reviewer registered under name. Unknown names
// fail with an error enumerating all registered methods.
func Create(name string) (Reviewer, error) {
	ensureDefaults()
	factory, ok := factories[name]
	if !ok {
		available := strings.Join(Available(), ", ")
		if available == "" {
			available = "(none)"
		}
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownMethod, name, available)
	}
	return factory(), nil
}

// Available returns the sorted list of registered method names
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
	factories = map[string]func() Reviewer{}
	defaultsLoaded = false
}
