package prompt

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/openimpact/impacteval/internal/cache"
	"github.com/openimpact/impacteval/internal/method"
	"github.com/openimpact/impacteval/internal/model"
)

// ErrUnknownPrompt indicates a prompt name with no registry entry
var ErrUnknownPrompt = errors.New("prompt not registered")

// source locates one registered prompt template
type source struct {
	fsys fs.FS
	path string
}

var (
	registry       = map[string]source{}
	defaultsLoaded bool

	// Parsed specs are cached: prompts are static within one process.
	specCache cache.Cache = cache.NewMemoryCache(time.Hour, 10*time.Minute)
)

// ensureDefaults lazily registers the built-in method prompt templates on
// first access.
func ensureDefaults() {
	if defaultsLoaded {
		return
	}
	defaultsLoaded = true
	for _, name := range method.Available() {
		r, err := method.Create(name)
		if err != nil {
			continue
		}
		if fsys := r.TemplateFS(); fsys != nil {
			registry[r.PromptName()] = source{fsys: fsys, path: r.PromptName() + ".yaml"}
		}
	}
}

// Register adds a prompt template file under name. Not safe for concurrent
// use; register at startup or in tests.
func Register(name string, fsys fs.FS, path string) {
	ensureDefaults()
	registry[name] = source{fsys: fsys, path: path}
	specCache.Delete(cache.Key("prompt", name))
}

// Load parses and returns the prompt spec registered under name
func Load(name string) (model.PromptSpec, error) {
	ensureDefaults()
	src, ok := registry[name]
	if !ok {
		available := strings.Join(List(), ", ")
		if available == "" {
			available = "(none)"
		}
		return model.PromptSpec{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPrompt, name, available)
	}

	key := cache.Key("prompt", name)
	if cached, ok := specCache.Get(key); ok {
		return cached.(model.PromptSpec), nil
	}

	spec, err := LoadSpec(src.fsys, src.path)
	if err != nil {
		return model.PromptSpec{}, err
	}
	specCache.Set(key, spec, time.Hour)
	return spec, nil
}

// List returns the sorted names of all registered prompts
func List() []string {
	ensureDefaults()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears the registry, the spec cache, and re-arms default loading.
// For tests.
func Reset() {
	registry = map[string]source{}
	defaultsLoaded = false
	specCache.Clear()
}
