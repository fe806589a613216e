package knowledge

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/openimpact/impacteval/internal/cache"
	"github.com/openimpact/impacteval/internal/method"
)

// ErrUnknownKnowledgeBase indicates a knowledge base with no registry entry
var ErrUnknownKnowledgeBase = errors.New("knowledge base not registered")

// source locates one registered knowledge directory
type source struct {
	fsys fs.FS
	dir  string
}

var (
	registry       = map[string]source{}
	defaultsLoaded bool

	// Concatenated contexts are cached across evaluations in one process.
	contentCache cache.Cache = cache.NewMemoryCache(time.Hour, 10*time.Minute)
)

// ensureDefaults lazily registers the built-in method knowledge bases on
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
		if fsys := r.KnowledgeFS(); fsys != nil {
			registry[r.Name()] = source{fsys: fsys, dir: "."}
		}
	}
}

// Register adds a knowledge directory under name. Not safe for concurrent
// use; register at startup or in tests.
func Register(name string, fsys fs.FS, dir string) {
	ensureDefaults()
	registry[name] = source{fsys: fsys, dir: dir}
	contentCache.Delete(cache.Key("knowledge", name))
}

// LoadBase returns the concatenated content of the knowledge base
// registered under name.
func LoadBase(name string) (string, error) {
	ensureDefaults()
	src, ok := registry[name]
	if !ok {
		available := strings.Join(List(), ", ")
		if available == "" {
			available = "(none)"
		}
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownKnowledgeBase, name, available)
	}

	key := cache.Key("knowledge", name)
	if cached, ok := contentCache.Get(key); ok {
		return cached.(string), nil
	}

	content, err := Load(src.fsys, src.dir)
	if err != nil {
		return "", err
	}
	contentCache.Set(key, content, time.Hour)
	return content, nil
}

// List returns the sorted names of all registered knowledge bases
func List() []string {
	ensureDefaults()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears the registry, the content cache, and re-arms default
// loading. For tests.
func Reset() {
	registry = map[string]source{}
	defaultsLoaded = false
	contentCache.Clear()
}
