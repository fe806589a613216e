// Package knowledge resolves domain-knowledge context strings for review
// prompts: concatenated markdown/text files from a directory, addressed
// either directly or through a named registry.
package knowledge

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Divider separates concatenated knowledge files in the combined context.
const Divider = "\n\n---\n\n"

// Load concatenates all .md and .txt files under dir within fsys, sorted
// by filename. A missing or empty directory yields "", not an error:
// knowledge is optional context.
func Load(fsys fs.FS, dir string) (string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return "", nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".txt") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		content, err := fs.ReadFile(fsys, joinPath(dir, name))
		if err != nil {
			return "", fmt.Errorf("read knowledge file %s: %w", name, err)
		}
		parts = append(parts, string(content))
	}

	return strings.Join(parts, Divider), nil
}

func joinPath(dir, name string) string {
	if dir == "." || dir == "" {
		return name
	}
	return dir + "/" + name
}
