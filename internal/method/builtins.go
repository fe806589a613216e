package method

import (
	"embed"
	"io/fs"

	"github.com/openimpact/impacteval/internal/model"
)

//go:embed resources
var resources embed.FS

// registerBuiltins installs the built-in methodology reviewers. Ranges
// reflect a-priori causal credibility: randomized experiments above
// quasi-experimental designs.
func registerBuiltins() {
	Register("experiment", func() Reviewer {
		return &reviewer{
			name:        "experiment",
			promptName:  "experiment_review",
			description: "Review experimental (RCT) impact measurement artifacts.",
			confRange:   model.ConfidenceRange{0.85, 1.0},
			templates:   mustSub("resources/experiment/templates"),
			knowledge:   mustSub("resources/experiment/knowledge"),
		}
	})
	Register("quasi_experimental", func() Reviewer {
		return &reviewer{
			name:        "quasi_experimental",
			promptName:  "quasi_experimental_review",
			description: "Review quasi-experimental (DiD, RDD, IV) impact measurement artifacts.",
			confRange:   model.ConfidenceRange{0.60, 0.85},
			templates:   mustSub("resources/quasi_experimental/templates"),
			knowledge:   mustSub("resources/quasi_experimental/knowledge"),
		}
	})
}

// mustSub roots an embedded subtree; the paths are compile-time constants
// so failure here is a packaging bug.
func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(resources, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
