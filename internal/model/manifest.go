package model

// ManifestFilename is the well-known manifest name inside a job directory.
const ManifestFilename = "manifest.json"

// FileEntry is a single file reference within a manifest
type FileEntry struct {
	Path   string `json:"path"`   // Relative path within the job directory
	Format string `json:"format"` // Format identifier: "json", "yaml", "csv", "md", ...
}

// Manifest describes one job directory: which methodology measured the
// initiative, which evaluation strategy to apply, and which files the
// upstream MEASURE stage staged for review.
type Manifest struct {
	SchemaVersion    string               `json:"schema_version"`
	ModelType        string               `json:"model_type"`
	CreatedAt        string               `json:"created_at,omitempty"`
	Files            map[string]FileEntry `json:"files"`
	InitiativeID     string               `json:"initiative_id,omitempty"`
	EvaluateStrategy string               `json:"evaluate_strategy,omitempty"`
}
