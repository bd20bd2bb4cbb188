package domain

import "context"

// KnowledgeSource provides the versioned compatibility catalog. Implementations
// load it once; the catalog is immutable afterwards.
type KnowledgeSource interface {
	Load() (KnowledgeCatalog, error)
}

// Linter submits generated configuration text to an external linting service.
// Transport failure must come back as a degraded LintResult, not an error.
type Linter interface {
	Lint(ctx context.Context, content string) LintResult
}

// Advisor produces advisory migration prose from an external text service.
// Its output is never authoritative; failure yields a degraded Advisory.
type Advisor interface {
	Advise(ctx context.Context, report *AnalysisReport) Advisory
}

// GitInfo provides repository metadata for report stamping.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// AnalysisHistory persists past analysis entries near the scanned file.
type AnalysisHistory interface {
	Save(dir string, entry HistoryEntry) error
	Load(dir string) ([]HistoryEntry, error)
}

// ConfigLoader reads the optional project configuration file.
type ConfigLoader interface {
	Load(dir string) (ProjectConfig, error)
}
