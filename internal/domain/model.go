package domain

import "time"

// PipelineKind classifies the root construct of a source pipeline.
type PipelineKind string

const (
	KindDeclarative PipelineKind = "declarative"
	KindScripted    PipelineKind = "scripted"
	KindUnknown     PipelineKind = "unknown"
)

// ComplexityTier is the coarse complexity classification of a pipeline.
// It drives stage selection during synthesis.
type ComplexityTier string

const (
	TierSimple  ComplexityTier = "simple"
	TierMedium  ComplexityTier = "medium"
	TierComplex ComplexityTier = "complex"
)

// tierRank orders tiers so derivation can only raise, never lower.
var tierRank = map[ComplexityTier]int{
	TierSimple:  0,
	TierMedium:  1,
	TierComplex: 2,
}

// MaxTier returns the higher of two tiers.
func MaxTier(a, b ComplexityTier) ComplexityTier {
	if tierRank[b] > tierRank[a] {
		return b
	}
	return a
}

// FeatureCategory groups detected features by concern.
type FeatureCategory string

const (
	CategoryBuild       FeatureCategory = "build"
	CategoryTest        FeatureCategory = "test"
	CategoryQuality     FeatureCategory = "quality"
	CategorySecurity    FeatureCategory = "security"
	CategoryCredentials FeatureCategory = "credentials"
	CategoryDeploy      FeatureCategory = "deploy"
	CategoryNotify      FeatureCategory = "notify"
	CategorySCM         FeatureCategory = "scm"
	CategoryFlow        FeatureCategory = "flow"
	CategoryTrigger     FeatureCategory = "trigger"
	CategoryArtifact    FeatureCategory = "artifact"
	CategoryEnvironment FeatureCategory = "environment"
)

// FeatureHit is one detected pipeline capability, unique by Key within a profile.
type FeatureHit struct {
	Key         string          `json:"key"`
	DisplayName string          `json:"display_name"`
	Category    FeatureCategory `json:"category"`
}

// ScanProfile is the structural profile of one scanned pipeline definition.
// Re-scanning identical text yields an identical profile.
type ScanProfile struct {
	PipelineKind   PipelineKind   `json:"pipeline_kind"`
	FeatureHits    []FeatureHit   `json:"feature_hits"`
	FeatureCount   int            `json:"feature_count"`
	LineCount      int            `json:"line_count"`
	ComplexityTier ComplexityTier `json:"complexity_tier"`
	Warnings       []string       `json:"warnings,omitempty"`
}

// PluginStatus reflects the upstream maintenance state of a source feature.
type PluginStatus string

const (
	StatusActive      PluginStatus = "active"
	StatusMaintenance PluginStatus = "maintenance"
	StatusDeprecated  PluginStatus = "deprecated"
	StatusAbandoned   PluginStatus = "abandoned"
	StatusUnknown     PluginStatus = "unknown"
)

// ValidStatus reports whether s is one of the recognized plugin statuses.
func ValidStatus(s PluginStatus) bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusDeprecated, StatusAbandoned, StatusUnknown:
		return true
	}
	return false
}

// RiskTag labels a migration risk dimension.
type RiskTag string

const (
	RiskSecurity       RiskTag = "security"
	RiskLicensing      RiskTag = "licensing"
	RiskBehaviorChange RiskTag = "behavior-change"
	RiskPerformance    RiskTag = "performance"
	RiskNone           RiskTag = "none"
)

// KnowledgeEntry is the static compatibility record for one feature key.
type KnowledgeEntry struct {
	Key              string          `json:"key" yaml:"key"`
	DisplayName      string          `json:"display_name" yaml:"display_name"`
	Category         FeatureCategory `json:"category" yaml:"category"`
	Status           PluginStatus    `json:"status" yaml:"status"`
	TargetEquivalent string          `json:"target_equivalent,omitempty" yaml:"target_equivalent,omitempty"`
	Alternatives     []string        `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	RiskTags         []RiskTag       `json:"risk_tags,omitempty" yaml:"risk_tags,omitempty"`
	Notes            string          `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// KnowledgeCatalog is the versioned set of knowledge entries loaded at startup.
type KnowledgeCatalog struct {
	Version string           `json:"version" yaml:"version"`
	Entries []KnowledgeEntry `json:"entries" yaml:"entries"`
}

// RiskSeverity grades a single migration risk.
type RiskSeverity string

const (
	SeverityLow      RiskSeverity = "low"
	SeverityMedium   RiskSeverity = "medium"
	SeverityHigh     RiskSeverity = "high"
	SeverityCritical RiskSeverity = "critical"
)

// Risk is one concrete migration risk attached to a verdict.
type Risk struct {
	Type        RiskTag      `json:"type"`
	Severity    RiskSeverity `json:"severity"`
	Description string       `json:"description"`
}

// MigrationPath describes the work needed to move one feature to the target.
type MigrationPath struct {
	Complexity      ComplexityTier `json:"complexity"`
	Steps           []string       `json:"steps"`
	EstimatedEffort string         `json:"estimated_effort"`
}

// Verdict is the per-feature compatibility assessment.
type Verdict struct {
	Feature          FeatureHit    `json:"feature"`
	Status           PluginStatus  `json:"status"`
	TargetEquivalent string        `json:"target_equivalent,omitempty"`
	Alternatives     []string      `json:"alternatives,omitempty"`
	Risks            []Risk        `json:"risks,omitempty"`
	Path             MigrationPath `json:"migration_path"`
}

// Readiness is the aggregate migration readiness classification.
type Readiness string

const (
	ReadinessReady       Readiness = "ready"
	ReadinessPreparation Readiness = "needs-preparation"
	ReadinessSignificant Readiness = "significant-work-needed"
)

// readinessRank orders readiness from best to worst for gate comparisons.
var readinessRank = map[Readiness]int{
	ReadinessReady:       0,
	ReadinessPreparation: 1,
	ReadinessSignificant: 2,
}

// ValidReadiness reports whether r is one of the recognized classifications.
func ValidReadiness(r Readiness) bool {
	_, ok := readinessRank[r]
	return ok
}

// ReadinessAtLeast reports whether r is at least as good as min.
func ReadinessAtLeast(r, min Readiness) bool {
	return readinessRank[r] <= readinessRank[min]
}

// ScanSummary aggregates verdict counts for one analysis.
type ScanSummary struct {
	TotalByStatus map[PluginStatus]int `json:"total_by_status"`
	RisksByType   map[RiskTag]int      `json:"risks_by_type"`
	Readiness     Readiness            `json:"migration_readiness"`
}

// RecommendationPriority orders recommendations for display.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// Recommendation is one actionable migration suggestion.
type Recommendation struct {
	FeatureKey string                 `json:"feature_key"`
	Priority   RecommendationPriority `json:"priority"`
	Title      string                 `json:"title"`
	Detail     string                 `json:"detail"`
}

// CredentialKind classifies a source credential declaration.
type CredentialKind string

const (
	CredUsernamePassword CredentialKind = "usernamePassword"
	CredSecretText       CredentialKind = "secretText"
	CredFile             CredentialKind = "file"
	CredSSHKey           CredentialKind = "sshKey"
	CredCertificate      CredentialKind = "certificate"
	CredUnknown          CredentialKind = "unknown"
)

// CredentialHit is one secret-usage call site found in the source text.
// IDs are not unique: the source may reference the same credential at
// multiple call sites and each occurrence is preserved.
type CredentialHit struct {
	ID       string         `json:"id"`
	Line     int            `json:"line"`
	Kind     CredentialKind `json:"kind"`
	RawMatch string         `json:"raw_match"`
	Context  string         `json:"context"`
}

// VariableType selects the target-platform variable flavor.
type VariableType string

const (
	VarTypeVariable VariableType = "variable"
	VarTypeFile     VariableType = "file"
)

// VariableSpec is a target-platform CI/CD variable derived from a credential.
// ProposedKey values are unique within one inventory.
type VariableSpec struct {
	OriginalID  string       `json:"original_id"`
	ProposedKey string       `json:"proposed_key"`
	Type        VariableType `json:"type"`
	Masked      bool         `json:"masked"`
	Protected   bool         `json:"protected"`
	Description string       `json:"description,omitempty"`
}

// SpecValidation is the result of checking a variable inventory.
type SpecValidation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ArtifactsSpec mirrors the target platform's job artifact block.
type ArtifactsSpec struct {
	Paths   []string          `json:"paths,omitempty" yaml:"paths,omitempty"`
	Reports map[string]string `json:"reports,omitempty" yaml:"reports,omitempty"`
	When    string            `json:"when,omitempty" yaml:"when,omitempty"`
}

// JobSpec is one job in the synthesized target configuration.
type JobSpec struct {
	Stage        string         `json:"stage" yaml:"stage"`
	Image        string         `json:"image,omitempty" yaml:"image,omitempty"`
	Services     []string       `json:"services,omitempty" yaml:"services,omitempty"`
	BeforeScript []string       `json:"before_script,omitempty" yaml:"before_script,omitempty"`
	Script       []string       `json:"script" yaml:"script"`
	Artifacts    *ArtifactsSpec `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
	When         string         `json:"when,omitempty" yaml:"when,omitempty"`
	Coverage     string         `json:"coverage,omitempty" yaml:"coverage,omitempty"`
}

// DocValidation is the structural self-check of a synthesized document.
type DocValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// TargetDocument is the synthesized target configuration prior to text
// serialization. JobOrder preserves deterministic emission order for Jobs.
type TargetDocument struct {
	Stages       []string           `json:"stages"`
	DefaultImage string             `json:"default_image,omitempty"`
	Services     []string           `json:"services,omitempty"`
	Variables    map[string]string  `json:"variables,omitempty"`
	Jobs         map[string]JobSpec `json:"jobs"`
	JobOrder     []string           `json:"job_order"`
	// RequiredVariables lists CI/CD variable keys the configuration expects
	// to be provisioned outside the file (from the secret mapper).
	RequiredVariables []string      `json:"required_variables,omitempty"`
	Validation        DocValidation `json:"validation"`
}

// CollaboratorStatus distinguishes healthy from degraded external results.
type CollaboratorStatus string

const (
	CollaboratorOK       CollaboratorStatus = "ok"
	CollaboratorDegraded CollaboratorStatus = "degraded"
)

// LintResult is the outcome of remote-linting a generated configuration.
// A degraded status means the lint service could not be reached; the
// generated configuration is still usable.
type LintResult struct {
	Status   CollaboratorStatus `json:"status"`
	Valid    bool               `json:"valid"`
	Errors   []string           `json:"errors,omitempty"`
	Warnings []string           `json:"warnings,omitempty"`
	Note     string             `json:"note,omitempty"`
}

// Advisory is optional prose from the external advisory-text service.
type Advisory struct {
	Status CollaboratorStatus `json:"status"`
	Text   string             `json:"text,omitempty"`
	Note   string             `json:"note,omitempty"`
}

// AnalysisReport is the full output of one analyze run.
type AnalysisReport struct {
	SourcePath       string           `json:"source_path"`
	CommitHash       string           `json:"commit_hash,omitempty"`
	GeneratedAt      time.Time        `json:"generated_at"`
	KnowledgeVersion string           `json:"knowledge_version"`
	Profile          ScanProfile      `json:"profile"`
	Verdicts         []Verdict        `json:"verdicts"`
	Summary          ScanSummary      `json:"summary"`
	Recommendations  []Recommendation `json:"recommendations,omitempty"`
	Checklist        string           `json:"checklist,omitempty"`
	Advisory         *Advisory        `json:"advisory,omitempty"`
}

// SecretsReport is the full output of one secrets run.
type SecretsReport struct {
	SourcePath string          `json:"source_path"`
	Hits       []CredentialHit `json:"hits"`
	Specs      []VariableSpec  `json:"specs"`
	Validation SpecValidation  `json:"validation"`
	EnvFile    string          `json:"env_file,omitempty"`
	Script     string          `json:"script,omitempty"`
}

// ConversionResult is the full output of one convert run.
type ConversionResult struct {
	SourcePath string         `json:"source_path"`
	Document   TargetDocument `json:"document"`
	YAML       string         `json:"yaml"`
	Lint       *LintResult    `json:"lint,omitempty"`
}

// HistoryEntry is one persisted record of a past analysis.
type HistoryEntry struct {
	Timestamp    string    `json:"timestamp"`
	CommitHash   string    `json:"commit_hash,omitempty"`
	Readiness    Readiness `json:"readiness"`
	FeatureCount int       `json:"feature_count"`
	Tier         string    `json:"tier"`
}
