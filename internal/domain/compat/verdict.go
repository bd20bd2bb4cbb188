package compat

import (
	"fmt"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// Compatibility is the knowledge-entry subset attached to a verdict.
type Compatibility struct {
	Status           domain.PluginStatus `json:"status"`
	TargetEquivalent string              `json:"target_equivalent,omitempty"`
	Alternatives     []string            `json:"alternatives,omitempty"`
	RiskTags         []domain.RiskTag    `json:"risk_tags,omitempty"`
	Notes            string              `json:"notes,omitempty"`
}

// Assess resolves the compatibility record for one detected feature.
func Assess(kb *KnowledgeBase, feature domain.FeatureHit) Compatibility {
	e := kb.Lookup(feature.Key)
	return Compatibility{
		Status:           e.Status,
		TargetEquivalent: e.TargetEquivalent,
		Alternatives:     e.Alternatives,
		RiskTags:         e.RiskTags,
		Notes:            e.Notes,
	}
}

// Analyze produces the full verdict for one detected feature: compatibility,
// derived risks and a migration path.
func Analyze(kb *KnowledgeBase, feature domain.FeatureHit) domain.Verdict {
	c := Assess(kb, feature)
	risks := deriveRisks(feature, c)
	return domain.Verdict{
		Feature:          feature,
		Status:           c.Status,
		TargetEquivalent: c.TargetEquivalent,
		Alternatives:     c.Alternatives,
		Risks:            risks,
		Path:             derivePath(feature, c, risks),
	}
}

// AnalyzeAll runs Analyze over every hit, preserving input order.
func AnalyzeAll(kb *KnowledgeBase, hits []domain.FeatureHit) []domain.Verdict {
	verdicts := make([]domain.Verdict, 0, len(hits))
	for _, h := range hits {
		verdicts = append(verdicts, Analyze(kb, h))
	}
	return verdicts
}

// severityForTag grades risk tags from the knowledge base.
var severityForTag = map[domain.RiskTag]domain.RiskSeverity{
	domain.RiskSecurity:       domain.SeverityHigh,
	domain.RiskLicensing:      domain.SeverityMedium,
	domain.RiskBehaviorChange: domain.SeverityMedium,
	domain.RiskPerformance:    domain.SeverityLow,
}

// deriveRisks expands risk tags into concrete risks. A feature in the
// security category always carries at least one security risk, even when its
// knowledge entry has no explicit tag.
func deriveRisks(feature domain.FeatureHit, c Compatibility) []domain.Risk {
	var risks []domain.Risk
	hasSecurity := false

	for _, tag := range c.RiskTags {
		if tag == domain.RiskNone {
			continue
		}
		if tag == domain.RiskSecurity {
			hasSecurity = true
		}
		risks = append(risks, domain.Risk{
			Type:        tag,
			Severity:    severityForTag[tag],
			Description: fmt.Sprintf("%s: %s risk flagged in the compatibility catalog", feature.DisplayName, tag),
		})
	}

	if feature.Category == domain.CategorySecurity && !hasSecurity {
		risks = append(risks, domain.Risk{
			Type:        domain.RiskSecurity,
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("%s is part of the security toolchain; its replacement must be validated before cut-over", feature.DisplayName),
		})
	}

	switch c.Status {
	case domain.StatusAbandoned:
		risks = append(risks, domain.Risk{
			Type:        domain.RiskBehaviorChange,
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("%s is abandoned upstream; behavior of any replacement will differ", feature.DisplayName),
		})
	case domain.StatusDeprecated:
		risks = append(risks, domain.Risk{
			Type:        domain.RiskBehaviorChange,
			Severity:    domain.SeverityMedium,
			Description: fmt.Sprintf("%s is deprecated upstream; migrate before it stops receiving fixes", feature.DisplayName),
		})
	}

	return risks
}

// derivePath builds the migration path. Deprecated and abandoned features
// always get at least one step.
func derivePath(feature domain.FeatureHit, c Compatibility, risks []domain.Risk) domain.MigrationPath {
	var steps []string

	if c.TargetEquivalent != "" {
		steps = append(steps, fmt.Sprintf("replace %s with %s", feature.DisplayName, c.TargetEquivalent))
	}
	for _, alt := range c.Alternatives {
		steps = append(steps, fmt.Sprintf("evaluate %s as an alternative", alt))
	}

	switch c.Status {
	case domain.StatusDeprecated, domain.StatusAbandoned:
		steps = append(steps, fmt.Sprintf("audit existing usage of %s and remove it from the source pipeline first", feature.DisplayName))
	case domain.StatusUnknown:
		steps = append(steps, fmt.Sprintf("manually verify how %s maps onto the target platform", feature.DisplayName))
	}

	complexity := pathComplexity(c.Status, risks)
	return domain.MigrationPath{
		Complexity:      complexity,
		Steps:           steps,
		EstimatedEffort: effortFor(complexity),
	}
}

func pathComplexity(status domain.PluginStatus, risks []domain.Risk) domain.ComplexityTier {
	switch status {
	case domain.StatusAbandoned:
		return domain.TierComplex
	case domain.StatusDeprecated, domain.StatusUnknown:
		return domain.TierMedium
	}
	for _, r := range risks {
		if r.Severity == domain.SeverityHigh || r.Severity == domain.SeverityCritical {
			return domain.TierMedium
		}
	}
	return domain.TierSimple
}

func effortFor(c domain.ComplexityTier) string {
	switch c {
	case domain.TierComplex:
		return "multiple days"
	case domain.TierMedium:
		return "about a day"
	default:
		return "a few hours"
	}
}
