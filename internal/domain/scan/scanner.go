// Package scan turns raw Jenkins pipeline text into a structural profile:
// pipeline kind, detected feature keys, complexity tier and warnings. It is a
// pure function of the input text and never fails; malformed input simply
// yields fewer hits.
package scan

import (
	"strings"

	"github.com/pipeshift/pipeshift/internal/domain"
)

const (
	// WarnScripted flags scripted pipelines, which have no one-to-one
	// mapping onto the target platform's declarative format.
	WarnScripted = "scripted pipeline detected: Groovy logic has no direct GitLab CI equivalent and must be rewritten as shell steps"
	// WarnManyFeatures flags pipelines with an unusually wide plugin surface.
	WarnManyFeatures = "more than 15 plugin integrations detected: plan the migration in phases"
)

const manyFeaturesThreshold = 15

// Scan analyzes raw pipeline text and produces its profile.
func Scan(text string) domain.ScanProfile {
	kind := detectKind(text)
	hits := detectFeatures(text)
	lines := strings.Count(text, "\n") + 1

	profile := domain.ScanProfile{
		PipelineKind:   kind,
		FeatureHits:    hits,
		FeatureCount:   len(hits),
		LineCount:      lines,
		ComplexityTier: deriveTier(kind, len(hits), lines),
	}

	if kind == domain.KindScripted {
		profile.Warnings = append(profile.Warnings, WarnScripted)
	}
	if len(hits) > manyFeaturesThreshold {
		profile.Warnings = append(profile.Warnings, WarnManyFeatures)
	}

	return profile
}

// detectKind classifies the root construct. When both markers are present the
// pipeline is treated as scripted: scripted dominates for tiering.
func detectKind(text string) domain.PipelineKind {
	scripted := scriptedRoot.MatchString(text)
	declarative := declarativeRoot.MatchString(text)
	switch {
	case scripted:
		return domain.KindScripted
	case declarative:
		return domain.KindDeclarative
	default:
		return domain.KindUnknown
	}
}

// detectFeatures matches the ordered pattern table against the full text.
// Each key is recorded at most once, in table order.
func detectFeatures(text string) []domain.FeatureHit {
	var hits []domain.FeatureHit
	seen := make(map[string]bool, len(featurePatterns))
	for _, p := range featurePatterns {
		if seen[p.key] || !p.re.MatchString(text) {
			continue
		}
		seen[p.key] = true
		hits = append(hits, domain.FeatureHit{
			Key:         p.key,
			DisplayName: p.displayName,
			Category:    p.category,
		})
	}
	return hits
}

// deriveTier applies the tier rules in order; the tier only ever rises.
func deriveTier(kind domain.PipelineKind, features, lines int) domain.ComplexityTier {
	tier := domain.TierSimple

	if kind == domain.KindScripted {
		tier = domain.MaxTier(tier, domain.TierMedium)
	}

	switch {
	case features > 10, kind == domain.KindScripted && features > 5:
		tier = domain.MaxTier(tier, domain.TierComplex)
	case features > 5:
		tier = domain.MaxTier(tier, domain.TierMedium)
	}

	if lines > 100 && tier == domain.TierSimple {
		tier = domain.TierMedium
	}
	if lines > 200 || (lines > 100 && features > 8) {
		tier = domain.MaxTier(tier, domain.TierComplex)
	}

	return tier
}
