package compat

import (
	"fmt"
	"sort"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// Recommendations derives prioritized migration suggestions from the detected
// features. Features whose verdict is deprecated/abandoned or carries a
// high/critical risk become high priority; high-priority items sort first,
// ties keep input order.
func Recommendations(kb *KnowledgeBase, hits []domain.FeatureHit) []domain.Recommendation {
	var recs []domain.Recommendation

	for _, hit := range hits {
		v := Analyze(kb, hit)
		if rec, ok := recommend(v); ok {
			recs = append(recs, rec)
		}
	}

	rank := map[domain.RecommendationPriority]int{
		domain.PriorityHigh:   0,
		domain.PriorityMedium: 1,
		domain.PriorityLow:    2,
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return rank[recs[i].Priority] < rank[recs[j].Priority]
	})
	return recs
}

func recommend(v domain.Verdict) (domain.Recommendation, bool) {
	rec := domain.Recommendation{
		FeatureKey: v.Feature.Key,
		Priority:   priorityFor(v),
	}

	switch {
	case v.Status == domain.StatusAbandoned:
		rec.Title = fmt.Sprintf("Replace %s before migrating", v.Feature.DisplayName)
		rec.Detail = detailWithTarget(v, "the plugin is abandoned upstream and will not be carried over")
	case v.Status == domain.StatusDeprecated:
		rec.Title = fmt.Sprintf("Plan the retirement of %s", v.Feature.DisplayName)
		rec.Detail = detailWithTarget(v, "the plugin is deprecated; migrate its duties now rather than after cut-over")
	case v.Status == domain.StatusUnknown:
		rec.Title = fmt.Sprintf("Verify %s manually", v.Feature.DisplayName)
		rec.Detail = "no compatibility data exists for this feature; confirm its role and target mapping by hand"
	case len(v.Risks) > 0:
		rec.Title = fmt.Sprintf("Review the migration risks of %s", v.Feature.DisplayName)
		rec.Detail = detailWithTarget(v, fmt.Sprintf("%d risk(s) flagged for this feature", len(v.Risks)))
	case v.TargetEquivalent != "":
		rec.Title = fmt.Sprintf("Adopt %s", v.TargetEquivalent)
		rec.Detail = fmt.Sprintf("%s maps directly onto %s", v.Feature.DisplayName, v.TargetEquivalent)
	default:
		// Active, riskless, no mapping to mention: nothing to recommend.
		return domain.Recommendation{}, false
	}

	return rec, true
}

func priorityFor(v domain.Verdict) domain.RecommendationPriority {
	if v.Status == domain.StatusDeprecated || v.Status == domain.StatusAbandoned {
		return domain.PriorityHigh
	}
	for _, r := range v.Risks {
		if r.Severity == domain.SeverityHigh || r.Severity == domain.SeverityCritical {
			return domain.PriorityHigh
		}
	}
	if v.Status == domain.StatusUnknown || len(v.Risks) > 0 {
		return domain.PriorityMedium
	}
	return domain.PriorityLow
}

func detailWithTarget(v domain.Verdict, base string) string {
	if v.TargetEquivalent != "" {
		return fmt.Sprintf("%s; use %s instead", base, v.TargetEquivalent)
	}
	if len(v.Alternatives) > 0 {
		return fmt.Sprintf("%s; consider %s", base, v.Alternatives[0])
	}
	return base
}
