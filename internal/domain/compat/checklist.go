package compat

import (
	"fmt"
	"strings"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// Checklist renders the textual migration checklist for one analysis. The
// output is deterministic for identical inputs.
func Checklist(profile domain.ScanProfile, verdicts []domain.Verdict) string {
	var b strings.Builder

	b.WriteString("# Migration checklist\n\n")
	fmt.Fprintf(&b, "Pipeline kind: %s, complexity: %s, %d feature(s) detected.\n\n",
		profile.PipelineKind, profile.ComplexityTier, profile.FeatureCount)

	step := 0
	next := func(format string, args ...any) {
		step++
		fmt.Fprintf(&b, "%d. ", step)
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	next("Freeze changes to the source pipeline definition.")
	if profile.PipelineKind == domain.KindScripted {
		next("Rewrite scripted Groovy logic as plain shell steps; GitLab CI has no Groovy runtime.")
	}

	for _, v := range verdicts {
		switch {
		case v.TargetEquivalent != "":
			next("Map %s onto %s.", v.Feature.DisplayName, v.TargetEquivalent)
		case v.Status == domain.StatusUnknown:
			next("Investigate %s: no known target equivalent.", v.Feature.DisplayName)
		default:
			next("Port %s manually.", v.Feature.DisplayName)
		}
		for _, s := range v.Path.Steps {
			fmt.Fprintf(&b, "   - %s\n", s)
		}
	}

	next("Generate the target configuration and run it through CI lint.")
	next("Provision migrated CI/CD variables before the first pipeline run.")
	next("Run both pipelines in parallel for at least one release cycle.")

	return b.String()
}
