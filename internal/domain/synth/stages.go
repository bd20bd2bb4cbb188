package synth

import "github.com/pipeshift/pipeshift/internal/domain"

// canonicalStages is the full stage vocabulary in emission order. Every
// selected stage list is a subsequence of it, so stage order never varies.
var canonicalStages = []string{
	"prepare", "build", "test", "quality", "security", "deploy", "verify",
}

// stagesFor picks the stage list for a (tier, kind) pair. Simple pipelines
// get the two-stage minimum; complex ones the full seven.
func stagesFor(tier domain.ComplexityTier, kind domain.PipelineKind) []string {
	switch tier {
	case domain.TierComplex:
		return pick("prepare", "build", "test", "quality", "security", "deploy", "verify")
	case domain.TierMedium:
		if kind == domain.KindScripted {
			return pick("prepare", "build", "test", "quality", "deploy")
		}
		return pick("build", "test", "quality", "deploy")
	default:
		return pick("build", "test")
	}
}

// pick returns the named stages in canonical order, duplicates dropped.
func pick(names ...string) []string {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []string
	for _, s := range canonicalStages {
		if want[s] {
			out = append(out, s)
		}
	}
	return out
}
