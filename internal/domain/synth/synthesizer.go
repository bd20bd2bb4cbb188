// Package synth deterministically builds a GitLab CI configuration from a
// scan profile and its verdicts. The document is assembled structurally so
// stage and job invariants hold before any text is emitted.
package synth

import "github.com/pipeshift/pipeshift/internal/domain"

// Synthesize builds the target document. It is a pure function of its inputs:
// identical arguments always produce an identical document. Features whose
// verdict is abandoned are skipped; they must be replaced, not transplanted.
func Synthesize(profile domain.ScanProfile, verdicts []domain.Verdict, specs []domain.VariableSpec) domain.TargetDocument {
	b := newBuilder(stagesFor(profile.ComplexityTier, profile.PipelineKind))

	present := make(map[string]bool, len(profile.FeatureHits))
	for _, h := range profile.FeatureHits {
		present[h.Key] = true
	}
	for _, v := range verdicts {
		if v.Status == domain.StatusAbandoned {
			delete(present, v.Feature.Key)
		}
	}

	for _, m := range jobMutators {
		if present[m.key] {
			m.apply(b)
		}
	}

	// A document with no jobs is invalid; fall back to a stub build job so
	// even a feature-free pipeline converts to something runnable.
	if len(b.order) == 0 {
		b.appendScript("build", b.stageOr("build"), "echo 'add your build commands here'")
	}

	doc := b.finalize()
	for _, s := range specs {
		doc.RequiredVariables = append(doc.RequiredVariables, s.ProposedKey)
	}
	doc.Validation = ValidateDocument(doc)
	return doc
}
