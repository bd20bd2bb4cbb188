package synth

import (
	"fmt"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// ValidateDocument runs the structural self-check: stages present, at least
// one job, every job bound to a chosen stage, job order consistent with the
// job map. It never executes anything.
func ValidateDocument(doc domain.TargetDocument) domain.DocValidation {
	var errs []string

	if len(doc.Stages) == 0 {
		errs = append(errs, "document has no stages")
	}
	if len(doc.Jobs) == 0 {
		errs = append(errs, "document has no jobs")
	}

	stageSet := make(map[string]bool, len(doc.Stages))
	for _, s := range doc.Stages {
		if stageSet[s] {
			errs = append(errs, fmt.Sprintf("duplicate stage %q", s))
		}
		stageSet[s] = true
	}

	for _, name := range doc.JobOrder {
		job, ok := doc.Jobs[name]
		if !ok {
			errs = append(errs, fmt.Sprintf("job order references unknown job %q", name))
			continue
		}
		if !stageSet[job.Stage] {
			errs = append(errs, fmt.Sprintf("job %q references stage %q which is not declared", name, job.Stage))
		}
		if len(job.Script) == 0 {
			errs = append(errs, fmt.Sprintf("job %q has an empty script", name))
		}
	}
	if len(doc.JobOrder) != len(doc.Jobs) {
		errs = append(errs, "job order does not cover every job")
	}

	return domain.DocValidation{Valid: len(errs) == 0, Errors: errs}
}
