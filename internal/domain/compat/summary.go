package compat

import "github.com/pipeshift/pipeshift/internal/domain"

// Summarize aggregates a verdict list into counts and an overall readiness
// classification.
func Summarize(verdicts []domain.Verdict) domain.ScanSummary {
	s := domain.ScanSummary{
		TotalByStatus: make(map[domain.PluginStatus]int),
		RisksByType:   make(map[domain.RiskTag]int),
	}

	for _, v := range verdicts {
		s.TotalByStatus[v.Status]++
		for _, r := range v.Risks {
			s.RisksByType[r.Type]++
		}
	}

	s.Readiness = classifyReadiness(verdicts)
	return s
}

// classifyReadiness: ready when nothing is deprecated, abandoned or carries a
// high/critical risk. Abandoned features or critical risks (or a pile of
// lesser blockers) mean significant work; anything in between needs
// preparation.
func classifyReadiness(verdicts []domain.Verdict) domain.Readiness {
	var abandoned, deprecated, high, critical int
	for _, v := range verdicts {
		switch v.Status {
		case domain.StatusAbandoned:
			abandoned++
		case domain.StatusDeprecated:
			deprecated++
		}
		for _, r := range v.Risks {
			switch r.Severity {
			case domain.SeverityHigh:
				high++
			case domain.SeverityCritical:
				critical++
			}
		}
	}

	if abandoned == 0 && deprecated == 0 && high == 0 && critical == 0 {
		return domain.ReadinessReady
	}
	if abandoned > 0 || critical > 0 || deprecated+high > 2 {
		return domain.ReadinessSignificant
	}
	return domain.ReadinessPreparation
}
