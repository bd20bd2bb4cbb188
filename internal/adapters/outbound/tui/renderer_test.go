package tui_test

import (
	"testing"

	"github.com/pipeshift/pipeshift/internal/adapters/outbound/tui"
	"github.com/pipeshift/pipeshift/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		SourcePath:       "Jenkinsfile",
		KnowledgeVersion: "2026.08",
		Profile: domain.ScanProfile{
			PipelineKind:   domain.KindScripted,
			ComplexityTier: domain.TierComplex,
			FeatureCount:   2,
			LineCount:      120,
			FeatureHits: []domain.FeatureHit{
				{Key: "maven", DisplayName: "Maven", Category: domain.CategoryBuild},
				{Key: "findbugs", DisplayName: "FindBugs", Category: domain.CategoryQuality},
			},
			Warnings: []string{"scripted pipeline detected"},
		},
		Verdicts: []domain.Verdict{
			{
				Feature:          domain.FeatureHit{Key: "maven", DisplayName: "Maven"},
				Status:           domain.StatusActive,
				TargetEquivalent: "maven image job",
				Path:             domain.MigrationPath{Complexity: domain.TierSimple, EstimatedEffort: "a few hours"},
			},
			{
				Feature: domain.FeatureHit{Key: "findbugs", DisplayName: "FindBugs"},
				Status:  domain.StatusAbandoned,
				Risks: []domain.Risk{
					{Type: domain.RiskBehaviorChange, Severity: domain.SeverityHigh, Description: "abandoned upstream"},
				},
				Path: domain.MigrationPath{Complexity: domain.TierComplex, EstimatedEffort: "multiple days"},
			},
		},
		Summary: domain.ScanSummary{
			TotalByStatus: map[domain.PluginStatus]int{domain.StatusActive: 1, domain.StatusAbandoned: 1},
			RisksByType:   map[domain.RiskTag]int{domain.RiskBehaviorChange: 1},
			Readiness:     domain.ReadinessSignificant,
		},
		Recommendations: []domain.Recommendation{
			{FeatureKey: "findbugs", Priority: domain.PriorityHigh, Title: "Replace FindBugs before migrating"},
		},
	}
}

func TestRenderReport_ContainsHeaderAndReadiness(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "pipeshift")
	assert.Contains(t, output, "significant-work-needed")
	assert.Contains(t, output, "scripted pipeline detected")
}

func TestRenderReport_ContainsVerdicts(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Maven")
	assert.Contains(t, output, "FindBugs")
	assert.Contains(t, output, "Feature verdicts")
}

func TestRenderReport_ContainsRecommendations(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Recommendations")
	assert.Contains(t, output, "Replace FindBugs before migrating")
}

func TestRenderSecrets_ContainsVariables(t *testing.T) {
	report := &domain.SecretsReport{
		Hits: []domain.CredentialHit{
			{ID: "api-token", Line: 5, Kind: domain.CredSecretText, Context: "X = credentials('api-token')"},
		},
		Specs: []domain.VariableSpec{
			{OriginalID: "api-token", ProposedKey: "API_TOKEN", Masked: true, Description: "migrated"},
		},
		Validation: domain.SpecValidation{Valid: true},
	}

	output := tui.RenderSecrets(report)
	assert.Contains(t, output, "API_TOKEN")
	assert.Contains(t, output, "masked")
	assert.Contains(t, output, "line 5")
}

func TestRenderSecrets_EmptyInventory(t *testing.T) {
	output := tui.RenderSecrets(&domain.SecretsReport{Validation: domain.SpecValidation{Valid: true}})
	assert.Contains(t, output, "no credential usage detected")
}

func TestRenderConversion_ContainsStagesAndJobs(t *testing.T) {
	result := &domain.ConversionResult{
		SourcePath: "Jenkinsfile",
		Document: domain.TargetDocument{
			Stages: []string{"build", "test"},
			Jobs: map[string]domain.JobSpec{
				"maven-build": {Stage: "build", Script: []string{"mvn package"}},
			},
			JobOrder:   []string{"maven-build"},
			Validation: domain.DocValidation{Valid: true},
		},
		YAML: "stages:\n  - build\n",
	}

	output := tui.RenderConversion(result)
	assert.Contains(t, output, "pipeshift")
	assert.Contains(t, output, "maven-build")
}
