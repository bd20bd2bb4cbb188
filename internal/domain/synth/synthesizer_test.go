package synth_test

import (
	"testing"

	"github.com/pipeshift/pipeshift/internal/domain"
	"github.com/pipeshift/pipeshift/internal/domain/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileWith(kind domain.PipelineKind, tier domain.ComplexityTier, keys ...string) domain.ScanProfile {
	hits := make([]domain.FeatureHit, 0, len(keys))
	for _, k := range keys {
		hits = append(hits, domain.FeatureHit{Key: k, DisplayName: k})
	}
	return domain.ScanProfile{
		PipelineKind:   kind,
		FeatureHits:    hits,
		FeatureCount:   len(hits),
		ComplexityTier: tier,
	}
}

func TestSynthesize_StageSelection(t *testing.T) {
	cases := []struct {
		name  string
		kind  domain.PipelineKind
		tier  domain.ComplexityTier
		wantS []string
	}{
		{"simple", domain.KindDeclarative, domain.TierSimple, []string{"build", "test"}},
		{"medium declarative", domain.KindDeclarative, domain.TierMedium, []string{"build", "test", "quality", "deploy"}},
		{"medium scripted", domain.KindScripted, domain.TierMedium, []string{"prepare", "build", "test", "quality", "deploy"}},
		{"complex", domain.KindScripted, domain.TierComplex, []string{"prepare", "build", "test", "quality", "security", "deploy", "verify"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := synth.Synthesize(profileWith(tc.kind, tc.tier), nil, nil)
			assert.Equal(t, tc.wantS, doc.Stages)
			assert.True(t, doc.Validation.Valid, "errors: %v", doc.Validation.Errors)
		})
	}
}

func TestSynthesize_FeaturelessPipelineGetsStubJob(t *testing.T) {
	doc := synth.Synthesize(profileWith(domain.KindDeclarative, domain.TierSimple), nil, nil)

	require.Len(t, doc.JobOrder, 1)
	job := doc.Jobs["build"]
	assert.Equal(t, "build", job.Stage)
	assert.NotEmpty(t, job.Script)
	assert.True(t, doc.Validation.Valid)
}

func TestSynthesize_DockerFeature(t *testing.T) {
	doc := synth.Synthesize(profileWith(domain.KindDeclarative, domain.TierSimple, "docker"), nil, nil)

	assert.Equal(t, "docker:27", doc.DefaultImage)
	assert.Contains(t, doc.Services, "docker:27-dind")
	assert.Equal(t, "/certs", doc.Variables["DOCKER_TLS_CERTDIR"])

	job, ok := doc.Jobs["docker-build"]
	require.True(t, ok)
	assert.Equal(t, "build", job.Stage)
}

func TestSynthesize_JUnitReportsArtifact(t *testing.T) {
	doc := synth.Synthesize(profileWith(domain.KindDeclarative, domain.TierSimple, "maven", "junit"), nil, nil)

	job, ok := doc.Jobs["unit-tests"]
	require.True(t, ok)
	require.NotNil(t, job.Artifacts)
	assert.Equal(t, "**/TEST-*.xml", job.Artifacts.Reports["junit"])
	assert.Equal(t, "always", job.Artifacts.When)
}

func TestSynthesize_AbandonedFeaturesAreSkipped(t *testing.T) {
	profile := profileWith(domain.KindDeclarative, domain.TierSimple, "maven")
	verdicts := []domain.Verdict{
		{Feature: profile.FeatureHits[0], Status: domain.StatusAbandoned},
	}

	doc := synth.Synthesize(profile, verdicts, nil)

	_, ok := doc.Jobs["maven-build"]
	assert.False(t, ok, "abandoned feature must not produce jobs")
	// The stub build job keeps the document valid.
	assert.True(t, doc.Validation.Valid)
}

func TestSynthesize_InputApprovalFlipsDeployJobsToManual(t *testing.T) {
	doc := synth.Synthesize(
		profileWith(domain.KindDeclarative, domain.TierMedium, "kubernetes", "helm", "input-approval"),
		nil, nil)

	for _, name := range []string{"deploy-kubernetes", "deploy-helm"} {
		job, ok := doc.Jobs[name]
		require.True(t, ok, name)
		assert.Equal(t, "manual", job.When, name)
	}
}

func TestSynthesize_RequiredVariablesFromSpecs(t *testing.T) {
	specs := []domain.VariableSpec{
		{ProposedKey: "API_TOKEN"},
		{ProposedKey: "DEPLOY_SSH_PROD"},
	}

	doc := synth.Synthesize(profileWith(domain.KindDeclarative, domain.TierSimple), nil, specs)

	assert.Equal(t, []string{"API_TOKEN", "DEPLOY_SSH_PROD"}, doc.RequiredVariables)
}

func TestSynthesize_SharedPublishJob(t *testing.T) {
	doc := synth.Synthesize(
		profileWith(domain.KindDeclarative, domain.TierMedium, "artifactory", "nexus"),
		nil, nil)

	job, ok := doc.Jobs["publish-artifacts"]
	require.True(t, ok)
	assert.Len(t, job.Script, 2, "both publishers append to the shared job")
}

func TestSynthesize_SecurityJobsFallBackWithoutSecurityStage(t *testing.T) {
	// Simple tier has no security stage; the SAST job lands in test.
	doc := synth.Synthesize(profileWith(domain.KindDeclarative, domain.TierSimple, "checkmarx"), nil, nil)

	job, ok := doc.Jobs["sast"]
	require.True(t, ok)
	assert.Equal(t, "test", job.Stage)
	assert.True(t, doc.Validation.Valid)
}

func TestSynthesize_Deterministic(t *testing.T) {
	profile := profileWith(domain.KindScripted, domain.TierComplex,
		"docker", "maven", "junit", "sonarqube", "trivy", "kubernetes", "slack", "input-approval")

	first := synth.Synthesize(profile, nil, nil)
	second := synth.Synthesize(profile, nil, nil)

	assert.Equal(t, first, second)
}
