package application_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pipeshift/pipeshift/internal/adapters/outbound/config"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/gitinfo"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/history"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/knowledge"
	"github.com/pipeshift/pipeshift/internal/application"
	"github.com/pipeshift/pipeshift/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mediumPipeline = `pipeline {
    agent any
    environment {
        API_TOKEN = credentials('API_TOKEN')
    }
    stages {
        stage('Build') {
            steps { sh 'mvn -B package' }
        }
        stage('Test') {
            steps { junit '**/TEST-*.xml' }
        }
    }
    post {
        always { slackSend channel: '#ci' }
    }
}
`

func writePipeline(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Jenkinsfile")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newAnalyzeService(adv domain.Advisor) *application.AnalyzeService {
	return application.NewAnalyzeService(
		knowledge.New(),
		config.New(),
		gitinfo.New(),
		history.New(),
		adv,
	)
}

func TestAnalyzeService_FullReport(t *testing.T) {
	path := writePipeline(t, mediumPipeline)

	report, err := newAnalyzeService(nil).Analyze(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, report.SourcePath)
	assert.NotEmpty(t, report.KnowledgeVersion)
	assert.Equal(t, domain.KindDeclarative, report.Profile.PipelineKind)
	assert.Len(t, report.Verdicts, report.Profile.FeatureCount)
	assert.NotEmpty(t, report.Summary.TotalByStatus)
	assert.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Checklist, "# Migration checklist")
	assert.Nil(t, report.Advisory)
	assert.Empty(t, report.CommitHash, "temp dir is not a git repo")
}

func TestAnalyzeService_RecordsHistory(t *testing.T) {
	path := writePipeline(t, mediumPipeline)
	svc := newAnalyzeService(nil)

	_, err := svc.Analyze(context.Background(), path)
	require.NoError(t, err)
	_, err = svc.Analyze(context.Background(), path)
	require.NoError(t, err)

	entries, err := history.New().Load(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].Timestamp)
	assert.NotEmpty(t, entries[0].Readiness)
}

func TestAnalyzeService_MissingFile(t *testing.T) {
	_, err := newAnalyzeService(nil).Analyze(context.Background(), filepath.Join(t.TempDir(), "Jenkinsfile"))
	assert.Error(t, err)
}

func TestAnalyzeService_InputSizeCap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Jenkinsfile")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 100)), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pipeshift.yaml"), []byte("max_input_bytes: 10\n"), 0644))

	_, err := newAnalyzeService(nil).Analyze(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte cap")
}

type stubAdvisor struct {
	advisory domain.Advisory
}

func (s stubAdvisor) Advise(_ context.Context, _ *domain.AnalysisReport) domain.Advisory {
	return s.advisory
}

func TestAnalyzeService_AttachesAdvisory(t *testing.T) {
	path := writePipeline(t, mediumPipeline)
	adv := stubAdvisor{advisory: domain.Advisory{Status: domain.CollaboratorOK, Text: "brief"}}

	report, err := newAnalyzeService(adv).Analyze(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, report.Advisory)
	assert.Equal(t, "brief", report.Advisory.Text)
}
