package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pipeshift/pipeshift/internal/adapters/outbound/config"
	"github.com/pipeshift/pipeshift/internal/application"
	"github.com/pipeshift/pipeshift/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretsService_FullReport(t *testing.T) {
	path := writePipeline(t, mediumPipeline)

	report, err := application.NewSecretsService(config.New()).ExtractSecrets(path)
	require.NoError(t, err)

	assert.Equal(t, path, report.SourcePath)
	require.Len(t, report.Hits, 1)
	assert.Equal(t, "API_TOKEN", report.Hits[0].ID)

	require.Len(t, report.Specs, 1)
	assert.Equal(t, "API_TOKEN", report.Specs[0].ProposedKey)
	assert.True(t, report.Specs[0].Masked)

	assert.True(t, report.Validation.Valid)
	assert.Contains(t, report.EnvFile, "API_TOKEN=")
	assert.Contains(t, report.Script, `--form "key=API_TOKEN"`)
}

func TestSecretsService_ConfiguredProtectedTokens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Jenkinsfile")
	require.NoError(t, os.WriteFile(path, []byte("X = credentials('canary-token')\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pipeshift.yaml"),
		[]byte("protected_tokens: [canary]\n"), 0644))

	report, err := application.NewSecretsService(config.New()).ExtractSecrets(path)
	require.NoError(t, err)

	require.Len(t, report.Specs, 1)
	assert.True(t, report.Specs[0].Protected)
}

func TestSecretsService_NoCredentials(t *testing.T) {
	path := writePipeline(t, "pipeline {\n  agent any\n}\n")

	report, err := application.NewSecretsService(config.New()).ExtractSecrets(path)
	require.NoError(t, err)

	assert.Empty(t, report.Hits)
	assert.Empty(t, report.Specs)
	assert.True(t, report.Validation.Valid)
}

func TestSecretsService_MissingFile(t *testing.T) {
	_, err := application.NewSecretsService(config.New()).ExtractSecrets(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

var _ domain.ConfigLoader = (*config.YAMLLoader)(nil)
