package cli_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pipeshift/pipeshift/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "../../../../testdata"

const tinyPipeline = "pipeline {\n  stages {\n    stage('Build') { steps { sh 'make' } }\n  }\n}\n"

func fixture(name string) string {
	return filepath.Join(testdataDir, name, "Jenkinsfile")
}

// cleanupHistory removes the analysis history the analyze command writes next
// to the fixture.
func cleanupHistory(t *testing.T, name string) {
	t.Cleanup(func() {
		_ = os.RemoveAll(filepath.Join(testdataDir, name, ".pipeshift"))
	})
}

// writeProject lays out a pipeline definition and a project config in a
// fresh directory and returns the pipeline path.
func writeProject(t *testing.T, pipeline, cfg string) string {
	t.Helper()
	dir := t.TempDir()
	source := filepath.Join(dir, "Jenkinsfile")
	require.NoError(t, os.WriteFile(source, []byte(pipeline), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pipeshift.yaml"), []byte(cfg), 0644))
	return source
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	cleanupHistory(t, "declarative-medium")
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"analyze", fixture("declarative-medium"), "--json"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), `"pipeline_kind": "declarative"`)
	assert.Contains(t, buf.String(), `"complexity_tier": "medium"`)
	assert.Contains(t, buf.String(), `"verdicts"`)
	assert.Contains(t, buf.String(), `"migration_readiness"`)
}

func TestAnalyzeCommand_Checklist(t *testing.T) {
	cleanupHistory(t, "scripted-complex")
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"analyze", fixture("scripted-complex"), "--checklist"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "# Migration checklist")
	assert.Contains(t, buf.String(), "Rewrite scripted Groovy logic")
}

func TestAnalyzeCommand_DefaultTUI(t *testing.T) {
	cleanupHistory(t, "declarative-medium")
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"analyze", fixture("declarative-medium")})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "pipeshift")
	assert.Contains(t, buf.String(), "Feature verdicts")
}

func TestAnalyzeCommand_CIPassesOnReadyPipeline(t *testing.T) {
	cleanupHistory(t, "declarative-simple")
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", fixture("declarative-simple"), "--ci"})
	assert.NoError(t, cmd.Execute())
}

func TestAnalyzeCommand_CIFailsOnRiskyPipeline(t *testing.T) {
	cleanupHistory(t, "scripted-complex")
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", fixture("scripted-complex"), "--ci"})
	assert.Error(t, cmd.Execute())
}

func TestAnalyzeCommand_CIGateLowered(t *testing.T) {
	cleanupHistory(t, "scripted-complex")
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", fixture("scripted-complex"), "--ci", "--min-readiness", "significant-work-needed"})
	assert.NoError(t, cmd.Execute())
}

func TestAnalyzeCommand_CIRejectsBogusGate(t *testing.T) {
	cleanupHistory(t, "declarative-simple")
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", fixture("declarative-simple"), "--ci", "--min-readiness", "perfect"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min-readiness")
}

func TestAnalyzeCommand_AdvisorEndpointFromProjectConfig(t *testing.T) {
	t.Setenv("PIPESHIFT_ADVISOR_URL", "")
	t.Setenv("PIPESHIFT_ADVISOR_TOKEN", "")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer file-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"text": "briefing from file config"}`)
	}))
	defer srv.Close()

	source := writeProject(t, tinyPipeline,
		fmt.Sprintf("advisor:\n  endpoint: %s\n  token: file-token\n", srv.URL))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"analyze", source, "--advisor", "--json"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "briefing from file config")
}

func TestAnalyzeCommand_MissingFile(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", filepath.Join(t.TempDir(), "Jenkinsfile")})
	assert.Error(t, cmd.Execute())
}
