package secrets_test

import (
	"strings"
	"testing"

	"github.com/pipeshift/pipeshift/internal/domain"
	"github.com/pipeshift/pipeshift/internal/domain/secrets"
	"github.com/stretchr/testify/assert"
)

var renderSpecs = []domain.VariableSpec{
	{
		OriginalID:  "api-token",
		ProposedKey: "API_TOKEN",
		Type:        domain.VarTypeVariable,
		Masked:      true,
		Description: "Migrated from Jenkins secret text credential \"api-token\" (line 5)",
	},
	{
		OriginalID:  "signing-keystore",
		ProposedKey: "SIGNING_KEYSTORE",
		Type:        domain.VarTypeFile,
		Protected:   true,
	},
}

func TestRenderEnvFile(t *testing.T) {
	out := secrets.RenderEnvFile(renderSpecs)

	assert.Contains(t, out, "API_TOKEN=\n")
	assert.Contains(t, out, "SIGNING_KEYSTORE=\n")
	assert.Contains(t, out, "# flags: masked")
	assert.Contains(t, out, "# flags: file, protected")
	assert.Contains(t, out, "credential \"api-token\"")
	// Placeholders only: no value must ever follow the equals sign.
	for _, line := range strings.Split(out, "\n") {
		if idx := strings.Index(line, "="); idx >= 0 && !strings.HasPrefix(line, "#") {
			assert.Equal(t, len(line)-1, idx, "line %q carries a value", line)
		}
	}
}

func TestRenderProvisionScript(t *testing.T) {
	out := secrets.RenderProvisionScript(renderSpecs)

	assert.True(t, strings.HasPrefix(out, "#!/usr/bin/env bash"))
	assert.Contains(t, out, "set -euo pipefail")
	assert.Contains(t, out, `"${GITLAB_URL}/api/v4/projects/${GITLAB_PROJECT_ID}/variables"`)
	assert.Contains(t, out, `--form "key=API_TOKEN"`)
	assert.Contains(t, out, `--form "value=${API_TOKEN_VALUE:?set API_TOKEN_VALUE}"`)
	assert.Contains(t, out, `--form "variable_type=env_var"`)
	assert.Contains(t, out, `--form "variable_type=file"`)
	assert.Contains(t, out, `--form "masked=true"`)
	assert.Contains(t, out, `--form "protected=true"`)
}

func TestRenderEnvFile_EmptyInventory(t *testing.T) {
	out := secrets.RenderEnvFile(nil)

	assert.Contains(t, out, "# CI/CD variables migrated from Jenkins credentials.")
	assert.NotContains(t, out, "=")
}
