package secrets

import (
	"fmt"
	"strings"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// RenderEnvFile emits a dotenv-style key/value list for the mapped inventory.
// Values are placeholders: the actual secret values never leave the source
// credential store.
func RenderEnvFile(specs []domain.VariableSpec) string {
	var b strings.Builder
	b.WriteString("# CI/CD variables migrated from Jenkins credentials.\n")
	b.WriteString("# Fill in each value before importing; values are not exported by the analyzer.\n")

	for _, s := range specs {
		b.WriteByte('\n')
		if s.Description != "" {
			fmt.Fprintf(&b, "# %s\n", s.Description)
		}
		var flags []string
		if s.Type == domain.VarTypeFile {
			flags = append(flags, "file")
		}
		if s.Masked {
			flags = append(flags, "masked")
		}
		if s.Protected {
			flags = append(flags, "protected")
		}
		if len(flags) > 0 {
			fmt.Fprintf(&b, "# flags: %s\n", strings.Join(flags, ", "))
		}
		fmt.Fprintf(&b, "%s=\n", s.ProposedKey)
	}

	return b.String()
}

// RenderProvisionScript emits a shell script that provisions the inventory as
// project CI/CD variables through the target platform's API.
func RenderProvisionScript(specs []domain.VariableSpec) string {
	var b strings.Builder
	b.WriteString("#!/usr/bin/env bash\n")
	b.WriteString("# Provisions migrated CI/CD variables on a GitLab project.\n")
	b.WriteString("# Requires: GITLAB_URL, GITLAB_PROJECT_ID, GITLAB_TOKEN and one *_VALUE per variable.\n")
	b.WriteString("set -euo pipefail\n\n")
	b.WriteString(": \"${GITLAB_URL:?set GITLAB_URL, e.g. https://gitlab.example.com}\"\n")
	b.WriteString(": \"${GITLAB_PROJECT_ID:?set GITLAB_PROJECT_ID}\"\n")
	b.WriteString(": \"${GITLAB_TOKEN:?set GITLAB_TOKEN}\"\n")

	for _, s := range specs {
		b.WriteByte('\n')
		if s.Description != "" {
			fmt.Fprintf(&b, "# %s\n", s.Description)
		}
		fmt.Fprintf(&b, "curl --silent --fail --request POST \\\n")
		fmt.Fprintf(&b, "  --header \"PRIVATE-TOKEN: ${GITLAB_TOKEN}\" \\\n")
		fmt.Fprintf(&b, "  \"${GITLAB_URL}/api/v4/projects/${GITLAB_PROJECT_ID}/variables\" \\\n")
		fmt.Fprintf(&b, "  --form \"key=%s\" \\\n", s.ProposedKey)
		fmt.Fprintf(&b, "  --form \"value=${%s_VALUE:?set %s_VALUE}\" \\\n", s.ProposedKey, s.ProposedKey)
		fmt.Fprintf(&b, "  --form \"variable_type=%s\" \\\n", apiVariableType(s.Type))
		fmt.Fprintf(&b, "  --form \"masked=%t\" \\\n", s.Masked)
		fmt.Fprintf(&b, "  --form \"protected=%t\"\n", s.Protected)
	}

	return b.String()
}

func apiVariableType(t domain.VariableType) string {
	if t == domain.VarTypeFile {
		return "file"
	}
	return "env_var"
}
