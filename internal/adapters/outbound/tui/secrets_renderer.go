package tui

import (
	"fmt"
	"strings"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// RenderSecrets renders the credential inventory and its variable mapping.
func RenderSecrets(report *domain.SecretsReport) string {
	var b strings.Builder

	title := headerStyle.Render("pipeshift")
	subtitle := dimStyle.Render("credential inventory")
	count := fmt.Sprintf("%d call site(s) → %d variable(s)", len(report.Hits), len(report.Specs))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + titleStyle.Render(count)))
	b.WriteString("\n\n")

	if len(report.Specs) == 0 {
		b.WriteString(dimStyle.Render("no credential usage detected"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render("Proposed variables"))
	b.WriteString("\n" + separatorLine + "\n")
	for i, s := range report.Specs {
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
		flagText := ""
		if len(flags) > 0 {
			flagText = warnStyle.Render(" [" + strings.Join(flags, ",") + "]")
		}
		fmt.Fprintf(&b, "  %s%s\n", titleStyle.Render(s.ProposedKey), flagText)
		fmt.Fprintf(&b, "    %s\n", dimStyle.Render(s.Description))
		if i < len(report.Hits) {
			hit := report.Hits[i]
			fmt.Fprintf(&b, "    %s\n", faintStyle.Render(fmt.Sprintf("line %d: %s", hit.Line, hit.Context)))
		}
	}

	b.WriteString("\n")
	if report.Validation.Valid {
		b.WriteString(passStyle.Render("✓ inventory valid"))
	} else {
		b.WriteString(failStyle.Render("✗ inventory invalid"))
		for _, e := range report.Validation.Errors {
			fmt.Fprintf(&b, "\n  %s", failStyle.Render(e))
		}
	}
	for _, w := range report.Validation.Warnings {
		fmt.Fprintf(&b, "\n  %s %s", warnStyle.Render("!"), w)
	}
	b.WriteString("\n")

	return b.String()
}
