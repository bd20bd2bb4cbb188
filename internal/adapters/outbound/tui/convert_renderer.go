package tui

import (
	"fmt"
	"strings"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// RenderConversion renders a conversion summary: structure, self-validation
// and the remote lint result when present.
func RenderConversion(result *domain.ConversionResult) string {
	var b strings.Builder

	title := headerStyle.Render("pipeshift")
	subtitle := dimStyle.Render("generated .gitlab-ci.yml")
	shape := fmt.Sprintf("%d stage(s) · %d job(s)", len(result.Document.Stages), len(result.Document.Jobs))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + titleStyle.Render(shape)))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Stages"))
	b.WriteString("\n" + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s\n\n", strings.Join(result.Document.Stages, dimStyle.Render(" → ")))

	b.WriteString(titleStyle.Render("Jobs"))
	b.WriteString("\n" + separatorLine + "\n")
	for _, name := range result.Document.JobOrder {
		job := result.Document.Jobs[name]
		fmt.Fprintf(&b, "  %-24s %s\n", titleStyle.Render(name), dimStyle.Render(job.Stage))
	}

	b.WriteString("\n")
	if result.Document.Validation.Valid {
		b.WriteString(passStyle.Render("✓ structural validation passed"))
	} else {
		b.WriteString(failStyle.Render("✗ structural validation failed"))
		for _, e := range result.Document.Validation.Errors {
			fmt.Fprintf(&b, "\n  %s", failStyle.Render(e))
		}
	}
	b.WriteString("\n")

	if result.Lint != nil {
		switch {
		case result.Lint.Status == domain.CollaboratorDegraded:
			fmt.Fprintf(&b, "%s %s\n", warnStyle.Render("! lint degraded:"), result.Lint.Note)
		case result.Lint.Valid:
			b.WriteString(passStyle.Render("✓ remote lint passed"))
			b.WriteString("\n")
		default:
			b.WriteString(failStyle.Render("✗ remote lint failed"))
			for _, e := range result.Lint.Errors {
				fmt.Fprintf(&b, "\n  %s", failStyle.Render(e))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
