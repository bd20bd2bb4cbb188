package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// RenderReport renders an analysis report for the terminal.
func RenderReport(report *domain.AnalysisReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("pipeshift")
	subtitle := dimStyle.Render("Jenkins → GitLab CI migration analysis")
	readiness := lipgloss.NewStyle().
		Bold(true).
		Foreground(readinessStyle(report.Summary.Readiness).GetForeground()).
		Render(string(report.Summary.Readiness))
	meta := fmt.Sprintf("%s pipeline · %s · %d features · %d lines",
		report.Profile.PipelineKind, report.Profile.ComplexityTier,
		report.Profile.FeatureCount, report.Profile.LineCount)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + readiness + "\n" + dimStyle.Render(meta)))
	b.WriteString("\n\n")

	// ── Warnings ──
	for _, w := range report.Profile.Warnings {
		fmt.Fprintf(&b, "%s %s\n", warnStyle.Render("!"), w)
	}
	if len(report.Profile.Warnings) > 0 {
		b.WriteString("\n")
	}

	// ── Verdicts ──
	b.WriteString(titleStyle.Render("Feature verdicts"))
	b.WriteString("\n" + separatorLine + "\n")
	for _, v := range report.Verdicts {
		renderVerdict(&b, v)
	}

	// ── Recommendations ──
	if len(report.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Recommendations"))
		b.WriteString("\n" + separatorLine + "\n")
		for _, r := range report.Recommendations {
			prio := severityStyleForPriority(r.Priority).Render(strings.ToUpper(string(r.Priority)))
			fmt.Fprintf(&b, "  %-18s %s\n", prio, r.Title)
			fmt.Fprintf(&b, "  %s\n", dimStyle.Render(r.Detail))
		}
	}

	// ── Advisory ──
	if report.Advisory != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Advisory"))
		b.WriteString("\n" + separatorLine + "\n")
		if report.Advisory.Status == domain.CollaboratorDegraded {
			fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("degraded:"), report.Advisory.Note)
		} else {
			fmt.Fprintf(&b, "%s\n", report.Advisory.Text)
		}
	}

	// ── Footer ──
	b.WriteString("\n")
	footer := fmt.Sprintf("catalog %s", report.KnowledgeVersion)
	if report.CommitHash != "" {
		footer += fmt.Sprintf(" · commit %.8s", report.CommitHash)
	}
	b.WriteString(faintStyle.Render(footer))
	b.WriteString("\n")

	return b.String()
}

func renderVerdict(b *strings.Builder, v domain.Verdict) {
	status := statusStyle(v.Status).Render(fmt.Sprintf("%-11s", v.Status))
	fmt.Fprintf(b, "  %s %s\n", status, v.Feature.DisplayName)
	if v.TargetEquivalent != "" {
		fmt.Fprintf(b, "              %s %s\n", dimStyle.Render("→"), v.TargetEquivalent)
	}
	for _, r := range v.Risks {
		sev := severityStyle(r.Severity).Render(string(r.Severity))
		fmt.Fprintf(b, "              %s %s\n", sev, dimStyle.Render(r.Description))
	}
}

func severityStyleForPriority(p domain.RecommendationPriority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return failStyle
	case domain.PriorityMedium:
		return warnStyle
	default:
		return dimStyle
	}
}
