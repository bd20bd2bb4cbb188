package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func readinessStyle(r domain.Readiness) lipgloss.Style {
	switch r {
	case domain.ReadinessReady:
		return passStyle
	case domain.ReadinessPreparation:
		return warnStyle
	default:
		return failStyle
	}
}

func statusStyle(s domain.PluginStatus) lipgloss.Style {
	switch s {
	case domain.StatusActive:
		return passStyle
	case domain.StatusMaintenance, domain.StatusUnknown:
		return warnStyle
	default:
		return failStyle
	}
}

func severityStyle(s domain.RiskSeverity) lipgloss.Style {
	switch s {
	case domain.SeverityLow:
		return dimStyle
	case domain.SeverityMedium:
		return warnStyle
	default:
		return failStyle
	}
}
