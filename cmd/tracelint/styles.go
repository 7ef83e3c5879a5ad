package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tracelint/tracelint/internal/issue"
)

var (
	colorError      = lipgloss.Color("#EF4444") // Red
	colorWarning    = lipgloss.Color("#F59E0B") // Amber
	colorSuggestion = lipgloss.Color("#60A5FA") // Blue
	colorOK         = lipgloss.Color("#10B981") // Green
	colorMuted      = lipgloss.Color("#6B7280") // Gray

	titleStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	okStyle = lipgloss.NewStyle().Foreground(colorOK).Bold(true)

	severityStyles = map[issue.Severity]lipgloss.Style{
		issue.Error:      lipgloss.NewStyle().Foreground(colorError).Bold(true),
		issue.Warning:    lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		issue.Suggestion: lipgloss.NewStyle().Foreground(colorSuggestion),
	}

	severityTags = map[issue.Severity]string{
		issue.Error:      "ERROR",
		issue.Warning:    "WARN",
		issue.Suggestion: "HINT",
	}
)

// formatIssueHuman renders one issue as an indented line:
//
//	[ERROR] broken_link REQ_1: edge REQ_1 -> SPEC_X targets unknown node SPEC_X
func formatIssueHuman(i issue.Issue) string {
	tag := severityStyles[i.Severity].Render(fmt.Sprintf("[%s]", severityTags[i.Severity]))
	return fmt.Sprintf("  %s %s %s: %s", tag, mutedStyle.Render(i.Code.String()), i.Subject, i.Detail)
}

// formatCountsHuman renders per-severity counts, most severe first.
func formatCountsHuman(counts map[string]int) string {
	parts := make([]string, 0, len(issue.Severities))
	for idx := len(issue.Severities) - 1; idx >= 0; idx-- {
		sev := issue.Severities[idx]
		text := fmt.Sprintf("%d %s", counts[sev.String()], sev)
		if counts[sev.String()] > 0 {
			text = severityStyles[sev].Render(text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", ")
}
