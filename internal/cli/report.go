package cli

import (
	"fmt"
	"strings"

	"github.com/HartBrook/moanote/internal/optimize"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#7C3AED")
	colorMuted  = lipgloss.Color("#6B7280")
	colorGood   = lipgloss.Color("#10B981")
	colorBad    = lipgloss.Color("#EF4444")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	panelTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	panelLabel = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	panelHeading = lipgloss.NewStyle().
			Bold(true)
)

// renderReport renders an optimization report as a bordered panel.
func renderReport(r *optimize.Report) string {
	rows := []string{
		panelTitle.Render("Prompt optimization"),
		"",
		panelRow("Specificity", scoreText(r.SpecificityScore)),
		panelRow("Completeness", scoreText(r.CompletenessScore)),
		panelRow("Complexity", string(r.Complexity)),
		panelRow("Request type", string(r.RequestType)),
		panelRow("Tokens", fmt.Sprintf("%d → %d (+%.0f%%)", r.Stats.Before, r.Stats.After, r.Stats.PercentGrowth())),
	}

	rows = append(rows, panelList("Improvements", r.Improvements)...)
	rows = append(rows, panelList("Techniques", r.Techniques)...)
	rows = append(rows, panelList("Pro tips", r.ProTips)...)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func panelRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, panelLabel.Render(label), value)
}

func panelList(title string, items []string) []string {
	if len(items) == 0 {
		return nil
	}
	rows := []string{"", panelHeading.Render(title)}
	for _, item := range items {
		rows = append(rows, "• "+item)
	}
	return rows
}

// scoreText colors a 0-100 score: 80 and up is good, under 50 is bad.
func scoreText(score int) string {
	text := fmt.Sprintf("%d/100", score)
	switch {
	case score >= 80:
		return lipgloss.NewStyle().Foreground(colorGood).Render(text)
	case score < 50:
		return lipgloss.NewStyle().Foreground(colorBad).Render(text)
	default:
		return text
	}
}

// anchorSummary describes missing keyword anchors, or "" when all are present.
func anchorSummary(r *optimize.AnchorResult) string {
	if r == nil {
		return ""
	}
	missing := r.AllMissing()
	if len(missing) == 0 {
		return ""
	}
	return strings.Join(missing, ", ")
}
