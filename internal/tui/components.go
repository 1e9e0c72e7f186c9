package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asalkapakli/ykscountdown/internal/countdown"
)

// SectionBox renders a titled box with content.
//
//	╭─ TITLE ──────────────────────────╮
//	│  content line 1                  │
//	│  content line 2                  │
//	╰──────────────────────────────────╯
func SectionBox(title, content string, width int, s Styles) string {
	if width < 20 {
		width = 60
	}

	titleText := " " + title + " "
	titleLen := lipgloss.Width(titleText)
	remainingWidth := width - 3 - titleLen // corners and the leading dash
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	border := lipgloss.NewStyle().Foreground(s.Theme.Border)
	titleBar := border.Render("╭─") + s.Header.Render(titleText) + border.Render(strings.Repeat("─", remainingWidth)+"╮")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, true, true).
		BorderForeground(s.Theme.Border).
		Width(width-2).
		Padding(0, 1)

	return titleBar + "\n" + box.Render(content)
}

// ProgressBar renders a progress bar with a two-decimal percentage.
//
//	━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━ 67.25%
func ProgressBar(percent float64, width int, s Styles) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	percentStr := countdown.FormatPercent(percent, 2) + "%"
	barWidth := width - len(percentStr) - 1
	if barWidth < 10 {
		barWidth = 10
	}

	filled := int(float64(barWidth) * percent / 100)
	empty := barWidth - filled

	bar := s.ProgressFilled.Render(strings.Repeat("━", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("━", empty))

	return bar + " " + s.Percent.Render(percentStr)
}

// Divider renders a horizontal divider line.
func Divider(width int, s Styles) string {
	return s.Muted.Render(strings.Repeat("─", width))
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
