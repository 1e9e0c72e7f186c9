package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	DefaultWidth  = 100
	DefaultHeight = 40
	MinWidth      = 40
	MaxWidth      = 140

	DrawerWidth = 56
	CardGap     = 2
)

// Layout holds layout calculations for the current terminal size.
type Layout struct {
	Width  int
	Height int

	ContentWidth int
}

// NewLayout creates a new layout for the given terminal size.
func NewLayout(width, height int) Layout {
	if width < MinWidth {
		width = MinWidth
	}
	if width > MaxWidth {
		width = MaxWidth
	}
	return Layout{
		Width:        width,
		Height:       height,
		ContentWidth: width - 4,
	}
}

// CardColumns returns how many exam cards fit side by side. Fewer cards
// than columns shrink the grid so a lone card is not stretched.
func (l Layout) CardColumns(cards int) int {
	cols := 1
	switch {
	case l.ContentWidth >= 108:
		cols = 3
	case l.ContentWidth >= 70:
		cols = 2
	}
	if cards > 0 && cards < cols {
		cols = cards
	}
	return cols
}

// CardWidth returns the outer width of one card for the given column count.
func (l Layout) CardWidth(cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := (l.ContentWidth - (cols-1)*CardGap) / cols
	if cols == 1 && w > 60 {
		w = 60
	}
	return w
}

// JoinVertical joins strings vertically with the specified gap.
func JoinVertical(gap int, parts ...string) string {
	spacer := strings.Repeat("\n", gap+1)
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, spacer)
}

// JoinHorizontal joins blocks side by side, padding each to its widest line.
func JoinHorizontal(gap int, parts ...string) string {
	if len(parts) == 0 {
		return ""
	}

	partLines := make([][]string, len(parts))
	maxLines := 0
	for i, p := range parts {
		partLines[i] = strings.Split(p, "\n")
		if len(partLines[i]) > maxLines {
			maxLines = len(partLines[i])
		}
	}

	widths := make([]int, len(parts))
	for i, lines := range partLines {
		for _, line := range lines {
			if w := lipgloss.Width(line); w > widths[i] {
				widths[i] = w
			}
		}
	}

	spacer := strings.Repeat(" ", gap)
	var result strings.Builder
	for lineNum := 0; lineNum < maxLines; lineNum++ {
		for i, lines := range partLines {
			line := ""
			if lineNum < len(lines) {
				line = lines[lineNum]
			}
			result.WriteString(padRight(line, widths[i]))
			if i < len(parts)-1 {
				result.WriteString(spacer)
			}
		}
		if lineNum < maxLines-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// Center centers each line of text within the given width.
func Center(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth < width {
			lines[i] = strings.Repeat(" ", (width-lineWidth)/2) + line
		}
	}
	return strings.Join(lines, "\n")
}

// Truncate truncates text to fit within width, adding an ellipsis if needed.
func Truncate(text string, width int) string {
	if width < 4 || lipgloss.Width(text) <= width {
		return text
	}
	runes := []rune(text)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= width {
			return truncated
		}
	}
	return "…"
}

// WrapText wraps text on word boundaries to fit within width.
func WrapText(text string, width int) []string {
	if width < 10 {
		width = 10
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(current+" "+word) <= width {
				current += " " + word
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}

// Grid lays items out in rows of Columns.
type Grid struct {
	Columns int
	Gap     int
	Items   []string
}

// Render renders the grid.
func (g Grid) Render() string {
	if g.Columns < 1 {
		g.Columns = 1
	}
	var rows []string
	for i := 0; i < len(g.Items); i += g.Columns {
		end := i + g.Columns
		if end > len(g.Items) {
			end = len(g.Items)
		}
		rows = append(rows, JoinHorizontal(g.Gap, g.Items[i:end]...))
	}
	return strings.Join(rows, "\n")
}
