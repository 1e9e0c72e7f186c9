package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/asalkapakli/ykscountdown/internal/countdown"
	"github.com/asalkapakli/ykscountdown/internal/counter"
	"github.com/asalkapakli/ykscountdown/internal/settings"
)

// Dashboard text
const (
	CompletedText  = "Sınav Başladı veya Tamamlandı!"
	EmptyStateText = "Gösterilecek sayaç bulunamadı. Ayarlardan yeni sayaç ekleyebilir veya mevcut olanları görünür yapabilirsiniz."
	ProgressLabel  = "İLERLEME"
	StartLabel     = "Başlangıç"
	TargetLabel    = "Hedef"
)

// renderHeader draws the school block and the visible link row.
func renderHeader(cfg settings.Configuration, width int, s Styles) string {
	var lines []string
	lines = append(lines, s.Title.Render(cfg.School.Title))
	if cfg.School.Subtitle != "" {
		lines = append(lines, s.Subtitle.Render(cfg.School.Subtitle))
	}
	if cfg.School.Description != "" {
		lines = append(lines, "")
		for _, l := range WrapText(cfg.School.Description, min(width, 80)) {
			lines = append(lines, s.Dim.Render(l))
		}
	}
	if links := cfg.VisibleLinks(); len(links) > 0 {
		lines = append(lines, "")
		var parts []string
		for _, l := range links {
			parts = append(parts, s.Bold.Render(settings.DisplayLabel(l))+" "+s.Dim.Render(settings.Href(l)))
		}
		for _, l := range WrapText(strings.Join(parts, "  ·  "), width) {
			lines = append(lines, l)
		}
	}
	return Center(strings.Join(lines, "\n"), width)
}

// renderOverall draws the progress-window bar.
func renderOverall(b countdown.Board, cfg settings.Configuration, loc *time.Location, width int, s Styles) string {
	var lines []string
	lines = append(lines, ProgressBar(b.Overall, width-4, s))

	start := StartLabel + ": " + shortDateString(cfg.ProgressWindow.Start, loc)
	target := TargetLabel + ": " + shortDateString(cfg.ProgressWindow.End, loc)
	gap := width - 4 - lipgloss.Width(start) - lipgloss.Width(target)
	if gap < 1 {
		gap = 1
	}
	lines = append(lines, s.Dim.Render(start+strings.Repeat(" ", gap)+target))

	title := b.WindowTitle
	if title == "" {
		title = settings.DefaultWindowTitle
	}
	return SectionBox(title, strings.Join(lines, "\n"), width, s)
}

// renderCard draws one exam card.
func renderCard(c countdown.Card, loc *time.Location, width int, s Styles) string {
	inner := width - 6 // border and padding
	if inner < 20 {
		inner = 20
	}

	var lines []string
	lines = append(lines, s.Header.Render(Truncate(c.Exam.Name, inner)))
	lines = append(lines, s.Dim.Render(countdown.LongDateString(c.Exam.Date, loc)+" • "+c.Exam.StartTime))
	lines = append(lines, "")

	if c.Countdown.IsCompleted {
		lines = append(lines, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.Success.Render(CompletedText)), "")
	} else {
		lines = append(lines, renderDigits(c.Countdown, inner, s))
		lines = append(lines, "")
		pct := "%" + countdown.FormatPercent(c.Percent, 1)
		label := s.Muted.Render(ProgressLabel)
		lines = append(lines, label+strings.Repeat(" ", max(1, inner-lipgloss.Width(ProgressLabel)-len(pct)))+s.Percent.Render(pct))
		lines = append(lines, thinBar(c.Percent, inner, s))
	}

	return s.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderDigits(cd countdown.Countdown, width int, s Styles) string {
	digits := cd.Digits()
	cell := width / 4
	var values, units []string
	for i, d := range digits {
		values = append(values, lipgloss.PlaceHorizontal(cell, lipgloss.Center, s.Digit.Render(d)))
		units = append(units, lipgloss.PlaceHorizontal(cell, lipgloss.Center, s.DigitUnit.Render(countdown.UnitLabels[i])))
	}
	return strings.Join(values, "") + "\n" + strings.Join(units, "")
}

func thinBar(percent float64, width int, s Styles) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(float64(width) * percent / 100)
	return s.ProgressFilled.Render(strings.Repeat("━", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("━", width-filled))
}

// renderCards lays out the visible cards or the empty-state message.
func renderCards(b countdown.Board, loc *time.Location, l Layout, s Styles) string {
	if len(b.Cards) == 0 {
		return Center(strings.Join(WrapText(EmptyStateText, min(l.ContentWidth, 70)), "\n"), l.ContentWidth)
	}
	cols := l.CardColumns(len(b.Cards))
	w := l.CardWidth(cols)
	items := make([]string, 0, len(b.Cards))
	for _, c := range b.Cards {
		items = append(items, renderCard(c, loc, w, s))
	}
	grid := Grid{Columns: cols, Gap: CardGap, Items: items}.Render()
	return Center(grid, l.ContentWidth)
}

// renderFooter draws the school title and the visit count when known.
func renderFooter(cfg settings.Configuration, visits int64, visitsKnown bool, width int, s Styles) string {
	var lines []string
	if visitsKnown {
		lines = append(lines, s.Percent.Render(counter.Format(visits)))
	}
	lines = append(lines, s.Footer.Render(cfg.School.Title))
	return Center(strings.Join(lines, "\n"), width)
}

func shortDateString(date string, loc *time.Location) string {
	t, ok := countdown.ParseDate(date, loc)
	if !ok {
		return date
	}
	return countdown.ShortDate(t)
}

// Summary renders the board as plain text for the clipboard.
func Summary(b countdown.Board, cfg settings.Configuration, loc *time.Location) string {
	var sb strings.Builder
	sb.WriteString(cfg.School.Title)
	if cfg.School.Subtitle != "" {
		sb.WriteString(" - " + cfg.School.Subtitle)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s: %s%%\n", b.WindowTitle, countdown.FormatPercent(b.Overall, 2))
	if len(b.Cards) == 0 {
		sb.WriteString(EmptyStateText + "\n")
	}
	for _, c := range b.Cards {
		when := countdown.LongDateString(c.Exam.Date, loc) + " " + c.Exam.StartTime
		if c.Countdown.IsCompleted {
			fmt.Fprintf(&sb, "%s (%s): %s\n", c.Exam.Name, when, CompletedText)
			continue
		}
		d := c.Countdown.Digits()
		fmt.Fprintf(&sb, "%s (%s): %s %s %s %s %s %s %s %s\n", c.Exam.Name, when,
			d[0], countdown.UnitLabels[0], d[1], countdown.UnitLabels[1],
			d[2], countdown.UnitLabels[2], d[3], countdown.UnitLabels[3])
	}
	return strings.TrimRight(sb.String(), "\n")
}
