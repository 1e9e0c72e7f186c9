package progress

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"
)

// DefaultWidth is the number of cells between the brackets.
const DefaultWidth = 40

// Render draws a percentage as "[=====>----] 42.17%". Values outside
// 0..100 are clamped; width below 1 selects DefaultWidth.
func Render(percent float64, width int) string {
	return fmt.Sprintf("[%s] %s", Bar(percent, width), FormatPercent(percent))
}

// Bar draws only the cells of the bar, without brackets or label.
func Bar(percent float64, width int) string {
	if width < 1 {
		width = DefaultWidth
	}
	p := clamp(percent)
	filled := int(float64(width) * p / 100)
	if filled > width {
		filled = width
	}

	bar := make([]byte, width)
	for i := 0; i < filled; i++ {
		bar[i] = '='
	}
	if filled < width {
		bar[filled] = '>'
		for i := filled + 1; i < width; i++ {
			bar[i] = '-'
		}
	}
	return string(bar)
}

// FormatPercent renders p with two decimals after clamping.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", clamp(p))
}

func clamp(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// LiveBar redraws a single progress line in place, used by show --watch.
type LiveBar struct {
	output      io.Writer
	enabled     bool
	description string
	width       int
	interval    time.Duration
	lastUpdate  time.Time
	lastLen     int
}

// NewLiveBar creates a live bar writing to stderr.
func NewLiveBar(description string, width int) *LiveBar {
	return &LiveBar{
		output:      os.Stderr, // stderr so a redirected stdout stays clean
		enabled:     true,
		description: description,
		width:       width,
		interval:    100 * time.Millisecond,
	}
}

// SetOutput redirects the bar.
func (l *LiveBar) SetOutput(w io.Writer) {
	l.output = w
}

// Disable disables the bar
func (l *LiveBar) Disable() {
	l.enabled = false
}

// Enable enables the bar
func (l *LiveBar) Enable() {
	l.enabled = true
}

// Set redraws the line with percent and an optional suffix. Redraws closer
// together than the throttle interval are skipped unless percent reached 100.
func (l *LiveBar) Set(percent float64, suffix string) {
	if !l.enabled {
		return
	}
	now := time.Now()
	if now.Sub(l.lastUpdate) < l.interval && percent < 100 {
		return
	}
	l.lastUpdate = now

	line := Render(percent, l.width)
	if l.description != "" {
		line = l.description + " " + line
	}
	if suffix != "" {
		line += " | " + suffix
	}
	pad := ""
	if n := l.lastLen - len(line); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	l.lastLen = len(line)
	fmt.Fprint(l.output, "\r"+line+pad)
}

// Finish ends the line.
func (l *LiveBar) Finish() {
	if !l.enabled {
		return
	}
	fmt.Fprint(l.output, "\n")
}
