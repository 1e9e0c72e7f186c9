package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asalkapakli/ykscountdown/internal/settings"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	// Backgrounds
	BgDark lipgloss.Color // Deep background

	// Text
	TextPrimary lipgloss.Color // Main text
	TextDim     lipgloss.Color // Secondary/dim text
	TextMuted   lipgloss.Color // Very dim text

	// Borders
	Border        lipgloss.Color // Default border
	BorderFocused lipgloss.Color // Focused/active border

	// Accent pair from the palette
	Accent      lipgloss.Color
	AccentHover lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var darkBase = Theme{
	BgDark:      lipgloss.Color("#0f172a"),
	TextPrimary: lipgloss.Color("#f1f5f9"),
	TextDim:     lipgloss.Color("#94a3b8"),
	TextMuted:   lipgloss.Color("#475569"),
	Border:      lipgloss.Color("#334155"),
	Success:     lipgloss.Color("#22c55e"),
	Warning:     lipgloss.Color("#eab308"),
	Error:       lipgloss.Color("#f87171"),
}

var lightBase = Theme{
	BgDark:      lipgloss.Color("#f8fafc"),
	TextPrimary: lipgloss.Color("#0f172a"),
	TextDim:     lipgloss.Color("#475569"),
	TextMuted:   lipgloss.Color("#94a3b8"),
	Border:      lipgloss.Color("#cbd5e1"),
	Success:     lipgloss.Color("#16a34a"),
	Warning:     lipgloss.Color("#ca8a04"),
	Error:       lipgloss.Color("#dc2626"),
}

// NewTheme builds the palette for a theme and accent color. Unknown themes
// render dark; unknown colors resolve to blue.
func NewTheme(theme settings.Theme, color settings.ColorKey) Theme {
	t := darkBase
	if theme == settings.ThemeLight {
		t = lightBase
	}
	accent := settings.Colors(color)
	t.Accent = lipgloss.Color(accent.Main)
	t.AccentHover = lipgloss.Color(accent.Hover)
	t.BorderFocused = t.Accent
	return t
}

// DefaultTheme is the theme of the built-in settings.
var DefaultTheme = NewTheme(settings.DefaultTheme, settings.DefaultColor)

// Styles provides pre-configured lipgloss styles using the theme.
type Styles struct {
	Theme Theme

	// Base styles
	Dim   lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Headers
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Interactive elements
	Selected lipgloss.Style
	Cursor   lipgloss.Style

	// Containers
	Card   lipgloss.Style
	Drawer lipgloss.Style

	// Countdown digits
	Digit     lipgloss.Style
	DigitUnit lipgloss.Style

	// Progress
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	Percent        lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// NewStyles creates a new Styles instance from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,

		Dim:   lipgloss.NewStyle().Foreground(t.TextDim),
		Muted: lipgloss.NewStyle().Foreground(t.TextMuted),
		Bold:  lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(t.AccentHover).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(t.TextPrimary),
		Header: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Foreground(t.Error),

		Selected: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(t.BgDark).
			Background(t.Accent),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
		Drawer: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(t.BorderFocused).
			Padding(0, 2),

		Digit: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		DigitUnit: lipgloss.NewStyle().
			Foreground(t.TextDim),

		ProgressFilled: lipgloss.NewStyle().
			Foreground(t.Accent),
		ProgressEmpty: lipgloss.NewStyle().
			Foreground(t.TextMuted),
		Percent: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(t.TextDim),
	}
}

// DefaultStyles returns styles using the default theme.
var DefaultStyles = NewStyles(DefaultTheme)

// CheckboxIcon returns a styled visibility checkbox.
func CheckboxIcon(checked bool, s Styles) string {
	if checked {
		return s.Success.Render("[✓]")
	}
	return s.Dim.Render("[ ]")
}

// RadioIcon returns a styled radio button.
func RadioIcon(selected bool, s Styles) string {
	if selected {
		return s.Selected.Render("●")
	}
	return s.Dim.Render("○")
}

// Swatch renders a small block in a palette color.
func Swatch(key settings.ColorKey) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(settings.Colors(key).Main)).Render("██")
}
