package settings

// Persisted configuration for the countdown dashboard

// Theme is the light/dark appearance of the dashboard.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ColorKey identifies an entry in the accent palette.
type ColorKey string

const (
	ColorBlue   ColorKey = "blue"
	ColorRed    ColorKey = "red"
	ColorGreen  ColorKey = "green"
	ColorPurple ColorKey = "purple"
	ColorOrange ColorKey = "orange"
	ColorPink   ColorKey = "pink"
)

// Accent is a palette entry: the main accent and its hover/emphasis variant.
type Accent struct {
	Main  string
	Hover string
}

// ColorOrder is the display order of the palette.
var ColorOrder = []ColorKey{ColorBlue, ColorRed, ColorGreen, ColorPurple, ColorOrange, ColorPink}

var palette = map[ColorKey]Accent{
	ColorBlue:   {Main: "#3b82f6", Hover: "#2563eb"},
	ColorRed:    {Main: "#ef4444", Hover: "#dc2626"},
	ColorGreen:  {Main: "#10b981", Hover: "#059669"},
	ColorPurple: {Main: "#8b5cf6", Hover: "#7c3aed"},
	ColorOrange: {Main: "#f97316", Hover: "#ea580c"},
	ColorPink:   {Main: "#ec4899", Hover: "#db2777"},
}

// Colors returns the accent pair for key, falling back to blue for unknown keys.
func Colors(key ColorKey) Accent {
	if a, ok := palette[key]; ok {
		return a
	}
	return palette[ColorBlue]
}

// Known reports whether key is part of the palette.
func (k ColorKey) Known() bool {
	_, ok := palette[k]
	return ok
}

// Platform is the kind of a social link.
type Platform string

const (
	PlatformWebsite   Platform = "website"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformYouTube   Platform = "youtube"
	PlatformPhone     Platform = "phone"
	PlatformOther     Platform = "other"
)

// Platforms lists every platform in selector order.
var Platforms = []Platform{
	PlatformWebsite,
	PlatformInstagram,
	PlatformTwitter,
	PlatformYouTube,
	PlatformPhone,
	PlatformOther,
}

// Label returns the fixed display label of a platform.
func (p Platform) Label() string {
	switch p {
	case PlatformWebsite:
		return "Web Sitesi"
	case PlatformInstagram:
		return "Instagram"
	case PlatformTwitter:
		return "Twitter/X"
	case PlatformYouTube:
		return "YouTube"
	case PlatformPhone:
		return "Telefon"
	default:
		return "Diğer"
	}
}

// School is the branding block shown in the header.
type School struct {
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle" yaml:"subtitle"`
	Description string `json:"description" yaml:"description"`
	LogoURL     string `json:"logoUrl" yaml:"logo_url"`
}

// SocialLink is one entry of the header's link row.
type SocialLink struct {
	ID        string   `json:"id" yaml:"id"`
	Platform  Platform `json:"platform" yaml:"platform"`
	URL       string   `json:"url" yaml:"url"`
	Label     string   `json:"label,omitempty" yaml:"label,omitempty"`
	IsVisible bool     `json:"isVisible" yaml:"visible"`
}

// ProgressWindow is the date range of the overview progress bar.
// Start and End are YYYY-MM-DD dates.
type ProgressWindow struct {
	Title string `json:"title" yaml:"title"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// Exam is one countdown card. Date plus StartTime form the deadline;
// StartDate is when progress tracking begins. EndTime is display-only.
type Exam struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	StartDate string `json:"startDate" yaml:"start_date"`
	Date      string `json:"date" yaml:"date"`
	StartTime string `json:"startTime" yaml:"start_time"`
	EndTime   string `json:"endTime" yaml:"end_time"`
	IsVisible bool   `json:"isVisible" yaml:"visible"`
}

// Configuration is the single persisted aggregate.
type Configuration struct {
	Theme          Theme          `json:"theme" yaml:"theme"`
	ColorKey       ColorKey       `json:"color" yaml:"color"`
	School         School         `json:"school" yaml:"school"`
	SocialLinks    []SocialLink   `json:"socialLinks" yaml:"social_links"`
	ProgressWindow ProgressWindow `json:"dates" yaml:"dates"`
	Exams          []Exam         `json:"exams" yaml:"exams"`
}

// Clone returns a deep copy of c.
func (c Configuration) Clone() Configuration {
	out := c
	out.SocialLinks = append([]SocialLink(nil), c.SocialLinks...)
	out.Exams = append([]Exam(nil), c.Exams...)
	if out.SocialLinks == nil {
		out.SocialLinks = []SocialLink{}
	}
	if out.Exams == nil {
		out.Exams = []Exam{}
	}
	return out
}

// VisibleExams returns the exams flagged visible, in order.
func (c Configuration) VisibleExams() []Exam {
	var out []Exam
	for _, e := range c.Exams {
		if e.IsVisible {
			out = append(out, e)
		}
	}
	return out
}

// VisibleLinks returns the social links flagged visible, in order.
func (c Configuration) VisibleLinks() []SocialLink {
	var out []SocialLink
	for _, l := range c.SocialLinks {
		if l.IsVisible {
			out = append(out, l)
		}
	}
	return out
}
