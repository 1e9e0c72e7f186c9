package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed marks a stored blob that cannot be turned into a configuration.
var ErrMalformed = errors.New("malformed settings")

// LegacySocial is the flat contact object older saves carried instead of socialLinks.
type LegacySocial struct {
	Website   string `json:"website"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	YouTube   string `json:"youtube"`
	Phone     string `json:"phone"`
}

// Document is a decoded, not yet migrated, settings blob. It is either the
// legacy shape (Social set, socialLinks absent) or the current shape.
type Document struct {
	Theme    Theme
	ColorKey ColorKey
	School   *School
	Window   *ProgressWindow
	Exams    []Exam

	// Social is the legacy contact object, nil when absent.
	Social *LegacySocial

	// rawLinks holds socialLinks exactly as stored; nil when the key is
	// absent or null.
	rawLinks json.RawMessage
}

// IsLegacy reports whether the document uses the flat social-contact shape.
func (d Document) IsLegacy() bool {
	return d.rawLinks == nil && d.Social != nil
}

// Decode parses a stored blob. It fails with ErrMalformed when the blob is not
// a JSON object or when exams is not a sequence of exam objects. Other fields
// are decoded leniently and repaired by Migrate.
func Decode(data []byte) (Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if fields == nil {
		return Document{}, fmt.Errorf("%w: top level is null", ErrMalformed)
	}

	var doc Document

	rawExams, ok := fields["exams"]
	if !ok || isNull(rawExams) {
		return Document{}, fmt.Errorf("%w: exams missing", ErrMalformed)
	}
	if err := json.Unmarshal(rawExams, &doc.Exams); err != nil {
		return Document{}, fmt.Errorf("%w: exams: %v", ErrMalformed, err)
	}

	lenient(fields["theme"], &doc.Theme)
	lenient(fields["color"], &doc.ColorKey)

	if raw, ok := fields["school"]; ok && !isNull(raw) {
		var s School
		if lenient(raw, &s) {
			doc.School = &s
		}
	}
	if raw, ok := fields["dates"]; ok && !isNull(raw) {
		var w ProgressWindow
		if lenient(raw, &w) {
			doc.Window = &w
		}
	}
	if raw, ok := fields["social"]; ok && !isNull(raw) {
		var legacy LegacySocial
		// A legacy value of the wrong shape still counts as present; it
		// simply contributes no entries.
		lenient(raw, &legacy)
		doc.Social = &legacy
	}
	if raw, ok := fields["socialLinks"]; ok && !isNull(raw) {
		doc.rawLinks = raw
	}

	return doc, nil
}

// Migrate upgrades a decoded document to the current schema. Running it on
// the encoding of its own output returns an equal configuration.
func Migrate(doc Document) Configuration {
	def := Defaults()
	cfg := Configuration{
		Theme:    doc.Theme,
		ColorKey: doc.ColorKey,
	}

	if doc.School != nil {
		cfg.School = *doc.School
	} else {
		cfg.School = def.School
	}
	if doc.Window != nil {
		cfg.ProgressWindow = *doc.Window
	} else {
		cfg.ProgressWindow = def.ProgressWindow
	}

	// 1. legacy contacts become an ordered link sequence
	var links []SocialLink
	linksOK := false
	if doc.IsLegacy() {
		links = linksFromLegacy(*doc.Social)
		linksOK = true
	} else if doc.rawLinks != nil {
		if err := json.Unmarshal(doc.rawLinks, &links); err == nil && links != nil {
			linksOK = true
		}
	}

	// 2. exams without a tracking start inherit the window start
	fallbackStart := cfg.ProgressWindow.Start
	if fallbackStart == "" {
		fallbackStart = DefaultWindowStart
	}
	cfg.Exams = make([]Exam, 0, len(doc.Exams))
	for _, e := range doc.Exams {
		if e.StartDate == "" {
			e.StartDate = fallbackStart
		}
		cfg.Exams = append(cfg.Exams, e)
	}

	// 3. anything that is still not a sequence resets to the defaults
	if !linksOK {
		links = def.SocialLinks
	}
	cfg.SocialLinks = links

	// 4. color
	if cfg.ColorKey == "" {
		cfg.ColorKey = DefaultColor
	}

	// 5. window title
	if cfg.ProgressWindow.Title == "" {
		cfg.ProgressWindow.Title = DefaultWindowTitle
	}

	if !cfg.Theme.Valid() {
		cfg.Theme = DefaultTheme
	}

	return cfg
}

// MigrateBytes decodes and migrates a stored blob.
func MigrateBytes(data []byte) (Configuration, error) {
	doc, err := Decode(data)
	if err != nil {
		return Configuration{}, err
	}
	return Migrate(doc), nil
}

func linksFromLegacy(legacy LegacySocial) []SocialLink {
	fields := []struct {
		platform Platform
		value    string
	}{
		{PlatformWebsite, legacy.Website},
		{PlatformInstagram, legacy.Instagram},
		{PlatformTwitter, legacy.Twitter},
		{PlatformYouTube, legacy.YouTube},
		{PlatformPhone, legacy.Phone},
	}

	var links []SocialLink
	hasWebsite := false
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if f.platform == PlatformWebsite {
			hasWebsite = true
		}
		links = append(links, SocialLink{
			Platform:  f.platform,
			URL:       f.value,
			Label:     f.platform.Label(),
			IsVisible: true,
		})
	}
	if !hasWebsite {
		website := SocialLink{
			Platform:  PlatformWebsite,
			URL:       DefaultWebsiteURL,
			Label:     PlatformWebsite.Label(),
			IsVisible: true,
		}
		links = append([]SocialLink{website}, links...)
	}
	for i := range links {
		links[i].ID = fmt.Sprintf("%d", i+1)
	}
	return links
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// lenient decodes raw into v and reports success. v is only written when
// the whole value decodes; a partial decode is dropped.
func lenient[T any](raw json.RawMessage, v *T) bool {
	if isNull(raw) {
		return false
	}
	var tmp T
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return false
	}
	*v = tmp
	return true
}
