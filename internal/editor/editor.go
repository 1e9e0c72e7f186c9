// Package editor holds the settings draft edited in the settings drawer.
// Edits stay local until Commit; theme and color changes are previewed
// through an Appearance and reverted when the drawer closes without applying.
package editor

import (
	"reflect"
	"time"

	"github.com/asalkapakli/ykscountdown/internal/countdown"
	"github.com/asalkapakli/ykscountdown/internal/settings"
)

// Defaults for newly added entries.
const (
	NewExamName      = "Yeni Sınav"
	NewExamStartTime = "10:00"
	NewExamEndTime   = "12:00"
	NewLinkLabel     = "Yeni Bağlantı"
)

// Committer is the part of the settings store the editor writes through.
type Committer interface {
	Current() settings.Configuration
	Replace(cfg settings.Configuration) error
	Reset() (settings.Configuration, error)
}

// Appearance receives live theme and color changes.
type Appearance interface {
	Apply(theme settings.Theme, color settings.ColorKey)
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock sets the clock used to date new exams.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// WithLocation sets the zone new exam dates are expressed in.
func WithLocation(loc *time.Location) Option {
	return func(e *Editor) { e.loc = loc }
}

// Editor owns the draft copy of the configuration.
type Editor struct {
	store   Committer
	preview Appearance
	ids     *IDSource
	now     func() time.Time
	loc     *time.Location

	base   settings.Configuration
	draft  settings.Configuration
	loaded bool
	open   bool
}

// New creates an editor over store. preview may be nil.
func New(store Committer, preview Appearance, opts ...Option) *Editor {
	e := &Editor{
		store:   store,
		preview: preview,
		ids:     NewIDSource(),
		now:     time.Now,
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open starts an editing session. A draft left over from an earlier session
// is kept unless the committed configuration changed since.
func (e *Editor) Open() {
	current := e.store.Current()
	if !e.loaded || !reflect.DeepEqual(current, e.base) {
		e.base = current
		e.draft = current.Clone()
		e.loaded = true
	}
	e.reserveIDs()
	e.open = true
	e.apply(e.draft.Theme, e.draft.ColorKey)
}

// IsOpen reports whether a session is active.
func (e *Editor) IsOpen() bool {
	return e.open
}

// Draft returns a copy of the working configuration.
func (e *Editor) Draft() settings.Configuration {
	e.ensureDraft()
	return e.draft.Clone()
}

// Dirty reports whether the draft differs from the committed configuration.
func (e *Editor) Dirty() bool {
	if !e.loaded {
		return false
	}
	return !reflect.DeepEqual(e.draft, e.store.Current())
}

// Close ends the session without committing and reverts the preview to the
// committed theme and color.
func (e *Editor) Close() {
	if !e.open {
		return
	}
	e.open = false
	committed := e.store.Current()
	e.apply(committed.Theme, committed.ColorKey)
}

// Commit persists the draft. On failure the draft and session are kept so
// the user can retry.
func (e *Editor) Commit() error {
	e.ensureDraft()
	if err := e.store.Replace(e.draft); err != nil {
		return err
	}
	e.base = e.store.Current()
	e.draft = e.base.Clone()
	e.open = false
	e.apply(e.base.Theme, e.base.ColorKey)
	return nil
}

// DiscardAndReset drops the draft and restores the built-in defaults. On
// failure the draft and session are kept and the preview shows the committed
// appearance again.
func (e *Editor) DiscardAndReset() error {
	cfg, err := e.store.Reset()
	if err != nil {
		committed := e.store.Current()
		e.apply(committed.Theme, committed.ColorKey)
		return err
	}
	e.base = e.store.Current()
	e.draft = cfg.Clone()
	e.loaded = true
	e.open = false
	e.apply(cfg.Theme, cfg.ColorKey)
	return nil
}

// SetSchool changes one school field.
func (e *Editor) SetSchool(field SchoolField, value string) bool {
	e.ensureDraft()
	return setSchoolField(&e.draft.School, field, value)
}

// SetWindow changes one progress window field.
func (e *Editor) SetWindow(field WindowField, value string) bool {
	e.ensureDraft()
	return setWindowField(&e.draft.ProgressWindow, field, value)
}

// AddExam appends a visible exam dated today and returns its id.
func (e *Editor) AddExam() (string, error) {
	e.ensureDraft()
	id, err := e.ids.Next()
	if err != nil {
		return "", err
	}
	today := e.now().In(e.loc).Format(countdown.DateLayout)
	e.draft.Exams = append(e.draft.Exams, settings.Exam{
		ID:        id,
		Name:      NewExamName,
		StartDate: today,
		Date:      today,
		StartTime: NewExamStartTime,
		EndTime:   NewExamEndTime,
		IsVisible: true,
	})
	return id, nil
}

// RemoveExam deletes the exam with id. Unknown ids are ignored.
func (e *Editor) RemoveExam(id string) bool {
	e.ensureDraft()
	i := e.examIndex(id)
	if i < 0 {
		return false
	}
	e.draft.Exams = append(e.draft.Exams[:i], e.draft.Exams[i+1:]...)
	return true
}

// ToggleExam flips the visibility of the exam with id.
func (e *Editor) ToggleExam(id string) bool {
	e.ensureDraft()
	i := e.examIndex(id)
	if i < 0 {
		return false
	}
	e.draft.Exams[i].IsVisible = !e.draft.Exams[i].IsVisible
	return true
}

// UpdateExam changes one field of the exam with id.
func (e *Editor) UpdateExam(id string, field ExamField, value string) bool {
	e.ensureDraft()
	i := e.examIndex(id)
	if i < 0 {
		return false
	}
	return setExamField(&e.draft.Exams[i], field, value)
}

// AddLink appends a visible website link with an empty URL.
func (e *Editor) AddLink() (string, error) {
	e.ensureDraft()
	id, err := e.ids.Next()
	if err != nil {
		return "", err
	}
	e.draft.SocialLinks = append(e.draft.SocialLinks, settings.SocialLink{
		ID:        id,
		Platform:  settings.PlatformWebsite,
		Label:     NewLinkLabel,
		IsVisible: true,
	})
	return id, nil
}

// RemoveLink deletes the link with id. Unknown ids are ignored.
func (e *Editor) RemoveLink(id string) bool {
	e.ensureDraft()
	i := e.linkIndex(id)
	if i < 0 {
		return false
	}
	e.draft.SocialLinks = append(e.draft.SocialLinks[:i], e.draft.SocialLinks[i+1:]...)
	return true
}

// ToggleLink flips the visibility of the link with id.
func (e *Editor) ToggleLink(id string) bool {
	e.ensureDraft()
	i := e.linkIndex(id)
	if i < 0 {
		return false
	}
	e.draft.SocialLinks[i].IsVisible = !e.draft.SocialLinks[i].IsVisible
	return true
}

// UpdateLink changes one field of the link with id.
func (e *Editor) UpdateLink(id string, field LinkField, value string) bool {
	e.ensureDraft()
	i := e.linkIndex(id)
	if i < 0 {
		return false
	}
	return setLinkField(&e.draft.SocialLinks[i], field, value)
}

// ApplyTheme sets the draft theme and previews it.
func (e *Editor) ApplyTheme(theme settings.Theme) bool {
	e.ensureDraft()
	if !theme.Valid() {
		return false
	}
	e.draft.Theme = theme
	e.previewDraft()
	return true
}

// ToggleTheme switches between light and dark.
func (e *Editor) ToggleTheme() {
	e.ensureDraft()
	if e.draft.Theme == settings.ThemeDark {
		e.ApplyTheme(settings.ThemeLight)
		return
	}
	e.ApplyTheme(settings.ThemeDark)
}

// ApplyColor sets the draft accent color and previews it.
func (e *Editor) ApplyColor(key settings.ColorKey) bool {
	e.ensureDraft()
	if !key.Known() {
		return false
	}
	e.draft.ColorKey = key
	e.previewDraft()
	return true
}

// CycleColor moves to the next accent color in palette order.
func (e *Editor) CycleColor() settings.ColorKey {
	e.ensureDraft()
	next := settings.ColorOrder[0]
	for i, k := range settings.ColorOrder {
		if k == e.draft.ColorKey {
			next = settings.ColorOrder[(i+1)%len(settings.ColorOrder)]
			break
		}
	}
	e.ApplyColor(next)
	return next
}

func (e *Editor) ensureDraft() {
	if e.loaded {
		return
	}
	e.base = e.store.Current()
	e.draft = e.base.Clone()
	e.loaded = true
	e.reserveIDs()
}

func (e *Editor) reserveIDs() {
	for _, ex := range e.draft.Exams {
		e.ids.Reserve(ex.ID)
	}
	for _, l := range e.draft.SocialLinks {
		e.ids.Reserve(l.ID)
	}
}

func (e *Editor) previewDraft() {
	if e.open {
		e.apply(e.draft.Theme, e.draft.ColorKey)
	}
}

func (e *Editor) apply(theme settings.Theme, color settings.ColorKey) {
	if e.preview != nil {
		e.preview.Apply(theme, color)
	}
}

func (e *Editor) examIndex(id string) int {
	for i, ex := range e.draft.Exams {
		if ex.ID == id {
			return i
		}
	}
	return -1
}

func (e *Editor) linkIndex(id string) int {
	for i, l := range e.draft.SocialLinks {
		if l.ID == id {
			return i
		}
	}
	return -1
}
