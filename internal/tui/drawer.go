package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/asalkapakli/ykscountdown/internal/editor"
	"github.com/asalkapakli/ykscountdown/internal/settings"
)

type section int

const (
	sectionAppearance section = iota
	sectionSchool
	sectionWindow
	sectionLinks
	sectionExams
	sectionCount
)

var sectionTitles = [sectionCount]string{
	"Görünüm",
	"Okul Bilgileri",
	"İlerleme Çubuğu",
	"Sosyal Medya & İletişim",
	"Sınavlar",
}

// Empty list messages
const (
	noLinksText = "Henüz bağlantı eklenmemiş."
	noExamsText = "Henüz sayaç eklenmemiş."
)

// drawerAction tells the dashboard what the last key did to the session.
type drawerAction int

const (
	drawerStay drawerAction = iota
	drawerClosed
	drawerApplied
	drawerReset
)

// Drawer is the settings panel. All edits go through the editor draft.
type Drawer struct {
	editor *editor.Editor
	keys   drawerKeys
	help   help.Model

	section section
	cursor  int

	form       *huh.Form
	formKind   formKind
	formValues *formValues
	formTarget string

	err   string
	width int
}

// NewDrawer creates a drawer over ed.
func NewDrawer(ed *editor.Editor) *Drawer {
	return &Drawer{
		editor: ed,
		keys:   newDrawerKeys(),
		help:   help.New(),
		width:  DrawerWidth,
	}
}

// Open starts an editing session.
func (d *Drawer) Open() {
	d.editor.Open()
	d.err = ""
	d.clampCursor()
}

// IsOpen reports whether the drawer is shown.
func (d *Drawer) IsOpen() bool {
	return d.editor.IsOpen()
}

// Editing reports whether a form is active.
func (d *Drawer) Editing() bool {
	return d.form != nil
}

// SetWidth adjusts the drawer to the terminal width.
func (d *Drawer) SetWidth(w int) {
	if w > DrawerWidth {
		w = DrawerWidth
	}
	if w < 30 {
		w = 30
	}
	d.width = w
	d.help.Width = w - 4
}

func (d *Drawer) rows() int {
	draft := d.editor.Draft()
	switch d.section {
	case sectionAppearance:
		return 2
	case sectionSchool:
		return 4
	case sectionWindow:
		return 3
	case sectionLinks:
		return len(draft.SocialLinks)
	case sectionExams:
		return len(draft.Exams)
	}
	return 0
}

func (d *Drawer) clampCursor() {
	n := d.rows()
	if d.cursor >= n {
		d.cursor = n - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

func (d *Drawer) selectedLink() (settings.SocialLink, bool) {
	links := d.editor.Draft().SocialLinks
	if d.section != sectionLinks || d.cursor >= len(links) {
		return settings.SocialLink{}, false
	}
	return links[d.cursor], true
}

func (d *Drawer) selectedExam() (settings.Exam, bool) {
	exams := d.editor.Draft().Exams
	if d.section != sectionExams || d.cursor >= len(exams) {
		return settings.Exam{}, false
	}
	return exams[d.cursor], true
}

// Update handles one message while the drawer is open.
func (d *Drawer) Update(msg tea.Msg) (tea.Cmd, drawerAction) {
	if d.form != nil {
		return d.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, drawerStay
	}
	d.err = ""

	switch {
	case key.Matches(keyMsg, d.keys.ForceQuit):
		d.editor.Close()
		return tea.Quit, drawerClosed

	case key.Matches(keyMsg, d.keys.Close):
		d.editor.Close()
		return nil, drawerClosed

	case key.Matches(keyMsg, d.keys.Apply):
		if err := d.editor.Commit(); err != nil {
			d.err = "Kaydedilemedi: " + err.Error()
			return nil, drawerStay
		}
		return nil, drawerApplied

	case key.Matches(keyMsg, d.keys.Reset):
		return d.openForm(formReset, ""), drawerStay

	case key.Matches(keyMsg, d.keys.Up):
		d.cursor--
		d.clampCursor()

	case key.Matches(keyMsg, d.keys.Down):
		d.cursor++
		d.clampCursor()

	case key.Matches(keyMsg, d.keys.Next):
		d.section = (d.section + 1) % sectionCount
		d.cursor = 0

	case key.Matches(keyMsg, d.keys.Prev):
		d.section = (d.section + sectionCount - 1) % sectionCount
		d.cursor = 0

	case key.Matches(keyMsg, d.keys.Theme):
		d.editor.ToggleTheme()

	case key.Matches(keyMsg, d.keys.Color):
		d.editor.CycleColor()

	case key.Matches(keyMsg, d.keys.Add):
		d.add()

	case key.Matches(keyMsg, d.keys.Delete):
		d.remove()

	case key.Matches(keyMsg, d.keys.Toggle):
		d.toggle()

	case key.Matches(keyMsg, d.keys.Edit):
		return d.edit(), drawerStay
	}
	return nil, drawerStay
}

func (d *Drawer) add() {
	var err error
	switch d.section {
	case sectionLinks:
		_, err = d.editor.AddLink()
	case sectionExams:
		_, err = d.editor.AddExam()
	default:
		return
	}
	if err != nil {
		d.err = err.Error()
		return
	}
	d.cursor = d.rows() - 1
}

func (d *Drawer) remove() {
	if l, ok := d.selectedLink(); ok {
		d.editor.RemoveLink(l.ID)
	} else if e, ok := d.selectedExam(); ok {
		d.editor.RemoveExam(e.ID)
	}
	d.clampCursor()
}

func (d *Drawer) toggle() {
	if l, ok := d.selectedLink(); ok {
		d.editor.ToggleLink(l.ID)
	} else if e, ok := d.selectedExam(); ok {
		d.editor.ToggleExam(e.ID)
	}
}

func (d *Drawer) edit() tea.Cmd {
	switch d.section {
	case sectionAppearance:
		return d.openForm(formAppearance, "")
	case sectionSchool:
		return d.openForm(formSchool, "")
	case sectionWindow:
		return d.openForm(formWindow, "")
	case sectionLinks:
		if l, ok := d.selectedLink(); ok {
			return d.openForm(formLink, l.ID)
		}
	case sectionExams:
		if e, ok := d.selectedExam(); ok {
			return d.openForm(formExam, e.ID)
		}
	}
	return nil
}

func (d *Drawer) openForm(kind formKind, target string) tea.Cmd {
	draft := d.editor.Draft()
	v := &formValues{}
	width := d.width - 4
	var f *huh.Form

	switch kind {
	case formAppearance:
		v.theme = string(draft.Theme)
		v.color = string(draft.ColorKey)
		f = newAppearanceForm(v, width)
	case formSchool:
		v.title = draft.School.Title
		v.subtitle = draft.School.Subtitle
		v.description = draft.School.Description
		v.logoURL = draft.School.LogoURL
		f = newSchoolForm(v, width)
	case formWindow:
		v.windowTitle = draft.ProgressWindow.Title
		v.start = draft.ProgressWindow.Start
		v.end = draft.ProgressWindow.End
		f = newWindowForm(v, width)
	case formLink:
		l, ok := d.selectedLink()
		if !ok {
			return nil
		}
		v.platform = string(l.Platform)
		v.url = l.URL
		v.label = l.Label
		v.visible = l.IsVisible
		f = newLinkForm(v, width)
	case formExam:
		e, ok := d.selectedExam()
		if !ok {
			return nil
		}
		v.name = e.Name
		v.startDate = e.StartDate
		v.date = e.Date
		v.startTime = e.StartTime
		v.endTime = e.EndTime
		v.visible = e.IsVisible
		f = newExamForm(v, width)
	case formReset:
		f = newResetForm(v, width)
	default:
		return nil
	}

	d.form = f
	d.formKind = kind
	d.formValues = v
	d.formTarget = target
	return f.Init()
}

func (d *Drawer) closeForm() {
	d.form = nil
	d.formKind = formNone
	d.formValues = nil
	d.formTarget = ""
}

func (d *Drawer) updateForm(msg tea.Msg) (tea.Cmd, drawerAction) {
	model, cmd := d.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		d.form = f
	}

	switch d.form.State {
	case huh.StateCompleted:
		action := d.applyForm()
		d.closeForm()
		return nil, action
	case huh.StateAborted:
		d.closeForm()
		return nil, drawerStay
	}
	return cmd, drawerStay
}

func (d *Drawer) applyForm() drawerAction {
	v := d.formValues
	switch d.formKind {
	case formAppearance:
		d.editor.ApplyTheme(settings.Theme(v.theme))
		d.editor.ApplyColor(settings.ColorKey(v.color))
	case formSchool:
		d.editor.SetSchool(editor.SchoolTitle, v.title)
		d.editor.SetSchool(editor.SchoolSubtitle, v.subtitle)
		d.editor.SetSchool(editor.SchoolDescription, v.description)
		d.editor.SetSchool(editor.SchoolLogoURL, v.logoURL)
	case formWindow:
		d.editor.SetWindow(editor.WindowTitle, v.windowTitle)
		d.editor.SetWindow(editor.WindowStart, strings.TrimSpace(v.start))
		d.editor.SetWindow(editor.WindowEnd, strings.TrimSpace(v.end))
	case formLink:
		id := d.formTarget
		d.editor.UpdateLink(id, editor.LinkPlatform, v.platform)
		d.editor.UpdateLink(id, editor.LinkURL, strings.TrimSpace(v.url))
		d.editor.UpdateLink(id, editor.LinkLabel, v.label)
		d.editor.UpdateLink(id, editor.LinkVisible, strconv.FormatBool(v.visible))
	case formExam:
		id := d.formTarget
		d.editor.UpdateExam(id, editor.ExamName, strings.TrimSpace(v.name))
		d.editor.UpdateExam(id, editor.ExamStartDate, strings.TrimSpace(v.startDate))
		d.editor.UpdateExam(id, editor.ExamDate, strings.TrimSpace(v.date))
		d.editor.UpdateExam(id, editor.ExamStartTime, strings.TrimSpace(v.startTime))
		d.editor.UpdateExam(id, editor.ExamEndTime, strings.TrimSpace(v.endTime))
		d.editor.UpdateExam(id, editor.ExamVisible, strconv.FormatBool(v.visible))
	case formReset:
		if !v.confirm {
			return drawerStay
		}
		if err := d.editor.DiscardAndReset(); err != nil {
			d.err = "Varsayılanlar kaydedilemedi: " + err.Error()
			return drawerStay
		}
		d.section = sectionAppearance
		d.cursor = 0
		return drawerReset
	}
	return drawerStay
}

// View renders the drawer.
func (d *Drawer) View(s Styles) string {
	inner := d.width - 4
	var b strings.Builder

	b.WriteString(s.Title.Render("Ayarlar"))
	if d.editor.Dirty() {
		b.WriteString(" " + s.Warning.Render("• kaydedilmemiş değişiklikler"))
	}
	b.WriteString("\n\n")

	if d.form != nil {
		b.WriteString(s.Header.Render(d.formTitle()) + "\n\n")
		b.WriteString(d.form.View())
		return s.Drawer.Width(d.width).Render(b.String())
	}

	var tabs []string
	for i, t := range sectionTitles {
		if section(i) == d.section {
			tabs = append(tabs, s.Cursor.Render(" "+t+" "))
		} else {
			tabs = append(tabs, s.Dim.Render(t))
		}
	}
	b.WriteString(strings.Join(WrapText(strings.Join(tabs, "  "), inner), "\n"))
	b.WriteString("\n" + Divider(inner, s) + "\n")
	b.WriteString(d.sectionView(inner, s))
	b.WriteString("\n" + Divider(inner, s) + "\n")

	if d.err != "" {
		b.WriteString(s.Error.Render(d.err) + "\n")
	}
	b.WriteString(d.help.View(d.keys))
	return s.Drawer.Width(d.width).Render(b.String())
}

func (d *Drawer) formTitle() string {
	switch d.formKind {
	case formAppearance:
		return sectionTitles[sectionAppearance]
	case formSchool:
		return sectionTitles[sectionSchool]
	case formWindow:
		return sectionTitles[sectionWindow]
	case formLink:
		return "Bağlantıyı düzenle"
	case formExam:
		return "Sınavı düzenle"
	case formReset:
		return "Ayarları sıfırla"
	}
	return ""
}

func (d *Drawer) row(i int, text string, s Styles) string {
	if i == d.cursor {
		return s.Selected.Render("> ") + text
	}
	return "  " + text
}

func (d *Drawer) sectionView(width int, s Styles) string {
	draft := d.editor.Draft()
	var lines []string
	field := func(i int, label, value string) {
		lines = append(lines, d.row(i, padRight(s.Dim.Render(label), 16)+Truncate(value, width-20), s))
	}

	switch d.section {
	case sectionAppearance:
		theme := "Koyu"
		if draft.Theme == settings.ThemeLight {
			theme = "Açık"
		}
		field(0, "Tema", theme)
		var swatches []string
		for _, k := range settings.ColorOrder {
			swatches = append(swatches, RadioIcon(k == draft.ColorKey, s)+Swatch(k))
		}
		lines = append(lines, d.row(1, padRight(s.Dim.Render("Renk"), 16)+strings.Join(swatches, " "), s))

	case sectionSchool:
		field(0, "Okul adı", draft.School.Title)
		field(1, "Alt başlık", draft.School.Subtitle)
		field(2, "Açıklama", draft.School.Description)
		field(3, "Logo URL", draft.School.LogoURL)

	case sectionWindow:
		field(0, "Başlık", draft.ProgressWindow.Title)
		field(1, StartLabel, draft.ProgressWindow.Start)
		field(2, TargetLabel, draft.ProgressWindow.End)

	case sectionLinks:
		if len(draft.SocialLinks) == 0 {
			lines = append(lines, s.Muted.Render(noLinksText))
		}
		for i, l := range draft.SocialLinks {
			text := fmt.Sprintf("%s %s", padRight(l.Platform.Label(), 11), settings.DisplayLabel(l))
			lines = append(lines, d.row(i, CheckboxIcon(l.IsVisible, s)+" "+Truncate(text, width-6), s))
		}

	case sectionExams:
		if len(draft.Exams) == 0 {
			lines = append(lines, s.Muted.Render(noExamsText))
		}
		for i, e := range draft.Exams {
			text := fmt.Sprintf("%s %s %s", padRight(e.Name, 12), e.Date, e.StartTime)
			lines = append(lines, d.row(i, CheckboxIcon(e.IsVisible, s)+" "+Truncate(text, width-6), s))
		}
	}
	return strings.Join(lines, "\n")
}

// drawerStatus is shown on the dashboard after the drawer closes.
func drawerStatus(a drawerAction) string {
	switch a {
	case drawerApplied:
		return "Ayarlar kaydedildi"
	case drawerReset:
		return "Ayarlar varsayılana döndürüldü"
	}
	return ""
}
