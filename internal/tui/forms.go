package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/asalkapakli/ykscountdown/internal/countdown"
	"github.com/asalkapakli/ykscountdown/internal/settings"
)

type formKind int

const (
	formNone formKind = iota
	formAppearance
	formSchool
	formWindow
	formLink
	formExam
	formReset
)

// formValues backs every field of the drawer forms. The form writes into it
// through pointers, so it must outlive the form.
type formValues struct {
	theme string
	color string

	title       string
	subtitle    string
	description string
	logoURL     string

	windowTitle string
	start       string
	end         string

	platform string
	url      string
	label    string

	name      string
	startDate string
	date      string
	startTime string
	endTime   string

	visible bool
	confirm bool
}

func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "vazgeç"))
	return km
}

func finishForm(f *huh.Form, width int) *huh.Form {
	return f.WithKeyMap(formKeyMap()).WithShowHelp(true).WithWidth(width)
}

func validateDate(s string) error {
	if !countdown.ValidDate(s) {
		return fmt.Errorf("YYYY-AA-GG biçiminde bir tarih girin")
	}
	return nil
}

func validateTime(s string) error {
	if !countdown.ValidTime(s) {
		return fmt.Errorf("SS:DD biçiminde bir saat girin")
	}
	return nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("bu alan boş bırakılamaz")
	}
	return nil
}

func newAppearanceForm(v *formValues, width int) *huh.Form {
	colorOptions := make([]huh.Option[string], 0, len(settings.ColorOrder))
	for _, k := range settings.ColorOrder {
		colorOptions = append(colorOptions, huh.NewOption(Swatch(k)+" "+string(k), string(k)))
	}
	return finishForm(huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Tema").
			Key("theme").
			Options(
				huh.NewOption("Koyu", string(settings.ThemeDark)),
				huh.NewOption("Açık", string(settings.ThemeLight)),
			).
			Value(&v.theme),
		huh.NewSelect[string]().
			Title("Vurgu rengi").
			Key("color").
			Options(colorOptions...).
			Value(&v.color),
	)), width)
}

func newSchoolForm(v *formValues, width int) *huh.Form {
	return finishForm(huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Okul adı").
			Key("title").
			Value(&v.title),
		huh.NewInput().
			Title("Alt başlık").
			Key("subtitle").
			Value(&v.subtitle),
		huh.NewText().
			Title("Açıklama").
			Key("description").
			Lines(4).
			Value(&v.description),
		huh.NewInput().
			Title("Logo URL").
			Key("logo_url").
			Value(&v.logoURL),
	)), width)
}

func newWindowForm(v *formValues, width int) *huh.Form {
	return finishForm(huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Başlık").
			Key("window_title").
			Value(&v.windowTitle),
		huh.NewInput().
			Title("Başlangıç tarihi").
			Description("YYYY-AA-GG").
			Key("start").
			Validate(validateDate).
			Value(&v.start),
		huh.NewInput().
			Title("Hedef tarih").
			Description("YYYY-AA-GG").
			Key("end").
			Validate(validateDate).
			Value(&v.end),
	)), width)
}

func newLinkForm(v *formValues, width int) *huh.Form {
	platformOptions := make([]huh.Option[string], 0, len(settings.Platforms))
	for _, p := range settings.Platforms {
		platformOptions = append(platformOptions, huh.NewOption(p.Label(), string(p)))
	}
	return finishForm(huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Platform").
			Key("platform").
			Options(platformOptions...).
			Value(&v.platform),
		huh.NewInput().
			Title("Adres").
			Description("URL, kullanıcı adı (@...) veya telefon numarası").
			Key("url").
			Value(&v.url),
		huh.NewInput().
			Title("Etiket").
			Key("label").
			Value(&v.label),
		huh.NewConfirm().
			Title("Görünür").
			Key("visible").
			Affirmative("Evet").
			Negative("Hayır").
			Value(&v.visible),
	)), width)
}

func newExamForm(v *formValues, width int) *huh.Form {
	return finishForm(huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Sınav adı").
			Key("name").
			Validate(notBlank).
			Value(&v.name),
		huh.NewInput().
			Title("Hazırlık başlangıcı").
			Description("YYYY-AA-GG").
			Key("start_date").
			Validate(validateDate).
			Value(&v.startDate),
		huh.NewInput().
			Title("Sınav tarihi").
			Description("YYYY-AA-GG").
			Key("date").
			Validate(validateDate).
			Value(&v.date),
		huh.NewInput().
			Title("Başlangıç saati").
			Description("SS:DD").
			Key("start_time").
			Validate(validateTime).
			Value(&v.startTime),
		huh.NewInput().
			Title("Bitiş saati").
			Description("SS:DD").
			Key("end_time").
			Validate(validateTime).
			Value(&v.endTime),
		huh.NewConfirm().
			Title("Görünür").
			Key("visible").
			Affirmative("Evet").
			Negative("Hayır").
			Value(&v.visible),
	)), width)
}

func newResetForm(v *formValues, width int) *huh.Form {
	return finishForm(huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Tüm ayarlar varsayılana döndürülsün mü?").
			Description("Yapılan tüm değişiklikler silinir.").
			Key("confirm").
			Affirmative("Sıfırla").
			Negative("Vazgeç").
			Value(&v.confirm),
	)), width)
}
