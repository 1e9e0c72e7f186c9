package editor

import (
	"strconv"

	"github.com/asalkapakli/ykscountdown/internal/settings"
)

// ExamField names an editable field of an exam.
type ExamField string

const (
	ExamName      ExamField = "name"
	ExamStartDate ExamField = "startDate"
	ExamDate      ExamField = "date"
	ExamStartTime ExamField = "startTime"
	ExamEndTime   ExamField = "endTime"
	ExamVisible   ExamField = "isVisible"
)

// LinkField names an editable field of a social link.
type LinkField string

const (
	LinkPlatform LinkField = "platform"
	LinkURL      LinkField = "url"
	LinkLabel    LinkField = "label"
	LinkVisible  LinkField = "isVisible"
)

// SchoolField names a field of the school block.
type SchoolField string

const (
	SchoolTitle       SchoolField = "title"
	SchoolSubtitle    SchoolField = "subtitle"
	SchoolDescription SchoolField = "description"
	SchoolLogoURL     SchoolField = "logoUrl"
)

// WindowField names a field of the progress window.
type WindowField string

const (
	WindowTitle WindowField = "title"
	WindowStart WindowField = "start"
	WindowEnd   WindowField = "end"
)

// setExamField writes value into one field. It reports false for unknown
// fields and for values the field cannot hold.
func setExamField(e *settings.Exam, field ExamField, value string) bool {
	switch field {
	case ExamName:
		e.Name = value
	case ExamStartDate:
		e.StartDate = value
	case ExamDate:
		e.Date = value
	case ExamStartTime:
		e.StartTime = value
	case ExamEndTime:
		e.EndTime = value
	case ExamVisible:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return false
		}
		e.IsVisible = v
	default:
		return false
	}
	return true
}

func setLinkField(l *settings.SocialLink, field LinkField, value string) bool {
	switch field {
	case LinkPlatform:
		p := settings.Platform(value)
		if !knownPlatform(p) {
			return false
		}
		l.Platform = p
	case LinkURL:
		l.URL = value
	case LinkLabel:
		l.Label = value
	case LinkVisible:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return false
		}
		l.IsVisible = v
	default:
		return false
	}
	return true
}

func setSchoolField(s *settings.School, field SchoolField, value string) bool {
	switch field {
	case SchoolTitle:
		s.Title = value
	case SchoolSubtitle:
		s.Subtitle = value
	case SchoolDescription:
		s.Description = value
	case SchoolLogoURL:
		s.LogoURL = value
	default:
		return false
	}
	return true
}

func setWindowField(w *settings.ProgressWindow, field WindowField, value string) bool {
	switch field {
	case WindowTitle:
		w.Title = value
	case WindowStart:
		w.Start = value
	case WindowEnd:
		w.End = value
	default:
		return false
	}
	return true
}

func knownPlatform(p settings.Platform) bool {
	for _, known := range settings.Platforms {
		if p == known {
			return true
		}
	}
	return false
}
