package countdown

import (
	"strings"
	"time"
)

const (
	// DateLayout is the stored format of every date field.
	DateLayout = "2006-01-02"
	// TimeLayout is the stored format of exam start and end times.
	TimeLayout = "15:04"

	deadlineLayout = DateLayout + "T" + TimeLayout
)

// ParseDate parses a YYYY-MM-DD date as local midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), location(loc))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Deadline combines an exam date and its HH:MM start time as wall-clock time
// in loc. ok is false when either part is malformed.
func Deadline(date, timeOfDay string, loc *time.Location) (time.Time, bool) {
	raw := strings.TrimSpace(date) + "T" + strings.TrimSpace(timeOfDay)
	t, err := time.ParseInLocation(deadlineLayout, raw, location(loc))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ValidDate reports whether s parses as a stored date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, strings.TrimSpace(s))
	return err == nil
}

// ValidTime reports whether s parses as a stored HH:MM time.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	return err == nil
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
