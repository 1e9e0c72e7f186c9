package countdown

import (
	"fmt"
	"strconv"
	"time"
)

var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// Unit labels shown under the countdown digits.
var UnitLabels = [4]string{"GÜN", "SAAT", "DAKİKA", "SANİYE"}

// LongDate formats t as "20 Haziran 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), turkishMonths[t.Month()-1], t.Year())
}

// ShortDate formats t as "20.06.2026".
func ShortDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// LongDateString formats a stored YYYY-MM-DD date, returning the input
// unchanged when it does not parse.
func LongDateString(date string, loc *time.Location) string {
	t, ok := ParseDate(date, loc)
	if !ok {
		return date
	}
	return LongDate(t)
}

// Pad2 zero-pads n to at least two digits.
func Pad2(n int64) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// Digits returns the four countdown values in display order.
func (c Countdown) Digits() [4]string {
	return [4]string{Pad2(c.Days), Pad2(c.Hours), Pad2(c.Minutes), Pad2(c.Seconds)}
}

// FormatPercent renders p with the given number of decimals.
func FormatPercent(p float64, decimals int) string {
	return strconv.FormatFloat(p, 'f', decimals, 64)
}
