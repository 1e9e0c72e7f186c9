// Package countdown computes exam countdowns and elapsed-progress percentages.
// Every function is pure: results depend only on the instants passed in.
package countdown

import "time"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Countdown is the time left until a target, split into whole units.
type Countdown struct {
	Days        int64
	Hours       int64
	Minutes     int64
	Seconds     int64
	IsCompleted bool
}

// TotalSeconds reassembles the countdown into seconds.
func (c Countdown) TotalSeconds() int64 {
	return ((c.Days*24+c.Hours)*60+c.Minutes)*60 + c.Seconds
}

// Remaining returns the countdown from now to target. The difference is
// truncated to whole seconds; zero or less means the target has passed.
func Remaining(now, target time.Time) Countdown {
	delta := (target.UnixMilli() - now.UnixMilli()) / 1000
	if delta <= 0 {
		return Countdown{IsCompleted: true}
	}

	return Countdown{
		Days:    delta / secondsPerDay,
		Hours:   (delta % secondsPerDay) / secondsPerHour,
		Minutes: (delta % secondsPerHour) / secondsPerMinute,
		Seconds: delta % secondsPerMinute,
	}
}

// ElapsedPercentage returns how much of [start, end] has passed at now, in
// [0, 100]. A window with end <= start counts as complete.
func ElapsedPercentage(now, start, end time.Time) float64 {
	s, e, n := start.UnixMilli(), end.UnixMilli(), now.UnixMilli()

	if e <= s {
		return 100
	}
	if n <= s {
		return 0
	}
	if n >= e {
		return 100
	}

	pct := 100 * float64(n-s) / float64(e-s)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
