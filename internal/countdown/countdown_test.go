package countdown

import (
	"math/rand"
	"testing"
	"time"
)

var trt = time.FixedZone("TRT", 3*60*60)

func mustDeadline(t *testing.T, date, tod string) time.Time {
	t.Helper()
	d, ok := Deadline(date, tod, trt)
	if !ok {
		t.Fatalf("Deadline(%q, %q) did not parse", date, tod)
	}
	return d
}

func TestRemainingOneDay(t *testing.T) {
	now := mustDeadline(t, "2026-06-19", "10:15")
	target := mustDeadline(t, "2026-06-20", "10:15")

	got := Remaining(now, target)
	want := Countdown{Days: 1}
	if got != want {
		t.Errorf("Remaining = %+v, want %+v", got, want)
	}
}

func TestRemainingDecomposition(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, trt)
	tests := []struct {
		name   string
		offset time.Duration
		want   Countdown
	}{
		{"one second", time.Second, Countdown{Seconds: 1}},
		{"mixed", 2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second, Countdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}},
		{"truncates millis", 59*time.Second + 999*time.Millisecond, Countdown{Seconds: 59}},
		{"hour boundary", time.Hour - time.Millisecond, Countdown{Minutes: 59, Seconds: 59}},
		{"sub-second is complete", 999 * time.Millisecond, Countdown{IsCompleted: true}},
		{"exactly now", 0, Countdown{IsCompleted: true}},
		{"past", -90 * time.Minute, Countdown{IsCompleted: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remaining(now, now.Add(tt.offset)); got != tt.want {
				t.Errorf("Remaining(+%v) = %+v, want %+v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestRemainingProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2025, 9, 1, 0, 0, 0, 0, trt)

	for i := 0; i < 5000; i++ {
		now := base.Add(time.Duration(rng.Int63n(int64(400*24*time.Hour))) - 200*24*time.Hour)
		deltaMs := rng.Int63n(int64(3*365*24*time.Hour/time.Millisecond)) - int64(365*24*time.Hour/time.Millisecond)
		target := now.Add(time.Duration(deltaMs) * time.Millisecond)

		got := Remaining(now, target)
		if deltaMs/1000 <= 0 {
			if got != (Countdown{IsCompleted: true}) {
				t.Fatalf("delta %dms: got %+v, want completed zeros", deltaMs, got)
			}
			continue
		}
		if got.IsCompleted {
			t.Fatalf("delta %dms: unexpected completion", deltaMs)
		}
		if got.TotalSeconds() != deltaMs/1000 {
			t.Fatalf("delta %dms: reassembled %d, want %d", deltaMs, got.TotalSeconds(), deltaMs/1000)
		}
		if got.Hours < 0 || got.Hours > 23 || got.Minutes < 0 || got.Minutes > 59 || got.Seconds < 0 || got.Seconds > 59 {
			t.Fatalf("delta %dms: unit out of range: %+v", deltaMs, got)
		}
	}
}

func TestRemainingExtremeInputs(t *testing.T) {
	epoch := time.Unix(0, 0)
	before := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	far := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

	if !Remaining(epoch, before).IsCompleted {
		t.Error("target before epoch and before now should be completed")
	}
	got := Remaining(before, far)
	if got.IsCompleted || got.Days <= 0 {
		t.Errorf("far future target: %+v", got)
	}
}

func TestElapsedPercentageBoundaries(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, trt)
	end := time.Date(2026, 6, 20, 0, 0, 0, 0, trt)
	mid := start.Add(end.Sub(start) / 2)

	tests := []struct {
		name  string
		now   time.Time
		start time.Time
		end   time.Time
		want  float64
	}{
		{"before start", start.Add(-time.Hour), start, end, 0},
		{"at start", start, start, end, 0},
		{"midpoint", mid, start, end, 50},
		{"at end", end, start, end, 100},
		{"after end", end.Add(time.Hour), start, end, 100},
		{"equal bounds", start.Add(-time.Hour), start, start, 100},
		{"reversed before", start.Add(-48 * time.Hour), end, start, 100},
		{"reversed inside", mid, end, start, 100},
		{"now before epoch", time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC), start, end, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElapsedPercentage(tt.now, tt.start, tt.end)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("ElapsedPercentage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElapsedPercentageMonotonic(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, trt)
	end := start.Add(293 * 24 * time.Hour)

	prev := -1.0
	for now := start.Add(-72 * time.Hour); now.Before(end.Add(72 * time.Hour)); now = now.Add(97 * time.Minute) {
		p := ElapsedPercentage(now, start, end)
		if p < 0 || p > 100 {
			t.Fatalf("at %v: %v out of range", now, p)
		}
		if p < prev {
			t.Fatalf("at %v: %v decreased from %v", now, p, prev)
		}
		prev = p
	}
	if prev != 100 {
		t.Errorf("final value = %v, want 100", prev)
	}
}

func TestDeadlineParsing(t *testing.T) {
	tests := []struct {
		date, tod string
		ok        bool
	}{
		{"2026-06-20", "10:15", true},
		{" 2026-06-20 ", " 10:15 ", true},
		{"2026-06-20", "", false},
		{"", "10:15", false},
		{"2026-13-01", "10:15", false},
		{"2026-06-20", "25:00", false},
		{"20.06.2026", "10:15", false},
	}
	for _, tt := range tests {
		d, ok := Deadline(tt.date, tt.tod, trt)
		if ok != tt.ok {
			t.Errorf("Deadline(%q, %q) ok = %v, want %v", tt.date, tt.tod, ok, tt.ok)
			continue
		}
		if ok && (d.Hour() != 10 || d.Minute() != 15 || d.Location() != trt) {
			t.Errorf("Deadline(%q, %q) = %v", tt.date, tt.tod, d)
		}
	}

	if _, ok := Deadline("2026-06-20", "10:15", nil); !ok {
		t.Error("nil location should fall back to local time")
	}
	if !ValidDate("2026-02-28") || ValidDate("2026-02-30") {
		t.Error("ValidDate mismatch")
	}
	if !ValidTime("09:05") || ValidTime("9") {
		t.Error("ValidTime mismatch")
	}
}
