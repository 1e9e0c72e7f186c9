package countdown

import (
	"testing"
	"time"

	"github.com/asalkapakli/ykscountdown/internal/settings"
)

func TestNewCard(t *testing.T) {
	now := mustDeadline(t, "2026-06-19", "10:15")

	card := NewCard(now, settings.Exam{
		ID: "1", Name: "TYT", StartDate: "2026-06-18", Date: "2026-06-20", StartTime: "10:15", EndTime: "13:00", IsVisible: true,
	}, trt)
	if !card.DeadlineOK {
		t.Fatal("deadline should parse")
	}
	if card.Countdown != (Countdown{Days: 1}) {
		t.Errorf("countdown = %+v, want one day", card.Countdown)
	}
	// 2026-06-18 00:00 to 2026-06-20 10:15 is 58.25h; 34.25h have passed
	want := 100 * 34.25 / 58.25
	if diff := card.Percent - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("percent = %v, want %v", card.Percent, want)
	}
}

func TestNewCardMalformedDeadline(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, trt)
	for _, exam := range []settings.Exam{
		{Date: "soon", StartTime: "10:00"},
		{Date: "2026-06-20", StartTime: "ten"},
		{},
	} {
		card := NewCard(now, exam, trt)
		if card.DeadlineOK {
			t.Errorf("%+v: deadline should not parse", exam)
		}
		if !card.Countdown.IsCompleted || card.Countdown.TotalSeconds() != 0 {
			t.Errorf("%+v: countdown = %+v, want completed", exam, card.Countdown)
		}
		if card.Percent != 100 {
			t.Errorf("%+v: percent = %v, want 100", exam, card.Percent)
		}
	}
}

func TestNewCardMalformedStartDate(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, trt)
	card := NewCard(now, settings.Exam{StartDate: "?", Date: "2026-06-20", StartTime: "10:15"}, trt)
	if card.Countdown.IsCompleted {
		t.Error("countdown should still run with a malformed start date")
	}
	if card.Percent != 100 {
		t.Errorf("percent = %v, want 100 for a degenerate span", card.Percent)
	}
}

func TestNewBoard(t *testing.T) {
	cfg := settings.Defaults()
	cfg.Exams[2].IsVisible = false
	now := time.Date(2026, 6, 21, 12, 0, 0, 0, trt)

	b := NewBoard(now, cfg, trt)
	if len(b.Cards) != 2 {
		t.Fatalf("cards = %d, want 2 visible", len(b.Cards))
	}
	for _, c := range b.Cards {
		if !c.Countdown.IsCompleted {
			t.Errorf("%s should be completed on %v", c.Exam.Name, now)
		}
	}
	if b.Completed() != 2 {
		t.Errorf("Completed() = %d, want 2", b.Completed())
	}
	if b.Overall != 100 || !b.WindowOK {
		t.Errorf("overall = %v ok %v, want 100 true", b.Overall, b.WindowOK)
	}
	if b.WindowTitle != settings.DefaultWindowTitle {
		t.Errorf("title = %q", b.WindowTitle)
	}
	if !b.Now.Equal(now) {
		t.Errorf("board now = %v, want shared %v", b.Now, now)
	}
}

func TestWindowPercentageMalformed(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, trt)
	p, ok := WindowPercentage(now, settings.ProgressWindow{Start: "2025-09-01", End: "bad"}, trt)
	if ok || p != 100 {
		t.Errorf("malformed end: %v %v, want 100 false", p, ok)
	}
	p, ok = WindowPercentage(now, settings.ProgressWindow{Start: "2026-06-20", End: "2025-09-01"}, trt)
	if !ok || p != 100 {
		t.Errorf("reversed window: %v %v, want 100 true", p, ok)
	}
}

func TestFormatting(t *testing.T) {
	d := time.Date(2026, 6, 20, 10, 15, 0, 0, trt)
	if got := LongDate(d); got != "20 Haziran 2026" {
		t.Errorf("LongDate = %q", got)
	}
	if got := ShortDate(d); got != "20.06.2026" {
		t.Errorf("ShortDate = %q", got)
	}
	if got := LongDateString("2026-02-01", trt); got != "1 Şubat 2026" {
		t.Errorf("LongDateString = %q", got)
	}
	if got := LongDateString("garbage", trt); got != "garbage" {
		t.Errorf("LongDateString should echo bad input, got %q", got)
	}

	c := Countdown{Days: 245, Hours: 3, Minutes: 0, Seconds: 9}
	if got := c.Digits(); got != [4]string{"245", "03", "00", "09"} {
		t.Errorf("Digits = %v", got)
	}
	if got := FormatPercent(12.3456, 2); got != "12.35" {
		t.Errorf("FormatPercent = %q", got)
	}
}
