package countdown

import (
	"time"

	"github.com/asalkapakli/ykscountdown/internal/settings"
)

// Card is the computed state of one exam countdown.
type Card struct {
	Exam       settings.Exam
	Deadline   time.Time
	DeadlineOK bool
	Countdown  Countdown
	// Percent is the elapsed share of [exam start date, deadline].
	Percent float64
}

// Board is a snapshot of the whole dashboard at a single instant.
type Board struct {
	Now         time.Time
	WindowTitle string
	WindowStart time.Time
	WindowEnd   time.Time
	WindowOK    bool
	Overall     float64
	Cards       []Card
}

// NewCard computes one exam card at now. A deadline that does not parse is
// reported as completed with full progress.
func NewCard(now time.Time, exam settings.Exam, loc *time.Location) Card {
	card := Card{Exam: exam}

	deadline, ok := Deadline(exam.Date, exam.StartTime, loc)
	if !ok {
		card.Countdown = Countdown{IsCompleted: true}
		card.Percent = 100
		return card
	}
	card.Deadline = deadline
	card.DeadlineOK = true
	card.Countdown = Remaining(now, deadline)

	start, ok := ParseDate(exam.StartDate, loc)
	if !ok {
		// no usable tracking start: the span is degenerate
		start = deadline
	}
	card.Percent = ElapsedPercentage(now, start, deadline)
	return card
}

// WindowPercentage computes the overview bar for the configured window.
// Malformed bounds count as an already-finished window.
func WindowPercentage(now time.Time, window settings.ProgressWindow, loc *time.Location) (float64, bool) {
	start, okStart := ParseDate(window.Start, loc)
	end, okEnd := ParseDate(window.End, loc)
	if !okStart || !okEnd {
		return 100, false
	}
	return ElapsedPercentage(now, start, end), true
}

// NewBoard computes the overview bar and one card per visible exam, all
// against the same now.
func NewBoard(now time.Time, cfg settings.Configuration, loc *time.Location) Board {
	b := Board{
		Now:         now,
		WindowTitle: cfg.ProgressWindow.Title,
	}
	b.Overall, b.WindowOK = WindowPercentage(now, cfg.ProgressWindow, loc)
	if start, ok := ParseDate(cfg.ProgressWindow.Start, loc); ok {
		b.WindowStart = start
	}
	if end, ok := ParseDate(cfg.ProgressWindow.End, loc); ok {
		b.WindowEnd = end
	}

	for _, exam := range cfg.VisibleExams() {
		b.Cards = append(b.Cards, NewCard(now, exam, loc))
	}
	return b
}

// Completed returns how many cards have reached their deadline.
func (b Board) Completed() int {
	n := 0
	for _, c := range b.Cards {
		if c.Countdown.IsCompleted {
			n++
		}
	}
	return n
}
