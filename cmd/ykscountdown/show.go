package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/asalkapakli/ykscountdown/internal/countdown"
	"github.com/asalkapakli/ykscountdown/internal/progress"
	"github.com/asalkapakli/ykscountdown/internal/settings"
	"github.com/asalkapakli/ykscountdown/internal/tui"
)

type showFlags struct {
	at       string
	jsonOut  bool
	watch    bool
	duration time.Duration
	width    int
}

func newShowCmd(root *rootFlags) *cobra.Command {
	flags := &showFlags{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the countdown without starting the dashboard",
		Long: `Print the overall progress and every visible exam countdown once.

--at evaluates the board at another instant (RFC3339 or YYYY-MM-DD in the
configured timezone). --watch keeps redrawing the overall progress bar on
stderr until interrupted or until --for has elapsed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.at, "at", "", "Evaluate at this time instead of now (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "Print the board as JSON")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "Redraw the overall progress bar every tick")
	cmd.Flags().DurationVar(&flags.duration, "for", 0, "Stop watching after this long (0 = until interrupted)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Progress bar width (default: fit the terminal)")

	return cmd
}

func runShow(cmd *cobra.Command, root *rootFlags, flags *showFlags) error {
	if flags.watch && (flags.jsonOut || flags.at != "") {
		return fmt.Errorf("--watch cannot be combined with --json or --at")
	}
	if flags.width < 0 {
		return fmt.Errorf("--width must be positive")
	}

	a, err := loadApp(root)
	if err != nil {
		return err
	}
	defer a.Close()

	loc := a.cfg.Location()
	now := time.Now()
	if flags.at != "" {
		now, err = parseAt(flags.at, loc)
		if err != nil {
			return err
		}
	}

	cfg := a.store.Current()
	width := flags.width
	if width == 0 {
		width = fitWidth(os.Stdout)
	}

	if flags.watch {
		return watch(cmd, a, cfg, width, flags.duration)
	}

	board := countdown.NewBoard(now, cfg, loc)
	if flags.jsonOut {
		return writeBoardJSON(cmd.OutOrStdout(), board, loc)
	}
	writeBoard(cmd.OutOrStdout(), board, cfg, loc, width)
	return nil
}

// parseAt accepts a full RFC3339 timestamp or a date read as local midnight.
func parseAt(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	if t, ok := countdown.ParseDate(s, loc); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("--at: %q is neither RFC3339 nor YYYY-MM-DD", s)
}

// fitWidth sizes the bar to the terminal, leaving room for the label.
func fitWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return progress.DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return progress.DefaultWidth
	}
	return max(10, min(w-50, 80))
}

func watch(cmd *cobra.Command, a *app, cfg settings.Configuration, width int, limit time.Duration) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	loc := a.cfg.Location()
	title := cfg.ProgressWindow.Title
	if title == "" {
		title = settings.DefaultWindowTitle
	}
	bar := progress.NewLiveBar(title, width)
	bar.SetOutput(cmd.ErrOrStderr())
	if f, ok := cmd.ErrOrStderr().(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		// carriage-return redraws only make sense on a terminal
		bar.Disable()
	}

	ticker := time.NewTicker(a.cfg.Tick())
	defer ticker.Stop()

	board := countdown.NewBoard(time.Now(), cfg, loc)
	for {
		bar.Set(board.Overall, nextExam(board))
		select {
		case <-ctx.Done():
			bar.Finish()
			writeBoard(cmd.OutOrStdout(), board, cfg, loc, width)
			return nil
		case t := <-ticker.C:
			board = countdown.NewBoard(t, cfg, loc)
		}
	}
}

// nextExam describes the nearest exam that has not started yet.
func nextExam(b countdown.Board) string {
	for _, c := range b.Cards {
		if c.Countdown.IsCompleted {
			continue
		}
		d := c.Countdown.Digits()
		return fmt.Sprintf("%s %s %s %s:%s:%s", c.Exam.Name, d[0], strings.ToLower(countdown.UnitLabels[0]), d[1], d[2], d[3])
	}
	return ""
}

func writeBoard(w io.Writer, b countdown.Board, cfg settings.Configuration, loc *time.Location, width int) {
	fmt.Fprintln(w, cfg.School.Title)
	if cfg.School.Subtitle != "" {
		fmt.Fprintln(w, cfg.School.Subtitle)
	}
	fmt.Fprintln(w)

	title := b.WindowTitle
	if title == "" {
		title = settings.DefaultWindowTitle
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, progress.Render(b.Overall, width))
	fmt.Fprintf(w, "%s: %s  %s: %s\n\n",
		tui.StartLabel, shortDate(cfg.ProgressWindow.Start, loc),
		tui.TargetLabel, shortDate(cfg.ProgressWindow.End, loc))

	if len(b.Cards) == 0 {
		fmt.Fprintln(w, tui.EmptyStateText)
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SINAV\tTARİH\tKALAN\tİLERLEME")
		for _, c := range b.Cards {
			when := countdown.LongDateString(c.Exam.Date, loc) + " " + c.Exam.StartTime
			remaining, pct := tui.CompletedText, "-"
			if !c.Countdown.IsCompleted {
				d := c.Countdown.Digits()
				remaining = fmt.Sprintf("%s %s %s %s %s %s %s %s",
					d[0], countdown.UnitLabels[0], d[1], countdown.UnitLabels[1],
					d[2], countdown.UnitLabels[2], d[3], countdown.UnitLabels[3])
				pct = "%" + countdown.FormatPercent(c.Percent, 1)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Exam.Name, when, remaining, pct)
		}
		tw.Flush()
	}

	if links := cfg.VisibleLinks(); len(links) > 0 {
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, l := range links {
			fmt.Fprintf(tw, "%s\t%s\n", settings.DisplayLabel(l), settings.Href(l))
		}
		tw.Flush()
	}
}

func shortDate(date string, loc *time.Location) string {
	t, ok := countdown.ParseDate(date, loc)
	if !ok {
		return date
	}
	return countdown.ShortDate(t)
}

type windowJSON struct {
	Title   string  `json:"title"`
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Valid   bool    `json:"valid"`
	Percent float64 `json:"percent"`
}

type examJSON struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Deadline  string  `json:"deadline,omitempty"`
	Completed bool    `json:"completed"`
	Days      int64   `json:"days"`
	Hours     int64   `json:"hours"`
	Minutes   int64   `json:"minutes"`
	Seconds   int64   `json:"seconds"`
	Percent   float64 `json:"percent"`
}

type boardJSON struct {
	Now    string     `json:"now"`
	Window windowJSON `json:"window"`
	Exams  []examJSON `json:"exams"`
}

func writeBoardJSON(w io.Writer, b countdown.Board, loc *time.Location) error {
	out := boardJSON{
		Now: b.Now.In(loc).Format(time.RFC3339),
		Window: windowJSON{
			Title:   b.WindowTitle,
			Valid:   b.WindowOK,
			Percent: round2(b.Overall),
		},
		Exams: make([]examJSON, 0, len(b.Cards)),
	}
	if b.WindowOK {
		out.Window.Start = b.WindowStart.Format(time.RFC3339)
		out.Window.End = b.WindowEnd.Format(time.RFC3339)
	}
	for _, c := range b.Cards {
		e := examJSON{
			ID:        c.Exam.ID,
			Name:      c.Exam.Name,
			Completed: c.Countdown.IsCompleted,
			Days:      c.Countdown.Days,
			Hours:     c.Countdown.Hours,
			Minutes:   c.Countdown.Minutes,
			Seconds:   c.Countdown.Seconds,
			Percent:   round2(c.Percent),
		}
		if c.DeadlineOK {
			e.Deadline = c.Deadline.Format(time.RFC3339)
		}
		out.Exams = append(out.Exams, e)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func round2(p float64) float64 {
	return math.Round(p*100) / 100
}
