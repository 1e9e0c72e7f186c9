package tui

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asalkapakli/ykscountdown/internal/counter"
	"github.com/asalkapakli/ykscountdown/internal/countdown"
	"github.com/asalkapakli/ykscountdown/internal/logging"
	"github.com/asalkapakli/ykscountdown/internal/settings"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestState(t *testing.T) *AppState {
	t.Helper()
	store := settings.NewStore(settings.NewMemoryBackend(), settings.StorageKey, logging.Discard())
	store.Load()
	return &AppState{
		Store:    store,
		Location: time.UTC,
		Tick:     time.Second,
		Logger:   logging.Discard(),
		Now:      func() time.Time { return testNow },
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestNewModel(t *testing.T) {
	state := newTestState(t)
	model := NewModel(state)
	if model == nil {
		t.Fatal("NewModel returned nil")
	}
	if model.drawer == nil {
		t.Fatal("drawer should not be nil")
	}
	if model.drawer.IsOpen() {
		t.Error("drawer should start closed")
	}
	if got := len(model.Board().Cards); got != 3 {
		t.Errorf("expected 3 cards, got %d", got)
	}
	if model.theme != NewTheme(settings.ThemeDark, settings.ColorBlue) {
		t.Error("expected the dark blue theme")
	}
}

func TestStaleTickDropped(t *testing.T) {
	model := NewModel(newTestState(t))
	if cmd := model.Init(); cmd == nil {
		t.Fatal("Init should schedule a tick")
	}

	later := testNow.Add(time.Hour)
	model.Update(tickMsg{gen: model.tickGen - 1, at: later})
	if !model.Board().Now.Equal(testNow) {
		t.Errorf("stale tick refreshed the board: %v", model.Board().Now)
	}

	_, cmd := model.Update(tickMsg{gen: model.tickGen, at: later})
	if !model.Board().Now.Equal(later) {
		t.Errorf("expected board at %v, got %v", later, model.Board().Now)
	}
	if cmd == nil {
		t.Error("a current tick should schedule the next one")
	}
}

func TestDrawerPreviewRevertsOnClose(t *testing.T) {
	state := newTestState(t)
	model := NewModel(state)

	press(model, runes("s"))
	if !model.drawer.IsOpen() {
		t.Fatal("'s' should open the settings drawer")
	}

	press(model, runes("t"))
	if model.theme != NewTheme(settings.ThemeLight, settings.ColorBlue) {
		t.Error("'t' should preview the light theme")
	}
	press(model, runes("c"))
	if model.theme != NewTheme(settings.ThemeLight, settings.ColorOrder[1]) {
		t.Error("'c' should preview the next accent color")
	}

	press(model, tea.KeyMsg{Type: tea.KeyEsc})
	if model.drawer.IsOpen() {
		t.Fatal("esc should close the drawer")
	}
	if model.theme != NewTheme(settings.ThemeDark, settings.ColorBlue) {
		t.Error("closing should revert the preview")
	}
	if cfg := state.Store.Current(); cfg.Theme != settings.ThemeDark {
		t.Errorf("closing must not commit, got theme %q", cfg.Theme)
	}
}

type failingBackend struct {
	*settings.MemoryBackend
	fail bool
}

func (b *failingBackend) Set(key string, data []byte) error {
	if b.fail {
		return errors.New("disk full")
	}
	return b.MemoryBackend.Set(key, data)
}

func TestResetFailureKeepsDrawerOpen(t *testing.T) {
	state := newTestState(t)
	backend := &failingBackend{MemoryBackend: settings.NewMemoryBackend()}
	state.Store = settings.NewStore(backend, settings.StorageKey, logging.Discard())
	state.Store.Load()
	model := NewModel(state)

	press(model, runes("s"), runes("t"))
	backend.fail = true

	d := model.drawer
	d.formKind = formReset
	d.formValues = &formValues{confirm: true}
	if action := d.applyForm(); action != drawerStay {
		t.Fatalf("failed reset returned action %v, want drawerStay", action)
	}
	d.closeForm()

	if !d.IsOpen() {
		t.Fatal("drawer should stay open after a failed reset")
	}
	if !strings.Contains(d.err, "disk full") {
		t.Errorf("drawer error = %q, want the write failure", d.err)
	}
	if model.theme != NewTheme(settings.ThemeDark, settings.ColorBlue) {
		t.Error("preview should show the committed appearance after a failed reset")
	}
	if model.status != "" {
		t.Errorf("status = %q, want none", model.status)
	}
}

func TestAddExamAndApply(t *testing.T) {
	state := newTestState(t)
	model := NewModel(state)
	model.Init()
	gen := model.tickGen

	press(model, runes("s"))
	for i := 0; i < int(sectionExams); i++ {
		press(model, tea.KeyMsg{Type: tea.KeyTab})
	}
	if model.drawer.section != sectionExams {
		t.Fatalf("expected exams section, got %d", model.drawer.section)
	}

	press(model, runes("a"))
	if n := len(model.drawer.editor.Draft().Exams); n != 4 {
		t.Fatalf("expected 4 draft exams, got %d", n)
	}
	if n := len(state.Store.Current().Exams); n != 3 {
		t.Fatalf("draft leaked into the store: %d exams", n)
	}

	press(model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.drawer.IsOpen() {
		t.Error("apply should close the drawer")
	}
	exams := state.Store.Current().Exams
	if len(exams) != 4 {
		t.Fatalf("expected 4 committed exams, got %d", len(exams))
	}
	added := exams[3]
	if added.Name != "Yeni Sınav" || added.Date != "2026-03-14" {
		t.Errorf("unexpected new exam: %+v", added)
	}
	if len(model.Board().Cards) != 4 {
		t.Errorf("board should show the new exam, got %d cards", len(model.Board().Cards))
	}
	if model.status != "Ayarlar kaydedildi" {
		t.Errorf("unexpected status %q", model.status)
	}
	if model.tickGen == gen {
		t.Error("apply should restart the tick chain")
	}
}

func TestToggleHidesCard(t *testing.T) {
	state := newTestState(t)
	model := NewModel(state)

	press(model, runes("s"))
	for i := 0; i < int(sectionExams); i++ {
		press(model, tea.KeyMsg{Type: tea.KeyTab})
	}
	press(model, runes("v"), runes("j"), runes("v"), runes("j"), runes("v"))
	press(model, tea.KeyMsg{Type: tea.KeyEnter})

	if n := len(model.Board().Cards); n != 0 {
		t.Fatalf("expected no visible cards, got %d", n)
	}
	if !strings.Contains(model.View(), "Gösterilecek sayaç bulunamadı") {
		t.Error("view should show the empty state")
	}
}

func TestCounterMessages(t *testing.T) {
	model := NewModel(newTestState(t))
	model.counterGen = 2

	model.Update(counterMsg{gen: 1, count: 99})
	if model.visitsKnown {
		t.Error("stale counter result should be dropped")
	}

	model.Update(counterMsg{gen: 2, count: 1234})
	if !model.visitsKnown || model.visits != 1234 {
		t.Fatalf("expected 1234 visits, got %d (known=%v)", model.visits, model.visitsKnown)
	}

	model.Update(counterMsg{gen: 2, err: errors.New("timeout")})
	if model.visits != 1234 {
		t.Errorf("a failed request should keep the previous count, got %d", model.visits)
	}
	if !strings.Contains(model.View(), "1.234 Görüntülenme") {
		t.Error("view should show the visit count")
	}
}

func TestHitCounter(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		fmt.Fprint(w, `{"count": 7}`)
	}))
	defer srv.Close()

	state := newTestState(t)
	state.Counter = counter.NewClient(srv.URL, "ns", time.Second, nil)
	state.CounterTimeout = time.Second
	model := NewModel(state)

	cmd := model.hitCounter()
	if cmd == nil {
		t.Fatal("expected a counter command")
	}
	model.Update(cmd())

	if path != "/ns/aziz-sancar-anadolu-lisesi/up" {
		t.Errorf("unexpected request path %q", path)
	}
	if model.visits != 7 {
		t.Errorf("expected 7 visits, got %d", model.visits)
	}
}

func TestHitCounterDisabled(t *testing.T) {
	model := NewModel(newTestState(t))
	if cmd := model.hitCounter(); cmd != nil {
		t.Error("no request should be made without a client")
	}
}

func TestCopySummary(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = s
		return nil
	}
	defer func() { clipboardWrite = orig }()

	model := NewModel(newTestState(t))
	_, cmd := model.Update(runes("y"))
	if cmd == nil {
		t.Fatal("'y' should return a copy command")
	}
	model.Update(cmd())

	if !strings.HasPrefix(copied, "Aziz Sancar Anadolu Lisesi") {
		t.Errorf("unexpected summary: %q", copied)
	}
	if model.status != "Özet panoya kopyalandı" {
		t.Errorf("unexpected status %q", model.status)
	}
}

func TestClipboardFailure(t *testing.T) {
	orig := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no xclip") }
	defer func() { clipboardWrite = orig }()

	msg := copyToClipboard("x")()
	res, ok := msg.(clipboardCopyMsg)
	if !ok {
		t.Fatalf("expected clipboardCopyMsg, got %T", msg)
	}
	if res.success || res.err == nil {
		t.Error("expected a failed copy")
	}
}

func TestSummary(t *testing.T) {
	cfg := settings.Defaults()
	loc := time.UTC

	before := countdown.NewBoard(time.Date(2026, 6, 19, 10, 15, 0, 0, loc), cfg, loc)
	got := Summary(before, cfg, loc)
	if !strings.Contains(got, "TYT (20 Haziran 2026 10:15): 01 GÜN 00 SAAT 00 DAKİKA 00 SANİYE") {
		t.Errorf("unexpected summary:\n%s", got)
	}

	after := countdown.NewBoard(time.Date(2026, 7, 1, 0, 0, 0, 0, loc), cfg, loc)
	got = Summary(after, cfg, loc)
	if !strings.Contains(got, CompletedText) || !strings.Contains(got, "100.00%") {
		t.Errorf("unexpected summary:\n%s", got)
	}
}

func TestCardColumns(t *testing.T) {
	tests := []struct {
		width int
		cards int
		want  int
	}{
		{140, 3, 3},
		{140, 1, 1},
		{140, 5, 3},
		{80, 3, 2},
		{50, 3, 1},
	}
	for _, tt := range tests {
		l := NewLayout(tt.width, DefaultHeight)
		if got := l.CardColumns(tt.cards); got != tt.want {
			t.Errorf("CardColumns(width=%d, cards=%d) = %d, want %d", tt.width, tt.cards, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	bar := ProgressBar(42.1666, 30, DefaultStyles)
	if !strings.Contains(bar, "42.17%") {
		t.Errorf("expected percentage in bar, got %q", bar)
	}
}

func TestViewRenders(t *testing.T) {
	model := NewModel(newTestState(t))
	model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := model.View()
	for _, want := range []string{"Aziz Sancar Anadolu Lisesi", "TYT", "AYT", "YDT", settings.DefaultWindowTitle} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	press(model, runes("s"))
	if !strings.Contains(model.View(), "Ayarlar") {
		t.Error("drawer view should show its title")
	}
}
