package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asalkapakli/ykscountdown/internal/countdown"
	"github.com/asalkapakli/ykscountdown/internal/editor"
	"github.com/asalkapakli/ykscountdown/internal/settings"
)

// Model is the main TUI model.
type Model struct {
	state  *AppState
	theme  Theme
	styles Styles
	layout Layout
	keys   dashboardKeys
	help   help.Model

	editor *editor.Editor
	drawer *Drawer

	board countdown.Board

	// tickGen stamps scheduled ticks; a tick with an older stamp is dropped.
	tickGen int

	counterGen   int
	counterTitle string
	visits       int64
	visitsKnown  bool

	showHelp bool
	status   string
}

// NewModel creates a new TUI model.
func NewModel(state *AppState) *Model {
	m := &Model{
		state:  state,
		layout: NewLayout(DefaultWidth, DefaultHeight),
		keys:   newDashboardKeys(),
		help:   help.New(),
	}
	cfg := state.Store.Current()
	m.Apply(cfg.Theme, cfg.ColorKey)

	m.editor = editor.New(state.Store, m,
		editor.WithClock(state.now),
		editor.WithLocation(state.location()),
	)
	m.drawer = NewDrawer(m.editor)
	m.refresh(state.now())
	return m
}

// Apply implements editor.Appearance: it restyles the whole view.
func (m *Model) Apply(theme settings.Theme, color settings.ColorKey) {
	m.theme = NewTheme(theme, color)
	m.styles = NewStyles(m.theme)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.scheduleTick(), m.hitCounter())
}

// tickMsg is sent once per tick interval.
type tickMsg struct {
	gen int
	at  time.Time
}

// scheduleTick starts a new tick chain and orphans any pending one.
func (m *Model) scheduleTick() tea.Cmd {
	m.tickGen++
	gen := m.tickGen
	return tea.Tick(m.state.tick(), func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

// counterMsg carries the result of a visit counter request.
type counterMsg struct {
	gen   int
	count int64
	err   error
}

// hitCounter requests the visit count for the committed school title.
func (m *Model) hitCounter() tea.Cmd {
	if m.state.Counter == nil {
		return nil
	}
	title := m.state.Store.Current().School.Title
	m.counterGen++
	m.counterTitle = title
	gen := m.counterGen
	client := m.state.Counter
	timeout := m.state.CounterTimeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		n, err := client.Hit(ctx, title)
		return counterMsg{gen: gen, count: n, err: err}
	}
}

// refresh rebuilds the board at now from the committed configuration.
func (m *Model) refresh(now time.Time) {
	m.board = countdown.NewBoard(now, m.state.Store.Current(), m.state.location())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.help.Width = m.layout.ContentWidth
		m.drawer.SetWidth(msg.Width / 2)
		return m, nil

	case tickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		m.refresh(msg.at)
		return m, m.scheduleTick()

	case counterMsg:
		if msg.gen != m.counterGen {
			return m, nil
		}
		if msg.err != nil {
			m.state.logger().Verbose("visit counter: %v", msg.err)
			return m, nil
		}
		m.visits = msg.count
		m.visitsKnown = true
		return m, nil

	case clipboardCopyMsg:
		if msg.success {
			m.status = "Özet panoya kopyalandı"
		} else {
			m.status = "Pano kullanılamıyor"
			if msg.err != nil {
				m.state.logger().Verbose("clipboard: %v", msg.err)
			}
		}
		return m, nil
	}

	if m.drawer.IsOpen() || m.drawer.Editing() {
		return m.updateDrawer(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.drawer.Open()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, copyToClipboard(Summary(m.board, m.state.Store.Current(), m.state.location()))
	}
	return m, nil
}

func (m *Model) updateDrawer(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, action := m.drawer.Update(msg)
	switch action {
	case drawerApplied, drawerReset:
		m.status = drawerStatus(action)
		m.refresh(m.state.now())
		cmds := []tea.Cmd{cmd, m.scheduleTick()}
		if m.state.Store.Current().School.Title != m.counterTitle {
			cmds = append(cmds, m.hitCounter())
		}
		return m, tea.Batch(cmds...)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	cfg := m.state.Store.Current()
	l := m.layout
	s := m.styles

	content := JoinVertical(1,
		renderHeader(cfg, l.ContentWidth, s),
		renderOverall(m.board, cfg, m.state.location(), l.ContentWidth, s),
		renderCards(m.board, m.state.location(), l, s),
		renderFooter(cfg, m.visits, m.visitsKnown, l.ContentWidth, s),
	)

	if m.drawer.IsOpen() || m.drawer.Editing() {
		drawer := m.drawer.View(s)
		rest := l.Width - lipgloss.Width(drawer) - 5
		if rest < 10 {
			content = drawer
		} else {
			clip := lipgloss.NewStyle().MaxWidth(rest).MaxHeight(max(l.Height-2, 1))
			content = JoinHorizontal(1, drawer, clip.Render(content))
		}
	} else {
		footer := m.help.View(m.keys)
		if m.status != "" {
			footer = s.Success.Render(m.status) + "    " + footer
		}
		content += "\n\n" + footer
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// Board returns the snapshot currently on screen.
func (m *Model) Board() countdown.Board {
	return m.board
}
