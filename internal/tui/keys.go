package tui

import "github.com/charmbracelet/bubbles/key"

// dashboardKeys are active while the settings drawer is closed.
type dashboardKeys struct {
	Settings key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "ayarlar")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "kopyala")),
		Help:     key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "yardım")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "çıkış")),
	}
}

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Settings, k.Copy, k.Help, k.Quit}
}

func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Settings, k.Copy}, {k.Help, k.Quit}}
}

// drawerKeys are active inside the settings drawer.
type drawerKeys struct {
	Up        key.Binding
	Down      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Theme     key.Binding
	Color     key.Binding
	Edit      key.Binding
	Add       key.Binding
	Delete    key.Binding
	Toggle    key.Binding
	Apply     key.Binding
	Close     key.Binding
	Reset     key.Binding
	ForceQuit key.Binding
}

func newDrawerKeys() drawerKeys {
	return drawerKeys{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "yukarı")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "aşağı")),
		Next:      key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "sonraki bölüm")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "önceki bölüm")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tema")),
		Color:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "renk")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "düzenle")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ekle")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "sil")),
		Toggle:    key.NewBinding(key.WithKeys("v", " "), key.WithHelp("v", "göster/gizle")),
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "uygula")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "kapat")),
		Reset:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "sıfırla")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k drawerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Add, k.Delete, k.Toggle, k.Apply, k.Close}
}

func (k drawerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Theme, k.Color, k.Edit, k.Add},
		{k.Delete, k.Toggle, k.Apply, k.Close, k.Reset},
	}
}
