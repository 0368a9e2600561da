// Package demo is a small admin dashboard built around the dock: pages
// driven by the route matcher, live theme cycling, config reload, and a
// second dock container mounted at runtime.
package demo

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jenilutfifauzi/dockbar"
	"github.com/jenilutfifauzi/dockbar/config"
	"github.com/jenilutfifauzi/dockbar/item"
	"github.com/jenilutfifauzi/dockbar/registry"
	"github.com/jenilutfifauzi/dockbar/theme"
)

// Model is the root dashboard model.
type Model struct {
	Cfg      *config.Config
	Dock     dockbar.Model
	Split    *dockbar.Model // secondary dock, mounted on demand
	Registry *registry.Registry
	Watcher  *registry.Watcher
	Theme    *theme.Theme
	Themes   []string
	ThemeIdx int
	Pages    map[string]Page
	Routes   []string
	Current  string
	Keys     KeyMap
	DockKeys dockbar.KeyMap
	Help     help.Model
	Status   string
	Width    int
	Height   int

	configs <-chan *config.Config
}

// New builds the dashboard from a loaded configuration. cfgWatch may be
// nil; when set, its reloads are applied live.
func New(cfg *config.Config, cfgWatch *config.Watcher) (Model, error) {
	th, err := cfg.ResolveTheme()
	if err != nil {
		return Model{}, err
	}

	items := item.Flatten(cfg.Entries())
	dock := dockbar.New(items)
	dock.SetTheme(th)
	dock.SetIcons(cfg.IconStyle())
	dock.SetCompact(cfg.Compact)

	reg := registry.New()
	watcher := registry.Watch(reg)
	dock.AttachRegistry(reg, "main")

	pages, routes := buildPages(items)

	m := Model{
		Cfg:      cfg,
		Dock:     dock,
		Registry: reg,
		Watcher:  watcher,
		Theme:    th,
		Themes:   theme.Names(),
		ThemeIdx: themeIndex(th.Name),
		Pages:    pages,
		Routes:   routes,
		Current:  "/",
		Keys:     DefaultKeyMap(),
		DockKeys: dockbar.DefaultKeyMap(),
		Help:     help.New(),
	}
	m.Dock.SetRoute(m.Current)
	if cfgWatch != nil {
		m.configs = cfgWatch.Configs()
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{ordersTick()}
	if m.configs != nil {
		cmds = append(cmds, waitForConfig(m.configs))
	}
	return tea.Batch(cmds...)
}

func themeIndex(name string) int {
	for i, n := range theme.Names() {
		if n == name {
			return i
		}
	}
	return 0
}

// KeyMap holds the dashboard-level bindings. The dock has its own.
type KeyMap struct {
	Quit        key.Binding
	ToggleFocus key.Binding
	Theme       key.Binding
	Split       key.Binding
	Help        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus dock"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Split: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split dock"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleFocus, k.Theme, k.Split, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleFocus, k.Theme, k.Split},
		{k.Help, k.Quit},
	}
}
