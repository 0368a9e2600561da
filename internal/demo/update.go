package demo

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jenilutfifauzi/dockbar"
	"github.com/jenilutfifauzi/dockbar/config"
	"github.com/jenilutfifauzi/dockbar/item"
	"github.com/jenilutfifauzi/dockbar/route"
	"github.com/jenilutfifauzi/dockbar/theme"
)

// ConfigReloadedMsg carries a validated config picked up by the watcher.
type ConfigReloadedMsg struct {
	Cfg *config.Config
}

type ordersTickMsg struct{}

const ordersTickEvery = 5 * time.Second

func ordersTick() tea.Cmd {
	return tea.Tick(ordersTickEvery, func(time.Time) tea.Msg {
		return ordersTickMsg{}
	})
}

func waitForConfig(ch <-chan *config.Config) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Cfg: cfg}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil
	case dockbar.NavigateMsg:
		return m.handleNavigate(msg), nil
	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)
	case ordersTickMsg:
		return m.handleOrdersTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Dock.SetWidth(msg.Width)
	if m.Split != nil {
		split := *m.Split
		split.SetWidth(msg.Width)
		m.Split = &split
	}
	m.Help.Width = msg.Width
	return m
}

func (m Model) handleNavigate(msg dockbar.NavigateMsg) Model {
	if msg.External {
		m.Status = fmt.Sprintf("would open %s in the browser", msg.Item.Route)
		return m
	}
	m.Current = route.Normalize(msg.Item.Route)
	m.Dock.SetRoute(m.Current)
	if m.Split != nil {
		split := *m.Split
		split.SetRoute(m.Current)
		m.Split = &split
	}
	m.Status = ""
	return m
}

func (m Model) handleConfigReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	cfg := msg.Cfg
	th, err := cfg.ResolveTheme()
	if err != nil {
		m.Status = "config reload failed: " + err.Error()
		return m, waitForConfig(m.configs)
	}

	m.Cfg = cfg
	m.Theme = th
	m.ThemeIdx = themeIndex(th.Name)

	items := item.Flatten(cfg.Entries())
	m.applyToDocks(func(d *dockbar.Model) {
		d.SetItems(items)
		d.SetTheme(th)
		d.SetIcons(cfg.IconStyle())
	})
	m.Dock.SetCompact(cfg.Compact)

	m.Pages, m.Routes = buildPages(items)
	m.Status = "configuration reloaded"
	return m, waitForConfig(m.configs)
}

// handleOrdersTick drifts the first numeric badge upward so the dock has
// something live to show.
func (m Model) handleOrdersTick() (tea.Model, tea.Cmd) {
	items := slices.Clone(m.Dock.Items())
	for i, it := range items {
		if it.Badge.Count > 0 && it.Badge.Text == "" {
			it.Badge.Count++
			items[i] = it
			m.Dock.SetItems(items)
			if m.Split != nil {
				split := *m.Split
				split.SetItems(items)
				m.Split = &split
			}
			break
		}
	}
	return m, ordersTick()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		if msg.String() == "ctrl+c" || !m.dockFocused() {
			return m, tea.Quit
		}
	case key.Matches(msg, m.Keys.ToggleFocus):
		return m.cycleFocus(), nil
	case key.Matches(msg, m.Keys.Theme):
		if !m.dockFocused() {
			return m.cycleTheme(), nil
		}
	case key.Matches(msg, m.Keys.Split):
		if !m.dockFocused() {
			return m.toggleSplit(), nil
		}
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	}

	// Everything else belongs to whichever dock holds focus.
	if m.Dock.Focused() {
		var cmd tea.Cmd
		m.Dock, cmd = m.Dock.Update(msg)
		return m, cmd
	}
	if m.Split != nil && m.Split.Focused() {
		split, cmd := m.Split.Update(msg)
		m.Split = &split
		return m, cmd
	}
	return m, nil
}

func (m Model) dockFocused() bool {
	if m.Dock.Focused() {
		return true
	}
	return m.Split != nil && m.Split.Focused()
}

// cycleFocus walks page -> main dock -> split dock -> page.
func (m Model) cycleFocus() Model {
	switch {
	case m.Dock.Focused():
		m.Dock.SetFocused(false)
		if m.Split != nil {
			split := *m.Split
			split.SetFocused(true)
			m.Split = &split
		}
	case m.Split != nil && m.Split.Focused():
		split := *m.Split
		split.SetFocused(false)
		m.Split = &split
	default:
		m.Dock.SetFocused(true)
	}
	return m
}

func (m Model) cycleTheme() Model {
	if len(m.Themes) == 0 {
		return m
	}
	m.ThemeIdx = (m.ThemeIdx + 1) % len(m.Themes)
	th, ok := theme.ByName(m.Themes[m.ThemeIdx])
	if !ok {
		return m
	}
	m.Theme = &th
	m.applyToDocks(func(d *dockbar.Model) {
		d.SetTheme(&th)
	})
	m.Status = "theme " + th.Name
	return m
}

func (m Model) toggleSplit() Model {
	if m.Split != nil {
		split := *m.Split
		split.DetachRegistry()
		m.Split = nil
		m.Status = "split dock unmounted"
		return m
	}
	split := dockbar.New(m.Dock.Items())
	split.SetTheme(m.Theme)
	split.SetIcons(m.Cfg.IconStyle())
	split.SetCompact(true)
	split.SetWidth(m.Width)
	split.SetRoute(m.Current)
	split.AttachRegistry(m.Registry, "split")
	m.Split = &split
	m.Status = "split dock mounted"
	return m
}

// applyToDocks runs fn against the main dock and the split, when present.
// The pointer lets fn use the dock setters in place.
func (m *Model) applyToDocks(fn func(d *dockbar.Model)) {
	fn(&m.Dock)
	if m.Split != nil {
		split := *m.Split
		fn(&split)
		m.Split = &split
	}
}
