package dockbar

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jenilutfifauzi/dockbar/item"
)

// NavigateMsg is emitted when the focused item is activated. External
// items carry routes outside the host application; everything else is a
// path the host should switch to.
type NavigateMsg struct {
	Index    int
	Item     item.Item
	External bool
}

// Init implements tea.Model. The bar has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window sizing and, while the bar owns keyboard focus,
// traversal and activation keys. Unrecognized keys are left for the host.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if !m.ctrl.Focused() {
			return m, nil
		}
		if m.ctrl.HandleKey(msg) {
			return m, nil
		}
		if key.Matches(msg, m.keys.Activate) {
			return m, m.activate()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) activate() tea.Cmd {
	i := m.ctrl.Current()
	if i < 0 || i >= len(m.items) {
		return nil
	}
	it := m.items[i]
	return func() tea.Msg {
		return NavigateMsg{Index: i, Item: it, External: it.External()}
	}
}
