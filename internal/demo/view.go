package demo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/jenilutfifauzi/dockbar"
	"github.com/jenilutfifauzi/dockbar/theme"
)

// View implements tea.Model. The docks are pinned to the bottom row and
// the page content fills whatever is left.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	s := m.Theme.S()

	bars := m.Dock.View()
	barLines := dockbar.Height
	if m.Split != nil {
		bars = m.Split.View() + "\n" + bars
		barLines += dockbar.Height
	}
	if m.Height < barLines+3 {
		return bars
	}

	helpView := m.helpLine()
	statusView := m.statusLine()

	lines := []string{
		theme.Gradient(" dockbar ", m.Theme.Primary, m.Theme.Secondary),
		"",
	}
	if page, ok := m.CurrentPage(); ok {
		lines = append(lines, s.Title.Render(page.Title), "")
		for _, l := range page.Body {
			lines = append(lines, s.Muted.Render(l))
		}
	} else {
		lines = append(lines,
			s.Title.Render("Not found"),
			"",
			s.Muted.Render("No page matches "+m.Current),
		)
	}

	content := m.Height - barLines - 1 - lipgloss.Height(helpView)
	if content < 0 {
		content = 0
	}
	if content < len(lines) {
		lines = lines[:content]
	}
	for len(lines) < content {
		lines = append(lines, "")
	}

	sections := append(lines, statusView, helpView, bars)
	return strings.Join(sections, "\n")
}

func (m Model) statusLine() string {
	s := m.Theme.S()
	line := s.Subtle.Render(
		"theme " + m.Theme.Name + " • " +
			english.Plural(m.Watcher.Attached(), "container", ""),
	)
	if m.Status != "" {
		st := s.Success
		if strings.Contains(m.Status, "failed") {
			st = s.Error
		}
		line += "  " + st.Render(m.Status)
	}
	return line
}

// helpLine shows the dock bindings while a dock holds focus, the
// dashboard bindings otherwise.
func (m Model) helpLine() string {
	if m.dockFocused() {
		return m.Help.View(m.DockKeys)
	}
	return m.Help.View(m.Keys)
}
