package dockbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jenilutfifauzi/dockbar/internal/render"
	"github.com/jenilutfifauzi/dockbar/item"
	"github.com/jenilutfifauzi/dockbar/route"
)

// cellOpts is one rung of the degrade ladder the bar walks down until the
// row fits the width.
type cellOpts struct {
	labels   bool
	badges   bool
	maxLabel int // 0 means unbounded
}

var degradeLadder = []cellOpts{
	{labels: true, badges: true},
	{labels: true, badges: true, maxLabel: 10},
	{labels: false, badges: true},
	{labels: false, badges: false},
}

// View renders the bar: a themed top border over one centered row of
// items. Active items follow the current route, the focused item is
// highlighted while the bar owns keyboard focus. Below minWidth nothing
// is rendered.
func (m Model) View() string {
	if m.width < minWidth {
		return ""
	}
	s := m.theme.S()

	row, hidden := m.buildRow()
	if hidden > 0 {
		// The chip is informative text, so it gets the inactive item
		// colors rather than the decorative separator ones.
		row += s.Item.Render(fmt.Sprintf(" +%d", hidden))
	}

	rowWidth := render.Width(row)
	padLeft := max((m.width-rowWidth)/2, 0)
	padRight := max(m.width-rowWidth-padLeft, 0)
	line := s.Bar.Render(strings.Repeat(" ", padLeft)) +
		row +
		s.Bar.Render(strings.Repeat(" ", padRight))

	borderStyle := s.Border
	if m.ctrl.Focused() {
		borderStyle = s.BorderFocus
	}
	border := borderStyle.Render(strings.Repeat("─", m.width))

	return border + "\n" + line
}

// buildRow walks the degrade ladder and, as a last resort, drops trailing
// items. It returns the joined row and how many items were dropped.
func (m Model) buildRow() (string, int) {
	sep := m.theme.S().Separator.Render(" │ ")

	var cells []string
	for _, opts := range degradeLadder {
		cells = m.renderCells(opts)
		if render.Width(strings.Join(cells, sep)) <= m.width {
			return strings.Join(cells, sep), 0
		}
	}

	// Even icon-only overflows; keep the leading items that fit. Four
	// columns are reserved for the "+N" marker.
	budget := m.width - 4
	kept := 0
	width := 0
	for i, cell := range cells {
		w := render.Width(cell)
		if i > 0 {
			w += render.Width(sep)
		}
		if width+w > budget {
			break
		}
		width += w
		kept++
	}
	return strings.Join(cells[:kept], sep), len(cells) - kept
}

func (m Model) renderCells(opts cellOpts) []string {
	cells := make([]string, 0, len(m.items))
	for i, it := range m.items {
		cells = append(cells, m.renderCell(i, it, opts))
	}
	return cells
}

func (m Model) renderCell(i int, it item.Item, opts cellOpts) string {
	s := m.theme.S()

	text := m.cellText(it, opts)
	if it.External() {
		text += item.ExternalMarker(m.icons)
	}

	active := route.ActiveFor(it, m.current)
	focused := i == m.ctrl.Current()

	var st lipgloss.Style
	switch {
	case active && focused:
		st = s.ItemActiveFoc
	case active:
		st = s.ItemActive
	case focused:
		st = s.ItemFocused
	default:
		st = s.Item
	}

	cell := st.Render(" " + text + " ")
	if opts.badges {
		if b := it.Badge.Label(); b != "" {
			cell += s.Badge.Render(" " + b + " ")
		}
	}
	return cell
}

// cellText resolves what an item displays: icon plus label, icon only in
// compact rungs, and the route as a last resort so no item ever renders
// blank.
func (m Model) cellText(it item.Item, opts cellOpts) string {
	icon := item.Icon(m.icons, it.Icon)
	label := render.Clean(it.Label)
	if opts.maxLabel > 0 {
		label = render.Truncate(label, opts.maxLabel)
	}

	useLabel := opts.labels && !m.compact
	switch {
	case useLabel && label != "":
		return icon + label
	case icon != "":
		return strings.TrimSuffix(icon, " ")
	case label != "":
		return label
	default:
		return render.Clean(it.Route)
	}
}
