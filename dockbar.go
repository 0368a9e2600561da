// Package dockbar provides a bottom navigation bar component for bubbletea
// applications: ordered destination items with icons and badges, route-based
// active marking, and wrap-around keyboard traversal.
//
// The bar keeps the Elm shape bubbletea expects. Feed it key and window
// messages through Update, mark the current route with SetRoute, and place
// View at the bottom of the screen. Activating the focused item emits a
// NavigateMsg for the host to act on.
package dockbar

import (
	"github.com/jenilutfifauzi/dockbar/focus"
	"github.com/jenilutfifauzi/dockbar/item"
	"github.com/jenilutfifauzi/dockbar/registry"
	"github.com/jenilutfifauzi/dockbar/route"
	"github.com/jenilutfifauzi/dockbar/theme"
)

// Height is the fixed height of the bar: top border plus one item row.
const Height = 2

// minWidth is the narrowest terminal the bar bothers rendering in.
const minWidth = 20

// Model is the navigation bar state.
type Model struct {
	items   []item.Item
	ctrl    *focus.Controller
	keys    KeyMap
	theme   *theme.Theme
	icons   item.IconStyle
	compact bool
	current string
	width   int

	reg   *registry.Registry
	regID string
}

// New creates a bar over the given items with the default theme, unicode
// icons, and default key bindings.
func New(items []item.Item) Model {
	keys := DefaultKeyMap()
	return Model{
		items: items,
		ctrl:  focus.NewController(len(items)).WithKeyMap(keys.KeyMap),
		keys:  keys,
		theme: theme.T(),
		icons: item.IconsUnicode,
	}
}

// Items returns the bar's items in order.
func (m Model) Items() []item.Item {
	return m.items
}

// SetItems replaces the bar's items. Focus is clamped to the new bounds
// and an attached registry sees the size change.
func (m *Model) SetItems(items []item.Item) {
	m.items = items
	m.ctrl.Resize(len(items))
	if m.reg != nil {
		m.reg.Update(m.regID, len(items))
	}
}

// SetRoute records the current request path the active markers follow.
func (m *Model) SetRoute(path string) {
	m.current = path
}

// Route returns the current request path.
func (m Model) Route() string {
	return m.current
}

// SetTheme switches the palette.
func (m *Model) SetTheme(th *theme.Theme) {
	m.theme = th
}

// SetIcons selects the icon glyph set.
func (m *Model) SetIcons(style item.IconStyle) {
	m.icons = style
}

// SetCompact toggles icon-only rendering. Items without an icon keep
// their label so they never vanish.
func (m *Model) SetCompact(compact bool) {
	m.compact = compact
}

// SetKeyMap replaces the key bindings.
func (m *Model) SetKeyMap(keys KeyMap) {
	m.keys = keys
	m.ctrl.WithKeyMap(keys.KeyMap)
}

// SetWidth sets the render width. Update does this on tea.WindowSizeMsg.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetFocused hands keyboard focus to or away from the bar. Gaining focus
// lands on the first item when none was focused before.
func (m *Model) SetFocused(focused bool) {
	m.ctrl.SetFocused(focused)
}

// Focused reports whether the bar owns keyboard focus.
func (m Model) Focused() bool {
	return m.ctrl.Focused()
}

// FocusedIndex returns the item index holding focus, or -1.
func (m Model) FocusedIndex() int {
	return m.ctrl.Current()
}

// Focus moves item focus directly. Out-of-range indices are ignored.
func (m *Model) Focus(i int) {
	m.ctrl.Focus(i)
}

// ActiveIndices returns every item index that renders as active for the
// current route, in item order. Nested routes may yield several.
func (m Model) ActiveIndices() []int {
	var out []int
	for i, it := range m.items {
		if route.ActiveFor(it, m.current) {
			out = append(out, i)
		}
	}
	return out
}

// BestActive returns the single item index a host should treat as the
// current location: an explicit active flag wins, otherwise the longest
// matching route. Returns -1 when nothing matches.
func (m Model) BestActive() int {
	for i, it := range m.items {
		if it.Active {
			return i
		}
	}
	best := -1
	bestLen := -1
	for _, i := range m.ActiveIndices() {
		if n := len(route.Normalize(m.items[i].Route)); n > bestLen {
			best = i
			bestLen = n
		}
	}
	return best
}

// AttachRegistry mounts the bar in a container registry under id, so
// watchers see it appear, resize, and disappear. Attaching an already
// mounted id replaces that container.
func (m *Model) AttachRegistry(reg *registry.Registry, id string) {
	m.reg = reg
	m.regID = id
	reg.Mount(id, len(m.items))
}

// DetachRegistry unmounts the bar from its registry.
func (m *Model) DetachRegistry() {
	if m.reg == nil {
		return
	}
	m.reg.Unmount(m.regID)
	m.reg = nil
	m.regID = ""
}
