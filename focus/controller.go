package focus

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Controller binds a Ring to key input for one navigation container. It
// only reacts while the container owns keyboard focus; everything else
// passes through untouched so the host application keeps its own bindings.
type Controller struct {
	ring    Ring
	keys    KeyMap
	focused bool
}

// NewController creates a controller over size items using the default
// bindings. Nothing is focused until the container gains focus.
func NewController(size int) *Controller {
	return &Controller{
		ring: New(size),
		keys: DefaultKeyMap(),
	}
}

// WithKeyMap replaces the controller's bindings.
func (c *Controller) WithKeyMap(keys KeyMap) *Controller {
	c.keys = keys
	return c
}

// Ring exposes the underlying ring state.
func (c *Controller) Ring() Ring {
	return c.ring
}

// Current returns the focused item index, or -1.
func (c *Controller) Current() int {
	return c.ring.Current()
}

// Focused reports whether the container owns keyboard focus.
func (c *Controller) Focused() bool {
	return c.focused
}

// SetFocused hands keyboard focus to or away from the container. Gaining
// focus enters the ring at the first item when nothing was focused before;
// losing focus drops the focused index.
func (c *Controller) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		if !c.ring.Focused() {
			c.ring.First()
		}
		return
	}
	c.ring.Blur()
}

// Focus moves the focused index directly. Out-of-range indices are ignored.
func (c *Controller) Focus(i int) {
	c.ring.Focus(i)
}

// Resize updates the item count when the container contents change.
func (c *Controller) Resize(size int) {
	c.ring.Resize(size)
}

// HandleKey applies a key press and reports whether it was consumed.
// Nothing is consumed while the container is unfocused or empty, and
// unbound keys always pass through.
func (c *Controller) HandleKey(msg tea.KeyMsg) bool {
	if !c.focused || c.ring.Size() == 0 {
		return false
	}
	switch {
	case key.Matches(msg, c.keys.Prev):
		c.ring.Prev()
	case key.Matches(msg, c.keys.Next):
		c.ring.Next()
	case key.Matches(msg, c.keys.First):
		c.ring.First()
	case key.Matches(msg, c.keys.Last):
		c.ring.Last()
	default:
		return false
	}
	return true
}
