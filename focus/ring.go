// Package focus tracks which navigation item holds keyboard focus and
// remaps it on directional key input with wrap-around traversal.
package focus

// Ring manages the focused index within an ordered item list. The index is
// -1 when nothing holds focus. Movement wraps unconditionally: advancing
// past the last item lands on the first and vice versa.
type Ring struct {
	size    int
	current int
}

// New creates a Ring over size items with nothing focused.
func New(size int) Ring {
	return Ring{size: size, current: -1}
}

// Size returns the number of items in the ring.
func (r Ring) Size() int {
	return r.size
}

// Current returns the focused index, or -1 when nothing holds focus.
func (r Ring) Current() int {
	return r.current
}

// Focused reports whether any item holds focus.
func (r Ring) Focused() bool {
	return r.current >= 0
}

// Next advances focus by one, wrapping from the last item to the first.
// From the unfocused state it enters at the first item. No-op when empty.
func (r *Ring) Next() {
	if r.size == 0 {
		return
	}
	if r.current < 0 {
		r.current = 0
		return
	}
	r.current = (r.current + 1) % r.size
}

// Prev moves focus back by one, wrapping from the first item to the last.
// From the unfocused state it enters at the last item. No-op when empty.
func (r *Ring) Prev() {
	if r.size == 0 {
		return
	}
	if r.current < 0 {
		r.current = r.size - 1
		return
	}
	r.current = (r.current - 1 + r.size) % r.size
}

// First focuses the first item. No-op when empty.
func (r *Ring) First() {
	if r.size == 0 {
		return
	}
	r.current = 0
}

// Last focuses the last item. No-op when empty.
func (r *Ring) Last() {
	if r.size == 0 {
		return
	}
	r.current = r.size - 1
}

// Focus moves focus to an absolute index. Out-of-range indices are
// silently ignored.
func (r *Ring) Focus(i int) {
	if i < 0 || i >= r.size {
		return
	}
	r.current = i
}

// Blur drops focus entirely.
func (r *Ring) Blur() {
	r.current = -1
}

// Resize updates the item count when the list changes underneath the ring.
// A focused index past the new end is clamped to the last item; an empty
// list drops focus.
func (r *Ring) Resize(size int) {
	if size < 0 {
		size = 0
	}
	r.size = size
	if size == 0 {
		r.current = -1
		return
	}
	if r.current >= size {
		r.current = size - 1
	}
}

// HandleKey applies a navigation key by name and reports whether the key
// was handled. Supported keys: left/h, right/l, home/g, end/G. An empty
// ring handles nothing, so keys keep propagating to the caller.
func (r *Ring) HandleKey(key string) bool {
	if r.size == 0 {
		return false
	}
	switch key {
	case "left", "h":
		r.Prev()
		return true
	case "right", "l":
		r.Next()
		return true
	case "home", "g":
		r.First()
		return true
	case "end", "G":
		r.Last()
		return true
	}
	return false
}
