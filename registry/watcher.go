package registry

import "github.com/jenilutfifauzi/dockbar/focus"

// Watcher keeps a focus controller attached to every mounted container,
// including containers that mount after the watcher starts. Replacing a
// container discards its controller, so focus state never survives a
// remount.
type Watcher struct {
	ctrls  map[string]*focus.Controller
	cancel func()
}

// Watch subscribes a new watcher to the registry and attaches controllers
// for containers already mounted.
func Watch(r *Registry) *Watcher {
	w := &Watcher{ctrls: make(map[string]*focus.Controller)}
	for _, id := range r.IDs() {
		size, _ := r.Size(id)
		w.ctrls[id] = focus.NewController(size)
	}
	w.cancel = r.Subscribe(w.handle)
	return w
}

func (w *Watcher) handle(ev Event) {
	switch ev.Kind {
	case Mounted:
		w.ctrls[ev.ID] = focus.NewController(ev.Size)
	case Updated:
		if c, ok := w.ctrls[ev.ID]; ok {
			c.Resize(ev.Size)
		}
	case Unmounted:
		delete(w.ctrls, ev.ID)
	}
}

// Controller returns the controller attached to a container.
func (w *Watcher) Controller(id string) (*focus.Controller, bool) {
	c, ok := w.ctrls[id]
	return c, ok
}

// Attached returns the number of containers currently tracked.
func (w *Watcher) Attached() int {
	return len(w.ctrls)
}

// Close cancels the subscription and drops all controllers. The watcher
// must not be used afterwards.
func (w *Watcher) Close() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.ctrls = nil
}
