// Package registry tracks live navigation containers and notifies
// subscribers as containers mount, change, and unmount. It is the hook
// point for auto-attaching focus controllers to bars that appear after
// program start, replacing ambient global observation with explicit
// per-instance subscriptions that tests can tear down.
package registry

// EventKind classifies container lifecycle events.
type EventKind int

const (
	Mounted EventKind = iota
	Updated
	Unmounted
)

func (k EventKind) String() string {
	switch k {
	case Mounted:
		return "mounted"
	case Updated:
		return "updated"
	case Unmounted:
		return "unmounted"
	}
	return "unknown"
}

// Event describes one container lifecycle change.
type Event struct {
	Kind EventKind
	ID   string
	Size int // item count at event time
}

// Handler receives lifecycle events synchronously, in subscription order.
type Handler func(Event)

type subscription struct {
	id int
	fn Handler
}

// Registry tracks mounted containers for one program instance. It is not
// synchronized: like the update loop it serves, all calls are expected
// from a single goroutine.
type Registry struct {
	order   []string
	sizes   map[string]int
	subs    []subscription
	nextSub int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{sizes: make(map[string]int)}
}

// Subscribe registers a handler for all subsequent events and returns its
// teardown. Cancelling twice is harmless.
func (r *Registry) Subscribe(fn Handler) (cancel func()) {
	id := r.nextSub
	r.nextSub++
	r.subs = append(r.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// Mount registers a container. Mounting an ID that is already present
// replaces the container: subscribers see Unmounted for the old one, then
// Mounted for the new, so any attached focus state is reset.
func (r *Registry) Mount(id string, size int) {
	if old, ok := r.sizes[id]; ok {
		r.emit(Event{Kind: Unmounted, ID: id, Size: old})
		r.sizes[id] = size
		r.emit(Event{Kind: Mounted, ID: id, Size: size})
		return
	}
	r.order = append(r.order, id)
	r.sizes[id] = size
	r.emit(Event{Kind: Mounted, ID: id, Size: size})
}

// Update records a new item count for a mounted container. Unknown IDs
// are ignored.
func (r *Registry) Update(id string, size int) {
	if _, ok := r.sizes[id]; !ok {
		return
	}
	r.sizes[id] = size
	r.emit(Event{Kind: Updated, ID: id, Size: size})
}

// Unmount removes a container. Unknown IDs are ignored.
func (r *Registry) Unmount(id string) {
	size, ok := r.sizes[id]
	if !ok {
		return
	}
	delete(r.sizes, id)
	for i, mounted := range r.order {
		if mounted == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.emit(Event{Kind: Unmounted, ID: id, Size: size})
}

// IDs returns the mounted container IDs in mount order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Size returns the item count of a mounted container.
func (r *Registry) Size(id string) (int, bool) {
	size, ok := r.sizes[id]
	return size, ok
}

// emit delivers synchronously to a snapshot of the subscriber list, so
// handlers may subscribe or cancel without corrupting the dispatch.
func (r *Registry) emit(ev Event) {
	subs := make([]subscription, len(r.subs))
	copy(subs, r.subs)
	for _, s := range subs {
		s.fn(ev)
	}
}
