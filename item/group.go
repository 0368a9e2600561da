package item

// Entry is a node in the configured navigation tree: either a single Item
// or a Group of items. Grouping is a configuration convenience only; the
// dock flattens entries before rendering, so traversal and matching always
// work on a plain item sequence.
type Entry interface {
	items() []Item
}

// Group is a labelled collection of items. The label is not rendered by
// the dock; it exists for configuration readability and audit reports.
type Group struct {
	Label   string
	Entries []Item
}

func (g Group) items() []Item { return g.Entries }

func (it Item) items() []Item { return []Item{it} }

// Flatten expands the entry tree into the ordered item list the dock
// consumes. Hidden items are dropped and grouping is erased; the result
// preserves configuration order.
func Flatten(entries []Entry) []Item {
	var out []Item
	for _, e := range entries {
		for _, it := range e.items() {
			if it.Hidden {
				continue
			}
			out = append(out, it)
		}
	}
	return out
}
