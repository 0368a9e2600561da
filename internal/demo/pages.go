package demo

import (
	"fmt"

	"github.com/jenilutfifauzi/dockbar/item"
	"github.com/jenilutfifauzi/dockbar/route"
)

// Page is one routable screen of the dashboard.
type Page struct {
	Title string
	Body  []string
}

// buildPages derives a page per internal item. External links get none,
// activating them would leave the app.
func buildPages(items []item.Item) (map[string]Page, []string) {
	pages := make(map[string]Page, len(items))
	routes := make([]string, 0, len(items))
	for _, it := range items {
		if it.External() || it.Route == "" {
			continue
		}
		r := route.Normalize(it.Route)
		if _, ok := pages[r]; ok {
			continue
		}
		pages[r] = Page{Title: it.Label, Body: pageBody(it, r)}
		routes = append(routes, r)
	}
	return pages, routes
}

func pageBody(it item.Item, r string) []string {
	lines := []string{fmt.Sprintf("Route %s", r)}
	if !it.Badge.Empty() {
		lines = append(lines, fmt.Sprintf("Pending: %s", it.Badge.Label()))
	}
	lines = append(lines,
		"",
		"Move with ←/→, open with enter, release focus with tab.",
	)
	return lines
}

// CurrentPage resolves the page for the current route. Deep links fall
// back to the longest matching prefix, the same rule the dock uses for
// its active marker.
func (m Model) CurrentPage() (Page, bool) {
	i := route.BestMatch(m.Routes, m.Current)
	if i < 0 {
		return Page{}, false
	}
	return m.Pages[m.Routes[i]], true
}
