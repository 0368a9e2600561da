package route

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/jenilutfifauzi/dockbar/item"
)

// MatchPattern reports whether the current path matches a glob pattern such
// as "/admin/users/*" or "/admin/**". The current path is normalized first;
// the pattern is used verbatim because "?" and trailing wildcards are part
// of the glob syntax. Malformed patterns never match.
func MatchPattern(pattern, current string) bool {
	ok, err := doublestar.Match(pattern, Normalize(current))
	if err != nil {
		return false
	}
	return ok
}

// ActiveFor reports whether an item renders as active for the current path.
// The explicit flag wins, then glob patterns, then plain route matching.
func ActiveFor(it item.Item, current string) bool {
	if it.Active {
		return true
	}
	for _, p := range it.ActiveWhen {
		if MatchPattern(p, current) {
			return true
		}
	}
	return IsActive(it.Route, current)
}
