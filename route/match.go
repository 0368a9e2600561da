// Package route decides which navigation items render as active for the
// current request path. Matching is purely lexical: paths are compared as
// strings after normalization, nothing is parsed or resolved, so absolute
// URLs never match relative paths.
package route

import "strings"

// Normalize prepares a path for comparison. The query string and fragment
// are cut at the first "?" or "#", and trailing slashes are dropped so
// "/admin/users/" compares equal to "/admin/users". The root path stays "/".
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	for len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}

// IsActive reports whether an item route should render as active for the
// current request path. A route is active on an exact match, or when the
// current path starts with it. The root route only ever matches exactly,
// otherwise it would be active on every page. Comparison is case-sensitive.
func IsActive(itemRoute, current string) bool {
	itemRoute = Normalize(itemRoute)
	current = Normalize(current)
	if itemRoute == current {
		return true
	}
	if itemRoute == "" || itemRoute == "/" {
		return false
	}
	return strings.HasPrefix(current, itemRoute)
}

// BestMatch returns the index of the route that wins when several routes
// are active at once for the current path, ranking candidates by normalized
// length so the most specific route wins. Equal-length candidates keep
// configuration order. Returns -1 when nothing matches.
//
// IsActive deliberately allows multiple simultaneous actives; callers that
// want a single highlighted item apply this tie-break on top.
func BestMatch(routes []string, current string) int {
	best := -1
	bestLen := -1
	for i, r := range routes {
		if !IsActive(r, current) {
			continue
		}
		if n := len(Normalize(r)); n > bestLen {
			best = i
			bestLen = n
		}
	}
	return best
}
