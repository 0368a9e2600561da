// Package item defines the navigation item model the dock consumes: plain
// destination entries, optional badges, and the grouped form hosts configure.
package item

// Item is a single destination entry in the navigation bar.
type Item struct {
	// Label is the display text. Items without a label are rendered
	// icon-only and flagged by the accessibility audit.
	Label string

	// Route is the target path the item points at, e.g. "/admin/users".
	// Absolute URLs ("https://…") mark the item as external.
	Route string

	// Icon is an icon name resolved through the active icon style,
	// e.g. "users". Unknown names render as no icon.
	Icon string

	// Badge is the optional marker rendered after the label.
	Badge Badge

	// Active forces the item to render as active regardless of what the
	// route matcher decides.
	Active bool

	// ActiveWhen holds glob patterns checked against the current path
	// before plain route matching, e.g. "/admin/users/*".
	ActiveWhen []string

	// Hidden items are dropped when the entry tree is flattened.
	Hidden bool
}

// External reports whether the item points outside the host application.
// The check is purely lexical: a leading URI scheme marks the item as
// external, nothing is parsed or resolved.
func (it Item) External() bool {
	return hasScheme(it.Route)
}

// hasScheme reports whether s starts with "<scheme>:" per the RFC 3986
// scheme grammar (ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )).
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':':
			return i > 0
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return false
}
