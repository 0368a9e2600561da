package item

// IconStyle selects which glyph set decorates items.
type IconStyle string

const (
	IconsNerd    IconStyle = "nerd"
	IconsUnicode IconStyle = "unicode"
	IconsNone    IconStyle = "none"
)

// iconSet maps icon names to their glyphs. Prefix glyphs carry a trailing
// space so labels never touch the icon.
type iconSet map[string]string

var (
	nerdIcons = iconSet{
		"home":      " ", // nf-fa-home
		"dashboard": " ", // nf-fa-dashboard
		"users":     " ", // nf-fa-users
		"orders":    " ", // nf-fa-shopping_cart
		"products":  " ", // nf-fa-archive
		"reports":   " ", // nf-fa-bar_chart
		"settings":  " ", // nf-fa-cog
		"search":    " ", // nf-fa-search
		"bell":      " ", // nf-fa-bell
		"calendar":  " ", // nf-fa-calendar
		"mail":      " ", // nf-fa-envelope
		"doc":       " ", // nf-fa-file_text
	}

	unicodeIcons = iconSet{
		"home":      "🏠 ",
		"dashboard": "🎛 ",
		"users":     "👥 ",
		"orders":    "🛒 ",
		"products":  "📦 ",
		"reports":   "📈 ",
		"settings":  "⚙ ",
		"search":    "🔍 ",
		"bell":      "🔔 ",
		"calendar":  "📅 ",
		"mail":      "✉ ",
		"doc":       "📄 ",
	}
)

// Icon returns the glyph for an icon name in the given style. Unknown
// names and the "none" style return the empty string.
func Icon(style IconStyle, name string) string {
	switch style {
	case IconsNerd:
		return nerdIcons[name]
	case IconsUnicode:
		return unicodeIcons[name]
	default:
		return ""
	}
}

// KnownIcon reports whether name exists in the glyph tables. The audit uses
// this to flag configuration typos that would silently drop an icon.
func KnownIcon(name string) bool {
	_, ok := nerdIcons[name]
	return ok
}

// ExternalMarker returns the suffix appended to items that leave the host
// application.
func ExternalMarker(style IconStyle) string {
	switch style {
	case IconsNerd:
		return " " // nf-fa-external_link
	case IconsUnicode:
		return " ↗"
	default:
		return ""
	}
}
