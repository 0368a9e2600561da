// Package theme defines the color palettes and pre-built lipgloss styles
// the dock renders with, plus the WCAG contrast arithmetic the audit
// checks palettes against.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme defines the color palette for the navigation bar.
type Theme struct {
	Name string

	// Accents
	Primary   lipgloss.Color // active item accent
	Secondary lipgloss.Color // badge accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // item labels
	FgMuted  lipgloss.Color // inactive item labels
	FgSubtle lipgloss.Color // separators, hints

	// Backgrounds
	BgBar    lipgloss.Color // bar background
	BgActive lipgloss.Color // active item background
	BgFocus  lipgloss.Color // keyboard-focused item background

	// Badge colors, audited separately from the item they sit on
	BadgeFg lipgloss.Color
	BadgeBg lipgloss.Color

	// Borders
	Border      lipgloss.Color // bar top border
	BorderFocus lipgloss.Color // border while the bar owns keyboard focus

	// Status colors for reports and the demo
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for the bar's render states.
type Styles struct {
	Bar           lipgloss.Style // whole-bar container
	Item          lipgloss.Style // plain item
	ItemActive    lipgloss.Style // item matching the current route
	ItemFocused   lipgloss.Style // item holding keyboard focus
	ItemActiveFoc lipgloss.Style // active item holding keyboard focus
	Badge         lipgloss.Style
	Separator     lipgloss.Style // between items, on the bar background
	Border        lipgloss.Style // bar top border
	BorderFocus   lipgloss.Style // border while the bar owns keyboard focus
	Muted         lipgloss.Style
	Subtle        lipgloss.Style
	Title         lipgloss.Style
	Success       lipgloss.Style
	Error         lipgloss.Style
	Warning       lipgloss.Style
}

var defaultTheme = Theme{
	Name: "midnight",

	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// FgMuted sits right above the 4.5:1 AA floor against BgBar.
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBar:    lipgloss.Color("#1a1a1a"),
	BgActive: lipgloss.Color("#2d2440"),
	BgFocus:  lipgloss.Color("#303030"),

	BadgeFg: lipgloss.Color("#1a1a1a"),
	BadgeBg: lipgloss.Color("#f1a208"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

var builtins = map[string]Theme{
	"midnight": defaultTheme,

	"paper": {
		Name:      "paper",
		Primary:   lipgloss.Color("#5b21b6"),
		Secondary: lipgloss.Color("#92400e"),
		FgBase:    lipgloss.Color("#1f2937"),
		FgMuted:   lipgloss.Color("#4b5563"),
		FgSubtle:  lipgloss.Color("#9ca3af"),
		BgBar:     lipgloss.Color("#f9fafb"),
		BgActive:  lipgloss.Color("#ede9fe"),
		BgFocus:   lipgloss.Color("#e5e7eb"),
		BadgeFg:   lipgloss.Color("#ffffff"),
		BadgeBg:   lipgloss.Color("#92400e"),

		Border:      lipgloss.Color("#d1d5db"),
		BorderFocus: lipgloss.Color("#5b21b6"),

		Success: lipgloss.Color("#047857"),
		Error:   lipgloss.Color("#b91c1c"),
		Warning: lipgloss.Color("#b45309"),
	},

	// High-contrast palette tuned to clear WCAG AAA on every audited pair.
	"contrast": {
		Name:      "contrast",
		Primary:   lipgloss.Color("#ffd700"),
		Secondary: lipgloss.Color("#ffd700"),
		FgBase:    lipgloss.Color("#ffffff"),
		FgMuted:   lipgloss.Color("#d0d0d0"),
		FgSubtle:  lipgloss.Color("#a0a0a0"),
		BgBar:     lipgloss.Color("#000000"),
		BgActive:  lipgloss.Color("#1c1c1c"),
		BgFocus:   lipgloss.Color("#262626"),
		BadgeFg:   lipgloss.Color("#000000"),
		BadgeBg:   lipgloss.Color("#ffd700"),

		Border:      lipgloss.Color("#ffffff"),
		BorderFocus: lipgloss.Color("#ffd700"),

		Success: lipgloss.Color("#00e676"),
		Error:   lipgloss.Color("#ff5252"),
		Warning: lipgloss.Color("#ffd740"),
	},
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// ByName looks up a built-in theme.
func ByName(name string) (Theme, bool) {
	t, ok := builtins[name]
	return t, ok
}

// Names lists the built-in theme names in stable order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseColor validates a "#rrggbb" hex string from configuration and
// returns it as a lipgloss color.
func ParseColor(s string) (lipgloss.Color, error) {
	if _, err := colorful.Hex(s); err != nil {
		return "", err
	}
	return lipgloss.Color(s), nil
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// Invalidate drops the cached styles after palette fields change.
func (t *Theme) Invalidate() {
	t.styles = nil
}

func (t *Theme) buildStyles() *Styles {
	item := lipgloss.NewStyle().
		Foreground(t.FgMuted).
		Background(t.BgBar)

	return &Styles{
		Bar:  lipgloss.NewStyle().Background(t.BgBar),
		Item: item,
		ItemActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.BgActive).
			Bold(true),
		ItemFocused: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgFocus),
		ItemActiveFoc: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.BgFocus).
			Bold(true).
			Underline(true),
		Badge: lipgloss.NewStyle().
			Foreground(t.BadgeFg).
			Background(t.BadgeBg).
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(t.FgSubtle).
			Background(t.BgBar),
		Border:      lipgloss.NewStyle().Foreground(t.Border),
		BorderFocus: lipgloss.NewStyle().Foreground(t.BorderFocus).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:      lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:       lipgloss.NewStyle().Foreground(t.FgBase).Bold(true),
		Success:     lipgloss.NewStyle().Foreground(t.Success),
		Error:       lipgloss.NewStyle().Foreground(t.Error),
		Warning:     lipgloss.NewStyle().Foreground(t.Warning),
	}
}
