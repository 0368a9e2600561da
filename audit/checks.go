package audit

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/jenilutfifauzi/dockbar/internal/render"
	"github.com/jenilutfifauzi/dockbar/item"
	"github.com/jenilutfifauzi/dockbar/route"
	"github.com/jenilutfifauzi/dockbar/theme"
)

// nonTextRatio is the WCAG 1.4.11 minimum for graphical objects and
// state indicators.
const nonTextRatio = 3.0

// minStateShift is the floor below which a color-only state change
// reads as no change at all on most displays.
const minStateShift = 1.3

var checks = []struct {
	name string
	fn   func(Setup) []Finding
}{
	{"contrast", checkContrast},
	{"focus-visible", checkFocusVisible},
	{"distinct-active", checkDistinctActive},
	{"labels", checkLabels},
	{"icons", checkIcons},
	{"overflow", checkOverflow},
	{"route-overlap", checkRouteOverlap},
}

// CheckNames lists the checks in the order they run.
func CheckNames() []string {
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.name
	}
	return names
}

type colorPair struct {
	subject string
	fg, bg  lipgloss.Color
}

// textPairs lists every fg/bg combination the bar renders text with.
func textPairs(th *theme.Theme) []colorPair {
	return []colorPair{
		{"inactive label", th.FgMuted, th.BgBar},
		{"active label", th.Primary, th.BgActive},
		{"focused label", th.FgBase, th.BgFocus},
		{"active focused label", th.Primary, th.BgFocus},
		{"badge", th.BadgeFg, th.BadgeBg},
	}
}

func checkContrast(s Setup) []Finding {
	var out []Finding
	min := s.Level.MinRatio(s.LargeText)
	for _, p := range textPairs(s.Theme) {
		ratio, ok := theme.Ratio(p.fg, p.bg)
		if !ok {
			out = append(out, Finding{
				Check:    "contrast",
				Severity: Info,
				Subject:  p.subject,
				Message:  "terminal palette color, contrast depends on the terminal",
			})
			continue
		}
		if ratio < min {
			out = append(out, Finding{
				Check:    "contrast",
				Severity: Error,
				Subject:  p.subject,
				Message:  fmt.Sprintf("contrast %.2f:1 is below the %s minimum of %.1f:1", ratio, s.Level, min),
				Ratio:    round2(ratio),
				Required: min,
			})
		}
	}
	return out
}

// checkFocusVisible verifies that gaining keyboard focus changes how an
// item renders, and that the bar border focus cue clears the non-text
// contrast floor.
func checkFocusVisible(s Setup) []Finding {
	th := s.Theme
	var out []Finding

	fgShift, fgOK := theme.Ratio(th.FgBase, th.FgMuted)
	bgShift, bgOK := theme.Ratio(th.BgFocus, th.BgBar)
	switch {
	case th.FgBase == th.FgMuted && th.BgFocus == th.BgBar:
		out = append(out, Finding{
			Check:    "focus-visible",
			Severity: Error,
			Subject:  "focused item",
			Message:  "focused items render identically to unfocused ones (WCAG 2.4.7)",
		})
	case fgOK && bgOK && math.Max(fgShift, bgShift) < minStateShift:
		out = append(out, Finding{
			Check:    "focus-visible",
			Severity: Warning,
			Subject:  "focused item",
			Message:  fmt.Sprintf("focus shifts colors by at most %.2f:1, which is barely visible", math.Max(fgShift, bgShift)),
			Ratio:    round2(math.Max(fgShift, bgShift)),
			Required: minStateShift,
		})
	}

	if th.BorderFocus == th.Border {
		out = append(out, Finding{
			Check:    "focus-visible",
			Severity: Info,
			Subject:  "bar border",
			Message:  "border color does not change when the bar gains focus",
		})
	} else if ratio, ok := theme.Ratio(th.BorderFocus, th.BgBar); ok && ratio < nonTextRatio {
		out = append(out, Finding{
			Check:    "focus-visible",
			Severity: Warning,
			Subject:  "bar border",
			Message:  fmt.Sprintf("focus border contrast %.2f:1 is below the %.0f:1 non-text minimum (WCAG 1.4.11)", ratio, nonTextRatio),
			Ratio:    round2(ratio),
			Required: nonTextRatio,
		})
	}
	return out
}

// checkDistinctActive verifies that active items do not rely on color
// alone (WCAG 1.4.1).
func checkDistinctActive(s Setup) []Finding {
	st := s.Theme.S()
	return distinctFindings(st.Item, st.ItemActive, s.Theme)
}

func distinctFindings(inactive, active lipgloss.Style, th *theme.Theme) []Finding {
	if active.GetBold() != inactive.GetBold() ||
		active.GetUnderline() != inactive.GetUnderline() ||
		active.GetReverse() != inactive.GetReverse() ||
		active.GetItalic() != inactive.GetItalic() {
		return nil
	}
	if th.Primary == th.FgMuted && th.BgActive == th.BgBar {
		return []Finding{{
			Check:    "distinct-active",
			Severity: Error,
			Subject:  "active item",
			Message:  "active items render identically to inactive ones",
		}}
	}
	return []Finding{{
		Check:    "distinct-active",
		Severity: Warning,
		Subject:  "active item",
		Message:  "active items are distinguished by color alone (WCAG 1.4.1)",
	}}
}

// checkLabels requires a text label on every visible item and flags
// duplicates, which screen readers and narrow widths both punish.
func checkLabels(s Setup) []Finding {
	var out []Finding
	seen := make(map[string]int)
	for i, it := range visible(s.Items) {
		label := strings.TrimSpace(it.Label)
		if label == "" {
			subject := it.Route
			if subject == "" {
				subject = fmt.Sprintf("item %d", i+1)
			}
			msg := "item has no label"
			if it.Icon != "" {
				msg = "icon-only item has no text label"
			}
			out = append(out, Finding{Check: "labels", Severity: Error, Subject: subject, Message: msg})
			continue
		}
		if first, dup := seen[label]; dup {
			out = append(out, Finding{
				Check:    "labels",
				Severity: Warning,
				Subject:  label,
				Message:  fmt.Sprintf("label is also used by item %d", first+1),
			})
			continue
		}
		seen[label] = i
	}
	return out
}

// checkIcons flags icon names the configured icon set cannot render.
func checkIcons(s Setup) []Finding {
	if s.Icons == item.IconsNone {
		return nil
	}
	var out []Finding
	for _, it := range visible(s.Items) {
		if it.Icon != "" && !item.KnownIcon(it.Icon) {
			out = append(out, Finding{
				Check:    "icons",
				Severity: Warning,
				Subject:  it.Label,
				Message:  fmt.Sprintf("unknown icon %q is skipped at render time", it.Icon),
			})
		}
	}
	return out
}

// checkOverflow warns when the bar carries more items than a bottom
// navigation comfortably holds, or more than the audited width can show
// without truncating labels.
func checkOverflow(s Setup) []Finding {
	var out []Finding
	vis := visible(s.Items)
	if len(vis) > s.MaxItems {
		out = append(out, Finding{
			Check:    "overflow",
			Severity: Warning,
			Subject:  "bar",
			Message:  fmt.Sprintf("%s exceed the recommended maximum of %d", english.Plural(len(vis), "visible item", ""), s.MaxItems),
		})
	}
	if needed := fullRowWidth(vis, s.Icons); needed > s.Width {
		out = append(out, Finding{
			Check:    "overflow",
			Severity: Warning,
			Subject:  "bar",
			Message:  fmt.Sprintf("full labels need %d columns but the bar is audited at %d, labels will truncate", needed, s.Width),
		})
	}
	return out
}

// fullRowWidth mirrors the view's cell arithmetic at the richest
// degrade rung: padded cells, badges, and three-column separators.
func fullRowWidth(items []item.Item, style item.IconStyle) int {
	w := 0
	for i, it := range items {
		if i > 0 {
			w += 3
		}
		text := item.Icon(style, it.Icon) + it.Label
		if it.External() {
			text += item.ExternalMarker(style)
		}
		w += render.Width(" " + text + " ")
		if b := it.Badge.Label(); b != "" {
			w += render.Width(" " + b + " ")
		}
	}
	return w
}

// checkRouteOverlap reports routes that activate together: duplicates
// as warnings, nested prefixes as info.
func checkRouteOverlap(s Setup) []Finding {
	var out []Finding
	vis := visible(s.Items)
	for i := 0; i < len(vis); i++ {
		if vis[i].External() || vis[i].Route == "" {
			continue
		}
		for j := i + 1; j < len(vis); j++ {
			if vis[j].External() || vis[j].Route == "" {
				continue
			}
			a := route.Normalize(vis[i].Route)
			b := route.Normalize(vis[j].Route)
			switch {
			case a == b:
				out = append(out, Finding{
					Check:    "route-overlap",
					Severity: Warning,
					Subject:  vis[i].Label + " / " + vis[j].Label,
					Message:  fmt.Sprintf("%q and %q share the route %s", vis[i].Label, vis[j].Label, a),
				})
			case route.IsActive(a, b):
				out = append(out, Finding{
					Check:    "route-overlap",
					Severity: Info,
					Subject:  vis[i].Label + " / " + vis[j].Label,
					Message:  fmt.Sprintf("%s nests under %s, both items render active there", b, a),
				})
			case route.IsActive(b, a):
				out = append(out, Finding{
					Check:    "route-overlap",
					Severity: Info,
					Subject:  vis[i].Label + " / " + vis[j].Label,
					Message:  fmt.Sprintf("%s nests under %s, both items render active there", a, b),
				})
			}
		}
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
