// Package render provides terminal text helpers shared by the dock views.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the visible cell width of s with ANSI styling removed.
func Width(s string) int {
	return ansi.StringWidth(ansi.Strip(s))
}

// Clean removes control characters and invalid UTF-8 from untrusted label
// text. Configuration files are the usual source; a stray escape byte in a
// label would otherwise corrupt the whole bar line.
func Clean(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7f {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if unicode.IsControl(r) {
			i += size
			continue
		}
		if r == '\u00a0' {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// Truncate shortens s to at most width cells, appending a single-character
// ellipsis when anything was cut. Splitting happens on grapheme cluster
// boundaries so emoji and combining sequences stay intact.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}

	budget := width - 1
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	b.WriteString("…")
	return b.String()
}

// PadRight fills s with trailing spaces up to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Center places s in the middle of a width-cell line. Content wider than
// the line is returned unchanged.
func Center(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// Spacer returns a run of n spaces, or the empty string for n <= 0.
func Spacer(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
