package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Level is a WCAG conformance level.
type Level string

const (
	AA  Level = "AA"
	AAA Level = "AAA"
)

// MinRatio returns the contrast ratio the level requires. Large text gets
// the relaxed threshold.
func (l Level) MinRatio(large bool) float64 {
	if l == AAA {
		if large {
			return 4.5
		}
		return 7
	}
	if large {
		return 3
	}
	return 4.5
}

// Luminance returns the WCAG relative luminance of a color. ok is false
// for colors that are not hex values (ANSI palette indices), whose actual
// value depends on the terminal and cannot be audited.
func Luminance(c lipgloss.Color) (lum float64, ok bool) {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return 0, false
	}
	r, g, b := col.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, true
}

// Ratio returns the WCAG contrast ratio between two colors, ranging from
// 1 (identical) to 21 (black on white). Order does not matter.
func Ratio(a, b lipgloss.Color) (ratio float64, ok bool) {
	la, ok := Luminance(a)
	if !ok {
		return 0, false
	}
	lb, ok := Luminance(b)
	if !ok {
		return 0, false
	}
	if lb > la {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), true
}
