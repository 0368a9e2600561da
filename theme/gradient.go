package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color blend between two hex
// colors. Blending happens in HCL space so the transition stays
// perceptually even. Non-hex colors fall back to rendering with the
// from color only.
func Gradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	if err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	// Grapheme clusters, not runes, so combined emoji keep one color.
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) < 2 {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		c := c1.BlendHcl(c2, t).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Render(cluster))
	}
	return b.String()
}
