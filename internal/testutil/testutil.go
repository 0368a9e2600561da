// Package testutil provides helpers for asserting on rendered bar output.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared as
// plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine reports whether any line of the stripped output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first stripped line containing substr, or "".
func FindLine(output, substr string) string {
	for _, line := range strings.Split(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// Lines splits stripped output into lines, dropping trailing blank ones.
func Lines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// PlainWidth returns the visible width of the widest line in output.
func PlainWidth(output string) int {
	widest := 0
	for _, line := range strings.Split(output, "\n") {
		if w := ansi.StringWidth(ansi.Strip(line)); w > widest {
			widest = w
		}
	}
	return widest
}
