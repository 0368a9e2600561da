package audit

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize/english"
)

// Summary returns a one-line severity tally for status lines and logs.
func (r *Report) Summary() string {
	if r.Passed() {
		return "all checks passed"
	}
	return fmt.Sprintf("%s, %s, %s",
		english.Plural(r.Count(Error), "error", ""),
		english.Plural(r.Count(Warning), "warning", ""),
		english.Plural(r.Count(Info), "note", ""))
}

// sorted returns the findings ordered for presentation: errors first,
// then by check and subject. The report itself keeps check order.
func (r *Report) sorted() []Finding {
	out := make([]Finding, len(r.Findings))
	copy(out, r.Findings)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Severity != out[j].Severity {
			return out[i].Severity > out[j].Severity
		}
		if out[i].Check != out[j].Check {
			return out[i].Check < out[j].Check
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}

// Markdown renders the report as a GFM document.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("# Accessibility audit\n\n")
	fmt.Fprintf(&b, "- **Theme:** %s\n", r.Theme)
	fmt.Fprintf(&b, "- **Level:** %s\n", r.Level)
	fmt.Fprintf(&b, "- **Items:** %d\n", r.Items)
	fmt.Fprintf(&b, "- **Run:** %s (`%s`)\n\n", r.Time.Format(time.RFC3339), r.ID)

	fmt.Fprintf(&b, "**Result:** %s\n\n", r.Summary())
	if r.Passed() {
		return b.String()
	}

	b.WriteString("| Severity | Check | Subject | Finding |\n")
	b.WriteString("|----------|-------|---------|---------|\n")
	for _, f := range r.sorted() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			f.Severity, f.Check, tableCell(f.Subject), tableCell(f.Message))
	}
	b.WriteString("\n")
	return b.String()
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// tableCell escapes the characters that would break a Markdown table
// row. Labels come from configuration and can contain anything.
func tableCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
