// Package audit checks a bar setup against the WCAG success criteria
// that apply to a themed terminal navigation bar: contrast of every
// rendered color pair (1.4.3, 1.4.6), a visible keyboard focus
// indicator (2.4.7, 1.4.11), non-color distinction of the active item
// (1.4.1), label presence, item overflow, and overlapping routes.
//
// Checks never stop a run. Every problem becomes a Finding and the
// caller decides which severities fail the build.
package audit

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jenilutfifauzi/dockbar/config"
	"github.com/jenilutfifauzi/dockbar/item"
	"github.com/jenilutfifauzi/dockbar/theme"
)

// Severity grades a finding. Severities are ordered: a threshold of
// Warning also covers Error.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

var severityNames = map[Severity]string{
	Info:    "info",
	Warning: "warning",
	Error:   "error",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// MarshalText encodes the severity as its lowercase name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a lowercase severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	parsed, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a severity name, as used by the fail_on
// configuration key, back to a Severity.
func ParseSeverity(name string) (Severity, error) {
	for sev, n := range severityNames {
		if n == name {
			return sev, nil
		}
	}
	return Info, fmt.Errorf("unknown severity %q: must be info, warning or error", name)
}

// Finding is one problem reported by a check.
type Finding struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Subject  string   `json:"subject,omitempty"` // item label or color pair name
	Message  string   `json:"message"`
	Ratio    float64  `json:"ratio,omitempty"`    // measured contrast, contrast findings only
	Required float64  `json:"required,omitempty"` // ratio the level demands
}

// Key identifies a finding across runs for baseline comparison. The
// message is excluded so a ratio that moves but keeps failing does not
// read as a new finding.
func (f Finding) Key() string {
	return f.Check + "\x00" + f.Subject + "\x00" + f.Severity.String()
}

// Setup is the bar configuration under audit.
type Setup struct {
	Items     []item.Item
	Theme     *theme.Theme
	Level     theme.Level
	LargeText bool           // relax contrast thresholds to the large-text floors
	MaxItems  int            // visible items beyond this raise a warning
	Icons     item.IconStyle // style the bar renders icons with
	Width     int            // narrowest width the bar must fit
}

// FromConfig builds the audit setup from a loaded configuration.
func FromConfig(cfg *config.Config) (Setup, error) {
	th, err := cfg.ResolveTheme()
	if err != nil {
		return Setup{}, fmt.Errorf("resolving theme: %w", err)
	}
	return Setup{
		Items:     item.Flatten(cfg.Entries()),
		Theme:     th,
		Level:     cfg.Audit.ConformanceLevel(),
		LargeText: cfg.Audit.LargeText,
		MaxItems:  cfg.Audit.MaxItems,
		Icons:     cfg.IconStyle(),
		Width:     defaultWidth,
	}, nil
}

const (
	defaultMaxItems = 5
	defaultWidth    = 80
)

// Report is the outcome of one audit run.
type Report struct {
	ID       string      `json:"id"`
	Time     time.Time   `json:"time"`
	Theme    string      `json:"theme"`
	Level    theme.Level `json:"level"`
	Items    int         `json:"items"`
	Findings []Finding   `json:"findings,omitempty"`
}

// Run executes all checks over the setup. It always returns a report;
// an empty finding list means the setup passed.
func Run(s Setup) *Report {
	if s.Theme == nil {
		s.Theme = theme.T()
	}
	if s.Level == "" {
		s.Level = theme.AA
	}
	if s.MaxItems <= 0 {
		s.MaxItems = defaultMaxItems
	}
	if s.Width <= 0 {
		s.Width = defaultWidth
	}

	r := &Report{
		ID:    uuid.New().String(),
		Time:  time.Now().UTC(),
		Theme: s.Theme.Name,
		Level: s.Level,
		Items: len(visible(s.Items)),
	}
	for _, c := range checks {
		r.Findings = append(r.Findings, c.fn(s)...)
	}
	return r
}

// Count returns the number of findings at exactly the given severity.
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// Failed reports whether any finding is at or above the threshold.
func (r *Report) Failed(threshold Severity) bool {
	for _, f := range r.Findings {
		if f.Severity >= threshold {
			return true
		}
	}
	return false
}

// Passed reports whether the run produced no findings at all.
func (r *Report) Passed() bool {
	return len(r.Findings) == 0
}

// Diff compares a report against a baseline run. It returns the
// findings introduced since the baseline and the ones fixed by it,
// matched by check, subject and severity.
func Diff(baseline, current *Report) (introduced, fixed []Finding) {
	old := make(map[string]Finding, len(baseline.Findings))
	for _, f := range baseline.Findings {
		old[f.Key()] = f
	}
	seen := make(map[string]bool, len(current.Findings))
	for _, f := range current.Findings {
		seen[f.Key()] = true
		if _, ok := old[f.Key()]; !ok {
			introduced = append(introduced, f)
		}
	}
	for _, f := range baseline.Findings {
		if !seen[f.Key()] {
			fixed = append(fixed, f)
		}
	}
	return introduced, fixed
}

func visible(items []item.Item) []item.Item {
	out := make([]item.Item, 0, len(items))
	for _, it := range items {
		if !it.Hidden {
			out = append(out, it)
		}
	}
	return out
}
