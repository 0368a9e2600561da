// Package config loads the navigation bar configuration: the item tree,
// theme selection with per-color overrides, icon style, and audit policy.
// Files may be TOML or YAML; environment variables prefixed DOCKBAR_
// override top-level keys.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/jenilutfifauzi/dockbar/item"
	"github.com/jenilutfifauzi/dockbar/theme"
)

// Config is the full bar configuration.
type Config struct {
	Theme   string       `yaml:"theme" koanf:"theme"`     // built-in theme name
	Icons   string       `yaml:"icons" koanf:"icons"`     // "nerd", "unicode", or "none"
	Compact bool         `yaml:"compact" koanf:"compact"` // icons only, labels hidden
	Colors  Colors       `yaml:"colors" koanf:"colors"`
	Items   []ItemConfig `yaml:"items" koanf:"items"`
	Audit   Audit        `yaml:"audit" koanf:"audit"`
}

// Colors overrides individual palette entries of the selected theme.
// Values are "#rrggbb" hex strings; empty fields keep the theme's color.
type Colors struct {
	Primary     string `yaml:"primary" koanf:"primary"`
	Secondary   string `yaml:"secondary" koanf:"secondary"`
	FgBase      string `yaml:"fg_base" koanf:"fg_base"`
	FgMuted     string `yaml:"fg_muted" koanf:"fg_muted"`
	FgSubtle    string `yaml:"fg_subtle" koanf:"fg_subtle"`
	BgBar       string `yaml:"bg_bar" koanf:"bg_bar"`
	BgActive    string `yaml:"bg_active" koanf:"bg_active"`
	BgFocus     string `yaml:"bg_focus" koanf:"bg_focus"`
	BadgeFg     string `yaml:"badge_fg" koanf:"badge_fg"`
	BadgeBg     string `yaml:"badge_bg" koanf:"badge_bg"`
	Border      string `yaml:"border" koanf:"border"`
	BorderFocus string `yaml:"border_focus" koanf:"border_focus"`
}

// ItemConfig is one entry of the configured item tree. An entry with
// nested items is a group; its own route, icon, and badge are ignored.
type ItemConfig struct {
	Label      string       `yaml:"label" koanf:"label"`
	Route      string       `yaml:"route" koanf:"route"`
	Icon       string       `yaml:"icon" koanf:"icon"`
	Badge      string       `yaml:"badge" koanf:"badge"`
	BadgeCount int          `yaml:"badge_count" koanf:"badge_count"`
	ActiveWhen []string     `yaml:"active_when" koanf:"active_when"`
	Hidden     bool         `yaml:"hidden" koanf:"hidden"`
	Items      []ItemConfig `yaml:"items" koanf:"items"`
}

// Audit configures the accessibility checks.
type Audit struct {
	Level     string `yaml:"level" koanf:"level"`           // "AA" or "AAA"
	LargeText bool   `yaml:"large_text" koanf:"large_text"` // relax contrast thresholds
	MaxItems  int    `yaml:"max_items" koanf:"max_items"`   // overflow warning threshold
	FailOn    string `yaml:"fail_on" koanf:"fail_on"`       // "error" or "warning"
}

// Default returns the configuration used when no file exists: the default
// theme and a typical admin bar.
func Default() *Config {
	return &Config{
		Theme: theme.T().Name,
		Icons: "unicode",
		Items: []ItemConfig{
			{Label: "Home", Route: "/", Icon: "home"},
			{Label: "Users", Route: "/admin/users", Icon: "users"},
			{Label: "Orders", Route: "/admin/orders", Icon: "orders", BadgeCount: 12},
			{Label: "Reports", Route: "/admin/reports", Icon: "reports"},
			{Label: "Settings", Route: "/admin/settings", Icon: "settings"},
		},
		Audit: Audit{
			Level:    string(theme.AA),
			MaxItems: 5,
			FailOn:   "error",
		},
	}
}

// Load reads the configuration. With an explicit path only that file is
// read and it must exist. Otherwise the standard locations are merged in
// order, last wins: $XDG_CONFIG_HOME/dockbar/config.toml, then
// ./dockbar.toml, then ./dockbar.yaml. Environment variables DOCKBAR_*
// overlay the result. Missing files leave the defaults in place.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	paths := []string{path}
	if path == "" {
		paths = searchPaths()
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if path != "" {
				return nil, fmt.Errorf("reading config %s: %w", p, err)
			}
			continue
		}
		if err := k.Load(file.Provider(p), parserFor(p)); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", p, err)
		}
	}

	if err := k.Load(env.Provider("DOCKBAR_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DOCKBAR_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := Default()
	if k.Exists("items") {
		// A configured item list replaces the default bar instead of
		// appending to it.
		cfg.Items = nil
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

func searchPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "dockbar", "config.toml"),
		"dockbar.toml",
		"dockbar.yaml",
	}
}

// FindPath returns the config file worth watching for changes: the
// explicit path when given, otherwise the highest-precedence standard
// location that exists. Empty when no file exists.
func FindPath(path string) string {
	if path != "" {
		return path
	}
	found := ""
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			found = p
		}
	}
	return found
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

var validIcons = map[string]bool{
	"":        true,
	"nerd":    true,
	"unicode": true,
	"none":    true,
}

var validLevels = map[string]bool{
	"":                true,
	string(theme.AA):  true,
	string(theme.AAA): true,
}

var validFailOn = map[string]bool{
	"":        true,
	"error":   true,
	"warning": true,
}

// Validate checks the configuration for values the bar cannot render.
func (c *Config) Validate() error {
	if !validIcons[c.Icons] {
		return fmt.Errorf("invalid icons %q: must be one of nerd, unicode, none", c.Icons)
	}
	if c.Theme != "" {
		if _, ok := theme.ByName(c.Theme); !ok {
			return fmt.Errorf("unknown theme %q: have %s", c.Theme, strings.Join(theme.Names(), ", "))
		}
	}
	if !validLevels[c.Audit.Level] {
		return fmt.Errorf("invalid audit level %q: must be AA or AAA", c.Audit.Level)
	}
	if !validFailOn[c.Audit.FailOn] {
		return fmt.Errorf("invalid fail_on %q: must be error or warning", c.Audit.FailOn)
	}
	if c.Audit.MaxItems < 0 {
		return fmt.Errorf("max_items must be non-negative")
	}
	for i, ic := range c.Items {
		if err := ic.validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}

func (ic ItemConfig) validate() error {
	if len(ic.Items) > 0 {
		for i, sub := range ic.Items {
			if len(sub.Items) > 0 {
				return fmt.Errorf("items[%d]: groups cannot nest", i)
			}
			if err := sub.validate(); err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}
		}
		return nil
	}
	if ic.Route == "" {
		return fmt.Errorf("item %q has no route", ic.Label)
	}
	return nil
}

// Entries converts the configured tree into the entry list the dock
// flattens.
func (c *Config) Entries() []item.Entry {
	entries := make([]item.Entry, 0, len(c.Items))
	for _, ic := range c.Items {
		entries = append(entries, ic.toEntry())
	}
	return entries
}

func (ic ItemConfig) toEntry() item.Entry {
	if len(ic.Items) > 0 {
		g := item.Group{Label: ic.Label}
		for _, sub := range ic.Items {
			g.Entries = append(g.Entries, sub.toItem())
		}
		return g
	}
	return ic.toItem()
}

func (ic ItemConfig) toItem() item.Item {
	var b item.Badge
	switch {
	case ic.Badge != "":
		b = item.Text(ic.Badge)
	case ic.BadgeCount > 0:
		b = item.Count(ic.BadgeCount)
	}
	return item.Item{
		Label:      ic.Label,
		Route:      ic.Route,
		Icon:       ic.Icon,
		Badge:      b,
		ActiveWhen: ic.ActiveWhen,
		Hidden:     ic.Hidden,
	}
}

// IconStyle returns the configured icon style.
func (c *Config) IconStyle() item.IconStyle {
	switch c.Icons {
	case "nerd":
		return item.IconsNerd
	case "none":
		return item.IconsNone
	default:
		return item.IconsUnicode
	}
}

// ResolveTheme resolves the selected theme and applies color overrides.
func (c *Config) ResolveTheme() (*theme.Theme, error) {
	th := *theme.T()
	if c.Theme != "" {
		named, ok := theme.ByName(c.Theme)
		if !ok {
			return nil, fmt.Errorf("unknown theme %q", c.Theme)
		}
		th = named
	}
	if err := c.Colors.apply(&th); err != nil {
		return nil, err
	}
	th.Invalidate()
	return &th, nil
}

// ConformanceLevel returns the configured audit level.
func (a Audit) ConformanceLevel() theme.Level {
	if a.Level == string(theme.AAA) {
		return theme.AAA
	}
	return theme.AA
}

func (o Colors) apply(th *theme.Theme) error {
	fields := []struct {
		name  string
		value string
		dst   *lipgloss.Color
	}{
		{"primary", o.Primary, &th.Primary},
		{"secondary", o.Secondary, &th.Secondary},
		{"fg_base", o.FgBase, &th.FgBase},
		{"fg_muted", o.FgMuted, &th.FgMuted},
		{"fg_subtle", o.FgSubtle, &th.FgSubtle},
		{"bg_bar", o.BgBar, &th.BgBar},
		{"bg_active", o.BgActive, &th.BgActive},
		{"bg_focus", o.BgFocus, &th.BgFocus},
		{"badge_fg", o.BadgeFg, &th.BadgeFg},
		{"badge_bg", o.BadgeBg, &th.BadgeBg},
		{"border", o.Border, &th.Border},
		{"border_focus", o.BorderFocus, &th.BorderFocus},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		c, err := theme.ParseColor(f.value)
		if err != nil {
			return fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return nil
}
