package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jenilutfifauzi/dockbar/item"
	"github.com/jenilutfifauzi/dockbar/theme"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "dockbar.toml", `
theme = "paper"
icons = "nerd"
compact = true

[[items]]
label = "Home"
route = "/"
icon = "home"

[[items]]
label = "Users"
route = "/admin/users"
badge_count = 150
active_when = ["/admin/users/**"]

[audit]
level = "AAA"
max_items = 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "paper" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if cfg.Icons != "nerd" || !cfg.Compact {
		t.Errorf("icons = %q compact = %v", cfg.Icons, cfg.Compact)
	}
	if len(cfg.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(cfg.Items))
	}
	if cfg.Items[1].BadgeCount != 150 {
		t.Errorf("badge_count = %d", cfg.Items[1].BadgeCount)
	}
	if cfg.Audit.Level != "AAA" || cfg.Audit.MaxItems != 4 {
		t.Errorf("audit = %+v", cfg.Audit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "dockbar.yaml", `
theme: contrast
items:
  - label: Admin
    items:
      - label: Users
        route: /admin/users
      - label: Orders
        route: /admin/orders
        hidden: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "contrast" {
		t.Errorf("theme = %q", cfg.Theme)
	}

	flat := item.Flatten(cfg.Entries())
	if len(flat) != 1 {
		t.Fatalf("flattened = %v, want the one visible grouped item", flat)
	}
	if flat[0].Label != "Users" {
		t.Errorf("label = %q", flat[0].Label)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("explicit missing path should error")
	}
}

func TestConfiguredItemsReplaceDefaults(t *testing.T) {
	path := writeConfig(t, "dockbar.toml", `
[[items]]
label = "Only"
route = "/only"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Items) != 1 || cfg.Items[0].Label != "Only" {
		t.Errorf("items = %+v, want just Only", cfg.Items)
	}
}

func TestEnvOverlay(t *testing.T) {
	path := writeConfig(t, "dockbar.toml", `theme = "paper"`)
	t.Setenv("DOCKBAR_THEME", "contrast")
	t.Setenv("DOCKBAR_ICONS", "none")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "contrast" {
		t.Errorf("env override lost, theme = %q", cfg.Theme)
	}
	if cfg.IconStyle() != item.IconsNone {
		t.Errorf("icon style = %q", cfg.IconStyle())
	}
}

func TestDefaultBar(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	flat := item.Flatten(cfg.Entries())
	if len(flat) == 0 {
		t.Fatal("default bar has no items")
	}
	if flat[0].Route != "/" {
		t.Errorf("first default route = %q", flat[0].Route)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default ok", func(c *Config) {}, false},
		{"bad icons", func(c *Config) { c.Icons = "emoji" }, true},
		{"bad theme", func(c *Config) { c.Theme = "neon" }, true},
		{"bad level", func(c *Config) { c.Audit.Level = "AAAA" }, true},
		{"bad fail_on", func(c *Config) { c.Audit.FailOn = "never" }, true},
		{"negative max_items", func(c *Config) { c.Audit.MaxItems = -1 }, true},
		{"item without route", func(c *Config) {
			c.Items = append(c.Items, ItemConfig{Label: "Broken"})
		}, true},
		{"nested group", func(c *Config) {
			c.Items = []ItemConfig{{Label: "G", Items: []ItemConfig{
				{Label: "Inner", Items: []ItemConfig{{Label: "X", Route: "/x"}}},
			}}}
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveTheme(t *testing.T) {
	cfg := Default()
	cfg.Theme = "paper"
	cfg.Colors.Primary = "#123456"

	th, err := cfg.ResolveTheme()
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "paper" {
		t.Errorf("name = %q", th.Name)
	}
	if string(th.Primary) != "#123456" {
		t.Errorf("primary = %q", th.Primary)
	}

	// An override must not leak into the built-in palette.
	paper, _ := theme.ByName("paper")
	if string(paper.Primary) == "#123456" {
		t.Error("builtin palette mutated by override")
	}
}

func TestResolveThemeBadColor(t *testing.T) {
	cfg := Default()
	cfg.Colors.BgBar = "not-a-color"
	if _, err := cfg.ResolveTheme(); err == nil {
		t.Error("bad hex should error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "dockbar.yaml")

	orig := Default()
	orig.Theme = "contrast"
	orig.Items = []ItemConfig{{Label: "Docs", Route: "/docs", Icon: "doc"}}
	if err := orig.Save(path); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "contrast" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if len(cfg.Items) != 1 || cfg.Items[0].Route != "/docs" {
		t.Errorf("items = %+v", cfg.Items)
	}
}

func TestBadgeMapping(t *testing.T) {
	ic := ItemConfig{Label: "Inbox", Route: "/inbox", Badge: "new"}
	if got := ic.toItem().Badge.Label(); got != "new" {
		t.Errorf("text badge = %q", got)
	}

	ic = ItemConfig{Label: "Inbox", Route: "/inbox", BadgeCount: 240}
	if got := ic.toItem().Badge.Label(); got != "99+" {
		t.Errorf("count badge = %q", got)
	}

	ic = ItemConfig{Label: "Inbox", Route: "/inbox"}
	if !ic.toItem().Badge.Empty() {
		t.Error("no badge configured, badge should be empty")
	}
}
