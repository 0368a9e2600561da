package route

import (
	"testing"

	"github.com/jenilutfifauzi/dockbar/item"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain path", "/admin/users", "/admin/users"},
		{"trailing slash", "/admin/users/", "/admin/users"},
		{"multiple trailing slashes", "/admin/users///", "/admin/users"},
		{"root stays root", "/", "/"},
		{"root with query", "/?tab=1", "/"},
		{"query stripped", "/admin/users?sort=name", "/admin/users"},
		{"fragment stripped", "/admin/users#section", "/admin/users"},
		{"query before fragment", "/admin/users?a=1#top", "/admin/users"},
		{"fragment before query", "/admin/users#top?a=1", "/admin/users"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		name    string
		route   string
		current string
		want    bool
	}{
		{"exact", "/admin/dashboard", "/admin/dashboard", true},
		{"trailing slash normalized", "/admin/dashboard", "/admin/dashboard/", true},
		{"prefix", "/admin/users", "/admin/users/5/edit", true},
		{"root only matches exactly", "/", "/admin/users", false},
		{"root exact", "/", "/", true},
		{"root with query", "/", "/?tab=overview", true},
		{"query stripped", "/admin/users", "/admin/users?sort=name", true},
		{"fragment stripped", "/admin/users", "/admin/users#list", true},
		{"external never matches path", "https://external.com/page", "/admin/users", false},
		{"path never matches external", "/admin/users", "https://external.com/admin/users", false},
		{"case sensitive", "/Admin/Users", "/admin/users", false},
		{"different branch", "/admin/orders", "/admin/users", false},
		{"route with trailing slash", "/admin/users/", "/admin/users", true},
		{"empty route", "", "/admin/users", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActive(tt.route, tt.current); got != tt.want {
				t.Errorf("IsActive(%q, %q) = %v, want %v", tt.route, tt.current, got, tt.want)
			}
		})
	}
}

func TestMultipleActive(t *testing.T) {
	// Nested routes are all active at once; no implicit tie-break.
	routes := []string{"/admin", "/admin/users", "/admin/orders"}
	current := "/admin/users/5/edit"

	var active []string
	for _, r := range routes {
		if IsActive(r, current) {
			active = append(active, r)
		}
	}
	if len(active) != 2 {
		t.Fatalf("active = %v, want /admin and /admin/users", active)
	}
}

func TestBestMatch(t *testing.T) {
	tests := []struct {
		name    string
		routes  []string
		current string
		want    int
	}{
		{"longest wins", []string{"/admin", "/admin/users", "/admin/orders"}, "/admin/users/5/edit", 1},
		{"single match", []string{"/admin/orders", "/admin/users"}, "/admin/orders/7", 0},
		{"no match", []string{"/admin/users"}, "/billing", -1},
		{"empty set", nil, "/admin", -1},
		{"duplicate routes keep first", []string{"/admin", "/admin"}, "/admin/users", 0},
		{"normalized length decides", []string{"/admin/users///", "/admin"}, "/admin/users", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestMatch(tt.routes, tt.current); got != tt.want {
				t.Errorf("BestMatch(%v, %q) = %d, want %d", tt.routes, tt.current, got, tt.want)
			}
		})
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		current string
		want    bool
	}{
		{"single star", "/admin/users/*", "/admin/users/5", true},
		{"single star no deep match", "/admin/users/*", "/admin/users/5/edit", false},
		{"double star", "/admin/**", "/admin/users/5/edit", true},
		{"exact", "/admin", "/admin", true},
		{"query ignored on path", "/admin/users/*", "/admin/users/5?tab=roles", true},
		{"question is glob syntax", "/admin/user?", "/admin/users", true},
		{"no match", "/billing/*", "/admin/users", false},
		{"malformed pattern", "/admin/[", "/admin/x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchPattern(tt.pattern, tt.current); got != tt.want {
				t.Errorf("MatchPattern(%q, %q) = %v, want %v", tt.pattern, tt.current, got, tt.want)
			}
		})
	}
}

func TestActiveFor(t *testing.T) {
	tests := []struct {
		name    string
		it      item.Item
		current string
		want    bool
	}{
		{"explicit flag wins", item.Item{Route: "/a", Active: true}, "/b", true},
		{"pattern match", item.Item{Route: "/x", ActiveWhen: []string{"/admin/**"}}, "/admin/users/5", true},
		{"route match", item.Item{Route: "/admin/users"}, "/admin/users/5", true},
		{"no match", item.Item{Route: "/billing"}, "/admin", false},
		{"external item stays inactive", item.Item{Route: "https://status.example.com"}, "/admin", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActiveFor(tt.it, tt.current); got != tt.want {
				t.Errorf("ActiveFor(%+v, %q) = %v, want %v", tt.it, tt.current, got, tt.want)
			}
		})
	}
}
