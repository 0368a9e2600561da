package focus

import "testing"

func TestNew(t *testing.T) {
	r := New(5)
	if r.Size() != 5 {
		t.Errorf("New() size = %d, want 5", r.Size())
	}
	if r.Current() != -1 {
		t.Errorf("New() current = %d, want -1", r.Current())
	}
	if r.Focused() {
		t.Error("New() should not be focused")
	}
}

func TestWrapAround(t *testing.T) {
	// Next from i lands on (i+1) mod n, Prev on (i-1+n) mod n, for every
	// valid index.
	for _, n := range []int{1, 2, 5} {
		for i := 0; i < n; i++ {
			r := New(n)
			r.Focus(i)
			r.Next()
			if want := (i + 1) % n; r.Current() != want {
				t.Errorf("n=%d Next from %d = %d, want %d", n, i, r.Current(), want)
			}

			r = New(n)
			r.Focus(i)
			r.Prev()
			if want := (i - 1 + n) % n; r.Current() != want {
				t.Errorf("n=%d Prev from %d = %d, want %d", n, i, r.Current(), want)
			}
		}
	}
}

func TestFirstLast(t *testing.T) {
	for _, start := range []int{0, 1, 3} {
		r := New(4)
		r.Focus(start)
		r.First()
		if r.Current() != 0 {
			t.Errorf("First from %d = %d, want 0", start, r.Current())
		}

		r = New(4)
		r.Focus(start)
		r.Last()
		if r.Current() != 3 {
			t.Errorf("Last from %d = %d, want 3", start, r.Current())
		}
	}
}

func TestEnterFromUnfocused(t *testing.T) {
	r := New(3)
	r.Next()
	if r.Current() != 0 {
		t.Errorf("Next from unfocused = %d, want 0", r.Current())
	}

	r = New(3)
	r.Prev()
	if r.Current() != 2 {
		t.Errorf("Prev from unfocused = %d, want 2", r.Current())
	}
}

func TestEmptyRingIsInert(t *testing.T) {
	r := New(0)
	r.Next()
	r.Prev()
	r.First()
	r.Last()
	r.Focus(0)
	if r.Current() != -1 {
		t.Errorf("empty ring current = %d, want -1", r.Current())
	}
	if r.HandleKey("right") {
		t.Error("empty ring should not handle keys")
	}
}

func TestFocusBounds(t *testing.T) {
	r := New(3)
	r.Focus(1)
	if r.Current() != 1 {
		t.Fatalf("Focus(1) = %d", r.Current())
	}

	// Invalid indices are ignored, not clamped.
	r.Focus(7)
	if r.Current() != 1 {
		t.Errorf("Focus(7) changed current to %d", r.Current())
	}
	r.Focus(-2)
	if r.Current() != 1 {
		t.Errorf("Focus(-2) changed current to %d", r.Current())
	}
}

func TestBlur(t *testing.T) {
	r := New(3)
	r.Focus(2)
	r.Blur()
	if r.Current() != -1 {
		t.Errorf("Blur() current = %d, want -1", r.Current())
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		size    int
		want    int
	}{
		{"shrink clamps to last", 4, 3, 2},
		{"shrink keeps valid index", 1, 3, 1},
		{"grow keeps index", 2, 10, 2},
		{"empty drops focus", 2, 0, -1},
		{"negative treated as empty", 2, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(5)
			r.Focus(tt.initial)
			r.Resize(tt.size)
			if r.Current() != tt.want {
				t.Errorf("Resize(%d) current = %d, want %d", tt.size, r.Current(), tt.want)
			}
		})
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		start   int
		want    int
		handled bool
	}{
		{"right advances", "right", 0, 1, true},
		{"l advances", "l", 0, 1, true},
		{"right wraps", "right", 3, 0, true},
		{"left wraps", "left", 0, 3, true},
		{"h moves back", "h", 2, 1, true},
		{"home", "home", 2, 0, true},
		{"end", "end", 0, 3, true},
		{"g", "g", 2, 0, true},
		{"G", "G", 1, 3, true},
		{"unbound key ignored", "x", 2, 2, false},
		{"enter ignored", "enter", 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(4)
			r.Focus(tt.start)
			handled := r.HandleKey(tt.key)
			if handled != tt.handled {
				t.Errorf("HandleKey(%q) handled = %v, want %v", tt.key, handled, tt.handled)
			}
			if r.Current() != tt.want {
				t.Errorf("HandleKey(%q) current = %d, want %d", tt.key, r.Current(), tt.want)
			}
		})
	}
}
