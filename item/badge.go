package item

import "github.com/dustin/go-humanize"

// Badge is the optional marker rendered after an item label. It carries
// either literal text or a numeric count; text wins when both are set.
type Badge struct {
	Text  string
	Count int

	// Cap limits the displayed count: counts above it render as "<cap>+".
	// Zero means no cap.
	Cap int
}

// Empty reports whether the badge renders nothing.
func (b Badge) Empty() bool {
	return b.Text == "" && b.Count <= 0
}

// Label returns the badge display text. Counts are grouped with thousands
// separators and clamped to the cap, so Count=1500 with Cap=99 renders
// as "99+".
func (b Badge) Label() string {
	if b.Text != "" {
		return b.Text
	}
	if b.Count <= 0 {
		return ""
	}
	if b.Cap > 0 && b.Count > b.Cap {
		return humanize.Comma(int64(b.Cap)) + "+"
	}
	return humanize.Comma(int64(b.Count))
}

// Count returns a count badge with the conventional "99+" cap.
func Count(n int) Badge {
	return Badge{Count: n, Cap: 99}
}

// Text returns a literal text badge.
func Text(s string) Badge {
	return Badge{Text: s}
}
