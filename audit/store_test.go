package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jenilutfifauzi/dockbar/theme"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemoryStore()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func storedReport(id, themeName string, at time.Time, findings ...Finding) *Report {
	return &Report{
		ID:       id,
		Time:     at.UTC(),
		Theme:    themeName,
		Level:    theme.AA,
		Items:    4,
		Findings: findings,
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := storedReport("run-1", "midnight", time.Date(2026, 3, 14, 9, 30, 0, 123456789, time.UTC),
		Finding{Check: "contrast", Severity: Error, Subject: "badge", Message: "contrast 2.10:1 is below the AA minimum of 4.5:1", Ratio: 2.1, Required: 4.5},
		Finding{Check: "focus-visible", Severity: Info, Message: "border color does not change when the bar gains focus"},
	)

	if err := store.SaveReport(ctx, want); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	got, err := store.Report(ctx, "run-1")
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Theme, got.Theme)
	assert.Equal(t, want.Level, got.Level)
	assert.Equal(t, want.Items, got.Items)
	assert.True(t, got.Time.Equal(want.Time), "time = %v, want %v", got.Time, want.Time)
	assert.Equal(t, want.Findings, got.Findings)
}

func TestStoreReportNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Report(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestStoreDuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	r := storedReport("run-1", "midnight", time.Now())

	if err := store.SaveReport(ctx, r); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	assert.Error(t, store.SaveReport(ctx, r), "run IDs are unique")
}

func TestStoreRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	reports := []*Report{
		storedReport("run-1", "midnight", base,
			Finding{Check: "contrast", Severity: Error, Message: "too dim"},
			Finding{Check: "labels", Severity: Warning, Message: "duplicate"},
		),
		storedReport("run-2", "paper", base.Add(time.Minute),
			Finding{Check: "icons", Severity: Warning, Message: "unknown icon"},
		),
		storedReport("run-3", "midnight", base.Add(2*time.Minute)),
	}
	for _, r := range reports {
		if err := store.SaveReport(ctx, r); err != nil {
			t.Fatalf("save %s: %v", r.ID, err)
		}
	}

	runs, err := store.Runs(ctx, 0)
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}

	if assert.Len(t, runs, 3) {
		// Most recent first.
		assert.Equal(t, "run-3", runs[0].ID)
		assert.Equal(t, "run-2", runs[1].ID)
		assert.Equal(t, "run-1", runs[2].ID)

		assert.Equal(t, 0, runs[0].Errors+runs[0].Warnings+runs[0].Notes)
		assert.Equal(t, 1, runs[1].Warnings)
		assert.Equal(t, 1, runs[2].Errors)
		assert.Equal(t, 1, runs[2].Warnings)
	}

	limited, err := store.Runs(ctx, 2)
	if err != nil {
		t.Fatalf("Runs(2) failed: %v", err)
	}
	assert.Len(t, limited, 2)
	assert.Equal(t, "run-3", limited[0].ID)
}

func TestStoreLatest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	for _, r := range []*Report{
		storedReport("run-1", "midnight", base),
		storedReport("run-2", "paper", base.Add(time.Minute)),
		storedReport("run-3", "midnight", base.Add(2*time.Minute)),
	} {
		if err := store.SaveReport(ctx, r); err != nil {
			t.Fatalf("save %s: %v", r.ID, err)
		}
	}

	latest, err := store.Latest(ctx, "")
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	assert.Equal(t, "run-3", latest.ID)

	paper, err := store.Latest(ctx, "paper")
	if err != nil {
		t.Fatalf("Latest(paper) failed: %v", err)
	}
	assert.Equal(t, "run-2", paper.ID)

	_, err = store.Latest(ctx, "contrast")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestStoreLatestEmpty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Latest(context.Background(), "")

	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestStorePrune(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"run-1", "run-2", "run-3", "run-4"} {
		r := storedReport(id, "midnight", base.Add(time.Duration(i)*time.Minute),
			Finding{Check: "labels", Severity: Warning, Message: "x"})
		if err := store.SaveReport(ctx, r); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	if err := store.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	runs, err := store.Runs(ctx, 0)
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if assert.Len(t, runs, 2) {
		assert.Equal(t, "run-4", runs[0].ID)
		assert.Equal(t, "run-3", runs[1].ID)
	}

	// Findings follow their runs out via the cascade.
	var count int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM audit_findings`).Scan(&count); err != nil {
		t.Fatalf("counting findings: %v", err)
	}
	assert.Equal(t, 2, count)
}
