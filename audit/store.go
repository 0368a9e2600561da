package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	dbutil "github.com/jenilutfifauzi/dockbar/internal/db"
	"github.com/jenilutfifauzi/dockbar/theme"
)

const (
	appName    = "dockbar"
	dbFileName = "audit.db"
)

// ErrRunNotFound is returned when a run ID has no stored report.
var ErrRunNotFound = errors.New("audit run not found")

// Store keeps audit run history in SQLite so reports can be compared
// against earlier baselines.
type Store struct {
	db *sql.DB
}

// OpenStore opens the history database at path, creating it and its
// schema as needed. An empty path uses the XDG data directory.
func OpenStore(path string) (*Store, error) {
	if path == "" {
		p, err := xdg.DataFile(filepath.Join(appName, dbFileName))
		if err != nil {
			return nil, fmt.Errorf("resolving data path: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := prepare(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenMemoryStore opens an in-memory history database, used by tests
// and by audit runs with persistence disabled.
func OpenMemoryStore() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	if err := prepare(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func prepare(db *sql.DB) error {
	// One connection keeps the session pragmas in force for every
	// query, and lets :memory: databases survive the pool.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("setting pragma: %w", err)
		}
	}
	return initSchema(db)
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS audit_runs (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			theme TEXT NOT NULL,
			level TEXT NOT NULL,
			items INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS audit_findings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES audit_runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			check_name TEXT NOT NULL,
			severity TEXT NOT NULL,
			subject TEXT,
			message TEXT NOT NULL,
			ratio REAL,
			required REAL,
			UNIQUE(run_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_findings_run ON audit_findings(run_id);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON audit_runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_theme ON audit_runs(theme);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

// SaveReport stores a run and its findings in one transaction.
func (s *Store) SaveReport(ctx context.Context, r *Report) error {
	return dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO audit_runs (id, created_at, theme, level, items)
			VALUES (?, ?, ?, ?, ?)
		`, r.ID, r.Time.UTC().UnixNano(), r.Theme, string(r.Level), r.Items)
		if err != nil {
			return fmt.Errorf("inserting run: %w", err)
		}

		for i, f := range r.Findings {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO audit_findings (run_id, position, check_name, severity, subject, message, ratio, required)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, r.ID, i, f.Check, f.Severity.String(), dbutil.NullString(f.Subject), f.Message,
				dbutil.NullFloat64(f.Ratio), dbutil.NullFloat64(f.Required))
			if err != nil {
				return fmt.Errorf("inserting finding %d: %w", i, err)
			}
		}
		return nil
	})
}

// Report loads a stored run by ID.
func (s *Store) Report(ctx context.Context, id string) (*Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, theme, level, items
		FROM audit_runs WHERE id = ?
	`, id)
	r, err := scanRun(row)
	if err != nil {
		return nil, err
	}
	if r.Findings, err = s.findings(ctx, r.ID); err != nil {
		return nil, err
	}
	return r, nil
}

// Latest loads the most recent stored run for a theme, or for any
// theme when themeName is empty. Used as the default baseline.
func (s *Store) Latest(ctx context.Context, themeName string) (*Report, error) {
	query := `
		SELECT id, created_at, theme, level, items
		FROM audit_runs
	`
	args := []any{}
	if themeName != "" {
		query += ` WHERE theme = ?`
		args = append(args, themeName)
	}
	query += ` ORDER BY created_at DESC LIMIT 1`

	r, err := scanRun(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	if r.Findings, err = s.findings(ctx, r.ID); err != nil {
		return nil, err
	}
	return r, nil
}

func scanRun(row *sql.Row) (*Report, error) {
	var r Report
	var created int64
	var level string
	err := row.Scan(&r.ID, &created, &r.Theme, &level, &r.Items)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	r.Level = theme.Level(level)
	r.Time = time.Unix(0, created).UTC()
	return &r, nil
}

func (s *Store) findings(ctx context.Context, runID string) ([]Finding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT check_name, severity, subject, message, ratio, required
		FROM audit_findings
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying findings: %w", err)
	}
	defer rows.Close()

	var out []Finding
	for rows.Next() {
		var f Finding
		var severity string
		var subject sql.NullString
		var ratio, required sql.NullFloat64
		if err := rows.Scan(&f.Check, &severity, &subject, &f.Message, &ratio, &required); err != nil {
			return nil, fmt.Errorf("scanning finding: %w", err)
		}
		if f.Severity, err = ParseSeverity(severity); err != nil {
			return nil, err
		}
		f.Subject = dbutil.NullStringValue(subject)
		f.Ratio = dbutil.NullFloat64Value(ratio)
		f.Required = dbutil.NullFloat64Value(required)
		out = append(out, f)
	}
	return out, rows.Err()
}

// RunSummary is one row of the stored run history.
type RunSummary struct {
	ID       string      `json:"id"`
	Time     time.Time   `json:"time"`
	Theme    string      `json:"theme"`
	Level    theme.Level `json:"level"`
	Items    int         `json:"items"`
	Errors   int         `json:"errors"`
	Warnings int         `json:"warnings"`
	Notes    int         `json:"notes"`
}

// Runs lists stored runs, most recent first. A limit of 0 lists all.
func (s *Store) Runs(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.created_at, r.theme, r.level, r.items,
		       COALESCE(SUM(CASE WHEN f.severity = 'error' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN f.severity = 'warning' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN f.severity = 'info' THEN 1 ELSE 0 END), 0)
		FROM audit_runs r
		LEFT JOIN audit_findings f ON f.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var rs RunSummary
		var created int64
		var level string
		if err := rows.Scan(&rs.ID, &created, &rs.Theme, &level, &rs.Items,
			&rs.Errors, &rs.Warnings, &rs.Notes); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		rs.Level = theme.Level(level)
		rs.Time = time.Unix(0, created).UTC()
		out = append(out, rs)
	}
	return out, rows.Err()
}

// Prune deletes all but the most recent keep runs. Findings follow
// their run via the cascade.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM audit_runs
		WHERE id NOT IN (
			SELECT id FROM audit_runs ORDER BY created_at DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning runs: %w", err)
	}
	return nil
}
