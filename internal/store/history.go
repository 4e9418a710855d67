package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const historyFileName = "history.sqlite"

// ExportEntry is one row of the export history.
type ExportEntry struct {
	ID         int64     `json:"id"`
	Source     string    `json:"source,omitempty"`
	Dest       string    `json:"dest"`
	Count      int       `json:"count"`
	Total      int       `json:"total"`
	ExportedAt time.Time `json:"exportedAt"`
}

// History records completed exports in a small SQLite file next to the config.
type History struct {
	Path string
}

// OpenHistory returns the history stored in the config dir.
func OpenHistory() (History, error) {
	dir, err := ConfigDir()
	if err != nil {
		return History{}, err
	}
	return History{Path: filepath.Join(dir, historyFileName)}, nil
}

func (h History) open(ctx context.Context) (*sql.DB, error) {
	if strings.TrimSpace(h.Path) == "" {
		return nil, errors.New("history: missing path")
	}
	if err := os.MkdirAll(filepath.Dir(h.Path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", h.Path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateHistory(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateHistory(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL DEFAULT '',
			dest TEXT NOT NULL,
			count INTEGER NOT NULL,
			total INTEGER NOT NULL,
			exported_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_exports_time ON exports(exported_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// Record appends e. A zero ExportedAt is replaced with the current time.
func (h History) Record(ctx context.Context, e ExportEntry) (ExportEntry, error) {
	if strings.TrimSpace(e.Dest) == "" {
		return e, errors.New("history: missing destination")
	}
	if e.ExportedAt.IsZero() {
		e.ExportedAt = time.Now().UTC()
	}
	db, err := h.open(ctx)
	if err != nil {
		return e, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx,
		`INSERT INTO exports(source, dest, count, total, exported_at_unixms) VALUES(?, ?, ?, ?, ?)`,
		e.Source, e.Dest, e.Count, e.Total, e.ExportedAt.UTC().UnixMilli())
	if err != nil {
		return e, err
	}
	if id, err := res.LastInsertId(); err == nil {
		e.ID = id
	}
	return e, nil
}

// List returns the most recent exports, newest first. limit <= 0 means all.
func (h History) List(ctx context.Context, limit int) ([]ExportEntry, error) {
	db, err := h.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT id, source, dest, count, total, exported_at_unixms FROM exports ORDER BY exported_at_unixms DESC, id DESC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ExportEntry{}
	for rows.Next() {
		var e ExportEntry
		var ms int64
		if err := rows.Scan(&e.ID, &e.Source, &e.Dest, &e.Count, &e.Total, &ms); err != nil {
			return nil, err
		}
		e.ExportedAt = time.UnixMilli(ms).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
