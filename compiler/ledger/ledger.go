// Package ledger keeps a history of committed generation runs in a
// SQLite database under the project root.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite"

	"github.com/syssam/heragen/compiler/gen"
)

// DefaultPath is the ledger location relative to the project root.
const DefaultPath = ".heragen/history.db"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	entity TEXT NOT NULL,
	module TEXT NOT NULL,
	smart_code TEXT NOT NULL,
	route TEXT NOT NULL,
	industry TEXT NOT NULL DEFAULT '',
	started_at INTEGER NOT NULL,
	duration_ns INTEGER NOT NULL,
	artifacts BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_entity ON runs(entity);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`

// Artifact is the manifest entry of one written file.
type Artifact struct {
	Feature string `msgpack:"feature" json:"feature"`
	Path    string `msgpack:"path" json:"path"`
	Size    int    `msgpack:"size" json:"size"`
	SHA256  string `msgpack:"sha256" json:"sha256"`
}

// Run is one recorded generation.
type Run struct {
	ID        string        `json:"id"`
	Entity    string        `json:"entity"`
	Module    string        `json:"module"`
	SmartCode string        `json:"smart_code"`
	Route     string        `json:"route"`
	Industry  string        `json:"industry,omitempty"`
	Started   time.Time     `json:"started"`
	Duration  time.Duration `json:"duration_ns"`
	Artifacts []Artifact    `json:"artifacts"`
}

// Ledger records runs. The database file is created on the first
// Record, so projects that never generate anything stay clean.
type Ledger struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

var _ gen.Recorder = (*Ledger)(nil)

// Open returns a ledger backed by the database at path.
func Open(path string) *Ledger {
	return &Ledger{path: path}
}

// ForRoot returns a ledger at DefaultPath under root.
func ForRoot(root string) *Ledger {
	return Open(filepath.Join(root, DefaultPath))
}

// Path returns the database location.
func (l *Ledger) Path() string { return l.path }

func (l *Ledger) conn(create bool) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db != nil {
		return l.db, nil
	}
	if !create {
		if _, err := os.Stat(l.path); err != nil {
			return nil, err
		}
	} else if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return nil, fmt.Errorf("ledger: create directory: %w", err)
	}
	db, err := sql.Open("sqlite", l.path)
	if err != nil {
		return nil, fmt.Errorf("ledger: open %s: %w", l.path, err)
	}
	// A single connection serializes writers from concurrent runs.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: init schema: %w", err)
	}
	l.db = db
	return db, nil
}

// Record stores res under a fresh run ID. Dry runs are not recorded.
func (l *Ledger) Record(ctx context.Context, res *gen.Result) error {
	if res == nil || res.DryRun {
		return nil
	}
	db, err := l.conn(true)
	if err != nil {
		return err
	}
	manifest := make([]Artifact, 0, len(res.Artifacts))
	for _, a := range res.Artifacts {
		manifest = append(manifest, Artifact(a))
	}
	blob, err := msgpack.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("ledger: encode manifest: %w", err)
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO runs (id, entity, module, smart_code, route, industry, started_at, duration_ns, artifacts)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), res.Key, res.Module, res.SmartCode, res.Route, res.Industry,
		res.Started.UnixNano(), int64(res.Duration), blob,
	)
	if err != nil {
		return fmt.Errorf("ledger: insert run %s: %w", res.Key, err)
	}
	return nil
}

// Filter narrows a List query.
type Filter struct {
	// Entity restricts the result to one entity type.
	Entity string
	// Limit caps the number of runs; zero means no limit.
	Limit int
}

// List returns recorded runs, newest first. A ledger that was never
// written returns no runs.
func (l *Ledger) List(ctx context.Context, f Filter) ([]Run, error) {
	db, err := l.conn(false)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	query := `SELECT id, entity, module, smart_code, route, industry, started_at, duration_ns, artifacts FROM runs`
	var args []any
	if f.Entity != "" {
		query += ` WHERE entity = ?`
		args = append(args, f.Entity)
	}
	query += ` ORDER BY started_at DESC, rowid DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r        Run
			started  int64
			duration int64
			blob     []byte
		)
		if err := rows.Scan(&r.ID, &r.Entity, &r.Module, &r.SmartCode, &r.Route, &r.Industry, &started, &duration, &blob); err != nil {
			return nil, fmt.Errorf("ledger: scan run: %w", err)
		}
		if err := msgpack.Unmarshal(blob, &r.Artifacts); err != nil {
			return nil, fmt.Errorf("ledger: decode manifest of run %s: %w", r.ID, err)
		}
		r.Started = time.Unix(0, started).UTC()
		r.Duration = time.Duration(duration)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close releases the database handle, if one was opened.
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}
