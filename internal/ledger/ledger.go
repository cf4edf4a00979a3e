// Package ledger records translation runs in a SQLite database: which
// input was translated by which pass, the fingerprint of the output and
// how many warnings were issued. Comparing the fingerprints of two runs
// over the same input tells whether the translation is deterministic.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/sqlite"
	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	input       TEXT NOT NULL,
	pass        TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	warnings    INTEGER NOT NULL,
	started     TEXT NOT NULL,
	duration_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_input_pass ON runs (input, pass, started);
`

// Run is one recorded translation.
type Run struct {
	ID          uuid.UUID     `json:"id"`
	Input       string        `json:"input"`
	Pass        string        `json:"pass"`
	Fingerprint string        `json:"fingerprint"`
	Warnings    int           `json:"warnings"`
	Started     time.Time     `json:"started"`
	Duration    time.Duration `json:"duration"`
}

// Ledger is an open run database.
type Ledger struct {
	db *sql.DB
}

// Open opens the ledger at path, creating it if needed.
func Open(ctx context.Context, path string) (*Ledger, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, mferrors.Wrapf(err, "opening ledger %s", path)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, mferrors.Wrapf(err, "creating ledger schema in %s", path)
	}
	logging.DebugContext(ctx, "ledger_opened", "path", path, "driver", sqlite.DriverName())
	return &Ledger{db: db}, nil
}

// OpenReadOnly opens the existing ledger at path without write access.
// It returns an error matching ErrNotFound when there is no ledger there.
func OpenReadOnly(ctx context.Context, path string) (*Ledger, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, mferrors.NewNotFound("ledger", path)
	}
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, mferrors.Wrapf(err, "opening ledger %s", path)
	}
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		db.Close()
		return nil, mferrors.Wrapf(err, "reading ledger %s", path)
	}
	logging.DebugContext(ctx, "ledger_opened", "path", path, "driver", sqlite.DriverName(), "read_only", true, "runs", count)
	return &Ledger{db: db}, nil
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record stores r. A zero ID gets a new random one and a zero start time
// the current time; the stored run is returned.
func (l *Ledger) Record(ctx context.Context, r Run) (Run, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Started.IsZero() {
		r.Started = time.Now()
	}
	r.Started = r.Started.UTC().Truncate(time.Millisecond)

	_, err := l.db.ExecContext(ctx,
		"INSERT INTO runs (id, input, pass, fingerprint, warnings, started, duration_ms) VALUES (?, ?, ?, ?, ?, ?, ?)",
		r.ID.String(), r.Input, r.Pass, r.Fingerprint, r.Warnings,
		r.Started.Format(time.RFC3339Nano), r.Duration.Milliseconds())
	if err != nil {
		return Run{}, mferrors.Wrapf(err, "recording run %s", r.ID)
	}
	logging.RunRecorded(r.ID.String(), r.Fingerprint, "input", r.Input, "pass", r.Pass, "warnings", r.Warnings)
	return r, nil
}

// List returns the runs, most recent first. limit <= 0 means all.
func (l *Ledger) List(ctx context.Context, limit int) ([]Run, error) {
	query := "SELECT id, input, pass, fingerprint, warnings, started, duration_ms FROM runs ORDER BY started DESC, id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mferrors.Wrap(err, "listing runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Last returns the most recent run of pass over input. It returns an
// error matching ErrNotFound when there is none.
func (l *Ledger) Last(ctx context.Context, input, pass string) (Run, error) {
	row := l.db.QueryRowContext(ctx,
		"SELECT id, input, pass, fingerprint, warnings, started, duration_ms FROM runs WHERE input = ? AND pass = ? ORDER BY started DESC LIMIT 1",
		input, pass)
	r, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, mferrors.NewNotFound("run", input+" "+pass)
	}
	return r, err
}

// Find returns the run with the given id. It returns an error matching
// ErrNotFound when there is none.
func (l *Ledger) Find(ctx context.Context, id uuid.UUID) (Run, error) {
	row := l.db.QueryRowContext(ctx,
		"SELECT id, input, pass, fingerprint, warnings, started, duration_ms FROM runs WHERE id = ?",
		id.String())
	r, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, mferrors.NewNotFound("run", id.String())
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (Run, error) {
	var (
		r                Run
		id, started      string
		durationMillisec int64
	)
	if err := s.Scan(&id, &r.Input, &r.Pass, &r.Fingerprint, &r.Warnings, &started, &durationMillisec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, mferrors.Wrap(err, "reading run")
	}
	var err error
	if r.ID, err = uuid.Parse(id); err != nil {
		return Run{}, mferrors.Wrapf(err, "run id %q", id)
	}
	if r.Started, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return Run{}, mferrors.Wrapf(err, "start time of run %s", id)
	}
	r.Duration = time.Duration(durationMillisec) * time.Millisecond
	return r, nil
}
