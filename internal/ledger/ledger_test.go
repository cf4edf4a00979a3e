package ledger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
)

func openLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	l := openLedger(t)
	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	runs := []Run{
		{Input: "song.musicxml", Pass: "msr2bsr", Fingerprint: "aa", Warnings: 1, Started: base, Duration: 120 * time.Millisecond},
		{Input: "song.musicxml", Pass: "msr2lpsr", Fingerprint: "bb", Started: base.Add(time.Minute)},
		{Input: "song.musicxml", Pass: "msr2bsr", Fingerprint: "aa", Started: base.Add(2 * time.Minute)},
	}
	var ids []uuid.UUID
	for _, r := range runs {
		got, err := l.Record(ctx, r)
		if err != nil {
			t.Fatalf("Record() error = %v", err)
		}
		if got.ID == uuid.Nil {
			t.Error("Record() left the run ID nil")
		}
		ids = append(ids, got.ID)
	}

	listed, err := l.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(listed))
	}
	if listed[0].ID != ids[2] || listed[2].ID != ids[0] {
		t.Errorf("List() order = %v, want most recent first", listed)
	}
	first := listed[2]
	if first.Warnings != 1 || first.Duration != 120*time.Millisecond || !first.Started.Equal(base) {
		t.Errorf("first run = %+v, want 1 warning, 120ms, started %v", first, base)
	}

	limited, err := l.List(ctx, 2)
	if err != nil {
		t.Fatalf("List(2) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(List(2)) = %d, want 2", len(limited))
	}
}

func TestLast(t *testing.T) {
	ctx := context.Background()
	l := openLedger(t)
	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	for i, fp := range []string{"old", "new"} {
		if _, err := l.Record(ctx, Run{Input: "a.xml", Pass: "msr2bsr", Fingerprint: fp, Started: base.Add(time.Duration(i) * time.Hour)}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	tests := []struct {
		name     string
		input    string
		pass     string
		wantFp   string
		notFound bool
	}{
		{"latest wins", "a.xml", "msr2bsr", "new", false},
		{"other pass", "a.xml", "msr2lpsr", "", true},
		{"other input", "b.xml", "msr2bsr", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := l.Last(ctx, tt.input, tt.pass)
			if tt.notFound {
				if !errors.Is(err, mferrors.ErrNotFound) {
					t.Errorf("Last() error = %v, want ErrNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Last() error = %v", err)
			}
			if r.Fingerprint != tt.wantFp {
				t.Errorf("Last().Fingerprint = %q, want %q", r.Fingerprint, tt.wantFp)
			}
		})
	}
}

func TestRecordKeepsGivenID(t *testing.T) {
	l := openLedger(t)
	id := uuid.New()
	r, err := l.Record(context.Background(), Run{ID: id, Input: "x", Pass: "p", Fingerprint: "f"})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if r.ID != id {
		t.Errorf("Record().ID = %v, want %v", r.ID, id)
	}
	if _, err := l.Record(context.Background(), Run{ID: id, Input: "x", Pass: "p", Fingerprint: "f"}); err == nil {
		t.Error("recording the same ID twice: error = nil, want an error")
	}
}

func TestOpenReadOnly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	rw, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	recorded, err := rw.Record(ctx, Run{Input: "song.musicxml", Pass: "msr2bsr", Fingerprint: "aa"})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	rw.Close()

	ro, err := OpenReadOnly(ctx, path)
	if err != nil {
		t.Fatalf("OpenReadOnly() error = %v", err)
	}
	defer ro.Close()

	runs, err := ro.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 1 || runs[0].ID != recorded.ID {
		t.Errorf("List() = %v, want the recorded run %v", runs, recorded.ID)
	}
	if _, err := ro.Record(ctx, Run{Input: "song.musicxml", Pass: "msr2lpsr", Fingerprint: "bb"}); err == nil {
		t.Error("Record() on a read-only ledger error = nil, want an error")
	}
	if runs, _ := ro.List(ctx, 0); len(runs) != 1 {
		t.Errorf("len(List()) after refused write = %d, want 1", len(runs))
	}
}

func TestOpenReadOnlyErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	if _, err := OpenReadOnly(ctx, filepath.Join(dir, "missing.db")); !errors.Is(err, mferrors.ErrNotFound) {
		t.Errorf("OpenReadOnly(missing) error = %v, want ErrNotFound", err)
	}

	empty := filepath.Join(dir, "empty.db")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if l, err := OpenReadOnly(ctx, empty); err == nil {
		l.Close()
		t.Error("OpenReadOnly(database without runs table) error = nil, want an error")
	}
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	l := openLedger(t)
	r, err := l.Record(ctx, Run{Input: "song.musicxml", Pass: "msr2bsr", Fingerprint: "aa", Warnings: 2})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	tests := []struct {
		name     string
		id       uuid.UUID
		notFound bool
	}{
		{"recorded", r.ID, false},
		{"unknown", uuid.New(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Find(ctx, tt.id)
			if tt.notFound {
				if !errors.Is(err, mferrors.ErrNotFound) {
					t.Errorf("Find() error = %v, want ErrNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Find() error = %v", err)
			}
			if got.Fingerprint != "aa" || got.Warnings != 2 {
				t.Errorf("Find() = %+v, want fingerprint aa with 2 warnings", got)
			}
		})
	}
}
