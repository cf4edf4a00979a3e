package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacques-menu/musicformats-sub010/core/cas"
	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/internal/archive"
	"github.com/jacques-menu/musicformats-sub010/internal/validation"
)

var song = filepath.Join("..", "..", "core", "musicxml", "testdata", "song.musicxml")

// captureStdout runs fn with the package output going to a buffer and the
// global flags reset.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	ledgerDB, store := CLI.LedgerDB, CLI.Store
	t.Cleanup(func() {
		stdout = orig
		CLI.LedgerDB, CLI.Store = ledgerDB, store
	})
	err := fn()
	return buf.String(), err
}

func input(file string) InputFlags {
	return InputFlags{File: file, Order: "clef-key-time"}
}

func TestXml2ly(t *testing.T) {
	cmd := &Xml2lyCmd{InputFlags: input(song), LyVersion: "2.24.0"}
	out, err := captureStdout(t, cmd.Run)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, want := range []string{`\version "2.24.0"`, `title = "Little Song"`, `\repeat volta 2`, `\alternative`, `\tuplet 3/2`, `\lyricmode`} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestXml2brlToCompressedFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "song.brl.xz")
	cmd := &Xml2brlCmd{InputFlags: input(song), Output: p, CellsPerLine: 30, LinesPerPage: 27}
	out, err := captureStdout(t, cmd.Run)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want nothing with --output", out)
	}

	r, err := archive.Open(p)
	if err != nil {
		t.Fatalf("archive.Open() error = %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	braille := 0
	for _, c := range string(data) {
		if c >= 0x2800 && c <= 0x28ff {
			braille++
		}
	}
	if braille == 0 {
		t.Errorf("output has no Braille cells: %q", data)
	}
}

func TestXml2xml(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    []string
		wantErr bool
	}{
		{"whole score", "", []string{"P1/1/1: 1 |: 2 [1 3 :| ] [2 4 ] 5", "repeat endings"}, false},
		{"along the voice", "P1/1/1", []string{"P1/1/1:"}, false},
		{"malformed path", "P1/x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &Xml2xmlCmd{InputFlags: input(song), Path: tt.path}
			out, err := captureStdout(t, cmd.Run)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Run() error = nil, want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output lacks %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestLedgerRecordsRuns(t *testing.T) {
	dir := t.TempDir()
	_, err := captureStdout(t, func() error {
		CLI.LedgerDB = filepath.Join(dir, "runs.db")
		CLI.Store = filepath.Join(dir, "store")
		for range 2 {
			if err := (&Xml2lyCmd{InputFlags: input(song), LyVersion: "2.24.0"}).Run(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out, err := captureStdout(t, func() error {
		CLI.LedgerDB = filepath.Join(dir, "runs.db")
		return (&LedgerListCmd{Limit: 10}).Run()
	})
	if err != nil {
		t.Fatalf("ledger list error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("ledger list printed %d lines, want 2:\n%s", len(lines), out)
	}
	fields0, fields1 := strings.Fields(lines[0]), strings.Fields(lines[1])
	if fields0[2] != "msr2lpsr" || fields0[3] != fields1[3] {
		t.Errorf("runs = %q and %q, want two msr2lpsr runs with the same fingerprint", lines[0], lines[1])
	}
}

func TestLedgerListWithoutLedger(t *testing.T) {
	_, err := captureStdout(t, func() error {
		CLI.LedgerDB = ""
		return (&LedgerListCmd{}).Run()
	})
	if err == nil {
		t.Error("Run() error = nil, want an error without a ledger")
	}
}

func TestMissingInput(t *testing.T) {
	_, err := captureStdout(t, (&Xml2lyCmd{InputFlags: input("does-not-exist.musicxml")}).Run)
	if err == nil {
		t.Error("Run() error = nil, want an error for a missing file")
	}
}

func TestOutputIsDirectory(t *testing.T) {
	cmd := &Xml2brlCmd{InputFlags: input(song), Output: t.TempDir(), CellsPerLine: 30, LinesPerPage: 27}
	_, err := captureStdout(t, cmd.Run)
	if !errors.Is(err, validation.ErrFileType) {
		t.Errorf("Run() error = %v, want %v", err, validation.ErrFileType)
	}
}

func TestVersion(t *testing.T) {
	out, err := captureStdout(t, (&VersionCmd{}).Run)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "musicformats version "+version) {
		t.Errorf("output = %q, want the version", out)
	}
}

func TestLedgerListMarksStoredOutputs(t *testing.T) {
	dir := t.TempDir()
	ledgerDB := filepath.Join(dir, "runs.db")
	_, err := captureStdout(t, func() error {
		CLI.LedgerDB = ledgerDB
		CLI.Store = ""
		if err := (&Xml2lyCmd{InputFlags: input(song), LyVersion: "2.24.0"}).Run(); err != nil {
			return err
		}
		CLI.Store = filepath.Join(dir, "store")
		return (&Xml2brlCmd{InputFlags: input(song), CellsPerLine: 30, LinesPerPage: 27}).Run()
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	tests := []struct {
		name       string
		store      string
		wantStored map[string]bool
	}{
		{"with store", filepath.Join(dir, "store"), map[string]bool{"msr2bsr": true, "msr2lpsr": false}},
		{"without store", "", map[string]bool{"msr2bsr": false, "msr2lpsr": false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := captureStdout(t, func() error {
				CLI.LedgerDB, CLI.Store = ledgerDB, tt.store
				return (&LedgerListCmd{}).Run()
			})
			if err != nil {
				t.Fatalf("ledger list error = %v", err)
			}
			for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
				fields := strings.Fields(line)
				pass := fields[2]
				if got := fields[len(fields)-1] == "stored"; got != tt.wantStored[pass] {
					t.Errorf("%s run stored = %v, want %v: %q", pass, got, tt.wantStored[pass], line)
				}
			}
		})
	}
}

func TestLedgerListLeavesNoLedgerBehind(t *testing.T) {
	ledgerDB := filepath.Join(t.TempDir(), "runs.db")
	_, err := captureStdout(t, func() error {
		CLI.LedgerDB = ledgerDB
		return (&LedgerListCmd{}).Run()
	})
	if !errors.Is(err, mferrors.ErrNotFound) {
		t.Errorf("Run() error = %v, want %v", err, mferrors.ErrNotFound)
	}
	if _, err := os.Stat(ledgerDB); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Stat(ledger) error = %v, want the ledger not to be created", err)
	}
}

func TestLedgerShow(t *testing.T) {
	dir := t.TempDir()
	ledgerDB, store := filepath.Join(dir, "runs.db"), filepath.Join(dir, "store")
	ly, err := captureStdout(t, func() error {
		CLI.LedgerDB, CLI.Store = ledgerDB, store
		return (&Xml2lyCmd{InputFlags: input(song), LyVersion: "2.24.0"}).Run()
	})
	if err != nil {
		t.Fatalf("xml2ly error = %v", err)
	}
	list, err := captureStdout(t, func() error {
		CLI.LedgerDB, CLI.Store = ledgerDB, store
		return (&LedgerListCmd{}).Run()
	})
	if err != nil {
		t.Fatalf("ledger list error = %v", err)
	}
	id := strings.Fields(list)[0]

	tests := []struct {
		name    string
		id      string
		store   string
		want    string
		wantErr error
	}{
		{"recorded run", id, store, ly, nil},
		{"unknown run", "6f1c2a52-8f7e-4d0b-9a51-3c1e0b7d2f44", store, "", mferrors.ErrNotFound},
		{"malformed id", "run-1", store, "", mferrors.ErrInvalidInput},
		{"empty store", id, filepath.Join(dir, "other"), "", cas.ErrOutputNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := captureStdout(t, func() error {
				CLI.LedgerDB, CLI.Store = ledgerDB, tt.store
				return (&LedgerShowCmd{ID: tt.id}).Run()
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("Run() printed %d bytes, want the %d bytes of the xml2ly run", len(out), len(tt.want))
			}
		})
	}
}

func TestXml2xmlDumpDepth(t *testing.T) {
	dump := func(depth int) string {
		out, err := captureStdout(t, (&Xml2xmlCmd{InputFlags: input(song), Dump: true, DumpDepth: depth}).Run)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return out
	}
	full, shallow := dump(0), dump(2)
	if !strings.Contains(shallow, "max depth reached") {
		t.Errorf("dump at depth 2 lacks the depth marker:\n%s", shallow)
	}
	if len(shallow) >= len(full) {
		t.Errorf("len(dump at depth 2) = %d, want less than the default %d", len(shallow), len(full))
	}
}
