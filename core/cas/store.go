// Package cas fingerprints translation outputs and keeps them in a
// content-addressed store, so that identical outputs are stored once and
// a ledger entry can point at the exact bytes a run produced.
package cas

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// osRename is a variable to allow testing of rename errors.
var osRename = os.Rename

// tempFileWrite is a function variable for writing to temp files (for testing).
var tempFileWrite = func(f *os.File, data []byte) (int, error) {
	return f.Write(data)
}

// tempFileClose is a function variable for closing temp files (for testing).
var tempFileClose = func(f io.Closer) error {
	return f.Close()
}

// ErrOutputNotFound is returned when no output has the given fingerprint.
var ErrOutputNotFound = errors.New("output not found")

// ErrInvalidFingerprint is returned when a string is not a fingerprint.
var ErrInvalidFingerprint = errors.New("invalid fingerprint format")

// Store keeps translation outputs by fingerprint under a root directory.
type Store struct {
	root string
}

// NewStore creates a store at root, creating its directories if needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, "outputs"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Store{root: root}, nil
}

// Root returns the directory of the store.
func (s *Store) Root() string { return s.root }

// Put stores data and returns its fingerprint. Storing the same bytes
// twice is a no-op.
func (s *Store) Put(data []byte) (string, error) {
	fp := Fingerprint(data)

	path := s.pathFor(fp)
	if _, err := os.Stat(path); err == nil {
		return fp, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create prefix directory: %w", err)
	}

	// Write atomically
	tempFile, err := os.CreateTemp(dir, ".output-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFileWrite(tempFile, data); err != nil {
		tempFileClose(tempFile)
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to write output: %w", err)
	}
	if err := tempFileClose(tempFile); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := osRename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to rename output: %w", err)
	}
	return fp, nil
}

// Get returns the output with fingerprint fp.
func (s *Store) Get(fp string) ([]byte, error) {
	if !IsFingerprint(fp) {
		return nil, ErrInvalidFingerprint
	}
	data, err := os.ReadFile(s.pathFor(fp))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrOutputNotFound
		}
		return nil, fmt.Errorf("failed to read output: %w", err)
	}
	return data, nil
}

// Exists reports whether an output with fingerprint fp is stored.
func (s *Store) Exists(fp string) bool {
	if !IsFingerprint(fp) {
		return false
	}
	_, err := os.Stat(s.pathFor(fp))
	return err == nil
}

// pathFor returns <root>/outputs/<first2>/<fp>.
func (s *Store) pathFor(fp string) string {
	return filepath.Join(s.root, "outputs", fp[:2], fp)
}
