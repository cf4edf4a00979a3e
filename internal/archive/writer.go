package archive

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// writeCloser closes its compressor before the file.
type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Create creates the file at p, and its parent directories, for writing.
// Output to a name ending in .xz or .gz is compressed. The caller must
// Close the writer for the compressed stream to be complete.
func Create(p string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent directory: %w", err)
	}
	f, err := os.Create(p)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	switch {
	case strings.HasSuffix(p, ".xz"):
		xzw, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz writer: %w", err)
		}
		return &writeCloser{Writer: xzw, closers: []io.Closer{xzw, f}}, nil
	case strings.HasSuffix(p, ".gz"):
		gzw := gzip.NewWriter(f)
		return &writeCloser{Writer: gzw, closers: []io.Closer{gzw, f}}, nil
	default:
		return f, nil
	}
}

// WriteFile writes data to p through Create.
func WriteFile(p string, data []byte) error {
	w, err := Create(p)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return w.Close()
}
