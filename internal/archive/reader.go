// Package archive opens score files that may be compressed and creates
// output files compressed according to their name.
//
// Inputs ending in .xz or .gz are decompressed on the fly, and .mxl files
// are read as compressed MusicXML: a zip whose META-INF/container.xml
// names the root score. Outputs ending in .xz or .gz are compressed.
package archive

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/ulikunitz/xz"
)

var exprRootFile = xpath.MustCompile("//rootfile[@full-path]")

// readCloser reads from a decompressor and closes everything underneath.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens the file at p for reading, decompressing it according to its
// suffix.
func Open(p string) (io.ReadCloser, error) {
	if strings.HasSuffix(p, ".mxl") {
		return openMXL(p)
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	switch {
	case strings.HasSuffix(p, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		// the xz reader has nothing to close
		return &readCloser{Reader: xzr, closers: []io.Closer{f}}, nil
	case strings.HasSuffix(p, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return &readCloser{Reader: gzr, closers: []io.Closer{gzr, f}}, nil
	default:
		return f, nil
	}
}

// openMXL opens the root score of a compressed MusicXML file.
func openMXL(p string) (io.ReadCloser, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open mxl: %w", err)
	}

	name, err := rootFile(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	rc, err := zr.Open(name)
	if err != nil {
		zr.Close()
		return nil, fmt.Errorf("open mxl root %s: %w", name, err)
	}
	return &readCloser{Reader: rc, closers: []io.Closer{rc, zr}}, nil
}

// rootFile returns the score named by META-INF/container.xml, or else the
// first .musicxml or .xml file outside META-INF.
func rootFile(zr *zip.Reader) (string, error) {
	if data, err := readEntry(zr, "META-INF/container.xml"); err == nil {
		doc, err := xmlquery.Parse(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("parse mxl container: %w", err)
		}
		if n := xmlquery.QuerySelector(doc, exprRootFile); n != nil {
			return path.Clean(n.SelectAttr("full-path")), nil
		}
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "META-INF/") {
			continue
		}
		if strings.HasSuffix(f.Name, ".musicxml") || strings.HasSuffix(f.Name, ".xml") {
			return f.Name, nil
		}
	}
	return "", fmt.Errorf("mxl file has no root score")
}

func readEntry(zr *zip.Reader, name string) ([]byte, error) {
	rc, err := zr.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
