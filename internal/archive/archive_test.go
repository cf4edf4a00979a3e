package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

const score = `<score-partwise version="4.0"><part-list/></score-partwise>`

func readAll(t *testing.T, p string) string {
	t.Helper()
	r, err := Open(p)
	if err != nil {
		t.Fatalf("Open(%s) error = %v", p, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return string(data)
}

func TestWriteFileRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		compressed bool
	}{
		{"plain", "out.brl", false},
		{"xz", "out.brl.xz", true},
		{"gzip", "out.ly.gz", true},
		{"nested directory", "sub/dir/out.ly", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), tt.file)
			if err := WriteFile(p, []byte(score)); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			raw, err := os.ReadFile(p)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if got := string(raw) != score; got != tt.compressed {
				t.Errorf("compressed = %v, want %v", got, tt.compressed)
			}
			if got := readAll(t, p); got != score {
				t.Errorf("Open() read %q, want %q", got, score)
			}
		})
	}
}

func TestOpenXzWrittenElsewhere(t *testing.T) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter() error = %v", err)
	}
	io.WriteString(w, score)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	p := filepath.Join(t.TempDir(), "score.musicxml.xz")
	if err := os.WriteFile(p, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	if got := readAll(t, p); got != score {
		t.Errorf("Open() read %q, want %q", got, score)
	}
}

func writeMXL(t *testing.T, entries map[string]string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "score.mxl")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		io.WriteString(w, content)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()
	return p
}

func TestOpenMXL(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
		wantErr bool
	}{
		{
			name: "container",
			entries: map[string]string{
				"META-INF/container.xml": `<container><rootfiles><rootfile full-path="music/song.musicxml"/></rootfiles></container>`,
				"music/song.musicxml":    score,
				"other.xml":              "<other/>",
			},
		},
		{
			name:    "no container",
			entries: map[string]string{"song.musicxml": score},
		},
		{
			name:    "no score",
			entries: map[string]string{"README": "nothing"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeMXL(t, tt.entries)
			r, err := Open(p)
			if tt.wantErr {
				if err == nil {
					r.Close()
					t.Fatal("Open() error = nil, want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer r.Close()
			data, _ := io.ReadAll(r)
			if string(data) != score {
				t.Errorf("Open() read %q, want %q", data, score)
			}
		})
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.xz")
	os.WriteFile(bad, []byte("not xz"), 0644)

	for _, p := range []string{filepath.Join(dir, "missing.musicxml"), bad} {
		if r, err := Open(p); err == nil {
			r.Close()
			t.Errorf("Open(%s) error = nil, want an error", p)
		}
	}
}
