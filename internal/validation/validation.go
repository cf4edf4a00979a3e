// Package validation checks the paths and files handed to the musicformats
// commands before they are read or written.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits on what the commands accept.
const (
	// MaxFileSize is the largest input file accepted (64 MB).
	MaxFileSize = 64 << 20
	// MaxPathLength is the longest path accepted.
	MaxPathLength = 4096
)

var (
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrFileTooLarge     = errors.New("file too large")
	ErrFileType         = errors.New("unexpected file type")
)

// ValidatePath checks a path for length limits and control characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// ValidateOutput checks an output path. It must not name a directory, and
// its parent must not be a regular file.
func ValidateOutput(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrFileType, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err == nil && !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrFileType, filepath.Dir(path))
	}
	return nil
}

// FileType is the kind of input file, as found from its first bytes.
type FileType string

const (
	FileTypeXML     FileType = "xml"
	FileTypeMXL     FileType = "mxl"
	FileTypeXZ      FileType = "xz"
	FileTypeGzip    FileType = "gzip"
	FileTypeUnknown FileType = "unknown"
)

var magicBytes = []struct {
	fileType FileType
	magic    []byte
}{
	{FileTypeGzip, []byte{0x1f, 0x8b}},
	{FileTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{FileTypeMXL, []byte{0x50, 0x4b, 0x03, 0x04}},
}

// ValidateInput checks an input path and the file behind it: it must be a
// regular file no larger than MaxFileSize whose content matches its
// extension.
func ValidateInput(path string) (FileType, error) {
	if err := ValidatePath(path); err != nil {
		return FileTypeUnknown, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return FileTypeUnknown, err
	}
	if !info.Mode().IsRegular() {
		return FileTypeUnknown, fmt.Errorf("%w: %s is not a regular file", ErrFileType, path)
	}
	if info.Size() > MaxFileSize {
		return FileTypeUnknown, fmt.Errorf("%w: %s has %d bytes, limit is %d", ErrFileTooLarge, path, info.Size(), MaxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return FileTypeUnknown, err
	}
	defer f.Close()
	return ValidateFileType(f, path)
}

// ValidateFileType reads the first bytes of r and checks that they match
// the extension of filename.
func ValidateFileType(r io.Reader, filename string) (FileType, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FileTypeUnknown, fmt.Errorf("failed to read file header: %w", err)
	}
	buf = buf[:n]

	detected := detectFileTypeFromMagic(buf)
	expected := detectFileTypeFromExtension(filename)

	switch {
	case detected == FileTypeUnknown && expected == FileTypeXML:
		if !isLikelyText(buf) {
			return FileTypeUnknown, fmt.Errorf("%w: %s does not look like XML", ErrFileType, filename)
		}
		return FileTypeXML, nil
	case expected == FileTypeUnknown && detected == FileTypeUnknown:
		// no extension: plain text is taken as MusicXML
		if !isLikelyText(buf) {
			return FileTypeUnknown, fmt.Errorf("%w: %s is neither text nor a known archive", ErrFileType, filename)
		}
		return FileTypeXML, nil
	case expected == FileTypeUnknown, detected == expected:
		return detected, nil
	default:
		return FileTypeUnknown, fmt.Errorf("%w: extension suggests %s but content is %s", ErrFileType, expected, detected)
	}
}

func detectFileTypeFromMagic(buf []byte) FileType {
	for _, sig := range magicBytes {
		if bytes.HasPrefix(buf, sig.magic) {
			return sig.fileType
		}
	}
	return FileTypeUnknown
}

func detectFileTypeFromExtension(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xz":
		return FileTypeXZ
	case ".gz":
		return FileTypeGzip
	case ".mxl":
		return FileTypeMXL
	case ".xml", ".musicxml":
		return FileTypeXML
	default:
		return FileTypeUnknown
	}
}

// isLikelyText reports whether more than 95% of buf is printable ASCII or
// white space, with no null byte.
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	if bytes.IndexByte(buf, 0) != -1 {
		return false
	}

	printable, control := 0, 0
	for _, b := range buf {
		if b >= 0x20 && b <= 0x7e || b == '\t' || b == '\n' || b == '\r' {
			printable++
		} else if b < 0x20 {
			control++
		}
	}
	return printable > 0 && float64(printable)/float64(printable+control) > 0.95
}
