package bsr

import (
	"bufio"
	"io"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// unicodeWriter writes one row of Braille Patterns characters per physical
// row, with a form feed between pages.
type unicodeWriter struct {
	w     *bufio.Writer
	pages int
	line  *Line
}

func (u *unicodeWriter) row(cells *CellsList) error {
	if _, err := u.w.WriteString(cells.Unicode()); err != nil {
		return err
	}
	return u.w.WriteByte('\n')
}

func (u *unicodeWriter) VisitTranscriptionNoteStart(n *TranscriptionNote) error {
	return u.row(n.CellsList())
}

func (u *unicodeWriter) VisitPageStart(*Page) error {
	u.pages++
	if u.pages > 1 {
		return u.w.WriteByte('\f')
	}
	return nil
}

func (u *unicodeWriter) VisitPageHeadingStart(h *PageHeading) error {
	return u.row(h.CellsList())
}

func (u *unicodeWriter) VisitMusicHeadingStart(h *MusicHeading) error {
	cells := h.CellsList()
	if cells.CellsNumber() == 0 {
		return nil
	}
	return u.row(cells)
}

func (u *unicodeWriter) VisitLineStart(l *Line) error {
	u.line = l
	return nil
}

func (u *unicodeWriter) VisitLineContentsStart(lc *LineContents) error {
	cells := lc.CellsList()
	if lc.Kind() == LineContentsRegular && u.line != nil && u.line.Numbered() {
		cells.AppendCellKind(CellBlank)
		cells.AppendCellsList(u.line.LineNumberCellsList())
	}
	return u.row(cells)
}

// WriteUnicode writes s as Unicode Braille text.
func (s *Score) WriteUnicode(w io.Writer) error {
	u := &unicodeWriter{w: bufio.NewWriter(w)}
	if err := visit.NewBrowser(u).Browse(s); err != nil {
		return err
	}
	return u.w.Flush()
}

// Unicode returns s as Unicode Braille text.
func (s *Score) Unicode() string {
	var b strings.Builder
	// writing to a strings.Builder does not fail
	_ = s.WriteUnicode(&b)
	return b.String()
}
