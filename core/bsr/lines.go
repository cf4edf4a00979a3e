package bsr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// Line is a logical Braille line. It starts with regular contents and
// grows continuation contents when it overflows.
type Line struct {
	element
	printLineNumber   int
	brailleLineNumber int
	cellsPerLine      int
	numbered          bool
	contents          []*LineContents

	// set after keys, times, tempos and measures, so that the next element
	// is preceded by a blank cell
	aSpaceIsNeeded bool
}

// NewLine returns an empty line. The braille line number starts out equal
// to the print line number.
func NewLine(line, printLineNumber, cellsPerLine int) *Line {
	Initialize()
	l := &Line{
		printLineNumber:   printLineNumber,
		brailleLineNumber: printLineNumber,
		cellsPerLine:      cellsPerLine,
		aSpaceIsNeeded:    true,
	}
	l.line = line
	return l
}

// NewbornClone returns an empty line with the same numbers and width.
func (l *Line) NewbornClone() *Line {
	clone := NewLine(l.line, l.printLineNumber, l.cellsPerLine)
	clone.brailleLineNumber = l.brailleLineNumber
	clone.numbered = l.numbered
	return clone
}

func (l *Line) PrintLineNumber() int   { return l.printLineNumber }
func (l *Line) BrailleLineNumber() int { return l.brailleLineNumber }
func (l *Line) CellsPerLine() int      { return l.cellsPerLine }
func (l *Line) Numbered() bool         { return l.numbered }

// SetBrailleLineNumber overrides the number shown in Braille.
func (l *Line) SetBrailleLineNumber(n int) { l.brailleLineNumber = n }

// SetNumbered makes the line number part of the regular row.
func (l *Line) SetNumbered(numbered bool) { l.numbered = numbered }

// Contents returns the rows of the line.
func (l *Line) Contents() []*LineContents { return l.contents }

// LineNumberCellsList returns the print line number, followed by the
// braille line number when they differ.
func (l *Line) LineNumberCellsList() *CellsList {
	result := NewCellsList(l.line)
	result.AppendCellsList(NewNumber(l.line, l.printLineNumber, true).CellsList())
	if l.brailleLineNumber != l.printLineNumber {
		result.AppendCellsList(NewNumber(l.line, l.brailleLineNumber, true).CellsList())
	}
	return result
}

// lastContents returns the row to append to, creating the regular one on
// first use.
func (l *Line) lastContents(line int) *LineContents {
	if len(l.contents) == 0 {
		lc := NewLineContents(line, LineContentsRegular)
		lc.upLink = l
		l.contents = append(l.contents, lc)
	}
	return l.contents[len(l.contents)-1]
}

func (l *Line) appendElement(e LineContentsElement) {
	lc := l.lastContents(e.InputLineNumber())
	if l.aSpaceIsNeeded {
		lc.AppendElement(NewSpaces(l.line, 1))
		l.aSpaceIsNeeded = false
	}
	lc.AppendElement(e)
}

// AppendSpaces appends s.
func (l *Line) AppendSpaces(s *Spaces) {
	l.appendElement(s)
}

// AppendKey appends k.
func (l *Line) AppendKey(k *Key) {
	l.appendElement(k)
	l.aSpaceIsNeeded = true
}

// AppendTimeSignature appends ts.
func (l *Line) AppendTimeSignature(ts *TimeSignature) {
	l.appendElement(ts)
	l.aSpaceIsNeeded = true
}

// InsertTimeBeforeLastElement places ts before the last element of the
// line, typically the measure it applies to. It fails on an empty line.
func (l *Line) InsertTimeBeforeLastElement(ts *TimeSignature) error {
	if err := l.lastContents(ts.InputLineNumber()).InsertBeforeLastElement(ts); err != nil {
		return err
	}
	l.aSpaceIsNeeded = true
	return nil
}

// AppendTempo appends t.
func (l *Line) AppendTempo(t *Tempo) {
	l.appendElement(t)
	l.aSpaceIsNeeded = true
}

// AppendMeasure appends m. Elements can still be added to m afterwards.
func (l *Line) AppendMeasure(m *Measure) {
	l.appendElement(m)
	l.aSpaceIsNeeded = true
}

// AppendNote appends n to the last measure of the line, or to the line
// itself when it has no measure yet.
func (l *Line) AppendNote(n *Note) {
	if m := l.LastMeasure(); m != nil {
		m.AppendNote(n)
		return
	}
	l.appendElement(n)
}

// LastMeasure returns the last measure of the line, or nil.
func (l *Line) LastMeasure() *Measure {
	for i := len(l.contents) - 1; i >= 0; i-- {
		if m := l.contents[i].LastMeasure(); m != nil {
			return m
		}
	}
	return nil
}

// availableCells is the width left for music on the last row.
func (l *Line) availableCells() int {
	width := l.cellsPerLine
	if l.numbered && len(l.contents) == 1 {
		width -= l.LineNumberCellsList().CellsNumber() + 1
	}
	return width
}

// FitLastElement moves the last element to a new continuation row when
// it makes the current row wider than the line. An element alone on its
// row is left in place. It reports whether a row was added.
func (l *Line) FitLastElement() bool {
	if len(l.contents) == 0 || l.cellsPerLine <= 0 {
		return false
	}
	last := l.contents[len(l.contents)-1]
	if last.CellsNumber() <= l.availableCells() || len(last.elements) < 2 {
		return false
	}
	if _, ok := last.elements[0].(*Spaces); ok && len(last.elements) == 2 {
		return false
	}

	e := last.popLast()
	cont := NewLineContents(e.InputLineNumber(), LineContentsContinuation)
	cont.upLink = l
	cont.AppendElement(e)
	l.contents = append(l.contents, cont)
	return true
}

// RowsNumber is the number of physical rows the line takes.
func (l *Line) RowsNumber() int {
	return len(l.contents)
}

// CellsList concatenates the cells of all rows.
func (l *Line) CellsList() *CellsList {
	result := NewCellsList(l.line)
	for _, lc := range l.contents {
		result.AppendCellsList(lc.CellsList())
	}
	return result
}

// CellsNumber returns the number of cells of all rows.
func (l *Line) CellsNumber() int {
	n := 0
	for _, lc := range l.contents {
		n += lc.CellsNumber()
	}
	return n
}

func (l *Line) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, l.contents)
}

func (l *Line) ShortString() string {
	return fmt.Sprintf("Line [print %d, braille %d, %d rows, line %d]",
		l.printLineNumber, l.brailleLineNumber, len(l.contents), l.line)
}

func (l *Line) String() string {
	return fmt.Sprintf("Line [print %d, braille %d, cellsPerLine %d, %s, line %d]",
		l.printLineNumber, l.brailleLineNumber, l.cellsPerLine, l.CellsList(), l.line)
}
