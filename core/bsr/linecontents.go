package bsr

import (
	"fmt"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// LineContentsKind tells whether contents start a line or continue it
// after an overflow.
type LineContentsKind int

const (
	LineContentsRegular LineContentsKind = iota
	LineContentsContinuation
)

func (k LineContentsKind) String() string {
	if k == LineContentsContinuation {
		return "continuation"
	}
	return "regular"
}

// continuationIndent is the number of blank cells a continuation row starts
// with.
const continuationIndent = 2

// LineContents is one physical row of a line.
type LineContents struct {
	element
	kind     LineContentsKind
	upLink   *Line
	elements []LineContentsElement
}

// NewLineContents returns empty contents of kind.
func NewLineContents(line int, kind LineContentsKind) *LineContents {
	Initialize()
	lc := &LineContents{kind: kind}
	lc.line = line
	return lc
}

// NewbornClone returns empty contents of the same kind, without up-link.
func (lc *LineContents) NewbornClone() *LineContents {
	return NewLineContents(lc.line, lc.kind)
}

// Kind returns the contents kind.
func (lc *LineContents) Kind() LineContentsKind { return lc.kind }

// Line returns the line holding lc. It does not own it.
func (lc *LineContents) Line() *Line { return lc.upLink }

// Elements returns the elements in reading order.
func (lc *LineContents) Elements() []LineContentsElement { return lc.elements }

// AppendElement appends e.
func (lc *LineContents) AppendElement(e LineContentsElement) {
	lc.elements = append(lc.elements, e)
}

// InsertBeforeLastElement inserts e just before the current last element.
func (lc *LineContents) InsertBeforeLastElement(e LineContentsElement) error {
	n := len(lc.elements)
	if n == 0 {
		return mferrors.NewInternal("", e.InputLineNumber(),
			"line contents elements list is empty, cannot insert '%s' before its last element", e)
	}
	lc.elements = append(lc.elements, nil)
	copy(lc.elements[n:], lc.elements[n-1:n])
	lc.elements[n-1] = e
	return nil
}

// LastMeasure returns the last measure of lc, or nil.
func (lc *LineContents) LastMeasure() *Measure {
	for i := len(lc.elements) - 1; i >= 0; i-- {
		if m, ok := lc.elements[i].(*Measure); ok {
			return m
		}
	}
	return nil
}

// popLast removes the last element, then any spaces left trailing.
func (lc *LineContents) popLast() LineContentsElement {
	n := len(lc.elements)
	if n == 0 {
		return nil
	}
	last := lc.elements[n-1]
	lc.elements = lc.elements[:n-1]
	for len(lc.elements) > 0 {
		if _, ok := lc.elements[len(lc.elements)-1].(*Spaces); !ok {
			break
		}
		lc.elements = lc.elements[:len(lc.elements)-1]
	}
	return last
}

// CellsList concatenates the cells of the elements. Continuation rows are
// indented.
func (lc *LineContents) CellsList() *CellsList {
	result := NewCellsList(lc.line)
	if lc.kind == LineContentsContinuation {
		for i := 0; i < continuationIndent; i++ {
			result.AppendCellKind(CellBlank)
		}
	}
	for _, e := range lc.elements {
		result.AppendCellsList(e.CellsList())
	}
	return result
}

// CellsNumber returns the width of the row in cells.
func (lc *LineContents) CellsNumber() int {
	n := 0
	if lc.kind == LineContentsContinuation {
		n = continuationIndent
	}
	for _, e := range lc.elements {
		n += e.CellsNumber()
	}
	return n
}

func (lc *LineContents) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, lc.elements)
}

func (lc *LineContents) ShortString() string {
	return fmt.Sprintf("LineContents [%s, %d elements, line %d]", lc.kind, len(lc.elements), lc.line)
}

func (lc *LineContents) String() string {
	return fmt.Sprintf("LineContents [%s, %s, line %d]", lc.kind, lc.CellsList(), lc.line)
}
