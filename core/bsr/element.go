package bsr

import (
	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// LineContentsElement is a node that can be placed in a line: it has cells
// and may ask for blank cells before it.
type LineContentsElement interface {
	visit.Element
	CellsList() *CellsList
	CellsNumber() int
	SpacesBefore() int
	String() string
}

// element holds what every BSR node carries.
type element struct {
	line         int
	spacesBefore int
}

func (e *element) InputLineNumber() int { return e.line }

// SpacesBefore is the number of blank cells requested before the node.
func (e *element) SpacesBefore() int { return e.spacesBefore }

// SetSpacesBefore sets the number of blank cells requested before the node.
func (e *element) SetSpacesBefore(n int) { e.spacesBefore = n }

// leaf is a LineContentsElement whose cells are built once at construction.
type leaf struct {
	element
	cells *CellsList
}

// CellsList returns the cached cells. The caller must not modify them.
func (l *leaf) CellsList() *CellsList { return l.cells }

// CellsNumber returns the number of cached cells.
func (l *leaf) CellsNumber() int { return l.cells.CellsNumber() }

// BrowseData is a no-op: leaves have no children.
func (l *leaf) BrowseData(*visit.Browser) error { return nil }
