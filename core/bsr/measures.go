package bsr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// Measure groups the elements of one measure. Its cells are those of its
// elements, in order.
type Measure struct {
	element
	printNumber   string
	brailleNumber string
	elements      []LineContentsElement
}

// NewMeasure returns an empty measure. The braille number starts out equal
// to the print number.
func NewMeasure(line int, printNumber string) *Measure {
	Initialize()
	m := &Measure{printNumber: printNumber, brailleNumber: printNumber}
	m.line = line
	return m
}

// NewbornClone returns an empty measure with the same numbers.
func (m *Measure) NewbornClone() *Measure {
	clone := NewMeasure(m.line, m.printNumber)
	clone.brailleNumber = m.brailleNumber
	return clone
}

func (m *Measure) PrintNumber() string   { return m.printNumber }
func (m *Measure) BrailleNumber() string { return m.brailleNumber }

// SetBrailleNumber overrides the number shown in Braille.
func (m *Measure) SetBrailleNumber(n string) { m.brailleNumber = n }

// Elements returns the measure's elements.
func (m *Measure) Elements() []LineContentsElement { return m.elements }

func (m *Measure) appendElement(e LineContentsElement) {
	m.elements = append(m.elements, e)
}

func (m *Measure) AppendClef(c *Clef)       { m.appendElement(c) }
func (m *Measure) AppendBarLine(b *BarLine) { m.appendElement(b) }
func (m *Measure) AppendNumber(n *Number)   { m.appendElement(n) }
func (m *Measure) AppendWords(w *Words)     { m.appendElement(w) }
func (m *Measure) AppendNote(n *Note)       { m.appendElement(n) }
func (m *Measure) AppendDynamic(d *Dynamic) { m.appendElement(d) }
func (m *Measure) AppendSpaces(s *Spaces)   { m.appendElement(s) }

// CellsList concatenates the cells of the elements. It is rebuilt on each
// call since elements are still appended while the measure is on a line.
func (m *Measure) CellsList() *CellsList {
	result := NewCellsList(m.line)
	for _, e := range m.elements {
		result.AppendCellsList(e.CellsList())
	}
	return result
}

// CellsNumber returns the number of cells of the measure.
func (m *Measure) CellsNumber() int {
	n := 0
	for _, e := range m.elements {
		n += e.CellsNumber()
	}
	return n
}

func (m *Measure) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, m.elements)
}

// ShortString describes the measure without its elements.
func (m *Measure) ShortString() string {
	return fmt.Sprintf("Measure [print %s, braille %s, %d elements, line %d]",
		m.printNumber, m.brailleNumber, len(m.elements), m.line)
}

func (m *Measure) String() string {
	return fmt.Sprintf("Measure [print %s, braille %s, %s, spacesBefore: %d, line %d]",
		m.printNumber, m.brailleNumber, m.CellsList(), m.spacesBefore, m.line)
}
