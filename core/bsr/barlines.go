package bsr

import "fmt"

// BarLineKind is a Braille bar line sign.
type BarLineKind int

const (
	BarLineNone BarLineKind = iota
	BarLineSpecial
	BarLineUnusual
	BarLineFinalDouble
	BarLineSectionalDouble
)

func (k BarLineKind) String() string {
	switch k {
	case BarLineNone:
		return "none"
	case BarLineSpecial:
		return "special"
	case BarLineUnusual:
		return "unusual"
	case BarLineFinalDouble:
		return "finalDouble"
	case BarLineSectionalDouble:
		return "sectionalDouble"
	default:
		return fmt.Sprintf("BarLineKind(%d)", int(k))
	}
}

// BarLine is a bar line sign placed in a measure.
type BarLine struct {
	leaf
	kind BarLineKind
}

// NewBarLine returns a bar line with its cells built.
func NewBarLine(line int, kind BarLineKind) *BarLine {
	Initialize()
	b := &BarLine{kind: kind}
	b.line = line
	b.cells = b.buildCellsList()
	return b
}

// Kind returns the bar line kind.
func (b *BarLine) Kind() BarLineKind { return b.kind }

func (b *BarLine) buildCellsList() *CellsList {
	return NewCellsList(b.line, barLineCells[b.kind]...)
}

func (b *BarLine) String() string {
	return fmt.Sprintf("BarLine [%s, %s, line %d]", b.kind, b.cells, b.line)
}
