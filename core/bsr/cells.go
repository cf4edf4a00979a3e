package bsr

import (
	"strconv"
	"strings"
)

// CellKind is a 6-dot Braille cell. Bit n-1 is set when dot n is raised, so
// the values 0 to 63 cover every cell and 0 is the blank cell.
type CellKind uint8

// Raised dots.
const (
	Dot1 CellKind = 1 << iota
	Dot2
	Dot3
	Dot4
	Dot5
	Dot6
)

// dots builds a cell from its dot numbers, e.g. dots(3, 4, 5).
func dots(numbers ...int) CellKind {
	var c CellKind
	for _, n := range numbers {
		c |= 1 << (n - 1)
	}
	return c
}

// Cells referred to by name in the encoders.
var (
	CellBlank = CellKind(0)

	CellWordSign        = dots(3, 4, 5)
	CellNumberSign      = dots(3, 4, 5, 6)
	CellCapitalSign     = dots(6)
	CellUnknown         = dots(1, 2, 3, 4, 5, 6)
	CellAugmentationDot = dots(3)

	CellMusicCodeFirst  = dots(6)
	CellMusicCodeSecond = dots(3)

	CellSharp   = dots(1, 4, 6)
	CellFlat    = dots(1, 2, 6)
	CellNatural = dots(1, 6)

	CellTempoEquals = dots(2, 3, 5, 6)
	CellTempoHyphen = dots(3, 6)

	CellBreveSuffix = dots(1, 3)
)

// Letters a to z.
var letterCells = [26]CellKind{
	dots(1), dots(1, 2), dots(1, 4), dots(1, 4, 5), dots(1, 5),
	dots(1, 2, 4), dots(1, 2, 4, 5), dots(1, 2, 5), dots(2, 4), dots(2, 4, 5),
	dots(1, 3), dots(1, 2, 3), dots(1, 3, 4), dots(1, 3, 4, 5), dots(1, 3, 5),
	dots(1, 2, 3, 4), dots(1, 2, 3, 4, 5), dots(1, 2, 3, 5), dots(2, 3, 4), dots(2, 3, 4, 5),
	dots(1, 3, 6), dots(1, 2, 3, 6), dots(2, 4, 5, 6), dots(1, 3, 4, 6), dots(1, 3, 4, 5, 6),
	dots(1, 3, 5, 6),
}

// Letter returns the cell of a lowercase ASCII letter.
func Letter(r rune) (CellKind, bool) {
	if r < 'a' || r > 'z' {
		return CellBlank, false
	}
	return letterCells[r-'a'], true
}

// mustLetter is for literal tables only.
func mustLetter(r rune) CellKind {
	c, ok := Letter(r)
	if !ok {
		panic("bsr: not a letter: " + string(r))
	}
	return c
}

// Upper digits 0 to 9 are the letters j and a to i.
var upperDigitCells = [10]CellKind{
	dots(2, 4, 5), dots(1), dots(1, 2), dots(1, 4), dots(1, 4, 5),
	dots(1, 5), dots(1, 2, 4), dots(1, 2, 4, 5), dots(1, 2, 5), dots(2, 4),
}

// Lower digits 0 to 9 are the upper ones moved down one row.
var lowerDigitCells = [10]CellKind{
	dots(3, 5, 6), dots(2), dots(2, 3), dots(2, 5), dots(2, 5, 6),
	dots(2, 6), dots(2, 3, 5), dots(2, 3, 5, 6), dots(2, 3, 6), dots(3, 5),
}

// UpperDigit returns the cell of digit d in the upper part of the cell.
func UpperDigit(d int) CellKind { return upperDigitCells[d%10] }

// LowerDigit returns the cell of digit d in the lower part of the cell.
func LowerDigit(d int) CellKind { return lowerDigitCells[d%10] }

var punctuationCells = map[rune]CellKind{
	',':  dots(2),
	';':  dots(2, 3),
	':':  dots(2, 5),
	'.':  dots(2, 5, 6),
	'!':  dots(2, 3, 5),
	'?':  dots(2, 3, 6),
	'\'': dots(3),
	'-':  dots(3, 6),
	'(':  dots(2, 3, 5, 6),
	')':  dots(2, 3, 5, 6),
	'"':  dots(2, 3, 6),
	'/':  dots(3, 4),
}

// Dots returns the raised dot numbers of c in increasing order.
func (c CellKind) Dots() []int {
	var out []int
	for n := 1; n <= 6; n++ {
		if c&(1<<(n-1)) != 0 {
			out = append(out, n)
		}
	}
	return out
}

// Unicode returns the character of c in the Braille Patterns block.
func (c CellKind) Unicode() rune {
	return rune(0x2800) + rune(c&0x3f)
}

// String formats c as its dots, e.g. "dots345", or "dots0" for the blank
// cell.
func (c CellKind) String() string {
	if c == CellBlank {
		return "dots0"
	}
	var b strings.Builder
	b.WriteString("dots")
	for _, n := range c.Dots() {
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// CellsList is an ordered sequence of cells in reading order.
type CellsList struct {
	line  int
	cells []CellKind
}

// NewCellsList returns a list holding kinds, in order.
func NewCellsList(line int, kinds ...CellKind) *CellsList {
	cl := &CellsList{line: line}
	if len(kinds) > 0 {
		cl.cells = append(make([]CellKind, 0, len(kinds)), kinds...)
	}
	return cl
}

// InputLineNumber returns the line the list was built for.
func (cl *CellsList) InputLineNumber() int { return cl.line }

// AppendCellKind appends one cell.
func (cl *CellsList) AppendCellKind(kind CellKind) {
	cl.cells = append(cl.cells, kind)
}

// AppendCellsList appends the cells of other. A nil other is a no-op.
func (cl *CellsList) AppendCellsList(other *CellsList) {
	if other == nil {
		return
	}
	cl.cells = append(cl.cells, other.cells...)
}

// PrependCellsList inserts the cells of other before the current ones.
func (cl *CellsList) PrependCellsList(other *CellsList) {
	if other == nil || len(other.cells) == 0 {
		return
	}
	merged := make([]CellKind, 0, len(other.cells)+len(cl.cells))
	merged = append(merged, other.cells...)
	merged = append(merged, cl.cells...)
	cl.cells = merged
}

// CellsNumber returns the number of cells.
func (cl *CellsList) CellsNumber() int {
	if cl == nil {
		return 0
	}
	return len(cl.cells)
}

// Cells returns a copy of the cells.
func (cl *CellsList) Cells() []CellKind {
	if cl == nil {
		return nil
	}
	out := make([]CellKind, len(cl.cells))
	copy(out, cl.cells)
	return out
}

// Clone returns an independent copy.
func (cl *CellsList) Clone() *CellsList {
	return NewCellsList(cl.line, cl.cells...)
}

// Equal reports whether both lists hold the same cells.
func (cl *CellsList) Equal(other *CellsList) bool {
	if cl.CellsNumber() != other.CellsNumber() {
		return false
	}
	for i, c := range cl.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Unicode renders the list with Braille Patterns characters.
func (cl *CellsList) Unicode() string {
	var b strings.Builder
	for _, c := range cl.cells {
		b.WriteRune(c.Unicode())
	}
	return b.String()
}

// String returns "cellsListElements [dots345 dots34 dots123]".
func (cl *CellsList) String() string {
	var b strings.Builder
	b.WriteString("cellsListElements [")
	for i, c := range cl.cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}
