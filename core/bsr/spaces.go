package bsr

import "fmt"

// Spaces is a run of blank cells separating two line elements.
type Spaces struct {
	leaf
	number int
}

// NewSpaces returns number blank cells.
func NewSpaces(line, number int) *Spaces {
	Initialize()
	s := &Spaces{number: number}
	s.line = line
	s.cells = NewCellsList(line)
	for i := 0; i < number; i++ {
		s.cells.AppendCellKind(CellBlank)
	}
	return s
}

// Number returns how many blank cells s holds.
func (s *Spaces) Number() int { return s.number }

func (s *Spaces) String() string {
	return fmt.Sprintf("Spaces [%d, line %d]", s.number, s.line)
}
