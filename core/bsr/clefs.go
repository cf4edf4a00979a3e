package bsr

import "fmt"

// ClefKind is a Braille clef sign.
type ClefKind int

const (
	ClefNone ClefKind = iota
	ClefGTreble
	ClefFBass
	ClefCAlto
	ClefGSoprano // first line
	ClefFBaritone
	ClefCTenor
	ClefGOttavaAlta
	ClefGOttavaBassa
	ClefModifiedBassForRightHandPart
	ClefModifiedTrebleForLeftHandPart
)

var clefKindNames = map[ClefKind]string{
	ClefNone:                          "none",
	ClefGTreble:                       "gTreble",
	ClefFBass:                         "fBass",
	ClefCAlto:                         "cAlto",
	ClefGSoprano:                      "gSoprano",
	ClefFBaritone:                     "fBaritone",
	ClefCTenor:                        "cTenor",
	ClefGOttavaAlta:                   "gOttavaAlta",
	ClefGOttavaBassa:                  "gOttavaBassa",
	ClefModifiedBassForRightHandPart:  "modifiedBassForRightHandPart",
	ClefModifiedTrebleForLeftHandPart: "modifiedTrebleForLeftHandPart",
}

func (k ClefKind) String() string {
	if s, ok := clefKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ClefKind(%d)", int(k))
}

// Clef is a clef sign placed in a measure.
type Clef struct {
	leaf
	kind ClefKind
}

// NewClef returns a clef with its cells built.
func NewClef(line int, kind ClefKind) *Clef {
	Initialize()
	c := &Clef{kind: kind}
	c.line = line
	c.cells = c.buildCellsList()
	return c
}

// Kind returns the clef kind.
func (c *Clef) Kind() ClefKind { return c.kind }

func (c *Clef) buildCellsList() *CellsList {
	return NewCellsList(c.line, clefCells[c.kind]...)
}

func (c *Clef) String() string {
	return fmt.Sprintf("Clef [%s, %s, spacesBefore: %d, line %d]", c.kind, c.cells, c.spacesBefore, c.line)
}
