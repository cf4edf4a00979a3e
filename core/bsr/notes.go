package bsr

import (
	"fmt"
	"strings"
)

// NoteStep is the diatonic step of a note, or Rest.
type NoteStep int

const (
	StepNone NoteStep = iota
	StepC
	StepD
	StepE
	StepF
	StepG
	StepA
	StepB
	StepRest
)

func (s NoteStep) String() string {
	switch s {
	case StepC, StepD, StepE, StepF, StepG:
		return string(rune('C' + int(s-StepC)))
	case StepA:
		return "A"
	case StepB:
		return "B"
	case StepRest:
		return "rest"
	default:
		return "none"
	}
}

// NoteDuration is the written value of a note.
type NoteDuration int

const (
	DurationNone NoteDuration = iota
	DurationBreve
	DurationWhole
	DurationHalf
	DurationQuarter
	DurationEighth
	Duration16th
	Duration32nd
	Duration64th
	Duration128th
	Duration256th
)

var noteDurationNames = [...]string{
	"none", "breve", "whole", "half", "quarter", "eighth", "16th", "32nd", "64th", "128th", "256th",
}

func (d NoteDuration) String() string {
	if d < 0 || int(d) >= len(noteDurationNames) {
		return fmt.Sprintf("NoteDuration(%d)", int(d))
	}
	return noteDurationNames[d]
}

// OctaveKind is a Braille octave mark. Octave4 starts at middle C.
type OctaveKind int

const (
	OctaveNone OctaveKind = iota
	OctaveBelow1
	Octave1
	Octave2
	Octave3
	Octave4
	Octave5
	Octave6
	Octave7
	OctaveAbove7
)

// OctaveFromNumber maps an octave number, 4 being middle C's, onto a mark.
func OctaveFromNumber(n int) OctaveKind {
	switch {
	case n < 1:
		return OctaveBelow1
	case n > 7:
		return OctaveAbove7
	default:
		return Octave1 + OctaveKind(n-1)
	}
}

func (o OctaveKind) String() string {
	switch o {
	case OctaveNone:
		return "none"
	case OctaveBelow1:
		return "below1"
	case OctaveAbove7:
		return "above7"
	default:
		return fmt.Sprintf("octave%d", int(o-Octave1)+1)
	}
}

// ValueSizeKind distinguishes larger values (breve to eighth) from smaller
// ones (16th to 256th), which share their cells.
type ValueSizeKind int

const (
	ValueSizeNone ValueSizeKind = iota
	ValueSizeLarger
	ValueSizeSmaller
)

func (v ValueSizeKind) String() string {
	switch v {
	case ValueSizeLarger:
		return "larger"
	case ValueSizeSmaller:
		return "smaller"
	default:
		return "none"
	}
}

// ValueSizeOf returns the value size of d.
func ValueSizeOf(d NoteDuration) ValueSizeKind {
	switch {
	case d >= DurationBreve && d <= DurationEighth:
		return ValueSizeLarger
	case d >= Duration16th && d <= Duration256th:
		return ValueSizeSmaller
	default:
		return ValueSizeNone
	}
}

// AccidentalKind is a written accidental.
type AccidentalKind int

const (
	AccidentalNone AccidentalKind = iota
	AccidentalSharp
	AccidentalNatural
	AccidentalFlat
	AccidentalDoubleFlat
	AccidentalDoubleSharp
	AccidentalQuarterSharp
	AccidentalQuarterFlat
	AccidentalThreeQuartersSharp
	AccidentalThreeQuartersFlat
)

var accidentalNames = [...]string{
	"none", "sharp", "natural", "flat", "doubleFlat", "doubleSharp",
	"quarterSharp", "quarterFlat", "threeQuartersSharp", "threeQuartersFlat",
}

func (a AccidentalKind) String() string {
	if a < 0 || int(a) >= len(accidentalNames) {
		return fmt.Sprintf("AccidentalKind(%d)", int(a))
	}
	return accidentalNames[a]
}

// Note is a note or a rest.
type Note struct {
	leaf
	step              NoteStep
	duration          NoteDuration
	dots              int
	octave            OctaveKind
	octaveIsNeeded    bool
	valueSizeIsNeeded bool
	accidental        AccidentalKind
}

// NoteSpec gathers what a note is made of.
type NoteSpec struct {
	Step              NoteStep
	Duration          NoteDuration
	Dots              int
	Octave            OctaveKind
	OctaveIsNeeded    bool
	ValueSizeIsNeeded bool
	Accidental        AccidentalKind
}

// NewNote returns a note with its cells built.
func NewNote(line int, spec NoteSpec) *Note {
	Initialize()
	n := &Note{
		step:              spec.Step,
		duration:          spec.Duration,
		dots:              spec.Dots,
		octave:            spec.Octave,
		octaveIsNeeded:    spec.OctaveIsNeeded,
		valueSizeIsNeeded: spec.ValueSizeIsNeeded,
		accidental:        spec.Accidental,
	}
	n.line = line
	n.cells = n.buildCellsList()
	return n
}

func (n *Note) Step() NoteStep             { return n.step }
func (n *Note) Duration() NoteDuration     { return n.duration }
func (n *Note) Dots() int                  { return n.dots }
func (n *Note) Octave() OctaveKind         { return n.octave }
func (n *Note) OctaveIsNeeded() bool       { return n.octaveIsNeeded }
func (n *Note) ValueSizeIsNeeded() bool    { return n.valueSizeIsNeeded }
func (n *Note) Accidental() AccidentalKind { return n.accidental }

// IsRest reports whether the note is a rest.
func (n *Note) IsRest() bool { return n.step == StepRest }

func (n *Note) buildCellsList() *CellsList {
	result := NewCellsList(n.line)

	if n.valueSizeIsNeeded {
		result.AppendCellsList(ValueSizeCells(n.line, ValueSizeOf(n.duration)))
	}

	result.AppendCellsList(AccidentalCells(n.line, n.accidental))

	if n.octaveIsNeeded && n.step != StepRest {
		result.AppendCellsList(OctaveCells(n.line, n.octave))
	}

	result.AppendCellsList(NoteValueCells(n.line, n.step, n.duration))

	for i := 0; i < n.dots; i++ {
		result.AppendCellKind(CellAugmentationDot)
	}
	return result
}

var octaveCells = map[OctaveKind][]CellKind{
	OctaveBelow1: {dots(4), dots(4)},
	Octave1:      {dots(4)},
	Octave2:      {dots(4, 5)},
	Octave3:      {dots(4, 5, 6)},
	Octave4:      {dots(5)},
	Octave5:      {dots(4, 6)},
	Octave6:      {dots(5, 6)},
	Octave7:      {dots(6)},
	OctaveAbove7: {dots(6), dots(6)},
}

// OctaveCells returns the octave mark of o.
func OctaveCells(line int, o OctaveKind) *CellsList {
	return NewCellsList(line, octaveCells[o]...)
}

var accidentalCells = map[AccidentalKind][]CellKind{
	AccidentalSharp:              {CellSharp},
	AccidentalNatural:            {CellNatural},
	AccidentalFlat:               {CellFlat},
	AccidentalDoubleFlat:         {CellFlat, CellFlat},
	AccidentalDoubleSharp:        {CellSharp, CellSharp},
	AccidentalQuarterSharp:       {dots(4), CellSharp},
	AccidentalQuarterFlat:        {dots(4), CellFlat},
	AccidentalThreeQuartersSharp: {dots(4, 5, 6), CellSharp},
	AccidentalThreeQuartersFlat:  {dots(4, 5, 6), CellFlat},
}

// AccidentalCells returns the cells of a.
func AccidentalCells(line int, a AccidentalKind) *CellsList {
	return NewCellsList(line, accidentalCells[a]...)
}

// ValueSizeCells returns the value size indicator of v.
func ValueSizeCells(line int, v ValueSizeKind) *CellsList {
	switch v {
	case ValueSizeLarger:
		return NewCellsList(line, dots(4, 5), dots(1, 2, 6), dots(2))
	case ValueSizeSmaller:
		return NewCellsList(line, dots(6), dots(1, 2, 6), dots(2))
	default:
		return NewCellsList(line)
	}
}

var stepUpperCells = map[NoteStep]CellKind{
	StepC: dots(1, 4, 5),
	StepD: dots(1, 5),
	StepE: dots(1, 2, 4),
	StepF: dots(1, 2, 4, 5),
	StepG: dots(1, 2, 5),
	StepA: dots(2, 4),
	StepB: dots(2, 4, 5),
}

// valueLowerDots adds the lower dots that give a pitch cell its value.
func valueLowerDots(d NoteDuration) CellKind {
	switch d {
	case DurationWhole, Duration16th:
		return Dot3 | Dot6
	case DurationHalf, Duration32nd:
		return Dot3
	case DurationQuarter, Duration64th:
		return Dot6
	default:
		return 0
	}
}

func restCell(d NoteDuration) CellKind {
	switch d {
	case DurationWhole, Duration16th:
		return dots(1, 3, 4)
	case DurationHalf, Duration32nd:
		return dots(1, 3, 6)
	case DurationQuarter, Duration64th:
		return dots(1, 2, 3, 6)
	default:
		return dots(1, 3, 4, 6)
	}
}

// NoteValueCells returns the cells giving both the step and the value of a
// note. A breve is a whole note followed by dots 13; a 256th is a prefix
// followed by a 16th.
func NoteValueCells(line int, step NoteStep, d NoteDuration) *CellsList {
	result := NewCellsList(line)
	if d == DurationNone || step == StepNone {
		return result
	}

	single := func(d NoteDuration) CellKind {
		if step == StepRest {
			return restCell(d)
		}
		return stepUpperCells[step] | valueLowerDots(d)
	}

	switch d {
	case DurationBreve:
		result.AppendCellKind(single(DurationWhole))
		result.AppendCellKind(CellBreveSuffix)
	case Duration256th:
		result.AppendCellKind(dots(5, 6))
		result.AppendCellKind(dots(1, 2, 6))
		result.AppendCellKind(dots(2))
		result.AppendCellKind(single(Duration16th))
	default:
		result.AppendCellKind(single(d))
	}
	return result
}

func (n *Note) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Note [%s %s", n.step, n.duration)
	if n.dots > 0 {
		fmt.Fprintf(&b, ", dots: %d", n.dots)
	}
	if n.accidental != AccidentalNone {
		fmt.Fprintf(&b, ", %s", n.accidental)
	}
	fmt.Fprintf(&b, ", %s", n.octave)
	if n.octaveIsNeeded {
		b.WriteString(" (marked)")
	}
	fmt.Fprintf(&b, ", %s, line %d]", n.cells, n.line)
	return b.String()
}
