package bsr

import "fmt"

// KeyKind tells which accidental a key signature repeats.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyFlats
	KeyNaturals
	KeySharps
)

func (k KeyKind) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyFlats:
		return "flats"
	case KeyNaturals:
		return "naturals"
	case KeySharps:
		return "sharps"
	default:
		return fmt.Sprintf("KeyKind(%d)", int(k))
	}
}

// Key is a key signature.
type Key struct {
	leaf
	kind   KeyKind
	number int
}

// NewKey returns a key signature showing number accidentals of kind.
func NewKey(line int, kind KeyKind, number int) *Key {
	Initialize()
	k := &Key{kind: kind, number: number}
	k.line = line
	k.cells = k.buildCellsList()
	return k
}

// NewKeyFromFifths maps a position on the circle of fifths onto a key:
// positive values are sharps, negative ones flats and zero naturals.
func NewKeyFromFifths(line, fifths int) *Key {
	switch {
	case fifths > 0:
		return NewKey(line, KeySharps, fifths)
	case fifths < 0:
		return NewKey(line, KeyFlats, -fifths)
	default:
		return NewKey(line, KeyNaturals, 0)
	}
}

// Kind returns the key kind.
func (k *Key) Kind() KeyKind { return k.kind }

// Number returns how many accidentals the key shows.
func (k *Key) Number() int { return k.number }

// Up to three accidentals are written out; more are written as a number
// followed by one accidental.
func (k *Key) buildCellsList() *CellsList {
	result := NewCellsList(k.line)

	var accidental CellKind
	switch k.kind {
	case KeyFlats:
		accidental = CellFlat
	case KeySharps:
		accidental = CellSharp
	case KeyNaturals:
		accidental = CellNatural
	default:
		return result
	}

	switch {
	case k.number <= 0:
	case k.number <= 3:
		for i := 0; i < k.number; i++ {
			result.AppendCellKind(accidental)
		}
	default:
		result.AppendCellsList(NewNumber(k.line, k.number, true).CellsList())
		result.AppendCellKind(accidental)
	}
	return result
}

func (k *Key) String() string {
	return fmt.Sprintf("Key [%s %d, %s, line %d]", k.kind, k.number, k.cells, k.line)
}
