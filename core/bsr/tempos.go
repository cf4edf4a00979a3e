package bsr

import (
	"fmt"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
)

// TempoKind tells what a tempo indication consists of.
type TempoKind int

const (
	TempoNone TempoKind = iota
	TempoWordsOnly
	TempoPerMinute
	TempoEquivalence
)

func (k TempoKind) String() string {
	switch k {
	case TempoWordsOnly:
		return "wordsOnly"
	case TempoPerMinute:
		return "perMinute"
	case TempoEquivalence:
		return "equivalence"
	default:
		return "none"
	}
}

// TempoSpec gathers what a tempo indication is made of.
type TempoSpec struct {
	Kind         TempoKind
	Words        string
	BeatUnit     NoteDuration
	BeatUnitDots int
	PerMinute    string
}

// Tempo is a tempo indication: the word sign, the words if any, then for a
// metronome mark the beat unit, the equals sign and the number or range.
type Tempo struct {
	leaf
	spec      TempoSpec
	perMinute PerMinute
}

// NewTempo returns a tempo with its cells built. An ill-formed per-minute
// string is an internal error.
func NewTempo(line int, spec TempoSpec) (*Tempo, error) {
	Initialize()
	t := &Tempo{spec: spec}
	t.line = line
	cells, err := t.buildCellsList()
	if err != nil {
		return nil, err
	}
	t.cells = cells
	return t, nil
}

// Kind returns the tempo kind.
func (t *Tempo) Kind() TempoKind { return t.spec.Kind }

// PerMinute returns the decoded metronome value, zero unless Kind is
// TempoPerMinute.
func (t *Tempo) PerMinute() PerMinute { return t.perMinute }

func (t *Tempo) buildCellsList() (*CellsList, error) {
	result := NewCellsList(t.line, CellWordSign)

	if t.spec.Words != "" {
		result.AppendCellsList(TextCells(t.line, t.spec.Words))
	}

	if t.spec.Kind != TempoPerMinute {
		return result, nil
	}

	if t.spec.Words != "" {
		result.AppendCellKind(CellBlank)
	}

	// the beat unit is written as a C without octave mark
	result.AppendCellsList(NoteValueCells(t.line, StepC, t.spec.BeatUnit))
	for i := 0; i < t.spec.BeatUnitDots; i++ {
		result.AppendCellKind(CellAugmentationDot)
	}
	result.AppendCellKind(CellTempoEquals)

	pm, err := ParsePerMinute(t.spec.PerMinute)
	if err != nil {
		return nil, &mferrors.InternalError{
			Line:    t.line,
			Message: fmt.Sprintf("tempoPerMinuteString '%s' is ill-formed", t.spec.PerMinute),
			Err:     err,
		}
	}
	t.perMinute = pm

	result.AppendCellsList(NewNumber(t.line, pm.Min, true).CellsList())
	if pm.IsRange() {
		result.AppendCellKind(CellTempoHyphen)
		result.AppendCellsList(NewNumber(t.line, pm.Max, true).CellsList())
	}
	return result, nil
}

func (t *Tempo) String() string {
	return fmt.Sprintf("Tempo [%s, %q, %s, line %d]", t.spec.Kind, t.spec.PerMinute, t.cells, t.line)
}
