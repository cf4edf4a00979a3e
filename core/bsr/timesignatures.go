package bsr

import (
	"fmt"
	"strings"
)

// TimeSignatureKind selects how a time signature is written.
type TimeSignatureKind int

const (
	TimeSignatureNone TimeSignatureKind = iota
	TimeSignatureCommon
	TimeSignatureCut
	TimeSignatureNumerical
	TimeSignatureNote
	TimeSignatureDottedNote
	TimeSignatureSingleNumber
	TimeSignatureSenzaMisura
)

var timeSignatureKindNames = [...]string{
	"none", "common", "cut", "numerical", "note", "dottedNote", "singleNumber", "senzaMisura",
}

func (k TimeSignatureKind) String() string {
	if k < 0 || int(k) >= len(timeSignatureKindNames) {
		return fmt.Sprintf("TimeSignatureKind(%d)", int(k))
	}
	return timeSignatureKindNames[k]
}

// TimeSignatureItem is one fraction of a possibly compound time signature.
// Several beats numbers are added, as in 3+2/8.
type TimeSignatureItem struct {
	BeatsNumbers []int
	BeatValue    int
}

func (it TimeSignatureItem) beatsSum() int {
	sum := 0
	for _, n := range it.BeatsNumbers {
		sum += n
	}
	return sum
}

// TimeSignature is a time signature.
type TimeSignature struct {
	leaf
	kind     TimeSignatureKind
	items    []TimeSignatureItem
	warnings []string
}

// NewTimeSignature returns a time signature with its cells built. Beat
// values with no Braille note equivalent are skipped and reported by
// Warnings.
func NewTimeSignature(line int, kind TimeSignatureKind, items ...TimeSignatureItem) *TimeSignature {
	Initialize()
	ts := &TimeSignature{kind: kind, items: items}
	ts.line = line
	ts.cells = ts.buildCellsList()
	return ts
}

// Kind returns the time signature kind.
func (ts *TimeSignature) Kind() TimeSignatureKind { return ts.kind }

// Items returns the fractions of the time signature.
func (ts *TimeSignature) Items() []TimeSignatureItem { return ts.items }

// Warnings lists what could not be encoded.
func (ts *TimeSignature) Warnings() []string { return ts.warnings }

var beatValueDurations = map[int]NoteDuration{
	1:   DurationWhole,
	2:   DurationHalf,
	4:   DurationQuarter,
	8:   DurationEighth,
	16:  Duration16th,
	32:  Duration32nd,
	64:  Duration64th,
	128: Duration128th,
	256: Duration256th,
}

func (ts *TimeSignature) buildCellsList() *CellsList {
	result := NewCellsList(ts.line)

	switch ts.kind {
	case TimeSignatureCommon:
		result.AppendCellKind(CellNumberSign)
		result.AppendCellKind(UpperDigit(4))
		result.AppendCellKind(LowerDigit(4))

	case TimeSignatureCut:
		result.AppendCellKind(CellNumberSign)
		result.AppendCellKind(UpperDigit(2))
		result.AppendCellKind(LowerDigit(2))

	case TimeSignatureNote, TimeSignatureDottedNote:
		if len(ts.items) == 0 {
			break
		}
		item := ts.items[0]
		beats, beatValue := item.beatsSum(), item.BeatValue
		if ts.kind == TimeSignatureDottedNote {
			beats /= 3
			beatValue /= 2
		}
		result.AppendCellsList(NewNumber(ts.line, beats, true).CellsList())
		result.AppendCellKind(CellMusicCodeFirst)
		result.AppendCellKind(CellMusicCodeSecond)
		d, ok := beatValueDurations[beatValue]
		if !ok {
			ts.warnings = append(ts.warnings,
				fmt.Sprintf("beat value %d has no Braille note equivalent", beatValue))
			break
		}
		result.AppendCellsList(NoteValueCells(ts.line, StepC, d))
		if ts.kind == TimeSignatureDottedNote {
			result.AppendCellKind(CellAugmentationDot)
		}

	case TimeSignatureNumerical, TimeSignatureSingleNumber:
		for _, item := range ts.items {
			result.AppendCellsList(NewNumber(ts.line, item.beatsSum(), true).CellsList())
			result.AppendCellsList(lowerDigits(ts.line, item.BeatValue))
		}
	}

	return result
}

func (ts *TimeSignature) String() string {
	parts := make([]string, 0, len(ts.items))
	for _, it := range ts.items {
		beats := make([]string, len(it.BeatsNumbers))
		for i, n := range it.BeatsNumbers {
			beats[i] = fmt.Sprint(n)
		}
		parts = append(parts, strings.Join(beats, "+")+"/"+fmt.Sprint(it.BeatValue))
	}
	return fmt.Sprintf("TimeSignature [%s %s, %s, line %d]", ts.kind, strings.Join(parts, " "), ts.cells, ts.line)
}
