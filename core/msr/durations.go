package msr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/rational"
)

// DurationKind is the written value of a note, independent of dots and
// tuplets.
type DurationKind int

const (
	DurationNone DurationKind = iota
	Duration1024th
	Duration512th
	Duration256th
	Duration128th
	Duration64th
	Duration32nd
	Duration16th
	DurationEighth
	DurationQuarter
	DurationHalf
	DurationWhole
	DurationBreve
	DurationLonga
	DurationMaxima
)

var durationKindNames = [...]string{
	"none", "1024th", "512th", "256th", "128th", "64th", "32nd", "16th",
	"eighth", "quarter", "half", "whole", "breve", "longa", "maxima",
}

func (d DurationKind) String() string {
	if d < 0 || int(d) >= len(durationKindNames) {
		return fmt.Sprintf("DurationKind(%d)", int(d))
	}
	return durationKindNames[d]
}

// DurationKindFromString maps a MusicXML note type such as "eighth" or
// "16th" onto its kind.
func DurationKindFromString(s string) (DurationKind, bool) {
	for i, name := range durationKindNames {
		if name == s && i > 0 {
			return DurationKind(i), true
		}
	}
	// MusicXML calls the longa "long"
	if s == "long" {
		return DurationLonga, true
	}
	return DurationNone, false
}

// WholeNotes returns the length of an undotted d in whole notes.
func (d DurationKind) WholeNotes() rational.Rational {
	switch {
	case d == DurationNone:
		return rational.Zero
	case d >= DurationWhole:
		return rational.FromInt(1 << uint(d-DurationWhole))
	default:
		return rational.New(1, 1<<uint(DurationWhole-d))
	}
}

// DottedWholeNotes returns the length of d with dots augmentation dots.
func DottedWholeNotes(d DurationKind, dots int) rational.Rational {
	base := d.WholeNotes()
	result := base
	add := base
	for i := 0; i < dots; i++ {
		add = add.DivInt(2)
		result = result.Add(add)
	}
	return result
}

// DurationKindFromWholeNotes returns the written value and number of dots
// that make up wholeNotes, if there is one with at most three dots.
func DurationKindFromWholeNotes(wholeNotes rational.Rational) (DurationKind, int, bool) {
	for d := DurationMaxima; d > DurationNone; d-- {
		for dots := 0; dots <= 3; dots++ {
			if DottedWholeNotes(d, dots).Equal(wholeNotes) {
				return d, dots, true
			}
		}
	}
	return DurationNone, 0, false
}
