package msr

import (
	"fmt"
	"testing"
)

func quarter(step Step, octave int) *Note {
	return NewNote(1, NoteSpec{Step: step, Octave: octave, Duration: DurationQuarter})
}

func measureOf(number string, notes ...*Note) *Measure {
	m := NewMeasure(1, number)
	for _, n := range notes {
		m.AppendElement(n)
	}
	return m
}

// fourQuarters returns a measure of C D E F in octave 4.
func fourQuarters(number string) *Measure {
	return measureOf(number, quarter(StepC, 4), quarter(StepD, 4), quarter(StepE, 4), quarter(StepF, 4))
}

// attach builds the score, part group, part and staff around v.
func attach(v *Voice) *Score {
	score := NewScore(1)
	score.SetIdentification(Identification{WorkTitle: "Test"})
	g := NewPartGroup(1, 1, "")
	score.AppendPartGroup(g)
	p := NewPart(1, "P1", "Piano")
	g.AppendPart(p)
	st := NewStaff(1, 1)
	p.AppendStaff(st)
	st.AppendVoice(v)
	return score
}

// testScore builds a one-voice score:
//
//	1 |: 2 3 :| 4
//
// Measure 1 opens with a treble clef, C major and 4/4, and its first note
// carries a forte and a one-syllable-per-note stanza.
func testScore(t *testing.T) *Score {
	t.Helper()
	ctx := NewContext("test.xml")
	v := NewVoice(1, 1, ctx)
	score := attach(v)

	m1 := NewMeasure(1, "1")
	m1.AppendElement(NewClefKeyTimeSignatureGroup(1,
		NewClef(1, ClefTreble, 1),
		NewKey(1, 0, ModeMajor),
		NewTimeSignature(1, TimeSymbolNone, TimeSignatureItem{BeatsNumbers: []int{4}, BeatValue: 4})))
	notes := []*Note{quarter(StepC, 4), quarter(StepD, 4), quarter(StepE, 4), quarter(StepF, 4)}
	notes[0].AppendDynamic(NewDynamic(1, DynamicF, PlacementBelow))
	for _, n := range notes {
		m1.AppendElement(n)
	}

	steps := []func() error{
		func() error { return v.AppendMeasure(m1) },
		func() error { return v.HandleRepeatStart(2) },
		func() error { return v.AppendMeasure(fourQuarters("2")) },
		func() error { return v.AppendMeasure(fourQuarters("3")) },
		func() error { return v.HandleRepeatEnd(3, 2) },
		func() error { return v.AppendMeasure(fourQuarters("4")) },
		func() error { return v.Finalize(5) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("building test score, step %d: %v", i, err)
		}
	}

	stanza := v.StanzaOrCreate(1, "1")
	pos := m1.Notes()[0].PositionInMeasure()
	for i, n := range m1.Notes() {
		syl := NewSyllable(1, SyllableSingle, n.SoundingWholeNotes(), fmt.Sprintf("la%d", i))
		syl.AttachToNote(n)
		if err := stanza.AppendSyllable(syl, m1, pos); err != nil {
			t.Fatal(err)
		}
		pos = pos.Add(n.SoundingWholeNotes())
	}
	return score
}
