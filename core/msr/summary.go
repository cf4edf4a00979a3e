package msr

import (
	"fmt"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// Summary counts the nodes of a score per kind.
type Summary struct {
	Parts                int
	Staves               int
	Voices               int
	Measures             int
	Notes                int
	Rests                int
	Chords               int
	Tuplets              int
	Repeats              int
	RepeatEndings        int
	MeasureRepeats       int
	BeatRepeats          int
	MultipleMeasureRests int
	Stanzas              int
	Syllables            int
}

func (s *Summary) VisitPartStart(*Part) error       { s.Parts++; return nil }
func (s *Summary) VisitStaffStart(*Staff) error     { s.Staves++; return nil }
func (s *Summary) VisitVoiceStart(*Voice) error     { s.Voices++; return nil }
func (s *Summary) VisitMeasureStart(*Measure) error { s.Measures++; return nil }
func (s *Summary) VisitChordStart(*Chord) error     { s.Chords++; return nil }
func (s *Summary) VisitTupletStart(*Tuplet) error   { s.Tuplets++; return nil }
func (s *Summary) VisitRepeatStart(*Repeat) error   { s.Repeats++; return nil }
func (s *Summary) VisitStanzaStart(*Stanza) error   { s.Stanzas++; return nil }

func (s *Summary) VisitRepeatEndingStart(*RepeatEnding) error   { s.RepeatEndings++; return nil }
func (s *Summary) VisitMeasureRepeatStart(*MeasureRepeat) error { s.MeasureRepeats++; return nil }
func (s *Summary) VisitBeatRepeatStart(*BeatRepeat) error       { s.BeatRepeats++; return nil }
func (s *Summary) VisitSyllableStart(*Syllable) error           { s.Syllables++; return nil }

func (s *Summary) VisitMultipleMeasureRestStart(*MultipleMeasureRest) error {
	s.MultipleMeasureRests++
	return nil
}

func (s *Summary) VisitNoteStart(n *Note) error {
	if n.IsRest() {
		s.Rests++
	} else {
		s.Notes++
	}
	return nil
}

// Summarize browses e and returns its node counts. Options such as a path
// filter restrict what is counted.
func Summarize(e visit.Element, opts ...visit.Option) (*Summary, error) {
	s := &Summary{}
	if err := visit.NewBrowser(s, opts...).Browse(e); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Summary) String() string {
	var b strings.Builder
	rows := []struct {
		name  string
		count int
	}{
		{"parts", s.Parts},
		{"staves", s.Staves},
		{"voices", s.Voices},
		{"measures", s.Measures},
		{"notes", s.Notes},
		{"rests", s.Rests},
		{"chords", s.Chords},
		{"tuplets", s.Tuplets},
		{"repeats", s.Repeats},
		{"repeat endings", s.RepeatEndings},
		{"measure repeats", s.MeasureRepeats},
		{"beat repeats", s.BeatRepeats},
		{"multiple measure rests", s.MultipleMeasureRests},
		{"stanzas", s.Stanzas},
		{"syllables", s.Syllables},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%-24s %d\n", r.name, r.count)
	}
	return b.String()
}
