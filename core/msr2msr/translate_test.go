package msr2msr

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/core/rational"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

func note(step msr.Step, octave int, d msr.DurationKind) *msr.Note {
	return msr.NewNote(1, msr.NoteSpec{Step: step, Octave: octave, Duration: d})
}

func rest(d msr.DurationKind) *msr.Note {
	return msr.NewNote(1, msr.NoteSpec{Kind: msr.NoteRest, Duration: d})
}

func measureOf(number string, elements ...msr.MeasureElement) *msr.Measure {
	m := msr.NewMeasure(1, number)
	for _, e := range elements {
		m.AppendElement(e)
	}
	return m
}

func cdef(number string) *msr.Measure {
	return measureOf(number,
		note(msr.StepC, 4, msr.DurationQuarter), note(msr.StepD, 4, msr.DurationQuarter),
		note(msr.StepE, 4, msr.DurationQuarter), note(msr.StepF, 4, msr.DurationQuarter))
}

type voiceBuild func(v *msr.Voice) error

// scoreOf returns a score with one part per build, P1, P2 and so on, each
// with one staff holding one voice filled by its build.
func scoreOf(t *testing.T, builds ...voiceBuild) *msr.Score {
	t.Helper()
	ctx := msr.NewContext("test.xml")
	score := msr.NewScore(1)
	score.SetIdentification(msr.Identification{WorkTitle: "Test"})
	g := msr.NewPartGroup(1, 1, "")
	score.AppendPartGroup(g)

	for i, build := range builds {
		p := msr.NewPart(1, fmt.Sprintf("P%d", i+1), "")
		g.AppendPart(p)
		st := msr.NewStaff(1, 1)
		p.AppendStaff(st)
		v := msr.NewVoice(1, 1, ctx)
		st.AppendVoice(v)
		if err := build(v); err != nil {
			t.Fatalf("building voice %s: %v", v.Path(), err)
		}
		if err := v.Finalize(99); err != nil {
			t.Fatalf("Finalize(%s) error = %v", v.Path(), err)
		}
	}
	return score
}

// steps runs fs in order, stopping at the first error.
func steps(fs ...func() error) error {
	for i, f := range fs {
		if err := f(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func appendMeasures(v *msr.Voice, ms ...*msr.Measure) func() error {
	return func() error {
		for _, m := range ms {
			if err := v.AppendMeasure(m); err != nil {
				return err
			}
		}
		return nil
	}
}

func plain(numbers ...string) voiceBuild {
	return func(v *msr.Voice) error {
		for _, n := range numbers {
			if err := v.AppendMeasure(cdef(n)); err != nil {
				return err
			}
		}
		return nil
	}
}

// richVoice holds a bit of everything:
//
//	1 |: 2 3 [1 4 :| ] [2 5 ] 6
//
// Measure 1 opens with clef, key and time, has a forte, words and a
// stanza. Measure 2 has a chord, a triplet and a rest. Measure 6 has a
// tempo.
func richVoice(v *msr.Voice) error {
	m1 := measureOf("1", msr.NewClefKeyTimeSignatureGroup(1,
		msr.NewClef(1, msr.ClefTreble, 1),
		msr.NewKey(1, 1, msr.ModeMajor),
		msr.NewTimeSignature(1, msr.TimeSymbolCommon, msr.TimeSignatureItem{BeatsNumbers: []int{4}, BeatValue: 4})))
	notes := []*msr.Note{
		note(msr.StepC, 4, msr.DurationQuarter), note(msr.StepD, 4, msr.DurationQuarter),
		note(msr.StepE, 4, msr.DurationQuarter), note(msr.StepF, 4, msr.DurationQuarter),
	}
	notes[0].AppendDynamic(msr.NewDynamic(1, msr.DynamicF, msr.PlacementBelow))
	notes[1].AppendWords(msr.NewWords(1, "dolce", msr.PlacementAbove))
	for _, n := range notes {
		m1.AppendElement(n)
	}

	m2 := msr.NewMeasure(2, "2")
	chord := msr.NewChord(2, msr.DurationHalf, 0, msr.DottedWholeNotes(msr.DurationHalf, 0))
	m2.AppendElement(chord)
	chord.AppendNote(note(msr.StepC, 4, msr.DurationHalf))
	chord.AppendNote(note(msr.StepE, 4, msr.DurationHalf))
	triplet := msr.NewTuplet(2, 3, 2)
	for _, s := range []msr.Step{msr.StepG, msr.StepA, msr.StepB} {
		triplet.AppendNote(msr.NewNote(2, msr.NoteSpec{
			Step: s, Octave: 4, Duration: msr.DurationEighth, SoundingWholeNotes: rational.New(1, 12),
		}))
	}
	m2.AppendElement(triplet)
	m2.AppendElement(rest(msr.DurationQuarter))

	m6 := cdef("6")
	m6.AppendElement(msr.NewTempo(6, msr.TempoSpec{Kind: msr.TempoWordsOnly, Words: "Allegro"}))

	err := steps(
		appendMeasures(v, m1),
		func() error { return v.HandleRepeatStart(2) },
		appendMeasures(v, m2, cdef("3")),
		func() error { return v.HandleEndingStart(4, "1") },
		appendMeasures(v, cdef("4")),
		func() error { return v.HandleRepeatEnd(4, 2) },
		func() error { return v.HandleEndingEnd(4, msr.EndingHooked) },
		func() error { return v.HandleEndingStart(5, "2") },
		appendMeasures(v, cdef("5")),
		func() error { return v.HandleEndingEnd(5, msr.EndingHookless) },
		appendMeasures(v, m6),
	)
	if err != nil {
		return err
	}

	stanza := v.StanzaOrCreate(1, "1")
	for i, n := range m1.Notes() {
		syl := msr.NewSyllable(1, msr.SyllableSingle, n.SoundingWholeNotes(), fmt.Sprintf("la%d", i))
		if err := stanza.AppendSyllable(syl, m1, n.PositionInMeasure()); err != nil {
			return err
		}
		syl.AttachToNote(n)
	}
	return stanza.AppendSyllable(msr.NewSyllable(1, msr.SyllableMeasureEnd, rational.Zero), m1, rational.Zero)
}

func translateT(t *testing.T, score *msr.Score, opts Options) *msr.Score {
	t.Helper()
	result, err := TranslateMsrToMsr(score, msr.NewContext("test.xml"), opts, "2", "convert MSR to MSR")
	if err != nil {
		t.Fatalf("TranslateMsrToMsr() error = %v", err)
	}
	return result
}

func flatView(t *testing.T, e visit.Element) string {
	t.Helper()
	got, err := msr.FlatView(e)
	if err != nil {
		t.Fatalf("FlatView() error = %v", err)
	}
	return got
}

func nodes(e visit.Element) map[visit.Element]bool {
	set := make(map[visit.Element]bool)
	_ = visit.Walk(e, func(x visit.Element, _ int) { set[x] = true })
	return set
}

func TestTranslateMsrToMsrCopiesScore(t *testing.T) {
	score := scoreOf(t, richVoice, plain("1", "2"))
	before := msr.TreeString(score)

	result := translateT(t, score, Options{})

	if got := msr.TreeString(result); got != before {
		t.Errorf("copy differs from source:\n%s\nwant\n%s", got, before)
	}
	if after := msr.TreeString(score); after != before {
		t.Error("source score changed during translation")
	}

	source := nodes(score)
	copied := nodes(result)
	for e := range copied {
		if source[e] {
			t.Errorf("copy shares node %T with source", e)
		}
	}

	for _, syl := range collect[*msr.Syllable](result) {
		if syl.Kind() != msr.SyllableSingle {
			continue
		}
		if syl.Note() == nil || !copied[syl.Note()] {
			t.Errorf("syllable %q is not attached to a copied note", syl.Text())
		}
	}
}

func TestTranslateMsrToMsrKeepsStructure(t *testing.T) {
	score := scoreOf(t, richVoice)
	result := translateT(t, score, Options{})

	want := "P1/1/1: 1 |: 2 3 [1 4 :| ] [2 5 ] 6\n"
	if got := flatView(t, result); got != want {
		t.Errorf("FlatView() = %q, want %q", got, want)
	}

	repeats := collect[*msr.Repeat](result)
	if len(repeats) != 1 || repeats[0].Phase() != msr.RepeatCompleted || repeats[0].Times() != 2 {
		t.Fatalf("repeats = %v, want one completed repeat played twice", repeats)
	}

	var m2 *msr.Measure
	for _, m := range result.Voices()[0].Measures() {
		if m.Number() == "2" {
			m2 = m
		}
	}
	if m2 == nil {
		t.Fatal("measure 2 is missing")
	}
	if got, want := m2.CurrentPosition(), rational.FromInt(1); !got.Equal(want) {
		t.Errorf("measure 2 position = %s, want %s", got, want)
	}
	tuplets := collect[*msr.Tuplet](m2)
	if len(tuplets) != 1 || !tuplets[0].PositionInMeasure().Equal(rational.New(1, 2)) {
		t.Errorf("tuplets = %v, want one at 1/2", tuplets)
	}
	if k := result.Parts()[0].Staff(1).CurrentKey(); k == nil || k.Fifths() != 1 {
		t.Errorf("staff current key = %v, want G major", k)
	}
}

func TestTranslateMsrToMsrAlongPathToVoice(t *testing.T) {
	score := scoreOf(t, richVoice, plain("1", "2", "3"))
	ctx := msr.NewContext("test.xml")

	result, err := TranslateMsrToMsrAlongPathToVoice(score, ctx, Options{}, "2", "", msr.PathToVoice{PartID: "P2", StaffNumber: 1, VoiceNumber: 1})
	if err != nil {
		t.Fatalf("TranslateMsrToMsrAlongPathToVoice() error = %v", err)
	}
	if got, want := flatView(t, result), "P2/1/1: 1 2 3\n"; got != want {
		t.Errorf("FlatView() = %q, want %q", got, want)
	}
	s, err := msr.Summarize(result)
	if err != nil {
		t.Fatal(err)
	}
	if s.Parts != 1 || s.Voices != 1 || s.Measures != 3 || s.Stanzas != 0 {
		t.Errorf("summary = %+v, want one voice of three measures", *s)
	}

	for _, p := range []msr.PathToVoice{{PartID: "P9", StaffNumber: 1, VoiceNumber: 1}, {PartID: "P1", StaffNumber: 1, VoiceNumber: 2}} {
		_, err := TranslateMsrToMsrAlongPathToVoice(score, ctx, Options{}, "2", "", p)
		if !errors.Is(err, mferrors.ErrNotFound) {
			t.Errorf("path %s: error = %v, want ErrNotFound", p, err)
		}
	}
}

func TestPartSelection(t *testing.T) {
	score := scoreOf(t, plain("1"), plain("1"), plain("1"))

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"all", Options{}, []string{"P1", "P2", "P3"}},
		{"keep", Options{KeepParts: []string{"P3", "P1"}}, []string{"P1", "P3"}},
		{"ignore", Options{IgnoreParts: []string{"P2"}}, []string{"P1", "P3"}},
		{"keep then ignore", Options{KeepParts: []string{"P1", "P2"}, IgnoreParts: []string{"P1"}}, []string{"P2"}},
		{"unknown", Options{KeepParts: []string{"P9"}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range translateT(t, score, tt.opts).Parts() {
				got = append(got, p.ID())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parts = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoalesceEmptyMeasures(t *testing.T) {
	restMeasure := func(n int) *msr.Measure { return measureOf(strconv.Itoa(n), rest(msr.DurationWhole)) }
	build := func(v *msr.Voice) error {
		return steps(
			appendMeasures(v, cdef("1"), restMeasure(2), restMeasure(3), restMeasure(4), cdef("5"), restMeasure(6)),
			func() error { return v.HandleRepeatStart(7) },
			appendMeasures(v, restMeasure(7), restMeasure(8)),
			func() error { return v.HandleRepeatEnd(8, 2) },
		)
	}
	score := scoreOf(t, build)

	tests := []struct {
		name string
		on   bool
		want string
	}{
		{"off", false, "P1/1/1: 1 2 3 4 5 6 |: 7 8 :|x2\n"},
		{"on", true, "P1/1/1: 1 R3(2-4) 5 6 |: R2(7-8) :|x2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := translateT(t, score, Options{CoalesceEmptyMeasures: tt.on})
			if got := flatView(t, result); got != tt.want {
				t.Errorf("FlatView() = %q, want %q", got, tt.want)
			}
			if !tt.on {
				return
			}
			rests := collect[*msr.MultipleMeasureRest](result)
			if len(rests) != 2 {
				t.Fatalf("multiple measure rests = %d, want 2", len(rests))
			}
			if got := rests[0].LastMeasurePuristNumber(); got != 4 {
				t.Errorf("LastMeasurePuristNumber() = %d, want 4", got)
			}
			for _, m := range rests[0].Measures() {
				if m.Segment() != nil {
					t.Errorf("measure %s of a rest has a segment", m.Number())
				}
			}
		})
	}
}

func TestInsertPageBreakAfterMeasure(t *testing.T) {
	score := scoreOf(t, plain("1", "2", "3"))
	result := translateT(t, score, Options{InsertPageBreakAfterMeasure: []string{"2"}})

	for _, m := range result.Voices()[0].Measures() {
		breaks := collect[*msr.PageBreak](m)
		want := 0
		if m.Number() == "2" {
			want = 1
		}
		if len(breaks) != want {
			t.Errorf("measure %s page breaks = %d, want %d", m.Number(), len(breaks), want)
		}
	}
}

func TestConvertWordsToTempo(t *testing.T) {
	score := scoreOf(t, richVoice)
	result := translateT(t, score, Options{ConvertWordsToTempo: true})

	m1 := result.Voices()[0].Measures()[0]
	elems := m1.Elements()
	// group, C, tempo, D, E, F
	if len(elems) != 6 {
		t.Fatalf("measure 1 elements = %d, want 6", len(elems))
	}
	tempo, ok := elems[2].(*msr.Tempo)
	if !ok || tempo.Kind() != msr.TempoWordsOnly || tempo.Words() != "dolce" {
		t.Errorf("element 2 = %s, want the dolce tempo", elems[2].ShortString())
	}
	if n, ok := elems[3].(*msr.Note); !ok || len(n.Words()) != 0 {
		t.Errorf("element 3 = %s, want D without words", elems[3].ShortString())
	}
}

func TestConvertTemposToRehearsalMarks(t *testing.T) {
	score := scoreOf(t, richVoice)
	result := translateT(t, score, Options{ConvertTemposToRehearsalMarks: true})

	if n := len(collect[*msr.Tempo](result)); n != 0 {
		t.Errorf("tempos = %d, want 0", n)
	}
	marks := collect[*msr.RehearsalMark](result)
	if len(marks) != 1 || marks[0].Text() != "Allegro" {
		t.Errorf("rehearsal marks = %v, want [Allegro]", marks)
	}
}

func TestCreateImplicitInitialRepeatBarLine(t *testing.T) {
	score := scoreOf(t, func(v *msr.Voice) error {
		return steps(
			appendMeasures(v, cdef("1"), cdef("2")),
			func() error { return v.HandleRepeatEnd(2, 2) },
			appendMeasures(v, cdef("3")),
		)
	})

	tests := []struct {
		name     string
		on       bool
		want     string
		barLines int
	}{
		{"off", false, "P1/1/1: (|:) 1 2 :|x2 3\n", 0},
		{"on", true, "P1/1/1: |: 1 2 :|x2 3\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := translateT(t, score, Options{CreateImplicitInitialRepeatBarLine: tt.on})
			if got := flatView(t, result); got != tt.want {
				t.Errorf("FlatView() = %q, want %q", got, tt.want)
			}
			barLines := collect[*msr.BarLine](result.Voices()[0].Measures()[0])
			if len(barLines) != tt.barLines {
				t.Fatalf("measure 1 bar lines = %d, want %d", len(barLines), tt.barLines)
			}
			if tt.barLines > 0 && barLines[0].RepeatDirection() != msr.RepeatDirectionForward {
				t.Errorf("bar line = %s, want a forward repeat", barLines[0].ShortString())
			}
		})
	}
}

func TestTranslateMsrToMsrNilScore(t *testing.T) {
	_, err := TranslateMsrToMsr(nil, nil, Options{}, "2", "")
	if !errors.Is(err, mferrors.ErrInternal) {
		t.Errorf("error = %v, want ErrInternal", err)
	}
}

// collect returns the elements of type T below e, in browsing order.
func collect[T visit.Element](e visit.Element) []T {
	var result []T
	_ = visit.Walk(e, func(e visit.Element, _ int) {
		if x, ok := e.(T); ok {
			result = append(result, x)
		}
	})
	return result
}
