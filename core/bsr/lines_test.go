package bsr

import (
	"strings"
	"testing"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
)

func quarterC() *Note {
	return NewNote(1, NoteSpec{Step: StepC, Duration: DurationQuarter})
}

func TestLineSpacing(t *testing.T) {
	l := NewLine(1, 1, 30)
	l.AppendKey(NewKeyFromFifths(1, 1))
	m := NewMeasure(2, "1")
	l.AppendMeasure(m)
	l.AppendNote(quarterC())

	elems := l.Contents()[0].Elements()
	kinds := make([]string, len(elems))
	for i, e := range elems {
		switch e.(type) {
		case *Spaces:
			kinds[i] = "spaces"
		case *Key:
			kinds[i] = "key"
		case *Measure:
			kinds[i] = "measure"
		default:
			kinds[i] = "other"
		}
	}
	if got, want := strings.Join(kinds, " "), "spaces key spaces measure"; got != want {
		t.Errorf("elements = %q, want %q", got, want)
	}
	if len(m.Elements()) != 1 {
		t.Errorf("measure elements = %d, want the note", len(m.Elements()))
	}
	if got, want := l.CellsNumber(), 1+1+1+1; got != want {
		t.Errorf("CellsNumber() = %d, want %d", got, want)
	}
	if lc := l.Contents()[0]; lc.Line() != l {
		t.Error("line contents up-link does not point to its line")
	}
}

func TestInsertTimeBeforeLastElement(t *testing.T) {
	l := NewLine(1, 1, 30)
	err := l.InsertTimeBeforeLastElement(NewTimeSignature(4, TimeSignatureCommon))
	if !mferrors.Is(err, mferrors.ErrInternal) {
		t.Fatalf("insert into empty line error = %v, want ErrInternal", err)
	}

	l = NewLine(1, 1, 30)
	m := NewMeasure(2, "5")
	l.AppendMeasure(m)
	ts := NewTimeSignature(2, TimeSignatureCut)
	if err := l.InsertTimeBeforeLastElement(ts); err != nil {
		t.Fatalf("InsertTimeBeforeLastElement() error = %v", err)
	}
	elems := l.Contents()[0].Elements()
	if len(elems) != 3 || elems[1] != LineContentsElement(ts) || elems[2] != LineContentsElement(m) {
		t.Errorf("elements = %v, want [spaces time measure]", elems)
	}
}

func TestLineNumberCellsList(t *testing.T) {
	l := NewLine(1, 3, 30)
	want := NewCellsList(1, CellNumberSign, UpperDigit(3))
	if got := l.LineNumberCellsList(); !got.Equal(want) {
		t.Errorf("LineNumberCellsList() = %s, want %s", got, want)
	}

	l.SetBrailleLineNumber(4)
	want.AppendCellKind(CellNumberSign)
	want.AppendCellKind(UpperDigit(4))
	if got := l.LineNumberCellsList(); !got.Equal(want) {
		t.Errorf("LineNumberCellsList() = %s, want %s", got, want)
	}
}

func TestFitLastElement(t *testing.T) {
	l := NewLine(1, 1, 6)

	m1 := NewMeasure(1, "1")
	l.AppendMeasure(m1)
	for i := 0; i < 4; i++ {
		m1.AppendNote(quarterC())
	}
	if l.FitLastElement() {
		t.Fatal("FitLastElement() moved the only measure of the row")
	}

	m2 := NewMeasure(2, "2")
	l.AppendMeasure(m2)
	m2.AppendNote(quarterC())
	m2.AppendNote(quarterC())
	if !l.FitLastElement() {
		t.Fatal("FitLastElement() = false, want a continuation row")
	}

	if got := l.RowsNumber(); got != 2 {
		t.Fatalf("RowsNumber() = %d, want 2", got)
	}
	first, cont := l.Contents()[0], l.Contents()[1]
	if _, ok := first.Elements()[len(first.Elements())-1].(*Spaces); ok {
		t.Error("regular row ends with spaces after the move")
	}
	if cont.Kind() != LineContentsContinuation || cont.LastMeasure() != m2 {
		t.Errorf("continuation row = %s, want m2", cont.ShortString())
	}
	if got := cont.CellsNumber(); got != continuationIndent+2 {
		t.Errorf("continuation CellsNumber() = %d, want %d", got, continuationIndent+2)
	}

	l.AppendNote(quarterC())
	if len(m2.Elements()) != 3 {
		t.Errorf("AppendNote went to %d-element m2, want it appended to the moved measure", len(m2.Elements()))
	}
}

func TestPageRows(t *testing.T) {
	p := NewPage(1, 1, 3)
	h := NewMusicHeading(1)
	p.SetMusicHeading(h)
	if got := p.RowsNumber(); got != 0 {
		t.Errorf("RowsNumber() with empty heading = %d, want 0", got)
	}
	h.SetKey(NewKeyFromFifths(1, -1))

	l := NewLine(1, 1, 30)
	l.AppendMeasure(NewMeasure(1, "1"))
	p.AppendLine(l)
	if got := p.RowsNumber(); got != 2 {
		t.Errorf("RowsNumber() = %d, want 2", got)
	}
	if p.IsFull() {
		t.Error("IsFull() = true with 2 of 3 rows")
	}
	p.AppendLine(NewLine(2, 2, 30))
	l3 := NewLine(3, 3, 30)
	l3.AppendMeasure(NewMeasure(3, "2"))
	p.AppendLine(l3)
	if !p.IsFull() {
		t.Error("IsFull() = false with 3 of 3 rows")
	}
}

func sampleScore() *Score {
	s := NewScore(1)
	s.TranscriptionNotes().Append(NewTranscriptionNote(1, "by test"))

	p := NewPage(1, 1, 27)
	h := NewMusicHeading(1)
	h.SetKey(NewKeyFromFifths(1, 2))
	h.SetTimeSignature(NewTimeSignature(1, TimeSignatureCommon))
	p.SetMusicHeading(h)
	s.AppendPage(p)

	l := NewLine(1, 1, 30)
	p.AppendLine(l)
	m := NewMeasure(2, "1")
	l.AppendMeasure(m)
	m.AppendNote(NewNote(3, NoteSpec{Step: StepD, Duration: DurationWhole, Octave: Octave4, OctaveIsNeeded: true}))
	m.AppendBarLine(NewBarLine(4, BarLineFinalDouble))
	return s
}

func TestScoreUnicode(t *testing.T) {
	got := sampleScore().Unicode()
	rows := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(rows) != 3 {
		t.Fatalf("Unicode() rows = %d (%q), want 3", len(rows), got)
	}
	if want := TextCells(1, "by test").Unicode(); rows[0] != want {
		t.Errorf("transcription row = %q, want %q", rows[0], want)
	}
	// blank, octave 4, D whole, final double bar
	want := NewCellsList(1, CellBlank, dots(5), dots(1, 5, 3, 6), dots(1, 2, 6), dots(1, 3)).Unicode()
	if rows[2] != want {
		t.Errorf("music row = %q, want %q", rows[2], want)
	}
}

func TestScoreUnicodePagesAndLineNumbers(t *testing.T) {
	s := NewScore(1)
	for i := 1; i <= 2; i++ {
		p := NewPage(i, i, 27)
		l := NewLine(i, i, 30)
		l.SetNumbered(true)
		l.AppendMeasure(NewMeasure(i, "1"))
		p.AppendLine(l)
		s.AppendPage(p)
	}
	got := s.Unicode()
	if strings.Count(got, "\f") != 1 {
		t.Errorf("Unicode() = %q, want one form feed", got)
	}
	if !strings.Contains(got, NewNumber(1, 2, true).CellsList().Unicode()) {
		t.Errorf("Unicode() = %q, want the line number of line 2", got)
	}
}

func TestScoreString(t *testing.T) {
	got := sampleScore().String()
	for _, want := range []string{
		"Score [1 pages",
		"\n  TranscriptionNotes [1 notes",
		"\n  Page [print 1",
		"\n    MusicHeading [tempo: false, key: true, time: true",
		"\n      LineContents [regular",
		"\n          Note [D whole",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, want it to contain %q", got, want)
		}
	}
	if got != sampleScore().String() {
		t.Error("String() differs between two identical scores")
	}
}

func TestNewbornClones(t *testing.T) {
	m := NewMeasure(1, "3")
	m.SetBrailleNumber("3a")
	m.AppendNote(quarterC())
	mc := m.NewbornClone()
	if mc.BrailleNumber() != "3a" || len(mc.Elements()) != 0 {
		t.Errorf("measure clone = %s, want braille 3a and no elements", mc.ShortString())
	}

	l := NewLine(1, 2, 30)
	l.SetBrailleLineNumber(5)
	l.AppendMeasure(m)
	lc := l.NewbornClone()
	if lc.BrailleLineNumber() != 5 || lc.RowsNumber() != 0 {
		t.Errorf("line clone = %s, want braille 5 and no rows", lc.ShortString())
	}

	p := NewPage(1, 4, 27)
	if pc := p.NewbornClone(); pc.PrintPageNumber() != 4 || len(pc.Lines()) != 0 {
		t.Errorf("page clone = %s", pc.ShortString())
	}
}

func TestDebugString(t *testing.T) {
	got := DebugString(sampleScore())
	if !strings.Contains(got, "bsr.Score") {
		t.Errorf("DebugString() = %q, want the type name", got)
	}
}

func TestFitLastElementLeavesNoTrailingBlank(t *testing.T) {
	tests := []struct {
		name  string
		build func(l *Line) (kept LineContentsElement, moved *Measure)
	}{
		{"separator after a measure", func(l *Line) (LineContentsElement, *Measure) {
			m1 := NewMeasure(1, "1")
			l.AppendMeasure(m1)
			for i := 0; i < 4; i++ {
				m1.AppendNote(quarterC())
			}
			m2 := NewMeasure(2, "2")
			l.AppendMeasure(m2)
			m2.AppendNote(quarterC())
			m2.AppendNote(quarterC())
			return m1, m2
		}},
		{"separator after a key", func(l *Line) (LineContentsElement, *Measure) {
			k := NewKeyFromFifths(1, -1)
			l.AppendKey(k)
			m := NewMeasure(1, "1")
			l.AppendMeasure(m)
			for i := 0; i < 6; i++ {
				m.AppendNote(quarterC())
			}
			return k, m
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine(1, 1, 6)
			kept, moved := tt.build(l)
			if !l.FitLastElement() {
				t.Fatal("FitLastElement() = false, want a continuation row")
			}
			first := l.Contents()[0]
			elements := first.Elements()
			if len(elements) != 1 || elements[0] != kept {
				t.Errorf("first row = %s, want only %v", first.ShortString(), kept)
			}
			if got, want := first.CellsNumber(), kept.CellsNumber(); got != want {
				t.Errorf("first row CellsNumber() = %v, want %v", got, want)
			}
			if got := l.Contents()[1].LastMeasure(); got != moved {
				t.Errorf("continuation row LastMeasure() = %v, want %v", got, moved)
			}
		})
	}
}
