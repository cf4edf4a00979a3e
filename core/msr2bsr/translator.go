package msr2bsr

import (
	"strconv"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/bsr"
	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/msr"
)

// translator builds a BSR score while an MSR score is browsed. It embeds
// the pass context, which also gives clef, key and time groups their
// browsing order.
type translator struct {
	*msr.Context
	opts bsr.Options

	result       *bsr.Score
	page         *bsr.Page
	musicHeading *bsr.MusicHeading
	line         *bsr.Line
	measure      *bsr.Measure

	pageNumber int
	lineNumber int

	keySeen   bool
	timeSeen  bool
	noteSeen  bool
	tempoSeen bool

	pendingLineBreak bool
	pendingPageBreak bool
	endingNumber     int

	// octave mark state; a reset forces a mark on the next pitched note
	lastNote     *msr.Note
	octaveReset  bool
	valueSize    bsr.ValueSizeKind
	inChord      bool
	chordStarted bool
	skipping     bool
	hidden       int
}

func newTranslator(ctx *msr.Context, opts bsr.Options) *translator {
	return &translator{
		Context:     ctx,
		opts:        opts,
		octaveReset: true,
		valueSize:   bsr.ValueSizeLarger,
	}
}

func (t *translator) VisitScoreStart(s *msr.Score) error {
	line := s.InputLineNumber()
	t.result = bsr.NewScore(line)
	t.result.TranscriptionNotes().Append(
		bsr.NewTranscriptionNote(line, "This Braille data created by "+t.opts.ServiceName))

	t.newPage(line)
	t.page.SetPageHeading(bsr.NewPageHeading(line, s.Identification().Title(), 1, 1))
	t.musicHeading = bsr.NewMusicHeading(line)
	t.page.SetMusicHeading(t.musicHeading)
	t.newLine(line)
	return nil
}

func (t *translator) newPage(line int) {
	t.pageNumber++
	t.page = bsr.NewPage(line, t.pageNumber, t.opts.LinesPerPage)
	t.result.AppendPage(t.page)
}

// newLine starts a line, on a new page when the current one is full.
func (t *translator) newLine(line int) {
	if t.page.IsFull() {
		t.newPage(line)
	}
	t.lineNumber++
	t.line = bsr.NewLine(line, t.lineNumber, t.opts.CellsPerLine)
	t.line.SetNumbered(t.opts.LineNumbers)
	t.page.AppendLine(t.line)
	t.octaveReset = true
}

func (t *translator) VisitMeasureStart(m *msr.Measure) error {
	if t.hidden == 0 {
		t.startMeasure(m.InputLineNumber(), m.Number())
	}
	return nil
}

// startMeasure appends a measure to the line, after the pending breaks.
// The first measure of an ending carries the ending number.
func (t *translator) startMeasure(line int, number string) {
	switch {
	case t.pendingPageBreak:
		t.newPage(line)
		t.newLine(line)
	case t.pendingLineBreak:
		t.newLine(line)
	}
	t.pendingPageBreak, t.pendingLineBreak = false, false

	t.measure = bsr.NewMeasure(line, number)
	if t.endingNumber > 0 {
		t.measure.AppendNumber(bsr.NewNumber(line, t.endingNumber, true))
		t.endingNumber = 0
	}
	t.line.AppendMeasure(t.measure)
}

func (t *translator) VisitMeasureEnd(*msr.Measure) error {
	if t.hidden == 0 {
		t.line.FitLastElement()
	}
	return nil
}

func (t *translator) VisitLineBreakStart(*msr.LineBreak) error {
	t.pendingLineBreak = true
	return nil
}

func (t *translator) VisitPageBreakStart(*msr.PageBreak) error {
	t.pendingPageBreak = true
	return nil
}

func (t *translator) VisitRepeatEndingStart(e *msr.RepeatEnding) error {
	t.endingNumber = e.InternalNumber()
	first, _, _ := strings.Cut(e.Number(), ",")
	if n, err := strconv.Atoi(strings.TrimSpace(first)); err == nil && n > 0 {
		t.endingNumber = n
	}
	return nil
}

func (t *translator) VisitMultipleMeasureRestStart(mmr *msr.MultipleMeasureRest) error {
	line := mmr.InputLineNumber()
	first := ""
	if ms := mmr.Measures(); len(ms) > 0 {
		first = ms[0].Number()
	}
	t.startMeasure(line, first)
	t.measure.AppendNumber(bsr.NewNumber(line, mmr.MeasuresNumber(), true))
	t.measure.AppendNote(bsr.NewNote(line, bsr.NoteSpec{Step: bsr.StepRest, Duration: bsr.DurationWhole}))
	t.line.FitLastElement()
	t.hidden++
	return nil
}

func (t *translator) VisitMultipleMeasureRestEnd(*msr.MultipleMeasureRest) error {
	t.hidden--
	return nil
}

func (t *translator) VisitClefStart(c *msr.Clef) error {
	if t.hidden > 0 || !t.opts.IncludeClefs {
		return nil
	}
	kind, ok := clefKinds[c.Kind()]
	if !ok {
		t.Warn(c.InputLineNumber(), "clef %s has no Braille equivalent, ignoring it", c.Kind())
		return nil
	}
	t.measure.AppendClef(bsr.NewClef(c.InputLineNumber(), kind))
	return nil
}

func (t *translator) VisitKeyStart(k *msr.Key) error {
	if t.hidden > 0 {
		return nil
	}
	key := bsr.NewKeyFromFifths(k.InputLineNumber(), k.Fifths())
	if !t.keySeen {
		t.keySeen = true
		t.musicHeading.SetKey(key)
		return nil
	}
	t.line.AppendKey(key)
	return nil
}

func (t *translator) VisitTimeSignatureStart(ts *msr.TimeSignature) error {
	if t.hidden > 0 {
		return nil
	}
	line := ts.InputLineNumber()
	kind, ok := timeKinds[ts.Symbol()]
	if !ok {
		kind = bsr.TimeSignatureNumerical
	}
	items := make([]bsr.TimeSignatureItem, 0, len(ts.Items()))
	for _, it := range ts.Items() {
		items = append(items, bsr.TimeSignatureItem{BeatsNumbers: it.BeatsNumbers, BeatValue: it.BeatValue})
	}
	bts := bsr.NewTimeSignature(line, kind, items...)
	for _, w := range bts.Warnings() {
		t.Warn(line, "%s", w)
	}

	t.octaveReset = true
	if !t.timeSeen {
		t.timeSeen = true
		t.musicHeading.SetTimeSignature(bts)
		return nil
	}
	return t.line.InsertTimeBeforeLastElement(bts)
}

func (t *translator) VisitTempoStart(tm *msr.Tempo) error {
	if t.hidden > 0 || t.opts.NoTempos {
		return nil
	}
	line := tm.InputLineNumber()
	kind, ok := tempoKinds[tm.Kind()]
	if !ok {
		return nil
	}
	spec := bsr.TempoSpec{
		Kind:         kind,
		Words:        tm.Words(),
		BeatUnitDots: tm.BeatUnitDots(),
		PerMinute:    tm.PerMinute(),
	}
	if kind == bsr.TempoPerMinute {
		d, ok := durations[tm.BeatUnit()]
		if !ok {
			t.Warn(line, "tempo beat unit %s has no Braille equivalent, ignoring the tempo", tm.BeatUnit())
			return nil
		}
		spec.BeatUnit = d
	}
	btm, err := bsr.NewTempo(line, spec)
	if err != nil {
		return mferrors.Wrapf(err, "tempo at line %d", line)
	}

	if !t.noteSeen && !t.tempoSeen {
		t.musicHeading.SetTempo(btm)
	} else {
		t.line.AppendTempo(btm)
	}
	t.tempoSeen = true
	return nil
}

func (t *translator) VisitBarLineStart(b *msr.BarLine) error {
	if t.hidden > 0 {
		return nil
	}
	switch b.Style() {
	case msr.BarLineStyleNone, msr.BarLineStyleRegular:
		return nil
	}
	kind, ok := barLineKinds[b.Style()]
	if !ok {
		t.Warn(b.InputLineNumber(), "bar line style %s has no Braille equivalent, ignoring it", b.Style())
		return nil
	}
	t.measure.AppendBarLine(bsr.NewBarLine(b.InputLineNumber(), kind))
	return nil
}

func (t *translator) VisitChordStart(c *msr.Chord) error {
	if t.hidden > 0 {
		return nil
	}
	t.Warn(c.InputLineNumber(), "chords are written as their first note only")
	t.inChord, t.chordStarted = true, false
	return nil
}

func (t *translator) VisitChordEnd(*msr.Chord) error {
	t.inChord = false
	return nil
}

func (t *translator) VisitNoteStart(n *msr.Note) error {
	t.skipping = true
	if t.hidden > 0 || n.IsSkip() {
		return nil
	}
	if t.inChord {
		if t.chordStarted {
			return nil
		}
		t.chordStarted = true
	}

	line := n.InputLineNumber()
	d, ok := durations[n.Duration()]
	if !ok {
		t.Warn(line, "note duration %s has no Braille equivalent, ignoring the note", n.Duration())
		return nil
	}

	spec := bsr.NoteSpec{Duration: d, Dots: n.Dots()}
	if n.IsRest() {
		spec.Step = bsr.StepRest
	} else {
		spec.Step = steps[n.Step()]
		spec.Octave = bsr.OctaveFromNumber(n.Octave())
		spec.OctaveIsNeeded = t.octaveIsNeeded(n)
		spec.Accidental = accidentals[n.Accidental()]
		t.lastNote = n
		t.octaveReset = false
	}

	if t.opts.NoteValueSize {
		if size := bsr.ValueSizeOf(d); size != t.valueSize {
			spec.ValueSizeIsNeeded = true
			t.valueSize = size
		}
	}

	t.measure.AppendNote(bsr.NewNote(line, spec))
	t.noteSeen = true
	t.skipping = false
	return nil
}

func (t *translator) VisitNoteEnd(*msr.Note) error {
	t.skipping = false
	return nil
}

func (t *translator) octaveIsNeeded(n *msr.Note) bool {
	if t.octaveReset || t.lastNote == nil {
		return true
	}
	interval := n.DiatonicIndex() - t.lastNote.DiatonicIndex()
	return octaveMarkNeeded(interval, n.Octave() != t.lastNote.Octave())
}

func (t *translator) VisitDynamicStart(d *msr.Dynamic) error {
	if t.skipping || t.hidden > 0 {
		return nil
	}
	kind, ok := bsr.DynamicKindFromString(d.Kind().String())
	if !ok {
		t.Warn(d.InputLineNumber(), "dynamic %s has no Braille equivalent, ignoring it", d.Kind())
		return nil
	}
	t.measure.AppendDynamic(bsr.NewDynamic(d.InputLineNumber(), kind))
	return nil
}

func (t *translator) VisitWordsStart(w *msr.Words) error {
	if t.skipping || t.hidden > 0 {
		return nil
	}
	t.measure.AppendWords(bsr.NewWords(w.InputLineNumber(), w.Contents()))
	t.octaveReset = true
	return nil
}
