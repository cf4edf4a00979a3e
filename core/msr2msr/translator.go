package msr2msr

import (
	"fmt"
	"slices"

	"github.com/jacques-menu/musicformats-sub010/core/msr"
)

// translator rebuilds an MSR score from newborn clones while the source is
// browsed. Voice-level copies go to the top of containers; measure-level
// ones to the top of elements, or to the measure.
type translator struct {
	*msr.Context
	opts Options

	result    *msr.Score
	partGroup *msr.PartGroup
	part      *msr.Part
	staff     *msr.Staff
	voice     *msr.Voice

	containers    []msr.VoiceElementAppender
	repeats       []*msr.Repeat // copies of the open repeats
	measureRepeat *msr.MeasureRepeat
	beatRepeat    *msr.BeatRepeat
	multiRest     *msr.MultipleMeasureRest
	segment       *msr.Segment

	measure  *msr.Measure
	elements []msr.MeasureElement // open chords and tuplets
	group    *msr.ClefKeyTimeSignatureGroup
	note     *msr.Note
	pending  []msr.MeasureElement // converted marks waiting for their note

	// per voice, for stanzas browsed after the measures
	notes    map[*msr.Note]*msr.Note
	measures map[string]*msr.Measure

	stanza *msr.Stanza

	forwardRepeatPending bool
}

func newTranslator(ctx *msr.Context, opts Options) *translator {
	return &translator{Context: ctx, opts: opts}
}

func (t *translator) VisitScoreStart(s *msr.Score) error {
	t.result = s.NewbornClone()
	return nil
}

func (t *translator) VisitPartGroupStart(g *msr.PartGroup) error {
	t.partGroup = g.NewbornClone(t.result)
	t.result.AppendPartGroup(t.partGroup)
	return nil
}

func (t *translator) VisitPartStart(p *msr.Part) error {
	t.part = p.NewbornClone(t.partGroup)
	t.partGroup.AppendPart(t.part)
	return nil
}

func (t *translator) VisitStaffStart(st *msr.Staff) error {
	t.staff = st.NewbornClone(t.part)
	t.part.AppendStaff(t.staff)
	return nil
}

func (t *translator) VisitVoiceStart(v *msr.Voice) error {
	t.voice = v.NewbornClone(t.staff)
	t.voice.SetContext(t.Context)
	t.staff.AppendVoice(t.voice)
	t.containers = []msr.VoiceElementAppender{t.voice}
	t.notes = make(map[*msr.Note]*msr.Note)
	t.measures = make(map[string]*msr.Measure)
	return nil
}

func (t *translator) VisitVoiceEnd(v *msr.Voice) error {
	if len(t.containers) != 1 {
		return t.InternalError(v.InputLineNumber(),
			"voice %s ends with %d open containers", v.Path(), len(t.containers)-1)
	}
	t.containers = nil
	return nil
}

func (t *translator) container() msr.VoiceElementAppender {
	return t.containers[len(t.containers)-1]
}

func (t *translator) push(c msr.VoiceElementAppender) {
	t.containers = append(t.containers, c)
}

func (t *translator) pop() {
	t.containers = t.containers[:len(t.containers)-1]
}

func (t *translator) VisitSegmentStart(s *msr.Segment) error {
	t.segment = s.NewbornClone(t.voice)
	return nil
}

// VisitSegmentEnd appends the copy once its measures are known, since
// coalescing may split it.
func (t *translator) VisitSegmentEnd(s *msr.Segment) error {
	pieces := []msr.VoiceElement{t.segment}
	if t.coalescing() && hasRestRun(t.segment.Measures()) {
		var err error
		if pieces, err = t.coalesce(t.segment); err != nil {
			return err
		}
	}
	t.segment = nil
	for _, p := range pieces {
		if err := t.container().AppendVoiceElement(s.InputLineNumber(), p); err != nil {
			return err
		}
	}
	return nil
}

// coalescing reports whether the current segment may be split: patterns
// and replicas hold exactly one segment.
func (t *translator) coalescing() bool {
	if !t.opts.CoalesceEmptyMeasures {
		return false
	}
	switch t.container().(type) {
	case *msr.Voice, *msr.RepeatCommonPart, *msr.RepeatEnding:
		return true
	}
	return false
}

// coalesce splits s into segments and multiple measure rests, one for
// each run of at least two rest-only measures.
func (t *translator) coalesce(s *msr.Segment) ([]msr.VoiceElement, error) {
	measures := s.Measures()
	var pieces []msr.VoiceElement
	var current *msr.Segment

	for i := 0; i < len(measures); {
		j := i
		for j < len(measures) && isRestMeasure(measures[j]) {
			j++
		}
		if j-i >= 2 {
			mmr := msr.NewMultipleMeasureRest(measures[i].InputLineNumber(), 0, msr.UseSymbolsNo, t.voice)
			for _, m := range measures[i:j] {
				mmr.AppendMeasure(m)
			}
			if err := mmr.SetLastMeasurePuristNumber(); err != nil {
				return nil, err
			}
			pieces = append(pieces, mmr)
			current = nil
			i = j
			continue
		}

		if current == nil {
			current = msr.NewSegment(measures[i].InputLineNumber(), t.voice)
			pieces = append(pieces, current)
		}
		current.AppendMeasure(measures[i])
		i++
	}
	return pieces, nil
}

// hasRestRun reports whether measures hold two rest-only measures in a
// row.
func hasRestRun(measures []*msr.Measure) bool {
	for i := 1; i < len(measures); i++ {
		if isRestMeasure(measures[i-1]) && isRestMeasure(measures[i]) {
			return true
		}
	}
	return false
}

// isRestMeasure reports whether m holds rests and nothing else.
func isRestMeasure(m *msr.Measure) bool {
	elems := m.Elements()
	if len(elems) == 0 {
		return false
	}
	for _, e := range elems {
		n, ok := e.(*msr.Note)
		if !ok || !n.IsRest() {
			return false
		}
	}
	return true
}

func (t *translator) VisitRepeatStart(r *msr.Repeat) error {
	c := r.NewbornClone(t.voice)

	_, atVoice := t.container().(*msr.Voice)
	if t.opts.CreateImplicitInitialRepeatBarLine && !r.ExplicitStart() && atVoice && len(t.voice.Elements()) == 0 {
		c.SetExplicitStart(true)
		t.forwardRepeatPending = true
	}

	if err := t.container().AppendVoiceElement(r.InputLineNumber(), c); err != nil {
		return err
	}
	t.repeats = append(t.repeats, c)
	return nil
}

func (t *translator) VisitRepeatEnd(r *msr.Repeat) error {
	c := t.repeats[len(t.repeats)-1]
	t.repeats = t.repeats[:len(t.repeats)-1]
	if r.Phase() == msr.RepeatCompleted && c.Phase() != msr.RepeatCompleted {
		return c.Complete(r.InputLineNumber())
	}
	return nil
}

func (t *translator) repeat() *msr.Repeat {
	return t.repeats[len(t.repeats)-1]
}

func (t *translator) VisitRepeatCommonPartStart(cp *msr.RepeatCommonPart) error {
	c := cp.NewbornClone(t.repeat())
	if err := t.repeat().SetCommonPart(c); err != nil {
		return err
	}
	t.push(c)
	return nil
}

func (t *translator) VisitRepeatCommonPartEnd(*msr.RepeatCommonPart) error {
	t.pop()
	return nil
}

func (t *translator) VisitRepeatEndingStart(e *msr.RepeatEnding) error {
	c := e.NewbornClone(t.repeat())
	if err := t.repeat().AddEnding(c); err != nil {
		return err
	}
	t.push(c)
	return nil
}

func (t *translator) VisitRepeatEndingEnd(*msr.RepeatEnding) error {
	t.pop()
	return nil
}

func (t *translator) VisitMeasureRepeatStart(mr *msr.MeasureRepeat) error {
	t.measureRepeat = mr.NewbornClone(t.voice)
	return t.container().AppendVoiceElement(mr.InputLineNumber(), t.measureRepeat)
}

func (t *translator) VisitMeasureRepeatEnd(mr *msr.MeasureRepeat) error {
	c := t.measureRepeat
	t.measureRepeat = nil
	if mr.Phase() == msr.PatternCompleted {
		return c.Complete(mr.InputLineNumber())
	}
	return nil
}

func (t *translator) VisitMeasureRepeatPatternStart(p *msr.MeasureRepeatPattern) error {
	c := p.NewbornClone(t.measureRepeat)
	if err := t.measureRepeat.SetPattern(c); err != nil {
		return err
	}
	t.push(c)
	return nil
}

func (t *translator) VisitMeasureRepeatPatternEnd(*msr.MeasureRepeatPattern) error {
	t.pop()
	return nil
}

func (t *translator) VisitMeasureRepeatReplicasStart(r *msr.MeasureRepeatReplicas) error {
	c := r.NewbornClone(t.measureRepeat)
	if err := t.measureRepeat.SetReplicas(c); err != nil {
		return err
	}
	t.push(c)
	return nil
}

func (t *translator) VisitMeasureRepeatReplicasEnd(*msr.MeasureRepeatReplicas) error {
	t.pop()
	return nil
}

func (t *translator) VisitBeatRepeatStart(br *msr.BeatRepeat) error {
	t.beatRepeat = br.NewbornClone(t.voice)
	return t.container().AppendVoiceElement(br.InputLineNumber(), t.beatRepeat)
}

func (t *translator) VisitBeatRepeatEnd(br *msr.BeatRepeat) error {
	c := t.beatRepeat
	t.beatRepeat = nil
	if br.Phase() == msr.PatternCompleted {
		return c.Complete(br.InputLineNumber())
	}
	return nil
}

func (t *translator) VisitBeatRepeatPatternStart(p *msr.BeatRepeatPattern) error {
	c := p.NewbornClone(t.beatRepeat)
	if err := t.beatRepeat.SetPattern(c); err != nil {
		return err
	}
	t.push(c)
	return nil
}

func (t *translator) VisitBeatRepeatPatternEnd(*msr.BeatRepeatPattern) error {
	t.pop()
	return nil
}

func (t *translator) VisitBeatRepeatReplicasStart(r *msr.BeatRepeatReplicas) error {
	c := r.NewbornClone(t.beatRepeat)
	if err := t.beatRepeat.SetReplicas(c); err != nil {
		return err
	}
	t.push(c)
	return nil
}

func (t *translator) VisitBeatRepeatReplicasEnd(*msr.BeatRepeatReplicas) error {
	t.pop()
	return nil
}

func (t *translator) VisitMultipleMeasureRestStart(mmr *msr.MultipleMeasureRest) error {
	t.multiRest = mmr.NewbornClone(t.voice)
	return t.container().AppendVoiceElement(mmr.InputLineNumber(), t.multiRest)
}

func (t *translator) VisitMultipleMeasureRestEnd(mmr *msr.MultipleMeasureRest) error {
	c := t.multiRest
	t.multiRest = nil
	if mmr.LastMeasurePuristNumber() >= 0 {
		return c.SetLastMeasurePuristNumber()
	}
	return nil
}

func (t *translator) VisitMeasureStart(m *msr.Measure) error {
	switch {
	case t.multiRest != nil:
		t.measure = m.NewbornClone(nil)
		t.multiRest.AppendMeasure(t.measure)
	case t.segment != nil:
		t.measure = m.NewbornClone(t.segment)
		t.segment.AppendMeasure(t.measure)
	default:
		return t.InternalError(m.InputLineNumber(), "measure %s is outside any segment", m.Number())
	}
	t.measures[m.Number()] = t.measure

	if t.forwardRepeatPending {
		t.forwardRepeatPending = false
		t.measure.AppendElement(msr.NewBarLine(m.InputLineNumber(), msr.BarLineSpec{
			Location:        msr.BarLineLocationLeft,
			Style:           msr.BarLineStyleHeavyLight,
			RepeatDirection: msr.RepeatDirectionForward,
		}))
	}
	return nil
}

func (t *translator) VisitMeasureEnd(m *msr.Measure) error {
	t.flushPending()
	if slices.Contains(t.opts.InsertPageBreakAfterMeasure, m.Number()) {
		t.measure.AppendElement(msr.NewPageBreak(m.InputLineNumber()))
	}
	t.measure = nil
	return nil
}

func (t *translator) flushPending() {
	for _, e := range t.pending {
		t.measure.AppendElement(e)
	}
	t.pending = nil
}

// attach puts e into the innermost open chord or tuplet, or into the
// measure after the pending marks.
func (t *translator) attach(line int, e msr.MeasureElement) error {
	if len(t.elements) == 0 {
		t.flushPending()
		t.measure.AppendElement(e)
		return nil
	}

	switch parent := t.elements[len(t.elements)-1].(type) {
	case *msr.Chord:
		n, ok := e.(*msr.Note)
		if !ok {
			return t.InternalError(line, "chord cannot hold %s", e.ShortString())
		}
		parent.AppendNote(n)
	case *msr.Tuplet:
		switch x := e.(type) {
		case *msr.Note:
			parent.AppendNote(x)
		case *msr.Chord:
			parent.AppendChord(x)
		case *msr.Tuplet:
			parent.AppendTuplet(x)
		default:
			return t.InternalError(line, "tuplet cannot hold %s", e.ShortString())
		}
	}
	return nil
}

func (t *translator) VisitChordStart(c *msr.Chord) error {
	t.elements = append(t.elements, c.NewbornClone())
	return nil
}

func (t *translator) VisitChordEnd(c *msr.Chord) error {
	return t.closeElement(c.InputLineNumber())
}

func (t *translator) VisitTupletStart(tu *msr.Tuplet) error {
	t.elements = append(t.elements, tu.NewbornClone())
	return nil
}

func (t *translator) VisitTupletEnd(tu *msr.Tuplet) error {
	return t.closeElement(tu.InputLineNumber())
}

// closeElement attaches the innermost chord or tuplet, now complete.
func (t *translator) closeElement(line int) error {
	e := t.elements[len(t.elements)-1]
	t.elements = t.elements[:len(t.elements)-1]
	return t.attach(line, e)
}

func (t *translator) VisitNoteStart(n *msr.Note) error {
	t.note = n.NewbornClone()
	t.notes[n] = t.note
	return nil
}

func (t *translator) VisitNoteEnd(n *msr.Note) error {
	c := t.note
	t.note = nil
	return t.attach(n.InputLineNumber(), c)
}

func (t *translator) VisitDynamicStart(d *msr.Dynamic) error {
	t.note.AppendDynamic(d.Clone())
	return nil
}

func (t *translator) VisitWordsStart(w *msr.Words) error {
	if t.opts.ConvertWordsToTempo {
		t.pending = append(t.pending, msr.NewTempo(w.InputLineNumber(),
			msr.TempoSpec{Kind: msr.TempoWordsOnly, Words: w.Contents()}))
		return nil
	}
	t.note.AppendWords(w.Clone())
	return nil
}

func (t *translator) VisitClefKeyTimeSignatureGroupStart(g *msr.ClefKeyTimeSignatureGroup) error {
	t.group = g.NewbornClone()
	return nil
}

// VisitClefKeyTimeSignatureGroupEnd attaches the group once its members
// are set, and makes them current in the staff.
func (t *translator) VisitClefKeyTimeSignatureGroupEnd(g *msr.ClefKeyTimeSignatureGroup) error {
	c := t.group
	t.group = nil
	t.staff.RegisterGroup(c)
	return t.attach(g.InputLineNumber(), c)
}

func (t *translator) VisitClefStart(c *msr.Clef) error {
	t.group.SetClef(c.Clone())
	return nil
}

func (t *translator) VisitKeyStart(k *msr.Key) error {
	t.group.SetKey(k.Clone())
	return nil
}

func (t *translator) VisitTimeSignatureStart(ts *msr.TimeSignature) error {
	t.group.SetTimeSignature(ts.Clone())
	return nil
}

func (t *translator) VisitBarLineStart(b *msr.BarLine) error {
	return t.attach(b.InputLineNumber(), b.Clone())
}

func (t *translator) VisitTempoStart(tm *msr.Tempo) error {
	line := tm.InputLineNumber()
	if !t.opts.ConvertTemposToRehearsalMarks {
		return t.attach(line, tm.Clone())
	}
	text := tm.Words()
	if text == "" {
		text = fmt.Sprintf("%s = %s", tm.BeatUnit(), tm.PerMinute())
	}
	return t.attach(line, msr.NewRehearsalMark(line, text))
}

func (t *translator) VisitLineBreakStart(l *msr.LineBreak) error {
	return t.attach(l.InputLineNumber(), l.Clone())
}

func (t *translator) VisitPageBreakStart(p *msr.PageBreak) error {
	return t.attach(p.InputLineNumber(), p.Clone())
}

func (t *translator) VisitRehearsalMarkStart(r *msr.RehearsalMark) error {
	return t.attach(r.InputLineNumber(), r.Clone())
}

func (t *translator) VisitStanzaStart(s *msr.Stanza) error {
	t.stanza = s.NewbornClone(t.voice)
	t.voice.AppendStanza(t.stanza)
	return nil
}

func (t *translator) VisitStanzaEnd(*msr.Stanza) error {
	t.stanza = nil
	return nil
}

// VisitSyllableStart replays the syllable at the position it had, which
// keeps the copy aligned with the copied notes.
func (t *translator) VisitSyllableStart(syl *msr.Syllable) error {
	c := syl.Clone()
	if err := t.stanza.AppendSyllable(c, t.measures[syl.MeasureNumber()], syl.PositionInMeasure()); err != nil {
		return err
	}
	if n, ok := t.notes[syl.Note()]; ok {
		c.AttachToNote(n)
	}
	return nil
}
