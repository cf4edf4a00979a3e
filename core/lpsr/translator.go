package lpsr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/core/rational"
)

// translator builds the LilyPond music of each voice while an MSR score is
// browsed. music is a stack of the sequences being filled: the voice, then
// the repeat parts and tuplets open in it.
type translator struct {
	*msr.Context

	result *Score
	part   *Part
	staff  *Staff
	voice  *Voice
	lyrics *Lyrics

	music   []*Seq
	repeats []*Repeat
	chord   *Chord

	measureLength rational.Rational
	hidden        int
}

func newTranslator(ctx *msr.Context) *translator {
	return &translator{Context: ctx, measureLength: rational.FromInt(1)}
}

func (t *translator) top() *Seq { return t.music[len(t.music)-1] }

func (t *translator) push(s *Seq) { t.music = append(t.music, s) }

func (t *translator) pop(line int, what string) (*Seq, error) {
	if len(t.music) < 2 {
		return nil, t.InternalError(line, "%s closes no open music", what)
	}
	s := t.top()
	t.music = t.music[:len(t.music)-1]
	return s, nil
}

// emit appends e to the innermost open music, unless inside a part of the
// score that is not written out.
func (t *translator) emit(e Elem) {
	if t.hidden == 0 {
		t.top().Append(e)
	}
}

func (t *translator) VisitScoreStart(s *msr.Score) error {
	id := s.Identification()
	t.result = &Score{
		msr:    s,
		header: Header{Title: id.Title(), Composer: id.Composer, Rights: id.Rights},
	}
	return nil
}

func (t *translator) VisitPartStart(p *msr.Part) error {
	t.part = &Part{ID: p.ID(), Name: p.Name()}
	t.result.parts = append(t.result.parts, t.part)
	return nil
}

func (t *translator) VisitStaffStart(st *msr.Staff) error {
	t.staff = &Staff{Number: st.Number()}
	t.part.Staves = append(t.part.Staves, t.staff)
	return nil
}

func (t *translator) VisitVoiceStart(v *msr.Voice) error {
	t.voice = &Voice{
		Name:  variableName("part", t.part.ID, "staff", fmt.Sprint(t.staff.Number), "voice", fmt.Sprint(v.Number())),
		Music: &Seq{},
	}
	t.staff.Voices = append(t.staff.Voices, t.voice)
	t.music = []*Seq{t.voice.Music}
	t.measureLength = rational.FromInt(1)
	return nil
}

func (t *translator) VisitVoiceEnd(v *msr.Voice) error {
	if len(t.music) != 1 || len(t.repeats) != 0 || t.hidden != 0 {
		return t.InternalError(v.InputLineNumber(), "voice %s ends with %d music sequences still open", v.Path(), len(t.music)-1)
	}
	return nil
}

func (t *translator) VisitMeasureEnd(*msr.Measure) error {
	t.emit(BarCheck{})
	return nil
}

func (t *translator) VisitNoteStart(n *msr.Note) error {
	if t.hidden > 0 {
		return nil
	}
	post := postEvents{Tie: n.Tie() == msr.TieStart || n.Tie() == msr.TieContinue}
	for _, d := range n.Dynamics() {
		post.Post = append(post.Post, dynamicEvent(d))
	}
	for _, w := range n.Words() {
		post.Post = append(post.Post, wordsEvent(w))
	}

	if t.chord != nil {
		t.chord.Pitches = append(t.chord.Pitches, pitchOf(n))
		t.chord.Tie = t.chord.Tie || post.Tie
		t.chord.Post = append(t.chord.Post, post.Post...)
		return nil
	}

	dur := durationOf(n.Duration(), n.Dots(), n.DisplayWholeNotes())
	switch {
	case n.IsRest():
		t.emit(Rest{Duration: dur, postEvents: post})
	case n.IsSkip():
		t.emit(Skip{Duration: dur})
	default:
		t.emit(Note{Pitch: pitchOf(n), Duration: dur, postEvents: post})
	}
	return nil
}

func (t *translator) VisitChordStart(c *msr.Chord) error {
	if t.hidden == 0 {
		t.chord = &Chord{Duration: durationOf(c.Duration(), c.Dots(), c.SoundingWholeNotes())}
	}
	return nil
}

func (t *translator) VisitChordEnd(*msr.Chord) error {
	if t.chord != nil {
		c := *t.chord
		t.chord = nil
		t.emit(c)
	}
	return nil
}

func (t *translator) VisitTupletStart(tu *msr.Tuplet) error {
	if t.hidden == 0 {
		music := &Seq{}
		t.emit(&Tuplet{Actual: tu.Actual(), Normal: tu.Normal(), Music: music})
		t.push(music)
	}
	return nil
}

func (t *translator) VisitTupletEnd(tu *msr.Tuplet) error {
	if t.hidden > 0 {
		return nil
	}
	_, err := t.pop(tu.InputLineNumber(), "tuplet")
	return err
}

func (t *translator) VisitClefStart(c *msr.Clef) error {
	name, ok := clefNames[c.Kind()]
	if !ok {
		return nil
	}
	t.emit(Command(`\clef ` + quote(name)))
	return nil
}

func (t *translator) VisitKeyStart(k *msr.Key) error {
	t.emit(keyCommand(k))
	return nil
}

func (t *translator) VisitTimeSignatureStart(ts *msr.TimeSignature) error {
	cmd, length, ok := timeCommand(ts)
	if !ok {
		t.Warn(ts.InputLineNumber(), "time signature %s has no LilyPond equivalent, ignoring it", ts.ShortString())
		return nil
	}
	t.measureLength = length
	t.emit(cmd)
	return nil
}

// VisitBarLineStart writes the bar lines that are not implied by bar
// checks or repeats.
func (t *translator) VisitBarLineStart(b *msr.BarLine) error {
	if b.RepeatDirection() != msr.RepeatDirectionNone {
		return nil
	}
	if glyph, ok := barLineGlyphs[b.Style()]; ok {
		t.emit(Command(`\bar ` + quote(glyph)))
	}
	return nil
}

func (t *translator) VisitTempoStart(tempo *msr.Tempo) error {
	t.emit(tempoCommand(tempo))
	return nil
}

func (t *translator) VisitRehearsalMarkStart(r *msr.RehearsalMark) error {
	t.emit(Command(`\mark ` + quote(r.Text())))
	return nil
}

func (t *translator) VisitLineBreakStart(*msr.LineBreak) error {
	t.emit(Command(`\break`))
	return nil
}

func (t *translator) VisitPageBreakStart(*msr.PageBreak) error {
	t.emit(Command(`\pageBreak`))
	return nil
}

func (t *translator) VisitRepeatStart(r *msr.Repeat) error {
	if t.hidden > 0 {
		return nil
	}
	t.repeats = append(t.repeats, &Repeat{Kind: RepeatVolta, Times: max(r.Times(), 2), Music: &Seq{}})
	return nil
}

func (t *translator) VisitRepeatEnd(r *msr.Repeat) error {
	if t.hidden > 0 {
		return nil
	}
	if len(t.repeats) == 0 {
		return t.InternalError(r.InputLineNumber(), "repeat end without a repeat start")
	}
	rep := t.repeats[len(t.repeats)-1]
	t.repeats = t.repeats[:len(t.repeats)-1]
	rep.Times = max(rep.Times, len(rep.Alternatives))
	t.emit(rep)
	return nil
}

func (t *translator) VisitRepeatCommonPartStart(*msr.RepeatCommonPart) error {
	if t.hidden == 0 {
		t.push(t.repeats[len(t.repeats)-1].Music)
	}
	return nil
}

func (t *translator) VisitRepeatCommonPartEnd(cp *msr.RepeatCommonPart) error {
	if t.hidden > 0 {
		return nil
	}
	_, err := t.pop(cp.InputLineNumber(), "repeat common part")
	return err
}

func (t *translator) VisitRepeatEndingStart(*msr.RepeatEnding) error {
	if t.hidden == 0 {
		rep := t.repeats[len(t.repeats)-1]
		alt := &Seq{}
		rep.Alternatives = append(rep.Alternatives, alt)
		t.push(alt)
	}
	return nil
}

func (t *translator) VisitRepeatEndingEnd(e *msr.RepeatEnding) error {
	if t.hidden > 0 {
		return nil
	}
	_, err := t.pop(e.InputLineNumber(), "repeat ending")
	return err
}

// Measure and beat repeats are written as percent repeats of their
// pattern; the replicas are not written out.

func (t *translator) VisitMeasureRepeatStart(*msr.MeasureRepeat) error {
	if t.hidden == 0 {
		t.repeats = append(t.repeats, &Repeat{Kind: RepeatPercent, Music: &Seq{}})
	}
	return nil
}

func (t *translator) VisitMeasureRepeatEnd(mr *msr.MeasureRepeat) error {
	if t.hidden > 0 {
		return nil
	}
	replicas, err := mr.ReplicasNumber()
	if err != nil {
		return err
	}
	return t.closePercent(mr.InputLineNumber(), replicas)
}

func (t *translator) VisitBeatRepeatStart(*msr.BeatRepeat) error {
	if t.hidden == 0 {
		t.repeats = append(t.repeats, &Repeat{Kind: RepeatPercent, Music: &Seq{}})
	}
	return nil
}

func (t *translator) VisitBeatRepeatEnd(br *msr.BeatRepeat) error {
	if t.hidden > 0 {
		return nil
	}
	replicas, err := br.ReplicasNumber()
	if err != nil {
		return err
	}
	return t.closePercent(br.InputLineNumber(), replicas)
}

func (t *translator) closePercent(line, replicas int) error {
	if len(t.repeats) == 0 {
		return t.InternalError(line, "percent repeat end without a start")
	}
	rep := t.repeats[len(t.repeats)-1]
	t.repeats = t.repeats[:len(t.repeats)-1]
	rep.Times = replicas + 1
	t.emit(rep)
	return nil
}

func (t *translator) VisitMeasureRepeatPatternStart(*msr.MeasureRepeatPattern) error {
	return t.openPattern()
}

func (t *translator) VisitMeasureRepeatPatternEnd(p *msr.MeasureRepeatPattern) error {
	return t.closePattern(p.InputLineNumber())
}

func (t *translator) VisitBeatRepeatPatternStart(*msr.BeatRepeatPattern) error {
	return t.openPattern()
}

func (t *translator) VisitBeatRepeatPatternEnd(p *msr.BeatRepeatPattern) error {
	return t.closePattern(p.InputLineNumber())
}

func (t *translator) openPattern() error {
	if t.hidden == 0 {
		t.push(t.repeats[len(t.repeats)-1].Music)
	}
	return nil
}

func (t *translator) closePattern(line int) error {
	if t.hidden > 0 {
		return nil
	}
	_, err := t.pop(line, "repeat pattern")
	return err
}

func (t *translator) VisitMeasureRepeatReplicasStart(*msr.MeasureRepeatReplicas) error {
	t.hidden++
	return nil
}

func (t *translator) VisitMeasureRepeatReplicasEnd(*msr.MeasureRepeatReplicas) error {
	t.hidden--
	return nil
}

func (t *translator) VisitBeatRepeatReplicasStart(*msr.BeatRepeatReplicas) error {
	t.hidden++
	return nil
}

func (t *translator) VisitBeatRepeatReplicasEnd(*msr.BeatRepeatReplicas) error {
	t.hidden--
	return nil
}

func (t *translator) VisitMultipleMeasureRestStart(mmr *msr.MultipleMeasureRest) error {
	t.emit(MultiRest{Measure: t.measureLength, Count: mmr.MeasuresNumber()})
	t.emit(BarCheck{})
	t.hidden++
	return nil
}

func (t *translator) VisitMultipleMeasureRestEnd(*msr.MultipleMeasureRest) error {
	t.hidden--
	return nil
}

func (t *translator) VisitStanzaStart(s *msr.Stanza) error {
	if !s.TextPresent() {
		t.lyrics = nil
		return nil
	}
	t.lyrics = &Lyrics{Name: t.voice.Name + "Lyrics" + variableName(s.Number())}
	t.voice.Lyrics = append(t.voice.Lyrics, t.lyrics)
	return nil
}

// VisitSyllableStart writes sung syllables, with hyphens between the
// syllables of a word. Notes without a syllable get a "_" skip; rests and
// layout markers are skipped by \lyricsto itself.
func (t *translator) VisitSyllableStart(s *msr.Syllable) error {
	if t.lyrics == nil {
		return nil
	}
	var text string
	switch s.Kind() {
	case msr.SyllableSingle, msr.SyllableEnd:
		text = quote(s.Text())
	case msr.SyllableBegin, msr.SyllableMiddle:
		text = quote(s.Text()) + " --"
	case msr.SyllableSkipNonRest:
		text = "_"
	default:
		return nil
	}
	t.lyrics.Syllables = append(t.lyrics.Syllables, text)
	return nil
}
