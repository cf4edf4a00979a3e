package musicxml

import (
	"math"
	"strconv"

	"github.com/antchfx/xmlquery"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/core/rational"
	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

// voiceState is what a part builder keeps for one voice while a measure is
// read.
type voiceState struct {
	pb          *partBuilder
	voice       *msr.Voice
	staffNumber int

	measure  *msr.Measure
	previous *msr.Measure

	// notes read but not placed yet: a note and the notes of its chord
	group  []*msr.Note
	tuplet *msr.Tuplet
	// the tuplet is placed once group is
	closeTuplet bool

	// directions waiting for the next note
	dynamics []*msr.Dynamic
	words    []*msr.Words

	// notes of the measure with their lyric elements, handled once the
	// measure is complete and the positions are known
	sung []sungNote
}

type sungNote struct {
	note   *msr.Note
	lyrics []*xmlquery.Node
}

func (vs *voiceState) startMeasure(line int, number string) {
	vs.measure = msr.NewMeasure(line, number)
	vs.sung = nil
}

// append places e in the measure after the notes read so far.
func (vs *voiceState) append(e msr.MeasureElement) {
	vs.flush()
	vs.measure.AppendElement(e)
}

// flush places the pending note or chord, in the open tuplet if any.
func (vs *voiceState) flush() {
	if len(vs.group) == 0 {
		return
	}
	first := vs.group[0]
	var chord *msr.Chord
	if len(vs.group) > 1 {
		chord = msr.NewChord(first.InputLineNumber(), first.Duration(), first.Dots(), first.SoundingWholeNotes())
	}

	switch {
	case vs.tuplet != nil && chord != nil:
		vs.tuplet.AppendChord(chord)
	case vs.tuplet != nil:
		vs.tuplet.AppendNote(first)
	case chord != nil:
		vs.measure.AppendElement(chord)
	default:
		vs.measure.AppendElement(first)
	}
	if chord != nil {
		for _, n := range vs.group {
			chord.AppendNote(n)
		}
	}
	vs.group = nil

	if vs.tuplet != nil && vs.closeTuplet {
		vs.measure.AppendElement(vs.tuplet)
		vs.tuplet, vs.closeTuplet = nil, false
	}
}

// endMeasure hands the measure over to the voice, between the repeat and
// ending events of its bar lines.
func (vs *voiceState) endMeasure(line int) error {
	vs.flush()
	if vs.tuplet != nil {
		vs.pb.ctx.Warn(vs.tuplet.InputLineNumber(), "tuplet is not stopped before the end of measure %s, closing it", vs.measure.Number())
		vs.measure.AppendElement(vs.tuplet)
		vs.tuplet, vs.closeTuplet = nil, false
	}
	if err := vs.lyrics(line); err != nil {
		return err
	}

	for _, ev := range vs.pb.left {
		if err := ev(vs.voice); err != nil {
			return err
		}
	}
	if err := vs.voice.AppendMeasure(vs.measure); err != nil {
		return err
	}
	for _, ev := range vs.pb.right {
		if err := ev(vs.voice); err != nil {
			return err
		}
	}
	vs.previous = vs.measure
	return nil
}

func (pb *partBuilder) note(el *xmlquery.Node) error {
	line := el.LineNumber
	if child(el, "grace") != nil || child(el, "cue") != nil {
		logging.Debug("skipping MusicXML grace or cue note", "line", line)
		return nil
	}
	vs := pb.voiceOf(el)

	spec, err := noteSpec(el)
	if err != nil {
		return err
	}
	spec.SoundingWholeNotes = pb.wholeNotes(integer(el, "duration", 0))
	n := msr.NewNote(line, spec)

	for _, d := range vs.dynamics {
		n.AppendDynamic(d)
	}
	for _, w := range vs.words {
		n.AppendWords(w)
	}
	vs.dynamics, vs.words = nil, nil

	notations := child(el, "notations")
	for _, dn := range childrenNamed(notations, "dynamics") {
		for _, d := range dynamics(dn, msr.PlacementNone) {
			n.AppendDynamic(d)
		}
	}

	if child(el, "chord") != nil && len(vs.group) > 0 {
		vs.group = append(vs.group, n)
		return nil
	}
	vs.flush()
	vs.group = []*msr.Note{n}

	for _, tn := range childrenNamed(notations, "tuplet") {
		switch tn.SelectAttr("type") {
		case "start":
			if vs.tuplet == nil {
				tm := child(el, "time-modification")
				vs.tuplet = msr.NewTuplet(tn.LineNumber, integer(tm, "actual-notes", 3), integer(tm, "normal-notes", 2))
			}
		case "stop":
			vs.closeTuplet = vs.tuplet != nil
		}
	}

	if lyrics := childrenNamed(el, "lyric"); len(lyrics) > 0 || len(vs.voice.Stanzas()) > 0 {
		vs.sung = append(vs.sung, sungNote{note: n, lyrics: lyrics})
	}
	return nil
}

func noteSpec(el *xmlquery.Node) (msr.NoteSpec, error) {
	spec := msr.NoteSpec{Dots: len(childrenNamed(el, "dot"))}
	spec.Duration, _ = msr.DurationKindFromString(text(el, "type"))
	if acc := text(el, "accidental"); acc != "" {
		spec.Accidental = msr.AccidentalKindFromString(acc)
	}

	var start, stop bool
	for _, tn := range childrenNamed(el, "tie") {
		switch tn.SelectAttr("type") {
		case "start":
			start = true
		case "stop":
			stop = true
		}
	}
	switch {
	case start && stop:
		spec.Tie = msr.TieContinue
	case start:
		spec.Tie = msr.TieStart
	case stop:
		spec.Tie = msr.TieStop
	}

	var stepText string
	switch {
	case child(el, "rest") != nil:
		spec.Kind = msr.NoteRest
		return spec, nil
	case child(el, "unpitched") != nil:
		u := child(el, "unpitched")
		spec.Kind = msr.NoteUnpitched
		stepText = text(u, "display-step")
		spec.Octave = integer(u, "display-octave", 4)
	default:
		p := child(el, "pitch")
		if p == nil {
			return spec, mferrors.NewMsr("", el.LineNumber, "note has neither pitch, unpitched nor rest")
		}
		stepText = text(p, "step")
		spec.Octave = integer(p, "octave", 4)
		if alter, err := strconv.ParseFloat(text(p, "alter"), 64); err == nil {
			spec.Alter = int(math.Round(alter))
		}
	}

	step, ok := msr.StepFromString(stepText)
	if !ok {
		return spec, mferrors.NewMsr("", el.LineNumber, "note step %q is not one of A to G", stepText)
	}
	spec.Step = step
	return spec, nil
}

// lyrics appends the syllables of the measure to the stanzas of the voice.
// A note without a syllable in a stanza gets a skip there, and every
// stanza gets a measure end.
func (vs *voiceState) lyrics(line int) error {
	for _, sn := range vs.sung {
		n := sn.note
		if n.Chord() != nil && n.Chord().Notes()[0] != n {
			continue
		}
		seen := make(map[string]bool)
		for _, ln := range sn.lyrics {
			number := ln.SelectAttr("number")
			if number == "" {
				number = "1"
			}
			seen[number] = true
			kind, ok := msr.SyllableKindFromString(text(ln, "syllabic"))
			if !ok {
				kind = msr.SyllableSingle
			}
			var texts []string
			for _, tn := range childrenNamed(ln, "text") {
				texts = append(texts, tn.InnerText())
			}
			switch {
			case len(texts) == 0:
				kind = msr.SyllableSkipNonRest
			case n.IsRest():
				kind = msr.SyllableOnRest
			}
			syl := msr.NewSyllable(ln.LineNumber, kind, n.SoundingWholeNotes(), texts...)
			stanza := vs.voice.StanzaOrCreate(ln.LineNumber, number)
			if err := stanza.AppendSyllable(syl, vs.measure, n.PositionInMeasure()); err != nil {
				return err
			}
			syl.AttachToNote(n)
		}

		for _, stanza := range vs.voice.Stanzas() {
			if seen[stanza.Number()] {
				continue
			}
			kind := msr.SyllableSkipNonRest
			if n.IsRest() {
				kind = msr.SyllableSkipRest
			}
			syl := msr.NewSyllable(n.InputLineNumber(), kind, n.SoundingWholeNotes())
			if err := stanza.AppendSyllable(syl, vs.measure, n.PositionInMeasure()); err != nil {
				return err
			}
		}
	}

	for _, stanza := range vs.voice.Stanzas() {
		if err := stanza.AppendSyllable(msr.NewSyllable(line, msr.SyllableMeasureEnd, rational.Zero), vs.measure, rational.Zero); err != nil {
			return err
		}
	}
	return nil
}
