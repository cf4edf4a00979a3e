package msr

import "github.com/jacques-menu/musicformats-sub010/core/visit"

func (n *Score) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv ScoreStartVisitor) error { return sv.VisitScoreStart(n) })
}

func (n *Score) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev ScoreEndVisitor) error { return ev.VisitScoreEnd(n) })
}

func (n *PartGroup) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv PartGroupStartVisitor) error { return sv.VisitPartGroupStart(n) })
}

func (n *PartGroup) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev PartGroupEndVisitor) error { return ev.VisitPartGroupEnd(n) })
}

func (n *Part) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv PartStartVisitor) error { return sv.VisitPartStart(n) })
}

func (n *Part) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev PartEndVisitor) error { return ev.VisitPartEnd(n) })
}

func (n *Staff) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv StaffStartVisitor) error { return sv.VisitStaffStart(n) })
}

func (n *Staff) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev StaffEndVisitor) error { return ev.VisitStaffEnd(n) })
}

func (n *Voice) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv VoiceStartVisitor) error { return sv.VisitVoiceStart(n) })
}

func (n *Voice) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev VoiceEndVisitor) error { return ev.VisitVoiceEnd(n) })
}

func (n *Segment) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv SegmentStartVisitor) error { return sv.VisitSegmentStart(n) })
}

func (n *Segment) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev SegmentEndVisitor) error { return ev.VisitSegmentEnd(n) })
}

func (n *Measure) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv MeasureStartVisitor) error { return sv.VisitMeasureStart(n) })
}

func (n *Measure) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev MeasureEndVisitor) error { return ev.VisitMeasureEnd(n) })
}

func (n *Note) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv NoteStartVisitor) error { return sv.VisitNoteStart(n) })
}

func (n *Note) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev NoteEndVisitor) error { return ev.VisitNoteEnd(n) })
}

func (n *Chord) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv ChordStartVisitor) error { return sv.VisitChordStart(n) })
}

func (n *Chord) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev ChordEndVisitor) error { return ev.VisitChordEnd(n) })
}

func (n *Tuplet) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv TupletStartVisitor) error { return sv.VisitTupletStart(n) })
}

func (n *Tuplet) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev TupletEndVisitor) error { return ev.VisitTupletEnd(n) })
}

func (n *Clef) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv ClefStartVisitor) error { return sv.VisitClefStart(n) })
}

func (n *Clef) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev ClefEndVisitor) error { return ev.VisitClefEnd(n) })
}

func (n *Key) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv KeyStartVisitor) error { return sv.VisitKeyStart(n) })
}

func (n *Key) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev KeyEndVisitor) error { return ev.VisitKeyEnd(n) })
}

func (n *TimeSignature) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv TimeSignatureStartVisitor) error { return sv.VisitTimeSignatureStart(n) })
}

func (n *TimeSignature) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev TimeSignatureEndVisitor) error { return ev.VisitTimeSignatureEnd(n) })
}

func (n *ClefKeyTimeSignatureGroup) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv ClefKeyTimeSignatureGroupStartVisitor) error { return sv.VisitClefKeyTimeSignatureGroupStart(n) })
}

func (n *ClefKeyTimeSignatureGroup) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev ClefKeyTimeSignatureGroupEndVisitor) error { return ev.VisitClefKeyTimeSignatureGroupEnd(n) })
}

func (n *BarLine) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv BarLineStartVisitor) error { return sv.VisitBarLineStart(n) })
}

func (n *BarLine) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev BarLineEndVisitor) error { return ev.VisitBarLineEnd(n) })
}

func (n *Tempo) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv TempoStartVisitor) error { return sv.VisitTempoStart(n) })
}

func (n *Tempo) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev TempoEndVisitor) error { return ev.VisitTempoEnd(n) })
}

func (n *LineBreak) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv LineBreakStartVisitor) error { return sv.VisitLineBreakStart(n) })
}

func (n *LineBreak) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev LineBreakEndVisitor) error { return ev.VisitLineBreakEnd(n) })
}

func (n *PageBreak) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv PageBreakStartVisitor) error { return sv.VisitPageBreakStart(n) })
}

func (n *PageBreak) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev PageBreakEndVisitor) error { return ev.VisitPageBreakEnd(n) })
}

func (n *RehearsalMark) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv RehearsalMarkStartVisitor) error { return sv.VisitRehearsalMarkStart(n) })
}

func (n *RehearsalMark) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev RehearsalMarkEndVisitor) error { return ev.VisitRehearsalMarkEnd(n) })
}

func (n *Dynamic) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv DynamicStartVisitor) error { return sv.VisitDynamicStart(n) })
}

func (n *Dynamic) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev DynamicEndVisitor) error { return ev.VisitDynamicEnd(n) })
}

func (n *Words) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv WordsStartVisitor) error { return sv.VisitWordsStart(n) })
}

func (n *Words) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev WordsEndVisitor) error { return ev.VisitWordsEnd(n) })
}

func (n *Repeat) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv RepeatStartVisitor) error { return sv.VisitRepeatStart(n) })
}

func (n *Repeat) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev RepeatEndVisitor) error { return ev.VisitRepeatEnd(n) })
}

func (n *RepeatCommonPart) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv RepeatCommonPartStartVisitor) error { return sv.VisitRepeatCommonPartStart(n) })
}

func (n *RepeatCommonPart) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev RepeatCommonPartEndVisitor) error { return ev.VisitRepeatCommonPartEnd(n) })
}

func (n *RepeatEnding) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv RepeatEndingStartVisitor) error { return sv.VisitRepeatEndingStart(n) })
}

func (n *RepeatEnding) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev RepeatEndingEndVisitor) error { return ev.VisitRepeatEndingEnd(n) })
}

func (n *MeasureRepeat) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv MeasureRepeatStartVisitor) error { return sv.VisitMeasureRepeatStart(n) })
}

func (n *MeasureRepeat) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev MeasureRepeatEndVisitor) error { return ev.VisitMeasureRepeatEnd(n) })
}

func (n *MeasureRepeatPattern) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv MeasureRepeatPatternStartVisitor) error { return sv.VisitMeasureRepeatPatternStart(n) })
}

func (n *MeasureRepeatPattern) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev MeasureRepeatPatternEndVisitor) error { return ev.VisitMeasureRepeatPatternEnd(n) })
}

func (n *MeasureRepeatReplicas) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv MeasureRepeatReplicasStartVisitor) error { return sv.VisitMeasureRepeatReplicasStart(n) })
}

func (n *MeasureRepeatReplicas) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev MeasureRepeatReplicasEndVisitor) error { return ev.VisitMeasureRepeatReplicasEnd(n) })
}

func (n *BeatRepeat) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv BeatRepeatStartVisitor) error { return sv.VisitBeatRepeatStart(n) })
}

func (n *BeatRepeat) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev BeatRepeatEndVisitor) error { return ev.VisitBeatRepeatEnd(n) })
}

func (n *BeatRepeatPattern) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv BeatRepeatPatternStartVisitor) error { return sv.VisitBeatRepeatPatternStart(n) })
}

func (n *BeatRepeatPattern) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev BeatRepeatPatternEndVisitor) error { return ev.VisitBeatRepeatPatternEnd(n) })
}

func (n *BeatRepeatReplicas) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv BeatRepeatReplicasStartVisitor) error { return sv.VisitBeatRepeatReplicasStart(n) })
}

func (n *BeatRepeatReplicas) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev BeatRepeatReplicasEndVisitor) error { return ev.VisitBeatRepeatReplicasEnd(n) })
}

func (n *MultipleMeasureRest) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv MultipleMeasureRestStartVisitor) error { return sv.VisitMultipleMeasureRestStart(n) })
}

func (n *MultipleMeasureRest) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev MultipleMeasureRestEndVisitor) error { return ev.VisitMultipleMeasureRestEnd(n) })
}

func (n *Stanza) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv StanzaStartVisitor) error { return sv.VisitStanzaStart(n) })
}

func (n *Stanza) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev StanzaEndVisitor) error { return ev.VisitStanzaEnd(n) })
}

func (n *Syllable) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv SyllableStartVisitor) error { return sv.VisitSyllableStart(n) })
}

func (n *Syllable) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev SyllableEndVisitor) error { return ev.VisitSyllableEnd(n) })
}
