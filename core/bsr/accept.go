package bsr

import "github.com/jacques-menu/musicformats-sub010/core/visit"

func (n *Score) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv ScoreStartVisitor) error { return sv.VisitScoreStart(n) })
}

func (n *Score) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev ScoreEndVisitor) error { return ev.VisitScoreEnd(n) })
}

func (n *TranscriptionNotes) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv TranscriptionNotesStartVisitor) error { return sv.VisitTranscriptionNotesStart(n) })
}

func (n *TranscriptionNotes) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev TranscriptionNotesEndVisitor) error { return ev.VisitTranscriptionNotesEnd(n) })
}

func (n *TranscriptionNote) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv TranscriptionNoteStartVisitor) error { return sv.VisitTranscriptionNoteStart(n) })
}

func (n *TranscriptionNote) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev TranscriptionNoteEndVisitor) error { return ev.VisitTranscriptionNoteEnd(n) })
}

func (n *Page) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv PageStartVisitor) error { return sv.VisitPageStart(n) })
}

func (n *Page) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev PageEndVisitor) error { return ev.VisitPageEnd(n) })
}

func (n *PageHeading) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv PageHeadingStartVisitor) error { return sv.VisitPageHeadingStart(n) })
}

func (n *PageHeading) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev PageHeadingEndVisitor) error { return ev.VisitPageHeadingEnd(n) })
}

func (n *MusicHeading) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv MusicHeadingStartVisitor) error { return sv.VisitMusicHeadingStart(n) })
}

func (n *MusicHeading) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev MusicHeadingEndVisitor) error { return ev.VisitMusicHeadingEnd(n) })
}

func (n *Line) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv LineStartVisitor) error { return sv.VisitLineStart(n) })
}

func (n *Line) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev LineEndVisitor) error { return ev.VisitLineEnd(n) })
}

func (n *LineContents) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv LineContentsStartVisitor) error { return sv.VisitLineContentsStart(n) })
}

func (n *LineContents) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev LineContentsEndVisitor) error { return ev.VisitLineContentsEnd(n) })
}

func (n *Measure) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv MeasureStartVisitor) error { return sv.VisitMeasureStart(n) })
}

func (n *Measure) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev MeasureEndVisitor) error { return ev.VisitMeasureEnd(n) })
}

func (n *Spaces) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv SpacesStartVisitor) error { return sv.VisitSpacesStart(n) })
}

func (n *Spaces) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev SpacesEndVisitor) error { return ev.VisitSpacesEnd(n) })
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

func (n *BarLine) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv BarLineStartVisitor) error { return sv.VisitBarLineStart(n) })
}

func (n *BarLine) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev BarLineEndVisitor) error { return ev.VisitBarLineEnd(n) })
}

func (n *Note) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv NoteStartVisitor) error { return sv.VisitNoteStart(n) })
}

func (n *Note) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev NoteEndVisitor) error { return ev.VisitNoteEnd(n) })
}

func (n *Number) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv NumberStartVisitor) error { return sv.VisitNumberStart(n) })
}

func (n *Number) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev NumberEndVisitor) error { return ev.VisitNumberEnd(n) })
}

func (n *Words) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv WordsStartVisitor) error { return sv.VisitWordsStart(n) })
}

func (n *Words) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev WordsEndVisitor) error { return ev.VisitWordsEnd(n) })
}

func (n *Dynamic) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv DynamicStartVisitor) error { return sv.VisitDynamicStart(n) })
}

func (n *Dynamic) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev DynamicEndVisitor) error { return ev.VisitDynamicEnd(n) })
}

func (n *Tempo) AcceptIn(v visit.Visitor) error {
	return visit.Dispatch(v, func(sv TempoStartVisitor) error { return sv.VisitTempoStart(n) })
}

func (n *Tempo) AcceptOut(v visit.Visitor) error {
	return visit.Dispatch(v, func(ev TempoEndVisitor) error { return ev.VisitTempoEnd(n) })
}
