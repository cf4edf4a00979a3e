package msr

// Per-kind visitor interfaces. A visitor implements the ones it wants to
// be called for; see package visit.

type ScoreStartVisitor interface{ VisitScoreStart(*Score) error }
type ScoreEndVisitor interface{ VisitScoreEnd(*Score) error }

type PartGroupStartVisitor interface{ VisitPartGroupStart(*PartGroup) error }
type PartGroupEndVisitor interface{ VisitPartGroupEnd(*PartGroup) error }

type PartStartVisitor interface{ VisitPartStart(*Part) error }
type PartEndVisitor interface{ VisitPartEnd(*Part) error }

type StaffStartVisitor interface{ VisitStaffStart(*Staff) error }
type StaffEndVisitor interface{ VisitStaffEnd(*Staff) error }

type VoiceStartVisitor interface{ VisitVoiceStart(*Voice) error }
type VoiceEndVisitor interface{ VisitVoiceEnd(*Voice) error }

type SegmentStartVisitor interface{ VisitSegmentStart(*Segment) error }
type SegmentEndVisitor interface{ VisitSegmentEnd(*Segment) error }

type MeasureStartVisitor interface{ VisitMeasureStart(*Measure) error }
type MeasureEndVisitor interface{ VisitMeasureEnd(*Measure) error }

type NoteStartVisitor interface{ VisitNoteStart(*Note) error }
type NoteEndVisitor interface{ VisitNoteEnd(*Note) error }

type ChordStartVisitor interface{ VisitChordStart(*Chord) error }
type ChordEndVisitor interface{ VisitChordEnd(*Chord) error }

type TupletStartVisitor interface{ VisitTupletStart(*Tuplet) error }
type TupletEndVisitor interface{ VisitTupletEnd(*Tuplet) error }

type ClefStartVisitor interface{ VisitClefStart(*Clef) error }
type ClefEndVisitor interface{ VisitClefEnd(*Clef) error }

type KeyStartVisitor interface{ VisitKeyStart(*Key) error }
type KeyEndVisitor interface{ VisitKeyEnd(*Key) error }

type TimeSignatureStartVisitor interface{ VisitTimeSignatureStart(*TimeSignature) error }
type TimeSignatureEndVisitor interface{ VisitTimeSignatureEnd(*TimeSignature) error }

type ClefKeyTimeSignatureGroupStartVisitor interface{ VisitClefKeyTimeSignatureGroupStart(*ClefKeyTimeSignatureGroup) error }
type ClefKeyTimeSignatureGroupEndVisitor interface{ VisitClefKeyTimeSignatureGroupEnd(*ClefKeyTimeSignatureGroup) error }

type BarLineStartVisitor interface{ VisitBarLineStart(*BarLine) error }
type BarLineEndVisitor interface{ VisitBarLineEnd(*BarLine) error }

type TempoStartVisitor interface{ VisitTempoStart(*Tempo) error }
type TempoEndVisitor interface{ VisitTempoEnd(*Tempo) error }

type LineBreakStartVisitor interface{ VisitLineBreakStart(*LineBreak) error }
type LineBreakEndVisitor interface{ VisitLineBreakEnd(*LineBreak) error }

type PageBreakStartVisitor interface{ VisitPageBreakStart(*PageBreak) error }
type PageBreakEndVisitor interface{ VisitPageBreakEnd(*PageBreak) error }

type RehearsalMarkStartVisitor interface{ VisitRehearsalMarkStart(*RehearsalMark) error }
type RehearsalMarkEndVisitor interface{ VisitRehearsalMarkEnd(*RehearsalMark) error }

type DynamicStartVisitor interface{ VisitDynamicStart(*Dynamic) error }
type DynamicEndVisitor interface{ VisitDynamicEnd(*Dynamic) error }

type WordsStartVisitor interface{ VisitWordsStart(*Words) error }
type WordsEndVisitor interface{ VisitWordsEnd(*Words) error }

type RepeatStartVisitor interface{ VisitRepeatStart(*Repeat) error }
type RepeatEndVisitor interface{ VisitRepeatEnd(*Repeat) error }

type RepeatCommonPartStartVisitor interface{ VisitRepeatCommonPartStart(*RepeatCommonPart) error }
type RepeatCommonPartEndVisitor interface{ VisitRepeatCommonPartEnd(*RepeatCommonPart) error }

type RepeatEndingStartVisitor interface{ VisitRepeatEndingStart(*RepeatEnding) error }
type RepeatEndingEndVisitor interface{ VisitRepeatEndingEnd(*RepeatEnding) error }

type MeasureRepeatStartVisitor interface{ VisitMeasureRepeatStart(*MeasureRepeat) error }
type MeasureRepeatEndVisitor interface{ VisitMeasureRepeatEnd(*MeasureRepeat) error }

type MeasureRepeatPatternStartVisitor interface{ VisitMeasureRepeatPatternStart(*MeasureRepeatPattern) error }
type MeasureRepeatPatternEndVisitor interface{ VisitMeasureRepeatPatternEnd(*MeasureRepeatPattern) error }

type MeasureRepeatReplicasStartVisitor interface{ VisitMeasureRepeatReplicasStart(*MeasureRepeatReplicas) error }
type MeasureRepeatReplicasEndVisitor interface{ VisitMeasureRepeatReplicasEnd(*MeasureRepeatReplicas) error }

type BeatRepeatStartVisitor interface{ VisitBeatRepeatStart(*BeatRepeat) error }
type BeatRepeatEndVisitor interface{ VisitBeatRepeatEnd(*BeatRepeat) error }

type BeatRepeatPatternStartVisitor interface{ VisitBeatRepeatPatternStart(*BeatRepeatPattern) error }
type BeatRepeatPatternEndVisitor interface{ VisitBeatRepeatPatternEnd(*BeatRepeatPattern) error }

type BeatRepeatReplicasStartVisitor interface{ VisitBeatRepeatReplicasStart(*BeatRepeatReplicas) error }
type BeatRepeatReplicasEndVisitor interface{ VisitBeatRepeatReplicasEnd(*BeatRepeatReplicas) error }

type MultipleMeasureRestStartVisitor interface{ VisitMultipleMeasureRestStart(*MultipleMeasureRest) error }
type MultipleMeasureRestEndVisitor interface{ VisitMultipleMeasureRestEnd(*MultipleMeasureRest) error }

type StanzaStartVisitor interface{ VisitStanzaStart(*Stanza) error }
type StanzaEndVisitor interface{ VisitStanzaEnd(*Stanza) error }

type SyllableStartVisitor interface{ VisitSyllableStart(*Syllable) error }
type SyllableEndVisitor interface{ VisitSyllableEnd(*Syllable) error }
