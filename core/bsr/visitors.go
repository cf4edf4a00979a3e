package bsr

// Per-kind visitor interfaces. A visitor implements the ones it wants to
// be called for; see package visit.

type ScoreStartVisitor interface{ VisitScoreStart(*Score) error }
type ScoreEndVisitor interface{ VisitScoreEnd(*Score) error }

type TranscriptionNotesStartVisitor interface{ VisitTranscriptionNotesStart(*TranscriptionNotes) error }
type TranscriptionNotesEndVisitor interface{ VisitTranscriptionNotesEnd(*TranscriptionNotes) error }

type TranscriptionNoteStartVisitor interface{ VisitTranscriptionNoteStart(*TranscriptionNote) error }
type TranscriptionNoteEndVisitor interface{ VisitTranscriptionNoteEnd(*TranscriptionNote) error }

type PageStartVisitor interface{ VisitPageStart(*Page) error }
type PageEndVisitor interface{ VisitPageEnd(*Page) error }

type PageHeadingStartVisitor interface{ VisitPageHeadingStart(*PageHeading) error }
type PageHeadingEndVisitor interface{ VisitPageHeadingEnd(*PageHeading) error }

type MusicHeadingStartVisitor interface{ VisitMusicHeadingStart(*MusicHeading) error }
type MusicHeadingEndVisitor interface{ VisitMusicHeadingEnd(*MusicHeading) error }

type LineStartVisitor interface{ VisitLineStart(*Line) error }
type LineEndVisitor interface{ VisitLineEnd(*Line) error }

type LineContentsStartVisitor interface{ VisitLineContentsStart(*LineContents) error }
type LineContentsEndVisitor interface{ VisitLineContentsEnd(*LineContents) error }

type MeasureStartVisitor interface{ VisitMeasureStart(*Measure) error }
type MeasureEndVisitor interface{ VisitMeasureEnd(*Measure) error }

type SpacesStartVisitor interface{ VisitSpacesStart(*Spaces) error }
type SpacesEndVisitor interface{ VisitSpacesEnd(*Spaces) error }

type ClefStartVisitor interface{ VisitClefStart(*Clef) error }
type ClefEndVisitor interface{ VisitClefEnd(*Clef) error }

type KeyStartVisitor interface{ VisitKeyStart(*Key) error }
type KeyEndVisitor interface{ VisitKeyEnd(*Key) error }

type TimeSignatureStartVisitor interface{ VisitTimeSignatureStart(*TimeSignature) error }
type TimeSignatureEndVisitor interface{ VisitTimeSignatureEnd(*TimeSignature) error }

type BarLineStartVisitor interface{ VisitBarLineStart(*BarLine) error }
type BarLineEndVisitor interface{ VisitBarLineEnd(*BarLine) error }

type NoteStartVisitor interface{ VisitNoteStart(*Note) error }
type NoteEndVisitor interface{ VisitNoteEnd(*Note) error }

type NumberStartVisitor interface{ VisitNumberStart(*Number) error }
type NumberEndVisitor interface{ VisitNumberEnd(*Number) error }

type WordsStartVisitor interface{ VisitWordsStart(*Words) error }
type WordsEndVisitor interface{ VisitWordsEnd(*Words) error }

type DynamicStartVisitor interface{ VisitDynamicStart(*Dynamic) error }
type DynamicEndVisitor interface{ VisitDynamicEnd(*Dynamic) error }

type TempoStartVisitor interface{ VisitTempoStart(*Tempo) error }
type TempoEndVisitor interface{ VisitTempoEnd(*Tempo) error }
