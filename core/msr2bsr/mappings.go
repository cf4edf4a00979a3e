package msr2bsr

import (
	"github.com/jacques-menu/musicformats-sub010/core/bsr"
	"github.com/jacques-menu/musicformats-sub010/core/msr"
)

var clefKinds = map[msr.ClefKind]bsr.ClefKind{
	msr.ClefTreble:       bsr.ClefGTreble,
	msr.ClefSoprano:      bsr.ClefGSoprano,
	msr.ClefMezzoSoprano: bsr.ClefGSoprano,
	msr.ClefAlto:         bsr.ClefCAlto,
	msr.ClefTenor:        bsr.ClefCTenor,
	msr.ClefBaritone:     bsr.ClefFBaritone,
	msr.ClefBass:         bsr.ClefFBass,
	msr.ClefTrebleLine1:  bsr.ClefGSoprano,
	msr.ClefTrebleMinus8: bsr.ClefGOttavaBassa,
	msr.ClefTreblePlus8:  bsr.ClefGOttavaAlta,
}

var barLineKinds = map[msr.BarLineStyleKind]bsr.BarLineKind{
	msr.BarLineStyleDotted:     bsr.BarLineSpecial,
	msr.BarLineStyleDashed:     bsr.BarLineSpecial,
	msr.BarLineStyleLightLight: bsr.BarLineSectionalDouble,
	msr.BarLineStyleLightHeavy: bsr.BarLineFinalDouble,
}

var timeKinds = map[msr.TimeSymbolKind]bsr.TimeSignatureKind{
	msr.TimeSymbolNone:         bsr.TimeSignatureNumerical,
	msr.TimeSymbolCommon:       bsr.TimeSignatureCommon,
	msr.TimeSymbolCut:          bsr.TimeSignatureCut,
	msr.TimeSymbolNote:         bsr.TimeSignatureNote,
	msr.TimeSymbolDottedNote:   bsr.TimeSignatureDottedNote,
	msr.TimeSymbolSingleNumber: bsr.TimeSignatureSingleNumber,
	msr.TimeSymbolSenzaMisura:  bsr.TimeSignatureSenzaMisura,
}

var durations = map[msr.DurationKind]bsr.NoteDuration{
	msr.Duration256th:   bsr.Duration256th,
	msr.Duration128th:   bsr.Duration128th,
	msr.Duration64th:    bsr.Duration64th,
	msr.Duration32nd:    bsr.Duration32nd,
	msr.Duration16th:    bsr.Duration16th,
	msr.DurationEighth:  bsr.DurationEighth,
	msr.DurationQuarter: bsr.DurationQuarter,
	msr.DurationHalf:    bsr.DurationHalf,
	msr.DurationWhole:   bsr.DurationWhole,
	msr.DurationBreve:   bsr.DurationBreve,
}

var accidentals = map[msr.AccidentalKind]bsr.AccidentalKind{
	msr.AccidentalSharp:              bsr.AccidentalSharp,
	msr.AccidentalNatural:            bsr.AccidentalNatural,
	msr.AccidentalFlat:               bsr.AccidentalFlat,
	msr.AccidentalDoubleSharp:        bsr.AccidentalDoubleSharp,
	msr.AccidentalFlatFlat:           bsr.AccidentalDoubleFlat,
	msr.AccidentalQuarterSharp:       bsr.AccidentalQuarterSharp,
	msr.AccidentalQuarterFlat:        bsr.AccidentalQuarterFlat,
	msr.AccidentalThreeQuartersSharp: bsr.AccidentalThreeQuartersSharp,
	msr.AccidentalThreeQuartersFlat:  bsr.AccidentalThreeQuartersFlat,
}

var steps = map[msr.Step]bsr.NoteStep{
	msr.StepC: bsr.StepC,
	msr.StepD: bsr.StepD,
	msr.StepE: bsr.StepE,
	msr.StepF: bsr.StepF,
	msr.StepG: bsr.StepG,
	msr.StepA: bsr.StepA,
	msr.StepB: bsr.StepB,
}

var tempoKinds = map[msr.TempoKind]bsr.TempoKind{
	msr.TempoWordsOnly: bsr.TempoWordsOnly,
	msr.TempoPerMinute: bsr.TempoPerMinute,
}

// octaveMarkNeeded applies the octave mark rule to a note reached by a
// step of interval diatonic degrees: seconds and thirds never get a mark,
// fourths and fifths only when the octave changes, larger intervals
// always.
func octaveMarkNeeded(interval int, octaveChanged bool) bool {
	if interval < 0 {
		interval = -interval
	}
	switch {
	case interval < 3:
		return false
	case interval <= 4:
		return octaveChanged
	default:
		return true
	}
}
