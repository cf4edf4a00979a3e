package lpsr

import (
	"fmt"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/core/rational"
)

var clefNames = map[msr.ClefKind]string{
	msr.ClefTreble:        "treble",
	msr.ClefTrebleMinus15: "treble_15",
	msr.ClefTrebleMinus8:  "treble_8",
	msr.ClefTreblePlus8:   "treble^8",
	msr.ClefTreblePlus15:  "treble^15",
	msr.ClefBass:          "bass",
	msr.ClefBassMinus15:   "bass_15",
	msr.ClefBassMinus8:    "bass_8",
	msr.ClefBassPlus8:     "bass^8",
	msr.ClefBassPlus15:    "bass^15",
	msr.ClefVarbaritone:   "varbaritone",
	msr.ClefTrebleLine1:   "french",
	msr.ClefSoprano:       "soprano",
	msr.ClefMezzoSoprano:  "mezzosoprano",
	msr.ClefAlto:          "alto",
	msr.ClefTenor:         "tenor",
	msr.ClefBaritone:      "baritone",
	msr.ClefPercussion:    "percussion",
	msr.ClefTablature:     "tab",
}

var barLineGlyphs = map[msr.BarLineStyleKind]string{
	msr.BarLineStyleDotted:     ";",
	msr.BarLineStyleDashed:     "!",
	msr.BarLineStyleHeavy:      ".",
	msr.BarLineStyleLightLight: "||",
	msr.BarLineStyleLightHeavy: "|.",
	msr.BarLineStyleHeavyLight: ".|",
	msr.BarLineStyleHeavyHeavy: "..",
	msr.BarLineStyleTick:       "'",
	msr.BarLineStyleShort:      ",",
}

// durationOf maps an MSR duration onto a LilyPond one. Notes without a
// written type, such as whole-measure rests, fall back on their sounding
// length, then on a quarter.
func durationOf(kind msr.DurationKind, dots int, sounding rational.Rational) Duration {
	if kind == msr.DurationNone {
		k, d, ok := msr.DurationKindFromWholeNotes(sounding)
		if !ok {
			return Duration{Log: 2}
		}
		kind, dots = k, d
	}
	return Duration{Log: int(msr.DurationWhole - kind), Dots: dots}
}

func pitchOf(n *msr.Note) Pitch {
	return Pitch{
		Octave:     n.Octave() - 4,
		Notename:   int(n.Step() - msr.StepC),
		Alteration: n.Alter(),
	}
}

// keyCommand writes k as \key g \major. The tonic is spelled the LilyPond
// way: "F#" is fis, "Bb" is bes.
func keyCommand(k *msr.Key) Command {
	tonic := strings.ToLower(k.Tonic())
	if len(tonic) == 2 {
		switch tonic[1] {
		case '#':
			tonic = tonic[:1] + "is"
		case 'b':
			tonic = tonic[:1] + "es"
		}
	}
	// "ees" and "aes" are written "es" and "as"
	switch tonic {
	case "ees":
		tonic = "es"
	case "aes":
		tonic = "as"
	}
	mode := `\major`
	if k.Mode() == msr.ModeMinor {
		mode = `\minor`
	}
	return Command(fmt.Sprintf(`\key %s %s`, tonic, mode))
}

// timeCommand writes ts and returns the length of its measures. Compound
// items are summed up into a single fraction over the first beat value.
func timeCommand(ts *msr.TimeSignature) (Command, rational.Rational, bool) {
	switch ts.Symbol() {
	case msr.TimeSymbolCommon:
		return `\time 4/4`, rational.FromInt(1), true
	case msr.TimeSymbolCut:
		return `\time 2/2`, rational.FromInt(1), true
	case msr.TimeSymbolSenzaMisura:
		return `\cadenzaOn`, rational.Zero, true
	}
	items := ts.Items()
	if len(items) == 0 || items[0].BeatValue <= 0 {
		return "", rational.Zero, false
	}
	beats := 0
	length := rational.Zero
	for _, it := range items {
		for _, n := range it.BeatsNumbers {
			beats += n * items[0].BeatValue / max(it.BeatValue, 1)
			if it.BeatValue > 0 {
				length = length.Add(rational.New(int64(n), int64(it.BeatValue)))
			}
		}
	}
	cmd := Command(fmt.Sprintf(`\time %d/%d`, beats, items[0].BeatValue))
	if ts.Symbol() == msr.TimeSymbolSingleNumber {
		cmd = `\once \override Staff.TimeSignature.style = #'single-digit ` + cmd
	}
	return cmd, length, true
}

func tempoCommand(t *msr.Tempo) Command {
	var parts []string
	if t.Words() != "" {
		parts = append(parts, quote(t.Words()))
	}
	if t.Kind() == msr.TempoPerMinute && t.BeatUnit() != msr.DurationNone && t.PerMinute() != "" {
		unit := durationOf(t.BeatUnit(), t.BeatUnitDots(), rational.Zero)
		perMinute := strings.ReplaceAll(t.PerMinute(), "-", " - ")
		parts = append(parts, fmt.Sprintf("%s = %s", unit, perMinute))
	}
	return Command(`\tempo ` + strings.Join(parts, " "))
}

func dynamicEvent(d *msr.Dynamic) string {
	return `\` + d.Kind().String()
}

func wordsEvent(w *msr.Words) string {
	if w.Placement() == msr.PlacementBelow {
		return `_\markup { ` + quote(w.Contents()) + ` }`
	}
	return `^\markup { ` + quote(w.Contents()) + ` }`
}
