package msr

import (
	"fmt"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/rational"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// Step is a diatonic pitch name.
type Step int

const (
	StepNone Step = iota
	StepC
	StepD
	StepE
	StepF
	StepG
	StepA
	StepB
)

func (s Step) String() string {
	if s < StepC || s > StepB {
		return "none"
	}
	return string("CDEFGAB"[s-StepC])
}

// StepFromString maps "C" to "B", in either case, onto a step.
func StepFromString(s string) (Step, bool) {
	if len(s) != 1 {
		return StepNone, false
	}
	i := strings.IndexByte("CDEFGAB", strings.ToUpper(s)[0])
	if i < 0 {
		return StepNone, false
	}
	return StepC + Step(i), true
}

// NoteKind tells what a note stands for.
type NoteKind int

const (
	NoteRegular NoteKind = iota
	NoteRest
	NoteSkip
	NoteUnpitched
)

func (k NoteKind) String() string {
	switch k {
	case NoteRegular:
		return "regular"
	case NoteRest:
		return "rest"
	case NoteSkip:
		return "skip"
	case NoteUnpitched:
		return "unpitched"
	default:
		return fmt.Sprintf("NoteKind(%d)", int(k))
	}
}

// AccidentalKind is a written accidental.
type AccidentalKind int

const (
	AccidentalNone AccidentalKind = iota
	AccidentalSharp
	AccidentalNatural
	AccidentalFlat
	AccidentalDoubleSharp
	AccidentalSharpSharp
	AccidentalFlatFlat
	AccidentalNaturalSharp
	AccidentalNaturalFlat
	AccidentalQuarterFlat
	AccidentalQuarterSharp
	AccidentalThreeQuartersFlat
	AccidentalThreeQuartersSharp
	AccidentalOther
)

var accidentalKindNames = [...]string{
	"none", "sharp", "natural", "flat", "double-sharp", "sharp-sharp", "flat-flat",
	"natural-sharp", "natural-flat", "quarter-flat", "quarter-sharp",
	"three-quarters-flat", "three-quarters-sharp", "other",
}

func (a AccidentalKind) String() string {
	if a < 0 || int(a) >= len(accidentalKindNames) {
		return fmt.Sprintf("AccidentalKind(%d)", int(a))
	}
	return accidentalKindNames[a]
}

// AccidentalKindFromString maps a MusicXML accidental name onto its kind.
// Unknown names give AccidentalOther.
func AccidentalKindFromString(s string) AccidentalKind {
	for i, name := range accidentalKindNames {
		if name == s {
			return AccidentalKind(i)
		}
	}
	return AccidentalOther
}

// TieKind tells how a note takes part in a tie.
type TieKind int

const (
	TieNone TieKind = iota
	TieStart
	TieContinue
	TieStop
)

func (k TieKind) String() string {
	switch k {
	case TieStart:
		return "start"
	case TieContinue:
		return "continue"
	case TieStop:
		return "stop"
	default:
		return "none"
	}
}

// NoteSpec gathers what a note is made of.
type NoteSpec struct {
	Kind       NoteKind
	Step       Step
	Alter      int // semitones
	Octave     int // 4 is middle C's
	Duration   DurationKind
	Dots       int
	Accidental AccidentalKind
	Tie        TieKind

	// SoundingWholeNotes defaults to the dotted graphic duration.
	SoundingWholeNotes rational.Rational
}

// Note is a note, a rest or a skip.
type Note struct {
	element
	spec NoteSpec

	soundingWholeNotes rational.Rational
	displayWholeNotes  rational.Rational
	positionInMeasure  rational.Rational

	dynamics []*Dynamic
	words    []*Words

	measure   *Measure
	chord     *Chord
	tuplet    *Tuplet
	syllables []*Syllable
}

// NewNote returns a note built from spec.
func NewNote(line int, spec NoteSpec) *Note {
	n := &Note{element: element{line: line}, spec: spec}
	n.displayWholeNotes = DottedWholeNotes(spec.Duration, spec.Dots)
	n.soundingWholeNotes = spec.SoundingWholeNotes
	if n.soundingWholeNotes.IsZero() {
		n.soundingWholeNotes = n.displayWholeNotes
	}
	return n
}

func (n *Note) Kind() NoteKind                       { return n.spec.Kind }
func (n *Note) Step() Step                           { return n.spec.Step }
func (n *Note) Alter() int                           { return n.spec.Alter }
func (n *Note) Octave() int                          { return n.spec.Octave }
func (n *Note) Duration() DurationKind               { return n.spec.Duration }
func (n *Note) Dots() int                            { return n.spec.Dots }
func (n *Note) Accidental() AccidentalKind           { return n.spec.Accidental }
func (n *Note) Tie() TieKind                         { return n.spec.Tie }
func (n *Note) Spec() NoteSpec                       { return n.spec }
func (n *Note) IsRest() bool                         { return n.spec.Kind == NoteRest }
func (n *Note) IsSkip() bool                         { return n.spec.Kind == NoteSkip }
func (n *Note) Dynamics() []*Dynamic                 { return n.dynamics }
func (n *Note) Words() []*Words                      { return n.words }
func (n *Note) Measure() *Measure                    { return n.measure }
func (n *Note) Chord() *Chord                        { return n.chord }
func (n *Note) Tuplet() *Tuplet                      { return n.tuplet }
func (n *Note) Syllables() []*Syllable               { return n.syllables }
func (n *Note) PositionInMeasure() rational.Rational { return n.positionInMeasure }

// SoundingWholeNotes is how long the note sounds, tuplets included.
func (n *Note) SoundingWholeNotes() rational.Rational { return n.soundingWholeNotes }

// DisplayWholeNotes is the written duration, dots included.
func (n *Note) DisplayWholeNotes() rational.Rational { return n.displayWholeNotes }

func (n *Note) setPositionInMeasure(p rational.Rational) { n.positionInMeasure = p }

// DiatonicIndex numbers the note's staff position: 7 per octave, C being 0
// in octave 0.
func (n *Note) DiatonicIndex() int {
	return n.spec.Octave*7 + int(n.spec.Step-StepC)
}

// AppendDynamic attaches d to n.
func (n *Note) AppendDynamic(d *Dynamic) {
	n.dynamics = append(n.dynamics, d)
}

// AppendWords attaches w to n.
func (n *Note) AppendWords(w *Words) {
	n.words = append(n.words, w)
}

// appendSyllable records a syllable sung on n. The stanza owns it.
func (n *Note) appendSyllable(s *Syllable) {
	n.syllables = append(n.syllables, s)
}

// NewbornClone returns a note with the same pitch and durations, without
// dynamics, words, syllables or up-links.
func (n *Note) NewbornClone() *Note {
	c := NewNote(n.line, n.spec)
	c.soundingWholeNotes = n.soundingWholeNotes
	c.displayWholeNotes = n.displayWholeNotes
	return c
}

// DeepClone returns a copy of n with its dynamics and words.
func (n *Note) DeepClone() *Note {
	return n.deepClone(newCloner())
}

func (n *Note) deepClone(cl *cloner) *Note {
	c := n.NewbornClone()
	for _, d := range n.dynamics {
		c.AppendDynamic(d.Clone())
	}
	for _, w := range n.words {
		c.AppendWords(w.Clone())
	}
	cl.notes[n] = c
	return c
}

func (n *Note) BrowseData(b *visit.Browser) error {
	if err := visit.BrowseAll(b, n.dynamics); err != nil {
		return err
	}
	return visit.BrowseAll(b, n.words)
}

// PitchString returns "C#4", "rest" or "skip".
func (n *Note) PitchString() string {
	switch n.spec.Kind {
	case NoteRest:
		return "rest"
	case NoteSkip:
		return "skip"
	}
	var b strings.Builder
	b.WriteString(n.spec.Step.String())
	switch {
	case n.spec.Alter > 0:
		b.WriteString(strings.Repeat("#", n.spec.Alter))
	case n.spec.Alter < 0:
		b.WriteString(strings.Repeat("b", -n.spec.Alter))
	}
	fmt.Fprint(&b, n.spec.Octave)
	return b.String()
}

func (n *Note) ShortString() string {
	dots := strings.Repeat(".", n.spec.Dots)
	return fmt.Sprintf("Note [%s %s%s, %s, line %d]", n.PitchString(), n.spec.Duration, dots, n.soundingWholeNotes, n.line)
}

func (n *Note) String() string { return n.ShortString() }

// Chord is a set of notes struck together.
type Chord struct {
	element
	duration           DurationKind
	dots               int
	soundingWholeNotes rational.Rational
	positionInMeasure  rational.Rational
	notes              []*Note
	measure            *Measure
}

// NewChord returns an empty chord of the given written duration.
func NewChord(line int, duration DurationKind, dots int, soundingWholeNotes rational.Rational) *Chord {
	if soundingWholeNotes.IsZero() {
		soundingWholeNotes = DottedWholeNotes(duration, dots)
	}
	return &Chord{
		element:            element{line: line},
		duration:           duration,
		dots:               dots,
		soundingWholeNotes: soundingWholeNotes,
	}
}

func (c *Chord) Duration() DurationKind                { return c.duration }
func (c *Chord) Dots() int                             { return c.dots }
func (c *Chord) Notes() []*Note                        { return c.notes }
func (c *Chord) Measure() *Measure                     { return c.measure }
func (c *Chord) SoundingWholeNotes() rational.Rational { return c.soundingWholeNotes }
func (c *Chord) PositionInMeasure() rational.Rational  { return c.positionInMeasure }

func (c *Chord) setPositionInMeasure(p rational.Rational) {
	c.positionInMeasure = p
	for _, n := range c.notes {
		n.positionInMeasure = p
	}
}

// AppendNote adds n to the chord.
func (c *Chord) AppendNote(n *Note) {
	n.chord = c
	n.measure = c.measure
	n.positionInMeasure = c.positionInMeasure
	c.notes = append(c.notes, n)
}

// NewbornClone returns a chord with the same durations and no notes.
func (c *Chord) NewbornClone() *Chord {
	return NewChord(c.line, c.duration, c.dots, c.soundingWholeNotes)
}

// DeepClone returns a copy of c and its notes.
func (c *Chord) DeepClone() *Chord {
	return c.deepClone(newCloner())
}

func (c *Chord) deepClone(cl *cloner) *Chord {
	clone := c.NewbornClone()
	for _, n := range c.notes {
		clone.AppendNote(n.deepClone(cl))
	}
	return clone
}

func (c *Chord) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, c.notes)
}

func (c *Chord) ShortString() string {
	pitches := make([]string, len(c.notes))
	for i, n := range c.notes {
		pitches[i] = n.PitchString()
	}
	return fmt.Sprintf("Chord [<%s> %s, %s, line %d]", strings.Join(pitches, " "), c.duration, c.soundingWholeNotes, c.line)
}

// Tuplet plays actual notes in the time of normal ones.
type Tuplet struct {
	element
	actual            int
	normal            int
	elements          []MeasureElement
	positionInMeasure rational.Rational
	measure           *Measure
	upLink            *Tuplet
}

// NewTuplet returns an empty actual:normal tuplet.
func NewTuplet(line, actual, normal int) *Tuplet {
	return &Tuplet{element: element{line: line}, actual: actual, normal: normal}
}

func (t *Tuplet) Actual() int                          { return t.actual }
func (t *Tuplet) Normal() int                          { return t.normal }
func (t *Tuplet) Elements() []MeasureElement           { return t.elements }
func (t *Tuplet) Measure() *Measure                    { return t.measure }
func (t *Tuplet) PositionInMeasure() rational.Rational { return t.positionInMeasure }

// SoundingWholeNotes is the sum of the members' sounding durations.
func (t *Tuplet) SoundingWholeNotes() rational.Rational {
	sum := rational.Zero
	for _, e := range t.elements {
		if te, ok := e.(timed); ok {
			sum = sum.Add(te.SoundingWholeNotes())
		}
	}
	return sum
}

func (t *Tuplet) setPositionInMeasure(p rational.Rational) {
	t.positionInMeasure = p
	for _, e := range t.elements {
		if te, ok := e.(timed); ok {
			te.setPositionInMeasure(p)
			p = p.Add(te.SoundingWholeNotes())
		}
	}
}

// AppendNote adds n at the end of the tuplet.
func (t *Tuplet) AppendNote(n *Note) {
	n.tuplet = t
	t.elements = append(t.elements, n)
}

// AppendChord adds c at the end of the tuplet.
func (t *Tuplet) AppendChord(c *Chord) {
	t.elements = append(t.elements, c)
}

// AppendTuplet nests inner at the end of the tuplet.
func (t *Tuplet) AppendTuplet(inner *Tuplet) {
	inner.upLink = t
	t.elements = append(t.elements, inner)
}

// NewbornClone returns a tuplet with the same ratio and no members.
func (t *Tuplet) NewbornClone() *Tuplet {
	return NewTuplet(t.line, t.actual, t.normal)
}

// DeepClone returns a copy of t and its members.
func (t *Tuplet) DeepClone() *Tuplet {
	return t.deepClone(newCloner())
}

func (t *Tuplet) deepClone(cl *cloner) *Tuplet {
	c := t.NewbornClone()
	for _, e := range t.elements {
		switch x := e.(type) {
		case *Note:
			c.AppendNote(x.deepClone(cl))
		case *Chord:
			c.AppendChord(x.deepClone(cl))
		case *Tuplet:
			c.AppendTuplet(x.deepClone(cl))
		}
	}
	return c
}

func (t *Tuplet) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, t.elements)
}

func (t *Tuplet) ShortString() string {
	return fmt.Sprintf("Tuplet [%d:%d, %d elements, %s, line %d]", t.actual, t.normal, len(t.elements), t.SoundingWholeNotes(), t.line)
}

func (n *Note) setMeasure(m *Measure) { n.measure = m }

func (c *Chord) setMeasure(m *Measure) {
	c.measure = m
	for _, n := range c.notes {
		n.measure = m
	}
}

func (t *Tuplet) setMeasure(m *Measure) {
	t.measure = m
	for _, e := range t.elements {
		if te, ok := e.(timed); ok {
			te.setMeasure(m)
		}
	}
}
