package msr

import (
	"fmt"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/rational"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

// SyllableKind tells what a syllable stands for.
type SyllableKind int

const (
	SyllableNone SyllableKind = iota
	SyllableSingle
	SyllableBegin
	SyllableMiddle
	SyllableEnd
	SyllableOnRest
	SyllableSkipRest
	SyllableSkipNonRest
	SyllableMeasureEnd
	SyllableLineBreak
	SyllablePageBreak
)

var syllableKindNames = [...]string{
	"none", "single", "begin", "middle", "end", "onRest", "skipRest",
	"skipNonRest", "measureEnd", "lineBreak", "pageBreak",
}

func (k SyllableKind) String() string {
	if k < 0 || int(k) >= len(syllableKindNames) {
		return fmt.Sprintf("SyllableKind(%d)", int(k))
	}
	return syllableKindNames[k]
}

// SyllableKindFromString maps a MusicXML syllabic value onto its kind.
func SyllableKindFromString(s string) (SyllableKind, bool) {
	switch s {
	case "single":
		return SyllableSingle, true
	case "begin":
		return SyllableBegin, true
	case "middle":
		return SyllableMiddle, true
	case "end":
		return SyllableEnd, true
	}
	return SyllableNone, false
}

// carriesText reports whether syllables of kind k are sung text.
func (k SyllableKind) carriesText() bool {
	switch k {
	case SyllableSingle, SyllableBegin, SyllableMiddle, SyllableEnd:
		return true
	}
	return false
}

// isMarker reports whether syllables of kind k only mark a layout point
// and take no time.
func (k SyllableKind) isMarker() bool {
	switch k {
	case SyllableMeasureEnd, SyllableLineBreak, SyllablePageBreak:
		return true
	}
	return false
}

// Syllable is one sung syllable, or a skip or marker in a stanza.
type Syllable struct {
	element
	kind              SyllableKind
	texts             []string
	wholeNotes        rational.Rational
	positionInMeasure rational.Rational
	measureNumber     string

	note   *Note
	stanza *Stanza
}

// NewSyllable returns a syllable lasting wholeNotes. Markers last zero
// whatever wholeNotes is.
func NewSyllable(line int, kind SyllableKind, wholeNotes rational.Rational, texts ...string) *Syllable {
	if kind.isMarker() {
		wholeNotes = rational.Zero
	}
	return &Syllable{element: element{line: line}, kind: kind, wholeNotes: wholeNotes, texts: texts}
}

func (s *Syllable) Kind() SyllableKind                   { return s.kind }
func (s *Syllable) Texts() []string                      { return s.texts }
func (s *Syllable) Text() string                         { return strings.Join(s.texts, "") }
func (s *Syllable) WholeNotes() rational.Rational        { return s.wholeNotes }
func (s *Syllable) PositionInMeasure() rational.Rational { return s.positionInMeasure }
func (s *Syllable) MeasureNumber() string                { return s.measureNumber }
func (s *Syllable) Note() *Note                          { return s.note }
func (s *Syllable) Stanza() *Stanza                      { return s.stanza }

// AttachToNote records n as the note s is sung on.
func (s *Syllable) AttachToNote(n *Note) {
	s.note = n
	if n != nil {
		n.appendSyllable(s)
	}
}

// Clone returns a copy of s without up-links.
func (s *Syllable) Clone() *Syllable {
	c := NewSyllable(s.line, s.kind, s.wholeNotes, append([]string(nil), s.texts...)...)
	c.positionInMeasure = s.positionInMeasure
	c.measureNumber = s.measureNumber
	return c
}

func (*Syllable) BrowseData(*visit.Browser) error { return nil }

func (s *Syllable) ShortString() string {
	return fmt.Sprintf("Syllable [%s %q, %s at %s, line %d]", s.kind, s.Text(), s.wholeNotes, s.positionInMeasure, s.line)
}

// Stanza is one verse of lyrics of a voice. It keeps its own position in
// the current measure, which follows the notes the syllables are sung on.
type Stanza struct {
	element
	number    string
	upLink    *Voice
	syllables []*Syllable

	currentPosition rational.Rational
	textPresent     bool
}

// NewStanza returns an empty stanza of voice.
func NewStanza(line int, number string, voice *Voice) *Stanza {
	return &Stanza{element: element{line: line}, number: number, upLink: voice}
}

func (s *Stanza) Number() string         { return s.number }
func (s *Stanza) Voice() *Voice          { return s.upLink }
func (s *Stanza) Syllables() []*Syllable { return s.syllables }
func (s *Stanza) TextPresent() bool      { return s.textPresent }

// CurrentPosition is the stanza's position in the current measure.
func (s *Stanza) CurrentPosition() rational.Rational { return s.currentPosition }

// AppendSyllable appends syl, sung in measure at partCurrentPosition.
//
// When the stanza lags behind partCurrentPosition and the context asks for
// it, a skip syllable filling the gap is appended first. Markers take no
// time; a measure end brings the stanza back to the start of a measure.
func (s *Stanza) AppendSyllable(syl *Syllable, measure *Measure, partCurrentPosition rational.Rational) error {
	ctx := s.upLink.context()
	if syl == nil {
		return ctx.InternalError(s.line, "syllable to append to stanza %q is null", s.number)
	}
	if syl.kind == SyllableNone {
		return ctx.InternalError(syl.line, "syllable type has not been set")
	}
	if measure == nil && ctx.Sanity() {
		return ctx.InternalError(syl.line, "measure of syllable %s is null", syl.ShortString())
	}

	if !syl.kind.isMarker() {
		delta := partCurrentPosition.Sub(s.currentPosition)
		switch {
		case delta.IsZero():
		case ctx != nil && ctx.PadStanzasWithSkips && delta.Sign() > 0:
			skip := NewSyllable(syl.line, SyllableSkipRest, delta)
			s.place(skip, measure)
		case delta.Sign() < 0:
			ctx.Warn(syl.line, "stanza %q is ahead of its notes by %s whole notes", s.number, delta.Mul(rational.FromInt(-1)))
		default:
			if logging.TraceEnabled() {
				logging.Debug("stanza lags behind its notes",
					"stanza", s.number, "delta", delta.String(), "line", syl.line)
			}
		}
	}

	s.place(syl, measure)

	if syl.kind == SyllableMeasureEnd {
		s.currentPosition = rational.Zero
	}
	if syl.kind.carriesText() {
		s.textPresent = true
	}
	return nil
}

func (s *Stanza) place(syl *Syllable, measure *Measure) {
	syl.positionInMeasure = s.currentPosition
	if measure != nil {
		syl.measureNumber = measure.number
	}
	syl.stanza = s
	s.syllables = append(s.syllables, syl)
	s.currentPosition = s.currentPosition.Add(syl.wholeNotes)
}

// NewbornClone returns an empty stanza with the same number, for voice.
func (s *Stanza) NewbornClone(voice *Voice) *Stanza {
	return NewStanza(s.line, s.number, voice)
}

// DeepClone returns a copy of s and its syllables, for voice. Syllables
// keep no note up-link: the notes of voice are not known here.
func (s *Stanza) DeepClone(voice *Voice) *Stanza {
	return s.deepClone(newCloner(), voice)
}

func (s *Stanza) deepClone(cl *cloner, voice *Voice) *Stanza {
	c := s.NewbornClone(voice)
	for _, syl := range s.syllables {
		sc := syl.Clone()
		sc.stanza = c
		if n, ok := cl.notes[syl.note]; ok {
			sc.AttachToNote(n)
		}
		c.syllables = append(c.syllables, sc)
	}
	c.currentPosition = s.currentPosition
	c.textPresent = s.textPresent
	return c
}

func (s *Stanza) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, s.syllables)
}

func (s *Stanza) ShortString() string {
	return fmt.Sprintf("Stanza [%q, %d syllables, text %t, line %d]", s.number, len(s.syllables), s.textPresent, s.line)
}
