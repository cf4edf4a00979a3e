package msr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// leaf is a node without children.
type leaf struct {
	element
}

func (*leaf) BrowseData(*visit.Browser) error { return nil }

// DynamicKind is a dynamic marking.
type DynamicKind int

const (
	DynamicNone DynamicKind = iota
	DynamicF
	DynamicFF
	DynamicFFF
	DynamicFFFF
	DynamicFFFFF
	DynamicFFFFFF
	DynamicP
	DynamicPP
	DynamicPPP
	DynamicPPPP
	DynamicPPPPP
	DynamicPPPPPP
	DynamicMF
	DynamicMP
	DynamicFP
	DynamicFZ
	DynamicPF
	DynamicRF
	DynamicSF
	DynamicRFZ
	DynamicSFZ
	DynamicSFP
	DynamicSFPP
	DynamicSFFZ
	DynamicSFZP
	DynamicN
)

var dynamicKindNames = [...]string{
	"none", "f", "ff", "fff", "ffff", "fffff", "ffffff",
	"p", "pp", "ppp", "pppp", "ppppp", "pppppp",
	"mf", "mp", "fp", "fz", "pf", "rf", "sf", "rfz", "sfz", "sfp", "sfpp", "sffz", "sfzp", "n",
}

// String returns the marking as written, e.g. "mf".
func (k DynamicKind) String() string {
	if k < 0 || int(k) >= len(dynamicKindNames) {
		return fmt.Sprintf("DynamicKind(%d)", int(k))
	}
	return dynamicKindNames[k]
}

// DynamicKindFromString returns the kind written s.
func DynamicKindFromString(s string) (DynamicKind, bool) {
	for i, name := range dynamicKindNames {
		if i > 0 && name == s {
			return DynamicKind(i), true
		}
	}
	return DynamicNone, false
}

// PlacementKind tells whether a mark is above or below the staff.
type PlacementKind int

const (
	PlacementNone PlacementKind = iota
	PlacementAbove
	PlacementBelow
)

func (k PlacementKind) String() string {
	switch k {
	case PlacementAbove:
		return "above"
	case PlacementBelow:
		return "below"
	default:
		return "none"
	}
}

// Dynamic is a dynamic marking attached to a note.
type Dynamic struct {
	leaf
	kind      DynamicKind
	placement PlacementKind
}

// NewDynamic returns a dynamic marking.
func NewDynamic(line int, kind DynamicKind, placement PlacementKind) *Dynamic {
	return &Dynamic{leaf: leaf{element{line: line}}, kind: kind, placement: placement}
}

func (d *Dynamic) Kind() DynamicKind        { return d.kind }
func (d *Dynamic) Placement() PlacementKind { return d.placement }

// Clone returns a copy of d.
func (d *Dynamic) Clone() *Dynamic {
	return NewDynamic(d.line, d.kind, d.placement)
}

func (d *Dynamic) ShortString() string {
	return fmt.Sprintf("Dynamic [%s, line %d]", d.kind, d.line)
}

// Words is free text attached to a note.
type Words struct {
	leaf
	contents  string
	placement PlacementKind
}

// NewWords returns a text direction.
func NewWords(line int, contents string, placement PlacementKind) *Words {
	return &Words{leaf: leaf{element{line: line}}, contents: contents, placement: placement}
}

func (w *Words) Contents() string         { return w.contents }
func (w *Words) Placement() PlacementKind { return w.placement }

// Clone returns a copy of w.
func (w *Words) Clone() *Words {
	return NewWords(w.line, w.contents, w.placement)
}

func (w *Words) ShortString() string {
	return fmt.Sprintf("Words [%q, line %d]", w.contents, w.line)
}

// BarLineLocationKind is where a bar line sits in its measure.
type BarLineLocationKind int

const (
	BarLineLocationNone BarLineLocationKind = iota
	BarLineLocationLeft
	BarLineLocationMiddle
	BarLineLocationRight
)

func (k BarLineLocationKind) String() string {
	switch k {
	case BarLineLocationLeft:
		return "left"
	case BarLineLocationMiddle:
		return "middle"
	case BarLineLocationRight:
		return "right"
	default:
		return "none"
	}
}

// BarLineStyleKind is the drawing of a bar line.
type BarLineStyleKind int

const (
	BarLineStyleNone BarLineStyleKind = iota
	BarLineStyleRegular
	BarLineStyleDotted
	BarLineStyleDashed
	BarLineStyleHeavy
	BarLineStyleLightLight
	BarLineStyleLightHeavy
	BarLineStyleHeavyLight
	BarLineStyleHeavyHeavy
	BarLineStyleTick
	BarLineStyleShort
)

var barLineStyleNames = [...]string{
	"none", "regular", "dotted", "dashed", "heavy", "light-light",
	"light-heavy", "heavy-light", "heavy-heavy", "tick", "short",
}

func (k BarLineStyleKind) String() string {
	if k < 0 || int(k) >= len(barLineStyleNames) {
		return fmt.Sprintf("BarLineStyleKind(%d)", int(k))
	}
	return barLineStyleNames[k]
}

// BarLineStyleFromString maps a MusicXML bar-style onto its kind.
func BarLineStyleFromString(s string) BarLineStyleKind {
	for i, name := range barLineStyleNames {
		if name == s {
			return BarLineStyleKind(i)
		}
	}
	return BarLineStyleNone
}

// RepeatDirectionKind is the repeat sign a bar line carries.
type RepeatDirectionKind int

const (
	RepeatDirectionNone RepeatDirectionKind = iota
	RepeatDirectionForward
	RepeatDirectionBackward
)

func (k RepeatDirectionKind) String() string {
	switch k {
	case RepeatDirectionForward:
		return "forward"
	case RepeatDirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// BarLineSpec gathers what a bar line is made of.
type BarLineSpec struct {
	Location        BarLineLocationKind
	Style           BarLineStyleKind
	RepeatDirection RepeatDirectionKind
	Times           int
}

// BarLine is a bar line. Repeat and ending information has already been
// turned into repeat nodes by the voice builder; it is kept here for
// display.
type BarLine struct {
	leaf
	spec BarLineSpec
}

// NewBarLine returns a bar line.
func NewBarLine(line int, spec BarLineSpec) *BarLine {
	return &BarLine{leaf: leaf{element{line: line}}, spec: spec}
}

func (b *BarLine) Location() BarLineLocationKind        { return b.spec.Location }
func (b *BarLine) Style() BarLineStyleKind              { return b.spec.Style }
func (b *BarLine) RepeatDirection() RepeatDirectionKind { return b.spec.RepeatDirection }
func (b *BarLine) Times() int                           { return b.spec.Times }

// Clone returns a copy of b.
func (b *BarLine) Clone() *BarLine {
	return NewBarLine(b.line, b.spec)
}

func (b *BarLine) ShortString() string {
	return fmt.Sprintf("BarLine [%s %s, repeat %s, line %d]", b.spec.Location, b.spec.Style, b.spec.RepeatDirection, b.line)
}

// TempoKind tells what a tempo indication consists of.
type TempoKind int

const (
	TempoNone TempoKind = iota
	TempoWordsOnly
	TempoPerMinute
)

func (k TempoKind) String() string {
	switch k {
	case TempoWordsOnly:
		return "wordsOnly"
	case TempoPerMinute:
		return "perMinute"
	default:
		return "none"
	}
}

// TempoSpec gathers what a tempo indication is made of.
type TempoSpec struct {
	Kind         TempoKind
	Words        string
	BeatUnit     DurationKind
	BeatUnitDots int

	// PerMinute is the text of the metronome value, "88" or "88-96". It is
	// decoded by the passes that need the numbers.
	PerMinute string
}

// Tempo is a tempo indication.
type Tempo struct {
	leaf
	spec TempoSpec
}

// NewTempo returns a tempo indication.
func NewTempo(line int, spec TempoSpec) *Tempo {
	return &Tempo{leaf: leaf{element{line: line}}, spec: spec}
}

func (t *Tempo) Kind() TempoKind        { return t.spec.Kind }
func (t *Tempo) Words() string          { return t.spec.Words }
func (t *Tempo) BeatUnit() DurationKind { return t.spec.BeatUnit }
func (t *Tempo) BeatUnitDots() int      { return t.spec.BeatUnitDots }
func (t *Tempo) PerMinute() string      { return t.spec.PerMinute }
func (t *Tempo) Spec() TempoSpec        { return t.spec }

// Clone returns a copy of t.
func (t *Tempo) Clone() *Tempo {
	return NewTempo(t.line, t.spec)
}

func (t *Tempo) ShortString() string {
	return fmt.Sprintf("Tempo [%s %q %s=%s, line %d]", t.spec.Kind, t.spec.Words, t.spec.BeatUnit, t.spec.PerMinute, t.line)
}

// LineBreak ends a system.
type LineBreak struct {
	leaf
	nextBarNumber string
}

// NewLineBreak returns a line break before measure nextBarNumber.
func NewLineBreak(line int, nextBarNumber string) *LineBreak {
	return &LineBreak{leaf: leaf{element{line: line}}, nextBarNumber: nextBarNumber}
}

func (l *LineBreak) NextBarNumber() string { return l.nextBarNumber }

// Clone returns a copy of l.
func (l *LineBreak) Clone() *LineBreak {
	return NewLineBreak(l.line, l.nextBarNumber)
}

func (l *LineBreak) ShortString() string {
	return fmt.Sprintf("LineBreak [next bar %s, line %d]", l.nextBarNumber, l.line)
}

// PageBreak ends a page.
type PageBreak struct {
	leaf
}

// NewPageBreak returns a page break.
func NewPageBreak(line int) *PageBreak {
	return &PageBreak{leaf: leaf{element{line: line}}}
}

// Clone returns a copy of p.
func (p *PageBreak) Clone() *PageBreak {
	return NewPageBreak(p.line)
}

func (p *PageBreak) ShortString() string {
	return fmt.Sprintf("PageBreak [line %d]", p.line)
}

// RehearsalMark is a boxed letter or text.
type RehearsalMark struct {
	leaf
	text string
}

// NewRehearsalMark returns a rehearsal mark.
func NewRehearsalMark(line int, text string) *RehearsalMark {
	return &RehearsalMark{leaf: leaf{element{line: line}}, text: text}
}

func (r *RehearsalMark) Text() string { return r.text }

// Clone returns a copy of r.
func (r *RehearsalMark) Clone() *RehearsalMark {
	return NewRehearsalMark(r.line, r.text)
}

func (r *RehearsalMark) ShortString() string {
	return fmt.Sprintf("RehearsalMark [%q, line %d]", r.text, r.line)
}
