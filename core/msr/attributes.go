package msr

import (
	"fmt"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// ClefKind is a clef.
type ClefKind int

const (
	ClefNone ClefKind = iota
	ClefTreble
	ClefTrebleMinus15
	ClefTrebleMinus8
	ClefTreblePlus8
	ClefTreblePlus15
	ClefBass
	ClefBassMinus15
	ClefBassMinus8
	ClefBassPlus8
	ClefBassPlus15
	ClefVarbaritone
	ClefTrebleLine1
	ClefSoprano
	ClefMezzoSoprano
	ClefAlto
	ClefTenor
	ClefBaritone
	ClefPercussion
	ClefTablature
)

var clefKindNames = [...]string{
	"none", "treble", "treble-15", "treble-8", "treble+8", "treble+15",
	"bass", "bass-15", "bass-8", "bass+8", "bass+15", "varbaritone",
	"treble-line1", "soprano", "mezzo-soprano", "alto", "tenor", "baritone",
	"percussion", "tablature",
}

func (k ClefKind) String() string {
	if k < 0 || int(k) >= len(clefKindNames) {
		return fmt.Sprintf("ClefKind(%d)", int(k))
	}
	return clefKindNames[k]
}

// ClefKindFromSign maps a MusicXML clef sign, line and octave change onto
// a clef kind.
func ClefKindFromSign(sign string, line, octaveChange int) (ClefKind, bool) {
	switch strings.ToUpper(sign) {
	case "G":
		if line == 1 {
			return ClefTrebleLine1, true
		}
		switch octaveChange {
		case -2:
			return ClefTrebleMinus15, true
		case -1:
			return ClefTrebleMinus8, true
		case 1:
			return ClefTreblePlus8, true
		case 2:
			return ClefTreblePlus15, true
		}
		return ClefTreble, true
	case "F":
		if line == 3 {
			return ClefVarbaritone, true
		}
		switch octaveChange {
		case -2:
			return ClefBassMinus15, true
		case -1:
			return ClefBassMinus8, true
		case 1:
			return ClefBassPlus8, true
		case 2:
			return ClefBassPlus15, true
		}
		return ClefBass, true
	case "C":
		switch line {
		case 1:
			return ClefSoprano, true
		case 2:
			return ClefMezzoSoprano, true
		case 3:
			return ClefAlto, true
		case 4:
			return ClefTenor, true
		case 5:
			return ClefBaritone, true
		}
	case "PERCUSSION":
		return ClefPercussion, true
	case "TAB":
		return ClefTablature, true
	}
	return ClefNone, false
}

// Clef is a clef change.
type Clef struct {
	leaf
	kind        ClefKind
	staffNumber int
}

// NewClef returns a clef for staff staffNumber.
func NewClef(line int, kind ClefKind, staffNumber int) *Clef {
	return &Clef{leaf: leaf{element{line: line}}, kind: kind, staffNumber: staffNumber}
}

func (c *Clef) Kind() ClefKind   { return c.kind }
func (c *Clef) StaffNumber() int { return c.staffNumber }

// Clone returns a copy of c.
func (c *Clef) Clone() *Clef {
	return NewClef(c.line, c.kind, c.staffNumber)
}

func (c *Clef) ShortString() string {
	return fmt.Sprintf("Clef [%s, staff %d, line %d]", c.kind, c.staffNumber, c.line)
}

// ModeKind is the mode of a key.
type ModeKind int

const (
	ModeNone ModeKind = iota
	ModeMajor
	ModeMinor
)

func (k ModeKind) String() string {
	switch k {
	case ModeMajor:
		return "major"
	case ModeMinor:
		return "minor"
	default:
		return "none"
	}
}

// Key is a traditional key signature: a number of fifths and a mode.
type Key struct {
	leaf
	fifths int
	mode   ModeKind
}

// NewKey returns a key with fifths sharps (positive) or flats (negative).
func NewKey(line, fifths int, mode ModeKind) *Key {
	return &Key{leaf: leaf{element{line: line}}, fifths: fifths, mode: mode}
}

func (k *Key) Fifths() int    { return k.fifths }
func (k *Key) Mode() ModeKind { return k.mode }

// Clone returns a copy of k.
func (k *Key) Clone() *Key {
	return NewKey(k.line, k.fifths, k.mode)
}

var tonics = [...]string{"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#", "G#", "D#", "A#"}

// Tonic returns the name of the major or relative minor tonic.
func (k *Key) Tonic() string {
	i := k.fifths + 7
	if k.mode == ModeMinor {
		i += 3
	}
	if i < 0 || i >= len(tonics) {
		return "?"
	}
	return tonics[i]
}

func (k *Key) ShortString() string {
	return fmt.Sprintf("Key [%s %s, fifths %d, line %d]", k.Tonic(), k.mode, k.fifths, k.line)
}

// TimeSymbolKind is how a time signature is drawn.
type TimeSymbolKind int

const (
	TimeSymbolNone TimeSymbolKind = iota
	TimeSymbolCommon
	TimeSymbolCut
	TimeSymbolNote
	TimeSymbolDottedNote
	TimeSymbolSingleNumber
	TimeSymbolSenzaMisura
)

var timeSymbolNames = [...]string{"none", "common", "cut", "note", "dotted-note", "single-number", "senza-misura"}

func (k TimeSymbolKind) String() string {
	if k < 0 || int(k) >= len(timeSymbolNames) {
		return fmt.Sprintf("TimeSymbolKind(%d)", int(k))
	}
	return timeSymbolNames[k]
}

// TimeSymbolFromString maps a MusicXML time symbol attribute onto its kind.
func TimeSymbolFromString(s string) TimeSymbolKind {
	for i, name := range timeSymbolNames {
		if name == s {
			return TimeSymbolKind(i)
		}
	}
	return TimeSymbolNone
}

// TimeSignatureItem is one fraction of a possibly compound time signature.
type TimeSignatureItem struct {
	BeatsNumbers []int
	BeatValue    int
}

func (it TimeSignatureItem) String() string {
	beats := make([]string, len(it.BeatsNumbers))
	for i, n := range it.BeatsNumbers {
		beats[i] = fmt.Sprint(n)
	}
	return strings.Join(beats, "+") + "/" + fmt.Sprint(it.BeatValue)
}

// TimeSignature is a time signature.
type TimeSignature struct {
	leaf
	symbol TimeSymbolKind
	items  []TimeSignatureItem
}

// NewTimeSignature returns a time signature.
func NewTimeSignature(line int, symbol TimeSymbolKind, items ...TimeSignatureItem) *TimeSignature {
	return &TimeSignature{leaf: leaf{element{line: line}}, symbol: symbol, items: items}
}

func (ts *TimeSignature) Symbol() TimeSymbolKind     { return ts.symbol }
func (ts *TimeSignature) Items() []TimeSignatureItem { return ts.items }

// Clone returns a copy of ts.
func (ts *TimeSignature) Clone() *TimeSignature {
	items := make([]TimeSignatureItem, len(ts.items))
	for i, it := range ts.items {
		items[i] = TimeSignatureItem{
			BeatsNumbers: append([]int(nil), it.BeatsNumbers...),
			BeatValue:    it.BeatValue,
		}
	}
	return NewTimeSignature(ts.line, ts.symbol, items...)
}

func (ts *TimeSignature) ShortString() string {
	parts := make([]string, len(ts.items))
	for i, it := range ts.items {
		parts[i] = it.String()
	}
	return fmt.Sprintf("TimeSignature [%s %s, line %d]", ts.symbol, strings.Join(parts, " "), ts.line)
}

// ClefKeyTimeSignatureGroup gathers the clef, key and time signature found
// at one point of a measure. Any of them may be missing.
type ClefKeyTimeSignatureGroup struct {
	element
	clef          *Clef
	key           *Key
	timeSignature *TimeSignature
}

// NewClefKeyTimeSignatureGroup returns a group of the given members, any
// of which may be nil.
func NewClefKeyTimeSignatureGroup(line int, clef *Clef, key *Key, ts *TimeSignature) *ClefKeyTimeSignatureGroup {
	return &ClefKeyTimeSignatureGroup{element: element{line: line}, clef: clef, key: key, timeSignature: ts}
}

func (g *ClefKeyTimeSignatureGroup) Clef() *Clef                   { return g.clef }
func (g *ClefKeyTimeSignatureGroup) Key() *Key                     { return g.key }
func (g *ClefKeyTimeSignatureGroup) TimeSignature() *TimeSignature { return g.timeSignature }

func (g *ClefKeyTimeSignatureGroup) SetClef(c *Clef)                    { g.clef = c }
func (g *ClefKeyTimeSignatureGroup) SetKey(k *Key)                      { g.key = k }
func (g *ClefKeyTimeSignatureGroup) SetTimeSignature(ts *TimeSignature) { g.timeSignature = ts }

// IsEmpty reports whether the group has no member.
func (g *ClefKeyTimeSignatureGroup) IsEmpty() bool {
	return g.clef == nil && g.key == nil && g.timeSignature == nil
}

// NewbornClone returns an empty group.
func (g *ClefKeyTimeSignatureGroup) NewbornClone() *ClefKeyTimeSignatureGroup {
	return NewClefKeyTimeSignatureGroup(g.line, nil, nil, nil)
}

// DeepClone returns a group holding copies of g's members.
func (g *ClefKeyTimeSignatureGroup) DeepClone() *ClefKeyTimeSignatureGroup {
	c := g.NewbornClone()
	if g.clef != nil {
		c.clef = g.clef.Clone()
	}
	if g.key != nil {
		c.key = g.key.Clone()
	}
	if g.timeSignature != nil {
		c.timeSignature = g.timeSignature.Clone()
	}
	return c
}

// BrowseData browses the members in the order the visitor asks for
// through ClefKeyTimeOrderer, clef-key-time by default.
func (g *ClefKeyTimeSignatureGroup) BrowseData(b *visit.Browser) error {
	order := OrderClefKeyTime
	if o, ok := b.Visitor().(ClefKeyTimeOrderer); ok {
		order = o.ClefKeyTimeOrder()
	}

	var members []visit.Element
	switch order {
	case OrderKeyTimeClef:
		members = g.members(g.key, g.timeSignature, g.clef)
	default:
		members = g.members(g.clef, g.key, g.timeSignature)
	}
	return visit.BrowseAll(b, members)
}

// members drops the nil ones: a nil *Clef stored in an interface is not a
// nil interface.
func (g *ClefKeyTimeSignatureGroup) members(elems ...visit.Element) []visit.Element {
	result := make([]visit.Element, 0, len(elems))
	for _, e := range elems {
		switch x := e.(type) {
		case *Clef:
			if x != nil {
				result = append(result, x)
			}
		case *Key:
			if x != nil {
				result = append(result, x)
			}
		case *TimeSignature:
			if x != nil {
				result = append(result, x)
			}
		}
	}
	return result
}

func (g *ClefKeyTimeSignatureGroup) ShortString() string {
	return fmt.Sprintf("ClefKeyTimeSignatureGroup [clef: %t, key: %t, time: %t, line %d]",
		g.clef != nil, g.key != nil, g.timeSignature != nil, g.line)
}
