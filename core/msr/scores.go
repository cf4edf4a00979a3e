package msr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// Identification holds the descriptive fields of a score.
type Identification struct {
	WorkTitle     string `json:"work_title,omitempty"`
	MovementTitle string `json:"movement_title,omitempty"`
	Composer      string `json:"composer,omitempty"`
	Rights        string `json:"rights,omitempty"`
}

// Title returns the work title, or the movement title when there is none.
func (id Identification) Title() string {
	if id.WorkTitle != "" {
		return id.WorkTitle
	}
	return id.MovementTitle
}

// Score is the root of an MSR tree.
type Score struct {
	element
	identification Identification
	partGroups     []*PartGroup
}

// NewScore returns an empty score.
func NewScore(line int) *Score {
	return &Score{element: element{line: line}}
}

func (s *Score) Identification() Identification      { return s.identification }
func (s *Score) SetIdentification(id Identification) { s.identification = id }
func (s *Score) PartGroups() []*PartGroup            { return s.partGroups }

// AppendPartGroup appends g and points it at s.
func (s *Score) AppendPartGroup(g *PartGroup) {
	g.upLink = s
	s.partGroups = append(s.partGroups, g)
}

// Parts returns the parts of all part groups in order.
func (s *Score) Parts() []*Part {
	var parts []*Part
	for _, g := range s.partGroups {
		parts = append(parts, g.parts...)
	}
	return parts
}

// Voices returns every voice of the score in part, staff, voice order.
func (s *Score) Voices() []*Voice {
	var voices []*Voice
	for _, p := range s.Parts() {
		for _, st := range p.staves {
			voices = append(voices, st.voices...)
		}
	}
	return voices
}

// NewbornClone returns a score with the same identification and no part
// groups.
func (s *Score) NewbornClone() *Score {
	c := NewScore(s.line)
	c.identification = s.identification
	return c
}

// DeepClone returns a copy of the whole tree.
func (s *Score) DeepClone() *Score {
	cl := newCloner()
	c := s.NewbornClone()
	for _, g := range s.partGroups {
		c.AppendPartGroup(g.deepClone(cl, c))
	}
	return c
}

func (s *Score) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, s.partGroups)
}

func (s *Score) ShortString() string {
	return fmt.Sprintf("Score [%q, %d part groups, line %d]", s.identification.Title(), len(s.partGroups), s.line)
}

func (s *Score) String() string {
	return treeString(s)
}

// PartGroup is a bracketed group of parts.
type PartGroup struct {
	element
	number int
	name   string
	upLink *Score
	parts  []*Part
}

// NewPartGroup returns an empty part group.
func NewPartGroup(line, number int, name string) *PartGroup {
	return &PartGroup{element: element{line: line}, number: number, name: name}
}

func (g *PartGroup) Number() int    { return g.number }
func (g *PartGroup) Name() string   { return g.name }
func (g *PartGroup) Score() *Score  { return g.upLink }
func (g *PartGroup) Parts() []*Part { return g.parts }

// AppendPart appends p and points it at g.
func (g *PartGroup) AppendPart(p *Part) {
	p.upLink = g
	g.parts = append(g.parts, p)
}

// NewbornClone returns a part group with the same number and name, pointed
// at score and without parts.
func (g *PartGroup) NewbornClone(score *Score) *PartGroup {
	c := NewPartGroup(g.line, g.number, g.name)
	c.upLink = score
	return c
}

// DeepClone returns a copy of g and its parts pointed at score.
func (g *PartGroup) DeepClone(score *Score) *PartGroup {
	return g.deepClone(newCloner(), score)
}

func (g *PartGroup) deepClone(cl *cloner, score *Score) *PartGroup {
	c := g.NewbornClone(score)
	for _, p := range g.parts {
		c.AppendPart(p.deepClone(cl, c))
	}
	return c
}

func (g *PartGroup) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, g.parts)
}

func (g *PartGroup) ShortString() string {
	return fmt.Sprintf("PartGroup [%d %q, %d parts, line %d]", g.number, g.name, len(g.parts), g.line)
}

// Part is an instrument or a singer.
type Part struct {
	element
	id     string
	name   string
	upLink *PartGroup
	staves []*Staff
}

// NewPart returns an empty part.
func NewPart(line int, id, name string) *Part {
	return &Part{element: element{line: line}, id: id, name: name}
}

func (p *Part) ID() string            { return p.id }
func (p *Part) Name() string          { return p.name }
func (p *Part) PartGroup() *PartGroup { return p.upLink }
func (p *Part) Staves() []*Staff      { return p.staves }

// AppendStaff appends st and points it at p.
func (p *Part) AppendStaff(st *Staff) {
	st.upLink = p
	p.staves = append(p.staves, st)
}

// Staff returns the staff numbered number, or nil.
func (p *Part) Staff(number int) *Staff {
	for _, st := range p.staves {
		if st.number == number {
			return st
		}
	}
	return nil
}

// NewbornClone returns a part with the same ID and name, pointed at group
// and without staves.
func (p *Part) NewbornClone(group *PartGroup) *Part {
	c := NewPart(p.line, p.id, p.name)
	c.upLink = group
	return c
}

// DeepClone returns a copy of p and its staves pointed at group.
func (p *Part) DeepClone(group *PartGroup) *Part {
	return p.deepClone(newCloner(), group)
}

func (p *Part) deepClone(cl *cloner, group *PartGroup) *Part {
	c := p.NewbornClone(group)
	for _, st := range p.staves {
		c.AppendStaff(st.deepClone(cl, c))
	}
	return c
}

func (p *Part) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, p.staves)
}

func (p *Part) ShortString() string {
	return fmt.Sprintf("Part [%s %q, %d staves, line %d]", p.id, p.name, len(p.staves), p.line)
}

// Staff is one staff of a part. It remembers the clef, key and time
// signature currently in effect, for passes that look them up through a
// note's up-links.
type Staff struct {
	element
	number int
	upLink *Part
	voices []*Voice

	currentClef          *Clef
	currentKey           *Key
	currentTimeSignature *TimeSignature
}

// NewStaff returns an empty staff.
func NewStaff(line, number int) *Staff {
	return &Staff{element: element{line: line}, number: number}
}

func (st *Staff) Number() int      { return st.number }
func (st *Staff) Part() *Part      { return st.upLink }
func (st *Staff) Voices() []*Voice { return st.voices }

func (st *Staff) CurrentClef() *Clef                   { return st.currentClef }
func (st *Staff) CurrentKey() *Key                     { return st.currentKey }
func (st *Staff) CurrentTimeSignature() *TimeSignature { return st.currentTimeSignature }

// RegisterGroup records the members of g as the ones now in effect.
func (st *Staff) RegisterGroup(g *ClefKeyTimeSignatureGroup) {
	if g.clef != nil {
		st.currentClef = g.clef
	}
	if g.key != nil {
		st.currentKey = g.key
	}
	if g.timeSignature != nil {
		st.currentTimeSignature = g.timeSignature
	}
}

// AppendVoice appends v and points it at st.
func (st *Staff) AppendVoice(v *Voice) {
	v.upLink = st
	st.voices = append(st.voices, v)
}

// Voice returns the voice numbered number, or nil.
func (st *Staff) Voice(number int) *Voice {
	for _, v := range st.voices {
		if v.number == number {
			return v
		}
	}
	return nil
}

// NewbornClone returns a staff with the same number, pointed at part and
// without voices.
func (st *Staff) NewbornClone(part *Part) *Staff {
	c := NewStaff(st.line, st.number)
	c.upLink = part
	return c
}

// DeepClone returns a copy of st and its voices pointed at part.
func (st *Staff) DeepClone(part *Part) *Staff {
	return st.deepClone(newCloner(), part)
}

func (st *Staff) deepClone(cl *cloner, part *Part) *Staff {
	c := st.NewbornClone(part)
	for _, v := range st.voices {
		c.AppendVoice(v.deepClone(cl, c))
	}
	return c
}

func (st *Staff) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, st.voices)
}

func (st *Staff) ShortString() string {
	return fmt.Sprintf("Staff [%d, %d voices, line %d]", st.number, len(st.voices), st.line)
}
