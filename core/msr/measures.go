package msr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/rational"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// Measure is one bar of one voice.
type Measure struct {
	element
	number       string
	puristNumber int
	elements     []MeasureElement
	position     rational.Rational
	upLink       *Segment
}

// NewMeasure returns an empty measure. number is the printed number, which
// may be empty or repeated; the purist number is assigned by the voice.
func NewMeasure(line int, number string) *Measure {
	return &Measure{element: element{line: line}, number: number}
}

func (m *Measure) Number() string             { return m.number }
func (m *Measure) PuristNumber() int          { return m.puristNumber }
func (m *Measure) SetPuristNumber(n int)      { m.puristNumber = n }
func (m *Measure) Elements() []MeasureElement { return m.elements }
func (m *Measure) Segment() *Segment          { return m.upLink }

// CurrentPosition is the sum of the durations appended so far, in whole
// notes.
func (m *Measure) CurrentPosition() rational.Rational { return m.position }

// Voice returns the voice m belongs to, or nil.
func (m *Measure) Voice() *Voice {
	if m.upLink == nil {
		return nil
	}
	return m.upLink.upLink
}

// AppendElement appends e. Notes, chords and tuplets are placed at the
// current position, which then moves past them.
func (m *Measure) AppendElement(e MeasureElement) {
	if t, ok := e.(timed); ok {
		t.setMeasure(m)
		t.setPositionInMeasure(m.position)
		m.position = m.position.Add(t.SoundingWholeNotes())
	}
	m.elements = append(m.elements, e)
}

// IsEmpty reports whether m holds nothing that takes time.
func (m *Measure) IsEmpty() bool {
	for _, e := range m.elements {
		if _, ok := e.(timed); ok {
			return false
		}
	}
	return true
}

// IsRestOnly reports whether m holds notes and they are all rests.
func (m *Measure) IsRestOnly() bool {
	found := false
	for _, e := range m.elements {
		switch x := e.(type) {
		case *Note:
			if !x.IsRest() {
				return false
			}
			found = true
		case *Chord, *Tuplet:
			return false
		}
	}
	return found
}

// Notes returns the notes of m in order, including those of chords and
// tuplets.
func (m *Measure) Notes() []*Note {
	var notes []*Note
	var collect func(elems []MeasureElement)
	collect = func(elems []MeasureElement) {
		for _, e := range elems {
			switch x := e.(type) {
			case *Note:
				notes = append(notes, x)
			case *Chord:
				notes = append(notes, x.notes...)
			case *Tuplet:
				collect(x.elements)
			}
		}
	}
	collect(m.elements)
	return notes
}

// NewbornClone returns a measure with the same numbers, pointed at segment
// and without elements.
func (m *Measure) NewbornClone(segment *Segment) *Measure {
	c := NewMeasure(m.line, m.number)
	c.puristNumber = m.puristNumber
	c.upLink = segment
	return c
}

// DeepClone returns a copy of m and its elements pointed at segment.
func (m *Measure) DeepClone(segment *Segment) *Measure {
	return m.deepClone(newCloner(), segment)
}

func (m *Measure) deepClone(cl *cloner, segment *Segment) *Measure {
	c := m.NewbornClone(segment)
	for _, e := range m.elements {
		c.AppendElement(cl.measureElement(e))
	}
	return c
}

func (m *Measure) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, m.elements)
}

func (m *Measure) ShortString() string {
	return fmt.Sprintf("Measure [%s, purist %d, %d elements, %s, line %d]",
		m.number, m.puristNumber, len(m.elements), m.position, m.line)
}

// Segment is a run of measures of one voice.
type Segment struct {
	element
	id       int
	upLink   *Voice
	measures []*Measure
}

// NewSegment returns an empty segment of voice, which may be nil.
func NewSegment(line int, voice *Voice) *Segment {
	s := &Segment{element: element{line: line}, upLink: voice}
	if voice != nil {
		voice.segmentsCounter++
		s.id = voice.segmentsCounter
	}
	return s
}

func (s *Segment) ID() int              { return s.id }
func (s *Segment) Voice() *Voice        { return s.upLink }
func (s *Segment) Measures() []*Measure { return s.measures }

// AppendMeasure appends m and points it at s.
func (s *Segment) AppendMeasure(m *Measure) {
	m.upLink = s
	s.measures = append(s.measures, m)
}

// LastMeasure returns the last measure, or nil.
func (s *Segment) LastMeasure() *Measure {
	if len(s.measures) == 0 {
		return nil
	}
	return s.measures[len(s.measures)-1]
}

// NewbornClone returns an empty segment of voice.
func (s *Segment) NewbornClone(voice *Voice) *Segment {
	return NewSegment(s.line, voice)
}

// DeepClone returns a copy of s and its measures, for voice.
func (s *Segment) DeepClone(voice *Voice) *Segment {
	return s.deepClone(newCloner(), voice)
}

func (s *Segment) deepClone(cl *cloner, voice *Voice) *Segment {
	c := s.NewbornClone(voice)
	for _, m := range s.measures {
		c.AppendMeasure(m.deepClone(cl, c))
	}
	return c
}

func (s *Segment) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, s.measures)
}

func (s *Segment) ShortString() string {
	return fmt.Sprintf("Segment [%d, %d measures, line %d]", s.id, len(s.measures), s.line)
}
