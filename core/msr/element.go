package msr

import (
	"github.com/jacques-menu/musicformats-sub010/core/rational"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// element holds what every MSR node carries.
type element struct {
	line int
}

func (e *element) InputLineNumber() int { return e.line }

// VoiceElement is a node a voice, a repeat part or an ending can hold.
type VoiceElement interface {
	visit.Element
	ShortString() string
	voiceElement()
}

func (*Segment) voiceElement()             {}
func (*Repeat) voiceElement()              {}
func (*MeasureRepeat) voiceElement()       {}
func (*BeatRepeat) voiceElement()          {}
func (*MultipleMeasureRest) voiceElement() {}

// MeasureElement is a node a measure can hold.
type MeasureElement interface {
	visit.Element
	ShortString() string
	measureElement()
}

func (*Note) measureElement()                      {}
func (*Chord) measureElement()                     {}
func (*Tuplet) measureElement()                    {}
func (*ClefKeyTimeSignatureGroup) measureElement() {}
func (*BarLine) measureElement()                   {}
func (*Tempo) measureElement()                     {}
func (*LineBreak) measureElement()                 {}
func (*PageBreak) measureElement()                 {}
func (*RehearsalMark) measureElement()             {}

// timed is a measure element that takes time.
type timed interface {
	MeasureElement
	SoundingWholeNotes() rational.Rational
	setPositionInMeasure(p rational.Rational)
	setMeasure(m *Measure)
}

// VoiceElementAppender is a container voice elements can be appended to.
type VoiceElementAppender interface {
	AppendVoiceElement(line int, e VoiceElement) error
}
