package msr

import (
	"fmt"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// RepeatBuildPhase is how far the construction of a repeat has gone.
// Phases only move forward.
type RepeatBuildPhase int

const (
	RepeatJustCreated RepeatBuildPhase = iota
	RepeatInCommonPart
	RepeatInEndings
	RepeatCompleted
)

func (p RepeatBuildPhase) String() string {
	switch p {
	case RepeatJustCreated:
		return "JustCreated"
	case RepeatInCommonPart:
		return "InCommonPart"
	case RepeatInEndings:
		return "InEndings"
	case RepeatCompleted:
		return "Completed"
	default:
		return fmt.Sprintf("RepeatBuildPhase(%d)", int(p))
	}
}

// RepeatEndingKind tells whether an ending is closed by a hook at its end.
type RepeatEndingKind int

const (
	EndingHooked RepeatEndingKind = iota
	EndingHookless
)

func (k RepeatEndingKind) String() string {
	if k == EndingHookless {
		return "hookless"
	}
	return "hooked"
}

// Repeat is a repeated passage: a common part played every time, then
// zero or more endings. A repeat is recognized by its start, by its first
// hooked ending (what precedes becomes the common part) or by its end; a
// hookless ending terminates it.
type Repeat struct {
	element
	times         int
	explicitStart bool
	upLink        *Voice

	commonPart     *RepeatCommonPart
	endings        []*RepeatEnding
	endingsCounter int

	phase RepeatBuildPhase
}

// NewRepeat returns a repeat in phase JustCreated.
func NewRepeat(line, times int, voice *Voice) *Repeat {
	return &Repeat{element: element{line: line}, times: times, upLink: voice}
}

func (r *Repeat) Times() int                     { return r.times }
func (r *Repeat) SetTimes(times int)             { r.times = times }
func (r *Repeat) ExplicitStart() bool            { return r.explicitStart }
func (r *Repeat) SetExplicitStart(explicit bool) { r.explicitStart = explicit }
func (r *Repeat) Voice() *Voice                  { return r.upLink }
func (r *Repeat) CommonPart() *RepeatCommonPart  { return r.commonPart }
func (r *Repeat) Endings() []*RepeatEnding       { return r.endings }
func (r *Repeat) Phase() RepeatBuildPhase        { return r.phase }

func (r *Repeat) context() *Context { return r.upLink.context() }

func (r *Repeat) phaseError(line int, operation, message string) error {
	return mferrors.NewBuildPhase(r.context().Source(), line, "Repeat."+operation, r.phase.String(), message)
}

// SetCommonPart gives the repeat its common part. It is legal only in
// phase JustCreated and moves to InCommonPart.
func (r *Repeat) SetCommonPart(cp *RepeatCommonPart) error {
	if cp == nil {
		return r.context().InternalError(r.line, "repeat common part is null")
	}
	if r.phase != RepeatJustCreated {
		return r.phaseError(cp.line, "SetCommonPart", "the repeat already has a common part")
	}
	cp.upLink = r
	r.commonPart = cp
	r.phase = RepeatInCommonPart
	return nil
}

// AddEnding appends an ending and numbers it. A hooked ending is legal
// after the common part or another ending. A hookless ending completes
// the repeat; right after the common part it is accepted with a warning.
func (r *Repeat) AddEnding(e *RepeatEnding) error {
	if e == nil {
		return r.context().InternalError(r.line, "repeat ending is null")
	}

	switch e.kind {
	case EndingHooked:
		switch r.phase {
		case RepeatJustCreated:
			return r.phaseError(e.line, "AddEnding",
				fmt.Sprintf("cannot add hooked repeat ending '%s' to a repeat without a common part", e.number))
		case RepeatInCommonPart, RepeatInEndings:
			r.appendEnding(e)
			r.phase = RepeatInEndings
		case RepeatCompleted:
			return r.phaseError(e.line, "AddEnding",
				fmt.Sprintf("cannot add hooked repeat ending '%s' to a completed repeat", e.number))
		}

	case EndingHookless:
		switch r.phase {
		case RepeatJustCreated:
			return r.phaseError(e.line, "AddEnding",
				fmt.Sprintf("cannot add hookless repeat ending '%s' to a repeat without a common part", e.number))
		case RepeatInCommonPart:
			r.context().Warn(e.line,
				"cannot add hookless repeat ending '%s' right after the repeat common part, adding it anyway", e.number)
			r.appendEnding(e)
			r.phase = RepeatCompleted
		case RepeatInEndings:
			r.appendEnding(e)
			r.phase = RepeatCompleted
		case RepeatCompleted:
			return r.phaseError(e.line, "AddEnding",
				fmt.Sprintf("cannot add hookless repeat ending '%s' to a completed repeat", e.number))
		}
	}
	return nil
}

func (r *Repeat) appendEnding(e *RepeatEnding) {
	r.endingsCounter++
	e.internalNumber = r.endingsCounter
	e.upLink = r
	r.endings = append(r.endings, e)
}

// Complete marks the repeat as finished. It is legal once the common part
// is set and the repeat is not completed yet.
func (r *Repeat) Complete(line int) error {
	switch r.phase {
	case RepeatInCommonPart, RepeatInEndings:
		r.phase = RepeatCompleted
		return nil
	default:
		return r.phaseError(line, "Complete", "the repeat cannot be completed in this phase")
	}
}

// AppendVoiceElement appends e to the common part or, once endings have
// started, to the last ending.
func (r *Repeat) AppendVoiceElement(line int, e VoiceElement) error {
	return r.appendElement("AppendVoiceElement", line, e)
}

func (r *Repeat) AppendSegment(line int, s *Segment) error {
	return r.appendElement("AppendSegment", line, s)
}

func (r *Repeat) AppendRepeat(line int, inner *Repeat) error {
	return r.appendElement("AppendRepeat", line, inner)
}

func (r *Repeat) AppendMeasureRepeat(line int, mr *MeasureRepeat) error {
	return r.appendElement("AppendMeasureRepeat", line, mr)
}

func (r *Repeat) AppendBeatRepeat(line int, br *BeatRepeat) error {
	return r.appendElement("AppendBeatRepeat", line, br)
}

func (r *Repeat) AppendMultipleMeasureRest(line int, mmr *MultipleMeasureRest) error {
	return r.appendElement("AppendMultipleMeasureRest", line, mmr)
}

func (r *Repeat) appendElement(operation string, line int, e VoiceElement) error {
	switch r.phase {
	case RepeatInCommonPart:
		r.commonPart.elements = append(r.commonPart.elements, e)
		return nil
	case RepeatInEndings:
		last := r.endings[len(r.endings)-1]
		last.elements = append(last.elements, e)
		return nil
	default:
		return r.phaseError(line, operation, fmt.Sprintf("cannot append %s", e.ShortString()))
	}
}

// currentElements is the list appends currently go to, nil when appending
// is illegal.
func (r *Repeat) currentElements() *[]VoiceElement {
	switch r.phase {
	case RepeatInCommonPart:
		return &r.commonPart.elements
	case RepeatInEndings:
		return &r.endings[len(r.endings)-1].elements
	default:
		return nil
	}
}

// NewbornClone returns a repeat with the same times and start kind, in
// phase JustCreated, for voice.
func (r *Repeat) NewbornClone(voice *Voice) *Repeat {
	c := NewRepeat(r.line, r.times, voice)
	c.explicitStart = r.explicitStart
	return c
}

// DeepClone returns a copy of r, its common part and its endings, in the
// same phase, for voice.
func (r *Repeat) DeepClone(voice *Voice) *Repeat {
	return r.deepClone(newCloner(), voice)
}

func (r *Repeat) deepClone(cl *cloner, voice *Voice) *Repeat {
	c := r.NewbornClone(voice)
	if r.commonPart != nil {
		cp := r.commonPart.NewbornClone(c)
		cp.elements = cl.voiceElements(r.commonPart.elements, voice)
		c.commonPart = cp
	}
	for _, e := range r.endings {
		ec := e.NewbornClone(c)
		ec.internalNumber = e.internalNumber
		ec.elements = cl.voiceElements(e.elements, voice)
		c.endings = append(c.endings, ec)
	}
	c.endingsCounter = r.endingsCounter
	c.phase = r.phase
	return c
}

// BrowseData browses the common part, then the endings.
func (r *Repeat) BrowseData(b *visit.Browser) error {
	if r.commonPart != nil {
		if err := b.Browse(r.commonPart); err != nil {
			return err
		}
	}
	return visit.BrowseAll(b, r.endings)
}

func (r *Repeat) ShortString() string {
	start := "implicit"
	if r.explicitStart {
		start = "explicit"
	}
	return fmt.Sprintf("Repeat [%d times, %s start, %d endings, %s, line %d]",
		r.times, start, len(r.endings), r.phase, r.line)
}

// RepeatCommonPart is the part of a repeat played every time.
type RepeatCommonPart struct {
	element
	upLink   *Repeat
	elements []VoiceElement
}

// NewRepeatCommonPart returns an empty common part.
func NewRepeatCommonPart(line int) *RepeatCommonPart {
	return &RepeatCommonPart{element: element{line: line}}
}

func (cp *RepeatCommonPart) Repeat() *Repeat          { return cp.upLink }
func (cp *RepeatCommonPart) Elements() []VoiceElement { return cp.elements }

// AppendVoiceElement appends e.
func (cp *RepeatCommonPart) AppendVoiceElement(_ int, e VoiceElement) error {
	cp.elements = append(cp.elements, e)
	return nil
}

// NewbornClone returns an empty common part pointed at repeat.
func (cp *RepeatCommonPart) NewbornClone(repeat *Repeat) *RepeatCommonPart {
	c := NewRepeatCommonPart(cp.line)
	c.upLink = repeat
	return c
}

func (cp *RepeatCommonPart) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, cp.elements)
}

func (cp *RepeatCommonPart) ShortString() string {
	return fmt.Sprintf("RepeatCommonPart [%d elements, line %d]", len(cp.elements), cp.line)
}

// RepeatEnding is one alternative ending of a repeat, numbered as printed
// ("1", "1, 2") and internally from 1 in order of addition.
type RepeatEnding struct {
	element
	number         string
	kind           RepeatEndingKind
	internalNumber int
	upLink         *Repeat
	elements       []VoiceElement
}

// NewRepeatEnding returns an empty ending.
func NewRepeatEnding(line int, number string, kind RepeatEndingKind) *RepeatEnding {
	return &RepeatEnding{element: element{line: line}, number: number, kind: kind}
}

func (e *RepeatEnding) Number() string           { return e.number }
func (e *RepeatEnding) Kind() RepeatEndingKind   { return e.kind }
func (e *RepeatEnding) InternalNumber() int      { return e.internalNumber }
func (e *RepeatEnding) Repeat() *Repeat          { return e.upLink }
func (e *RepeatEnding) Elements() []VoiceElement { return e.elements }

// AppendVoiceElement appends x.
func (e *RepeatEnding) AppendVoiceElement(_ int, x VoiceElement) error {
	e.elements = append(e.elements, x)
	return nil
}

// NewbornClone returns an empty ending with the same number and kind,
// pointed at repeat.
func (e *RepeatEnding) NewbornClone(repeat *Repeat) *RepeatEnding {
	c := NewRepeatEnding(e.line, e.number, e.kind)
	c.upLink = repeat
	return c
}

func (e *RepeatEnding) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, e.elements)
}

func (e *RepeatEnding) ShortString() string {
	return fmt.Sprintf("RepeatEnding [%q %s, internal %d, %d elements, line %d]",
		e.number, e.kind, e.internalNumber, len(e.elements), e.line)
}
