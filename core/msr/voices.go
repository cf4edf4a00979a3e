package msr

import (
	"fmt"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// Voice is one voice of a staff: a sequence of voice elements and the
// stanzas sung by it.
//
// Besides the plain AppendVoiceElement used by passes that copy an already
// structured voice, Voice builds repeats from the events a front end reads
// in order: HandleRepeatStart, HandleRepeatEnd, HandleEndingStart,
// HandleEndingEnd and AppendMeasure. Finalize completes what is left open.
type Voice struct {
	element
	number   int
	name     string
	upLink   *Staff
	ctx      *Context
	elements []VoiceElement
	stanzas  []*Stanza

	segmentsCounter int
	measuresCounter int

	currentSegment *Segment
	openRepeats    []*openRepeat
	pendingEnding  *pendingEnding
}

type openRepeat struct {
	repeat  *Repeat
	endSeen bool
}

type pendingEnding struct {
	line     int
	number   string
	elements []VoiceElement
}

// NewVoice returns an empty voice using ctx for diagnostics.
func NewVoice(line, number int, ctx *Context) *Voice {
	return &Voice{element: element{line: line}, number: number, ctx: ctx}
}

func (v *Voice) Number() int              { return v.number }
func (v *Voice) Name() string             { return v.name }
func (v *Voice) SetName(name string)      { v.name = name }
func (v *Voice) Staff() *Staff            { return v.upLink }
func (v *Voice) Elements() []VoiceElement { return v.elements }
func (v *Voice) Stanzas() []*Stanza       { return v.stanzas }
func (v *Voice) Context() *Context        { return v.ctx }
func (v *Voice) SetContext(ctx *Context)  { v.ctx = ctx }

func (v *Voice) context() *Context {
	if v == nil {
		return nil
	}
	return v.ctx
}

// Path returns "partID/staff/voice", or just the voice number when v is
// not attached to a part.
func (v *Voice) Path() string {
	if v.upLink == nil || v.upLink.upLink == nil {
		return fmt.Sprint(v.number)
	}
	return fmt.Sprintf("%s/%d/%d", v.upLink.upLink.id, v.upLink.number, v.number)
}

// AppendVoiceElement appends e at the end of the voice, without any repeat
// handling.
func (v *Voice) AppendVoiceElement(_ int, e VoiceElement) error {
	v.elements = append(v.elements, e)
	return nil
}

// AppendStanza appends s and points it at v.
func (v *Voice) AppendStanza(s *Stanza) {
	s.upLink = v
	v.stanzas = append(v.stanzas, s)
}

// Stanza returns the stanza numbered number, or nil.
func (v *Voice) Stanza(number string) *Stanza {
	for _, s := range v.stanzas {
		if s.number == number {
			return s
		}
	}
	return nil
}

// StanzaOrCreate returns the stanza numbered number, creating it if
// needed.
func (v *Voice) StanzaOrCreate(line int, number string) *Stanza {
	if s := v.Stanza(number); s != nil {
		return s
	}
	s := NewStanza(line, number, v)
	v.AppendStanza(s)
	return s
}

// Measures returns every measure of the voice in order, including those
// inside repeats and multiple measure rests.
func (v *Voice) Measures() []*Measure {
	var measures []*Measure
	_ = visit.Walk(v, func(e visit.Element, _ int) {
		if m, ok := e.(*Measure); ok {
			measures = append(measures, m)
		}
	})
	return measures
}

// AssignPuristNumber gives m the next purist number of the voice.
func (v *Voice) AssignPuristNumber(m *Measure) {
	v.measuresCounter++
	m.puristNumber = v.measuresCounter
}

// AppendMeasure assigns m its purist number and appends it to the current
// segment, starting a new one where the repeat structure requires it.
func (v *Voice) AppendMeasure(m *Measure) error {
	v.AssignPuristNumber(m)
	if v.currentSegment == nil {
		s := NewSegment(m.line, v)
		if err := v.place(m.line, s); err != nil {
			return err
		}
		v.currentSegment = s
	}
	v.currentSegment.AppendMeasure(m)
	return nil
}

// AppendMeasureRepeat closes the current segment and appends mr.
func (v *Voice) AppendMeasureRepeat(mr *MeasureRepeat) error {
	v.currentSegment = nil
	return v.place(mr.line, mr)
}

// AppendBeatRepeat closes the current segment and appends br.
func (v *Voice) AppendBeatRepeat(br *BeatRepeat) error {
	v.currentSegment = nil
	return v.place(br.line, br)
}

// AppendMultipleMeasureRest closes the current segment and appends mmr.
func (v *Voice) AppendMultipleMeasureRest(mmr *MultipleMeasureRest) error {
	v.currentSegment = nil
	return v.place(mmr.line, mmr)
}

// HandleRepeatStart opens an explicitly started repeat.
func (v *Voice) HandleRepeatStart(line int) error {
	v.currentSegment = nil
	if v.pendingEnding != nil {
		return mferrors.NewMsr(v.ctx.Source(), line,
			"repeat start inside repeat ending '%s' is not supported", v.pendingEnding.number)
	}
	if err := v.settle(line); err != nil {
		return err
	}

	r := NewRepeat(line, 2, v)
	r.explicitStart = true
	if err := r.SetCommonPart(NewRepeatCommonPart(line)); err != nil {
		return err
	}
	if err := v.container().AppendVoiceElement(line, r); err != nil {
		return err
	}
	v.openRepeats = append(v.openRepeats, &openRepeat{repeat: r})
	return nil
}

// HandleRepeatEnd handles a backward repeat played times times in all. A
// repeat end without an open repeat starts one implicitly, whose common
// part is made of the segments just before.
func (v *Voice) HandleRepeatEnd(line, times int) error {
	v.currentSegment = nil
	if top := v.top(); top != nil {
		switch {
		case v.pendingEnding != nil, top.repeat.phase == RepeatInEndings:
			top.repeat.times = times
			return nil
		case top.repeat.phase == RepeatInCommonPart && !top.endSeen:
			top.repeat.times = times
			top.endSeen = true
			return nil
		}
	}

	if err := v.settle(line); err != nil {
		return err
	}
	top, err := v.openImplicitRepeat(line)
	if err != nil {
		return err
	}
	top.repeat.times = times
	top.endSeen = true
	return nil
}

// HandleEndingStart starts collecting the measures of ending number. A
// first ending without an open repeat starts one implicitly.
func (v *Voice) HandleEndingStart(line int, number string) error {
	v.currentSegment = nil
	if v.pendingEnding != nil {
		return mferrors.NewMsr(v.ctx.Source(), line,
			"repeat ending '%s' starts inside repeat ending '%s'", number, v.pendingEnding.number)
	}

	top := v.top()
	if top == nil || top.repeat.phase == RepeatCompleted {
		if err := v.settle(line); err != nil {
			return err
		}
		if _, err := v.openImplicitRepeat(line); err != nil {
			return err
		}
	}
	v.pendingEnding = &pendingEnding{line: line, number: number}
	return nil
}

// HandleEndingEnd adds the collected ending to the open repeat. A hookless
// ending completes the repeat.
func (v *Voice) HandleEndingEnd(line int, kind RepeatEndingKind) error {
	v.currentSegment = nil
	pe := v.pendingEnding
	if pe == nil {
		return mferrors.NewMsr(v.ctx.Source(), line, "repeat ending stop without a matching start")
	}
	v.pendingEnding = nil

	top := v.top()
	if top == nil {
		return v.ctx.InternalError(line, "repeat ending '%s' has no repeat to go to", pe.number)
	}
	e := NewRepeatEnding(pe.line, pe.number, kind)
	e.elements = pe.elements
	if err := top.repeat.AddEnding(e); err != nil {
		return err
	}
	if top.repeat.phase == RepeatCompleted {
		v.pop()
	}
	return nil
}

// Finalize completes the repeats and ending left open at the end of the
// voice, with a warning for each.
func (v *Voice) Finalize(line int) error {
	v.currentSegment = nil
	if pe := v.pendingEnding; pe != nil {
		v.ctx.Warn(line, "repeat ending '%s' is not stopped, closing it as hookless", pe.number)
		if err := v.HandleEndingEnd(line, EndingHookless); err != nil {
			return err
		}
	}
	for top := v.top(); top != nil; top = v.top() {
		r := top.repeat
		if r.phase != RepeatCompleted {
			if r.phase == RepeatInCommonPart && !top.endSeen {
				v.ctx.Warn(r.line, "repeat has no end, completing it at the end of the voice")
			}
			if err := r.Complete(line); err != nil {
				return err
			}
		}
		v.pop()
	}
	return nil
}

// place appends e where the voice currently grows: the pending ending,
// the innermost open repeat, or the voice itself.
func (v *Voice) place(line int, e VoiceElement) error {
	if v.pendingEnding != nil {
		v.pendingEnding.elements = append(v.pendingEnding.elements, e)
		return nil
	}
	if err := v.settle(line); err != nil {
		return err
	}
	return v.container().AppendVoiceElement(line, e)
}

func (v *Voice) container() VoiceElementAppender {
	if top := v.top(); top != nil {
		return top.repeat
	}
	return v
}

// settle completes and closes the open repeats new music cannot belong to
// any more: those whose endings are over and those whose end was seen
// with no ending following.
func (v *Voice) settle(line int) error {
	for top := v.top(); top != nil; top = v.top() {
		r := top.repeat
		switch {
		case r.phase == RepeatCompleted:
		case r.phase == RepeatInEndings, r.phase == RepeatInCommonPart && top.endSeen:
			if err := r.Complete(line); err != nil {
				return err
			}
		default:
			return nil
		}
		v.pop()
	}
	return nil
}

// openImplicitRepeat opens a repeat whose common part takes the trailing
// segments of the current container.
func (v *Voice) openImplicitRepeat(line int) (*openRepeat, error) {
	elems := &v.elements
	if top := v.top(); top != nil {
		elems = top.repeat.currentElements()
	}

	cut := len(*elems)
	for cut > 0 {
		if _, ok := (*elems)[cut-1].(*Segment); !ok {
			break
		}
		cut--
	}
	moved := append([]VoiceElement(nil), (*elems)[cut:]...)
	*elems = (*elems)[:cut]
	if len(moved) == 0 {
		v.ctx.Warn(line, "implicit repeat start with no preceding measures")
	}

	r := NewRepeat(line, 2, v)
	cp := NewRepeatCommonPart(line)
	cp.elements = moved
	if err := r.SetCommonPart(cp); err != nil {
		return nil, err
	}
	if err := v.container().AppendVoiceElement(line, r); err != nil {
		return nil, err
	}
	top := &openRepeat{repeat: r}
	v.openRepeats = append(v.openRepeats, top)
	return top, nil
}

func (v *Voice) top() *openRepeat {
	if len(v.openRepeats) == 0 {
		return nil
	}
	return v.openRepeats[len(v.openRepeats)-1]
}

func (v *Voice) pop() {
	v.openRepeats = v.openRepeats[:len(v.openRepeats)-1]
}

// NewbornClone returns an empty voice with the same number, name and
// context, for staff.
func (v *Voice) NewbornClone(staff *Staff) *Voice {
	c := NewVoice(v.line, v.number, v.ctx)
	c.name = v.name
	c.upLink = staff
	return c
}

// DeepClone returns a copy of v, its elements and its stanzas, for staff.
// Syllables are attached to the copies of their notes.
func (v *Voice) DeepClone(staff *Staff) *Voice {
	return v.deepClone(newCloner(), staff)
}

func (v *Voice) deepClone(cl *cloner, staff *Staff) *Voice {
	c := v.NewbornClone(staff)
	c.elements = cl.voiceElements(v.elements, c)
	for _, s := range v.stanzas {
		c.AppendStanza(s.deepClone(cl, c))
	}
	c.measuresCounter = v.measuresCounter
	return c
}

// BrowseData browses the voice elements, then the stanzas.
func (v *Voice) BrowseData(b *visit.Browser) error {
	if err := visit.BrowseAll(b, v.elements); err != nil {
		return err
	}
	return visit.BrowseAll(b, v.stanzas)
}

func (v *Voice) ShortString() string {
	return fmt.Sprintf("Voice [%s, %d elements, %d stanzas, line %d]", v.Path(), len(v.elements), len(v.stanzas), v.line)
}
