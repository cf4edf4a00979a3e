package msr

// cloner carries what a deep clone must share across the tree: the copies
// of the notes, so the stanzas of a copied voice can be pointed at them.
type cloner struct {
	notes map[*Note]*Note
}

func newCloner() *cloner {
	return &cloner{notes: make(map[*Note]*Note)}
}

func (cl *cloner) voiceElements(elems []VoiceElement, voice *Voice) []VoiceElement {
	if elems == nil {
		return nil
	}
	out := make([]VoiceElement, 0, len(elems))
	for _, e := range elems {
		out = append(out, cl.voiceElement(e, voice))
	}
	return out
}

func (cl *cloner) voiceElement(e VoiceElement, voice *Voice) VoiceElement {
	switch x := e.(type) {
	case *Segment:
		return x.deepClone(cl, voice)
	case *Repeat:
		return x.deepClone(cl, voice)
	case *MeasureRepeat:
		return x.deepClone(cl, voice)
	case *BeatRepeat:
		return x.deepClone(cl, voice)
	case *MultipleMeasureRest:
		return x.deepClone(cl, voice)
	}
	panic("msr: unknown voice element " + e.ShortString())
}

func (cl *cloner) measureElement(e MeasureElement) MeasureElement {
	switch x := e.(type) {
	case *Note:
		return x.deepClone(cl)
	case *Chord:
		return x.deepClone(cl)
	case *Tuplet:
		return x.deepClone(cl)
	case *ClefKeyTimeSignatureGroup:
		return x.DeepClone()
	case *BarLine:
		return x.Clone()
	case *Tempo:
		return x.Clone()
	case *LineBreak:
		return x.Clone()
	case *PageBreak:
		return x.Clone()
	case *RehearsalMark:
		return x.Clone()
	}
	panic("msr: unknown measure element " + e.ShortString())
}

// DeepClone returns a copy of cp and its elements pointed at repeat.
func (cp *RepeatCommonPart) DeepClone(repeat *Repeat) *RepeatCommonPart {
	c := cp.NewbornClone(repeat)
	c.elements = newCloner().voiceElements(cp.elements, repeat.Voice())
	return c
}

// DeepClone returns a copy of e and its elements pointed at repeat. The
// internal number is kept.
func (e *RepeatEnding) DeepClone(repeat *Repeat) *RepeatEnding {
	c := e.NewbornClone(repeat)
	c.internalNumber = e.internalNumber
	c.elements = newCloner().voiceElements(e.elements, repeat.Voice())
	return c
}

// DeepClone returns a copy of p and its segment pointed at mr.
func (p *MeasureRepeatPattern) DeepClone(mr *MeasureRepeat) *MeasureRepeatPattern {
	c := p.NewbornClone(mr)
	if p.segment != nil {
		c.segment = p.segment.DeepClone(mr.upLink)
	}
	return c
}

// DeepClone returns a copy of r and its segment pointed at mr.
func (r *MeasureRepeatReplicas) DeepClone(mr *MeasureRepeat) *MeasureRepeatReplicas {
	c := r.NewbornClone(mr)
	if r.segment != nil {
		c.segment = r.segment.DeepClone(mr.upLink)
	}
	return c
}

// DeepClone returns a copy of p and its segment pointed at br.
func (p *BeatRepeatPattern) DeepClone(br *BeatRepeat) *BeatRepeatPattern {
	c := p.NewbornClone(br)
	if p.segment != nil {
		c.segment = p.segment.DeepClone(br.upLink)
	}
	return c
}

// DeepClone returns a copy of r and its segment pointed at br.
func (r *BeatRepeatReplicas) DeepClone(br *BeatRepeat) *BeatRepeatReplicas {
	c := r.NewbornClone(br)
	if r.segment != nil {
		c.segment = r.segment.DeepClone(br.upLink)
	}
	return c
}
