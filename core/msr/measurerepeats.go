package msr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// MeasureRepeat is a measure-repeat sign: a pattern of measures and the
// replicas standing for its repetitions.
type MeasureRepeat struct {
	element
	measuresNumber int
	slashesNumber  int
	upLink         *Voice

	pattern  *MeasureRepeatPattern
	replicas *MeasureRepeatReplicas
	builder  patternBuilder
}

// NewMeasureRepeat returns a measure repeat of measuresNumber measures in
// phase JustCreated. Non-positive sizes are rejected.
func NewMeasureRepeat(line, measuresNumber, slashesNumber int, voice *Voice) (*MeasureRepeat, error) {
	if err := checkRepeatSizes(voice.context(), line, "measure repeat", measuresNumber, slashesNumber); err != nil {
		return nil, err
	}
	return &MeasureRepeat{
		element:        element{line: line},
		measuresNumber: measuresNumber,
		slashesNumber:  slashesNumber,
		upLink:         voice,
		builder:        patternBuilder{kind: "MeasureRepeat"},
	}, nil
}

func (mr *MeasureRepeat) MeasuresNumber() int              { return mr.measuresNumber }
func (mr *MeasureRepeat) SlashesNumber() int               { return mr.slashesNumber }
func (mr *MeasureRepeat) Voice() *Voice                    { return mr.upLink }
func (mr *MeasureRepeat) Pattern() *MeasureRepeatPattern   { return mr.pattern }
func (mr *MeasureRepeat) Replicas() *MeasureRepeatReplicas { return mr.replicas }
func (mr *MeasureRepeat) Phase() PatternBuildPhase         { return mr.builder.phase }

// SetPattern is legal in phase JustCreated and moves to InPattern.
func (mr *MeasureRepeat) SetPattern(p *MeasureRepeatPattern) error {
	if p == nil {
		return mr.upLink.context().InternalError(mr.line, "measure repeat pattern is null")
	}
	if err := mr.builder.advance(mr.upLink.context(), p.line, "SetPattern", PatternJustCreated, PatternInPattern); err != nil {
		return err
	}
	p.upLink = mr
	mr.pattern = p
	return nil
}

// SetReplicas is legal in phase InPattern and moves to InReplicas.
func (mr *MeasureRepeat) SetReplicas(r *MeasureRepeatReplicas) error {
	if r == nil {
		return mr.upLink.context().InternalError(mr.line, "measure repeat replicas is null")
	}
	if err := mr.builder.advance(mr.upLink.context(), r.line, "SetReplicas", PatternInPattern, PatternInReplicas); err != nil {
		return err
	}
	r.upLink = mr
	mr.replicas = r
	return nil
}

// Complete is legal in phase InReplicas.
func (mr *MeasureRepeat) Complete(line int) error {
	return mr.builder.advance(mr.upLink.context(), line, "Complete", PatternInReplicas, PatternCompleted)
}

// PatternMeasuresNumber is the number of measures in the pattern.
func (mr *MeasureRepeat) PatternMeasuresNumber() int {
	if mr.pattern == nil {
		return 0
	}
	return mr.pattern.MeasuresNumber()
}

// ReplicasMeasuresNumber is the number of measures in the replicas.
func (mr *MeasureRepeat) ReplicasMeasuresNumber() int {
	if mr.replicas == nil {
		return 0
	}
	return mr.replicas.MeasuresNumber()
}

// ReplicasNumber is how many times the pattern is replicated. It fails
// when the pattern or the replicas are missing or the pattern is empty.
func (mr *MeasureRepeat) ReplicasNumber() (int, error) {
	var p, r *segmentHolder
	if mr.pattern != nil {
		p = &mr.pattern.segmentHolder
	}
	if mr.replicas != nil {
		r = &mr.replicas.segmentHolder
	}
	return replicasNumber(mr.upLink.context(), mr.line, "measure repeat", p, r)
}

// NewbornClone returns a measure repeat of the same sizes in phase
// JustCreated, for voice.
func (mr *MeasureRepeat) NewbornClone(voice *Voice) *MeasureRepeat {
	return &MeasureRepeat{
		element:        element{line: mr.line},
		measuresNumber: mr.measuresNumber,
		slashesNumber:  mr.slashesNumber,
		upLink:         voice,
		builder:        patternBuilder{kind: "MeasureRepeat"},
	}
}

// DeepClone returns a copy of mr, its pattern and replicas, in the same
// phase, for voice.
func (mr *MeasureRepeat) DeepClone(voice *Voice) *MeasureRepeat {
	return mr.deepClone(newCloner(), voice)
}

func (mr *MeasureRepeat) deepClone(cl *cloner, voice *Voice) *MeasureRepeat {
	c := mr.NewbornClone(voice)
	if mr.pattern != nil {
		c.pattern = mr.pattern.NewbornClone(c)
		if mr.pattern.segment != nil {
			c.pattern.segment = mr.pattern.segment.deepClone(cl, voice)
		}
	}
	if mr.replicas != nil {
		c.replicas = mr.replicas.NewbornClone(c)
		if mr.replicas.segment != nil {
			c.replicas.segment = mr.replicas.segment.deepClone(cl, voice)
		}
	}
	c.builder.phase = mr.builder.phase
	return c
}

// BrowseData browses the pattern, then the replicas.
func (mr *MeasureRepeat) BrowseData(b *visit.Browser) error {
	if mr.pattern != nil {
		if err := b.Browse(mr.pattern); err != nil {
			return err
		}
	}
	if mr.replicas != nil {
		return b.Browse(mr.replicas)
	}
	return nil
}

func (mr *MeasureRepeat) ShortString() string {
	return fmt.Sprintf("MeasureRepeat [%d measures, %d slashes, pattern %d, replicas %d, %s, line %d]",
		mr.measuresNumber, mr.slashesNumber, mr.PatternMeasuresNumber(), mr.ReplicasMeasuresNumber(), mr.builder.phase, mr.line)
}

// MeasureRepeatPattern holds the measures to be repeated.
type MeasureRepeatPattern struct {
	element
	segmentHolder
	upLink *MeasureRepeat
}

// NewMeasureRepeatPattern returns an empty pattern.
func NewMeasureRepeatPattern(line int) *MeasureRepeatPattern {
	return &MeasureRepeatPattern{element: element{line: line}}
}

func (p *MeasureRepeatPattern) MeasureRepeat() *MeasureRepeat { return p.upLink }

// AppendVoiceElement sets the pattern's segment. Anything else, or a
// second segment, is an internal error.
func (p *MeasureRepeatPattern) AppendVoiceElement(line int, e VoiceElement) error {
	return p.setSegment(p.context(), line, "measure repeat pattern", e)
}

func (p *MeasureRepeatPattern) context() *Context {
	if p.upLink == nil {
		return nil
	}
	return p.upLink.upLink.context()
}

// NewbornClone returns an empty pattern pointed at mr.
func (p *MeasureRepeatPattern) NewbornClone(mr *MeasureRepeat) *MeasureRepeatPattern {
	c := NewMeasureRepeatPattern(p.line)
	c.upLink = mr
	return c
}

func (p *MeasureRepeatPattern) BrowseData(b *visit.Browser) error {
	if p.segment == nil {
		return nil
	}
	return b.Browse(p.segment)
}

func (p *MeasureRepeatPattern) ShortString() string {
	return fmt.Sprintf("MeasureRepeatPattern [%d measures, line %d]", p.MeasuresNumber(), p.line)
}

// MeasureRepeatReplicas holds the measures standing for the repetitions.
type MeasureRepeatReplicas struct {
	element
	segmentHolder
	upLink *MeasureRepeat
}

// NewMeasureRepeatReplicas returns empty replicas.
func NewMeasureRepeatReplicas(line int) *MeasureRepeatReplicas {
	return &MeasureRepeatReplicas{element: element{line: line}}
}

func (r *MeasureRepeatReplicas) MeasureRepeat() *MeasureRepeat { return r.upLink }

// AppendVoiceElement sets the replicas' segment. Anything else, or a
// second segment, is an internal error.
func (r *MeasureRepeatReplicas) AppendVoiceElement(line int, e VoiceElement) error {
	return r.setSegment(r.context(), line, "measure repeat replicas", e)
}

func (r *MeasureRepeatReplicas) context() *Context {
	if r.upLink == nil {
		return nil
	}
	return r.upLink.upLink.context()
}

// NewbornClone returns empty replicas pointed at mr.
func (r *MeasureRepeatReplicas) NewbornClone(mr *MeasureRepeat) *MeasureRepeatReplicas {
	c := NewMeasureRepeatReplicas(r.line)
	c.upLink = mr
	return c
}

func (r *MeasureRepeatReplicas) BrowseData(b *visit.Browser) error {
	if r.segment == nil {
		return nil
	}
	return b.Browse(r.segment)
}

func (r *MeasureRepeatReplicas) ShortString() string {
	return fmt.Sprintf("MeasureRepeatReplicas [%d measures, line %d]", r.MeasuresNumber(), r.line)
}
