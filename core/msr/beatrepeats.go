package msr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// BeatRepeat is a measure-repeat sign: a pattern of measures and the
// replicas standing for its repetitions.
type BeatRepeat struct {
	element
	measuresNumber int
	slashesNumber  int
	upLink         *Voice

	pattern  *BeatRepeatPattern
	replicas *BeatRepeatReplicas
	builder  patternBuilder
}

// NewBeatRepeat returns a beat repeat spanning measuresNumber measures in
// phase JustCreated. Non-positive sizes are rejected.
func NewBeatRepeat(line, measuresNumber, slashesNumber int, voice *Voice) (*BeatRepeat, error) {
	if err := checkRepeatSizes(voice.context(), line, "beat repeat", measuresNumber, slashesNumber); err != nil {
		return nil, err
	}
	return &BeatRepeat{
		element:        element{line: line},
		measuresNumber: measuresNumber,
		slashesNumber:  slashesNumber,
		upLink:         voice,
		builder:        patternBuilder{kind: "BeatRepeat"},
	}, nil
}

func (br *BeatRepeat) MeasuresNumber() int           { return br.measuresNumber }
func (br *BeatRepeat) SlashesNumber() int            { return br.slashesNumber }
func (br *BeatRepeat) Voice() *Voice                 { return br.upLink }
func (br *BeatRepeat) Pattern() *BeatRepeatPattern   { return br.pattern }
func (br *BeatRepeat) Replicas() *BeatRepeatReplicas { return br.replicas }
func (br *BeatRepeat) Phase() PatternBuildPhase      { return br.builder.phase }

// SetPattern is legal in phase JustCreated and moves to InPattern.
func (br *BeatRepeat) SetPattern(p *BeatRepeatPattern) error {
	if p == nil {
		return br.upLink.context().InternalError(br.line, "beat repeat pattern is null")
	}
	if err := br.builder.advance(br.upLink.context(), p.line, "SetPattern", PatternJustCreated, PatternInPattern); err != nil {
		return err
	}
	p.upLink = br
	br.pattern = p
	return nil
}

// SetReplicas is legal in phase InPattern and moves to InReplicas.
func (br *BeatRepeat) SetReplicas(r *BeatRepeatReplicas) error {
	if r == nil {
		return br.upLink.context().InternalError(br.line, "beat repeat replicas is null")
	}
	if err := br.builder.advance(br.upLink.context(), r.line, "SetReplicas", PatternInPattern, PatternInReplicas); err != nil {
		return err
	}
	r.upLink = br
	br.replicas = r
	return nil
}

// Complete is legal in phase InReplicas.
func (br *BeatRepeat) Complete(line int) error {
	return br.builder.advance(br.upLink.context(), line, "Complete", PatternInReplicas, PatternCompleted)
}

// PatternMeasuresNumber is the number of measures in the pattern.
func (br *BeatRepeat) PatternMeasuresNumber() int {
	if br.pattern == nil {
		return 0
	}
	return br.pattern.MeasuresNumber()
}

// ReplicasMeasuresNumber is the number of measures in the replicas.
func (br *BeatRepeat) ReplicasMeasuresNumber() int {
	if br.replicas == nil {
		return 0
	}
	return br.replicas.MeasuresNumber()
}

// ReplicasNumber is how many times the pattern is replicated. It fails
// when the pattern or the replicas are missing or the pattern is empty.
func (br *BeatRepeat) ReplicasNumber() (int, error) {
	var p, r *segmentHolder
	if br.pattern != nil {
		p = &br.pattern.segmentHolder
	}
	if br.replicas != nil {
		r = &br.replicas.segmentHolder
	}
	return replicasNumber(br.upLink.context(), br.line, "beat repeat", p, r)
}

// NewbornClone returns a beat repeat of the same sizes in phase
// JustCreated, for voice.
func (br *BeatRepeat) NewbornClone(voice *Voice) *BeatRepeat {
	return &BeatRepeat{
		element:        element{line: br.line},
		measuresNumber: br.measuresNumber,
		slashesNumber:  br.slashesNumber,
		upLink:         voice,
		builder:        patternBuilder{kind: "BeatRepeat"},
	}
}

// DeepClone returns a copy of br, its pattern and replicas, in the same
// phase, for voice.
func (br *BeatRepeat) DeepClone(voice *Voice) *BeatRepeat {
	return br.deepClone(newCloner(), voice)
}

func (br *BeatRepeat) deepClone(cl *cloner, voice *Voice) *BeatRepeat {
	c := br.NewbornClone(voice)
	if br.pattern != nil {
		c.pattern = br.pattern.NewbornClone(c)
		if br.pattern.segment != nil {
			c.pattern.segment = br.pattern.segment.deepClone(cl, voice)
		}
	}
	if br.replicas != nil {
		c.replicas = br.replicas.NewbornClone(c)
		if br.replicas.segment != nil {
			c.replicas.segment = br.replicas.segment.deepClone(cl, voice)
		}
	}
	c.builder.phase = br.builder.phase
	return c
}

// BrowseData browses the pattern, then the replicas.
func (br *BeatRepeat) BrowseData(b *visit.Browser) error {
	if br.pattern != nil {
		if err := b.Browse(br.pattern); err != nil {
			return err
		}
	}
	if br.replicas != nil {
		return b.Browse(br.replicas)
	}
	return nil
}

func (br *BeatRepeat) ShortString() string {
	return fmt.Sprintf("BeatRepeat [%d measures, %d slashes, pattern %d, replicas %d, %s, line %d]",
		br.measuresNumber, br.slashesNumber, br.PatternMeasuresNumber(), br.ReplicasMeasuresNumber(), br.builder.phase, br.line)
}

// BeatRepeatPattern holds the beats to be repeated.
type BeatRepeatPattern struct {
	element
	segmentHolder
	upLink *BeatRepeat
}

// NewBeatRepeatPattern returns an empty pattern.
func NewBeatRepeatPattern(line int) *BeatRepeatPattern {
	return &BeatRepeatPattern{element: element{line: line}}
}

func (p *BeatRepeatPattern) BeatRepeat() *BeatRepeat { return p.upLink }

// AppendVoiceElement sets the pattern's segment. Anything else, or a
// second segment, is an internal error.
func (p *BeatRepeatPattern) AppendVoiceElement(line int, e VoiceElement) error {
	return p.setSegment(p.context(), line, "beat repeat pattern", e)
}

func (p *BeatRepeatPattern) context() *Context {
	if p.upLink == nil {
		return nil
	}
	return p.upLink.upLink.context()
}

// NewbornClone returns an empty pattern pointed at br.
func (p *BeatRepeatPattern) NewbornClone(br *BeatRepeat) *BeatRepeatPattern {
	c := NewBeatRepeatPattern(p.line)
	c.upLink = br
	return c
}

func (p *BeatRepeatPattern) BrowseData(b *visit.Browser) error {
	if p.segment == nil {
		return nil
	}
	return b.Browse(p.segment)
}

func (p *BeatRepeatPattern) ShortString() string {
	return fmt.Sprintf("BeatRepeatPattern [%d measures, line %d]", p.MeasuresNumber(), p.line)
}

// BeatRepeatReplicas holds the measures standing for the repetitions.
type BeatRepeatReplicas struct {
	element
	segmentHolder
	upLink *BeatRepeat
}

// NewBeatRepeatReplicas returns empty replicas.
func NewBeatRepeatReplicas(line int) *BeatRepeatReplicas {
	return &BeatRepeatReplicas{element: element{line: line}}
}

func (r *BeatRepeatReplicas) BeatRepeat() *BeatRepeat { return r.upLink }

// AppendVoiceElement sets the replicas' segment. Anything else, or a
// second segment, is an internal error.
func (r *BeatRepeatReplicas) AppendVoiceElement(line int, e VoiceElement) error {
	return r.setSegment(r.context(), line, "beat repeat replicas", e)
}

func (r *BeatRepeatReplicas) context() *Context {
	if r.upLink == nil {
		return nil
	}
	return r.upLink.upLink.context()
}

// NewbornClone returns empty replicas pointed at br.
func (r *BeatRepeatReplicas) NewbornClone(br *BeatRepeat) *BeatRepeatReplicas {
	c := NewBeatRepeatReplicas(r.line)
	c.upLink = br
	return c
}

func (r *BeatRepeatReplicas) BrowseData(b *visit.Browser) error {
	if r.segment == nil {
		return nil
	}
	return b.Browse(r.segment)
}

func (r *BeatRepeatReplicas) ShortString() string {
	return fmt.Sprintf("BeatRepeatReplicas [%d measures, line %d]", r.MeasuresNumber(), r.line)
}
