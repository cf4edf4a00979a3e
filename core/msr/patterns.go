package msr

import (
	"fmt"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
)

// PatternBuildPhase is how far the construction of a measure or beat
// repeat has gone. Phases only move forward.
type PatternBuildPhase int

const (
	PatternJustCreated PatternBuildPhase = iota
	PatternInPattern
	PatternInReplicas
	PatternCompleted
)

func (p PatternBuildPhase) String() string {
	switch p {
	case PatternJustCreated:
		return "JustCreated"
	case PatternInPattern:
		return "InPattern"
	case PatternInReplicas:
		return "InReplicas"
	case PatternCompleted:
		return "Completed"
	default:
		return fmt.Sprintf("PatternBuildPhase(%d)", int(p))
	}
}

// patternBuilder is the build phase shared by MeasureRepeat and
// BeatRepeat.
type patternBuilder struct {
	kind  string
	phase PatternBuildPhase
}

// advance moves from from to to, or fails when the phase is not from.
func (p *patternBuilder) advance(ctx *Context, line int, operation string, from, to PatternBuildPhase) error {
	if p.phase != from {
		return mferrors.NewBuildPhase(ctx.Source(), line, p.kind+"."+operation, p.phase.String(),
			fmt.Sprintf("expected phase %s", from))
	}
	p.phase = to
	return nil
}

// segmentHolder is the single segment of a pattern or of replicas.
type segmentHolder struct {
	segment *Segment
}

func (h *segmentHolder) Segment() *Segment { return h.segment }

// MeasuresNumber returns the number of measures held.
func (h *segmentHolder) MeasuresNumber() int {
	if h.segment == nil {
		return 0
	}
	return len(h.segment.measures)
}

func (h *segmentHolder) setSegment(ctx *Context, line int, what string, e VoiceElement) error {
	s, ok := e.(*Segment)
	if !ok {
		return ctx.InternalError(line, "%s can only hold a segment, not %s", what, e.ShortString())
	}
	if h.segment != nil {
		return ctx.InternalError(line, "%s already holds %s", what, h.segment.ShortString())
	}
	h.segment = s
	return nil
}

// replicasNumber divides the replicas measures by the pattern measures.
func replicasNumber(ctx *Context, line int, kind string, pattern, replicas *segmentHolder) (int, error) {
	if pattern == nil {
		return 0, ctx.InternalError(line, "%s pattern is null", kind)
	}
	if replicas == nil {
		return 0, ctx.InternalError(line, "%s replicas is null", kind)
	}
	patternMeasures := pattern.MeasuresNumber()
	if patternMeasures <= 0 {
		return 0, ctx.InternalError(line, "%s patternMeasuresNumber is not positive", kind)
	}
	return replicas.MeasuresNumber() / patternMeasures, nil
}

func checkRepeatSizes(ctx *Context, line int, kind string, measuresNumber, slashesNumber int) error {
	if !ctx.Sanity() {
		return nil
	}
	if measuresNumber <= 0 {
		return ctx.InternalError(line, "%s measuresNumber %d is not positive", kind, measuresNumber)
	}
	if slashesNumber <= 0 {
		return ctx.InternalError(line, "%s slashesNumber %d is not positive", kind, slashesNumber)
	}
	return nil
}
