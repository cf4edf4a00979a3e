package msr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// UseSymbolsKind tells whether a multiple measure rest is drawn with
// old-style rest symbols rather than an H-bar.
type UseSymbolsKind int

const (
	UseSymbolsNo UseSymbolsKind = iota
	UseSymbolsYes
)

func (k UseSymbolsKind) String() string {
	if k == UseSymbolsYes {
		return "useSymbols"
	}
	return "noSymbols"
}

// MultipleMeasureRest is a run of rest-only measures drawn as one.
type MultipleMeasureRest struct {
	element
	slashesNumber int
	useSymbols    UseSymbolsKind
	upLink        *Voice
	measures      []*Measure

	lastMeasurePuristNumber int
}

// NewMultipleMeasureRest returns an empty multiple measure rest. Its last
// measure purist number is -1 until SetLastMeasurePuristNumber is called.
func NewMultipleMeasureRest(line, slashesNumber int, useSymbols UseSymbolsKind, voice *Voice) *MultipleMeasureRest {
	return &MultipleMeasureRest{
		element:                 element{line: line},
		slashesNumber:           slashesNumber,
		useSymbols:              useSymbols,
		upLink:                  voice,
		lastMeasurePuristNumber: -1,
	}
}

func (mmr *MultipleMeasureRest) SlashesNumber() int           { return mmr.slashesNumber }
func (mmr *MultipleMeasureRest) UseSymbols() UseSymbolsKind   { return mmr.useSymbols }
func (mmr *MultipleMeasureRest) Voice() *Voice                { return mmr.upLink }
func (mmr *MultipleMeasureRest) Measures() []*Measure         { return mmr.measures }
func (mmr *MultipleMeasureRest) MeasuresNumber() int          { return len(mmr.measures) }
func (mmr *MultipleMeasureRest) LastMeasurePuristNumber() int { return mmr.lastMeasurePuristNumber }

// AppendMeasure appends m and clears its segment up-link: the rest is not
// a segment.
func (mmr *MultipleMeasureRest) AppendMeasure(m *Measure) {
	m.upLink = nil
	mmr.measures = append(mmr.measures, m)
}

// SetLastMeasurePuristNumber records the purist number of the last
// measure, once all of them are known.
func (mmr *MultipleMeasureRest) SetLastMeasurePuristNumber() error {
	if len(mmr.measures) == 0 {
		return mmr.upLink.context().InternalError(mmr.line,
			"cannot set the last measure purist number of an empty multiple measure rest")
	}
	mmr.lastMeasurePuristNumber = mmr.measures[len(mmr.measures)-1].puristNumber
	return nil
}

// NewbornClone returns an empty multiple measure rest with the same
// display attributes, for voice.
func (mmr *MultipleMeasureRest) NewbornClone(voice *Voice) *MultipleMeasureRest {
	return NewMultipleMeasureRest(mmr.line, mmr.slashesNumber, mmr.useSymbols, voice)
}

// DeepClone returns a copy of mmr and its measures, for voice.
func (mmr *MultipleMeasureRest) DeepClone(voice *Voice) *MultipleMeasureRest {
	return mmr.deepClone(newCloner(), voice)
}

func (mmr *MultipleMeasureRest) deepClone(cl *cloner, voice *Voice) *MultipleMeasureRest {
	c := mmr.NewbornClone(voice)
	for _, m := range mmr.measures {
		c.AppendMeasure(m.deepClone(cl, nil))
	}
	c.lastMeasurePuristNumber = mmr.lastMeasurePuristNumber
	return c
}

func (mmr *MultipleMeasureRest) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, mmr.measures)
}

func (mmr *MultipleMeasureRest) ShortString() string {
	return fmt.Sprintf("MultipleMeasureRest [%d measures, last purist %d, %d slashes, %s, line %d]",
		len(mmr.measures), mmr.lastMeasurePuristNumber, mmr.slashesNumber, mmr.useSymbols, mmr.line)
}
