package msr

import (
	"fmt"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// flatView writes each voice on one line, its measures by number and its
// repeat structure as signs:
//
//	P1/1/1: 1 |: 2 3 [1 4 :| ] [2 5 ] 6 %2 R3(9-11)
type flatView struct {
	b      strings.Builder
	hidden int
}

func (f *flatView) word(s string) {
	f.b.WriteByte(' ')
	f.b.WriteString(s)
}

func (f *flatView) VisitVoiceStart(v *Voice) error {
	f.b.WriteString(v.Path() + ":")
	return nil
}

func (f *flatView) VisitVoiceEnd(*Voice) error {
	f.b.WriteByte('\n')
	return nil
}

func (f *flatView) VisitMeasureStart(m *Measure) error {
	if f.hidden == 0 {
		f.word(m.number)
	}
	return nil
}

func (f *flatView) VisitRepeatStart(r *Repeat) error {
	if r.explicitStart {
		f.word("|:")
	} else {
		f.word("(|:)")
	}
	return nil
}

func (f *flatView) VisitRepeatCommonPartEnd(cp *RepeatCommonPart) error {
	if len(cp.upLink.endings) == 0 {
		f.word(fmt.Sprintf(":|x%d", cp.upLink.times))
	}
	return nil
}

func (f *flatView) VisitRepeatEndingStart(e *RepeatEnding) error {
	f.word("[" + e.number)
	return nil
}

func (f *flatView) VisitRepeatEndingEnd(e *RepeatEnding) error {
	if e.kind == EndingHooked {
		f.word(":|")
	}
	f.word("]")
	return nil
}

func (f *flatView) VisitMeasureRepeatStart(mr *MeasureRepeat) error {
	n, err := mr.ReplicasNumber()
	if err != nil {
		return err
	}
	f.word(fmt.Sprintf("%%%d", n))
	f.hidden++
	return nil
}

func (f *flatView) VisitMeasureRepeatEnd(*MeasureRepeat) error {
	f.hidden--
	return nil
}

func (f *flatView) VisitBeatRepeatStart(br *BeatRepeat) error {
	f.word(fmt.Sprintf("/%d", br.slashesNumber))
	f.hidden++
	return nil
}

func (f *flatView) VisitBeatRepeatEnd(*BeatRepeat) error {
	f.hidden--
	return nil
}

func (f *flatView) VisitMultipleMeasureRestStart(mmr *MultipleMeasureRest) error {
	measures := mmr.Measures()
	span := ""
	if len(measures) > 0 {
		span = measures[0].number + "-" + measures[len(measures)-1].number
	}
	f.word(fmt.Sprintf("R%d(%s)", len(measures), span))
	f.hidden++
	return nil
}

func (f *flatView) VisitMultipleMeasureRestEnd(*MultipleMeasureRest) error {
	f.hidden--
	return nil
}

// FlatView lists every voice of e on one line, with its measure numbers
// and repeat signs.
func FlatView(e visit.Element, opts ...visit.Option) (string, error) {
	f := &flatView{}
	if err := visit.NewBrowser(f, opts...).Browse(e); err != nil {
		return "", err
	}
	return f.b.String(), nil
}
