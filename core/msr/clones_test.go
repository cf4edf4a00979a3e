package msr

import (
	"testing"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

func TestScoreDeepClone(t *testing.T) {
	score := testScore(t)
	clone := score.DeepClone()

	if got, want := clone.String(), score.String(); got != want {
		t.Errorf("clone tree differs:\n%s\nwant:\n%s", got, want)
	}

	original := map[visit.Element]bool{}
	_ = visit.Walk(score, func(e visit.Element, _ int) { original[e] = true })
	_ = visit.Walk(clone, func(e visit.Element, _ int) {
		if original[e] {
			t.Errorf("clone shares %T with the original", e)
		}
	})

	cv := clone.Voices()[0]
	for _, syl := range cv.Stanzas()[0].Syllables() {
		if syl.Note() == nil {
			t.Fatalf("cloned syllable %q has no note", syl.Text())
		}
		if original[syl.Note()] {
			t.Errorf("cloned syllable %q is attached to an original note", syl.Text())
		}
		if syl.Note().Measure() == nil || syl.Note().Measure().Voice() != cv {
			t.Errorf("cloned syllable %q note is not in the cloned voice", syl.Text())
		}
	}

	if err := cv.AppendMeasure(fourQuarters("5")); err != nil {
		t.Fatal(err)
	}
	if got := len(score.Voices()[0].Measures()); got != 4 {
		t.Errorf("original measures = %d after changing the clone, want 4", got)
	}
}

func TestNewbornClones(t *testing.T) {
	score := testScore(t)
	v := score.Voices()[0]

	nv := v.NewbornClone(nil)
	if len(nv.Elements()) != 0 || len(nv.Stanzas()) != 0 {
		t.Errorf("newborn voice has %d elements and %d stanzas, want none", len(nv.Elements()), len(nv.Stanzas()))
	}
	if nv.Number() != v.Number() || nv.Context() != v.Context() {
		t.Error("newborn voice lost its number or context")
	}

	var r *Repeat
	for _, e := range v.Elements() {
		if x, ok := e.(*Repeat); ok {
			r = x
		}
	}
	if r == nil {
		t.Fatal("test score has no repeat")
	}
	if got := r.NewbornClone(nv).Phase(); got != RepeatJustCreated {
		t.Errorf("newborn repeat phase = %s, want JustCreated", got)
	}
	if got := r.DeepClone(nv).Phase(); got != RepeatCompleted {
		t.Errorf("deep-cloned repeat phase = %s, want Completed", got)
	}

	m := v.Measures()[0]
	nm := m.NewbornClone(nil)
	if nm.Number() != m.Number() || nm.PuristNumber() != m.PuristNumber() || len(nm.Elements()) != 0 {
		t.Errorf("newborn measure = %s, want numbers of %s and no elements", nm.ShortString(), m.ShortString())
	}

	n := m.Notes()[0]
	nn := n.NewbornClone()
	if nn.PitchString() != n.PitchString() || len(nn.Dynamics()) != 0 {
		t.Errorf("newborn note = %s with %d dynamics, want %s without", nn, len(nn.Dynamics()), n)
	}
	if dn := n.DeepClone(); len(dn.Dynamics()) != 1 {
		t.Errorf("deep-cloned note dynamics = %d, want 1", len(dn.Dynamics()))
	}
}

func TestGroupClones(t *testing.T) {
	g := NewClefKeyTimeSignatureGroup(1, NewClef(1, ClefAlto, 1), NewKey(1, 3, ModeMinor), nil)
	if !g.NewbornClone().IsEmpty() {
		t.Error("newborn group is not empty")
	}
	c := g.DeepClone()
	if c.Clef() == g.Clef() || c.Clef().Kind() != ClefAlto {
		t.Error("deep-cloned group does not hold a copy of the clef")
	}
	if c.TimeSignature() != nil {
		t.Error("deep-cloned group gained a time signature")
	}
}
