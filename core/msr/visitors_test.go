package msr

import (
	"errors"
	"strings"
	"testing"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

type noteCounter struct {
	starts, ends int
}

func (c *noteCounter) VisitNoteStart(*Note) error { c.starts++; return nil }
func (c *noteCounter) VisitNoteEnd(*Note) error   { c.ends++; return nil }

// kindRecorder opts in for clefs and measures only.
type kindRecorder struct {
	kinds []string
}

func (r *kindRecorder) VisitClefStart(*Clef) error       { r.kinds = append(r.kinds, "clef"); return nil }
func (r *kindRecorder) VisitMeasureStart(*Measure) error { r.kinds = append(r.kinds, "measure"); return nil }
func (r *kindRecorder) VisitMeasureEnd(*Measure) error   { r.kinds = append(r.kinds, "/measure"); return nil }

func TestVisitorOptIn(t *testing.T) {
	score := testScore(t)

	var notes, measures int
	_ = visit.Walk(score, func(e visit.Element, _ int) {
		switch e.(type) {
		case *Note:
			notes++
		case *Measure:
			measures++
		}
	})

	c := &noteCounter{}
	if err := visit.NewBrowser(c).Browse(score); err != nil {
		t.Fatalf("Browse() error = %v", err)
	}
	if c.starts != notes || c.ends != notes {
		t.Errorf("note callbacks = %d/%d, want %d/%d", c.starts, c.ends, notes, notes)
	}

	r := &kindRecorder{}
	if err := visit.NewBrowser(r).Browse(score); err != nil {
		t.Fatalf("Browse() error = %v", err)
	}
	counts := map[string]int{}
	for _, k := range r.kinds {
		counts[k]++
	}
	if len(counts) != 3 {
		t.Errorf("recorded kinds = %v, want only clef and measure callbacks", counts)
	}
	if counts["clef"] != 1 || counts["measure"] != measures || counts["/measure"] != measures {
		t.Errorf("counts = %v, want 1 clef and %d measures", counts, measures)
	}
}

func TestVisitorWithoutInterestIsNeverCalled(t *testing.T) {
	score := testScore(t)
	var nothing struct{}
	if err := visit.NewBrowser(&nothing).Browse(score); err != nil {
		t.Errorf("Browse() error = %v", err)
	}
}

var errStop = errors.New("stop")

type stopAtSecondNote struct {
	seen int
}

func (s *stopAtSecondNote) VisitNoteStart(*Note) error {
	s.seen++
	if s.seen == 2 {
		return errStop
	}
	return nil
}

func TestVisitorErrorStopsBrowsing(t *testing.T) {
	s := &stopAtSecondNote{}
	err := visit.NewBrowser(s).Browse(testScore(t))
	if !errors.Is(err, errStop) {
		t.Errorf("Browse() error = %v, want errStop", err)
	}
	if s.seen != 2 {
		t.Errorf("notes seen = %d, want 2", s.seen)
	}
}

// orderRecorder carries a context, which tells groups its order.
type orderRecorder struct {
	*Context
	order []string
}

func (o *orderRecorder) VisitClefStart(*Clef) error { o.order = append(o.order, "clef"); return nil }
func (o *orderRecorder) VisitKeyStart(*Key) error   { o.order = append(o.order, "key"); return nil }

func (o *orderRecorder) VisitTimeSignatureStart(*TimeSignature) error {
	o.order = append(o.order, "time")
	return nil
}

func TestClefKeyTimeOrder(t *testing.T) {
	tests := []struct {
		name string
		ctx  *Context
		want string
	}{
		{"no context", nil, "clef key time"},
		{"clef-key-time", &Context{Order: OrderClefKeyTime}, "clef key time"},
		{"key-time-clef", &Context{Order: OrderKeyTimeClef}, "key time clef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewClefKeyTimeSignatureGroup(1, NewClef(1, ClefBass, 1), NewKey(1, -2, ModeMajor),
				NewTimeSignature(1, TimeSymbolCommon, TimeSignatureItem{BeatsNumbers: []int{4}, BeatValue: 4}))
			o := &orderRecorder{Context: tt.ctx}
			if err := visit.NewBrowser(o).Browse(g); err != nil {
				t.Fatal(err)
			}
			if got := strings.Join(o.order, " "); got != tt.want {
				t.Errorf("order = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseClefKeyTimeOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    ClefKeyTimeOrderKind
		wantErr bool
	}{
		{"clef-key-time", OrderClefKeyTime, false},
		{"key-time-clef", OrderKeyTimeClef, false},
		{"time-clef-key", OrderClefKeyTime, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClefKeyTimeOrder(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClefKeyTimeOrder(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClefKeyTimeOrder(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
