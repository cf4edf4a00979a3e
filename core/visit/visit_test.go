package visit

import (
	"errors"
	"reflect"
	"testing"
)

type leaf struct {
	line int
	name string
}

type branch struct {
	line     int
	children []Element
}

type leafStartVisitor interface{ VisitLeafStart(*leaf) error }
type leafEndVisitor interface{ VisitLeafEnd(*leaf) error }
type branchStartVisitor interface{ VisitBranchStart(*branch) error }
type branchEndVisitor interface{ VisitBranchEnd(*branch) error }

func (l *leaf) InputLineNumber() int { return l.line }
func (l *leaf) AcceptIn(v Visitor) error {
	return Dispatch(v, func(lv leafStartVisitor) error { return lv.VisitLeafStart(l) })
}
func (l *leaf) AcceptOut(v Visitor) error {
	return Dispatch(v, func(lv leafEndVisitor) error { return lv.VisitLeafEnd(l) })
}
func (l *leaf) BrowseData(*Browser) error { return nil }

func (br *branch) InputLineNumber() int { return br.line }
func (br *branch) AcceptIn(v Visitor) error {
	return Dispatch(v, func(bv branchStartVisitor) error { return bv.VisitBranchStart(br) })
}
func (br *branch) AcceptOut(v Visitor) error {
	return Dispatch(v, func(bv branchEndVisitor) error { return bv.VisitBranchEnd(br) })
}
func (br *branch) BrowseData(b *Browser) error { return BrowseAll(b, br.children) }

// leafOnly declares interest in leaves only.
type leafOnly struct{ seen []string }

func (v *leafOnly) VisitLeafStart(l *leaf) error {
	v.seen = append(v.seen, "in:"+l.name)
	return nil
}

func (v *leafOnly) VisitLeafEnd(l *leaf) error {
	v.seen = append(v.seen, "out:"+l.name)
	return nil
}

// everything records both kinds with depth.
type everything struct {
	leafOnly
	branches int
}

func (v *everything) VisitBranchStart(*branch) error { v.branches++; return nil }
func (v *everything) VisitBranchEnd(*branch) error   { return nil }

func sampleTree() *branch {
	return &branch{line: 1, children: []Element{
		&leaf{line: 2, name: "a"},
		&branch{line: 3, children: []Element{&leaf{line: 4, name: "b"}}},
		&leaf{line: 5, name: "c"},
	}}
}

func TestBrowserOrder(t *testing.T) {
	v := &leafOnly{}
	if err := NewBrowser(v).Browse(sampleTree()); err != nil {
		t.Fatalf("Browse() error = %v", err)
	}
	want := []string{"in:a", "out:a", "in:b", "out:b", "in:c", "out:c"}
	if !reflect.DeepEqual(v.seen, want) {
		t.Errorf("seen = %v, want %v", v.seen, want)
	}
}

func TestVisitorOptInPerKind(t *testing.T) {
	v := &everything{}
	if err := NewBrowser(v).Browse(sampleTree()); err != nil {
		t.Fatalf("Browse() error = %v", err)
	}
	if v.branches != 2 {
		t.Errorf("branches = %d, want 2", v.branches)
	}
	if len(v.seen) != 6 {
		t.Errorf("leaf callbacks = %d, want 6", len(v.seen))
	}
}

func TestBrowserFilter(t *testing.T) {
	v := &leafOnly{}
	skipB := WithFilter(func(e Element) bool {
		l, ok := e.(*leaf)
		return !ok || l.name != "b"
	})
	if err := NewBrowser(v, skipB).Browse(sampleTree()); err != nil {
		t.Fatalf("Browse() error = %v", err)
	}
	want := []string{"in:a", "out:a", "in:c", "out:c"}
	if !reflect.DeepEqual(v.seen, want) {
		t.Errorf("seen = %v, want %v", v.seen, want)
	}
}

type failing struct{ calls int }

var errStop = errors.New("stop")

func (f *failing) VisitLeafStart(l *leaf) error {
	f.calls++
	if l.name == "b" {
		return errStop
	}
	return nil
}

func TestBrowserStopsOnFirstError(t *testing.T) {
	f := &failing{}
	err := NewBrowser(f).Browse(sampleTree())
	if !errors.Is(err, errStop) {
		t.Fatalf("Browse() error = %v, want %v", err, errStop)
	}
	if f.calls != 2 {
		t.Errorf("calls = %d, want 2", f.calls)
	}
}

func TestBrowseNil(t *testing.T) {
	if err := NewBrowser(&leafOnly{}).Browse(nil); err != nil {
		t.Errorf("Browse(nil) error = %v, want nil", err)
	}
}

func TestWalk(t *testing.T) {
	var got []int
	err := Walk(sampleTree(), func(e Element, depth int) {
		got = append(got, e.InputLineNumber()*10+depth)
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	// line*10 + depth
	want := []int{10, 21, 31, 42, 51}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}
