// Package visit provides the element/visitor protocol shared by the MSR,
// BSR and LPSR trees.
//
// # Protocol
//
// Every node implements [Element]. A [Browser] walks a node in three steps:
//
//  1. AcceptIn: the node checks whether the visitor implements the start
//     interface for its concrete kind and, if so, calls it.
//  2. BrowseData: the node hands each of its children back to the browser
//     in a fixed, kind-specific order.
//  3. AcceptOut: same as AcceptIn with the end interface.
//
// Visitors opt in per concrete kind. A visitor that only implements the
// start interface for notes is never called for clefs or measures, even
// though the browser descends into every child.
//
// Browsing never mutates the tree. Passes that transform a score build a new
// tree from the visit callbacks.
//
// # Errors
//
// Any callback may return an error. The browser stops at the first error
// and returns it unchanged, so typed errors reach the caller intact.
package visit

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

// Visitor is the value handed to AcceptIn and AcceptOut. Representation
// packages declare one start and one end interface per node kind; a visitor
// implements the ones it is interested in.
type Visitor interface{}

// Element is a node of a score tree.
type Element interface {
	// InputLineNumber is the line of the input the node was built from.
	InputLineNumber() int
	AcceptIn(v Visitor) error
	AcceptOut(v Visitor) error
	BrowseData(b *Browser) error
}

// Filter decides whether the browser enters an element.
type Filter func(e Element) bool

// Browser walks a tree on behalf of a visitor.
type Browser struct {
	visitor Visitor
	filter  Filter
	depth   int
	trace   bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithFilter restricts browsing to the elements f accepts. A rejected
// element is skipped together with its subtree.
func WithFilter(f Filter) Option {
	return func(b *Browser) {
		b.filter = f
	}
}

// NewBrowser returns a browser for v.
func NewBrowser(v Visitor, opts ...Option) *Browser {
	b := &Browser{
		visitor: v,
		trace:   logging.TraceEnabled(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Visitor returns the visitor the browser works for.
func (b *Browser) Visitor() Visitor {
	return b.visitor
}

// Depth is the nesting level of the element being browsed.
func (b *Browser) Depth() int {
	return b.depth
}

// Browse runs AcceptIn, BrowseData and AcceptOut on e.
func (b *Browser) Browse(e Element) error {
	if e == nil {
		return nil
	}
	if b.filter != nil && !b.filter(e) {
		return nil
	}
	if b.trace {
		logging.Debug("browse", "element", fmt.Sprintf("%T", e), "line", e.InputLineNumber(), "depth", b.depth)
	}

	if err := e.AcceptIn(b.visitor); err != nil {
		return err
	}
	b.depth++
	err := e.BrowseData(b)
	b.depth--
	if err != nil {
		return err
	}
	return e.AcceptOut(b.visitor)
}

// BrowseAll browses each element of elems in order.
func BrowseAll[T Element](b *Browser, elems []T) error {
	for _, e := range elems {
		if err := b.Browse(e); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch calls call when v implements V, and does nothing otherwise. Node
// kinds use it to implement AcceptIn and AcceptOut.
func Dispatch[V any](v Visitor, call func(V) error) error {
	if typed, ok := v.(V); ok {
		return call(typed)
	}
	return nil
}

// Walk calls fn for every element of the tree rooted at e, in browse
// order, with the element's nesting depth. No visitor callback is run.
func Walk(e Element, fn func(e Element, depth int)) error {
	var b *Browser
	b = NewBrowser(nil, WithFilter(func(x Element) bool {
		fn(x, b.Depth())
		return true
	}))
	return b.Browse(e)
}
