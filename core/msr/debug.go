package msr

import (
	"fmt"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
	"github.com/jacques-menu/musicformats-sub010/internal/dump"
)

type shortStringer interface {
	ShortString() string
}

// treeString dumps the tree rooted at e, one node per line, indented by
// depth.
func treeString(e visit.Element) string {
	var b strings.Builder
	_ = visit.Walk(e, func(x visit.Element, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		if ss, ok := x.(shortStringer); ok {
			b.WriteString(ss.ShortString())
		} else {
			fmt.Fprint(&b, x)
		}
		b.WriteByte('\n')
	})
	return b.String()
}

// TreeString dumps any MSR subtree the way Score.String does.
func TreeString(e visit.Element) string {
	return treeString(e)
}

// DebugString returns a deep dump of e and its children, for diagnostics
// only.
func DebugString(e visit.Element) string {
	return dump.String(e)
}

// DebugStringDepth is DebugString limited to depth levels. depth <= 0
// means the default depth.
func DebugStringDepth(e visit.Element, depth int) string {
	if depth <= 0 {
		return dump.String(e)
	}
	return dump.Depth(e, depth)
}
