package bsr

import (
	"github.com/jacques-menu/musicformats-sub010/core/visit"
	"github.com/jacques-menu/musicformats-sub010/internal/dump"
)

// DebugString returns a deep dump of e and its children, for diagnostics
// only.
func DebugString(e visit.Element) string {
	return dump.String(e)
}
