// Package dump renders score trees for debugging.
package dump

import (
	"github.com/davecgh/go-spew/spew"
)

var config = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
	MaxDepth:                12,
}

// String returns a deep dump of v. Cycles through up-links are printed
// once and then marked as already shown.
func String(v any) string {
	return config.Sdump(v)
}

// Depth returns a dump of v limited to depth levels.
func Depth(v any, depth int) string {
	c := config
	c.MaxDepth = depth
	return c.Sdump(v)
}
