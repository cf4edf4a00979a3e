package bsr

import (
	"sync"

	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

var initOnce sync.Once

// Tables filled by Initialize.
var (
	clefCells    map[ClefKind][]CellKind
	barLineCells map[BarLineKind][]CellKind
)

// Initialize builds the cell tables used by the node constructors. Every
// constructor calls it, so calling it explicitly is only needed to pay the
// cost up front. Repeated calls are no-ops.
func Initialize() {
	initOnce.Do(func() {
		clefCells = map[ClefKind][]CellKind{
			ClefNone:                          {},
			ClefGTreble:                       {dots(3, 4, 5), dots(3, 4), dots(1, 2, 3)},
			ClefFBass:                         {dots(3, 4, 5), dots(3, 4, 5, 6), dots(1, 2, 3)},
			ClefCAlto:                         {dots(3, 4, 5), dots(3, 4, 6), dots(1, 2, 3)},
			ClefGSoprano:                      {dots(3, 4, 5), dots(3, 4), dots(4), dots(1, 2, 3)},
			ClefFBaritone:                     {dots(3, 4, 5), dots(3, 4, 5, 6), dots(4, 5, 6), dots(1, 2, 3)},
			ClefCTenor:                        {dots(3, 4, 5), dots(3, 4, 6), dots(5), dots(1, 2, 3)},
			ClefGOttavaAlta:                   {dots(3, 4, 5), dots(3, 4), dots(1, 2, 3), dots(3, 4, 5, 6), dots(1, 2, 5)},
			ClefGOttavaBassa:                  {dots(3, 4, 5), dots(3, 4), dots(1, 2, 3), dots(3, 4, 5, 6), dots(2, 3, 6)},
			ClefModifiedBassForRightHandPart:  {dots(3, 4, 5), dots(3, 4, 5, 6), dots(1, 3)},
			ClefModifiedTrebleForLeftHandPart: {dots(3, 4, 5), dots(3, 4), dots(1, 3)},
		}

		barLineCells = map[BarLineKind][]CellKind{
			BarLineNone:            {},
			BarLineSpecial:         {dots(1, 3)},
			BarLineUnusual:         {dots(1, 2, 3)},
			BarLineFinalDouble:     {dots(1, 2, 6), dots(1, 3)},
			BarLineSectionalDouble: {dots(1, 2, 6), dots(1, 3), dots(3)},
		}

		logging.Debug("bsr tables initialized",
			"clefs", len(clefCells),
			"bar_lines", len(barLineCells),
		)
	})
}
