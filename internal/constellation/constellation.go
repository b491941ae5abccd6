// Package constellation holds the Sudoku constraint model: the 27 units and,
// for each cell, its 20 peers. Both tables are computed once and are
// read-only and safely shared across concurrent solves thereafter.
package constellation

import (
	"sort"
	"sync"

	"sudokuservice/internal/grid"
)

var (
	once        sync.Once
	unitsByCell [grid.Cells][3][grid.Size]int
	peersByCell [grid.Cells][20]int
)

func build() {
	units := grid.Units()

	// units(i): the row, column, and box unit each cell belongs to.
	for cell := 0; cell < grid.Cells; cell++ {
		r, c, b := grid.Row(cell), grid.Col(cell), grid.Box(cell)
		unitsByCell[cell][0] = units[r]
		unitsByCell[cell][1] = units[grid.Size+c]
		unitsByCell[cell][2] = units[2*grid.Size+b]
	}

	// peers(i): the 20 distinct other cells sharing a row, column, or box.
	for cell := 0; cell < grid.Cells; cell++ {
		var seen [grid.Cells]bool
		n := 0
		for _, unit := range unitsByCell[cell] {
			for _, other := range unit {
				if other == cell || seen[other] {
					continue
				}
				seen[other] = true
				peersByCell[cell][n] = other
				n++
			}
		}
		if n != 20 {
			panic("constellation: peer count invariant violated")
		}
		sort.Ints(peersByCell[cell][:])
	}
}

// Peers returns the table of 20 peer indices per cell. Safe for concurrent
// read-only use from multiple solves.
func Peers() *[grid.Cells][20]int {
	once.Do(build)
	return &peersByCell
}

// Units returns, for each cell, its three containing units (row, column, box).
func Units() *[grid.Cells][3][grid.Size]int {
	once.Do(build)
	return &unitsByCell
}
