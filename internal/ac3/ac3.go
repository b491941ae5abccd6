// Package ac3 implements Arc Consistency #3 over the Sudoku "all different"
// binary constraint between peer cells.
package ac3

import (
	"sudokuservice/internal/candidates"
	"sudokuservice/internal/constellation"
	"sudokuservice/internal/grid"
)

type arc struct{ i, j int }

// Propagate enforces arc consistency over d in place. It returns a
// *grid.InconsistentGivensError if any cell's domain is emptied, naming the
// cell and the value that emptied it.
//
// The worklist is FIFO and arcs are enumerated in ascending (i, then peer j)
// order, so the emptied cell reported on failure is reproducible across runs.
func Propagate(d *candidates.Domains) error {
	peers := constellation.Peers()

	queue := make([]arc, 0, grid.Cells*20)
	for i := 0; i < grid.Cells; i++ {
		for _, j := range peers[i] {
			queue = append(queue, arc{i, j})
		}
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		if !revise(d, a.i, a.j) {
			continue
		}
		if d[a.i].Empty() {
			return emptiedBy(d, a.i, a.j)
		}
		for _, k := range peers[a.i] {
			if k == a.j {
				continue
			}
			queue = append(queue, arc{k, a.i})
		}
	}
	return nil
}

// revise removes from D[i] any value v for which D[j] is the singleton {v},
// i.e. j has no alternative but v. Returns whether D[i] changed.
func revise(d *candidates.Domains, i, j int) bool {
	v, ok := d[j].SoleValue()
	if !ok {
		return false
	}
	if !d[i].Has(v) {
		return false
	}
	d[i] = d[i].Without(v)
	return true
}

// emptiedBy builds the InconsistentGivensError for an emptied domain: the
// reported conflict is between the emptied cell and the peer whose forced
// value emptied it.
func emptiedBy(d *candidates.Domains, emptied, cause int) *grid.InconsistentGivensError {
	v, _ := d[cause].SoleValue()
	return grid.NewInconsistentGivens(emptied, cause, v)
}
