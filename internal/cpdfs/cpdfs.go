// Package cpdfs implements the CPDFS strategy: AC-3 constraint propagation
// followed by backtracking depth-first search guided by Minimum Remaining
// Values (MRV) with forward checking.
package cpdfs

import (
	"sudokuservice/internal/ac3"
	"sudokuservice/internal/candidates"
	"sudokuservice/internal/constellation"
	"sudokuservice/internal/grid"
)

// journalEntry records a single forward-check removal so it can be undone on
// backtrack: cell had value struck from its domain.
type journalEntry struct {
	cell  int
	value uint8
}

// Solve propagates g with AC-3 and then searches for the first completion.
// It returns grid.Unsolvable if no completion exists, or an
// *grid.InconsistentGivensError if propagation finds a contradiction among
// the givens (an error at the root, not a backtracking event).
func Solve(g grid.Grid) (grid.Grid, error) {
	d := candidates.Init(g)
	if err := ac3.Propagate(&d); err != nil {
		return grid.Grid{}, err
	}

	journal := make([]journalEntry, 0, grid.Cells*grid.Size)
	if !search(&g, &d, &journal) {
		return grid.Grid{}, grid.Unsolvable
	}
	return g, nil
}

// search assigns one MRV-selected cell per call, trying its candidates in
// ascending order with forward checking, and recurses. It reports whether a
// completion was found; on false return, g and d are restored to their
// state at entry.
func search(g *grid.Grid, d *candidates.Domains, journal *[]journalEntry) bool {
	cell, ok := selectMRV(g, d)
	if !ok {
		return true // no unassigned cell left: solved
	}

	peers := constellation.Peers()
	saved := d[cell]

	for _, v := range saved.Values() {
		mark := len(*journal)

		g[cell] = v
		d[cell] = candidates.Single(v)

		contradiction := false
		for _, p := range peers[cell] {
			if !d[p].Has(v) {
				continue
			}
			d[p] = d[p].Without(v)
			*journal = append(*journal, journalEntry{p, v})
			if d[p].Empty() {
				contradiction = true
				break
			}
		}

		if !contradiction && search(g, d, journal) {
			return true
		}

		// Roll back forward-check removals performed for this candidate,
		// in reverse order, then clear the assignment.
		for i := len(*journal) - 1; i >= mark; i-- {
			e := (*journal)[i]
			d[e.cell] = d[e.cell].With(e.value)
		}
		*journal = (*journal)[:mark]
		g[cell] = 0
		d[cell] = saved
	}
	return false
}

// selectMRV picks the unassigned cell with the smallest domain, breaking
// ties by ascending cell index. Returns ok=false if every cell is assigned.
func selectMRV(g *grid.Grid, d *candidates.Domains) (int, bool) {
	best := -1
	bestCount := 0
	for i := 0; i < grid.Cells; i++ {
		if g[i] != 0 {
			continue
		}
		cnt := d[i].Count()
		if best == -1 || cnt < bestCount {
			best, bestCount = i, cnt
		}
	}
	return best, best != -1
}
