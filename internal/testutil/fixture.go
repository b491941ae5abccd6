// Package testutil generates random solved grids and puzzles for use in
// tests across the solver packages. It is not part of the solving core; it
// exists only to produce varied, known-solvable fixtures.
package testutil

import (
	"math/rand"

	"sudokuservice/internal/grid"
)

// RandomSolvedGrid fills a full 9x9 grid at random, deterministic for a
// given seed.
func RandomSolvedGrid(seed int64) grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	var g grid.Grid
	fillRandom(rng, &g, 0)
	return g
}

// RandomPuzzle returns a random solved grid alongside a puzzle carved out
// of it by blanking cells until only keep givens remain.
func RandomPuzzle(seed int64, keep int) (puzzle, solution grid.Grid) {
	solution = RandomSolvedGrid(seed)
	puzzle = solution

	rng := rand.New(rand.NewSource(seed))
	positions := rng.Perm(grid.Cells)
	blank := grid.Cells - keep
	for _, pos := range positions {
		if blank <= 0 {
			break
		}
		puzzle[pos] = 0
		blank--
	}
	return puzzle, solution
}

func fillRandom(rng *rand.Rand, g *grid.Grid, cell int) bool {
	if cell == grid.Cells {
		return true
	}
	var nums [grid.Size]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	rng.Shuffle(grid.Size, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })

	for _, v := range nums {
		if allowed(g, cell, v) {
			g[cell] = v
			if fillRandom(rng, g, cell+1) {
				return true
			}
			g[cell] = 0
		}
	}
	return false
}

func allowed(g *grid.Grid, cell int, v uint8) bool {
	r, c, b := grid.Row(cell), grid.Col(cell), grid.Box(cell)
	for i := 0; i < grid.Size; i++ {
		if g[r*grid.Size+i] == v || g[i*grid.Size+c] == v {
			return false
		}
	}
	br, bc := (b/3)*3, (b%3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[(br+dr)*grid.Size+(bc+dc)] == v {
				return false
			}
		}
	}
	return true
}
