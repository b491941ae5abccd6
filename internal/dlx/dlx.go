// Package dlx implements the DLX strategy: transformation of a Sudoku
// puzzle into a 324-column exact-cover matrix, solved by Knuth's Algorithm X
// via the dancing-links technique.
//
// The matrix lives in a single arena of nodes addressed by index rather
// than pointer: cover/uncover only rewire indices and never allocate once
// the arena is built.
package dlx

import (
	"sudokuservice/internal/constellation"
	"sudokuservice/internal/grid"
)

const (
	root = 0

	colCellBase = 1                       // 1..81
	colRowBase  = colCellBase + grid.Cells // 82..162
	colColBase  = colRowBase + grid.Cells  // 163..243
	colBoxBase  = colColBase + grid.Cells  // 244..324

	totalHeaders = colBoxBase + grid.Cells - 1 // 324
)

// Matrix is the toroidal sparse 0/1 matrix for one solve. Every field is a
// parallel array indexed by node id; node 0 is the root sentinel, nodes
// 1..totalHeaders are column headers, and the rest are row-body nodes.
type Matrix struct {
	left, right, up, down []int
	colOf                 []int
	rowOf                 []int // candidate row id (0..728) for body nodes, -1 for root/headers
	size                  []int // valid for header indices only
}

func newMatrix() *Matrix {
	n := 1 + totalHeaders
	m := &Matrix{
		left:  make([]int, n, n+4*grid.Cells*grid.Size),
		right: make([]int, n, n+4*grid.Cells*grid.Size),
		up:    make([]int, n, n+4*grid.Cells*grid.Size),
		down:  make([]int, n, n+4*grid.Cells*grid.Size),
		colOf: make([]int, n, n+4*grid.Cells*grid.Size),
		rowOf: make([]int, n, n+4*grid.Cells*grid.Size),
		size:  make([]int, n, n+4*grid.Cells*grid.Size),
	}
	m.up[root], m.down[root] = root, root
	m.rowOf[root] = -1

	prev := root
	for h := 1; h <= totalHeaders; h++ {
		m.up[h], m.down[h] = h, h
		m.colOf[h] = h
		m.rowOf[h] = -1
		m.left[h] = prev
		m.right[prev] = h
		prev = h
	}
	m.right[prev] = root
	m.left[root] = prev
	return m
}

func rowColumns(i int, v uint8) [4]int {
	r, c, b := grid.Row(i), grid.Col(i), grid.Box(i)
	return [4]int{
		colCellBase + i,
		colRowBase + r*grid.Size + int(v-1),
		colColBase + c*grid.Size + int(v-1),
		colBoxBase + b*grid.Size + int(v-1),
	}
}

func rowID(i int, v uint8) int { return i*grid.Size + int(v-1) }

func decodeRow(id int) (int, uint8) {
	return id / grid.Size, uint8(id%grid.Size) + 1
}

// emitRow links the 4 nodes of candidate row (i, v) into their columns and
// into one horizontal row ring.
func (m *Matrix) emitRow(i int, v uint8) {
	cols := rowColumns(i, v)
	rid := rowID(i, v)

	prevNode := -1
	for k, h := range cols {
		idx := len(m.left)
		m.left = append(m.left, 0)
		m.right = append(m.right, 0)
		m.up = append(m.up, 0)
		m.down = append(m.down, 0)
		m.colOf = append(m.colOf, h)
		m.rowOf = append(m.rowOf, rid)
		m.size = append(m.size, 0)

		m.up[idx] = m.up[h]
		m.down[idx] = h
		m.down[m.up[h]] = idx
		m.up[h] = idx
		m.size[h]++

		if k == 0 {
			m.left[idx] = idx
			m.right[idx] = idx
		} else {
			m.left[idx] = prevNode
			m.right[idx] = m.right[prevNode]
			m.left[m.right[prevNode]] = idx
			m.right[prevNode] = idx
		}
		prevNode = idx
	}
}

func peerHasValue(g grid.Grid, peers [20]int, v uint8) bool {
	for _, p := range peers {
		if g[p] == v {
			return true
		}
	}
	return false
}

// Build converts g into the exact-cover matrix. Cells already given emit a
// single pinning row; empty cells emit one row per value not already ruled
// out by a pinned peer. Rows are appended in ascending (i, v) order so
// Algorithm X sees a canonical initial state.
func Build(g grid.Grid) *Matrix {
	m := newMatrix()
	peers := constellation.Peers()

	for i := 0; i < grid.Cells; i++ {
		if v := g[i]; v != 0 {
			m.emitRow(i, v)
			continue
		}
		for v := uint8(1); v <= grid.Size; v++ {
			if peerHasValue(g, peers[i], v) {
				continue
			}
			m.emitRow(i, v)
		}
	}
	return m
}

// cover splices column c out of the header ring and, for every row
// intersecting c, splices that row's other nodes out of their columns.
func (m *Matrix) cover(c int) {
	m.right[m.left[c]] = m.right[c]
	m.left[m.right[c]] = m.left[c]
	for i := m.down[c]; i != c; i = m.down[i] {
		for j := m.right[i]; j != i; j = m.right[j] {
			m.down[m.up[j]] = m.down[j]
			m.up[m.down[j]] = m.up[j]
			m.size[m.colOf[j]]--
		}
	}
}

// uncover is the exact mirror of cover, performed in strict reverse order.
func (m *Matrix) uncover(c int) {
	for i := m.up[c]; i != c; i = m.up[i] {
		for j := m.left[i]; j != i; j = m.left[j] {
			m.size[m.colOf[j]]++
			m.down[m.up[j]] = j
			m.up[m.down[j]] = j
		}
	}
	m.right[m.left[c]] = c
	m.left[m.right[c]] = c
}

// chooseColumn returns the active column with minimum size (the S
// heuristic), tie-broken by first encountered walking right from root. It
// returns root if the header ring is empty.
func (m *Matrix) chooseColumn() int {
	best := root
	bestSize := 0
	for c := m.right[root]; c != root; c = m.right[c] {
		if best == root || m.size[c] < bestSize {
			best, bestSize = c, m.size[c]
			if bestSize == 0 {
				break
			}
		}
	}
	return best
}

// Search runs Algorithm X and returns the selected candidate row ids of the
// first solution found, or grid.Unsolvable.
func (m *Matrix) Search() ([]int, error) {
	sol := make([]int, 0, grid.Cells)
	if !m.search(&sol) {
		return nil, grid.Unsolvable
	}
	return sol, nil
}

func (m *Matrix) search(sol *[]int) bool {
	if m.right[root] == root {
		return true
	}
	c := m.chooseColumn()
	if c == root || m.size[c] == 0 {
		return false
	}
	m.cover(c)
	for r := m.down[c]; r != c; r = m.down[r] {
		*sol = append(*sol, m.rowOf[r])
		for j := m.right[r]; j != r; j = m.right[j] {
			m.cover(m.colOf[j])
		}

		if m.search(sol) {
			return true
		}

		for j := m.left[r]; j != r; j = m.left[j] {
			m.uncover(m.colOf[j])
		}
		*sol = (*sol)[:len(*sol)-1]
	}
	m.uncover(c)
	return false
}

// Solve builds the matrix for g and runs Algorithm X, writing the solution
// back into a Grid.
func Solve(g grid.Grid) (grid.Grid, error) {
	m := Build(g)
	rows, err := m.Search()
	if err != nil {
		return grid.Grid{}, err
	}
	var out grid.Grid
	for _, rid := range rows {
		i, v := decodeRow(rid)
		out[i] = v
	}
	return out, nil
}
