// Package solver is the façade described in spec §4.6: it chooses a solving
// strategy, times execution with a monotonic clock, and surfaces typed
// errors alongside the strategy used and elapsed time, even on failure.
package solver

import (
	"strings"
	"time"

	"sudokuservice/internal/cpdfs"
	"sudokuservice/internal/dlx"
	"sudokuservice/internal/grid"
)

// Strategy selects which solving pipeline to run.
type Strategy int

const (
	// DLX is the default: exact-cover reduction solved by Algorithm X.
	DLX Strategy = iota
	// CPDFS is AC-3 propagation followed by MRV/forward-checking DFS.
	CPDFS
)

func (s Strategy) String() string {
	if s == CPDFS {
		return "cpdfs"
	}
	return "dlx"
}

// ParseStrategy resolves the HTTP-facing aliases: "dfs"/"cpdfs" -> CPDFS,
// "dlx"/"exact" -> DLX, anything else (including empty) -> DLX.
func ParseStrategy(s string) Strategy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "cpdfs":
		return CPDFS
	default:
		return DLX
	}
}

// Result is what the façade returns for one solved puzzle.
type Result struct {
	Solution string
	Strategy Strategy
	Elapsed  time.Duration
}

// Solve parses and validates gridString, then runs the chosen strategy.
// Parse/validate/search errors are returned alongside a Result carrying the
// strategy and elapsed time, so callers get observability even on failure.
func Solve(gridString string, strategy Strategy) (Result, error) {
	start := time.Now()
	res := Result{Strategy: strategy}

	g, err := grid.Parse(gridString)
	if err != nil {
		res.Elapsed = time.Since(start)
		return res, err
	}
	if err := grid.Validate(g); err != nil {
		res.Elapsed = time.Since(start)
		return res, err
	}

	var out grid.Grid
	if strategy == CPDFS {
		out, err = cpdfs.Solve(g)
	} else {
		out, err = dlx.Solve(g)
	}
	res.Elapsed = time.Since(start)
	if err != nil {
		return res, err
	}
	res.Solution = out.Render()
	return res, nil
}
