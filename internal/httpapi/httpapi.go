// Package httpapi is the HTTP boundary described in spec §6: a single
// POST /solve endpoint accepting a JSON array of puzzles and returning a
// JSON array of per-puzzle solutions or typed errors.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"sudokuservice/internal/grid"
	"sudokuservice/internal/solver"
)

// Handler serves the solve endpoint.
type Handler struct {
	Log *logrus.Logger
}

// New builds a Handler.
func New(log *logrus.Logger) *Handler { return &Handler{Log: log} }

// Register wires the handler's routes into mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/solve", h.handleSolve)
}

type solveEntry struct {
	Grid   string `json:"grid"`
	Solver string `json:"solver,omitempty"`
}

// errorBody carries the machine-readable error kind plus the fields of the
// matching typed error. Fields are pointers so that legitimate zero values
// (index 0, cell 0) still appear in the encoded JSON.
type errorBody struct {
	Kind  string `json:"kind"`
	Got   *int   `json:"got,omitempty"`
	Index *int   `json:"index,omitempty"`
	Char  string `json:"char,omitempty"`
	CellA *int   `json:"cell_a,omitempty"`
	CellB *int   `json:"cell_b,omitempty"`
	Value *int   `json:"value,omitempty"`
}

type solveResult struct {
	Solution  string     `json:"solution,omitempty"`
	Solver    string     `json:"solver"`
	ElapsedNs int64      `json:"elapsed_ns"`
	Error     *errorBody `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":{"kind":"MethodNotAllowed"}}`, http.StatusMethodNotAllowed)
		return
	}

	var entries []solveEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorBody{Kind: "MalformedRequest"})
		return
	}

	results := make([]solveResult, len(entries))
	for i, e := range entries {
		strategy := solver.ParseStrategy(e.Solver)
		res, err := solver.Solve(e.Grid, strategy)
		if err != nil {
			results[i] = solveResult{
				Solver:    res.Strategy.String(),
				ElapsedNs: res.Elapsed.Nanoseconds(),
				Error:     toErrorBody(err),
			}
			h.Log.WithFields(logrus.Fields{
				"strategy": res.Strategy.String(),
				"kind":     results[i].Error.Kind,
			}).Warn("solve failed")
			continue
		}
		results[i] = solveResult{
			Solution:  res.Solution,
			Solver:    res.Strategy.String(),
			ElapsedNs: res.Elapsed.Nanoseconds(),
		}
	}

	_ = json.NewEncoder(w).Encode(results)
}

func toErrorBody(err error) *errorBody {
	switch e := err.(type) {
	case *grid.ParseError:
		switch e.Kind {
		case "length_mismatch":
			return &errorBody{Kind: "LengthMismatch", Got: intPtr(e.Got)}
		case "invalid_character":
			return &errorBody{Kind: "InvalidCharacter", Index: intPtr(e.Index), Char: string(e.Char)}
		}
	case *grid.InconsistentGivensError:
		return &errorBody{
			Kind:  "InconsistentGivens",
			CellA: intPtr(e.CellA),
			CellB: intPtr(e.CellB),
			Value: intPtr(int(e.Value)),
		}
	case *grid.UnsolvableError:
		return &errorBody{Kind: "Unsolvable"}
	}
	return &errorBody{Kind: "Internal"}
}

func intPtr(v int) *int { return &v }
