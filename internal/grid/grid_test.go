package grid

import (
	"strings"
	"testing"
)

const sample = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseRenderRoundTrip(t *testing.T) {
	g, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := g.Render(); got != sample {
		t.Fatalf("round trip mismatch: got %q want %q", got, sample)
	}
}

func TestParseLengthMismatch(t *testing.T) {
	_, err := Parse(strings.Repeat("0", 80))
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if pe.Kind != "length_mismatch" || pe.Got != 80 {
		t.Fatalf("unexpected error: %+v", pe)
	}
}

func TestParseInvalidCharacter(t *testing.T) {
	_, err := Parse("A" + strings.Repeat("0", 80))
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if pe.Kind != "invalid_character" || pe.Index != 0 || pe.Char != 'A' {
		t.Fatalf("unexpected error: %+v", pe)
	}
}

func TestValidateConflictingGivens(t *testing.T) {
	g, err := Parse("11" + strings.Repeat("0", 79))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	err = Validate(g)
	ig, ok := err.(*InconsistentGivensError)
	if !ok {
		t.Fatalf("expected *InconsistentGivensError, got %T (%v)", err, err)
	}
	if ig.CellA != 0 || ig.CellB != 1 || ig.Value != 1 {
		t.Fatalf("unexpected conflict: %+v", ig)
	}
}

func TestValidateConsistentGivensOK(t *testing.T) {
	g, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := Validate(g); err != nil {
		t.Fatalf("expected valid grid, got %v", err)
	}
}

func TestValidateLeastPairAcrossUnits(t *testing.T) {
	// Column conflict: cells 0 and 9 (same column) both '7', plus a later
	// row conflict that should be ignored since it is not the least pair.
	s := "7" + strings.Repeat("0", 8) + "7" + strings.Repeat("0", 30) + "33" + strings.Repeat("0", 39)
	g, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	err = Validate(g)
	ig, ok := err.(*InconsistentGivensError)
	if !ok {
		t.Fatalf("expected *InconsistentGivensError, got %T (%v)", err, err)
	}
	if ig.CellA != 0 || ig.CellB != 9 {
		t.Fatalf("unexpected conflict pair: %+v", ig)
	}
}

func TestSolvedRequiresNoZerosAndConsistency(t *testing.T) {
	solved := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	g, err := Parse(solved)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !g.Solved() {
		t.Fatalf("expected solved grid to report Solved()")
	}

	unsolved, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if unsolved.Solved() {
		t.Fatalf("grid with zeros must not report Solved()")
	}
}

func TestRowColBox(t *testing.T) {
	cases := []struct {
		cell, row, col, box int
	}{
		{0, 0, 0, 0},
		{8, 0, 8, 2},
		{40, 4, 4, 4},
		{80, 8, 8, 8},
	}
	for _, c := range cases {
		if Row(c.cell) != c.row || Col(c.cell) != c.col || Box(c.cell) != c.box {
			t.Fatalf("cell %d: got row=%d col=%d box=%d", c.cell, Row(c.cell), Col(c.cell), Box(c.cell))
		}
	}
}
