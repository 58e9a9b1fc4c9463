package engine

import "testing"

// buildRowOnlyBoard registers a single N-cell row region and nothing else,
// so tests can isolate one logical step without classic box/column noise.
func buildRowOnlyBoard(n int) *Board {
	b := NewBoard(n)
	cells := make([]int, n)
	for c := 0; c < n; c++ {
		cells[c] = c
	}
	b.AddRegion("Row 1", cells, RegionRow, "", true)
	b.finalized = true
	return b
}

func TestNakedSingleStep(t *testing.T) {
	b := buildRowOnlyBoard(9)
	for v := 2; v <= 9; v++ {
		if !b.SetAsGiven(v-1, v) {
			t.Fatalf("setup: failed to set cell %d to %d", v-1, v)
		}
	}
	// Cell 0 now has only candidate 1 left.
	result := nakedSingleStep(b, nil)
	if result != Changed {
		t.Fatalf("expected Changed, got %v", result)
	}
	if !b.IsGiven(0) || b.GetValue(0) != 1 {
		t.Fatalf("expected cell 0 given as 1, got given=%v value=%d", b.IsGiven(0), b.GetValue(0))
	}
}

func TestHiddenSingleStep(t *testing.T) {
	b := buildRowOnlyBoard(9)
	// Eliminate candidate 1 everywhere in the row except cell 4, without
	// collapsing any cell to a naked single.
	for c := 0; c < 9; c++ {
		if c == 4 {
			continue
		}
		if b.ClearValue(c, 1) == Invalid {
			t.Fatalf("setup: failed clearing candidate 1 from cell %d", c)
		}
	}
	var desc []string
	result := hiddenSingleStep(b, &desc)
	if result != Changed {
		t.Fatalf("expected Changed, got %v", result)
	}
	if !b.IsGiven(4) || b.GetValue(4) != 1 {
		t.Fatalf("expected cell 4 given as 1 via Hidden Single, got given=%v value=%d", b.IsGiven(4), b.GetValue(4))
	}
	if len(desc) == 0 {
		t.Fatal("expected a description line for the Hidden Single")
	}
}

func TestLogicalStepReturnsUnchangedOnFreshBoard(t *testing.T) {
	b := buildRowOnlyBoard(9)
	desc, result := LogicalStep(b)
	if result != Unchanged {
		t.Fatalf("expected Unchanged on a board with no forced deductions, got %v", result)
	}
	if desc != nil {
		t.Fatalf("expected no description lines, got %v", desc)
	}
}
