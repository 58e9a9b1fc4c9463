package engine

import "testing"

func TestQuerySolveValidPuzzle(t *testing.T) {
	data := NewClassicBoardData(9, validPuzzle)
	result := QuerySolve(data, nil, SolveOptions{}, nil, nil)
	if result.Kind != ResultSolution {
		t.Fatalf("expected ResultSolution, got %v", result.Kind)
	}
	for i, v := range validPuzzleSolution {
		if result.Solution[i] != v {
			t.Fatalf("cell %d = %d, want %d", i, result.Solution[i], v)
		}
	}
}

func TestQuerySolveContradictoryGivens(t *testing.T) {
	givens := make([]int, 81)
	givens[0] = 5
	givens[1] = 5
	data := NewClassicBoardData(9, givens)

	result := QuerySolve(data, nil, SolveOptions{}, nil, nil)
	if result.Kind != ResultInvalid {
		t.Fatalf("expected ResultInvalid, got %v", result.Kind)
	}
}

func TestQueryCountSolutionsEmpty4x4(t *testing.T) {
	data := NewClassicBoardData(4, make([]int, 16))
	result := QueryCountSolutions(data, nil, CountOptions{MaxSolutions: 0}, nil)
	if result.Kind != ResultCount {
		t.Fatalf("expected ResultCount, got %v", result.Kind)
	}
	if result.Count != 288 {
		t.Fatalf("expected 288 solutions for an empty 4x4 grid, got %d", result.Count)
	}
	if !result.Complete {
		t.Fatal("expected the count to be complete (unbounded search)")
	}
}

func TestQueryCountSolutionsEmpty9x9Capped(t *testing.T) {
	data := NewClassicBoardData(9, make([]int, 81))
	result := QueryCountSolutions(data, nil, CountOptions{MaxSolutions: 2}, nil)
	if result.Count != 2 {
		t.Fatalf("expected count capped at 2, got %d", result.Count)
	}
	if !result.Complete {
		t.Fatal("a capped search that reached the cap should report Complete")
	}
}

func TestQueryTrueCandidatesFullySolvedPuzzle(t *testing.T) {
	data := NewClassicBoardData(9, validPuzzleSolution)
	result := QueryTrueCandidates(data, nil, TrueCandidatesOptions{}, nil)
	if result.Kind != ResultTrueCandidates {
		t.Fatalf("expected ResultTrueCandidates, got %v", result.Kind)
	}
	for i, v := range validPuzzleSolution {
		cv := result.Candidates[i]
		if !cv.Given || cv.Value != v {
			t.Fatalf("cell %d: expected given %d, got %+v", i, v, cv)
		}
	}
}

func TestQueryStepFirstCallIsInitialCandidates(t *testing.T) {
	data := NewClassicBoardData(9, validPuzzle)
	b, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := QueryStep(b, true)
	if len(first.Desc) != 1 || first.Desc[0] != "Initial Candidates" {
		t.Fatalf("expected a single 'Initial Candidates' line, got %v", first.Desc)
	}
}

func TestQueryTrueCandidatesSingleSolutionPuzzle(t *testing.T) {
	data := NewClassicBoardData(9, validPuzzle)
	result := QueryTrueCandidates(data, nil, TrueCandidatesOptions{MaxSolutionsPerCandidate: 1}, nil)
	if result.Kind != ResultTrueCandidates {
		t.Fatalf("expected ResultTrueCandidates, got %v", result.Kind)
	}
	for i, v := range validPuzzleSolution {
		cv := result.Candidates[i]
		if !cv.Given || cv.Value != v {
			t.Fatalf("cell %d: expected the unique solution value %d, got %+v", i, v, cv)
		}
	}
}

func TestQueryStepFindsHiddenSingleInRow1(t *testing.T) {
	data := NewClassicBoardData(9, make([]int, 81))
	// Knock candidate 5 out of all but the first cell of row 1 without
	// collapsing any cell to a single candidate.
	for c := 1; c < 9; c++ {
		data.Grid[0][c].GivenPencilMarks = []int{1, 2, 3, 4, 6, 7, 8, 9}
	}

	b, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := QueryStep(b, true)
	if !first.Changed || first.Desc[0] != "Initial Candidates" {
		t.Fatalf("unexpected first step %+v", first)
	}

	second := QueryStep(b, false)
	if !second.Changed || second.Invalid {
		t.Fatalf("unexpected second step %+v", second)
	}
	if len(second.Desc) != 1 || second.Desc[0] != "Hidden Single in Row 1: R1C1 = 5." {
		t.Fatalf("unexpected description %v", second.Desc)
	}
}

func TestQueryLogicalSolveDetectsContradiction(t *testing.T) {
	data := NewClassicBoardData(9, make([]int, 81))
	// Two cells of column 1 pinned to the same value by pencil marks: the
	// board builds, but the first naked-single promotion contradicts.
	data.Grid[0][0].CenterPencilMarks = []int{5}
	data.Grid[1][0].CenterPencilMarks = []int{5}

	b, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := QueryLogicalSolve(b)
	if !result.Invalid {
		t.Fatal("expected an invalid result for two forced 5s in one column")
	}
	if len(result.Desc) == 0 {
		t.Fatal("expected a contradiction description")
	}
}

func TestQueryLogicalSolveOnNakedSinglePuzzle(t *testing.T) {
	// One empty cell with every peer already filled: a pure Naked Single.
	givens := append([]int(nil), validPuzzleSolution...)
	emptyCell := 0
	givens[emptyCell] = 0

	data := NewClassicBoardData(9, givens)
	b, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := QueryLogicalSolve(b)
	if result.Invalid {
		t.Fatal("did not expect an invalid result")
	}
	if !b.IsGiven(emptyCell) || b.GetValue(emptyCell) != validPuzzleSolution[emptyCell] {
		t.Fatalf("expected cell %d resolved to %d by pure logic", emptyCell, validPuzzleSolution[emptyCell])
	}
}
