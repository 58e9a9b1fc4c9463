package engine

import "testing"

func TestCalcTrueCandidatesEmpty4x4AllOpen(t *testing.T) {
	data := NewClassicBoardData(4, make([]int, 16))
	b, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	masks, counts, noSolution, cancelled := CalcTrueCandidates(b, 1, true, nil)
	if noSolution || cancelled {
		t.Fatalf("got noSolution=%v cancelled=%v", noSolution, cancelled)
	}
	// Every cell of an empty 4x4 grid can hold every value in some solution.
	for cellIndex, mask := range masks {
		if mask != allValuesMask(4) {
			t.Fatalf("cell %d true candidates = %b, want all four values", cellIndex, mask)
		}
	}
	for cellIndex := 0; cellIndex < 16; cellIndex++ {
		for v := 1; v <= 4; v++ {
			if counts[candidateIndex(cellIndex, v, 4)] != 1 {
				t.Fatalf("count for cell %d value %d != 1 with cap 1", cellIndex, v)
			}
		}
	}
}

func TestCalcTrueCandidatesCountsSaturateAtCap(t *testing.T) {
	data := NewClassicBoardData(4, make([]int, 16))
	b, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCap := 3
	_, counts, noSolution, cancelled := CalcTrueCandidates(b, wantCap, true, nil)
	if noSolution || cancelled {
		t.Fatalf("got noSolution=%v cancelled=%v", noSolution, cancelled)
	}
	// Each candidate of an empty 4x4 grid is witnessed by 72 of the 288
	// solutions, far past the cap, so every count saturates at exactly cap.
	for cellIndex := 0; cellIndex < 16; cellIndex++ {
		for v := 1; v <= 4; v++ {
			got := counts[candidateIndex(cellIndex, v, 4)]
			if got != wantCap {
				t.Fatalf("count for cell %d value %d = %d, want %d", cellIndex, v, got, wantCap)
			}
		}
	}
}

func TestCalcTrueCandidatesSingleSolutionPuzzle(t *testing.T) {
	data := NewClassicBoardData(9, validPuzzle)
	b, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	masks, _, noSolution, cancelled := CalcTrueCandidates(b, 1, true, nil)
	if noSolution || cancelled {
		t.Fatalf("got noSolution=%v cancelled=%v", noSolution, cancelled)
	}
	for cellIndex, want := range validPuzzleSolution {
		if masks[cellIndex] != ValueBit(want) {
			t.Fatalf("cell %d true candidates = %b, want only %d", cellIndex, masks[cellIndex], want)
		}
	}
}

func TestCalcTrueCandidatesNoSolution(t *testing.T) {
	data := NewClassicBoardData(9, make([]int, 81))
	data.Grid[0][0].CenterPencilMarks = []int{5}
	data.Grid[0][1].CenterPencilMarks = []int{5}

	b, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, noSolution, _ := CalcTrueCandidates(b, 1, false, nil)
	if !noSolution {
		t.Fatal("expected noSolution for a board with two forced 5s in one row")
	}
}

func TestCalcTrueCandidatesWithinLogicalSolveMasks(t *testing.T) {
	data := NewClassicBoardData(9, validPuzzle)

	logical, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, result := LogicalSolve(logical); result == Invalid {
		t.Fatal("logical solve unexpectedly found a contradiction")
	}

	search, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	masks, _, noSolution, cancelled := CalcTrueCandidates(search, 1, false, nil)
	if noSolution || cancelled {
		t.Fatalf("got noSolution=%v cancelled=%v", noSolution, cancelled)
	}

	// Logical deduction never removes a true candidate, so the enumerated
	// candidates are a subset of what logic left standing.
	for cellIndex := 0; cellIndex < 81; cellIndex++ {
		logicalMask := logical.CellMask(cellIndex) & logical.AllValuesMask()
		if masks[cellIndex]&^logicalMask != 0 {
			t.Fatalf("cell %d: true candidates %b not contained in logical mask %b",
				cellIndex, masks[cellIndex], logicalMask)
		}
	}
}
