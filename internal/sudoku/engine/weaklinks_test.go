package engine

import "testing"

func TestWeakLinkGraphSymmetricIdempotent(t *testing.T) {
	g := newWeakLinkGraph(10)
	g.add(1, 4)
	g.add(4, 1)
	g.add(1, 4)

	if !g.hasLink(1, 4) || !g.hasLink(4, 1) {
		t.Fatal("expected a symmetric link between 1 and 4")
	}
	if len(g.neighbors(1)) != 1 || len(g.neighbors(4)) != 1 {
		t.Fatalf("repeated insertion duplicated the edge: %v / %v", g.neighbors(1), g.neighbors(4))
	}
}

func TestWeakLinkGraphIrreflexive(t *testing.T) {
	g := newWeakLinkGraph(10)
	g.add(3, 3)
	if g.hasLink(3, 3) || len(g.neighbors(3)) != 0 {
		t.Fatal("a candidate must never link to itself")
	}
}

func TestWeakLinkGraphNeighborsSorted(t *testing.T) {
	g := newWeakLinkGraph(10)
	g.add(0, 7)
	g.add(0, 2)
	g.add(0, 5)
	got := g.neighbors(0)
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("neighbors not sorted: %v", got)
		}
	}
}

func TestIntersectNeighbors(t *testing.T) {
	g := newWeakLinkGraph(10)
	g.add(0, 5)
	g.add(1, 5)
	g.add(0, 6)

	common := g.intersectNeighbors([]int{0, 1}, func(int) bool { return true })
	if len(common) != 1 || common[0] != 5 {
		t.Fatalf("intersectNeighbors = %v, want [5]", common)
	}

	none := g.intersectNeighbors([]int{0, 1}, func(candIndex int) bool { return candIndex != 5 })
	if len(none) != 0 {
		t.Fatalf("present filter ignored: %v", none)
	}
}

func TestNoBoardStateViolatesWeakLinks(t *testing.T) {
	data := NewClassicBoardData(9, validPuzzle)
	b, err := ApplyBoardData(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sol, outcome := FindSolution(b, false, nil, nil)
	if outcome != SolveFound {
		t.Fatalf("expected a solution, got %v", outcome)
	}

	// In a complete solution, no two weakly linked candidates may both hold.
	for cellIndex := 0; cellIndex < 81; cellIndex++ {
		cand := sol.CandidateIndex(cellIndex, sol.GetValue(cellIndex))
		for _, nb := range sol.WeakLinkNeighbors(cand) {
			otherCell := sol.CellOfCandidate(nb)
			if otherCell == cellIndex {
				continue
			}
			if sol.GetValue(otherCell) == sol.ValueOfCandidate(nb) {
				t.Fatalf("solution holds both ends of the weak link (%d,%d)-(%d,%d)",
					cellIndex, sol.GetValue(cellIndex), otherCell, sol.ValueOfCandidate(nb))
			}
		}
	}
}
