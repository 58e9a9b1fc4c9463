package engine

import "fmt"

// cellForcingStep looks, for each non-given cell with 2..N candidates, for
// eliminations implied by every one of its candidates sharing a common
// weakly-linked neighbour elsewhere on the board.
func cellForcingStep(b *Board, desc *[]string) StepResult {
	n := b.n
	for cellIndex := 0; cellIndex < n*n; cellIndex++ {
		if b.IsGiven(cellIndex) {
			continue
		}
		mask := b.cellMask[cellIndex] & b.allValues
		count := Popcount(mask)
		if count < 2 || count > n {
			continue
		}

		values := ValuesList(mask, n)
		cands := make([]int, len(values))
		for i, v := range values {
			cands[i] = candidateIndex(cellIndex, v, n)
		}

		elims := b.ruleset.weakLinks.intersectNeighbors(cands, b.candidatePresent)
		if len(elims) == 0 {
			continue
		}

		result, applied := applyEliminations(b, elims)
		if result == Invalid {
			if desc != nil {
				*desc = append(*desc, fmt.Sprintf("Cell Forcing: %s%s leads to contradiction.", MaskToString(mask, n), CellName(cellIndex, n)))
			}
			return Invalid
		}
		if len(applied) == 0 {
			continue
		}
		if desc != nil {
			*desc = append(*desc, fmt.Sprintf("Cell Forcing: %s%s => %s.", MaskToString(mask, n), CellName(cellIndex, n), describeElims(applied, n)))
		}
		return Changed
	}
	return Unchanged
}

// applyEliminations clears every candidate in elims from its cell, skipping
// ones already gone, and returns the sub-list actually cleared plus the
// first failure if any clear emptied a cell.
func applyEliminations(b *Board, elims []int) (StepResult, []int) {
	var applied []int
	for _, cand := range elims {
		if !b.candidatePresent(cand) {
			continue
		}
		result := b.ClearCandidate(cand)
		if result == Invalid {
			return Invalid, applied
		}
		if result == Changed {
			applied = append(applied, cand)
		}
	}
	return Changed, applied
}
