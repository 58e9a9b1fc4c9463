package engine

import "fmt"

// nakedTupleAndPointingStep runs Naked Tuple then Pointing for each tuple
// size k = 2..N-1, halting at the first change or contradiction anywhere in
// the nested scan.
func nakedTupleAndPointingStep(b *Board, desc *[]string) StepResult {
	n := b.n
	for k := 2; k <= n-1; k++ {
		if result := nakedTuplePass(b, k, desc); result != Unchanged {
			return result
		}
		if result := pointingPass(b, k, desc); result != Unchanged {
			return result
		}
	}
	return Unchanged
}

// nakedTuplePass scans every region for a k-combination of non-given cells
// whose candidates union to exactly k values.
func nakedTuplePass(b *Board, k int, desc *[]string) StepResult {
	for _, region := range b.AllRegions() {
		var eligible []int
		for _, cellIndex := range region.Cells {
			if b.IsGiven(cellIndex) {
				continue
			}
			count := Popcount(b.cellMask[cellIndex] & b.allValues)
			if count >= 1 && count <= k {
				eligible = append(eligible, cellIndex)
			}
		}
		if len(eligible) < k {
			continue
		}

		result := tryNakedTuplesInRegion(b, region, eligible, k, desc)
		if result != Unchanged {
			return result
		}
	}
	return Unchanged
}

func tryNakedTuplesInRegion(b *Board, region Region, eligible []int, k int, desc *[]string) StepResult {
	n := b.n
	found := Unchanged

	Combinations(eligible, k, func(combo []int) bool {
		var union Mask
		for _, cellIndex := range combo {
			union |= b.cellMask[cellIndex] & b.allValues
		}
		if Popcount(union) != k {
			return true
		}

		for _, cellIndex := range region.Cells {
			if b.IsGiven(cellIndex) || containsInt(combo, cellIndex) {
				continue
			}
			mask := b.cellMask[cellIndex] & b.allValues
			if mask != 0 && mask&^union == 0 {
				found = Invalid
				if desc != nil {
					*desc = append(*desc, fmt.Sprintf("Naked Tuple %s in %s is contradicted by %s.", compactName(combo, union, n), region.Name, CellName(cellIndex, n)))
				}
				return false
			}
		}

		var elims []int
		for _, v := range ValuesList(union, n) {
			cands := make([]int, len(combo))
			for i, cellIndex := range combo {
				cands[i] = candidateIndex(cellIndex, v, n)
			}
			elims = append(elims, b.ruleset.weakLinks.intersectNeighbors(cands, b.candidatePresent)...)
		}
		elims = dedupInts(elims)
		if len(elims) == 0 {
			return true
		}

		result, applied := applyEliminations(b, elims)
		if result == Invalid {
			found = Invalid
			return false
		}
		if len(applied) == 0 {
			return true
		}
		if desc != nil {
			*desc = append(*desc, fmt.Sprintf("Naked Tuple %s in %s => %s.", compactName(combo, union, n), region.Name, describeElims(applied, n)))
		}
		found = Changed
		return false
	})

	return found
}

// pointingPass scans every full region for a value confined to exactly k
// cells, eliminating that value from every other cell those k cells'
// weak-link neighbourhoods share.
func pointingPass(b *Board, k int, desc *[]string) StepResult {
	n := b.n
	for _, region := range b.FullRegions() {
		for v := 1; v <= n; v++ {
			var cells []int
			for _, cellIndex := range region.Cells {
				if b.IsGiven(cellIndex) {
					continue
				}
				if HasValue(b.cellMask[cellIndex], v) {
					cells = append(cells, cellIndex)
				}
			}
			if len(cells) != k {
				continue
			}

			cands := make([]int, len(cells))
			for i, cellIndex := range cells {
				cands[i] = candidateIndex(cellIndex, v, n)
			}
			elims := b.ruleset.weakLinks.intersectNeighbors(cands, b.candidatePresent)
			if len(elims) == 0 {
				continue
			}

			result, applied := applyEliminations(b, elims)
			if result == Invalid {
				if desc != nil {
					*desc = append(*desc, fmt.Sprintf("Pointing %s in %s leads to contradiction.", compactName(cells, ValueBit(v), n), region.Name))
				}
				return Invalid
			}
			if len(applied) == 0 {
				continue
			}
			if desc != nil {
				*desc = append(*desc, fmt.Sprintf("Pointing %s in %s => %s.", compactName(cells, ValueBit(v), n), region.Name, describeElims(applied, n)))
			}
			return Changed
		}
	}
	return Unchanged
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func dedupInts(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	out := xs[:0]
	for _, x := range xs {
		if seen[x] {
			continue
		}
		seen[x] = true
		out = append(out, x)
	}
	return out
}
