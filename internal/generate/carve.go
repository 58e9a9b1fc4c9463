package generate

import (
	"math/rand"

	"sudoku-engine/internal/sudoku/engine"
)

// CarveGivens removes cells from a complete grid to build a puzzle with
// targetGivens clues remaining, so long as the puzzle keeps exactly one
// solution after each removal. Cells are tried for removal in a shuffled
// order; a removal that would make the puzzle non-unique is undone.
// constraintInput is passed through to every uniqueness check, so carving
// respects whatever variant constraints the board was generated under.
func CarveGivens(fullGrid []int, n int, targetGivens int, builder *engine.ConstraintBuilder, constraintInput map[string]any, rng *rand.Rand) []int {
	puzzle := append([]int(nil), fullGrid...)

	positions := rand.New(rand.NewSource(rng.Int63())).Perm(n * n)

	removed := 0
	target := n*n - targetGivens

	for _, pos := range positions {
		if removed >= target {
			break
		}

		old := puzzle[pos]
		puzzle[pos] = 0

		if hasUniqueSolution(puzzle, n, builder, constraintInput) {
			removed++
		} else {
			puzzle[pos] = old
		}
	}

	return puzzle
}

// hasUniqueSolution reports whether the given partially-filled grid has
// exactly one solution, via CountSolutions capped at 2.
func hasUniqueSolution(grid []int, n int, builder *engine.ConstraintBuilder, constraintInput map[string]any) bool {
	data := engine.NewClassicBoardData(n, grid)
	if constraintInput != nil {
		data.Constraints = constraintInput
	}

	b, err := engine.ApplyBoardData(data, builder)
	if err != nil {
		return false
	}

	count, _, _ := engine.CountSolutions(b, 2, make(map[string]bool), nil, nil, nil)
	return count == 1
}
