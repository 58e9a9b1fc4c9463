// Package generate builds on the engine's one-shot queries to produce full
// grids, carve them into puzzles, and label the result's difficulty. None of
// it reaches into Board internals the engine doesn't already expose.
package generate

import (
	"math/rand"

	"sudoku-engine/internal/sudoku/engine"
)

// GenerateFullGrid produces a complete, randomly filled grid of size n
// satisfying the given constraint set, by running the engine's randomised
// search to completion. Returns nil if the constraint set admits no
// solution at all.
func GenerateFullGrid(n int, builder *engine.ConstraintBuilder, constraintInput map[string]any, rng *rand.Rand) []int {
	data := &engine.BoardData{
		Size:        n,
		Grid:        emptyGrid(n),
		Constraints: constraintInput,
	}
	if data.Constraints == nil {
		data.Constraints = map[string]any{}
	}

	b, err := engine.ApplyBoardData(data, builder)
	if err != nil {
		return nil
	}

	sol, outcome := engine.FindSolution(b, true, rng, nil)
	if outcome != engine.SolveFound {
		return nil
	}

	out := make([]int, n*n)
	for i := range out {
		out[i] = sol.GetValue(i)
	}
	return out
}

func emptyGrid(n int) [][]engine.CellSpec {
	grid := make([][]engine.CellSpec, n)
	for r := range grid {
		grid[r] = make([]engine.CellSpec, n)
	}
	return grid
}
