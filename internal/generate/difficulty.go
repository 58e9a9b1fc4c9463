package generate

import "sudoku-engine/internal/sudoku/engine"

// Difficulty is the label difficulty.go assigns a puzzle by which pipeline
// tiers it needed to solve purely logically.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "easy"
	DifficultyMedium     Difficulty = "medium"
	DifficultyHard       Difficulty = "hard"
	DifficultyUnsolvable Difficulty = "unsolvable"
)

// TierCounts tallies how many times each pipeline tier fired while solving
// a puzzle purely logically.
type TierCounts struct {
	NakedSingle          int
	HiddenSingle         int
	ConstraintLogic      int
	CellForcing          int
	NakedTupleOrPointing int
}

// AnalyzeDifficulty runs the logical-step pipeline on b to a fixed point,
// tallying which tier produced each change, and labels the result: Easy if
// only Naked/Hidden Single fired, Medium if Naked Tuple/Pointing/Cell
// Forcing were needed, Hard if a constraint's own LogicStep fired, and
// Unsolvable if the pipeline stalls before every cell is given (the puzzle
// needs search, not pure logic). b is consumed; callers pass a fresh clone.
func AnalyzeDifficulty(b *engine.Board) (Difficulty, TierCounts) {
	var counts TierCounts

	for {
		_, result, tier := engine.LogicalStepTiered(b)
		if result == engine.Unchanged {
			break
		}

		switch tier {
		case engine.TierNakedSingle:
			counts.NakedSingle++
		case engine.TierHiddenSingle:
			counts.HiddenSingle++
		case engine.TierConstraintLogic:
			counts.ConstraintLogic++
		case engine.TierCellForcing:
			counts.CellForcing++
		case engine.TierNakedTupleOrPointing:
			counts.NakedTupleOrPointing++
		}

		if result == engine.Invalid {
			return DifficultyUnsolvable, counts
		}
	}

	if b.NonGivenCount() > 0 {
		return DifficultyUnsolvable, counts
	}

	switch {
	case counts.ConstraintLogic > 0:
		return DifficultyHard, counts
	case counts.CellForcing > 0 || counts.NakedTupleOrPointing > 0:
		return DifficultyMedium, counts
	default:
		return DifficultyEasy, counts
	}
}
