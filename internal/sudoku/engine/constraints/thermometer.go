package constraints

import (
	"fmt"

	"sudoku-engine/internal/sudoku/engine"
)

// Thermometer is an ordered chain of cells whose values must strictly
// increase from Cells[0] (the bulb) to the tip. It holds no board-specific
// mutable state.
type Thermometer struct {
	Cells []int
}

// NewThermometer returns a thermometer over cells, bulb first.
func NewThermometer(cells []int) *Thermometer {
	return &Thermometer{Cells: append([]int(nil), cells...)}
}

func (t *Thermometer) Clone() engine.Constraint { return t }

// Init tightens each position's candidates to what a strictly increasing
// chain of this length can contain at that position, and adds weak links
// between every pair of positions for values that would violate the
// ordering (v at an earlier position is exclusive with any v' <= v at a
// later position).
func (t *Thermometer) Init(b *engine.Board, isRepeat bool) engine.StepResult {
	if isRepeat {
		return engine.Unchanged
	}
	n := b.Size()
	changed := false
	for i, cell := range t.Cells {
		minPossible := i + 1
		maxPossible := n - (len(t.Cells) - 1 - i)
		if maxPossible < minPossible {
			return engine.Invalid
		}
		var allowed engine.Mask
		for v := minPossible; v <= maxPossible; v++ {
			allowed |= engine.ValueBit(v)
		}
		result := b.KeepCellMask(cell, allowed)
		if result == engine.Invalid {
			return engine.Invalid
		}
		if result == engine.Changed {
			changed = true
		}
	}
	for i := 0; i < len(t.Cells); i++ {
		for j := i + 1; j < len(t.Cells); j++ {
			for v1 := 1; v1 <= n; v1++ {
				for v2 := 1; v2 <= v1; v2++ {
					b.AddWeakLink(
						b.CandidateIndex(t.Cells[i], v1),
						b.CandidateIndex(t.Cells[j], v2),
					)
				}
			}
		}
	}
	if changed {
		return engine.Changed
	}
	return engine.Unchanged
}

func (t *Thermometer) Finalize(b *engine.Board) engine.StepResult {
	return engine.Unchanged
}

func (t *Thermometer) Enforce(b *engine.Board, cellIndex, value int) bool {
	return true
}

func (t *Thermometer) EnforceCandidateElim(b *engine.Board, cellIndex, value int) bool {
	return true
}

// LogicStep tightens each cell's lower/upper bound to its given or
// narrowest neighbour along the chain: a position cannot exceed the
// position ahead of it minus the remaining distance, nor fall below the
// position behind it plus the distance already covered.
func (t *Thermometer) LogicStep(b *engine.Board, desc *[]string) engine.StepResult {
	n := b.Size()
	changed := false

	minSoFar := 1
	for _, cell := range t.Cells {
		mask := b.CellMask(cell) & b.AllValuesMask()
		var keep engine.Mask
		for v := minSoFar; v <= n; v++ {
			keep |= engine.ValueBit(v)
		}
		if mask&^keep != 0 {
			result := b.KeepCellMask(cell, keep)
			if result == engine.Invalid {
				return engine.Invalid
			}
			if result == engine.Changed {
				changed = true
			}
			mask = b.CellMask(cell) & b.AllValuesMask()
		}
		if mask == 0 {
			return engine.Invalid
		}
		minSoFar = engine.MinValue(mask) + 1
	}

	maxSoFar := n
	for i := len(t.Cells) - 1; i >= 0; i-- {
		cell := t.Cells[i]
		mask := b.CellMask(cell) & b.AllValuesMask()
		var keep engine.Mask
		for v := 1; v <= maxSoFar; v++ {
			keep |= engine.ValueBit(v)
		}
		if mask&^keep != 0 {
			result := b.KeepCellMask(cell, keep)
			if result == engine.Invalid {
				return engine.Invalid
			}
			if result == engine.Changed {
				changed = true
			}
			mask = b.CellMask(cell) & b.AllValuesMask()
		}
		if mask == 0 {
			return engine.Invalid
		}
		values := engine.ValuesList(mask, n)
		maxSoFar = values[len(values)-1] - 1
	}

	if changed && desc != nil {
		*desc = append(*desc, fmt.Sprintf("%s tightened by chain ordering.", t.ToSpecificString()))
	}
	if changed {
		return engine.Changed
	}
	return engine.Unchanged
}

func (t *Thermometer) ToSpecificString() string {
	return fmt.Sprintf("Thermometer(%d cells)", len(t.Cells))
}
