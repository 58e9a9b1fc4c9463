// Package constraints holds variant-Sudoku constraint plugins built on top
// of the engine package's Constraint contract.
package constraints

import (
	"fmt"

	"sudoku-engine/internal/sudoku/engine"
)

// KillerCage is a group of cells whose values must be pairwise distinct and
// sum to Target. It holds no board-specific mutable state, so a single
// instance is shared unmodified across every board clone.
type KillerCage struct {
	Cells  []int
	Target int
}

// NewKillerCage returns a cage over cells summing to target.
func NewKillerCage(cells []int, target int) *KillerCage {
	return &KillerCage{Cells: append([]int(nil), cells...), Target: target}
}

func (k *KillerCage) Clone() engine.Constraint { return k }

// Init registers the cage as a region (so its cells get pairwise weak
// links, enforcing distinctness) exactly once. A rejected registration means
// an identical cage already added the region, which changes nothing.
func (k *KillerCage) Init(b *engine.Board, isRepeat bool) engine.StepResult {
	if isRepeat {
		return engine.Unchanged
	}
	if len(k.Cells) == 0 || len(k.Cells) > b.Size() {
		return engine.Invalid
	}
	name := fmt.Sprintf("Cage(%s)", k.ToSpecificString())
	if !b.AddRegion(name, k.Cells, engine.RegionType("cage"), "killercage", true) {
		return engine.Unchanged
	}
	return engine.Changed
}

func (k *KillerCage) Finalize(b *engine.Board) engine.StepResult {
	return engine.Unchanged
}

// Enforce and EnforceCandidateElim have nothing incremental to do beyond
// the region's weak links (already enforced generically by Board); the sum
// constraint is checked combinatorially in LogicStep.
func (k *KillerCage) Enforce(b *engine.Board, cellIndex, value int) bool {
	return true
}

func (k *KillerCage) EnforceCandidateElim(b *engine.Board, cellIndex, value int) bool {
	return true
}

// LogicStep eliminates candidates in open cage cells that cannot appear in
// any combination of remaining distinct values summing to the residual
// target, per the classic killer-cage "combination" deduction.
func (k *KillerCage) LogicStep(b *engine.Board, desc *[]string) engine.StepResult {
	n := b.Size()
	residual := k.Target
	var open []int
	for _, cell := range k.Cells {
		if b.IsGiven(cell) {
			residual -= b.GetValue(cell)
		} else {
			open = append(open, cell)
		}
	}
	if len(open) == 0 {
		if residual != 0 {
			return engine.Invalid
		}
		return engine.Unchanged
	}
	if residual < len(open) {
		return engine.Invalid
	}

	masks := make([]engine.Mask, len(open))
	for i, cell := range open {
		masks[i] = b.CellMask(cell) & b.AllValuesMask()
	}

	combinationFound := false
	achievableMasks := make([]engine.Mask, len(open))
	candidates := make([]int, 0, n)
	for v := 1; v <= n; v++ {
		candidates = append(candidates, v)
	}

	engine.Combinations(candidates, len(open), func(combo []int) bool {
		sum := 0
		for _, v := range combo {
			sum += v
		}
		if sum != residual {
			return true
		}
		engine.Permutations(combo, func(perm []int) bool {
			ok := true
			for i, v := range perm {
				if masks[i]&engine.ValueBit(v) == 0 {
					ok = false
					break
				}
			}
			if ok {
				combinationFound = true
				for i, v := range perm {
					achievableMasks[i] |= engine.ValueBit(v)
				}
			}
			return true
		})
		return true
	})

	if !combinationFound {
		return engine.Invalid
	}

	changed := false
	for i, cell := range open {
		allowed := achievableMasks[i]
		current := b.CellMask(cell) & b.AllValuesMask()
		if current&^allowed != 0 {
			result := b.KeepCellMask(cell, allowed)
			if result == engine.Invalid {
				return engine.Invalid
			}
			if result == engine.Changed {
				changed = true
			}
		}
	}

	if changed && desc != nil {
		*desc = append(*desc, fmt.Sprintf("Killer Cage %s restricted to sum-%d combinations.", k.ToSpecificString(), k.Target))
	}
	if changed {
		return engine.Changed
	}
	return engine.Unchanged
}

func (k *KillerCage) ToSpecificString() string {
	return fmt.Sprintf("Killer Cage %d cells/%d", len(k.Cells), k.Target)
}
