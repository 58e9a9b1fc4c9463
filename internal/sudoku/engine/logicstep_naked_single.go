package engine

import "fmt"

// nakedSingleStep drains the pending-singles queue: the
// first entry not already given is promoted with its sole candidate value.
func nakedSingleStep(b *Board, desc *[]string) StepResult {
	cellIndex, ok := b.popNakedSingle()
	if !ok {
		return Unchanged
	}
	value := MinValue(b.cellMask[cellIndex] & b.allValues)
	if !b.SetAsGiven(cellIndex, value) {
		if desc != nil {
			*desc = append(*desc, fmt.Sprintf("Naked Single: %s = %d leads to contradiction.", CellName(cellIndex, b.n), value))
		}
		return Invalid
	}
	if desc != nil {
		*desc = append(*desc, fmt.Sprintf("Naked Single: %s = %d.", CellName(cellIndex, b.n), value))
	}
	return Changed
}
