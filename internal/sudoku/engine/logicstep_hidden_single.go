package engine

import "fmt"

// hiddenSingleStep scans every full region for a value with exactly one
// possible placement.
func hiddenSingleStep(b *Board, desc *[]string) StepResult {
	for _, region := range b.FullRegions() {
		var atLeastOnce, moreThanOnce, givenMask Mask
		for _, cellIndex := range region.Cells {
			mask := b.cellMask[cellIndex] & b.allValues
			if b.IsGiven(cellIndex) {
				givenMask |= mask
			}
			moreThanOnce |= atLeastOnce & mask
			atLeastOnce |= mask
		}
		if (atLeastOnce|givenMask)&b.allValues != b.allValues {
			if desc != nil {
				*desc = append(*desc, fmt.Sprintf("Hidden Single: no placement for some value in %s.", region.Name))
			}
			return Invalid
		}

		exactlyOnce := atLeastOnce &^ moreThanOnce
		if exactlyOnce == 0 {
			continue
		}

		for _, cellIndex := range region.Cells {
			if b.IsGiven(cellIndex) {
				continue
			}
			mask := b.cellMask[cellIndex] & b.allValues
			inter := mask & exactlyOnce
			if inter == 0 {
				continue
			}
			value := MinValue(inter)
			if !b.SetAsGiven(cellIndex, value) {
				if desc != nil {
					*desc = append(*desc, fmt.Sprintf("Hidden Single in %s: %s = %d leads to contradiction.", region.Name, CellName(cellIndex, b.n), value))
				}
				return Invalid
			}
			if desc != nil {
				*desc = append(*desc, fmt.Sprintf("Hidden Single in %s: %s = %d.", region.Name, CellName(cellIndex, b.n), value))
			}
			return Changed
		}
	}
	return Unchanged
}
