package engine

import "fmt"

// constraintLogicStep runs every constraint's LogicStep in registration
// order, prefixing any emitted lines with its label.
func constraintLogicStep(b *Board, desc *[]string) StepResult {
	for _, c := range b.ruleset.constraints {
		var local []string
		result := c.LogicStep(b, &local)
		if result == Unchanged {
			continue
		}
		if desc != nil {
			prefix := fmt.Sprintf("[%s]:", c.ToSpecificString())
			for _, line := range local {
				*desc = append(*desc, fmt.Sprintf("%s %s", prefix, line))
			}
		}
		return result
	}
	return Unchanged
}

// logicalSteps is the fixed pipeline order.
var logicalSteps = []func(*Board, *[]string) StepResult{
	nakedSingleStep,
	hiddenSingleStep,
	constraintLogicStep,
	cellForcingStep,
	nakedTupleAndPointingStep,
}

// LogicalStep tries each step of the pipeline in order and halts at the
// first one that reports Changed or Invalid, returning its description
// lines. If every step reports Unchanged, it returns Unchanged with no
// description.
func LogicalStep(b *Board) ([]string, StepResult) {
	for _, step := range logicalSteps {
		var desc []string
		result := step(b, &desc)
		if result != Unchanged {
			return desc, result
		}
	}
	return nil, Unchanged
}

// LogicalSolve repeats LogicalStep until it reports Unchanged (fixed
// point) or Invalid, accumulating every step's description lines in order.
func LogicalSolve(b *Board) ([]string, StepResult) {
	var all []string
	for {
		desc, result := LogicalStep(b)
		all = append(all, desc...)
		switch result {
		case Unchanged, Invalid:
			return all, result
		}
	}
}

// StepTier labels which stage of the pipeline produced a step, for callers
// that classify a puzzle's required difficulty by which tiers it needs.
type StepTier int

const (
	TierNakedSingle StepTier = iota
	TierHiddenSingle
	TierConstraintLogic
	TierCellForcing
	TierNakedTupleOrPointing
)

// LogicalStepTiered behaves like LogicalStep but also reports which pipeline
// stage produced the change, so a difficulty classifier can tally tiers
// without duplicating the pipeline order.
func LogicalStepTiered(b *Board) ([]string, StepResult, StepTier) {
	for i, step := range logicalSteps {
		var desc []string
		result := step(b, &desc)
		if result != Unchanged {
			return desc, result, StepTier(i)
		}
	}
	return nil, Unchanged, 0
}
