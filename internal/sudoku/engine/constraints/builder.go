package constraints

import (
	"encoding/json"
	"fmt"

	"sudoku-engine/internal/sudoku/engine"
)

// killerCageInput is the JSON shape of one entry under the "killercage" key
// of BoardData.Constraints.
type killerCageInput struct {
	Cells  []int `json:"cells"`
	Target int   `json:"target"`
}

// thermometerInput is the JSON shape of one entry under the "thermometer"
// key of BoardData.Constraints.
type thermometerInput struct {
	Cells []int `json:"cells"`
}

// decodeRaw re-marshals rawInput (typically the result of decoding a JSON
// request body into `any`) and unmarshals it into out, since BoardData
// leaves the constraint payload opaque to the core engine.
func decodeRaw(rawInput any, out any) error {
	buf, err := json.Marshal(rawInput)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, out)
}

// buildKillerCages is a ConstraintFactory registering one KillerCage per
// entry in rawInput.
func buildKillerCages(b *engine.Board, rawInput any) error {
	var inputs []killerCageInput
	if err := decodeRaw(rawInput, &inputs); err != nil {
		return fmt.Errorf("constraints: invalid killercage input: %w", err)
	}
	for _, in := range inputs {
		b.AddConstraint(NewKillerCage(in.Cells, in.Target))
	}
	return nil
}

// buildThermometers is a ConstraintFactory registering one Thermometer per
// entry in rawInput.
func buildThermometers(b *engine.Board, rawInput any) error {
	var inputs []thermometerInput
	if err := decodeRaw(rawInput, &inputs); err != nil {
		return fmt.Errorf("constraints: invalid thermometer input: %w", err)
	}
	for _, in := range inputs {
		b.AddConstraint(NewThermometer(in.Cells))
	}
	return nil
}

// RegisterBuiltins registers the killercage and thermometer factories under
// their BoardData.Constraints keys.
func RegisterBuiltins(cb *engine.ConstraintBuilder) {
	cb.Register("killercage", buildKillerCages)
	cb.Register("thermometer", buildThermometers)
}
