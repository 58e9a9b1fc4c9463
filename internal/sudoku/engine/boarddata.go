package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard is returned by ApplyBoardData when the input is
// contradictory at build time: a constraint's Init returned Invalid, or
// applying a given or pencil mark left a cell with no candidates.
var ErrInvalidBoard = errors.New("engine: board invalid")

// CellSpec is one cell's worth of input: an optional fixed
// value, whether it is given, an optional explicit region override, and
// optional pencil-mark restrictions.
type CellSpec struct {
	Value             int   `json:"value,omitempty"`
	Given             bool  `json:"given,omitempty"`
	Region            *int  `json:"region,omitempty"`
	GivenPencilMarks  []int `json:"given_pencil_marks,omitempty"`
	CenterPencilMarks []int `json:"center_pencil_marks,omitempty"`
}

// BoardData is the opaque external puzzle input: board size, a
// row-major grid of cell specs, and a map of constraint-specific raw input
// keyed by the name under which the corresponding ConstraintFactory was
// registered.
type BoardData struct {
	Size        int            `json:"size"`
	Grid        [][]CellSpec   `json:"grid"`
	Constraints map[string]any `json:"constraints,omitempty"`
}

// NewClassicBoardData builds a BoardData for plain row/column/box Sudoku
// from a flat row-major array of N*N digits, 0 meaning empty.
func NewClassicBoardData(n int, givens []int) *BoardData {
	if len(givens) != n*n {
		panic("engine: givens length must be n*n")
	}
	grid := make([][]CellSpec, n)
	for r := 0; r < n; r++ {
		row := make([]CellSpec, n)
		for c := 0; c < n; c++ {
			v := givens[r*n+c]
			row[c] = CellSpec{Value: v, Given: v != 0}
		}
		grid[r] = row
	}
	return &BoardData{Size: n, Grid: grid, Constraints: map[string]any{}}
}

// isqrt returns floor(sqrt(n)) for n >= 0, without floating point.
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// largestBoxHeight returns the largest h with h*h <= n and h|n, used to
// derive the default box regions. Falls back to 1 if n is prime, in which
// case every default box is a whole row.
func largestBoxHeight(n int) int {
	for h := isqrt(n); h >= 1; h-- {
		if n%h == 0 {
			return h
		}
	}
	return 1
}

// defaultRegionIndex computes the default box region for (row, col) on a
// board of size n: ⌊row/h⌋·h + ⌊col/(n/h)⌋ where h is the largest
// divisor of n with h² <= n.
func defaultRegionIndex(row, col, n int) int {
	h := largestBoxHeight(n)
	w := n / h
	return (row/h)*h + col/w
}

// ApplyBoardData constructs and fully populates a Board from data: it
// registers the built-in row/column/box regions, invokes builder over every
// recognised constraint key, runs finalizeConstraints, then applies pencil
// marks and givens. The returned board is finalized and ready for queries.
func ApplyBoardData(data *BoardData, builder *ConstraintBuilder) (*Board, error) {
	n := data.Size
	b := NewBoard(n)

	regionOf := make([]int, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cellIndex := r*n + c
			spec := data.Grid[r][c]
			if spec.Region != nil {
				regionOf[cellIndex] = *spec.Region
			} else {
				regionOf[cellIndex] = defaultRegionIndex(r, c, n)
			}
		}
	}
	registerBuiltinRegions(b, regionOf)

	if builder != nil {
		if err := builder.Build(b, data); err != nil {
			return nil, err
		}
	}

	if err := finalizeConstraints(b); err != nil {
		return nil, err
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cellIndex := r*n + c
			spec := data.Grid[r][c]

			if len(spec.GivenPencilMarks) > 0 {
				if b.KeepCellMask(cellIndex, ValuesMask(spec.GivenPencilMarks)) == Invalid {
					return nil, ErrInvalidBoard
				}
			}
			if len(spec.CenterPencilMarks) > 0 {
				if b.KeepCellMask(cellIndex, ValuesMask(spec.CenterPencilMarks)) == Invalid {
					return nil, ErrInvalidBoard
				}
			}
			if spec.Given {
				if spec.Value < 1 || spec.Value > n {
					return nil, fmt.Errorf("%w: value %d out of range at %s", ErrInvalidBoard, spec.Value, CellName(cellIndex, n))
				}
				if !b.SetAsGiven(cellIndex, spec.Value) {
					return nil, ErrInvalidBoard
				}
			}
		}
	}

	return b, nil
}

// registerBuiltinRegions adds the N row regions, N column regions, and one
// region per distinct box index present in regionOf.
func registerBuiltinRegions(b *Board, regionOf []int) {
	n := b.n

	for r := 0; r < n; r++ {
		cells := make([]int, n)
		for c := 0; c < n; c++ {
			cells[c] = r*n + c
		}
		b.AddRegion(fmt.Sprintf("Row %d", r+1), cells, RegionRow, "", true)
	}

	for c := 0; c < n; c++ {
		cells := make([]int, n)
		for r := 0; r < n; r++ {
			cells[r] = r*n + c
		}
		b.AddRegion(fmt.Sprintf("Column %d", c+1), cells, RegionCol, "", true)
	}

	boxes := make(map[int][]int)
	var order []int
	for cellIndex, box := range regionOf {
		if _, ok := boxes[box]; !ok {
			order = append(order, box)
		}
		boxes[box] = append(boxes[box], cellIndex)
	}
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if order[j] < order[i] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}
	for _, box := range order {
		b.AddRegion(fmt.Sprintf("Box %d", box+1), boxes[box], RegionBox, "", true)
	}
}

// finalizeConstraints runs every constraint's Init to a fixed point, then
// Finalize exactly once, then freezes the board.
func finalizeConstraints(b *Board) error {
	constraints := b.ruleset.constraints
	called := make([]bool, len(constraints))

	for {
		anyChanged := false
		for i, c := range constraints {
			isRepeat := called[i]
			called[i] = true
			switch c.Init(b, isRepeat) {
			case Invalid:
				return ErrInvalidBoard
			case Changed:
				anyChanged = true
			}
		}
		if !anyChanged {
			break
		}
	}

	for _, c := range constraints {
		switch c.Finalize(b) {
		case Invalid:
			return ErrInvalidBoard
		case Changed:
			panic("engine: constraint Finalize must not change the board")
		}
	}

	b.finalized = true
	return nil
}
