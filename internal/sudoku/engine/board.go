package engine

// ruleset is the immutable-after-finalization shared state of a Board: the
// weak-link graph, the region list, the registered constraints, and a
// string-keyed memo table. It is shared by reference between a board and
// every clone taken of it during search (it is frozen once
// finalizeConstraints runs).
type ruleset struct {
	n           int
	weakLinks   *weakLinkGraph
	regions     *regionRegistry
	constraints []Constraint
	memo        map[string]any
}

// Board owns the per-cell candidate mask array, the weak-link graph, the
// region list, the constraint list, the constraint mutable-state table, a
// memo table, a pending naked-singles queue, and (via the package-level
// logical-step pipeline) access to one round of human-style deduction.
type Board struct {
	n            int
	allValues    Mask
	givenBitMask Mask

	ruleset *ruleset

	cellMask         []Mask
	constraintStates []constraintStateSlot
	nakedSingles     []int
	nonGivenCount    int

	finalized bool
}

// NewBoard constructs an empty board of size n with all cells unknown (every
// candidate possible) and no regions or constraints registered yet; the only
// weak links are those between distinct candidates of the same cell.
// Callers populate it via addRegion/AddConstraint and finalize it with
// finalizeConstraints before applying givens.
func NewBoard(n int) *Board {
	if n < 1 || n > maxN {
		panic("engine: board size out of range")
	}
	all := allValuesMask(n)
	given := givenBitFor(n)

	cells := make([]Mask, n*n)
	for i := range cells {
		cells[i] = all
	}

	weakLinks := newWeakLinkGraph(n * n * n)
	// Distinct candidates of the same cell are mutually exclusive: a
	// cell can only hold one value.
	for cellIndex := 0; cellIndex < n*n; cellIndex++ {
		for v1 := 1; v1 <= n; v1++ {
			for v2 := v1 + 1; v2 <= n; v2++ {
				weakLinks.add(candidateIndex(cellIndex, v1, n), candidateIndex(cellIndex, v2, n))
			}
		}
	}

	return &Board{
		n:            n,
		allValues:    all,
		givenBitMask: given,
		ruleset: &ruleset{
			n:         n,
			weakLinks: weakLinks,
			regions:   newRegionRegistry(),
			memo:      make(map[string]any),
		},
		cellMask:      cells,
		nonGivenCount: n * n,
	}
}

// Size returns the board's N.
func (b *Board) Size() int { return b.n }

// AllValuesMask returns the all-candidates mask for this board's size.
func (b *Board) AllValuesMask() Mask { return b.allValues }

// AddRegion registers a region, see regionRegistry.addRegion. It must
// only be called before the board is finalized.
func (b *Board) AddRegion(name string, cells []int, regionType RegionType, fromConstraint string, addWeakLinks bool) bool {
	return b.ruleset.regions.addRegion(b, name, cells, regionType, fromConstraint, addWeakLinks)
}

// GetRegionsForCell returns every region containing cellIndex, optionally
// filtered to a RegionType.
func (b *Board) GetRegionsForCell(cellIndex int, regionType *RegionType) []Region {
	return b.ruleset.regions.getRegionsForCell(cellIndex, regionType)
}

// AllRegions returns every registered region.
func (b *Board) AllRegions() []Region { return b.ruleset.regions.allRegions() }

// FullRegions returns every region of exactly N cells.
func (b *Board) FullRegions() []Region { return b.ruleset.regions.fullRegions(b.n) }

// AddWeakLink registers a mutual exclusion between two candidate indices.
func (b *Board) AddWeakLink(a, bIdx int) { b.ruleset.weakLinks.add(a, bIdx) }

// WeakLinkNeighbors returns the candidates weakly linked to candIndex.
func (b *Board) WeakLinkNeighbors(candIndex int) []int {
	return b.ruleset.weakLinks.neighbors(candIndex)
}

// HasWeakLink reports whether two candidates are weakly linked.
func (b *Board) HasWeakLink(a, bIdx int) bool { return b.ruleset.weakLinks.hasLink(a, bIdx) }

// AddConstraint registers a constraint. Must be called before finalization.
func (b *Board) AddConstraint(c Constraint) {
	b.ruleset.constraints = append(b.ruleset.constraints, c)
}

// Constraints returns the registered constraints in registration order.
func (b *Board) Constraints() []Constraint { return b.ruleset.constraints }

// Memo returns the value stored under key in the shared memo table, and
// whether it was present. The memo table is shared by reference across
// clones and is meant to be written once and read thereafter.
func (b *Board) Memo(key string) (any, bool) {
	v, ok := b.ruleset.memo[key]
	return v, ok
}

// SetMemo stores a value under key in the shared memo table.
func (b *Board) SetMemo(key string, value any) {
	b.ruleset.memo[key] = value
}

// CandidateIndex packs (cellIndex, value) into this board's candidate index
// space.
func (b *Board) CandidateIndex(cellIndex, value int) int {
	return candidateIndex(cellIndex, value, b.n)
}

// CellOfCandidate and ValueOfCandidate invert CandidateIndex.
func (b *Board) CellOfCandidate(candIndex int) int  { return cellOfCandidate(candIndex, b.n) }
func (b *Board) ValueOfCandidate(candIndex int) int { return valueOfCandidate(candIndex, b.n) }

// CellMask returns the raw mask (candidate bits plus given flag) for a cell.
func (b *Board) CellMask(cellIndex int) Mask { return b.cellMask[cellIndex] }

// IsGiven reports whether cellIndex is locked to a single value.
func (b *Board) IsGiven(cellIndex int) bool {
	return b.cellMask[cellIndex]&b.givenBitMask != 0
}

// GetValue returns the locked-in or sole-remaining value for a cell; its
// result is meaningless if the cell has more than one candidate and is not
// given.
func (b *Board) GetValue(cellIndex int) int {
	return MinValue(b.cellMask[cellIndex] &^ b.givenBitMask)
}

// NonGivenCount returns the number of cells not yet locked to a value.
func (b *Board) NonGivenCount() int { return b.nonGivenCount }

// candidatePresent reports whether candIndex is still possible on the
// board: either its cell is given with exactly that value, or its cell is
// non-given and still carries that candidate bit.
func (b *Board) candidatePresent(candIndex int) bool {
	cellIndex := b.CellOfCandidate(candIndex)
	value := b.ValueOfCandidate(candIndex)
	if b.IsGiven(cellIndex) {
		return b.GetValue(cellIndex) == value
	}
	return HasValue(b.cellMask[cellIndex], value)
}

// ============================================================================
// Mutation primitives
// ============================================================================

// SetCellMask unconditionally sets a cell's full mask (candidate bits plus
// given flag) and runs enforcement. Used during givens/pencil-mark
// application, where the caller has already decided the exact target mask.
func (b *Board) SetCellMask(cellIndex int, newMask Mask) StepResult {
	orig := b.cellMask[cellIndex]
	return b.applyMask(cellIndex, orig, newMask)
}

// KeepCellMask ANDs keepMask into a non-given cell's candidates.
func (b *Board) KeepCellMask(cellIndex int, keepMask Mask) StepResult {
	if b.IsGiven(cellIndex) {
		return Unchanged
	}
	orig := b.cellMask[cellIndex]
	return b.applyMask(cellIndex, orig, orig&keepMask)
}

// ClearCellMask AND-NOTs clearMask out of a non-given cell's candidates.
func (b *Board) ClearCellMask(cellIndex int, clearMask Mask) StepResult {
	if b.IsGiven(cellIndex) {
		return Unchanged
	}
	orig := b.cellMask[cellIndex]
	return b.applyMask(cellIndex, orig, orig&^clearMask)
}

// ClearValue removes a single value's candidate bit from a cell.
func (b *Board) ClearValue(cellIndex, value int) StepResult {
	return b.ClearCellMask(cellIndex, ValueBit(value))
}

// ClearCandidate removes the candidate identified by a packed candidate
// index.
func (b *Board) ClearCandidate(candIndex int) StepResult {
	return b.ClearValue(b.CellOfCandidate(candIndex), b.ValueOfCandidate(candIndex))
}

// EnforceValue restricts a cell to a single value's candidate bit.
func (b *Board) EnforceValue(cellIndex, value int) StepResult {
	return b.KeepCellMask(cellIndex, ValueBit(value))
}

// EnforceCandidate restricts a cell to a single candidate identified by a
// packed candidate index.
func (b *Board) EnforceCandidate(candIndex int) StepResult {
	return b.EnforceValue(b.CellOfCandidate(candIndex), b.ValueOfCandidate(candIndex))
}

// applyMask is the common enforcement path for every mutation that can
// change a cell's candidates: it detects emptiness,
// detects no-ops, enqueues newly-singleton cells for NakedSingle, and walks
// every removed bit through each constraint's EnforceCandidateElim.
func (b *Board) applyMask(cellIndex int, orig, newMask Mask) StepResult {
	b.cellMask[cellIndex] = newMask

	if newMask&b.allValues == 0 {
		return Invalid
	}
	if newMask == orig {
		return Unchanged
	}
	if Popcount(newMask&b.allValues) == 1 && newMask&b.givenBitMask == 0 {
		b.nakedSingles = append(b.nakedSingles, cellIndex)
	}

	removed := (orig &^ newMask) & b.allValues
	for removed != 0 {
		value := MinValue(removed)
		removed &= removed - 1
		for _, c := range b.ruleset.constraints {
			if !c.EnforceCandidateElim(b, cellIndex, value) {
				return Invalid
			}
		}
	}
	return Changed
}

// SetAsGiven locks cellIndex to value. The board must already be
// finalized. If the cell is already given, this succeeds only if it already
// held the same value. Every candidate weakly linked to (cellIndex, value)
// in any other cell is cleared, and every constraint's Enforce is invoked.
// Returns false on contradiction.
func (b *Board) SetAsGiven(cellIndex, value int) bool {
	if !b.finalized {
		panic("engine: SetAsGiven called before finalization")
	}
	if b.IsGiven(cellIndex) {
		return b.GetValue(cellIndex) == value
	}
	if !HasValue(b.cellMask[cellIndex], value) {
		return false
	}

	b.cellMask[cellIndex] = ValueBit(value) | b.givenBitMask
	b.nonGivenCount--

	candIndex := b.CandidateIndex(cellIndex, value)
	for _, nb := range b.ruleset.weakLinks.neighbors(candIndex) {
		otherCell := b.CellOfCandidate(nb)
		if otherCell == cellIndex {
			continue
		}
		if b.ClearValue(otherCell, b.ValueOfCandidate(nb)) == Invalid {
			return false
		}
	}

	for _, c := range b.ruleset.constraints {
		if !c.Enforce(b, cellIndex, value) {
			return false
		}
	}
	return true
}

// ============================================================================
// Naked-singles queue
// ============================================================================

// popNakedSingle removes and returns the next enqueued cell index still
// owed a NakedSingle check, and whether the queue was non-empty.
func (b *Board) popNakedSingle() (int, bool) {
	for len(b.nakedSingles) > 0 {
		cellIndex := b.nakedSingles[0]
		b.nakedSingles = b.nakedSingles[1:]
		if !b.IsGiven(cellIndex) && Popcount(b.cellMask[cellIndex]&b.allValues) == 1 {
			return cellIndex, true
		}
	}
	return 0, false
}

// ============================================================================
// Cloning
// ============================================================================

// cloneConstraintStates returns a copy-on-write copy of the state slots:
// same shared values, all flags reset to not-cloned.
func (b *Board) cloneConstraintStates() []constraintStateSlot {
	out := make([]constraintStateSlot, len(b.constraintStates))
	for i, slot := range b.constraintStates {
		out[i] = constraintStateSlot{value: slot.value, cloned: false}
	}
	return out
}

// Clone shares the ruleset (weak links, regions, constraints, memo) and
// deep-copies cell masks, the naked-singles queue, and (lazily, via
// copy-on-write) constraint state.
func (b *Board) Clone() *Board {
	return &Board{
		n:                b.n,
		allValues:        b.allValues,
		givenBitMask:     b.givenBitMask,
		ruleset:          b.ruleset,
		cellMask:         append([]Mask(nil), b.cellMask...),
		constraintStates: b.cloneConstraintStates(),
		nakedSingles:     append([]int(nil), b.nakedSingles...),
		nonGivenCount:    b.nonGivenCount,
		finalized:        b.finalized,
	}
}

// SubboardClone additionally deep-copies weak links and regions into a
// private ruleset, and clones every constraint via its own Clone(), for
// sub-constraints that must mutate the ruleset independently of their
// parent board.
func (b *Board) SubboardClone() *Board {
	nb := b.Clone()
	clonedConstraints := make([]Constraint, len(b.ruleset.constraints))
	for i, c := range b.ruleset.constraints {
		clonedConstraints[i] = c.Clone()
	}
	nb.ruleset = &ruleset{
		n:           b.ruleset.n,
		weakLinks:   b.ruleset.weakLinks.clone(),
		regions:     b.ruleset.regions.clone(),
		constraints: clonedConstraints,
		memo:        b.ruleset.memo,
	}
	return nb
}
