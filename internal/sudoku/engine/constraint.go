package engine

// StepResult is the tri-state outcome of a mutation or logical step:
// nothing changed, something changed, or the board is now contradictory.
type StepResult int

const (
	Unchanged StepResult = iota
	Changed
	Invalid
)

// Constraint is the variant-constraint plugin contract. A Constraint
// instance is shared by reference across board clones during search and
// MUST NOT hold mutable state of its own; state that needs to survive or
// diverge across branches lives behind a key returned by
// Board.RegisterState, see constraintStateSlot below.
type Constraint interface {
	// Clone returns a copy used when the search clones a board. Read-only
	// fields may be shared between the original and the copy.
	Clone() Constraint

	// Init is called repeatedly, across every registered constraint, until
	// the whole set reaches a fixed point. isRepeat is false only on this
	// constraint's very first call, so one-shot setup (e.g. registering
	// regions or weak links) can run exactly once.
	Init(b *Board, isRepeat bool) StepResult

	// Finalize is called exactly once, after Init reaches a fixed point
	// across all constraints. It must not change the board; a Changed
	// result here is a programming error.
	Finalize(b *Board) StepResult

	// Enforce is called when cellIndex is promoted to given with value. It
	// must propagate any implied eliminations; returning false signals a
	// contradiction.
	Enforce(b *Board, cellIndex, value int) bool

	// EnforceCandidateElim is called when value is removed from cellIndex
	// while the cell remains non-given. Same contract as Enforce.
	EnforceCandidateElim(b *Board, cellIndex, value int) bool

	// LogicStep performs one round of constraint-specific deduction. If
	// desc is non-nil, human-readable lines are appended to it.
	LogicStep(b *Board, desc *[]string) StepResult

	// ToSpecificString is the short label prefixing this constraint's
	// LogicStep messages, e.g. "Killer Cage 3 cells/10"; the pipeline
	// renders the prefix as "[label]:".
	ToSpecificString() string
}

// constraintStateSlot pairs a constraint's mutable state with a
// cloned-since-branch flag, implementing copy-on-write across branches:
// on board clone every flag resets to false; getStateMut deep-clones on
// first write per branch and amortizes to O(states mutated per branch).
type constraintStateSlot struct {
	value  CloneableState
	cloned bool
}

// CloneableState is mutable per-constraint state registered through
// Board.registerState. Implementations must deep-copy everything reachable
// from the receiver.
type CloneableState interface {
	CloneState() CloneableState
}

// StateHandle identifies a registered state slot for getState/getStateMut.
type StateHandle int

// RegisterState adds a new mutable state slot and returns its handle. Must
// be called during a constraint's Init, before finalization closes the
// ruleset to further registration.
func (b *Board) RegisterState(initial CloneableState) StateHandle {
	b.constraintStates = append(b.constraintStates, constraintStateSlot{value: initial, cloned: true})
	return StateHandle(len(b.constraintStates) - 1)
}

// GetState returns the current value of a state slot for read-only use.
func (b *Board) GetState(h StateHandle) CloneableState {
	return b.constraintStates[h].value
}

// GetStateMut returns a mutable reference to a state slot, deep-cloning it
// first if this branch has not yet written to it since the last clone.
func (b *Board) GetStateMut(h StateHandle) CloneableState {
	slot := &b.constraintStates[h]
	if !slot.cloned {
		slot.value = slot.value.CloneState()
		slot.cloned = true
	}
	return slot.value
}

// ConstraintBuilder maps an input-format key (a name in the opaque
// BoardData) to a factory that constructs and registers the
// corresponding Constraint(s) on a Board. It is invoked once per key present
// in the BoardData to populate the board before finalizeConstraints runs.
type ConstraintBuilder struct {
	factories map[string]ConstraintFactory
}

// ConstraintFactory builds and registers constraints for one BoardData key.
// rawInput is the key's value from BoardData.Constraints, left opaque to
// the core engine.
type ConstraintFactory func(b *Board, rawInput any) error

// NewConstraintBuilder returns an empty registry.
func NewConstraintBuilder() *ConstraintBuilder {
	return &ConstraintBuilder{factories: make(map[string]ConstraintFactory)}
}

// Register adds a factory under name, overwriting any prior registration.
func (cb *ConstraintBuilder) Register(name string, factory ConstraintFactory) {
	cb.factories[name] = factory
}

// Build invokes every registered factory whose key is present in data's
// Constraints map, in a stable (alphabetical) order so construction is
// deterministic across runs.
func (cb *ConstraintBuilder) Build(b *Board, data *BoardData) error {
	keys := make([]string, 0, len(data.Constraints))
	for k := range data.Constraints {
		keys = append(keys, k)
	}
	sortStrings(keys)
	for _, key := range keys {
		factory, ok := cb.factories[key]
		if !ok {
			continue
		}
		if err := factory(b, data.Constraints[key]); err != nil {
			return err
		}
	}
	return nil
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
