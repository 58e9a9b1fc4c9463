package engine

import "math/rand"

// ResultKind discriminates the query result variants.
type ResultKind string

const (
	ResultInvalid        ResultKind = "invalid"
	ResultCancelled      ResultKind = "cancelled"
	ResultSolution       ResultKind = "solution"
	ResultNoSolution     ResultKind = "no solution"
	ResultCount          ResultKind = "count"
	ResultTrueCandidates ResultKind = "truecandidates"
)

// CandidateView is one cell's entry in an "expanded candidates" response:
// either a locked given value, or the ascending list of remaining candidate
// values.
type CandidateView struct {
	Given  bool  `json:"given,omitempty"`
	Value  int   `json:"value,omitempty"`
	Values []int `json:"values,omitempty"`
}

// expandCandidates renders every cell of b into its expanded-candidates
// form.
func expandCandidates(b *Board) []CandidateView {
	n := b.n
	out := make([]CandidateView, n*n)
	for i := 0; i < n*n; i++ {
		if b.IsGiven(i) {
			out[i] = CandidateView{Given: true, Value: b.GetValue(i)}
		} else {
			out[i] = CandidateView{Values: ValuesList(b.cellMask[i], n)}
		}
	}
	return out
}

// expandTrueCandidates renders a true-candidates mask array the same way:
// a cell whose true-candidate set has narrowed to one value is reported as
// given.
func expandTrueCandidates(masks []Mask, n int) []CandidateView {
	out := make([]CandidateView, len(masks))
	for i, mask := range masks {
		if Popcount(mask) == 1 {
			out[i] = CandidateView{Given: true, Value: MinValue(mask)}
		} else {
			out[i] = CandidateView{Values: ValuesList(mask, n)}
		}
	}
	return out
}

// QueryResult is the union result of the one-shot queries (solve,
// countSolutions, trueCandidates); exactly one set of fields is meaningful
// per Kind.
type QueryResult struct {
	Kind ResultKind `json:"kind"`

	// ResultSolution: 0 where not given, else the value.
	Solution []int `json:"solution,omitempty"`

	Count     int  `json:"count"`
	Complete  bool `json:"complete"`
	Cancelled bool `json:"cancelled,omitempty"`

	Candidates []CandidateView `json:"candidates,omitempty"`
	Counts     []int           `json:"counts,omitempty"`
}

// SolveOptions configures QuerySolve.
type SolveOptions struct {
	Random bool
}

// QuerySolve builds data and returns one solution, or "no solution"/
// "invalid"/"cancelled".
func QuerySolve(data *BoardData, builder *ConstraintBuilder, opts SolveOptions, rng *rand.Rand, isCancelled func() bool) QueryResult {
	b, err := ApplyBoardData(data, builder)
	if err != nil {
		return QueryResult{Kind: ResultInvalid}
	}

	sol, outcome := FindSolution(b, opts.Random, rng, isCancelled)
	switch outcome {
	case SolveCancelled:
		return QueryResult{Kind: ResultCancelled}
	case SolveNoSolution:
		return QueryResult{Kind: ResultNoSolution}
	default:
		values := make([]int, b.n*b.n)
		for i := range values {
			if sol.IsGiven(i) {
				values[i] = sol.GetValue(i)
			}
		}
		return QueryResult{Kind: ResultSolution, Solution: values}
	}
}

// CountOptions configures QueryCountSolutions. MaxSolutions <= 0 means
// unbounded.
type CountOptions struct {
	MaxSolutions int
}

// QueryCountSolutions builds data and counts distinct solutions up to
// MaxSolutions.
func QueryCountSolutions(data *BoardData, builder *ConstraintBuilder, opts CountOptions, isCancelled func() bool) QueryResult {
	b, err := ApplyBoardData(data, builder)
	if err != nil {
		return QueryResult{Kind: ResultInvalid}
	}

	count, complete, cancelled := CountSolutions(b, opts.MaxSolutions, make(map[string]bool), nil, isCancelled, nil)
	return QueryResult{Kind: ResultCount, Count: count, Complete: complete, Cancelled: cancelled}
}

// TrueCandidatesOptions configures QueryTrueCandidates.
// MaxSolutionsPerCandidate <= 0 defaults to 1.
type TrueCandidatesOptions struct {
	MaxSolutionsPerCandidate int
}

// QueryTrueCandidates builds data and computes the union over all
// solutions of each cell's admissible values.
func QueryTrueCandidates(data *BoardData, builder *ConstraintBuilder, opts TrueCandidatesOptions, isCancelled func() bool) QueryResult {
	b, err := ApplyBoardData(data, builder)
	if err != nil {
		return QueryResult{Kind: ResultInvalid}
	}

	maxPerCandidate := opts.MaxSolutionsPerCandidate
	if maxPerCandidate <= 0 {
		maxPerCandidate = 1
	}

	masks, counts, noSolution, cancelled := CalcTrueCandidates(b, maxPerCandidate, true, isCancelled)
	switch {
	case cancelled:
		return QueryResult{Kind: ResultCancelled}
	case noSolution:
		return QueryResult{Kind: ResultNoSolution}
	default:
		return QueryResult{
			Kind:       ResultTrueCandidates,
			Candidates: expandTrueCandidates(masks, b.n),
			Counts:     counts,
		}
	}
}

// StepResultView is the result of QueryStep/QueryLogicalSolve. Unlike the
// one-shot queries above, these act on a Board the caller already built and
// intends to keep alive across calls (the host owns the session).
type StepResultView struct {
	Desc       []string        `json:"desc"`
	Candidates []CandidateView `json:"candidates,omitempty"`
	Invalid    bool            `json:"invalid"`
	Changed    bool            `json:"changed"`
}

// QueryStep performs a single logical-step pipeline pass. When first is
// true it instead emits the synthetic "Initial Candidates" line without
// running any deduction, matching the first call of a step session.
func QueryStep(b *Board, first bool) StepResultView {
	if first {
		return StepResultView{
			Desc:       []string{"Initial Candidates"},
			Candidates: expandCandidates(b),
			Changed:    true,
		}
	}

	desc, result := LogicalStep(b)
	return StepResultView{
		Desc:       desc,
		Candidates: expandCandidates(b),
		Invalid:    result == Invalid,
		Changed:    result == Changed,
	}
}

// QueryLogicalSolve runs the logical-step pipeline to fixed point.
func QueryLogicalSolve(b *Board) StepResultView {
	desc, result := LogicalSolve(b)
	return StepResultView{
		Desc:       desc,
		Candidates: expandCandidates(b),
		Invalid:    result == Invalid,
		Changed:    len(desc) > 0,
	}
}
