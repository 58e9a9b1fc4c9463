package engine

import "time"

// CalcTrueCandidates computes, for each cell, the set of values that
// appear in at least one solution, reusing search rather than certifying
// the result through pure logic. When computeCounts is
// true it also tracks, per candidate, how many distinct solutions witness
// it: counts are exact up to maxSolutionsPerCandidate and saturate there.
//
// Returns the per-cell candidate masks, the per-candidate counts (nil if
// computeCounts is false), whether the board has no solution at all, and
// whether the computation was cancelled.
func CalcTrueCandidates(start *Board, maxSolutionsPerCandidate int, computeCounts bool, isCancelled func() bool) (candidates []Mask, counts []int, noSolution bool, cancelled bool) {
	n := start.n
	live := start.Clone()

	snapshot := func() []Mask {
		cands := make([]Mask, n*n)
		for i := range cands {
			cands[i] = live.cellMask[i] & live.allValues
		}
		return cands
	}

	switch applyBruteForceLogic(live) {
	case bfInvalid:
		return nil, nil, true, false
	case bfComplete:
		cands := snapshot()
		var cnts []int
		if computeCounts {
			cnts = make([]int, n*n*n)
			for i := 0; i < n*n; i++ {
				cnts[candidateIndex(i, live.GetValue(i), n)] = 1
			}
		}
		return cands, cnts, false, false
	}

	attempted := make([]Mask, n*n)
	var tally []int
	var seen map[string]bool
	if computeCounts {
		tally = make([]int, n*n*n)
		// Shared across every CountSolutions call below:
		// two different setAsGiven seeds can reach the same full solution,
		// and without a shared solutionsSeen set it would be tallied twice.
		seen = make(map[string]bool)
	}

	lastPoll := time.Now()

	for {
		if time.Since(lastPoll) >= pollInterval {
			lastPoll = time.Now()
			if isCancelled != nil && isCancelled() {
				return nil, nil, false, true
			}
		}

		cellIndex, ok := findUnassignedLocation(live, attempted)
		if !ok {
			return snapshot(), tally, false, false
		}

		mask := live.cellMask[cellIndex] & live.allValues
		remaining := mask &^ attempted[cellIndex]
		anyCleared := false

		for _, v := range ValuesList(remaining, n) {
			attempted[cellIndex] |= ValueBit(v)

			branch := live.Clone()
			if !branch.SetAsGiven(cellIndex, v) {
				if live.ClearValue(cellIndex, v) == Invalid {
					return nil, nil, true, false
				}
				anyCleared = true
				continue
			}

			if computeCounts {
				candIdx := candidateIndex(cellIndex, v, n)
				remainingCap := maxSolutionsPerCandidate - tally[candIdx]
				if remainingCap <= 0 {
					continue
				}
				_, _, innerCancelled := CountSolutions(branch, remainingCap, seen, nil, isCancelled, func(sol *Board) {
					for c := 0; c < n*n; c++ {
						val := sol.GetValue(c)
						ci := candidateIndex(c, val, n)
						if tally[ci] < maxSolutionsPerCandidate {
							tally[ci]++
						}
						if tally[ci] >= maxSolutionsPerCandidate {
							attempted[c] |= ValueBit(val)
						}
					}
				})
				if innerCancelled {
					return nil, nil, false, true
				}
				if tally[candIdx] == 0 {
					if live.ClearValue(cellIndex, v) == Invalid {
						return nil, nil, true, false
					}
					anyCleared = true
				}
			} else {
				sol, outcome := FindSolution(branch, false, nil, isCancelled)
				switch outcome {
				case SolveCancelled:
					return nil, nil, false, true
				case SolveFound:
					for c := 0; c < n*n; c++ {
						attempted[c] |= ValueBit(sol.GetValue(c))
					}
				default:
					if live.ClearValue(cellIndex, v) == Invalid {
						return nil, nil, true, false
					}
					anyCleared = true
				}
			}
		}

		if anyCleared {
			switch applyBruteForceLogic(live) {
			case bfInvalid:
				return nil, nil, true, false
			case bfComplete:
				return snapshot(), tally, false, false
			}
		}
	}
}
