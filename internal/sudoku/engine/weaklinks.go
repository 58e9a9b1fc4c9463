package engine

import "sort"

// weakLinkGraph is the undirected adjacency of candidate-to-candidate mutual
// exclusions. Storage is a sorted-slice-per-candidate
// adjacency with binary-search insertion, adequate
// for the sizes this engine targets (N <= 31 candidates-cubed).
type weakLinkGraph struct {
	adjacency [][]int
}

func newWeakLinkGraph(numCandidates int) *weakLinkGraph {
	return &weakLinkGraph{adjacency: make([][]int, numCandidates)}
}

// add registers a mutual exclusion between candidates a and b. It is
// symmetric, irreflexive, and idempotent on repeated insertion.
func (g *weakLinkGraph) add(a, b int) {
	if a == b {
		return
	}
	g.addDirected(a, b)
	g.addDirected(b, a)
}

func (g *weakLinkGraph) addDirected(from, to int) {
	neighbors := g.adjacency[from]
	i := sort.SearchInts(neighbors, to)
	if i < len(neighbors) && neighbors[i] == to {
		return
	}
	neighbors = append(neighbors, 0)
	copy(neighbors[i+1:], neighbors[i:])
	neighbors[i] = to
	g.adjacency[from] = neighbors
}

// neighbors returns the sorted list of candidates weakly linked to candIndex.
// Callers must not mutate the returned slice.
func (g *weakLinkGraph) neighbors(candIndex int) []int {
	return g.adjacency[candIndex]
}

// hasLink reports whether a and b are weakly linked.
func (g *weakLinkGraph) hasLink(a, b int) bool {
	neighbors := g.adjacency[a]
	i := sort.SearchInts(neighbors, b)
	return i < len(neighbors) && neighbors[i] == b
}

// clone returns a deep copy of the weak-link graph (used by subboardClone).
func (g *weakLinkGraph) clone() *weakLinkGraph {
	out := &weakLinkGraph{adjacency: make([][]int, len(g.adjacency))}
	for i, neighbors := range g.adjacency {
		if neighbors != nil {
			out.adjacency[i] = append([]int(nil), neighbors...)
		}
	}
	return out
}

// intersectNeighbors returns the intersection of the weak-link neighborhoods
// of every candidate in cands, filtered to candidates for which present
// returns true. present is supplied by the caller since "still present"
// depends on board state, not just graph structure (Board.candidatePresent:
// a candidate bit on a non-given cell, or the value of a given cell).
func (g *weakLinkGraph) intersectNeighbors(cands []int, present func(candIndex int) bool) []int {
	if len(cands) == 0 {
		return nil
	}
	counts := make(map[int]int)
	for _, c := range cands {
		for _, nb := range g.adjacency[c] {
			if present(nb) {
				counts[nb]++
			}
		}
	}
	var result []int
	for candIndex, count := range counts {
		if count == len(cands) {
			result = append(result, candIndex)
		}
	}
	sort.Ints(result)
	return result
}
