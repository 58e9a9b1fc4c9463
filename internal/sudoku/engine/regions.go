package engine

import "sort"

// RegionType tags what kind of region a Region represents. The three
// built-in kinds get row/column/box uniqueness for free; constraint-supplied
// regions carry the originating constraint's own type string.
type RegionType string

const (
	RegionRow RegionType = "row"
	RegionCol RegionType = "col"
	RegionBox RegionType = "region"
)

// Region is a named group of cells that, if it has exactly N cells, must
// contain every value exactly once.
type Region struct {
	Name           string
	Type           RegionType
	Cells          []int
	FromConstraint string // empty for built-in row/col/box regions
}

// regionRegistry owns the board's region list and is shared read-only across
// clones once the ruleset is finalized.
type regionRegistry struct {
	regions []Region
}

func newRegionRegistry() *regionRegistry {
	return &regionRegistry{}
}

// addRegion registers a region, rejecting it if it is oversized or a
// duplicate of one already registered by the same constraint. When
// addWeakLinks is true, every same-value pair of candidates across distinct
// cells of the region becomes mutually exclusive.
func (rr *regionRegistry) addRegion(b *Board, name string, cells []int, regionType RegionType, fromConstraint string, addWeakLinks bool) bool {
	if len(cells) > b.n {
		return false
	}
	sorted := append([]int(nil), cells...)
	sort.Ints(sorted)

	for _, existing := range rr.regions {
		if existing.FromConstraint == fromConstraint && sameSortedCells(existing.Cells, sorted) {
			return false
		}
	}

	rr.regions = append(rr.regions, Region{
		Name:           name,
		Type:           regionType,
		Cells:          sorted,
		FromConstraint: fromConstraint,
	})

	if addWeakLinks {
		for i := 0; i < len(sorted); i++ {
			for j := i + 1; j < len(sorted); j++ {
				for v := 1; v <= b.n; v++ {
					b.ruleset.weakLinks.add(
						candidateIndex(sorted[i], v, b.n),
						candidateIndex(sorted[j], v, b.n),
					)
				}
			}
		}
	}
	return true
}

func sameSortedCells(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// getRegionsForCell returns every region containing cellIndex, optionally
// filtered to a single RegionType.
func (rr *regionRegistry) getRegionsForCell(cellIndex int, regionType *RegionType) []Region {
	var result []Region
	for _, r := range rr.regions {
		if regionType != nil && r.Type != *regionType {
			continue
		}
		for _, c := range r.Cells {
			if c == cellIndex {
				result = append(result, r)
				break
			}
		}
	}
	return result
}

// allRegions returns every registered region.
func (rr *regionRegistry) allRegions() []Region {
	return rr.regions
}

// fullRegions returns every region with exactly N cells — the ones that
// participate in Hidden Single and Pointing.
func (rr *regionRegistry) fullRegions(n int) []Region {
	var result []Region
	for _, r := range rr.regions {
		if len(r.Cells) == n {
			result = append(result, r)
		}
	}
	return result
}

// clone returns a deep copy of the region registry (used by subboardClone,
// for sub-constraints that mutate the ruleset).
func (rr *regionRegistry) clone() *regionRegistry {
	out := &regionRegistry{regions: make([]Region, len(rr.regions))}
	for i, r := range rr.regions {
		cells := append([]int(nil), r.Cells...)
		out.regions[i] = Region{Name: r.Name, Type: r.Type, Cells: cells, FromConstraint: r.FromConstraint}
	}
	return out
}
