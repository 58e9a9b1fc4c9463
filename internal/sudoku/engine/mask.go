// Package engine implements the variant-Sudoku constraint-propagation and
// backtracking solver: the bitmask candidate model, the weak-link graph, the
// region/constraint registration model, the logical-step pipeline, and the
// search used to answer the five core queries.
package engine

import (
	"fmt"
	"math/bits"
	"strings"
)

// Mask is a per-cell candidate bitmask. Bits 0..N-1 are candidate bits (bit
// k set means value k+1 is still possible); bit N is the given flag, set iff
// the cell is locked to its single remaining candidate. A uint32 covers every
// N this engine supports (N up to 31 — the given flag needs the 32nd bit).
type Mask uint32

// maxN is the largest board dimension a Mask can represent: N candidate bits
// plus one given-flag bit must fit in 32 bits.
const maxN = 31

// ValueBit returns the bit for a 1-indexed value.
func ValueBit(value int) Mask {
	return 1 << uint(value-1)
}

// givenBitFor returns the given-flag bit for a board of size n.
func givenBitFor(n int) Mask {
	return 1 << uint(n)
}

// allValuesMask returns a mask with all N candidate bits set, for a board of
// size n.
func allValuesMask(n int) Mask {
	if n >= 32 {
		return ^Mask(0)
	}
	return (Mask(1) << uint(n)) - 1
}

// Popcount returns the number of set bits in mask.
func Popcount(mask Mask) int {
	return bits.OnesCount32(uint32(mask))
}

// MinValue returns 1 + the index of the lowest set candidate bit. The
// result is undefined (0) if mask has no candidate bits set.
func MinValue(mask Mask) int {
	if mask == 0 {
		return 0
	}
	return bits.TrailingZeros32(uint32(mask)) + 1
}

// HasValue reports whether value's bit is set in mask.
func HasValue(mask Mask, value int) bool {
	return mask&ValueBit(value) != 0
}

// ValuesList returns the ascending list of values whose bit is set in mask,
// restricted to 1..n.
func ValuesList(mask Mask, n int) []int {
	values := make([]int, 0, Popcount(mask&allValuesMask(n)))
	m := mask & allValuesMask(n)
	for m != 0 {
		v := MinValue(m)
		values = append(values, v)
		m &= m - 1
	}
	return values
}

// ValuesMask ORs together the bit for every value in values.
func ValuesMask(values []int) Mask {
	var m Mask
	for _, v := range values {
		m |= ValueBit(v)
	}
	return m
}

// MaskToString renders a candidate mask as digits, for a board of size n.
// For n > 9 each value is rendered as a zero-padded two-digit group
// separated by commas, since single digits would be ambiguous.
func MaskToString(mask Mask, n int) string {
	values := ValuesList(mask, n)
	if n <= 9 {
		var sb strings.Builder
		for _, v := range values {
			sb.WriteByte(byte('0' + v))
		}
		return sb.String()
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%02d", v)
	}
	return strings.Join(parts, ",")
}

// CellName formats a cell index as "R{row+1}C{col+1}" for a board of size n.
func CellName(cellIndex, n int) string {
	row, col := cellIndex/n, cellIndex%n
	return fmt.Sprintf("R%dC%d", row+1, col+1)
}

// candidateIndex packs a (cell, value) pair into a single index in
// [0, N^3): cellIndex*N + (value-1).
func candidateIndex(cellIndex, value, n int) int {
	return cellIndex*n + (value - 1)
}

// cellOfCandidate and valueOfCandidate invert candidateIndex.
func cellOfCandidate(candIndex, n int) int {
	return candIndex / n
}

func valueOfCandidate(candIndex, n int) int {
	return candIndex%n + 1
}

// Combinations lazily yields all ordered k-subsets of xs (by index, i.e.
// lexicographic), invoking yield for each. Stops early if yield returns
// false.
func Combinations(xs []int, k int, yield func([]int) bool) {
	if k <= 0 || k > len(xs) {
		return
	}
	combo := make([]int, k)
	var rec func(start, depth int) bool
	rec = func(start, depth int) bool {
		if depth == k {
			picked := make([]int, k)
			copy(picked, combo)
			return yield(picked)
		}
		for i := start; i <= len(xs)-(k-depth); i++ {
			combo[depth] = xs[i]
			if !rec(i+1, depth+1) {
				return false
			}
		}
		return true
	}
	rec(0, 0)
}

// Permutations lazily yields every ordering of xs, invoking yield for each.
// Stops early if yield returns false.
func Permutations(xs []int, yield func([]int) bool) {
	n := len(xs)
	items := make([]int, n)
	copy(items, xs)
	var rec func(k int) bool
	rec = func(k int) bool {
		if k == n {
			picked := make([]int, n)
			copy(picked, items)
			return yield(picked)
		}
		for i := k; i < n; i++ {
			items[k], items[i] = items[i], items[k]
			if !rec(k + 1) {
				items[k], items[i] = items[i], items[k]
				return false
			}
			items[k], items[i] = items[i], items[k]
		}
		return true
	}
	rec(0)
}
