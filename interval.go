package aoc

import (
	"cmp"
	"slices"
)

// Interval is the closed integer range [Lo, Hi]. It is empty if Hi < Lo.
type Interval struct {
	Lo, Hi int
}

func (iv Interval) Empty() bool {
	return iv.Hi < iv.Lo
}

// Len is the number of integers in iv.
func (iv Interval) Len() int {
	if iv.Empty() {
		return 0
	}
	return iv.Hi - iv.Lo + 1
}

func (iv Interval) Contains(v int) bool {
	return iv.Lo <= v && v <= iv.Hi
}

// Intersect returns [max(a,c), min(b,d)], which may be empty.
func (iv Interval) Intersect(o Interval) Interval {
	return Interval{max(iv.Lo, o.Lo), min(iv.Hi, o.Hi)}
}

// MergeIntervals returns the union of ivs as sorted, disjoint, non-adjacent
// intervals. Empty intervals are dropped. ivs is not modified.
func MergeIntervals(ivs []Interval) []Interval {
	sorted := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.Empty() {
			sorted = append(sorted, iv)
		}
	}
	slices.SortFunc(sorted, func(a, b Interval) int {
		return cmp.Compare(a.Lo, b.Lo)
	})
	var out []Interval
	for _, iv := range sorted {
		if n := len(out); n > 0 && iv.Lo <= out[n-1].Hi+1 {
			out[n-1].Hi = max(out[n-1].Hi, iv.Hi)
			continue
		}
		out = append(out, iv)
	}
	return out
}
