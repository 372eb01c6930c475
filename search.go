package aoc

import (
	"cmp"
	"math/bits"
	"slices"

	"github.com/pkg/errors"
)

// MaxGoals is the number of distinct goals a Progress set can track.
const MaxGoals = 64

// Progress is the set of goals a search state has already satisfied. Goal i
// is bit i.
type Progress uint64

func (p Progress) Has(i int) bool {
	return p&(1<<uint(i)) != 0
}

func (p Progress) With(i int) Progress {
	return p | 1<<uint(i)
}

func (p Progress) Disjoint(q Progress) bool {
	return p&q == 0
}

func (p Progress) Len() int {
	return bits.OnesCount64(uint64(p))
}

// CheckGoals reports whether n goals fit in a Progress set.
func CheckGoals(n int) error {
	if n > MaxGoals {
		return errors.Wrapf(ErrTooManyGoals, "%d > %d", n, MaxGoals)
	}
	return nil
}

// State is one point of a bounded search. Value is what the actor has
// secured if it stops here, so the answer of a search is the largest Value
// seen anywhere.
type State[N comparable] struct {
	At       N
	Time     int
	Value    int
	Progress Progress
}

// Order selects the frontier of a Search.
type Order int

const (
	// DepthFirst expands the most recently generated state first.
	DepthFirst Order = iota
	// BestFirst expands the state with the highest Value+Bound first.
	BestFirst
)

// Search explores states reachable within Budget.
type Search[N comparable] struct {
	Budget int
	Order  Order

	// Expand calls emit for every successor of s. Successors that go back in
	// time or past Budget are dropped.
	Expand func(s State[N], emit func(State[N]))

	// Bound returns an upper bound on the value still obtainable from s.
	// It must never underestimate, or Best can miss the optimum. A nil
	// Bound disables pruning.
	Bound func(s State[N]) int
}

// Stats counts what a search did.
type Stats struct {
	Expanded  int
	Pruned    int
	Leaves    int
	Discarded int
}

type frontier[N comparable] interface {
	push(State[N], int)
	pop() (State[N], bool)
}

type stackFrontier[N comparable] struct{ Stack[State[N]] }

func (f *stackFrontier[N]) push(s State[N], _ int) { f.Push(s) }
func (f *stackFrontier[N]) pop() (State[N], bool) { return f.Pop() }

type queueFrontier[N comparable] struct{ *PQ[State[N]] }

func (f queueFrontier[N]) push(s State[N], p int) { f.PushValue(s, p) }
func (f queueFrontier[N]) pop() (State[N], bool) {
	if f.Len() == 0 {
		var zero State[N]
		return zero, false
	}
	return f.Pop().V, true
}

func (s *Search[N]) newFrontier() frontier[N] {
	if s.Order == BestFirst {
		return queueFrontier[N]{MaxQueue[State[N]]()}
	}
	return &stackFrontier[N]{}
}

func (s *Search[N]) bound(st State[N]) int {
	if s.Bound == nil {
		return 0
	}
	return s.Bound(st)
}

// walk drives the frontier. visit is called on every popped state and
// reports whether the state should be expanded.
func (s *Search[N]) walk(start State[N], visit func(State[N], *Stats) bool) Stats {
	var stats Stats
	f := s.newFrontier()
	f.push(start, start.Value+s.bound(start))
	for {
		cur, ok := f.pop()
		if !ok {
			return stats
		}
		if !visit(cur, &stats) {
			continue
		}
		if cur.Time >= s.Budget {
			stats.Leaves++
			continue
		}
		stats.Expanded++
		s.Expand(cur, func(next State[N]) {
			if next.Time < cur.Time || next.Time > s.Budget {
				stats.Discarded++
				return
			}
			f.push(next, next.Value+s.bound(next))
		})
	}
}

// Best returns the state with the highest Value reachable from start,
// skipping every state whose Value plus Bound can't beat the best so far.
func (s *Search[N]) Best(start State[N]) (State[N], Stats) {
	best := start
	stats := s.walk(start, func(cur State[N], stats *Stats) bool {
		if cur.Value > best.Value {
			best = cur
		}
		if s.Bound != nil && cur.Time < s.Budget && cur.Value+s.Bound(cur) <= best.Value {
			stats.Pruned++
			return false
		}
		return true
	})
	return best, stats
}

// All returns every state reachable from start, start included. It never
// prunes.
func (s *Search[N]) All(start State[N]) ([]State[N], Stats) {
	var out []State[N]
	stats := s.walk(start, func(cur State[N], _ *Stats) bool {
		out = append(out, cur)
		return true
	})
	return out, stats
}

// Pair is the result of combining two independent actors.
type Pair[N comparable] struct {
	A, B  State[N]
	Value int
}

// BestPair returns the pair of states with disjoint Progress whose Values
// sum highest. It assumes disjoint progress sets are achievable side by
// side, which holds when goals are consumed by whoever reaches them first.
// The second result is false if no two states (a state may pair with itself
// only when its Progress is empty) are disjoint.
func BestPair[N comparable](states []State[N]) (Pair[N], bool) {
	if len(states) == 0 {
		return Pair[N]{}, false
	}
	byProgress := make(map[Progress]State[N])
	for _, st := range states {
		if cur, ok := byProgress[st.Progress]; !ok || st.Value > cur.Value {
			byProgress[st.Progress] = st
		}
	}
	best := make([]State[N], 0, len(byProgress))
	for _, st := range byProgress {
		best = append(best, st)
	}
	slices.SortFunc(best, func(a, b State[N]) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Progress, b.Progress)
	})

	rows := make([]int, len(best))
	for i := range rows {
		rows[i] = i
	}
	// For row i the first disjoint partner j >= i is the best one, because
	// best is sorted by descending Value.
	partners := Parallel(rows, func(i int) int {
		for j := i; j < len(best); j++ {
			if best[i].Progress.Disjoint(best[j].Progress) {
				return j
			}
		}
		return -1
	})

	var out Pair[N]
	found := false
	for i, j := range partners {
		if j < 0 {
			continue
		}
		if v := best[i].Value + best[j].Value; !found || v > out.Value {
			out = Pair[N]{A: best[i], B: best[j], Value: v}
			found = true
		}
	}
	return out, found
}
