package aoc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valves is a tiny tunnel network: walking takes the tunnel length, opening
// a valve takes a minute and then releases rate per remaining minute.
//
//	A -1- B -1- C -1- D,  A -3- D
type valves struct {
	dt   *DistanceTable[string]
	rate map[string]int
	goal map[string]int
}

func newValves(t *testing.T, rate map[string]int) *valves {
	t.Helper()
	g := &Graph[string]{}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("A", "D", 3))
	targets := []string{"B", "C", "D"}
	dt, err := NewDistanceTable(g, []string{"A", "B", "C", "D"}, targets, nil)
	require.NoError(t, err)
	return &valves{
		dt:   dt,
		rate: rate,
		goal: map[string]int{"B": 0, "C": 1, "D": 2},
	}
}

var testRates = map[string]int{"B": 2, "C": 3, "D": 4}

func (v *valves) search(budget int, order Order) *Search[string] {
	return &Search[string]{
		Budget: budget,
		Order:  order,
		Expand: func(s State[string], emit func(State[string])) {
			hops, _ := v.dt.Hops(s.At)
			for _, h := range hops {
				g := v.goal[h.To]
				t := s.Time + h.Dist + 1
				if s.Progress.Has(g) || t >= budget {
					continue
				}
				emit(State[string]{
					At:       h.To,
					Time:     t,
					Value:    s.Value + v.rate[h.To]*(budget-t),
					Progress: s.Progress.With(g),
				})
			}
		},
		Bound: func(s State[string]) int {
			left := max(0, budget-s.Time-2)
			b := 0
			for k, g := range v.goal {
				if !s.Progress.Has(g) {
					b += v.rate[k] * left
				}
			}
			return b
		},
	}
}

func TestSearchBest(t *testing.T) {
	v := newValves(t, testRates)
	for _, order := range []Order{DepthFirst, BestFirst} {
		best, stats := v.search(6, order).Best(State[string]{At: "A"})
		assert.Equal(t, 14, best.Value, "order %d", order) // B at 2, C at 4
		assert.Equal(t, "C", best.At)
		assert.Equal(t, Progress(0b011), best.Progress)
		assert.Positive(t, stats.Expanded)
	}
}

func TestSearchEqualValves(t *testing.T) {
	// B at 2 for 3*10, C at 4 for 1*10; D is too far for anything but last.
	v := newValves(t, map[string]int{"B": 10, "C": 10, "D": 10})
	best, _ := v.search(5, BestFirst).Best(State[string]{At: "A"})
	assert.Equal(t, 40, best.Value)

	all, _ := v.search(5, DepthFirst).All(State[string]{At: "A"})
	p, ok := BestPair(all)
	require.True(t, ok)
	assert.Equal(t, 50, p.Value)
}

func TestSearchMatchesExhaustive(t *testing.T) {
	v := newValves(t, testRates)
	for budget := 0; budget <= 12; budget++ {
		all, _ := v.search(budget, DepthFirst).All(State[string]{At: "A"})
		want := 0
		for _, s := range all {
			want = max(want, s.Value)
		}
		for _, order := range []Order{DepthFirst, BestFirst} {
			best, _ := v.search(budget, order).Best(State[string]{At: "A"})
			assert.Equal(t, want, best.Value, "budget %d order %d", budget, order)
		}
	}
}

func TestSearchBudgetMonotonic(t *testing.T) {
	v := newValves(t, testRates)
	prev := 0
	for budget := 0; budget <= 12; budget++ {
		best, _ := v.search(budget, BestFirst).Best(State[string]{At: "A"})
		assert.GreaterOrEqual(t, best.Value, prev, "budget %d", budget)
		prev = best.Value
	}
}

func TestSearchDiscards(t *testing.T) {
	s := &Search[int]{
		Budget: 3,
		Expand: func(st State[int], emit func(State[int])) {
			emit(State[int]{At: st.At + 1, Time: st.Time - 1})
			emit(State[int]{At: st.At + 1, Time: st.Time + 10})
			emit(State[int]{At: st.At + 1, Time: st.Time + 1, Value: st.Value + 1})
		},
	}
	all, stats := s.All(State[int]{})
	assert.Len(t, all, 4)
	assert.Equal(t, 6, stats.Discarded)
	assert.Equal(t, 1, stats.Leaves)
	best, _ := s.Best(State[int]{})
	assert.Equal(t, 3, best.Value)
}

func TestBestPair(t *testing.T) {
	v := newValves(t, testRates)
	all, _ := v.search(6, DepthFirst).All(State[string]{At: "A"})
	p, ok := BestPair(all)
	require.True(t, ok)
	// {B, C} for 14 and {D} for 8.
	assert.Equal(t, 22, p.Value)
	assert.True(t, p.A.Progress.Disjoint(p.B.Progress))
	assert.Equal(t, p.Value, p.A.Value+p.B.Value)

	pi, ok := BestPair([]State[int]{
		{Progress: 0b01, Value: 5},
		{Progress: 0b10, Value: 4},
		{Progress: 0b11, Value: 8},
		{Progress: 0b01, Value: 7},
	})
	require.True(t, ok)
	assert.Equal(t, 11, pi.Value)

	_, ok = BestPair([]State[int]{{Progress: 1, Value: 1}, {Progress: 1, Value: 2}})
	assert.False(t, ok)
	_, ok = BestPair[int](nil)
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	var p Progress
	p = p.With(0).With(63)
	assert.True(t, p.Has(63))
	assert.False(t, p.Has(1))
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.Disjoint(Progress(1)))
	assert.True(t, p.Disjoint(Progress(2)))

	require.NoError(t, CheckGoals(MaxGoals))
	assert.True(t, errors.Is(CheckGoals(MaxGoals+1), ErrTooManyGoals))
}
