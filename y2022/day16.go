package main

import (
	"cmp"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	aoc "github.com/maisem/aoc2022"
)

var valveRx = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (.*)$`)

const startValve = "AA"

// volcano is the tunnel network reduced to the valves worth opening.
type volcano struct {
	g     *aoc.Graph[string]
	dt    *aoc.DistanceTable[string]
	start int
	rate  []int // by node id
	goal  []int // goal bit by node id, -1 for valves without flow
}

func parseVolcano(lines []string) (*volcano, error) {
	g := &aoc.Graph[string]{}
	rates := map[string]int{}
	for i, l := range lines {
		if l == "" {
			continue
		}
		m := valveRx.FindStringSubmatch(l)
		if m == nil {
			return nil, errors.Errorf("line %d: bad valve %q", i+1, l)
		}
		r, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		rates[m[1]] = r
		g.AddNode(m[1])
		for _, to := range strings.Split(m[3], ", ") {
			if err := g.AddArc(m[1], to, 1); err != nil {
				return nil, err
			}
		}
	}
	start, err := g.LookupErr(startValve)
	if err != nil {
		return nil, err
	}

	v := &volcano{
		g:     g,
		start: start,
		rate:  make([]int, g.Len()),
		goal:  make([]int, g.Len()),
	}
	// Valves cut off from AA can never be opened, so they aren't goals.
	reach := g.Reachable(start)
	var targets []string
	for id, k := range g.Keys() {
		v.goal[id] = -1
		if _, ok := rates[k]; !ok {
			return nil, errors.Wrapf(aoc.ErrNodeNotFound, "tunnel to undescribed valve %s", k)
		}
		v.rate[id] = rates[k]
		if rates[k] > 0 && reach[id] {
			v.goal[id] = len(targets)
			targets = append(targets, k)
		}
	}
	if err := aoc.CheckGoals(len(targets)); err != nil {
		return nil, err
	}
	sources := append([]string{startValve}, targets...)
	// Bigger valves first, so good answers come early and prune more.
	v.dt, err = aoc.NewDistanceTable(g, sources, targets, func(a, b string) int {
		return cmp.Compare(rates[b], rates[a])
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// search returns a search that walks from valve to valve, opening one at
// each stop. Value is the pressure released by the opened valves until the
// budget runs out.
func (v *volcano) search(budget int, order aoc.Order) *aoc.Search[int] {
	return &aoc.Search[int]{
		Budget: budget,
		Order:  order,
		Expand: func(s aoc.State[int], emit func(aoc.State[int])) {
			for _, h := range v.dt.HopsByID(s.At) {
				g := v.goal[h.ID]
				if s.Progress.Has(g) {
					continue
				}
				t := s.Time + h.Dist + 1
				if t >= budget {
					continue
				}
				emit(aoc.State[int]{
					At:       h.ID,
					Time:     t,
					Value:    s.Value + v.rate[h.ID]*(budget-t),
					Progress: s.Progress.With(g),
				})
			}
		},
		Bound: func(s aoc.State[int]) int {
			left := budget - s.Time - 2
			if left <= 0 {
				return 0
			}
			b := 0
			for id, g := range v.goal {
				if g >= 0 && !s.Progress.Has(g) {
					b += v.rate[id] * left
				}
			}
			return b
		},
	}
}

func (v *volcano) startState() aoc.State[int] {
	return aoc.State[int]{At: v.start}
}

func (s solver) volcano() (*volcano, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return parseVolcano(lines)
}

/*
want=1651

Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
*/
func (s solver) D16p1() (any, error) {
	v, err := s.volcano()
	if err != nil {
		return nil, err
	}
	best, stats := v.search(30, aoc.BestFirst).Best(v.startState())
	s.Debugf("search: %+v", stats)
	return best.Value, nil
}

// want=1707
func (s solver) D16p2() (any, error) {
	v, err := s.volcano()
	if err != nil {
		return nil, err
	}
	// The elephant and I open disjoint sets of valves, so the answer is
	// the best pair of single-actor runs that don't share a valve.
	states, stats := v.search(26, aoc.DepthFirst).All(v.startState())
	s.Debugf("search: %+v, %d states", stats, len(states))
	p, ok := aoc.BestPair(states)
	if !ok {
		return nil, errors.New("no disjoint pair of routes")
	}
	return p.Value, nil
}
