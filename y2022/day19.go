package main

import (
	"github.com/pkg/errors"

	aoc "github.com/maisem/aoc2022"
)

const (
	ore = iota
	clay
	obsidian
	geode
)

type blueprint struct {
	id   int
	cost [4][3]int // robot kind -> ore, clay, obsidian
	max  [3]int    // most of each resource any robot costs
}

func parseBlueprints(lines []string) ([]blueprint, error) {
	var out []blueprint
	for i, l := range lines {
		if l == "" {
			continue
		}
		v, err := aoc.Ints(l)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		if len(v) != 7 {
			return nil, errors.Errorf("line %d: got %d numbers, want 7", i+1, len(v))
		}
		bp := blueprint{id: v[0]}
		bp.cost[ore] = [3]int{v[1], 0, 0}
		bp.cost[clay] = [3]int{v[2], 0, 0}
		bp.cost[obsidian] = [3]int{v[3], v[4], 0}
		bp.cost[geode] = [3]int{v[5], 0, v[6]}
		for _, c := range bp.cost {
			for r, n := range c {
				bp.max[r] = max(bp.max[r], n)
			}
		}
		out = append(out, bp)
	}
	return out, nil
}

// mine is the robots and the resources after some minutes. Geodes aren't
// stocked: each geode robot is credited with everything it will crack when
// it is built.
type mine struct {
	robots [3]int
	stock  [3]int
}

// build returns the minute at which a robot of kind k is ready if it is
// built as soon as possible after t, or false if it never can be.
func (bp *blueprint) build(m mine, t, k int) (mine, int, bool) {
	wait := 0
	for r, c := range bp.cost[k] {
		if c <= m.stock[r] {
			continue
		}
		if m.robots[r] == 0 {
			return m, 0, false
		}
		wait = max(wait, (c-m.stock[r]+m.robots[r]-1)/m.robots[r])
	}
	for r := range m.stock {
		m.stock[r] += m.robots[r]*(wait+1) - bp.cost[k][r]
	}
	if k != geode {
		m.robots[k]++
	}
	return m, t + wait + 1, true
}

// search jumps from one robot build to the next; waiting around is folded
// into the jump.
func (bp *blueprint) search(budget int) *aoc.Search[mine] {
	return &aoc.Search[mine]{
		Budget: budget,
		Order:  aoc.DepthFirst,
		Expand: func(s aoc.State[mine], emit func(aoc.State[mine])) {
			for _, k := range []int{ore, clay, obsidian, geode} {
				// More robots than any recipe can spend is useless.
				if k != geode && s.At.robots[k] >= bp.max[k] {
					continue
				}
				m, t, ok := bp.build(s.At, s.Time, k)
				if !ok || t >= budget {
					continue
				}
				next := aoc.State[mine]{At: m, Time: t, Value: s.Value}
				if k == geode {
					next.Value += budget - t
				}
				emit(next)
			}
		},
		Bound: func(s aoc.State[mine]) int {
			// Pretend ore and clay are free and an obsidian robot is built
			// every minute.
			obs, robots := s.At.stock[obsidian], s.At.robots[obsidian]
			need := bp.cost[geode][obsidian]
			b := 0
			for t := s.Time; t < budget; t++ {
				build := obs >= need
				obs += robots
				robots++
				if build {
					obs -= need
					b += budget - t - 1
				}
			}
			return b
		},
	}
}

func (bp *blueprint) maxGeodes(budget int) int {
	best, _ := bp.search(budget).Best(aoc.State[mine]{At: mine{robots: [3]int{ore: 1}}})
	return best.Value
}

func (s solver) blueprints() ([]blueprint, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return parseBlueprints(lines)
}

/*
want=33

Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
*/
func (s solver) D19p1() (any, error) {
	bps, err := s.blueprints()
	if err != nil {
		return nil, err
	}
	return aoc.ParallelMapFold(bps, func(bp blueprint) int {
		return bp.id * bp.maxGeodes(24)
	}, func(sum, v int) int {
		return sum + v
	}, 0), nil
}

// want=3472
func (s solver) D19p2() (any, error) {
	bps, err := s.blueprints()
	if err != nil {
		return nil, err
	}
	if len(bps) > 3 {
		bps = bps[:3]
	}
	return aoc.ParallelMapFold(bps, func(bp blueprint) int {
		return bp.maxGeodes(32)
	}, func(prod, v int) int {
		return prod * v
	}, 1), nil
}
