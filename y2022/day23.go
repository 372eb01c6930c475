package main

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"

	aoc "github.com/maisem/aoc2022"
)

// grove is the set of elf positions. A round reads one grove and builds the
// next one; nothing is updated in place.
type grove map[aoc.Pt]bool

func parseGrove(lines []string) (grove, error) {
	g := grove{}
	for y, l := range lines {
		for x, c := range l {
			switch c {
			case '#':
				g[aoc.Pt{X: x, Y: y}] = true
			case '.':
			default:
				return nil, errors.Errorf("line %d: bad tile %q", y+1, c)
			}
		}
	}
	return g, nil
}

// lookDirs are the moves elves consider, each with the three cells that
// must be empty for it.
var lookDirs = [4]struct {
	move  aoc.Pt
	check [3]aoc.Pt
}{
	{aoc.Pt{X: 0, Y: -1}, [3]aoc.Pt{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}}}, // N
	{aoc.Pt{X: 0, Y: 1}, [3]aoc.Pt{{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}}},     // S
	{aoc.Pt{X: -1, Y: 0}, [3]aoc.Pt{{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1}}}, // W
	{aoc.Pt{X: 1, Y: 0}, [3]aoc.Pt{{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}}},     // E
}

// propose returns where the elf at p wants to go in the given round.
func (g grove) propose(p aoc.Pt, round int) (aoc.Pt, bool) {
	alone := true
	p.ForNeighbors(func(q aoc.Pt) bool {
		alone = !g[q]
		return alone
	})
	if alone {
		return p, false
	}
	for i := range lookDirs {
		d := lookDirs[(round+i)%len(lookDirs)]
		free := true
		for _, c := range d.check {
			if g[p.Add(c)] {
				free = false
				break
			}
		}
		if free {
			return p.Add(d.move), true
		}
	}
	return p, false
}

// round runs one round and returns the new grove and how many elves moved.
func (g grove) round(n int) (grove, int) {
	targets := make(map[aoc.Pt]aoc.Pt, len(g)) // elf -> proposal
	claims := map[aoc.Pt]int{}
	for p := range g {
		if q, ok := g.propose(p, n); ok {
			targets[p] = q
			claims[q]++
		}
	}
	next := make(grove, len(g))
	moved := 0
	for p := range g {
		if q, ok := targets[p]; ok && claims[q] == 1 {
			next[q] = true
			moved++
			continue
		}
		next[p] = true
	}
	return next, moved
}

func (g grove) emptyTiles() int {
	lo, hi, ok := aoc.Bounds(maps.Keys(g))
	if !ok {
		return 0
	}
	return (hi.X-lo.X+1)*(hi.Y-lo.Y+1) - len(g)
}

func (s solver) grove() (grove, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return parseGrove(lines)
}

/*
want=110

....#..
..###.#
#...#.#
.#...##
#.###..
##.#.##
.#..#..
*/
func (s solver) D23p1() (any, error) {
	g, err := s.grove()
	if err != nil {
		return nil, err
	}
	for n := 0; n < 10; n++ {
		g, _ = g.round(n)
	}
	return g.emptyTiles(), nil
}

// want=20
func (s solver) D23p2() (any, error) {
	g, err := s.grove()
	if err != nil {
		return nil, err
	}
	for n := 0; ; n++ {
		var moved int
		if g, moved = g.round(n); moved == 0 {
			return n + 1, nil
		}
	}
}
