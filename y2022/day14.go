package main

import (
	"strings"

	"github.com/pkg/errors"

	aoc "github.com/maisem/aoc2022"
)

type cave struct {
	blocked map[aoc.Pt]bool
	maxY    int
}

func parseCave(lines []string) (*cave, error) {
	c := &cave{blocked: map[aoc.Pt]bool{}}
	for i, l := range lines {
		if l == "" {
			continue
		}
		var path []aoc.Pt
		for _, f := range strings.Split(l, " -> ") {
			v, err := aoc.Ints(f)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			if len(v) != 2 {
				return nil, errors.Errorf("line %d: bad point %q", i+1, f)
			}
			path = append(path, aoc.Pt{X: v[0], Y: v[1]})
		}
		for j := 1; j < len(path); j++ {
			a, b := path[j-1], path[j]
			if a.X != b.X && a.Y != b.Y {
				return nil, errors.Errorf("line %d: diagonal %v -> %v", i+1, a, b)
			}
			aoc.Segment{A: a, B: b}.Points(func(p aoc.Pt) {
				c.blocked[p] = true
				c.maxY = max(c.maxY, p.Y)
			})
		}
	}
	return c, nil
}

var sandSource = aoc.Pt{X: 500, Y: 0}

// pour drops sand from the source until it falls past the lowest rock or,
// with a floor, until the source is plugged. It returns the resting grains.
//
// The path of the previous grain is kept on a stack: the next grain follows
// it down to the last spot that is still free.
func (c *cave) pour(floor bool) int {
	floorY := c.maxY + 2
	free := func(p aoc.Pt) bool {
		if floor && p.Y == floorY {
			return false
		}
		return !c.blocked[p]
	}
	path := aoc.NewStack(sandSource)
	n := 0
	for {
		p, ok := path.Peek()
		if !ok {
			return n // source plugged
		}
		if !floor && p.Y > c.maxY {
			return n // into the abyss
		}
		moved := false
		for _, dx := range []int{0, -1, 1} {
			q := aoc.Pt{X: p.X + dx, Y: p.Y + 1}
			if free(q) {
				path.Push(q)
				moved = true
				break
			}
		}
		if !moved {
			c.blocked[p] = true
			path.Pop()
			n++
		}
	}
}

func (s solver) cave() (*cave, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return parseCave(lines)
}

/*
want=24

498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
*/
func (s solver) D14p1() (any, error) {
	c, err := s.cave()
	if err != nil {
		return nil, err
	}
	return c.pour(false), nil
}

// want=93
func (s solver) D14p2() (any, error) {
	c, err := s.cave()
	if err != nil {
		return nil, err
	}
	return c.pour(true), nil
}
