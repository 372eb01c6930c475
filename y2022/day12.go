package main

import (
	"github.com/pkg/errors"

	aoc "github.com/maisem/aoc2022"
)

type heightmap struct {
	g          aoc.Grid[byte]
	start, end aoc.Pt
}

func parseHeightmap(lines []string) (heightmap, error) {
	g, err := aoc.ParseGrid(lines)
	if err != nil {
		return heightmap{}, err
	}
	var hm heightmap
	var ok bool
	if hm.start, ok = aoc.Find(g, 'S'); !ok {
		return heightmap{}, errors.New("no start")
	}
	if hm.end, ok = aoc.Find(g, 'E'); !ok {
		return heightmap{}, errors.New("no end")
	}
	g.Set(hm.start, 'a')
	g.Set(hm.end, 'z')
	hm.g = g
	return hm, nil
}

// climb returns the fewest steps from start to any point done accepts.
// canStep reports whether moving between two heights is allowed.
func (hm heightmap) climb(start aoc.Pt, canStep func(from, to byte) bool, done func(aoc.Pt) bool) (int, error) {
	d, ok := aoc.ShortestPath(start, func(p aoc.Pt, emit func(aoc.Pt, int)) {
		h := hm.g.At(p)
		p.ForImmediateNeighbors(func(q aoc.Pt) bool {
			if hq, ok := hm.g.AtOk(q); ok && canStep(h, hq) {
				emit(q, 1)
			}
			return true
		})
	}, done)
	if !ok {
		return 0, errors.Wrapf(aoc.ErrNoRoute, "from %v", start)
	}
	return d, nil
}

func (s solver) heightmap() (heightmap, error) {
	lines, err := s.Lines()
	if err != nil {
		return heightmap{}, err
	}
	return parseHeightmap(lines)
}

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() (any, error) {
	hm, err := s.heightmap()
	if err != nil {
		return nil, err
	}
	return hm.climb(hm.start, func(from, to byte) bool {
		return to <= from+1
	}, func(p aoc.Pt) bool {
		return p == hm.end
	})
}

// want=29
func (s solver) D12p2() (any, error) {
	hm, err := s.heightmap()
	if err != nil {
		return nil, err
	}
	// Walk down from the top to the nearest 'a'.
	return hm.climb(hm.end, func(from, to byte) bool {
		return from <= to+1
	}, func(p aoc.Pt) bool {
		return hm.g.At(p) == 'a'
	})
}
