package main

import (
	"github.com/pkg/errors"

	aoc "github.com/maisem/aoc2022"
)

type sensor struct {
	pos, beacon aoc.Pt
	r           int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func manhattan(a, b aoc.Pt) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func parseSensors(lines []string) ([]sensor, error) {
	var out []sensor
	for i, l := range lines {
		if l == "" {
			continue
		}
		v, err := aoc.Ints(l)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		if len(v) != 4 {
			return nil, errors.Errorf("line %d: got %d numbers, want 4", i+1, len(v))
		}
		s := sensor{pos: aoc.Pt{X: v[0], Y: v[1]}, beacon: aoc.Pt{X: v[2], Y: v[3]}}
		s.r = manhattan(s.pos, s.beacon)
		out = append(out, s)
	}
	return out, nil
}

// coverage returns the merged x ranges of row y that some sensor sees.
func coverage(sensors []sensor, y int) []aoc.Interval {
	ivs := make([]aoc.Interval, 0, len(sensors))
	for _, s := range sensors {
		w := s.r - abs(s.pos.Y-y)
		if w >= 0 {
			ivs = append(ivs, aoc.Interval{Lo: s.pos.X - w, Hi: s.pos.X + w})
		}
	}
	return aoc.MergeIntervals(ivs)
}

// noBeacon counts the positions of row y that can't hold a beacon.
func noBeacon(sensors []sensor, y int) int {
	ivs := coverage(sensors, y)
	lens := make([]int, len(ivs))
	for i, iv := range ivs {
		lens[i] = iv.Len()
	}
	n := aoc.Sum(lens...)
	seen := map[aoc.Pt]bool{}
	for _, s := range sensors {
		b := s.beacon
		if b.Y != y || seen[b] {
			continue
		}
		seen[b] = true
		for _, iv := range ivs {
			if iv.Contains(b.X) {
				n--
				break
			}
		}
	}
	return n
}

// hiddenBeacon finds the only point in [0,limit]² no sensor sees.
func hiddenBeacon(sensors []sensor, limit int) (aoc.Pt, error) {
	const bands = 64
	area := aoc.Interval{Lo: 0, Hi: limit}
	starts := make([]int, 0, bands)
	step := limit/bands + 1
	for y := 0; y <= limit; y += step {
		starts = append(starts, y)
	}
	found := aoc.Parallel(starts, func(y0 int) *aoc.Pt {
		for y := y0; y < y0+step && area.Contains(y); y++ {
			x := 0
			for _, iv := range coverage(sensors, y) {
				if iv = iv.Intersect(area); iv.Empty() || iv.Hi < x {
					continue
				}
				if iv.Lo > x {
					break
				}
				x = iv.Hi + 1
			}
			if x <= limit {
				return &aoc.Pt{X: x, Y: y}
			}
		}
		return nil
	})
	for _, p := range found {
		if p != nil {
			return *p, nil
		}
	}
	return aoc.Pt{}, errors.New("every position is covered")
}

// scan is the row checked by part 1 and the search limit of part 2. The
// sample uses a smaller area than the real input.
func (s solver) scan() (row, limit int) {
	if s.SampleMode {
		return 10, 20
	}
	return 2000000, 4000000
}

func (s solver) sensors() ([]sensor, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return parseSensors(lines)
}

/*
want=26

Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
*/
func (s solver) D15p1() (any, error) {
	ss, err := s.sensors()
	if err != nil {
		return nil, err
	}
	row, _ := s.scan()
	return noBeacon(ss, row), nil
}

// want=56000011
func (s solver) D15p2() (any, error) {
	ss, err := s.sensors()
	if err != nil {
		return nil, err
	}
	_, limit := s.scan()
	p, err := hiddenBeacon(ss, limit)
	if err != nil {
		return nil, err
	}
	s.Debugf("beacon at %v", p)
	return p.X*4000000 + p.Y, nil
}
