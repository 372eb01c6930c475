package main

import (
	"bytes"

	"github.com/pkg/errors"
	"tailscale.com/util/deephash"

	aoc "github.com/maisem/aoc2022"
)

type blizzard struct {
	p aoc.Pt
	d aoc.Direction
}

// basin is the valley inside its walls. Points are relative to the top left
// inner cell; the entrance is on row -1 and the exit on row size.Y.
type basin struct {
	size        aoc.Pt
	entry, exit aoc.Pt
	blizzards   []blizzard
}

func parseBasin(lines []string) (*basin, error) {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	g, err := aoc.ParseGrid(lines)
	if err != nil {
		return nil, err
	}
	size := g.Size()
	if size.X < 3 || size.Y < 3 {
		return nil, errors.Errorf("valley too small: %v", size)
	}
	b := &basin{size: aoc.Pt{X: size.X - 2, Y: size.Y - 2}}
	top := bytes.IndexByte(g[0], '.')
	bottom := bytes.IndexByte(g[size.Y-1], '.')
	if top < 1 || bottom < 1 {
		return nil, errors.New("valley has no entrance or exit")
	}
	b.entry = aoc.Pt{X: top - 1, Y: -1}
	b.exit = aoc.Pt{X: bottom - 1, Y: b.size.Y}
	for y := 1; y < size.Y-1; y++ {
		for x := 1; x < size.X-1; x++ {
			c := g[y][x]
			if c == '.' {
				continue
			}
			d, ok := aoc.ParseDirection(c)
			if !ok {
				return nil, errors.Errorf("line %d: bad tile %q", y+1, c)
			}
			b.blizzards = append(b.blizzards, blizzard{aoc.Pt{X: x - 1, Y: y - 1}, d})
		}
	}
	return b, nil
}

// weather is the blizzards at one minute along with the cells they cover.
type weather struct {
	blizzards []blizzard
	cover     aoc.Grid[uint8] // bit d set if a blizzard heading d is there
}

func (b *basin) weather(bz []blizzard) weather {
	w := weather{blizzards: bz, cover: aoc.MakeGrid[uint8](b.size.X, b.size.Y)}
	for _, z := range bz {
		w.cover.Set(z.p, w.cover.At(z.p)|1<<z.d)
	}
	return w
}

// forecast is the weather of every minute until it repeats.
type forecast struct {
	frames []aoc.Grid[uint8]
	cycle  aoc.Cycle
}

// at maps minute t onto the frame that has the same weather.
func (f *forecast) at(t int) int {
	start, n := int(f.cycle.Start), int(f.cycle.Length)
	if t < start {
		return t
	}
	return start + (t-start)%n
}

func (b *basin) forecast() (*forecast, error) {
	f := &forecast{}
	sim := aoc.Simulation[weather, deephash.Sum]{
		Step: func(w weather) (weather, int64) {
			next := make([]blizzard, len(w.blizzards))
			for i, z := range w.blizzards {
				z.p = aoc.StandardizePt(z.p.Add(z.d.Delta()), b.size)
				next[i] = z
			}
			nw := b.weather(next)
			f.frames = append(f.frames, nw.cover)
			return nw, 0
		},
		Signature: func(w weather) deephash.Sum {
			return w.cover.Hash()
		},
	}
	w0 := b.weather(b.blizzards)
	f.frames = append(f.frames, w0.cover)
	// Every blizzard is back where it started after lcm(w, h) minutes.
	out, err := sim.Run(w0, int64(aoc.LCM(b.size.X, b.size.Y))+1)
	if err != nil {
		return nil, err
	}
	if out.Cycle == nil {
		return nil, errors.New("blizzards never repeat")
	}
	f.cycle = *out.Cycle
	return f, nil
}

type expedition struct {
	p aoc.Pt
	t int // forecast frame
}

// cross returns how long it takes to get from a to b leaving at minute t0.
func (b *basin) cross(f *forecast, a, z aoc.Pt, t0 int) (int, error) {
	d, ok := aoc.ShortestPath(expedition{a, f.at(t0)}, func(e expedition, emit func(expedition, int)) {
		t := f.at(e.t + 1)
		cover := f.frames[t]
		try := func(q aoc.Pt) {
			if q == b.entry || q == b.exit {
				emit(expedition{q, t}, 1)
				return
			}
			if c, ok := cover.AtOk(q); ok && c == 0 {
				emit(expedition{q, t}, 1)
			}
		}
		try(e.p)
		for d := aoc.Up; d <= aoc.Left; d++ {
			try(e.p.Add(d.Delta()))
		}
	}, func(e expedition) bool {
		return e.p == z
	})
	if !ok {
		return 0, errors.Wrapf(aoc.ErrNoRoute, "%v -> %v at minute %d", a, z, t0)
	}
	return d, nil
}

func (s solver) basin() (*basin, *forecast, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, nil, err
	}
	b, err := parseBasin(lines)
	if err != nil {
		return nil, nil, err
	}
	f, err := b.forecast()
	if err != nil {
		return nil, nil, err
	}
	s.Debugf("blizzards repeat every %d minutes", f.cycle.Length)
	return b, f, nil
}

/*
want=18

#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
*/
func (s solver) D24p1() (any, error) {
	b, f, err := s.basin()
	if err != nil {
		return nil, err
	}
	return b.cross(f, b.entry, b.exit, 0)
}

// want=54
func (s solver) D24p2() (any, error) {
	b, f, err := s.basin()
	if err != nil {
		return nil, err
	}
	t := 0
	for _, leg := range [][2]aoc.Pt{{b.entry, b.exit}, {b.exit, b.entry}, {b.entry, b.exit}} {
		d, err := b.cross(f, leg[0], leg[1], t)
		if err != nil {
			return nil, err
		}
		t += d
	}
	return t, nil
}
