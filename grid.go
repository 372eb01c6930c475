package aoc

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if len(g) == 0 || p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid turns lines of text into a byte grid. All lines must have the
// same length.
func ParseGrid(lines []string) (Grid[byte], error) {
	g := make(Grid[byte], 0, len(lines))
	for y, l := range lines {
		if len(g) > 0 && len(l) != len(g[0]) {
			return nil, errors.Errorf("line %d: width %d, want %d", y+1, len(l), len(g[0]))
		}
		g = append(g, []byte(l))
	}
	return g, nil
}

// Find returns the first point holding v, scanning row by row.
func Find[T comparable](g Grid[T], v T) (Pt, bool) {
	for y, row := range g {
		for x, c := range row {
			if c == v {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

func (g Grid[T]) Hash() deephash.Sum {
	return Fingerprint(&g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ParseDirection maps one of ^>v< to its Direction.
func ParseDirection(c byte) (Direction, bool) {
	switch c {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

// Delta is the unit step in direction d; Y grows downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

// Points calls f for every point from A to B inclusive, stepping with
// Toward, so the segment must be horizontal, vertical or diagonal.
func (s Segment) Points(f func(Pt)) {
	p := s.A
	for {
		f(p)
		if p == s.B {
			return
		}
		p = p.Toward(s.B)
	}
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// StandardizePt wraps p onto a torus of the given size.
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

// Bounds returns the smallest box holding all of pts as its min and max
// corners. It returns false for no points.
func Bounds[T constraints.Signed](pts []Pt2[T]) (lo, hi Pt2[T], ok bool) {
	if len(pts) == 0 {
		return lo, hi, false
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi, true
}
