package main

import (
	"bytes"

	"github.com/pkg/errors"

	aoc "github.com/maisem/aoc2022"
)

const chamberWidth = 7

// rock is a shape as row masks from the bottom up. Bit i is column i,
// counting from the left edge of the shape.
type rock struct {
	rows  []uint8
	width int
}

var rocks = []rock{
	{rows: []uint8{0b1111}, width: 4},
	{rows: []uint8{0b010, 0b111, 0b010}, width: 3},
	{rows: []uint8{0b111, 0b100, 0b100}, width: 3},
	{rows: []uint8{1, 1, 1, 1}, width: 1},
	{rows: []uint8{0b11, 0b11}, width: 2},
}

// tower is the chamber with the rocks dropped so far.
type tower struct {
	rows  []uint8 // settled rock by row, bottom first
	jets  []int
	piece int // next rock
	jet   int // next jet
}

func parseJets(in []byte) ([]int, error) {
	in = bytes.TrimSpace(in)
	if len(in) == 0 {
		return nil, errors.New("no jets")
	}
	jets := make([]int, len(in))
	for i, c := range in {
		switch c {
		case '<':
			jets[i] = -1
		case '>':
			jets[i] = 1
		default:
			return nil, errors.Errorf("bad jet %q at %d", c, i)
		}
	}
	return jets, nil
}

func (t *tower) hits(r rock, x, y int) bool {
	if x < 0 || x+r.width > chamberWidth || y < 0 {
		return true
	}
	for i, m := range r.rows {
		if y+i < len(t.rows) && t.rows[y+i]&(m<<x) != 0 {
			return true
		}
	}
	return false
}

// drop lets the next rock fall until it rests and returns how much the tower
// grew.
func (t *tower) drop() int64 {
	r := rocks[t.piece]
	t.piece = (t.piece + 1) % len(rocks)
	before := len(t.rows)
	x, y := 2, before+3
	for {
		dx := t.jets[t.jet]
		t.jet = (t.jet + 1) % len(t.jets)
		if !t.hits(r, x+dx, y) {
			x += dx
		}
		if t.hits(r, x, y-1) {
			break
		}
		y--
	}
	for i, m := range r.rows {
		for y+i >= len(t.rows) {
			t.rows = append(t.rows, 0)
		}
		t.rows[y+i] |= m << x
	}
	return int64(len(t.rows) - before)
}

const skylineDepth = 64

// towerState is what decides how the next rocks fall: the next rock and
// jet, and the top of the tower.
type towerState struct {
	piece, jet int
	top        [skylineDepth]uint8
}

func (t *tower) signature() towerState {
	st := towerState{piece: t.piece, jet: t.jet}
	for i := range st.top {
		y := len(t.rows) - 1 - i
		if y < 0 {
			break
		}
		st.top[i] = t.rows[y]
	}
	return st
}

var rockFall = aoc.Simulation[*tower, towerState]{
	Step: func(t *tower) (*tower, int64) {
		return t, t.drop()
	},
	Signature: (*tower).signature,
}

func (s solver) towerHeight(n int64) (any, error) {
	in, err := s.Input()
	if err != nil {
		return nil, err
	}
	jets, err := parseJets(in)
	if err != nil {
		return nil, err
	}
	out, err := rockFall.Run(&tower{jets: jets}, n)
	if err != nil {
		return nil, err
	}
	if out.Cycle != nil {
		s.Debugf("cycle %+v after %d rocks", *out.Cycle, out.Simulated)
	}
	return out.Value, nil
}

/*
want=3068

>>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>
*/
func (s solver) D17p1() (any, error) {
	return s.towerHeight(2022)
}

// want=1514285714288
func (s solver) D17p2() (any, error) {
	return s.towerHeight(1000000000000)
}
