package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]string{"ab.", "S.E"})
	require.NoError(t, err)
	assert.Equal(t, Pt{3, 2}, g.Size())
	p, ok := Find(g, 'E')
	require.True(t, ok)
	assert.Equal(t, Pt{2, 1}, p)
	_, ok = Find(g, 'z')
	assert.False(t, ok)

	v, ok := g.AtOk(Pt{1, 0})
	assert.True(t, ok)
	assert.Equal(t, byte('b'), v)
	for _, p := range []Pt{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		_, ok := g.AtOk(p)
		assert.False(t, ok, "%v", p)
	}
	_, ok = Grid[int](nil).AtOk(Pt{})
	assert.False(t, ok)

	_, err = ParseGrid([]string{"abc", "de"})
	assert.Error(t, err)
}

func TestStandardizePt(t *testing.T) {
	size := Pt{4, 3}
	tests := []struct {
		in, want Pt
	}{
		{Pt{1, 1}, Pt{1, 1}},
		{Pt{4, 0}, Pt{0, 0}},
		{Pt{-1, 0}, Pt{3, 0}},
		{Pt{0, -1}, Pt{0, 2}},
		{Pt{-5, 7}, Pt{3, 1}},
	}
	for _, tt := range tests {
		if got := StandardizePt(tt.in, size); got != tt.want {
			t.Errorf("StandardizePt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSegmentPoints(t *testing.T) {
	var got []Pt
	Segment{Pt{2, 4}, Pt{2, 1}}.Points(func(p Pt) { got = append(got, p) })
	assert.Equal(t, []Pt{{2, 4}, {2, 3}, {2, 2}, {2, 1}}, got)

	got = nil
	Segment{Pt{0, 0}, Pt{0, 0}}.Points(func(p Pt) { got = append(got, p) })
	assert.Equal(t, []Pt{{0, 0}}, got)
}

func TestNeighbors(t *testing.T) {
	n := 0
	Pt{}.ForNeighbors(func(Pt) bool { n++; return true })
	assert.Equal(t, 8, n)

	var imm []Pt
	Pt{}.ForImmediateNeighbors(func(p Pt) bool { imm = append(imm, p); return true })
	assert.ElementsMatch(t, []Pt{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}, imm)

	for d := Up; d <= Left; d++ {
		got, ok := ParseDirection(d.String()[0])
		assert.True(t, ok)
		assert.Equal(t, d, got)
		assert.Equal(t, Pt{}, d.Delta().Add(((d + 2) % 4).Delta()))
	}
}

func TestBounds(t *testing.T) {
	lo, hi, ok := Bounds([]Pt{{3, -1}, {-2, 4}, {0, 0}})
	require.True(t, ok)
	assert.Equal(t, Pt{-2, -1}, lo)
	assert.Equal(t, Pt{3, 4}, hi)

	_, _, ok = Bounds[int](nil)
	assert.False(t, ok)
}
