package main

import (
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2022"
)

func TestParseFS(t *testing.T) {
	tr, err := parseFS([]string{
		"$ cd /",
		"$ ls",
		"dir a",
		"10 x",
		"$ cd a",
		"$ ls",
		"5 y",
		"$ cd ..",
		"$ ls",
		"10 x",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{15, 5}, dirSizes(tr))

	_, err = parseFS([]string{"$ cd /", "$ cd .."})
	assert.Error(t, err)
	_, err = parseFS([]string{"$ rm -rf /"})
	assert.Error(t, err)
	_, err = parseFS([]string{"12 x", "$ cd x"})
	assert.Error(t, err)
}

func TestHeightmap(t *testing.T) {
	_, err := parseHeightmap([]string{"abc", "abE"})
	assert.Error(t, err)

	hm, err := parseHeightmap([]string{"Sz", "zE"})
	require.NoError(t, err)
	_, err = hm.climb(hm.start, func(from, to byte) bool { return to <= from+1 }, func(p aoc.Pt) bool { return p == hm.end })
	assert.True(t, errors.Is(err, aoc.ErrNoRoute), "%v", err)
}

func TestCave(t *testing.T) {
	_, err := parseCave([]string{"1,1 -> 2,2"})
	assert.Error(t, err)

	// A cup one wide takes a grain, a second one piles on top and the
	// third rolls off the rim.
	c, err := parseCave([]string{"499,2 -> 499,3 -> 501,3 -> 501,2"})
	require.NoError(t, err)
	assert.Equal(t, 2, c.pour(false))
}

func TestVolcano(t *testing.T) {
	_, err := parseVolcano([]string{"Valve AA has flow rate=0; tunnel leads to valve BB"})
	assert.True(t, errors.Is(err, aoc.ErrNodeNotFound), "%v", err)

	_, err = parseVolcano([]string{"Valve BB has flow rate=3; tunnel leads to valve BB"})
	assert.True(t, errors.Is(err, aoc.ErrNodeNotFound), "%v", err)

	v, err := parseVolcano([]string{
		"Valve AA has flow rate=0; tunnels lead to valves BB, CC",
		"Valve BB has flow rate=5; tunnel leads to valve AA",
		"Valve CC has flow rate=7; tunnel leads to valve AA",
	})
	require.NoError(t, err)
	hops, err := v.dt.Hops("AA")
	require.NoError(t, err)
	require.Len(t, hops, 2)
	assert.Equal(t, "CC", hops[0].To, "larger valves come first")

	// CC at 2 then BB at 5: 7*8 + 5*5.
	best, _ := v.search(10, aoc.DepthFirst).Best(v.startState())
	assert.Equal(t, 81, best.Value)
}

func TestParseJets(t *testing.T) {
	_, err := parseJets([]byte("\n"))
	assert.Error(t, err)
	_, err = parseJets([]byte("<>x"))
	assert.Error(t, err)
}

func TestTower(t *testing.T) {
	jets, err := parseJets([]byte(">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>\n"))
	require.NoError(t, err)
	tw := &tower{jets: jets}
	var heights []int
	for range 4 {
		tw.drop()
		heights = append(heights, len(tw.rows))
	}
	assert.Equal(t, []int{1, 4, 6, 7}, heights)
	// The first rock lands on the floor in columns 2..5.
	assert.Equal(t, uint8(0b111100), tw.rows[0])
}

func TestBlueprints(t *testing.T) {
	bps, err := parseBlueprints(strings.Split(strings.TrimSpace(`
Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.`), "\n"))
	require.NoError(t, err)
	require.Len(t, bps, 2)
	assert.Equal(t, [3]int{4, 14, 7}, bps[0].max)
	assert.Equal(t, 9, bps[0].maxGeodes(24))
	assert.Equal(t, 12, bps[1].maxGeodes(24))

	_, err = parseBlueprints([]string{"Blueprint 1: Each ore robot costs 4 ore."})
	assert.Error(t, err)
}

func TestGroveSmall(t *testing.T) {
	g, err := parseGrove([]string{
		".....",
		"..##.",
		"..#..",
		".....",
		"..##.",
		".....",
	})
	require.NoError(t, err)
	for n := range 3 {
		g, _ = g.round(n)
	}
	assert.Equal(t, grove{
		{X: 2, Y: 0}: true,
		{X: 4, Y: 1}: true,
		{X: 0, Y: 2}: true,
		{X: 4, Y: 3}: true,
		{X: 2, Y: 5}: true,
	}, g)
	_, moved := g.round(3)
	assert.Equal(t, 0, moved)

	_, err = parseGrove([]string{"#x"})
	assert.Error(t, err)
}

func TestBasin(t *testing.T) {
	b, err := parseBasin([]string{
		"#.######",
		"#>>.<^<#",
		"#.<..<<#",
		"#>v.><>#",
		"#<^v^^>#",
		"######.#",
	})
	require.NoError(t, err)
	assert.Equal(t, aoc.Pt{X: 6, Y: 4}, b.size)
	assert.Equal(t, aoc.Pt{X: 0, Y: -1}, b.entry)
	assert.Equal(t, aoc.Pt{X: 5, Y: 4}, b.exit)

	f, err := b.forecast()
	require.NoError(t, err)
	assert.Equal(t, aoc.Cycle{Start: 0, Length: 12}, f.cycle)
	assert.Len(t, f.frames, 13)
	assert.Equal(t, 0, f.at(12))
	assert.Equal(t, 5, f.at(29))

	_, err = parseBasin([]string{"###", "#.#", "###"})
	assert.Error(t, err)
}

func TestVolcanoUnreachable(t *testing.T) {
	v, err := parseVolcano([]string{
		"Valve AA has flow rate=0; tunnel leads to valve BB",
		"Valve BB has flow rate=5; tunnel leads to valve AA",
		"Valve CC has flow rate=9; tunnel leads to valve BB",
	})
	require.NoError(t, err)
	hops, err := v.dt.Hops("AA")
	require.NoError(t, err)
	require.Len(t, hops, 1)
	assert.Equal(t, "BB", hops[0].To)
	best, _ := v.search(5, aoc.BestFirst).Best(v.startState())
	assert.Equal(t, 15, best.Value)
}

const monkeyNotes = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
`

func TestMonkeys(t *testing.T) {
	ms, err := parseMonkeys(strings.Split(monkeyNotes, "\n"))
	require.NoError(t, err)
	require.Len(t, ms, 4)
	assert.Equal(t, []uint64{79, 60, 97}, ms[2].items)
	assert.Equal(t, uint64(0), ms[2].arg)
	assert.Equal(t, [2]int{3, 1}, ms[2].throws)

	// After one round without relief the counts are 2, 4, 3, 6.
	got, err := business(slices.Clone(ms), 1, false)
	require.NoError(t, err)
	assert.Equal(t, 24, got)

	// Squaring with no relief and no modulus overflows quickly.
	sq := []monkey{
		{items: []uint64{1 << 40}, op: '*', test: 2, throws: [2]int{1, 1}},
		{op: '+', arg: 1, test: 3, throws: [2]int{0, 0}},
	}
	_, err = business(sq, 1, true)
	assert.True(t, errors.Is(err, aoc.ErrOverflow), "%v", err)

	_, err = parseMonkeys([]string{"Monkey 0:", "  Test: divisible by 2", "  Operation: new = old + 1", "    If true: throw to monkey 0", "    If false: throw to monkey 0"})
	assert.Error(t, err)
	_, err = parseMonkeys([]string{"  Test: divisible by 2"})
	assert.Error(t, err)
}

func TestSensors(t *testing.T) {
	ss, err := parseSensors([]string{
		"Sensor at x=8, y=7: closest beacon is at x=2, y=10",
	})
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, 9, ss[0].r)

	// Row 10 is 3 rows away, so it sees x in [2, 14]; the beacon at 2 is
	// known.
	assert.Equal(t, []aoc.Interval{{Lo: 2, Hi: 14}}, coverage(ss, 10))
	assert.Equal(t, 12, noBeacon(ss, 10))
	assert.Empty(t, coverage(ss, 17))

	p, err := hiddenBeacon(ss, 3)
	require.NoError(t, err)
	assert.Equal(t, aoc.Pt{X: 0, Y: 0}, p)

	_, err = parseSensors([]string{"Sensor at x=1, y=2"})
	assert.Error(t, err)
}
