package main

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	aoc "github.com/maisem/aoc2022"
)

type monkey struct {
	items  []uint64
	op     byte   // '+' or '*'
	arg    uint64 // 0 means old
	test   uint64
	throws [2]int // if false, if true
}

// worry applies the monkey's operation to old. With a modulus the result
// is reduced mod m, otherwise it is exact or an overflow error.
func (mk *monkey) worry(old, m uint64) (uint64, error) {
	arg := mk.arg
	if arg == 0 {
		arg = old
	}
	switch {
	case m != 0 && mk.op == '*':
		return aoc.MulMod(old, arg, m), nil
	case m != 0:
		return aoc.AddMod(old, arg, m), nil
	case mk.op == '*':
		return aoc.MulChecked(old, arg)
	}
	return aoc.AddChecked(old, arg)
}

func parseMonkeys(lines []string) ([]monkey, error) {
	var out []monkey
	var mk *monkey
	for i, l := range lines {
		l = strings.TrimSpace(l)
		bad := func() error { return errors.Errorf("line %d: unexpected %q", i+1, l) }
		if l == "" {
			continue
		}
		if strings.HasPrefix(l, "Monkey ") {
			out = append(out, monkey{})
			mk = &out[len(out)-1]
			continue
		}
		if mk == nil {
			return nil, bad()
		}
		key, val, ok := strings.Cut(l, ": ")
		if !ok {
			return nil, bad()
		}
		switch key {
		case "Starting items":
			v, err := aoc.Ints(val)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			for _, n := range v {
				mk.items = append(mk.items, uint64(n))
			}
		case "Operation":
			f := strings.Fields(strings.TrimPrefix(val, "new = old "))
			if len(f) != 2 || (f[0] != "+" && f[0] != "*") {
				return nil, bad()
			}
			mk.op = f[0][0]
			if f[1] != "old" {
				n, err := strconv.ParseUint(f[1], 10, 64)
				if err != nil || n == 0 {
					return nil, bad()
				}
				mk.arg = n
			}
		case "Test":
			n, err := strconv.ParseUint(strings.TrimPrefix(val, "divisible by "), 10, 64)
			if err != nil || n == 0 {
				return nil, bad()
			}
			mk.test = n
		case "If true", "If false":
			n, err := strconv.Atoi(strings.TrimPrefix(val, "throw to monkey "))
			if err != nil {
				return nil, bad()
			}
			if key == "If true" {
				mk.throws[1] = n
			} else {
				mk.throws[0] = n
			}
		default:
			return nil, bad()
		}
	}
	for i, mk := range out {
		if mk.test == 0 || mk.op == 0 {
			return nil, errors.Errorf("monkey %d: incomplete", i)
		}
		for _, to := range mk.throws {
			if to < 0 || to >= len(out) || to == i {
				return nil, errors.Errorf("monkey %d: bad target %d", i, to)
			}
		}
	}
	return out, nil
}

// business plays the rounds and returns the product of the two highest
// inspection counts. Without relief, worry levels are kept mod the lcm of
// all tests, which preserves every divisibility check.
func business(monkeys []monkey, rounds int, relief bool) (int, error) {
	var m uint64
	if !relief {
		tests := make([]int, len(monkeys))
		for i, mk := range monkeys {
			tests[i] = int(mk.test)
		}
		m = uint64(aoc.LCM(tests...))
	}
	inspected := make([]int, len(monkeys))
	for range rounds {
		for i := range monkeys {
			mk := &monkeys[i]
			for _, it := range mk.items {
				inspected[i]++
				w, err := mk.worry(it, m)
				if err != nil {
					return 0, errors.Wrapf(err, "monkey %d", i)
				}
				if relief {
					w /= 3
				}
				to := mk.throws[0]
				if w%mk.test == 0 {
					to = mk.throws[1]
				}
				monkeys[to].items = append(monkeys[to].items, w)
			}
			mk.items = mk.items[:0]
		}
	}
	if len(inspected) < 2 {
		return 0, errors.New("need at least two monkeys")
	}
	slices.Sort(inspected)
	n := len(inspected)
	return inspected[n-1] * inspected[n-2], nil
}

func (s solver) monkeys() ([]monkey, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return parseMonkeys(lines)
}

/*
want=10605

Monkey 0:
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
*/
func (s solver) D11p1() (any, error) {
	ms, err := s.monkeys()
	if err != nil {
		return nil, err
	}
	return business(ms, 20, true)
}

// want=2713310158
func (s solver) D11p2() (any, error) {
	ms, err := s.monkeys()
	if err != nil {
		return nil, err
	}
	return business(ms, 10000, false)
}
