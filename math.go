package aoc

import (
	"math/bits"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := 1
	for _, v := range integers {
		result = result / GCD(result, v) * v
	}
	return result
}

// GCD returns the greatest common divisor of the integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

var intRx = regexp.MustCompile(`-?\d+`)

// Ints returns every integer in s, in order. Anything between them is
// ignored.
func Ints(s string) ([]int, error) {
	var out []int
	for _, m := range intRx.FindAllString(s, -1) {
		v, err := strconv.Atoi(m)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", m)
		}
		out = append(out, v)
	}
	return out, nil
}

// MulMod returns a*b mod m without overflowing. m must not be 0.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// AddMod returns a+b mod m without overflowing. m must not be 0.
func AddMod(a, b, m uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	return bits.Rem64(carry, s, m)
}

// MulChecked returns a*b, or ErrOverflow if it doesn't fit in 64 bits.
func MulChecked(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d*%d", a, b)
	}
	return lo, nil
}

// AddChecked returns a+b, or ErrOverflow if it doesn't fit in 64 bits.
func AddChecked(a, b uint64) (uint64, error) {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d+%d", a, b)
	}
	return s, nil
}
