package aoc

import (
	"math"
	"math/bits"
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"tailscale.com/util/deephash"
)

// Simulation is a deterministic process over configurations of type C.
//
// Signature must capture everything that determines future behaviour: two
// configurations with equal signatures are assumed to evolve identically.
// If that doesn't hold, Run still returns a value, just not the right one.
type Simulation[C any, S comparable] struct {
	// Step advances c by one step and returns the new configuration and
	// the measurement gained during the step.
	Step func(c C) (C, int64)
	// Signature summarizes c.
	Signature func(c C) S
}

// Cycle describes a repeating stretch of a simulation: from step Start on,
// every Length steps add Delta to the measurement.
type Cycle struct {
	Start  int64
	Length int64
	Delta  int64
}

// Outcome is the result of Simulation.Run.
type Outcome struct {
	// Value is the cumulative measurement after the requested steps.
	Value int64
	// Simulated is the number of steps actually run.
	Simulated int64
	// Cycle is nil if the target was reached before any repetition.
	Cycle *Cycle
}

// Run returns the cumulative measurement after n steps from c0. It
// simulates until n steps are done or a signature repeats, whichever is
// first, and extrapolates over whole cycles in the latter case.
func (sim Simulation[C, S]) Run(c0 C, n int64) (Outcome, error) {
	if n < 0 {
		return Outcome{}, errors.Wrapf(ErrNegativeSteps, "%d", n)
	}
	seen := map[S]int64{sim.Signature(c0): 0}
	measure := []int64{0} // measure[i] is the total after i steps
	c := c0
	for i := int64(1); ; i++ {
		if i > n {
			return Outcome{Value: measure[n], Simulated: n}, nil
		}
		var d int64
		c, d = sim.Step(c)
		total, ok := addInt64(measure[i-1], d)
		if !ok {
			return Outcome{}, errors.Wrapf(ErrOverflow, "measurement at step %d", i)
		}
		measure = append(measure, total)
		sig := sim.Signature(c)
		first, ok := seen[sig]
		if !ok {
			seen[sig] = i
			continue
		}
		if i == n {
			return Outcome{Value: total, Simulated: i}, nil
		}
		cy := &Cycle{Start: first, Length: i - first, Delta: total - measure[first]}
		v, err := cy.extrapolate(measure, n)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Value: v, Simulated: i, Cycle: cy}, nil
	}
}

// extrapolate computes the measurement after n steps given the measurements
// of every step up to the end of the first cycle.
func (cy *Cycle) extrapolate(measure []int64, n int64) (int64, error) {
	rem := (n - cy.Start) % cy.Length
	k := (n - cy.Start - rem) / cy.Length
	base := measure[cy.Start+rem]
	extra, ok := mulInt64(k, cy.Delta)
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%d cycles of %d", k, cy.Delta)
	}
	v, ok := addInt64(base, extra)
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", base, extra)
	}
	return v, nil
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// mulInt64 multiplies a non-negative k by d.
func mulInt64(k, d int64) (int64, bool) {
	neg := d < 0
	ud := uint64(d)
	if neg {
		ud = uint64(-d)
	}
	hi, lo := bits.Mul64(uint64(k), ud)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	if neg {
		return -int64(lo), true
	}
	return int64(lo), true
}

var fingerprinters sync.Map // reflect.Type -> func(*T) deephash.Sum

// Fingerprint returns a deep hash of *v, usable as a Simulation signature for
// configurations that aren't comparable themselves.
func Fingerprint[T any](v *T) deephash.Sum {
	rt := reflect.TypeFor[T]()
	h, ok := fingerprinters.Load(rt)
	if !ok {
		h, _ = fingerprinters.LoadOrStore(rt, deephash.HasherForType[T]())
	}
	return h.(func(*T) deephash.Sum)(v)
}
