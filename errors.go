package aoc

import "github.com/pkg/errors"

var (
	// ErrNodeNotFound is returned when a query names a node the graph
	// doesn't contain.
	ErrNodeNotFound = errors.New("aoc: node not found")
	// ErrNoRoute is returned when no path is known between two nodes.
	ErrNoRoute = errors.New("aoc: no route between nodes")
	// ErrNegativeWeight is returned when an edge is given a negative cost.
	ErrNegativeWeight = errors.New("aoc: negative edge weight")
	// ErrTooManyGoals is returned when more goals are requested than a
	// Progress set can hold.
	ErrTooManyGoals = errors.New("aoc: too many goals for progress set")
	// ErrNegativeSteps is returned for a negative simulation target.
	ErrNegativeSteps = errors.New("aoc: negative step count")
	// ErrOverflow is returned when an extrapolated value doesn't fit in int64.
	ErrOverflow = errors.New("aoc: integer overflow")

	ErrNoSample       = errors.New("aoc: no sample for part")
	ErrSampleMismatch = errors.New("aoc: sample answer mismatch")
	ErrUnknownDay     = errors.New("aoc: no solver for day")
)
