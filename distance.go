package aoc

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

// Hop is one entry of a DistanceTable row: the target node and how far it is
// from the row's source.
type Hop[K comparable] struct {
	To   K
	ID   int
	Dist int
}

// DistanceTable holds shortest distances from a set of source nodes to a set
// of target nodes of one graph. It is read-only once built.
type DistanceTable[K comparable] struct {
	g    *Graph[K]
	rows map[int][]Hop[K]
	dist map[int][]int
}

// NewDistanceTable runs Dijkstra once per source and keeps, for each source,
// the reachable targets other than the source itself. Rows are sorted with
// order (nil keeps id order) and then by node id, so expansion order is
// deterministic.
func NewDistanceTable[K comparable](g *Graph[K], sources, targets []K, order func(a, b K) int) (*DistanceTable[K], error) {
	tids := make([]int, 0, len(targets))
	for _, t := range targets {
		id, err := g.LookupErr(t)
		if err != nil {
			return nil, errors.Wrap(err, "distance table target")
		}
		tids = append(tids, id)
	}
	dt := &DistanceTable[K]{
		g:    g,
		rows: make(map[int][]Hop[K], len(sources)),
		dist: make(map[int][]int, len(sources)),
	}
	for _, s := range sources {
		sid, err := g.LookupErr(s)
		if err != nil {
			return nil, errors.Wrap(err, "distance table source")
		}
		if _, ok := dt.dist[sid]; ok {
			continue
		}
		dist := g.Dijkstra(sid)
		row := make([]Hop[K], 0, len(tids))
		for _, tid := range tids {
			if tid == sid || dist[tid] == Unreachable {
				continue
			}
			row = append(row, Hop[K]{To: g.Key(tid), ID: tid, Dist: dist[tid]})
		}
		slices.SortStableFunc(row, func(a, b Hop[K]) int {
			if order != nil {
				if c := order(a.To, b.To); c != 0 {
					return c
				}
			}
			return cmp.Compare(a.ID, b.ID)
		})
		dt.rows[sid] = slices.Compact(row)
		dt.dist[sid] = dist
	}
	return dt, nil
}

// Hops returns the ordered row of src. The caller must not modify it.
func (dt *DistanceTable[K]) Hops(src K) ([]Hop[K], error) {
	id, err := dt.g.LookupErr(src)
	if err != nil {
		return nil, err
	}
	row, ok := dt.rows[id]
	if !ok {
		return nil, errors.Wrapf(ErrNoRoute, "%v is not a source", src)
	}
	return row, nil
}

// HopsByID is Hops for a node id. It returns nil for non-sources.
func (dt *DistanceTable[K]) HopsByID(id int) []Hop[K] {
	return dt.rows[id]
}

// Dist returns the shortest distance from a to b. a must be a source.
func (dt *DistanceTable[K]) Dist(a, b K) (int, error) {
	ia, err := dt.g.LookupErr(a)
	if err != nil {
		return 0, err
	}
	ib, err := dt.g.LookupErr(b)
	if err != nil {
		return 0, err
	}
	if ia == ib {
		return 0, nil
	}
	dist, ok := dt.dist[ia]
	// Nodes added to the graph after the table was built have no entry.
	if !ok || ib >= len(dist) || dist[ib] == Unreachable {
		return 0, errors.Wrapf(ErrNoRoute, "%v->%v", a, b)
	}
	return dist[ib], nil
}
