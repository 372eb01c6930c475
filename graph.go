package aoc

import (
	"math"

	"github.com/pkg/errors"
)

// Index assigns dense integer ids to keys in insertion order. Everything
// that refers to a node refers to it by id; the key is only kept for lookups
// and output.
type Index[K comparable] struct {
	keys []K
	ids  map[K]int
}

// ID returns the id of k, adding it if needed.
func (ix *Index[K]) ID(k K) int {
	if id, ok := ix.ids[k]; ok {
		return id
	}
	InitMap(&ix.ids)
	id := len(ix.keys)
	ix.keys = append(ix.keys, k)
	ix.ids[k] = id
	return id
}

func (ix *Index[K]) Lookup(k K) (int, bool) {
	id, ok := ix.ids[k]
	return id, ok
}

// LookupErr is like Lookup but returns an ErrNodeNotFound error naming k.
func (ix *Index[K]) LookupErr(k K) (int, error) {
	id, ok := ix.ids[k]
	if !ok {
		return 0, errors.Wrapf(ErrNodeNotFound, "%v", k)
	}
	return id, nil
}

func (ix *Index[K]) Key(id int) K {
	return ix.keys[id]
}

func (ix *Index[K]) Len() int {
	return len(ix.keys)
}

// Keys returns the keys in id order. The caller must not modify it.
func (ix *Index[K]) Keys() []K {
	return ix.keys
}

// Arc is a weighted directed edge to node To.
type Arc struct {
	To int
	W  int
}

// Graph is a weighted graph whose nodes live in an arena and are referred to
// by their integer id.
type Graph[K comparable] struct {
	Index[K]
	arcs [][]Arc
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) AddNode(a K) int {
	id := g.Index.ID(a)
	for len(g.arcs) <= id {
		g.arcs = append(g.arcs, nil)
	}
	return id
}

// ID is AddNode: every id handed out by a graph has an adjacency list.
func (g *Graph[K]) ID(k K) int {
	return g.AddNode(k)
}

// AddArc adds a directed edge from a to b.
func (g *Graph[K]) AddArc(a, b K, w int) error {
	if w < 0 {
		return errors.Wrapf(ErrNegativeWeight, "%v->%v=%d", a, b, w)
	}
	ia, ib := g.AddNode(a), g.AddNode(b)
	g.arcs[ia] = append(g.arcs[ia], Arc{To: ib, W: w})
	return nil
}

// AddEdge adds an undirected edge between a and b.
func (g *Graph[K]) AddEdge(a, b K, w int) error {
	if err := g.AddArc(a, b, w); err != nil {
		return err
	}
	return g.AddArc(b, a, w)
}

// Arcs returns the outgoing edges of node id.
func (g *Graph[K]) Arcs(id int) []Arc {
	return g.arcs[id]
}

// Reachable returns the set of node ids reachable from id, including id.
func (g *Graph[K]) Reachable(id int) []bool {
	visited := make([]bool, g.Len())
	q := NewQueue(id)
	q.While(func(v int) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for _, a := range g.Arcs(v) {
			if !visited[a.To] {
				q.Push(a.To)
			}
		}
		return true
	})
	return visited
}

// AllShortestPaths returns the dense all-pairs distance matrix computed with
// Floyd–Warshall. Unreachable pairs hold Unreachable.
func (g *Graph[K]) AllShortestPaths() [][]int {
	n := g.Len()
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = Unreachable
			}
		}
		for _, a := range g.arcs[i] {
			if a.To != i && a.W < dist[i][a.To] {
				dist[i][a.To] = a.W
			}
		}
	}
	for k := range n {
		for i := range n {
			dik := dist[i][k]
			if dik == Unreachable {
				continue
			}
			for j := range n {
				dkj := dist[k][j]
				if dkj == Unreachable {
					continue
				}
				if e := dik + dkj; e < dist[i][j] {
					dist[i][j] = e
				}
			}
		}
	}
	return dist
}

// Unreachable is the distance reported for nodes with no path.
const Unreachable = math.MaxInt
