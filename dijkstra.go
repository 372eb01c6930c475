package aoc

// ShortestPath returns the cost of the cheapest path from start to any node
// for which done reports true. next calls emit for every successor of a node
// with the (non-negative) cost of reaching it. The second result is false if
// no such node is reachable.
func ShortestPath[N comparable](start N, next func(n N, emit func(N, int)), done func(N) bool) (int, bool) {
	dist := map[N]int{start: 0}
	q := MinQueue[N]()
	q.PushValue(start, 0)
	for q.Len() > 0 {
		it := q.Pop()
		n, d := it.V, it.P
		if d > dist[n] {
			continue // stale entry
		}
		if done(n) {
			return d, true
		}
		next(n, func(m N, w int) {
			if w < 0 {
				return
			}
			nd := d + w
			if old, ok := dist[m]; ok && old <= nd {
				return
			}
			dist[m] = nd
			q.PushValue(m, nd)
		})
	}
	return 0, false
}

// Dijkstra returns the distance from src to every node, indexed by id.
// Nodes with no path hold Unreachable.
func (g *Graph[K]) Dijkstra(src int) []int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[src] = 0
	q := MinQueue[int]()
	q.PushValue(src, 0)
	for q.Len() > 0 {
		it := q.Pop()
		u, d := it.V, it.P
		if d > dist[u] {
			continue
		}
		for _, a := range g.Arcs(u) {
			if nd := d + a.W; nd < dist[a.To] {
				dist[a.To] = nd
				q.PushValue(a.To, nd)
			}
		}
	}
	return dist
}
