package aoc

import (
	"container/heap"
	"fmt"
)

// Stack is a LIFO frontier. It is the container behind depth-first search.
type Stack[T any] struct {
	s []T
}

func NewStack[T any](in ...T) *Stack[T] {
	return &Stack[T]{s: in}
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

// PQI is an item in a PQ. P is its priority.
type PQI[T any] struct {
	V T
	P int
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// MinQueue returns a queue that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{
		pq: pq[T]{
			min: true,
		},
	}
}

// MaxQueue returns a queue that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{}
}

// PQ is a priority queue. The zero value is a max queue.
type PQ[T any] struct {
	pq pq[T]
}

func (pq *PQ[T]) Push(v *PQI[T]) {
	heap.Push(&pq.pq, v)
}

// PushValue wraps v in a new item with priority p and pushes it.
func (pq *PQ[T]) PushValue(v T, p int) *PQI[T] {
	i := &PQI[T]{V: v, P: p}
	pq.Push(i)
	return i
}

func (pq *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&pq.pq).(*PQI[T])
}

func (pq *PQ[T]) Peek() *PQI[T] {
	return pq.pq.q[0]
}

func (pq *PQ[T]) Len() int {
	return pq.pq.Len()
}

type pq[T any] struct {
	q   []*PQI[T]
	min bool
}

func (pq pq[T]) Len() int { return len(pq.q) }

func (pq pq[T]) Less(i, j int) bool {
	if pq.min {
		return pq.q[i].P < pq.q[j].P
	}
	return pq.q[i].P > pq.q[j].P
}

func (pq pq[T]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
}

func (pq *pq[T]) Push(x any) {
	pq.q = append(pq.q, x.(*PQI[T]))
}

func (pq *pq[T]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak

	pq.q = old[0 : n-1]
	return item
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO frontier used for breadth-first walks.
type Queue[T any] struct {
	q    []T
	head int
}

func (q *Queue[T]) Len() int {
	return len(q.q) - q.head
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if q.head == len(q.q) {
		var zero T
		return zero, false
	}
	v := q.q[q.head]
	var zero T
	q.q[q.head] = zero
	q.head++
	if q.head == len(q.q) {
		q.q = q.q[:0]
		q.head = 0
	}
	return v, true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
