package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := NewStack(1, 2)
	s.Push(3)
	if v, _ := s.Peek(); v != 3 {
		t.Fatalf("Peek = %v, want 3", v)
	}
	var got []int
	s.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []int{3, 2, 1}, got)
	_, ok := s.Pop()
	assert.False(t, ok)
}

func TestQueue(t *testing.T) {
	q := NewQueue(1)
	q.Push(2)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		if v < 4 {
			q.Push(v + 2)
		}
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.Equal(t, 0, q.Len())
}

func TestPQ(t *testing.T) {
	tests := []struct {
		name string
		q    *PQ[string]
		want []string
	}{
		{"min", MinQueue[string](), []string{"a", "b", "c"}},
		{"max", MaxQueue[string](), []string{"c", "b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.q.PushValue("b", 2)
			tt.q.PushValue("c", 3)
			tt.q.PushValue("a", 1)
			assert.Equal(t, tt.want[0], tt.q.Peek().V)
			var got []string
			for tt.q.Len() > 0 {
				got = append(got, tt.q.Pop().V)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
