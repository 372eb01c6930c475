package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	tr := NewTree(0)
	a := tr.Add(Root, "a", 1)
	b := tr.Add(Root, "b", 2)
	e := tr.Add(a, "e", 3)

	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, -1, tr.Parent(Root))
	assert.Equal(t, a, tr.Parent(e))
	assert.Equal(t, []int{a, b}, tr.Children(Root))
	assert.Equal(t, "e", tr.Name(e))

	got, ok := tr.Child(Root, "b")
	assert.True(t, ok)
	assert.Equal(t, b, got)
	_, ok = tr.Child(Root, "e")
	assert.False(t, ok)

	tr.Update(b, func(v int) int { return v * 10 })
	assert.Equal(t, 20, tr.Value(b))

	var order []int
	sum := make([]int, tr.Len())
	tr.PostOrder(Root, func(id int) {
		order = append(order, id)
		sum[id] += tr.Value(id)
		if p := tr.Parent(id); p >= 0 {
			sum[p] += sum[id]
		}
	})
	assert.Equal(t, []int{e, a, b, Root}, order)
	assert.Equal(t, []int{24, 4, 20, 3}, sum)
}

func TestTreeDeep(t *testing.T) {
	tr := NewTree("")
	id := Root
	for range 100000 {
		id = tr.Add(id, "d", "")
	}
	n := 0
	tr.PostOrder(Root, func(int) { n++ })
	assert.Equal(t, tr.Len(), n)
}
