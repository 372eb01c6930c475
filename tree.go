package aoc

// Tree is an append-only tree kept in an arena. Nodes are referred to by
// index; the root is 0 and its parent is -1.
type Tree[T any] struct {
	nodes []treeNode[T]
}

type treeNode[T any] struct {
	name     string
	parent   int
	children []int
	v        T
}

// NewTree returns a tree holding only a root with value v.
func NewTree[T any](v T) *Tree[T] {
	return &Tree[T]{nodes: []treeNode[T]{{parent: -1, v: v}}}
}

const Root = 0

func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Add appends a child named name under parent and returns its index.
func (t *Tree[T]) Add(parent int, name string, v T) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, treeNode[T]{name: name, parent: parent, v: v})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

func (t *Tree[T]) Parent(id int) int {
	return t.nodes[id].parent
}

func (t *Tree[T]) Name(id int) string {
	return t.nodes[id].name
}

func (t *Tree[T]) Children(id int) []int {
	return t.nodes[id].children
}

// Child returns the child of id named name.
func (t *Tree[T]) Child(id int, name string) (int, bool) {
	for _, c := range t.nodes[id].children {
		if t.nodes[c].name == name {
			return c, true
		}
	}
	return 0, false
}

func (t *Tree[T]) Value(id int) T {
	return t.nodes[id].v
}

// Update replaces the value of id.
func (t *Tree[T]) Update(id int, f func(T) T) {
	t.nodes[id].v = f(t.nodes[id].v)
}

// PostOrder calls f for every node of the subtree rooted at id, children
// before their parent.
func (t *Tree[T]) PostOrder(id int, f func(id int)) {
	type frame struct {
		id   int
		next int
	}
	var s Stack[frame]
	s.Push(frame{id: id})
	for s.Len() > 0 {
		top, _ := s.Pop()
		if ch := t.Children(top.id); top.next < len(ch) {
			s.Push(frame{id: top.id, next: top.next + 1})
			s.Push(frame{id: ch[top.next]})
			continue
		}
		f(top.id)
	}
}
