package Trees

// Node in a BinaryTree. A node is owned by exactly one slot: either the
// root slot of its tree or a child slot of its parent. There is no parent
// pointer; paths from the root are computed instead, see Path.
// The zero value is a leaf holding the zero value of T, but nodes should
// only be created by the tree that owns them.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

// Value returns a pointer to the value held by n. Writing through it is how
// containers built on BinaryTree reorder values without touching the shape.
func (n *Node[T]) Value() *T {
	return &n.v
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Child in direction d.
func (n *Node[T]) Child(d Direction) *Node[T] {
	if d == Left {
		return n.l
	}
	return n.r
}

// Leaf reports whether n has no children.
func (n *Node[T]) Leaf() bool {
	return n.l == nil && n.r == nil
}

// slot returns the child slot of n in direction d, so that it can be filled
// or emptied in place.
func (n *Node[T]) slot(d Direction) **Node[T] {
	if d == Left {
		return &n.l
	}
	return &n.r
}

// cloneNode copies the subtree rooted at n into newly allocated nodes. Recursive.
// Time: O(n); Space: O(height)
func cloneNode[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	return &Node[T]{n.v, cloneNode(n.l), cloneNode(n.r)}
}

// releaseNode tears the subtree rooted at n down in post-order: both children are
// released and their slots emptied before n's own value is dropped. Recursive.
func releaseNode[T any](n *Node[T]) {
	if n == nil {
		return
	}
	releaseNode(n.l)
	releaseNode(n.r)
	n.l, n.r = nil, nil
	n.v = *new(T)
}

// heightOf the subtree rooted at n. Recursive.
func heightOf[T any](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + max(heightOf(n.l), heightOf(n.r))
}

// countOf nodes reachable from n. Recursive.
func countOf[T any](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + countOf(n.l) + countOf(n.r)
}
