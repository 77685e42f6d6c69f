package Trees

// BinaryTree is a plain node-linked binary tree. It owns its root node, which
// transitively owns every node below it, and keeps the count of live nodes.
// The zero value is an empty tree ready to use.
// BinaryTree doesn't order its values. It provides the structural primitives,
// attaching and detaching nodes at paths and walking paths, that containers
// with their own invariants, such as heaps, are built from.
type BinaryTree[T any] struct {
	root *Node[T]
	sz   uint
}

// New returns an empty BinaryTree.
func New[T any]() *BinaryTree[T] {
	return new(BinaryTree[T])
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BinaryTree[T]) Size() uint {
	return u.sz
}

// Empty [Tree.Empty]
func (u *BinaryTree[T]) Empty() bool {
	return u.root == nil
}

// Root node of the tree, nil if empty.
func (u *BinaryTree[T]) Root() *Node[T] {
	return u.root
}

// Height [Tree.Height]. Recursive.
// Time: O(n); Space: O(height)
func (u *BinaryTree[T]) Height() uint {
	return heightOf(u.root)
}

// Count the nodes reachable from the root. Unlike Size this visits every node,
// it's meant for checking that Size is right. Recursive.
// Time: O(n); Space: O(height)
func (u *BinaryTree[T]) Count() uint {
	return countOf(u.root)
}

// AttachFirstAvailable walks from the root always in direction d until it finds
// an empty slot, and attaches a new node holding v there. On an empty tree the
// new node becomes the root.
// Time: O(height); Space: O(1)
func (u *BinaryTree[T]) AttachFirstAvailable(d Direction, v T) *Node[T] {
	s := &u.root
	for *s != nil {
		s = (*s).slot(d)
	}
	*s = &Node[T]{v: v}
	u.sz++
	return *s
}

// InsertLeft attaches v as the leftmost node.
func (u *BinaryTree[T]) InsertLeft(v T) *Node[T] {
	return u.AttachFirstAvailable(Left, v)
}

// InsertRight attaches v as the rightmost node.
func (u *BinaryTree[T]) InsertRight(v T) *Node[T] {
	return u.AttachFirstAvailable(Right, v)
}

// Walk p from the root. Returns the node at the end of p, or nil if any slot
// along p is empty.
// Time: O(p.Len()); Space: O(1)
func (u *BinaryTree[T]) Walk(p Path) *Node[T] {
	cur := u.root
	for i := 0; cur != nil && i < p.Len(); i++ {
		cur = cur.Child(p.Step(i))
	}
	return cur
}

// Trail appends to buf[:0] every node on p, starting with the root and ending
// with the node at the end of p, and returns it. The result has p.Len()+1
// nodes, so trail[i] is the parent of trail[i+1]. buf may be nil.
// Panics with a CorruptTreeError if a slot along p is empty.
// Time: O(p.Len()); Space: O(1) if cap(buf)>p.Len()
func (u *BinaryTree[T]) Trail(p Path, buf []*Node[T]) []*Node[T] {
	cur := u.root
	if cur == nil {
		panic(&CorruptTreeError{p, 0, "empty root"})
	}
	buf = append(buf[:0], cur)
	for i := 0; i < p.Len(); i++ {
		if cur = cur.Child(p.Step(i)); cur == nil {
			panic(&CorruptTreeError{p, i + 1, "empty slot"})
		}
		buf = append(buf, cur)
	}
	return buf
}

// parentSlot walks to the parent of p's target and returns the slot p ends in.
// An empty path gives the root slot.
func (u *BinaryTree[T]) parentSlot(p Path) **Node[T] {
	if p.Len() == 0 {
		return &u.root
	}
	parent := u.Walk(p.Parent())
	if parent == nil {
		panic(&CorruptTreeError{p, p.Len() - 1, "missing parent"})
	}
	return parent.slot(p.Last())
}

// AttachAt creates a node holding v in the empty slot at the end of p and
// returns it. Panics with a CorruptTreeError if the parent of that slot doesn't
// exist or the slot is already taken.
// Time: O(p.Len()); Space: O(1)
func (u *BinaryTree[T]) AttachAt(p Path, v T) *Node[T] {
	s := u.parentSlot(p)
	if *s != nil {
		panic(&CorruptTreeError{p, p.Len(), "slot taken"})
	}
	*s = &Node[T]{v: v}
	u.sz++
	return *s
}

// DetachAt removes the leaf at the end of p and returns its value. Panics with
// a CorruptTreeError if there's no node there or it isn't a leaf, as detaching
// it would orphan its children.
// Time: O(p.Len()); Space: O(1)
func (u *BinaryTree[T]) DetachAt(p Path) T {
	s := u.parentSlot(p)
	n := *s
	if n == nil {
		panic(&CorruptTreeError{p, p.Len(), "empty slot"})
	} else if !n.Leaf() {
		panic(&CorruptTreeError{p, p.Len(), "not a leaf"})
	}
	*s = nil
	u.sz--
	v := n.v
	n.v = *new(T)
	return v
}

// Find the first node, in level order, whose value satisfies eq and return the
// path to it. The returned path is only meaningful when the bool is true.
// Positions are numbered as in a complete tree, the children of position i
// being 2i and 2i+1, so the path is right for any shape. Panics with a
// CorruptTreeError if the search reaches a node deeper than MaxDepth.
// Time: O(n); Space: O(width)
func (u *BinaryTree[T]) Find(eq func(T) bool) (Path, bool) {
	if u.root == nil {
		return Path{}, false
	}
	it := u.levelOrder(true)
	for n, p, ok := it(); ok; n, p, ok = it() {
		if eq(n.v) {
			return p, true
		}
	}
	return Path{}, false
}

// Clear [Tree.Clear]. Releases every node in post-order. Recursive.
// Time: O(n); Space: O(height)
func (u *BinaryTree[T]) Clear() {
	releaseNode(u.root)
	u.root, u.sz = nil, 0
}

// Clone returns a deep copy of u. No node is shared between u and the copy.
// Recursive.
// Time: O(n); Space: O(n)
func (u *BinaryTree[T]) Clone() *BinaryTree[T] {
	return &BinaryTree[T]{cloneNode(u.root), u.sz}
}

// Move the nodes of u to a new tree, leaving u empty.
// Time: O(1); Space: O(1)
func (u *BinaryTree[T]) Move() *BinaryTree[T] {
	m := &BinaryTree[T]{u.root, u.sz}
	u.root, u.sz = nil, 0
	return m
}

// Corrupt [Tree.Corrupt]. A plain tree only requires that Size agrees with the
// number of reachable nodes.
func (u *BinaryTree[T]) Corrupt() bool {
	return u.Count() != u.sz
}
