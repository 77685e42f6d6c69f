package Heaps

import (
	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

var (
	_ Trees.Tree[int] = (*Heap[int])(nil)
	_ Trees.Tree[int] = (*Trees.BinaryTree[int])(nil)
)

// Heap is a binary heap stored in a node-linked complete binary tree instead of
// an array. The node at level-order position i is found by walking the path
// Trees.Locate(i) from the root, so nodes need no parent pointers: inserting
// fills position Size()+1 and removing always frees position Size().
// Values are reordered by swapping them between nodes; the shape of the tree
// only changes at the last position, which keeps it complete.
// T is the type of values it will hold, the Kind chosen at creation decides
// whether the root is the minimum or the maximum.
// The zero value is an empty min heap. Heap isn't safe for concurrent use.
type Heap[T constraints.Ordered] struct {
	tree  Trees.BinaryTree[T]
	kind  Kind
	trail []*Trees.Node[T] // buffer for the nodes on a sift-up path, empty between calls.
}

// New returns an empty heap of kind k.
func New[T constraints.Ordered](k Kind) *Heap[T] {
	return &Heap[T]{kind: k}
}

func NewMin[T constraints.Ordered]() *Heap[T] {
	return New[T](Min)
}

func NewMax[T constraints.Ordered]() *Heap[T] {
	return New[T](Max)
}

// From builds a heap of kind k holding vs, inserting them one by one.
// Time: O(n*log(n))
func From[T constraints.Ordered](k Kind, vs ...T) *Heap[T] {
	u := New[T](k)
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Kind of the heap.
func (u *Heap[T]) Kind() Kind {
	return u.kind
}

// Size [Trees.Tree.Size]
// Time: O(1); Space: O(1)
func (u *Heap[T]) Size() uint {
	return u.tree.Size()
}

// Empty [Trees.Tree.Empty]
func (u *Heap[T]) Empty() bool {
	return u.tree.Empty()
}

// Height [Trees.Tree.Height]. Always bits.Len(Size()) for a complete tree. Recursive.
func (u *Heap[T]) Height() uint {
	return u.tree.Height()
}

// Insert v into the heap. v is attached at the next free level-order position,
// then moved up while it's out of order with its parent.
// Time: O(log n); Space: amortized O(1)
func (u *Heap[T]) Insert(v T) {
	p := Trees.Locate(u.tree.Size() + 1)
	u.tree.AttachAt(p, v)
	u.siftUp(p)
}

// PeekRoot returns the root value, the minimum of a Min heap or the maximum
// of a Max heap, without removing it. Returns an *EmptyCollectionError on an
// empty heap.
// Time: O(1); Space: O(1)
func (u *Heap[T]) PeekRoot() (T, error) {
	root := u.tree.Root()
	if root == nil {
		return *new(T), &EmptyCollectionError{"PeekRoot"}
	}
	return *root.Value(), nil
}

// ExtractRoot removes and returns the root value. The value at the last
// position replaces it, the last node is detached, and the new root value is
// moved down until it's in order. Returns an *EmptyCollectionError, leaving
// the heap untouched, if it's empty.
// Time: O(log n); Space: O(1)
func (u *Heap[T]) ExtractRoot() (T, error) {
	root := u.tree.Root()
	if root == nil {
		return *new(T), &EmptyCollectionError{"ExtractRoot"}
	}
	v := *root.Value()
	if n := u.tree.Size(); n == 1 {
		u.tree.DetachAt(Trees.Locate(n))
	} else {
		*root.Value() = u.tree.DetachAt(Trees.Locate(n))
		u.siftDown(root)
	}
	return v, nil
}

// Remove the first node holding v in level order. Its value is replaced by
// the value at the last position, the last node is detached, and the
// replacement is sifted up and then down from there; only one of the two can
// move it. Returns a *NotFoundError, leaving the heap untouched, if v isn't in
// the heap.
// Time: O(n); Space: O(n)
func (u *Heap[T]) Remove(v T) error {
	p, ok := u.tree.Find(func(x T) bool { return x == v })
	if !ok {
		return &NotFoundError[T]{v}
	}
	last := u.tree.DetachAt(Trees.Locate(u.tree.Size()))
	if p.Position() > u.tree.Size() { //v was the last node itself.
		return nil
	}
	*u.tree.Walk(p).Value() = last
	u.siftUp(p)
	u.siftDown(u.tree.Walk(p))
	return nil
}

// Contains reports whether v is in the heap.
// Time: O(n); Space: O(n)
func (u *Heap[T]) Contains(v T) bool {
	_, ok := u.tree.Find(func(x T) bool { return x == v })
	return ok
}

// siftUp moves the value at the end of p towards the root while it's out of
// order with its parent.
func (u *Heap[T]) siftUp(p Trees.Path) {
	u.trail = u.tree.Trail(p, u.trail)
	for i := len(u.trail) - 1; i > 0; i-- {
		c, par := u.trail[i].Value(), u.trail[i-1].Value()
		if ordered(u.kind, *par, *c) {
			break
		}
		*c, *par = *par, *c
	}
	clear(u.trail)
}

// siftDown moves the value at cur towards the leaves, each time swapping it
// with the child that belongs nearer the root, until it's in order with both
// children. The left child wins ties.
func (u *Heap[T]) siftDown(cur *Trees.Node[T]) {
	for {
		c := cur.Left()
		if r := cur.Right(); c == nil || r != nil && !ordered(u.kind, *c.Value(), *r.Value()) {
			c = r
		}
		if c == nil || ordered(u.kind, *cur.Value(), *c.Value()) {
			return
		}
		*cur.Value(), *c.Value() = *c.Value(), *cur.Value()
		cur = c
	}
}

// Traverse [Trees.Tree.Traverse]. LevelOrder gives the values in the order of
// their positions.
func (u *Heap[T]) Traverse(o Trees.Order) func() (T, bool) {
	return u.tree.Traverse(o)
}

// Values drains Traverse(o) into a slice.
func (u *Heap[T]) Values(o Trees.Order) []T {
	return u.tree.Values(o)
}

// Clear [Trees.Tree.Clear]
func (u *Heap[T]) Clear() {
	u.tree.Clear()
}

// Clone returns a deep copy of u of the same kind. Changing one never affects
// the other.
// Time: O(n); Space: O(n)
func (u *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{tree: *u.tree.Clone(), kind: u.kind}
}

// Move the elements of u to a new heap of the same kind, leaving u empty.
// Time: O(1); Space: O(1)
func (u *Heap[T]) Move() *Heap[T] {
	return &Heap[T]{tree: *u.tree.Move(), kind: u.kind}
}

// Corrupt [Trees.Tree.Corrupt]. A heap is corrupt if Size is wrong, if some
// position in 1..Size() is missing, which together mean the tree isn't
// complete, or if some value is out of order with its parent.
// Time: O(n*log(n)); Space: O(log n)
func (u *Heap[T]) Corrupt() bool {
	if u.tree.Corrupt() {
		return true
	}
	for i := uint(1); i <= u.tree.Size(); i++ {
		p := Trees.Locate(i)
		n := u.tree.Walk(p)
		if n == nil {
			return true
		}
		if i > 1 && !ordered(u.kind, *u.tree.Walk(p.Parent()).Value(), *n.Value()) {
			return true
		}
	}
	return false
}
