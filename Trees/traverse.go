package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-containers/Queues"
)

// Traverse [Tree.Traverse]. PreOrder, InOrder and PostOrder keep the pending
// nodes on an explicit stack, LevelOrder on a queue, so the depth of the tree
// doesn't grow the goroutine stack.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(height) or O(width) for LevelOrder
func (u *BinaryTree[T]) Traverse(o Order) func() (T, bool) {
	switch o {
	case PreOrder:
		return preOrder(u.root)
	case InOrder:
		return inOrder(u.root)
	case PostOrder:
		return postOrder(u.root)
	case LevelOrder:
		it := u.levelOrder(false)
		return func() (r T, has bool) {
			if n, _, ok := it(); ok {
				return n.v, true
			}
			return
		}
	}
	return func() (r T, has bool) { return }
}

// Values drains Traverse(o) into a slice.
func (u *BinaryTree[T]) Values(o Order) []T {
	vs := make([]T, 0, u.sz)
	it := u.Traverse(o)
	for v, ok := it(); ok; v, ok = it() {
		vs = append(vs, v)
	}
	return vs
}

func preOrder[T any](root *Node[T]) func() (T, bool) {
	st := arraystack.New()
	if root != nil {
		st.Push(root)
	}
	return func() (r T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		n := top.(*Node[T])
		if n.r != nil {
			st.Push(n.r)
		}
		if n.l != nil {
			st.Push(n.l)
		}
		return n.v, true
	}
}

func inOrder[T any](root *Node[T]) func() (T, bool) {
	st, cur := arraystack.New(), root
	return func() (r T, has bool) {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		top, ok := st.Pop()
		if !ok {
			return
		}
		n := top.(*Node[T])
		cur = n.r
		return n.v, true
	}
}

func postOrder[T any](root *Node[T]) func() (T, bool) {
	st, cur := arraystack.New(), root
	var last *Node[T]
	return func() (r T, has bool) {
		for {
			for ; cur != nil; cur = cur.l {
				st.Push(cur)
			}
			top, ok := st.Peek()
			if !ok {
				return
			}
			n := top.(*Node[T])
			if n.r != nil && n.r != last {
				cur = n.r
				continue
			}
			st.Pop()
			last = n
			return n.v, true
		}
	}
}

type levelEntry[T any] struct {
	n *Node[T]
	p Path
}

// levelOrder iterates the nodes breadth first, together with their paths if
// withPaths. Paths can't go past MaxDepth, so only ask for them on trees that
// are known to be shallow enough.
func (u *BinaryTree[T]) levelOrder(withPaths bool) func() (*Node[T], Path, bool) {
	q := Queues.MakeArrayQueue[levelEntry[T]](0)
	if u.root != nil {
		q.Push(levelEntry[T]{u.root, Locate(uint(1))})
	}
	return func() (*Node[T], Path, bool) {
		e, err := q.Pop()
		if err != nil {
			return nil, Path{}, false
		}
		var lp, rp Path
		if withPaths && !e.n.Leaf() {
			lp, rp = e.p.Child(Left), e.p.Child(Right)
		}
		if e.n.l != nil {
			q.Push(levelEntry[T]{e.n.l, lp})
		}
		if e.n.r != nil {
			q.Push(levelEntry[T]{e.n.r, rp})
		}
		return e.n, e.p, true
	}
}
