package Trees

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

// fromPositions builds a complete tree holding vs[i] at level-order position i+1.
func fromPositions(vs ...int) *BinaryTree[int] {
	tree := New[int]()
	for i, v := range vs {
		tree.AttachAt(Locate(uint(i+1)), v)
	}
	return tree
}

func expectCorrupt(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		var ce *CorruptTreeError
		if e, ok := recover().(error); !ok || !errors.As(e, &ce) {
			t.Errorf("%s should panic with a CorruptTreeError", name)
		}
	}()
	f()
}

func TestBinaryTree_Attach(t *testing.T) {
	tree := New[int]()
	if tree.Height() != 0 || tree.Size() != 0 || !tree.Empty() {
		t.Fatalf("new tree isn't empty")
	}
	tree.InsertLeft(1)
	if tree.Height() != 1 {
		t.Errorf("single node height is %d, want 1", tree.Height())
	}
	tree.InsertLeft(2)
	tree.InsertLeft(3)
	tree.InsertRight(4)
	tree.InsertRight(5)
	if tree.Size() != 5 || tree.Corrupt() {
		t.Errorf("size is %d, count is %d, want 5", tree.Size(), tree.Count())
	}
	if tree.Height() != 3 {
		t.Errorf("height is %d, want 3", tree.Height())
	}
	if s := tree.Values(PreOrder); !slices.Equal(s, []int{1, 2, 3, 4, 5}) {
		t.Errorf("pre-order is %v", s)
	}
	if s := tree.Values(InOrder); !slices.Equal(s, []int{3, 2, 1, 4, 5}) {
		t.Errorf("in-order is %v", s)
	}
}

func TestBinaryTree_Traverse(t *testing.T) {
	tree := fromPositions(1, 2, 3, 4, 5, 6, 7)
	want := map[Order][]int{
		PreOrder:   {1, 2, 4, 5, 3, 6, 7},
		InOrder:    {4, 2, 5, 1, 6, 3, 7},
		PostOrder:  {4, 5, 2, 6, 7, 3, 1},
		LevelOrder: {1, 2, 3, 4, 5, 6, 7},
	}
	for o, w := range want {
		if s := tree.Values(o); !slices.Equal(s, w) {
			t.Errorf("%s-order is %v, want %v", o, s, w)
		}
	}
	//iterators don't share state and stay exhausted.
	a, b := tree.Traverse(PostOrder), tree.Traverse(PostOrder)
	a()
	a()
	if v, ok := b(); !ok || v != 4 {
		t.Errorf("second iterator starts at %d, want 4", v)
	}
	for _, ok := a(); ok; _, ok = a() {
	}
	if _, ok := a(); ok {
		t.Errorf("exhausted iterator became valid")
	}
	empty := New[int]()
	for _, o := range []Order{PreOrder, InOrder, PostOrder, LevelOrder} {
		if _, ok := empty.Traverse(o)(); ok {
			t.Errorf("%s-order of an empty tree yields values", o)
		}
	}
}

func TestBinaryTree_TraverseDeep(t *testing.T) {
	tree := New[int]()
	for i := range 10000 {
		if rg.Intn(2) == 0 {
			tree.InsertLeft(i)
		} else {
			tree.InsertRight(i)
		}
	}
	for _, o := range []Order{PreOrder, InOrder, PostOrder, LevelOrder} {
		s := tree.Values(o)
		if len(s) != 10000 {
			t.Errorf("%s-order has %d values, want 10000", o, len(s))
		}
		slices.Sort(s)
		for i, v := range s {
			if i != v {
				t.Fatalf("%s-order lost %d", o, i)
			}
		}
	}
}

func TestBinaryTree_Clear(t *testing.T) {
	tree := fromPositions(1, 2, 3, 4)
	leaf := tree.Walk(Locate(uint(4)))
	inner := tree.Walk(Locate(uint(2)))
	tree.Clear()
	if !tree.Empty() || tree.Size() != 0 || tree.Height() != 0 {
		t.Errorf("cleared tree isn't empty")
	}
	if inner.Left() != nil || *leaf.Value() != 0 {
		t.Errorf("cleared nodes still hold their subtrees")
	}
	tree.Clear()
	if !tree.Empty() || tree.Corrupt() {
		t.Errorf("clearing twice broke the tree")
	}
	var zero BinaryTree[string]
	zero.Clear()
	if !zero.Empty() {
		t.Errorf("zero tree isn't empty")
	}
}

func TestBinaryTree_Clone(t *testing.T) {
	tree := fromPositions(1, 2, 3, 4, 5)
	c := tree.Clone()
	if c.Size() != tree.Size() || !slices.Equal(c.Values(LevelOrder), tree.Values(LevelOrder)) {
		t.Fatalf("clone differs: %v", c.Values(LevelOrder))
	}
	nodes := make(map[*Node[int]]struct{})
	for i := uint(1); i <= 5; i++ {
		nodes[tree.Walk(Locate(i))] = struct{}{}
	}
	for i := uint(1); i <= 5; i++ {
		if _, in := nodes[c.Walk(Locate(i))]; in {
			t.Fatalf("clone shares node at %d", i)
		}
	}
	*c.Root().Value() = 100
	c.AttachAt(Locate(uint(6)), 6)
	c.DetachAt(Locate(uint(6)))
	c.DetachAt(Locate(uint(5)))
	if s := tree.Values(LevelOrder); !slices.Equal(s, []int{1, 2, 3, 4, 5}) || tree.Size() != 5 {
		t.Errorf("changing the clone changed the original: %v", s)
	}
}

func TestBinaryTree_Move(t *testing.T) {
	tree := fromPositions(1, 2, 3)
	m := tree.Move()
	if !tree.Empty() || tree.Size() != 0 {
		t.Errorf("moved from tree isn't empty")
	}
	if m.Size() != 3 || !slices.Equal(m.Values(LevelOrder), []int{1, 2, 3}) {
		t.Errorf("moved tree is %v", m.Values(LevelOrder))
	}
	tree.InsertLeft(9)
	if m.Size() != 3 {
		t.Errorf("reusing the moved from tree changed the moved tree")
	}
}

func TestBinaryTree_Paths(t *testing.T) {
	tree := fromPositions(10, 20, 30, 40, 50)
	trail := tree.Trail(Locate(uint(5)), nil)
	if len(trail) != 3 || *trail[0].Value() != 10 || *trail[1].Value() != 20 || *trail[2].Value() != 50 {
		t.Errorf("trail to 5 is wrong")
	}
	if v := tree.DetachAt(Locate(uint(5))); v != 50 || tree.Size() != 4 {
		t.Errorf("detached %d, size %d", v, tree.Size())
	}
	if tree.Walk(Locate(uint(5))) != nil {
		t.Errorf("detached node still reachable")
	}
	if p, ok := tree.Find(func(v int) bool { return v == 40 }); !ok || p.Position() != 4 {
		t.Errorf("Find(40) = %s, %v", p, ok)
	}
	if _, ok := tree.Find(func(v int) bool { return v == 50 }); ok {
		t.Errorf("found detached value")
	}
	expectCorrupt(t, "AttachAt taken slot", func() { tree.AttachAt(Locate(uint(2)), 0) })
	expectCorrupt(t, "AttachAt without parent", func() { tree.AttachAt(Locate(uint(12)), 0) })
	expectCorrupt(t, "DetachAt inner node", func() { tree.DetachAt(Locate(uint(2))) })
	expectCorrupt(t, "DetachAt empty slot", func() { tree.DetachAt(Locate(uint(7))) })
	expectCorrupt(t, "Trail past a leaf", func() { tree.Trail(Locate(uint(9)), nil) })
	expectCorrupt(t, "Trail of empty tree", func() { New[int]().Trail(Locate(uint(1)), nil) })
	if tree.Corrupt() || tree.Size() != 4 {
		t.Errorf("failed primitives changed the tree")
	}
}
