package Trees

import "fmt"

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined, as with the iterators returned by
// Traverse. Methods implemented recursively should be noted, otherwise
// functions are implemented iteratively.
// None of the implementations are safe for concurrent use; callers sharing
// a tree between goroutines must serialize every call themselves.
type Tree[T any] interface {
	//Size of the tree.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//Height of the tree. An empty tree has height 0 and a single node height 1.
	Height() uint
	//Traverse returns A closure function f acting like an iterator. f
	//gives values in the given order of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//Every call to Traverse returns an independent iterator. The tree must
	//not be modified during the iteration of f.
	Traverse(o Order) func() (T, bool)
	//Clear the tree. Clearing an empty tree does nothing.
	Clear()
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

// Order of a traversal.
type Order byte

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

var orderNames = [...]string{"pre", "in", "post", "level"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", o)
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, bool) {
	for i, name := range orderNames {
		if s == name {
			return Order(i), true
		}
	}
	return 0, false
}

// CorruptTreeError is the panic value used when a structural primitive meets a
// shape that should be impossible, for example an empty slot in the middle of
// a path that leads to an existing node of a complete tree. It's never returned
// as an error: reaching it means the invariants of the tree were already broken.
type CorruptTreeError struct {
	Path   Path // Path being walked, zero if not applicable.
	Depth  int  // Number of steps taken before the problem was found.
	Reason string
}

func (e *CorruptTreeError) Error() string {
	if e.Path.n == 0 && e.Path.pos == 0 {
		return "corrupt tree: " + e.Reason
	}
	return fmt.Sprintf("corrupt tree: %s at step %d of path %s", e.Reason, e.Depth, e.Path)
}
