package Trees

import (
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// Direction of a single step from a node to one of its children.
type Direction byte

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "L"
	}
	return "R"
}

// MaxDepth is the longest path representable, enough for any complete tree
// whose size fits in a uint64.
const MaxDepth = 63

// Path from the root of a complete binary tree to the node at some level-order
// position. It's the binary representation of that position without its leading
// 1 bit; the remaining bits read from the most significant to the least significant
// are the steps, 0 going left and 1 going right. The zero value is meaningless,
// obtain paths from Locate.
type Path struct {
	pos uint64 // level-order position, 1 based. pos>=1.
	n   int    // number of steps, bits.Len64(pos)-1.
}

// Locate the path to the node at 1-based level-order position n of a complete
// binary tree. Locate(1) is the empty path to the root. n must be at least 1,
// Locate panics with a CorruptTreeError otherwise.
// Time: O(1); Space: O(1)
func Locate[S constraints.Unsigned](n S) Path {
	if n == 0 {
		panic(&CorruptTreeError{Reason: "level-order position 0 has no path"})
	}
	p := uint64(n)
	return Path{p, bits.Len64(p) - 1}
}

// Len is the number of steps in u, which is also the depth of the target node
// counting the root as depth 0.
func (u Path) Len() int {
	return u.n
}

// Step i of the path, 0<=i<Len().
func (u Path) Step(i int) Direction {
	return Direction(u.pos >> (u.n - 1 - i) & 1)
}

// Last step of the path. Len() must be positive.
func (u Path) Last() Direction {
	return Direction(u.pos & 1)
}

// Parent path, which leads to the parent of the target node. Len() must be positive.
func (u Path) Parent() Path {
	return Path{u.pos >> 1, u.n - 1}
}

// Child path reached by one more step in direction d. Paths hold at most
// MaxDepth steps; Child panics with a CorruptTreeError past that.
func (u Path) Child(d Direction) Path {
	if u.n >= MaxDepth {
		panic(&CorruptTreeError{u, u.n, "path too long"})
	}
	return Path{u.pos<<1 | uint64(d), u.n + 1}
}

// Position is the level-order position u leads to, the inverse of Locate.
func (u Path) Position() uint {
	return uint(u.pos)
}

// Steps of the path in order from the root.
func (u Path) Steps() []Direction {
	s := make([]Direction, u.n)
	for i := range s {
		s[i] = u.Step(i)
	}
	return s
}

func (u Path) String() string {
	if u.n == 0 {
		return "ε"
	}
	var b strings.Builder
	b.Grow(u.n)
	for i := 0; i < u.n; i++ {
		b.WriteString(u.Step(i).String())
	}
	return b.String()
}
