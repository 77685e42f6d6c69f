package Heaps

import "golang.org/x/exp/constraints"

// Kind of heap, selecting which way values are ordered from the root down.
// The zero value is Min.
type Kind byte

const (
	Min Kind = iota // Every parent is <= its children; the root is the minimum.
	Max             // Every parent is >= its children; the root is the maximum.
)

func (k Kind) String() string {
	if k == Max {
		return "max"
	}
	return "min"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "min":
		return Min, true
	case "max":
		return Max, true
	}
	return Min, false
}

// ordered reports whether parent may sit above child in a heap of kind k.
func ordered[T constraints.Ordered](k Kind, parent, child T) bool {
	if k == Max {
		return parent >= child
	}
	return parent <= child
}
