package Heaps

import "fmt"

// EmptyCollectionError is returned by the operations that need at least one
// element when called on an empty heap. The heap is left as it was.
type EmptyCollectionError struct {
	Op string // Name of the method that failed.
}

func (e *EmptyCollectionError) Error() string {
	return "heap is empty: cannot " + e.Op
}

// Is lets errors.Is match any *EmptyCollectionError regardless of Op.
func (e *EmptyCollectionError) Is(target error) bool {
	_, ok := target.(*EmptyCollectionError)
	return ok
}

// NotFoundError is returned by Remove when the value isn't in the heap.
type NotFoundError[T any] struct {
	V T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("heap has no element %v", e.V)
}
