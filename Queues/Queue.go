package Queues

// Queue is a first in first out container. Implementations in this package
// aren't safe for concurrent use.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns an *EmptyQueueError when Empty().
	Pop() (T, error)
	//Peek the oldest item without removing it. The bool is false when Empty().
	Peek() (T, bool)
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to fit the current items.
	Shrink()
	//Clear the queue, dropping references to the items it held.
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty: cannot Pop"
}
