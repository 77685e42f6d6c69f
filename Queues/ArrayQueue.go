package Queues

// minCap is the smallest backing slice a circArrQ grows to.
const minCap = 4

type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize the backing slice to newLen>=sz, unrolling the items to start at 0.
// Time: O(sz)
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content = nc
	u.head = 0
	u.tail = u.sz
	if u.tail == newLen {
		u.tail = 0
	}
}

func (u *circArrQ[T]) Shrink() {
	u.resize(u.sz | 1)
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

// Push item to the back.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(max(u.sz*2, minCap))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T, has bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
