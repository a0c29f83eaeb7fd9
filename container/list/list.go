// Package list contains the implementation of a type-safe, doubly-linked list
// of values of any type.
//
// The list is organized as a ring: a sentinel node which holds no value marks
// the past-the-end position, and closes the chain of elements by being both
// the successor of the last element and the predecessor of the first one.
// Because the sentinel always exists, insertions and removals never have to
// special-case the ends of the list, and the position returned by End remains
// valid for the whole lifetime of the list.
//
// Positions in the list are represented by iterators, which are small values
// pointing at a node of the list:
//
//	l := list.Of(1, 2, 3)
//
//	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
//		...
//	}
//
// Iterators remain valid until the element they point at is removed from the
// list. Operations which only relink nodes (Splice, Merge, SortFunc, Reverse,
// MoveToFront, MoveToBack, Swap) do not invalidate iterators.
//
// Lists are not safe to use concurrently from multiple goroutines.
package list

import (
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/segmentio/containers/container"
)

// node is an element of a list, or the sentinel of the ring. owner points at
// the sentinel of the ring the node is linked into, and is nil once the node
// was removed. A sentinel is its own owner.
type node[T any] struct {
	prev, next *node[T]
	owner      *node[T]
	value      T
}

func newSentinel[T any]() *node[T] {
	s := new(node[T])
	s.prev = s
	s.next = s
	s.owner = s
	return s
}

// List values are sequences of elements of type T supporting insertion and
// removal in constant time at any position.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	sentinel *node[T]
	size     int
}

// New constructs a new empty list.
func New[T any]() *List[T] {
	return new(List[T]).Init()
}

// NewSize constructs a list of n zero values. The function panics if n is
// negative.
func NewSize[T any](n int) *List[T] {
	if n < 0 {
		panic(fmt.Errorf("list: negative size: %d", n))
	}
	l := New[T]()
	var zero T
	for i := 0; i < n; i++ {
		l.insert(zero, l.sentinel)
	}
	return l
}

// Of constructs a list holding the values passed as arguments, in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.insert(v, l.sentinel)
	}
	return l
}

// Init initializes (or re-initializes) the list to be empty.
//
// Unlike Clear, Init does not unlink the nodes previously held by the list,
// and iterators obtained before the call keep pointing at the old chain.
//
// Complexity: O(1)
func (l *List[T]) Init() *List[T] {
	l.sentinel = newSentinel[T]()
	l.size = 0
	return l
}

// ring returns the sentinel node, allocating it on first use of a zero-value
// list.
func (l *List[T]) ring() *node[T] {
	if l.sentinel == nil {
		l.sentinel = newSentinel[T]()
	}
	return l.sentinel
}

// Clone returns a new list holding a copy of each element of l, in the same
// order. The two lists share no nodes.
//
// Complexity: O(N)
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	s := l.ring()
	for n := s.next; n != s; n = n.next {
		c.insert(n.value, c.sentinel)
	}
	return c
}

// Move transfers the elements of other to l, leaving other empty. The
// elements previously held by l are removed.
//
// Moving a list into itself has no effect.
func (l *List[T]) Move(other *List[T]) {
	if other == l {
		return
	}
	l.Clear()
	l.sentinel, l.size = other.ring(), other.size
	other.Init()
}

// Len returns the number of elements in the list.
//
// Complexity: O(1)
func (l *List[T]) Len() int { return l.size }

// Empty returns true if the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// MaxSize returns the theoretical upper bound on the number of elements a list
// of values of type T could hold.
func (l *List[T]) MaxSize() int {
	return math.MaxInt / int(unsafe.Sizeof(node[T]{}))
}

// Front returns the first element of the list, or an error wrapping
// container.ErrOutOfRange if the list is empty.
func (l *List[T]) Front() (value T, err error) {
	if l.size == 0 {
		return value, fmt.Errorf("list: front of empty list: %w", container.ErrOutOfRange)
	}
	return l.sentinel.next.value, nil
}

// Back returns the last element of the list, or an error wrapping
// container.ErrOutOfRange if the list is empty.
func (l *List[T]) Back() (value T, err error) {
	if l.size == 0 {
		return value, fmt.Errorf("list: back of empty list: %w", container.ErrOutOfRange)
	}
	return l.sentinel.prev.value, nil
}

// At returns an iterator to the element at index i.
//
// Complexity: O(N), the list is walked from the closest end.
func (l *List[T]) At(i int) (Iterator[T], error) {
	if i < 0 || i >= l.size {
		return Iterator[T]{}, fmt.Errorf("list: index %d out of range [0:%d]: %w", i, l.size, container.ErrOutOfRange)
	}
	s := l.sentinel
	n := s.next
	if i < l.size/2 {
		for ; i > 0; i-- {
			n = n.next
		}
	} else {
		n = s.prev
		for j := l.size - 1; j > i; j-- {
			n = n.prev
		}
	}
	return iteratorOf(n), nil
}

// Begin returns an iterator to the first element of the list, which is equal
// to End if the list is empty.
func (l *List[T]) Begin() Iterator[T] { return iteratorOf(l.ring().next) }

// End returns an iterator to the past-the-end position of the list.
func (l *List[T]) End() Iterator[T] { return iteratorOf(l.ring()) }

// CBegin is like Begin but returns a read-only iterator.
func (l *List[T]) CBegin() ConstIterator[T] { return l.Begin().Const() }

// CEnd is like End but returns a read-only iterator.
func (l *List[T]) CEnd() ConstIterator[T] { return l.End().Const() }

// Range calls f for each element of the list, from front to back. If f returns
// false, the iteration is stopped.
func (l *List[T]) Range(f func(T) bool) {
	s := l.ring()
	for n := s.next; n != s; n = n.next {
		if !f(n.value) {
			break
		}
	}
}

// All returns an iterator over the elements of the list, from front to back.
func (l *List[T]) All() iter.Seq[T] { return l.Range }

// Backward returns an iterator over the elements of the list, from back to
// front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := l.ring()
		for n := s.prev; n != s; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns a slice holding a copy of the elements of the list.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	l.Range(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Clear removes all elements from the list. Iterators to the removed elements
// are invalidated, the End iterator remains valid.
//
// Complexity: O(N)
func (l *List[T]) Clear() {
	s := l.ring()
	for n := s.next; n != s; {
		next := n.next
		n.prev, n.next, n.owner = nil, nil, nil
		n = next
	}
	s.prev, s.next = s, s
	l.size = 0
}

// Insert inserts value right before pos and returns an iterator to the new
// element. Inserting before End appends to the list, inserting before Begin
// prepends to it.
//
// pos must be a position of l.
func (l *List[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	return iteratorOf(l.insert(value, pos.node))
}

// Erase removes the element at pos from the list and returns an iterator to
// the element that followed it.
//
// The method returns an error wrapping container.ErrInvalidArgument, and leaves
// the list unmodified, if pos is the past-the-end position of any list, or does
// not point at an element of l. This includes positions of elements which were
// already removed, and positions of l taken before a call to Swap, Move, or
// Init handed its elements to another list.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	n := pos.node
	switch {
	case n == nil:
		return pos, fmt.Errorf("list: cannot erase through a zero iterator: %w", container.ErrInvalidArgument)
	case n == n.owner:
		return pos, fmt.Errorf("list: cannot erase the past-the-end position: %w", container.ErrInvalidArgument)
	case n.owner == nil:
		return pos, fmt.Errorf("list: cannot erase an element which was already removed: %w", container.ErrInvalidArgument)
	case n.owner != l.sentinel:
		return pos, fmt.Errorf("list: cannot erase an element of another list: %w", container.ErrInvalidArgument)
	}
	next := n.next
	l.erase(n)
	return iteratorOf(next), nil
}

// PushFront inserts value at the front of the list.
func (l *List[T]) PushFront(value T) { l.insert(value, l.ring().next) }

// PushBack inserts value at the back of the list.
func (l *List[T]) PushBack(value T) { l.insert(value, l.ring()) }

// PopFront removes the element at the front of the list and returns it, or
// returns an error wrapping container.ErrOutOfRange if the list was empty.
func (l *List[T]) PopFront() (value T, err error) {
	if l.size == 0 {
		return value, fmt.Errorf("list: pop front of empty list: %w", container.ErrOutOfRange)
	}
	n := l.sentinel.next
	l.erase(n)
	return n.value, nil
}

// PopBack removes the element at the back of the list and returns it, or
// returns an error wrapping container.ErrOutOfRange if the list was empty.
func (l *List[T]) PopBack() (value T, err error) {
	if l.size == 0 {
		return value, fmt.Errorf("list: pop back of empty list: %w", container.ErrOutOfRange)
	}
	n := l.sentinel.prev
	l.erase(n)
	return n.value, nil
}

// Swap exchanges the content of l and other. No elements are copied.
//
// Complexity: O(1)
func (l *List[T]) Swap(other *List[T]) {
	l.ring()
	other.ring()
	l.sentinel, other.sentinel = other.sentinel, l.sentinel
	l.size, other.size = other.size, l.size
}

// Splice moves all elements of other right before pos, leaving other empty.
// The elements keep their relative order, and iterators to them remain valid
// and now refer to positions of l.
//
// Splicing a list into itself has no effect.
//
// Complexity: O(M), nodes are relinked in constant time but each moved node
// is tagged as belonging to l.
func (l *List[T]) Splice(pos ConstIterator[T], other *List[T]) {
	if other == l || other.size == 0 {
		return
	}
	s := other.sentinel
	first, last := s.next, s.prev
	unlink(first, last)
	for n := first; ; n = n.next {
		n.owner = l.ring()
		if n == last {
			break
		}
	}
	link(first, last, pos.node)
	l.size += other.size
	other.size = 0
}

// Reverse reverses the order of the elements in the list.
//
// Complexity: O(N)
func (l *List[T]) Reverse() {
	s := l.ring()
	for n := s; ; {
		n.prev, n.next = n.next, n.prev
		if n = n.prev; n == s {
			break
		}
	}
}

// UniqueFunc removes the elements which are equal to the element right
// before them, according to eq, so that only the first element of each run
// of equal elements remains. Equal elements that are not adjacent are all
// kept. The method returns the number of elements removed.
//
// Complexity: O(N)
func (l *List[T]) UniqueFunc(eq func(T, T) bool) (removed int) {
	s := l.ring()
	if l.size < 2 {
		return 0
	}
	kept := s.next
	for n := kept.next; n != s; {
		next := n.next
		if eq(kept.value, n.value) {
			l.erase(n)
			removed++
		} else {
			kept = n
		}
		n = next
	}
	return removed
}

// MoveToFront moves the element at pos to the front of the list.
//
// The operation is idempotent, it does nothing if the element is already at
// the front of the list, or if pos is the past-the-end position or a position
// of another list.
func (l *List[T]) MoveToFront(pos Iterator[T]) {
	s := l.ring()
	if n := pos.node; n != nil && n.owner == s && n != s && n != s.next {
		unlink(n, n)
		link(n, n, s.next)
	}
}

// MoveToBack moves the element at pos to the back of the list.
//
// The operation is idempotent, it does nothing if the element is already at
// the back of the list, or if pos is the past-the-end position or a position
// of another list.
func (l *List[T]) MoveToBack(pos Iterator[T]) {
	s := l.ring()
	if n := pos.node; n != nil && n.owner == s && n != s && n != s.prev {
		unlink(n, n)
		link(n, n, s)
	}
}

func (l *List[T]) insert(value T, at *node[T]) *node[T] {
	n := &node[T]{owner: l.ring(), value: value}
	link(n, n, at)
	l.size++
	return n
}

func (l *List[T]) erase(n *node[T]) {
	unlink(n, n)
	n.prev, n.next, n.owner = nil, nil, nil
	l.size--
}

// link inserts the chain of nodes from first to last right before at.
func link[T any](first, last, at *node[T]) {
	prev := at.prev
	first.prev = prev
	last.next = at
	prev.next = first
	at.prev = last
}

// unlink detaches the chain of nodes from first to last from its neighbors.
// The outer links of first and last are left unchanged.
func unlink[T any](first, last *node[T]) {
	first.prev.next = last.next
	last.next.prev = first.prev
}
