package list

// cursor implements the traversal logic shared by Iterator and ConstIterator.
type cursor[T any] struct{ node *node[T] }

func (c *cursor[T]) next() { c.node = c.node.next }

func (c *cursor[T]) prev() { c.node = c.node.prev }

// move steps n positions forward, or backward when n is negative.
func (c *cursor[T]) move(n int) {
	for ; n > 0; n-- {
		c.next()
	}
	for ; n < 0; n++ {
		c.prev()
	}
}

func (c cursor[T]) equal(other cursor[T]) bool { return c.node == other.node }

func iteratorOf[T any](n *node[T]) Iterator[T] { return Iterator[T]{cursor[T]{n}} }

// Iterator is a position in a list, through which the element at that position
// can be read and modified.
//
// Iterators do not own the element they point at. Dereferencing the
// past-the-end position, moving past it, or moving before the first element
// have unspecified results.
//
// The zero-value is an iterator which points nowhere.
type Iterator[T any] struct{ cursor[T] }

// Next returns an iterator to the following position.
func (it Iterator[T]) Next() Iterator[T] { it.next(); return it }

// Prev returns an iterator to the preceding position.
func (it Iterator[T]) Prev() Iterator[T] { it.prev(); return it }

// Advance returns an iterator n positions after it, or before it when n is
// negative.
//
// Complexity: O(n)
func (it Iterator[T]) Advance(n int) Iterator[T] { it.move(n); return it }

// Retreat returns an iterator n positions before it.
func (it Iterator[T]) Retreat(n int) Iterator[T] { it.move(-n); return it }

// Equal returns true if it and other point at the same position of a list.
// Positions are compared by identity, not by value.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.equal(other.cursor) }

// Value returns the element at the iterator position.
func (it Iterator[T]) Value() T { return it.node.value }

// Set replaces the element at the iterator position.
func (it Iterator[T]) Set(value T) { it.node.value = value }

// Ptr returns a pointer to the element at the iterator position. The pointer
// remains valid for as long as the element is part of the list.
func (it Iterator[T]) Ptr() *T { return &it.node.value }

// Const converts it to a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.cursor} }

// ConstIterator is a read-only position in a list. It traverses and compares
// like Iterator, but does not allow modifying the element it points at.
//
// There is no conversion from ConstIterator back to Iterator.
type ConstIterator[T any] struct{ cursor[T] }

// Next returns an iterator to the following position.
func (it ConstIterator[T]) Next() ConstIterator[T] { it.next(); return it }

// Prev returns an iterator to the preceding position.
func (it ConstIterator[T]) Prev() ConstIterator[T] { it.prev(); return it }

// Advance returns an iterator n positions after it, or before it when n is
// negative.
func (it ConstIterator[T]) Advance(n int) ConstIterator[T] { it.move(n); return it }

// Retreat returns an iterator n positions before it.
func (it ConstIterator[T]) Retreat(n int) ConstIterator[T] { it.move(-n); return it }

// Equal returns true if it and other point at the same position of a list.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool { return it.equal(other.cursor) }

// Value returns the element at the iterator position.
func (it ConstIterator[T]) Value() T { return it.node.value }
