package array

type cursor[T any] struct {
	array *Array[T]
	index int
}

func (c *cursor[T]) next() { c.index++ }

func (c *cursor[T]) prev() { c.index-- }

func (c *cursor[T]) move(n int) { c.index += n }

func (c cursor[T]) equal(other cursor[T]) bool {
	return c.array == other.array && c.index == other.index
}

// Iterator is a position in an array, through which the element at that
// position can be read and modified. Iterators remain valid until the array
// is swapped or moved.
type Iterator[T any] struct{ cursor[T] }

// Next returns an iterator to the following position.
func (it Iterator[T]) Next() Iterator[T] { it.next(); return it }

// Prev returns an iterator to the preceding position.
func (it Iterator[T]) Prev() Iterator[T] { it.prev(); return it }

// Advance returns an iterator n positions after it, or before it when n is
// negative.
func (it Iterator[T]) Advance(n int) Iterator[T] { it.move(n); return it }

// Retreat returns an iterator n positions before it.
func (it Iterator[T]) Retreat(n int) Iterator[T] { it.move(-n); return it }

// Equal returns true if it and other point at the same position of the same
// array.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.equal(other.cursor) }

// Value returns the element at the iterator position.
func (it Iterator[T]) Value() T { return it.array.data[it.index] }

// Set replaces the element at the iterator position.
func (it Iterator[T]) Set(value T) { it.array.data[it.index] = value }

// Const converts it to a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.cursor} }

// ConstIterator is a read-only position in an array.
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

// Equal returns true if it and other point at the same position of the same
// array.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool { return it.equal(other.cursor) }

// Value returns the element at the iterator position.
func (it ConstIterator[T]) Value() T { return it.array.data[it.index] }
