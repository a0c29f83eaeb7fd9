// Package array contains the implementation of a fixed-size array of values
// of any type.
//
// Arrays have a length chosen at construction which never changes afterward.
// Element access is always bounds-checked: invalid indexes are reported as
// errors wrapping container.ErrOutOfRange instead of panicking.
package array

import (
	"fmt"
	"iter"

	"github.com/segmentio/containers/container"
)

// Array is a contiguous sequence of a fixed number of values of type T.
//
// The zero-value is a valid array of length zero.
type Array[T any] struct {
	data []T
}

// New constructs an array of n zero values. The function panics if n is
// negative.
func New[T any](n int) *Array[T] {
	if n < 0 {
		panic(fmt.Errorf("array: negative size: %d", n))
	}
	return &Array[T]{data: make([]T, n)}
}

// Of constructs an array holding a copy of the values passed as arguments.
func Of[T any](values ...T) *Array[T] {
	a := New[T](len(values))
	copy(a.data, values)
	return a
}

// Clone returns a new array holding a copy of the elements of a.
func (a *Array[T]) Clone() *Array[T] { return Of(a.data...) }

// Move transfers the elements of other to a, leaving other with a length of
// zero.
func (a *Array[T]) Move(other *Array[T]) {
	if other != a {
		a.data, other.data = other.data, nil
	}
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int { return len(a.data) }

// Empty returns true if the array has a length of zero.
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

// MaxSize returns the maximum number of elements the array can hold, which is
// always its length.
func (a *Array[T]) MaxSize() int { return len(a.data) }

// At returns the element at index i.
func (a *Array[T]) At(i int) (value T, err error) {
	if err = a.check(i); err == nil {
		value = a.data[i]
	}
	return value, err
}

// Set replaces the element at index i.
func (a *Array[T]) Set(i int, value T) error {
	if err := a.check(i); err != nil {
		return err
	}
	a.data[i] = value
	return nil
}

// Ptr returns a pointer to the element at index i.
func (a *Array[T]) Ptr(i int) (*T, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	return &a.data[i], nil
}

// Front returns the first element of the array.
func (a *Array[T]) Front() (value T, err error) {
	if len(a.data) == 0 {
		return value, fmt.Errorf("array: front of empty array: %w", container.ErrOutOfRange)
	}
	return a.data[0], nil
}

// Back returns the last element of the array.
func (a *Array[T]) Back() (value T, err error) {
	if len(a.data) == 0 {
		return value, fmt.Errorf("array: back of empty array: %w", container.ErrOutOfRange)
	}
	return a.data[len(a.data)-1], nil
}

// Data returns the slice backing the array. Modifying elements of the slice
// modifies the array.
func (a *Array[T]) Data() []T { return a.data }

// Fill sets every element of the array to value.
func (a *Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Swap exchanges the content of a and other.
//
// Complexity: O(1)
func (a *Array[T]) Swap(other *Array[T]) {
	a.data, other.data = other.data, a.data
}

// All returns an iterator over the indexes and elements of the array.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Begin returns an iterator to the first element of the array.
func (a *Array[T]) Begin() Iterator[T] { return Iterator[T]{cursor[T]{a, 0}} }

// End returns an iterator to the past-the-end position of the array.
func (a *Array[T]) End() Iterator[T] { return Iterator[T]{cursor[T]{a, len(a.data)}} }

// CBegin is like Begin but returns a read-only iterator.
func (a *Array[T]) CBegin() ConstIterator[T] { return a.Begin().Const() }

// CEnd is like End but returns a read-only iterator.
func (a *Array[T]) CEnd() ConstIterator[T] { return a.End().Const() }

func (a *Array[T]) check(i int) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("array: index %d out of range [0:%d]: %w", i, len(a.data), container.ErrOutOfRange)
	}
	return nil
}
