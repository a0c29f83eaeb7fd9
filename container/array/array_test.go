package array

import (
	"errors"
	"testing"

	"github.com/segmentio/containers/container"
	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestArray(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T)
	}{
		{
			scenario: "a new array holds zero values",
			function: testArrayNew,
		},

		{
			scenario: "an array constructed from values holds a copy of them",
			function: testArrayOf,
		},

		{
			scenario: "accessing an index out of range returns an error",
			function: testArrayOutOfRange,
		},

		{
			scenario: "accessing the front or back of an empty array returns an error",
			function: testArrayEmptyFrontBack,
		},

		{
			scenario: "filling an array sets every element",
			function: testArrayFill,
		},

		{
			scenario: "swapping arrays exchanges their content",
			function: testArraySwap,
		},

		{
			scenario: "cloning an array copies its elements",
			function: testArrayClone,
		},

		{
			scenario: "moving an array empties the source",
			function: testArrayMove,
		},

		{
			scenario: "iterators traverse the array in both directions",
			function: testArrayIterators,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, test.function)
	}
}

func testArrayNew(t *testing.T) {
	a := New[int](3)
	assertArray(t, a, 0, 0, 0)
	check.Equal(t, a.MaxSize(), 3)
	check.True(t, !a.Empty())

	var z Array[int]
	assertArray(t, &z)
	check.True(t, z.Empty())
}

func testArrayOf(t *testing.T) {
	values := []int{1, 2, 3}
	a := Of(values...)
	values[0] = 42
	assertArray(t, a, 1, 2, 3)
	assertValue(t, a.Front)(1)
	assertValue(t, a.Back)(3)
}

func testArrayOutOfRange(t *testing.T) {
	a := Of(1, 2, 3)

	for _, i := range []int{-1, 3, 10} {
		_, err := a.At(i)
		assert.ErrorIs(t, err, container.ErrOutOfRange)

		err = a.Set(i, 0)
		assert.ErrorIs(t, err, container.ErrOutOfRange)
		check.True(t, !errors.Is(err, container.ErrInvalidArgument))

		p, err := a.Ptr(i)
		assert.ErrorIs(t, err, container.ErrOutOfRange)
		check.True(t, p == nil)
	}

	assertArray(t, a, 1, 2, 3)
}

func testArrayEmptyFrontBack(t *testing.T) {
	a := New[string](0)
	_, err := a.Front()
	assert.ErrorIs(t, err, container.ErrOutOfRange)
	_, err = a.Back()
	assert.ErrorIs(t, err, container.ErrOutOfRange)
}

func testArrayFill(t *testing.T) {
	a := New[int](4)
	a.Fill(7)
	assertArray(t, a, 7, 7, 7, 7)

	assert.NotError(t, a.Set(1, 8))
	p, err := a.Ptr(2)
	assert.NotError(t, err)
	*p = 9
	assertArray(t, a, 7, 8, 9, 7)
}

func testArraySwap(t *testing.T) {
	a, b := Of(1, 2, 3), Of(4, 5)
	a.Swap(b)
	assertArray(t, a, 4, 5)
	assertArray(t, b, 1, 2, 3)
}

func testArrayClone(t *testing.T) {
	a := Of(1, 2, 3)
	c := a.Clone()
	assert.NotError(t, c.Set(0, 42))
	assertArray(t, a, 1, 2, 3)
	assertArray(t, c, 42, 2, 3)
}

func testArrayMove(t *testing.T) {
	a, b := Of(1, 2), Of(3, 4, 5)
	a.Move(b)
	assertArray(t, a, 3, 4, 5)
	assertArray(t, b)

	a.Move(a)
	assertArray(t, a, 3, 4, 5)
}

func testArrayIterators(t *testing.T) {
	a := Of(1, 2, 3)

	for it := a.Begin(); !it.Equal(a.End()); it = it.Next() {
		it.Set(it.Value() * 10)
	}
	assertArray(t, a, 10, 20, 30)

	var backward []int
	for it := a.CEnd().Prev(); !it.Equal(a.CBegin().Prev()); it = it.Prev() {
		backward = append(backward, it.Value())
	}
	check.Equal(t, len(backward), 3)
	check.Equal(t, backward[0], 30)
	check.Equal(t, backward[2], 10)

	check.Equal(t, a.Begin().Advance(2).Value(), 30)
	check.Equal(t, a.End().Retreat(3).Value(), 10)
	check.Equal(t, a.CEnd().Advance(-2).Value(), 20)
	check.True(t, a.Begin().Advance(3).Equal(a.End()))
	check.True(t, a.CBegin().Retreat(-1).Equal(a.CBegin().Next()))

	check.True(t, a.Begin().Const().Equal(a.CBegin()))
	check.True(t, !a.Begin().Equal(Of(10, 20, 30).Begin()))
}

func assertValue[T comparable](t *testing.T, f func() (T, error)) func(T) {
	return func(expected T) {
		t.Helper()
		v, err := f()
		assert.NotError(t, err)
		check.Equal(t, v, expected)
	}
}

func assertArray(t *testing.T, a *Array[int], v ...int) {
	t.Helper()

	if n := a.Len(); n != len(v) {
		t.Fatalf("array length mismatch, expected %d but found %d", len(v), n)
	}

	for i, x := range a.All() {
		if x != v[i] {
			t.Errorf("array element at index %d mismatch, expected %d but found %d", i, v[i], x)
		}
		if y, err := a.At(i); err != nil || y != x {
			t.Errorf("array element at index %d mismatch, At returned %d, %v", i, y, err)
		}
	}

	if data := a.Data(); len(data) != len(v) {
		t.Errorf("array data length mismatch, expected %d but found %d", len(v), len(data))
	}
}
