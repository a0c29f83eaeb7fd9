package list

import (
	"github.com/segmentio/containers/compare"
	"golang.org/x/exp/constraints"
)

// Sort sorts the elements of l in ascending order.
func Sort[T constraints.Ordered](l *List[T]) { l.SortFunc(compare.Function[T]) }

// Merge merges the elements of other into l in ascending order, leaving other
// empty. Both lists must already be sorted in ascending order.
func Merge[T constraints.Ordered](l, other *List[T]) { l.MergeFunc(other, compare.Function[T]) }

// Unique removes consecutive duplicate elements of l and returns how many were
// removed.
func Unique[T comparable](l *List[T]) int { return l.UniqueFunc(compare.Equal[T]) }

// SortFunc sorts the elements of the list in ascending order as determined by
// cmp, which must return a negative number when a < b, a positive number when
// a > b, and zero when a == b.
//
// The list is sorted by a quicksort which only relinks nodes. Each range is
// partitioned around its middle node (the lower middle for even lengths) into
// the elements lower than, equal to, and greater than the pivot. The lower and
// greater parts are sorted recursively, then the three parts are combined by
// merging. Elements are not copied, and iterators remain valid.
//
// Partitioning keeps the relative order of elements and the merge step favours
// its left input, so equal elements currently keep their order, but programs
// should not depend on it.
//
// Complexity: O(N*log(N)) on average
func (l *List[T]) SortFunc(cmp func(T, T) int) {
	if l.size < 2 {
		return
	}
	l.attach(quickSort(l.detach(), cmp))
}

// MergeFunc merges the elements of other into the list, leaving other empty.
// Both lists must be sorted in ascending order as determined by cmp, the
// result is then sorted as well. When elements of both lists are equal, the
// ones from l come first. If either list is not sorted, the resulting order
// is unspecified, but no element is lost.
//
// Nodes are moved from other to l, so iterators to elements of other remain
// valid and now refer to positions of l. Merging a list into itself has no
// effect.
//
// Complexity: O(N+M)
func (l *List[T]) MergeFunc(other *List[T], cmp func(T, T) int) {
	if other == l || other.size == 0 {
		return
	}
	size := other.size
	a, b := l.detach(), other.detach()
	other.size = 0
	l.attach(mergeNodes(a, b, cmp))
	l.size += size
}

// detach unlinks all elements from the ring and returns them as a chain
// linked through next and terminated by nil. The prev links of the chain are
// left stale until attach restores them.
func (l *List[T]) detach() *node[T] {
	s := l.ring()
	if s.next == s {
		return nil
	}
	first := s.next
	s.prev.next = nil
	s.prev, s.next = s, s
	return first
}

// attach links a nil-terminated chain into the empty ring of l, restoring the
// prev links and tagging the nodes as owned by l along the way. It does not
// update the size of the list.
func (l *List[T]) attach(first *node[T]) {
	s := l.ring()
	prev := s
	for n := first; n != nil; n = n.next {
		prev.next = n
		n.prev = prev
		n.owner = s
		prev = n
	}
	prev.next = s
	s.prev = prev
}

func quickSort[T any](first *node[T], cmp func(T, T) int) *node[T] {
	if first == nil || first.next == nil {
		return first
	}
	less, equal, greater := partition(first, middle(first), cmp)
	return mergeNodes(mergeNodes(quickSort(less, cmp), equal, cmp), quickSort(greater, cmp), cmp)
}

// middle returns the middle node of a nil-terminated chain, or the lower
// middle one if the chain has an even length.
func middle[T any](first *node[T]) *node[T] {
	slow, fast := first, first.next
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
	}
	return slow
}

// partition splits the nil-terminated chain starting at first into three
// chains of the nodes lower than, equal to, and greater than pivot. The pivot
// node always lands in the equal chain, so the two other chains are strictly
// shorter than the input.
func partition[T any](first, pivot *node[T], cmp func(T, T) int) (less, equal, greater *node[T]) {
	var lh, eh, gh node[T]
	lt, et, gt := &lh, &eh, &gh

	for n := first; n != nil; n = n.next {
		c := 0
		if n != pivot {
			c = cmp(n.value, pivot.value)
		}
		switch {
		case c < 0:
			lt.next, lt = n, n
		case c > 0:
			gt.next, gt = n, n
		default:
			et.next, et = n, n
		}
	}

	lt.next, et.next, gt.next = nil, nil, nil
	return lh.next, eh.next, gh.next
}

// mergeNodes merges two nil-terminated chains sorted according to cmp. On
// ties, nodes of a are placed before nodes of b.
func mergeNodes[T any](a, b *node[T], cmp func(T, T) int) *node[T] {
	var head node[T]
	tail := &head

	for a != nil && b != nil {
		if cmp(b.value, a.value) < 0 {
			tail.next, b = b, b.next
		} else {
			tail.next, a = a, a.next
		}
		tail = tail.next
	}

	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head.next
}
