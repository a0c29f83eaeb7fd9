// Package container holds the definitions shared by the container
// implementations in its sub-packages.
//
// All containers report failures with the same error kinds so programs can
// branch on them with errors.Is regardless of which container raised them:
//
//	if _, err := l.Front(); errors.Is(err, container.ErrOutOfRange) {
//		...
//	}
//
// Programming errors that the containers cannot detect cheaply, such as
// moving an iterator past the end or using an iterator whose element was
// erased, are not reported and have unspecified results.
package container

import "errors"

var (
	// ErrOutOfRange is returned when accessing an element that does not
	// exist, for example the front of an empty container or an index past its
	// length.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument is returned when a structural operation is given a
	// position it cannot act on, such as erasing the past-the-end position.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Sizer is implemented by containers which track their number of elements.
type Sizer interface {
	Len() int
}
