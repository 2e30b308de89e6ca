package vecarray

import "errors"

var (
	// ErrIndexOutOfRange is returned when an index does not refer to an
	// element of the container, or is not a valid insertion position.
	ErrIndexOutOfRange = errors.New("vecarray: index out of range")
	// ErrEmpty is returned by Pop when the container holds no elements.
	ErrEmpty = errors.New("vecarray: array is empty")
	// ErrCapacityExceeded is returned in the noalloc build mode when an
	// insertion would exceed FixedCapacity. It is never returned in the
	// default build, where the container spills to heap storage instead.
	ErrCapacityExceeded = errors.New("vecarray: fixed capacity exceeded")
)
