package vecarray

import (
	"fmt"
	"slices"
)

// FixedCapacity is the number of inline slots in an Array. Sequences of at
// most this many elements are stored without heap allocation. Changing it
// requires rebuilding the package.
const FixedCapacity = 4

// Array is a hybrid sequence of elements of type T. Elements live in a
// fixed-size inline store while the count is at most FixedCapacity, and in a
// heap-allocated spill slice beyond that. Exactly one store is populated at
// any time; the representation is derived from the count, so a spilled Array
// always holds more than FixedCapacity elements.
//
// The zero value is an empty Array ready for use. An Array must not be
// copied after first use: the inline store would be duplicated while the
// spill slice would be shared. Use Clone or Transfer instead.
type Array[T any] struct {
	// Total number of elements held, in either store.
	length int
	// Inline store. Slots at index >= length are kept at the zero value
	// so removed elements do not stay reachable.
	fixed [FixedCapacity]T
	// Spill store. Nil whenever the inline store is active.
	spill []T
}

// New returns an empty Array using inline storage.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// FromSlice builds an Array from items, preserving order. Inputs of at most
// FixedCapacity elements are copied into the inline store; longer inputs are
// adopted as the spill store, so the caller must not use items afterwards.
// In the noalloc build a spilling input returns ErrCapacityExceeded and an
// empty Array.
func FromSlice[T any](items []T) (*Array[T], error) {
	a := New[T]()
	if len(items) <= FixedCapacity {
		a.length = len(items)
		copy(a.fixed[:], items)
		return a, nil
	}
	return a, a.adopt(items)
}

// spilled reports whether the spill store is active. The representation is a
// function of the count alone: demotion is immediate, so a spill store never
// holds FixedCapacity or fewer elements.
func (a *Array[T]) spilled() bool {
	return a.length > FixedCapacity
}

// active returns the populated store, sliced to the live elements.
func (a *Array[T]) active() []T {
	if a.spilled() {
		return a.spill
	}
	return a.fixed[:a.length]
}

// Len returns the number of elements in the Array.
func (a *Array[T]) Len() int {
	return a.length
}

// Empty reports whether the Array holds no elements.
func (a *Array[T]) Empty() bool {
	return a.length == 0
}

// Get returns the element at index i, or ErrIndexOutOfRange when i does not
// refer to an element.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.length {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return a.active()[i], nil
}

// Set replaces the element at index i, or returns ErrIndexOutOfRange when i
// does not refer to an element.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.length {
		return ErrIndexOutOfRange
	}
	a.active()[i] = v
	return nil
}

// Push appends v at the end of the Array. When the inline store is full the
// elements are first moved into a spill slice; an already spilled Array
// grows with the usual amortized doubling. The returned error is always nil
// in the default build and ErrCapacityExceeded in the noalloc build when the
// inline store is full.
func (a *Array[T]) Push(v T) error {
	switch {
	case a.length == FixedCapacity:
		if err := a.promote(); err != nil {
			return err
		}
		a.spill = append(a.spill, v)
	case a.spilled():
		a.spill = append(a.spill, v)
	default:
		a.fixed[a.length] = v
	}
	a.length++
	return nil
}

// Pop removes and returns the last element, or ErrEmpty when the Array holds
// no elements. When the removal brings the count back to FixedCapacity the
// remaining elements move into the inline store and the spill slice is
// released.
func (a *Array[T]) Pop() (T, error) {
	var zero T
	if a.length == 0 {
		return zero, ErrEmpty
	}
	var v T
	if a.spilled() {
		v = a.spill[a.length-1]
		a.spill[a.length-1] = zero
		a.spill = a.spill[:a.length-1]
		a.length--
		if a.length <= FixedCapacity {
			a.demote()
		}
	} else {
		v = a.fixed[a.length-1]
		a.fixed[a.length-1] = zero
		a.length--
	}
	return v, nil
}

// Insert places v at index i, shifting later elements one position to the
// right. i may equal Len, in which case Insert behaves like Push. An index
// outside [0, Len] returns ErrIndexOutOfRange without mutating the Array.
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.length {
		return ErrIndexOutOfRange
	}
	switch {
	case a.length == FixedCapacity:
		if err := a.promote(); err != nil {
			return err
		}
		a.spill = slices.Insert(a.spill, i, v)
	case a.spilled():
		a.spill = slices.Insert(a.spill, i, v)
	default:
		copy(a.fixed[i+1:a.length+1], a.fixed[i:a.length])
		a.fixed[i] = v
	}
	a.length++
	return nil
}

// Remove deletes and returns the element at index i, shifting later elements
// one position to the left. An index outside [0, Len) returns
// ErrIndexOutOfRange without mutating the Array. Demotion follows the same
// rule as Pop.
func (a *Array[T]) Remove(i int) (T, error) {
	if i < 0 || i >= a.length {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	var v T
	if a.spilled() {
		v = a.spill[i]
		a.spill = slices.Delete(a.spill, i, i+1)
		a.length--
		if a.length <= FixedCapacity {
			a.demote()
		}
	} else {
		var zero T
		v = a.fixed[i]
		copy(a.fixed[i:a.length-1], a.fixed[i+1:a.length])
		a.fixed[a.length-1] = zero
		a.length--
	}
	return v, nil
}

// Clear removes all elements, releasing the spill slice when present. The
// Array is empty and inline afterwards.
func (a *Array[T]) Clear() {
	if a.spilled() {
		a.spill = nil
	} else {
		clear(a.fixed[:a.length])
	}
	a.length = 0
}

// String formats the elements like a slice, independent of representation.
func (a *Array[T]) String() string {
	return fmt.Sprint(a.active())
}
