package vecarray

import "slices"

// Slice returns a read view over all elements as a contiguous slice,
// regardless of representation. The view stays valid until the next
// operation that changes the Array's length; callers must not grow, shrink,
// or write through it. Use MutSlice for element mutation.
func (a *Array[T]) Slice() []T {
	return a.active()
}

// MutSlice returns a mutable view over all elements as a contiguous slice.
// Element contents may be modified in place, but the view must not be grown
// or shrunk, and it stays valid only until the next operation that changes
// the Array's length.
func (a *Array[T]) MutSlice() []T {
	return a.active()
}

// ToSlice returns a fresh slice holding a copy of all elements in order.
// The Array is unchanged; use Drain to move the elements out instead.
func (a *Array[T]) ToSlice() []T {
	return slices.Clone(a.active())
}
