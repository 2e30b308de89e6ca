package vecarray

import "slices"

// Equal reports whether a and b hold equal elements in the same order. The
// comparison never depends on representation: an inline Array and a spilled
// one are equal whenever their elements are.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.active(), b.active())
}

// EqualFunc is like Equal but compares elements with eq, allowing different
// element types.
func EqualFunc[T1, T2 any](a *Array[T1], b *Array[T2], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(a.active(), b.active(), eq)
}

// EqualSlice reports whether a holds the same elements, in the same order,
// as the plain slice b.
func EqualSlice[T comparable](a *Array[T], b []T) bool {
	return slices.Equal(a.active(), b)
}
