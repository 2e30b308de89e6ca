package vecarray

import "slices"

// Clone returns an independent copy of the Array, in the same
// representation. Elements are copied with assignment; reference types share
// their referents.
func (a *Array[T]) Clone() *Array[T] {
	c := New[T]()
	c.length = a.length
	if a.spilled() {
		c.spill = slices.Clone(a.spill)
	} else {
		copy(c.fixed[:], a.fixed[:a.length])
	}
	return c
}

// Transfer moves every element into dst, replacing whatever dst held, and
// leaves the source empty. No elements are copied when spilled: the spill
// slice changes hands. Transferring an Array into itself is a no-op.
func (a *Array[T]) Transfer(dst *Array[T]) {
	if a == dst {
		return
	}
	dst.Clear()
	if a.spilled() {
		dst.spill = a.spill
		a.spill = nil
	} else {
		copy(dst.fixed[:], a.fixed[:a.length])
		clear(a.fixed[:a.length])
	}
	dst.length = a.length
	a.length = 0
}

// Take returns the element at index i, leaving the zero value of T in its
// slot. The length is unchanged. An index outside [0, Len) returns
// ErrIndexOutOfRange.
func (a *Array[T]) Take(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.length {
		return zero, ErrIndexOutOfRange
	}
	s := a.active()
	v := s[i]
	s[i] = zero
	return v, nil
}
