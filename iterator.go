package vecarray

import "iter"

// All returns an iterator over index/value pairs in index order. The Array
// must not be structurally mutated while iterating.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.active() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order. The sequence
// is restartable: ranging over it again revisits the elements from the
// start. The Array must not be structurally mutated while iterating.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.active() {
			if !yield(v) {
				return
			}
		}
	}
}

// Ptrs returns an iterator over pointers to the elements in index order, for
// in-place mutation of element contents. Structural mutation while iterating
// is not supported: the pointers alias the live store, and a representation
// change would leave them pointing at released storage.
func (a *Array[T]) Ptrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		s := a.active()
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator: it detaches every element from the
// Array up front, leaving it empty and inline, and yields each element
// exactly once in index order. Ownership of the yielded elements passes to
// the caller; breaking early discards the elements not yet yielded.
func (a *Array[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		var buf [FixedCapacity]T
		var s []T
		if a.spilled() {
			s = a.spill
			a.spill = nil
		} else {
			copy(buf[:], a.fixed[:a.length])
			clear(a.fixed[:a.length])
			s = buf[:a.length]
		}
		a.length = 0
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}
