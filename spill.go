//go:build !noalloc

package vecarray

// promote moves every inline element into a freshly allocated spill slice,
// zeroing the vacated slots. Called only when the inline store is full and
// an insertion needs one more slot.
func (a *Array[T]) promote() error {
	s := make([]T, 0, 2*FixedCapacity)
	s = append(s, a.fixed[:a.length]...)
	clear(a.fixed[:a.length])
	a.spill = s
	return nil
}

// demote moves the remaining spilled elements back into the inline store and
// releases the spill slice. Called only when a removal brings the count back
// to FixedCapacity or below.
func (a *Array[T]) demote() {
	copy(a.fixed[:a.length], a.spill)
	a.spill = nil
}

// adopt takes ownership of items as the spill store.
func (a *Array[T]) adopt(items []T) error {
	a.spill = items
	a.length = len(items)
	return nil
}
