//go:build noalloc

package vecarray

// In the noalloc build the spill store is never populated: any insertion
// that would exceed the inline capacity fails instead of promoting, and the
// demotion path is unreachable.

func (a *Array[T]) promote() error {
	return ErrCapacityExceeded
}

func (a *Array[T]) demote() {}

func (a *Array[T]) adopt([]T) error {
	return ErrCapacityExceeded
}
