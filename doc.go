// Package vecarray implements a hybrid sequence container that keeps a small
// number of elements in fixed-size storage embedded in the container itself,
// avoiding heap allocation for the common case of short sequences, and spills
// to an ordinary heap-allocated slice once the fixed capacity is exceeded.
//
// An Array holds its elements in exactly one of two stores at any time:
//
//   - a fixed-size array of FixedCapacity (4) slots, used while the element
//     count is at most FixedCapacity, and
//   - a dynamically sized spill slice, used while the element count exceeds
//     FixedCapacity.
//
// The transition between the two stores is automatic and invisible to
// callers. Pushing a fifth element moves the four inline elements into a
// freshly allocated spill slice and appends the new element to it. Removing
// an element while spilled, such that the count drops back to FixedCapacity,
// immediately moves the remaining elements back into the inline store and
// releases the spill slice. Every operation behaves identically in either
// representation: length, indexing, iteration order, views, and equality
// never depend on where the elements currently live.
//
// Basic usage:
//
//	a := vecarray.New[int]()
//
//	// Append elements; no allocation occurs for the first four.
//	for i := 1; i <= 5; i++ {
//	    if err := a.Push(i); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	// Read elements through the contiguous view.
//	for i, v := range a.All() {
//	    fmt.Println(i, v)
//	}
//
//	// Remove elements; storage shrinks back automatically.
//	v, err := a.Pop()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The zero Array value is an empty container ready for use.
//
// # Views and aliasing
//
// Slice and MutSlice return the live contiguous storage over all elements,
// letting any slice-based algorithm run against the container without
// copying. A view remains valid only until the next operation that changes
// the container's length; Push, Pop, Insert, Remove, Clear, Transfer, and
// Drain all invalidate outstanding views, and growing or shrinking the
// container through a view is not supported. Indexing a view is unchecked in
// the usual Go sense: an out-of-range index panics.
//
// # No-allocation mode
//
// Building with the "noalloc" tag compiles out the spill store and the
// promotion logic, for environments where dynamic allocation is not
// acceptable. In that mode any insertion that would exceed FixedCapacity
// fails with ErrCapacityExceeded instead of spilling. The API is identical
// in both build modes; in the default build Push and FromSlice never return
// a non-nil error.
//
// # Limitations
//
// FixedCapacity is a compile-time constant and cannot be changed without
// rebuilding the package. An Array is a single-owner value: it is not safe
// for concurrent mutation, though it may be handed off between goroutines
// when no other reference is live. Workloads whose length oscillates around
// FixedCapacity pay for a full move of the elements at every crossing; if
// that is the hot path, a plain slice is the better tool.
package vecarray
