//go:build !noalloc

package vecarray_test

import (
	"fmt"
	"testing"

	vecarray "github.com/schungx/vec-array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	a := buildArray(t, 10, 20, 30, 40, 50)

	var idx []int
	var vals []int
	for i, v := range a.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, idx)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, vals)
}

func TestValuesRestartable(t *testing.T) {
	a := buildArray(t, 1, 2, 3)
	seq := a.Values()

	for range 2 {
		var got []int
		for v := range seq {
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2, 3}, got)
	}
}

func TestValuesEarlyBreak(t *testing.T) {
	a := buildArray(t, 1, 2, 3, 4, 5)

	var got []int
	for v := range a.Values() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	// Read iteration never mutates the container.
	assert.Equal(t, 5, a.Len())
}

func TestPtrsMutatesInPlace(t *testing.T) {
	for _, n := range []int{3, 6} {
		t.Run(fmt.Sprintf("length %d", n), func(t *testing.T) {
			items := make([]int, n)
			for i := range items {
				items[i] = i + 1
			}
			a, err := vecarray.FromSlice(items)
			require.NoError(t, err)

			for p := range a.Ptrs() {
				*p *= 10
			}
			assert.Equal(t, n, a.Len())
			for i := range n {
				v, err := a.Get(i)
				require.NoError(t, err)
				assert.Equal(t, (i+1)*10, v)
			}
		})
	}
}

func TestDrainRoundTrip(t *testing.T) {
	for _, n := range []int{0, 4, 5, 6} {
		t.Run(fmt.Sprintf("length %d", n), func(t *testing.T) {
			items := make([]int, n)
			for i := range items {
				items[i] = i + 1
			}
			a, err := vecarray.FromSlice(items)
			require.NoError(t, err)

			var got []int
			for v := range a.Drain() {
				got = append(got, v)
			}
			assert.Len(t, got, n)
			for i, v := range got {
				assert.Equal(t, i+1, v)
			}
			assert.True(t, a.Empty())

			// The drained container is reusable.
			require.NoError(t, a.Push(99))
			assert.Equal(t, 1, a.Len())
		})
	}
}

func TestDrainEarlyBreakEmpties(t *testing.T) {
	a := buildArray(t, 1, 2, 3, 4, 5)

	for v := range a.Drain() {
		if v == 2 {
			break
		}
	}
	assert.True(t, a.Empty())
	assert.Equal(t, 0, a.Len())
}

func TestIterationAcrossRepresentations(t *testing.T) {
	// The same logical contents iterate identically whether the container
	// got there by spilling and shrinking or never left inline storage.
	grown := buildArray(t, 1, 2, 3, 4, 5)
	_, err := grown.Pop()
	require.NoError(t, err)
	_, err = grown.Pop()
	require.NoError(t, err)

	inline := buildArray(t, 1, 2, 3)

	var a, b []int
	for v := range grown.Values() {
		a = append(a, v)
	}
	for v := range inline.Values() {
		b = append(b, v)
	}
	assert.Equal(t, b, a)
}
