package seq

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counting returns the infinite sequence from, from+step, from+2*step, ...
func counting(from, step int) Seq[int] {
	n := from
	return Func[int](func() (int, bool) {
		v := n
		n += step
		return v, true
	})
}

func TestMerge_InfiniteAscending(t *testing.T) {
	evens := counting(0, 2)
	odds := counting(1, 2)

	got := Collect[int](Merge(evens, odds, cmp.Compare, false), 10)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestMerge_InfiniteDescending(t *testing.T) {
	a := counting(0, -2)  // 0, -2, -4, ...
	b := counting(-1, -2) // -1, -3, -5, ...

	got := Collect[int](Merge(a, b, cmp.Compare, true), 6)
	assert.Equal(t, []int{0, -1, -2, -3, -4, -5}, got)
}

func TestMerge_OneSideEmpty(t *testing.T) {
	got := Collect[int](Merge(Empty[int](), FromSlice([]int{1, 2, 3}), cmp.Compare, false), -1)
	assert.Equal(t, []int{1, 2, 3}, got)

	got = Collect[int](Merge(FromSlice([]int{1, 2, 3}), Empty[int](), cmp.Compare, false), -1)
	assert.Equal(t, []int{1, 2, 3}, got)

	got = Collect[int](Merge(Empty[int](), Empty[int](), cmp.Compare, false), -1)
	assert.Empty(t, got)
}

func TestMerge_FiniteInterleaving(t *testing.T) {
	a := FromSlice([]int{1, 4, 4, 9})
	b := FromSlice([]int{2, 4, 7})

	got := Collect[int](Merge(a, b, cmp.Compare, false), -1)
	assert.Equal(t, []int{1, 2, 4, 4, 4, 7, 9}, got)
}

func TestCollect_DrainsFinite(t *testing.T) {
	s := FromSlice([]int{5, 6})
	assert.Equal(t, []int{5, 6}, Collect[int](s, -1))

	// The sequence stays exhausted.
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestAll_StopsOnBreak(t *testing.T) {
	s := counting(0, 1)

	var got []int
	for v := range All[int](s) {
		if v >= 3 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2}, got)

	// Breaking just stops pulling; the cursor continues from where the
	// range left off.
	v, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestEmpty(t *testing.T) {
	s := Empty[string]()
	_, ok := s.Next()
	assert.False(t, ok)
}
