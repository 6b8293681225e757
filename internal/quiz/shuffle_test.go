package quiz

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_IsPermutation(t *testing.T) {
	for n := 0; n <= 12; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = i % 4 // repeated values keep the multiset check honest
		}
		out := Shuffle(in)
		require.Len(t, out, n)

		sortedIn := append([]int(nil), in...)
		sortedOut := append([]int(nil), out...)
		sort.Ints(sortedIn)
		sort.Ints(sortedOut)
		assert.Equal(t, sortedIn, sortedOut, "n=%d", n)
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	_ = Shuffle(in)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, in)
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, Shuffle([]int{}))
	assert.Empty(t, Shuffle[int](nil))
	assert.Equal(t, []int{7}, Shuffle([]int{7}))
}

func TestShuffle_UniformPositions(t *testing.T) {
	const (
		n      = 4
		trials = 40000
	)
	var counts [n][n]int
	in := []int{0, 1, 2, 3}
	for i := 0; i < trials; i++ {
		for pos, v := range Shuffle(in) {
			counts[v][pos]++
		}
	}

	expected := float64(trials) / n
	for v := 0; v < n; v++ {
		for pos := 0; pos < n; pos++ {
			got := float64(counts[v][pos])
			assert.InDelta(t, expected, got, expected*0.1, "element %d at position %d", v, pos)
		}
	}
}
