package linkedlist

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   []int
	}{
		{"empty", nil, nil},
		{"single", []int{3}, []int{3}},
		{"example", []int{5, 3, 5, 1, 4}, []int{1, 3, 4, 5, 5}},
		{"all equal", []int{2, 2, 2, 2}, []int{2, 2, 2, 2}},
		{"sorted", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		{"reverse sorted", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"negatives", []int{0, -1, 7, -8, 3}, []int{-8, -1, 0, 3, 7}},
		{"pivot is max", []int{9, 1, 8, 2, 7}, []int{1, 2, 7, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestArena(t)
			l := a.Sort(mustList(t, a, tt.values...))
			if diff := cmp.Diff(tt.want, a.ToSlice(l)); diff != "" {
				t.Errorf("Sort mismatch (-want +got):\n%s", diff)
			}
			if got := a.Length(l); got != len(tt.values) {
				t.Errorf("Length() after Sort = %d, want %d", got, len(tt.values))
			}
		})
	}
}

func TestSortGroupsEqualValuesByHeadInsertion(t *testing.T) {
	a := newTestArena(t)
	l := mustList(t, a, 2, 2, 2)
	nodes := []NodeID{nth(t, a, l, 0), nth(t, a, l, 1), nth(t, a, l, 2)}

	l = a.Sort(l)
	assert.Equal(t, nodes[2], nth(t, a, l, 0))
	assert.Equal(t, nodes[1], nth(t, a, l, 1))
	assert.Equal(t, nodes[0], nth(t, a, l, 2))
}

func TestSortRandomPreservesValues(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := newTestArena(t)

	for round := 0; round < 50; round++ {
		values := make([]int, rng.Intn(200))
		for i := range values {
			values[i] = rng.Intn(40) - 20
		}

		l := a.Sort(mustList(t, a, values...))
		got := a.ToSlice(l)

		want := slices.Clone(values)
		slices.Sort(want)
		if len(want) == 0 {
			want = nil
		}
		require.Empty(t, cmp.Diff(want, got), "round %d", round)
		assert.Equal(t, len(values), a.Clear(l))
	}
	assert.Equal(t, 0, a.Stats().LiveNodes)
}

func TestSortLongSortedInput(t *testing.T) {
	// Sorted input makes every pivot an extreme value, the deepest partitioning.
	const n = 3000
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}

	a := newTestArena(t)
	l := a.Sort(mustList(t, a, values...))
	if diff := cmp.Diff(values, a.ToSlice(l)); diff != "" {
		t.Errorf("Sort mismatch (-want +got):\n%s", diff)
	}
}

func TestSortStaleList(t *testing.T) {
	a := newTestArena(t)
	l := mustList(t, a, 3, 1, 2)
	sorted := a.Sort(l)

	// The old head (3) now sits at the tail behind another node.
	assert.True(t, a.IsEmpty(l))
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice(sorted))
}
