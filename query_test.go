package linkedlist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestReductions(t *testing.T) {
	tests := []struct {
		name      string
		values    []int
		wantMax   int
		wantMin   int
		countOf   int
		wantCount int
	}{
		{"empty", nil, DefaultValue, DefaultValue, 0, 0},
		{"single", []int{-4}, -4, -4, -4, 1},
		{"example", []int{5, 3, 5, 1, 4}, 5, 1, 5, 2},
		{"all negative", []int{-9, -2, -30}, -2, -30, 1, 0},
		{"max at tail", []int{1, 2, 3, 10}, 10, 1, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestArena(t)
			l := mustList(t, a, tt.values...)

			if got := a.Max(l); got != tt.wantMax {
				t.Errorf("Max() = %d, want %d", got, tt.wantMax)
			}
			if got := a.Min(l); got != tt.wantMin {
				t.Errorf("Min() = %d, want %d", got, tt.wantMin)
			}
			if got := a.Count(l, tt.countOf); got != tt.wantCount {
				t.Errorf("Count(%d) = %d, want %d", tt.countOf, got, tt.wantCount)
			}
			if got := a.Length(l); got != len(tt.values) {
				t.Errorf("Length() = %d, want %d", got, len(tt.values))
			}
		})
	}
}

func TestSetValue(t *testing.T) {
	a := newTestArena(t)
	l := mustList(t, a, 1, 2, 3)

	l = a.SetValue(l, nth(t, a, l, 1), 20)
	assert.Equal(t, []int{1, 20, 3}, a.ToSlice(l))

	// A node from another list is left alone.
	other := mustNode(t, a, 3)
	l = a.SetValue(l, other, 99)
	assert.Equal(t, []int{1, 20, 3}, a.ToSlice(l))
	v, _ := a.Value(other)
	assert.Equal(t, 3, v)

	assert.True(t, a.SetValue(List{}, other, 5).IsZero())
}

func TestSetValueOf(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		old    int
		value  int
		want   []int
	}{
		{"empty", nil, 1, 2, nil},
		{"first match only", []int{1, 2, 1}, 1, 7, []int{7, 2, 1}},
		{"not found", []int{1, 2, 3}, 4, 7, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestArena(t)
			l := a.SetValueOf(mustList(t, a, tt.values...), tt.old, tt.value)
			if diff := cmp.Diff(tt.want, a.ToSlice(l)); diff != "" {
				t.Errorf("SetValueOf mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindNodeDoesNotModify(t *testing.T) {
	a := newTestArena(t)
	l := mustList(t, a, 1, 2, 3)
	middle := nth(t, a, l, 1)

	l, found := a.FindNode(l, middle)
	assert.Equal(t, middle, found)
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice(l))
	assert.Equal(t, nth(t, a, l, 2), a.Next(middle))

	l, found = a.FindNode(l, mustNode(t, a, 2))
	assert.Equal(t, NoNode, found)
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice(l))
}

func TestFindValue(t *testing.T) {
	a := newTestArena(t)
	l := mustList(t, a, 4, 5, 5)

	l, found := a.FindValue(l, 5)
	assert.Equal(t, nth(t, a, l, 1), found)

	_, found = a.FindValue(l, 6)
	assert.Equal(t, NoNode, found)

	_, found = a.FindValue(List{}, 5)
	assert.Equal(t, NoNode, found)
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   []int
	}{
		{"empty", nil, nil},
		{"single", []int{1}, []int{1}},
		{"pair", []int{1, 2}, []int{2, 1}},
		{"several", []int{1, 2, 3, 4, 5}, []int{5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestArena(t)
			l := mustList(t, a, tt.values...)
			tail := NoNode
			if len(tt.values) > 0 {
				tail = nth(t, a, l, len(tt.values)-1)
			}

			r := a.Reverse(l)
			if diff := cmp.Diff(tt.want, a.ToSlice(r)); diff != "" {
				t.Errorf("Reverse mismatch (-want +got):\n%s", diff)
			}
			if r.Head() != tail {
				t.Errorf("Reverse head = %v, want old tail %v", r.Head(), tail)
			}

			back := a.Reverse(r)
			if diff := cmp.Diff(tt.values, a.ToSlice(back)); diff != "" {
				t.Errorf("double Reverse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
