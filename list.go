package linkedlist

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// List is a singly-linked list identified only by its head node.
// The zero List is empty.
//
// Operations that change a list's structure return the new List; the value
// passed in must not be used again. A List whose head has since been linked
// behind another node, or freed, is treated as empty by every operation.
type List struct {
	head NodeID
}

// Head returns the list's head node, or NoNode for an empty list.
func (l List) Head() NodeID {
	return l.head
}

// IsZero reports whether the list holds no head handle at all.
func (l List) IsZero() bool {
	return l.head == NoNode
}

// head resolves the authoritative head of l, or NoNode if l is empty or stale.
func (a *Arena) head(l List) NodeID {
	n := a.get(l.head)
	if n == nil || n.linked {
		return NoNode
	}
	return l.head
}

// AsList returns the list headed by id. A stale handle, or a node that has a
// predecessor, yields the empty list.
func (a *Arena) AsList(id NodeID) List {
	return listOf(a.head(List{head: id}))
}

// listOf returns the list headed by id without checking it.
func listOf(id NodeID) List {
	return List{head: id}
}

// CreateNode allocates a detached node holding value.
func (a *Arena) CreateNode(value int) (NodeID, error) {
	return a.alloc(value)
}

// CreateDefaultNode allocates a detached node holding the arena default value.
func (a *Arena) CreateDefaultNode() (NodeID, error) {
	return a.alloc(a.defaultValue)
}

// CreateList builds a list holding values in order. An empty or nil slice
// yields the empty list. If the arena runs out of room part way through, the
// nodes created so far are released and ErrOutOfMemory is returned.
func (a *Arena) CreateList(values []int) (List, error) {
	if len(values) == 0 {
		return List{}, nil
	}

	head, err := a.alloc(values[0])
	if err != nil {
		return List{}, err
	}
	tail := head
	for _, v := range values[1:] {
		n, err := a.alloc(v)
		if err != nil {
			a.Clear(listOf(head))
			return List{}, err
		}
		a.setNext(tail, n)
		tail = n
	}
	return listOf(head), nil
}

// Clear releases every node of l and returns how many were released.
// Clearing an empty list is a no-op.
func (a *Arena) Clear(l List) int {
	cur := a.head(l)
	released := 0
	for cur != NoNode {
		n := a.get(cur)
		if n == nil {
			break
		}
		next := n.next
		a.release(cur)
		released++
		cur = next
	}
	if released > 0 {
		a.log.Debug("list cleared", zap.Int("released", released))
	}
	return released
}

// IsEmpty reports whether l has no nodes.
func (a *Arena) IsEmpty(l List) bool {
	return a.head(l) == NoNode
}

// each calls fn for every node of l in order until fn returns false.
func (a *Arena) each(l List, fn func(id NodeID, n *node) bool) {
	cur := a.head(l)
	for cur != NoNode {
		n := a.get(cur)
		if n == nil || !fn(cur, n) {
			return
		}
		cur = n.next
	}
}

// Length returns the number of nodes in l.
func (a *Arena) Length(l List) int {
	length := 0
	a.each(l, func(NodeID, *node) bool {
		length++
		return true
	})
	return length
}

// Contains reports whether n is one of l's nodes.
func (a *Arena) Contains(l List, n NodeID) bool {
	found := false
	a.each(l, func(id NodeID, _ *node) bool {
		found = id == n
		return !found
	})
	return found
}

// last returns the final node of l, or NoNode for an empty list.
func (a *Arena) last(l List) NodeID {
	tail := NoNode
	a.each(l, func(id NodeID, _ *node) bool {
		tail = id
		return true
	})
	return tail
}

// ToSlice copies l's values into a slice of exactly Length(l) elements.
// It returns nil for an empty list.
func (a *Arena) ToSlice(l List) []int {
	length := a.Length(l)
	if length == 0 {
		return nil
	}
	values := make([]int, 0, length)
	a.each(l, func(_ NodeID, n *node) bool {
		values = append(values, n.value)
		return true
	})
	return values
}

// Format renders l as "[1, 2, 3]". An empty list renders as "[]", not as an
// empty string.
func (a *Arena) Format(l List) string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	a.each(l, func(_ NodeID, n *node) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(strconv.Itoa(n.value))
		return true
	})
	b.WriteByte(']')
	return b.String()
}
