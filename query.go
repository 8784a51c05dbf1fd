package linkedlist

// SetValue overwrites the value of n if it belongs to l.
func (a *Arena) SetValue(l List, n NodeID, value int) List {
	if at := a.find(l, byIdentity(n)); at != NoNode {
		a.get(at).value = value
	}
	return listOf(a.head(l))
}

// SetValueOf overwrites the first node of l holding old with value.
func (a *Arena) SetValueOf(l List, old, value int) List {
	if at := a.find(l, byValue(old)); at != NoNode {
		a.get(at).value = value
	}
	return listOf(a.head(l))
}

// FindNode returns l together with n if n belongs to l, or NoNode otherwise.
// The list is not modified; use SplitAtNode to cut it after n.
func (a *Arena) FindNode(l List, n NodeID) (List, NodeID) {
	return listOf(a.head(l)), a.find(l, byIdentity(n))
}

// FindValue returns l together with its first node holding value, or NoNode.
func (a *Arena) FindValue(l List, value int) (List, NodeID) {
	return listOf(a.head(l)), a.find(l, byValue(value))
}

// Reverse reverses l in place and returns the list headed by its old tail.
func (a *Arena) Reverse(l List) List {
	prev := NoNode
	cur := a.head(l)
	for cur != NoNode {
		next := a.get(cur).next
		a.setNext(cur, prev)
		prev = cur
		cur = next
	}
	return listOf(prev)
}

// Max returns the largest value in l, or the arena default for an empty list.
func (a *Arena) Max(l List) int {
	return a.reduce(l, func(best, v int) bool { return v > best })
}

// Min returns the smallest value in l, or the arena default for an empty list.
func (a *Arena) Min(l List) int {
	return a.reduce(l, func(best, v int) bool { return v < best })
}

func (a *Arena) reduce(l List, better func(best, v int) bool) int {
	head := a.get(a.head(l))
	if head == nil {
		return a.defaultValue
	}
	best := head.value
	a.each(l, func(_ NodeID, n *node) bool {
		if better(best, n.value) {
			best = n.value
		}
		return true
	})
	return best
}

// Count returns how many nodes of l hold value.
func (a *Arena) Count(l List, value int) int {
	count := 0
	a.each(l, func(_ NodeID, n *node) bool {
		if n.value == value {
			count++
		}
		return true
	})
	return count
}
