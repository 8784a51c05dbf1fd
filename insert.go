package linkedlist

// detached reports whether n can be linked into a list: it must be live and
// have no predecessor.
func (a *Arena) detached(n NodeID) bool {
	nd := a.get(n)
	return nd != nil && !nd.linked
}

// insertArgs normalizes the empty combinations shared by the insert
// operations. It returns the list to hand back and false when the insert
// cannot proceed.
func (a *Arena) insertArgs(l List, n NodeID) (head NodeID, result List, ok bool) {
	head = a.head(l)
	canLink := a.detached(n)

	switch {
	case head == NoNode && !canLink:
		return NoNode, List{}, false
	case head == NoNode:
		return NoNode, listOf(n), false
	case !canLink, n == head:
		return head, listOf(head), false
	}
	return head, listOf(head), true
}

// InsertHead makes n the first node of l and returns the new list.
// If l is empty, n alone becomes the list; if n is unusable, l is returned.
// Any successors n previously had are cut off.
func (a *Arena) InsertHead(l List, n NodeID) List {
	head, result, ok := a.insertArgs(l, n)
	if !ok {
		return result
	}
	a.setNext(n, head)
	return listOf(n)
}

// InsertTail links n, together with any chain that follows it, after the last
// node of l.
func (a *Arena) InsertTail(l List, n NodeID) List {
	_, result, ok := a.insertArgs(l, n)
	if !ok {
		return result
	}
	a.setNext(a.last(result), n)
	return result
}

// InsertAfter links n immediately after anchor. If anchor is not in l, l is
// returned unchanged. Any successors n previously had are cut off.
func (a *Arena) InsertAfter(l List, anchor, n NodeID) List {
	_, result, ok := a.insertArgs(l, n)
	if !ok || !a.Contains(result, anchor) {
		return result
	}

	after := a.get(anchor).next
	a.setNext(anchor, n)
	a.setNext(n, after)
	return result
}

// InsertBefore links n immediately before anchor, found by looking one node
// ahead for a successor equal to anchor. The head has no predecessor, so an
// anchor that is the head, or is not in l, leaves l unchanged; use InsertHead
// to prepend. Any successors n previously had are cut off.
func (a *Arena) InsertBefore(l List, anchor, n NodeID) List {
	_, result, ok := a.insertArgs(l, n)
	if !ok || anchor == NoNode {
		return result
	}

	prev := NoNode
	a.each(result, func(id NodeID, nd *node) bool {
		if nd.next == anchor {
			prev = id
			return false
		}
		return true
	})
	if prev == NoNode {
		return result
	}

	a.setNext(prev, n)
	a.setNext(n, anchor)
	return result
}

// Concatenate appends l2 after the last node of l1 and returns the joined
// list. If either list is empty the other is returned.
func (a *Arena) Concatenate(l1, l2 List) List {
	h1, h2 := a.head(l1), a.head(l2)
	switch {
	case h1 == NoNode && h2 == NoNode:
		return List{}
	case h1 == NoNode:
		return listOf(h2)
	case h2 == NoNode:
		return listOf(h1)
	}
	return a.InsertTail(listOf(h1), h2)
}
