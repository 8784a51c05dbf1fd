package linkedlist

// matcher selects a node during a traversal.
type matcher func(id NodeID, n *node) bool

func byIdentity(target NodeID) matcher {
	return func(id NodeID, _ *node) bool { return id == target }
}

func byValue(value int) matcher {
	return func(_ NodeID, n *node) bool { return n.value == value }
}

// find returns the first node of l accepted by match, or NoNode.
func (a *Arena) find(l List, match matcher) NodeID {
	found := NoNode
	a.each(l, func(id NodeID, n *node) bool {
		if match(id, n) {
			found = id
			return false
		}
		return true
	})
	return found
}

// splitAfter cuts l after the first node accepted by match.
func (a *Arena) splitAfter(l List, match matcher) (List, List) {
	head := a.head(l)
	if head == NoNode {
		return List{}, List{}
	}

	at := a.find(listOf(head), match)
	if at == NoNode {
		return listOf(head), List{}
	}

	rest := a.get(at).next
	a.setNext(at, NoNode)
	return listOf(head), listOf(rest)
}

// SplitAtNode splits l into the nodes up to and including n, and the nodes
// after n. If n is not in l, the result is (l, empty).
func (a *Arena) SplitAtNode(l List, n NodeID) (List, List) {
	return a.splitAfter(l, byIdentity(n))
}

// SplitAtValue splits l after the first node whose value equals key.
// If no node matches, the result is (l, empty).
func (a *Arena) SplitAtValue(l List, key int) (List, List) {
	return a.splitAfter(l, byValue(key))
}

// remove unlinks the first node accepted by match and returns the remaining
// list together with the detached node.
func (a *Arena) remove(l List, match matcher) (List, NodeID) {
	head := a.head(l)
	if head == NoNode {
		return List{}, NoNode
	}

	if match(head, a.get(head)) {
		next := a.get(head).next
		a.setNext(head, NoNode)
		return listOf(next), head
	}

	prev := NoNode
	a.each(listOf(head), func(id NodeID, n *node) bool {
		if nx := a.get(n.next); nx != nil && match(n.next, nx) {
			prev = id
			return false
		}
		return true
	})
	if prev == NoNode {
		return listOf(head), NoNode
	}

	target := a.get(prev).next
	after := a.get(target).next
	a.setNext(target, NoNode)
	a.setNext(prev, after)
	return listOf(head), target
}

// RemoveNode detaches n from l. It returns the remaining list and n, now with
// no successor and owned by the caller. If n is not in l, the result is
// (l, NoNode).
func (a *Arena) RemoveNode(l List, n NodeID) (List, NodeID) {
	if n == NoNode {
		return listOf(a.head(l)), NoNode
	}
	return a.remove(l, byIdentity(n))
}

// RemoveValue detaches the first node of l holding value.
// If no node matches, the result is (l, NoNode).
func (a *Arena) RemoveValue(l List, value int) (List, NodeID) {
	return a.remove(l, byValue(value))
}
