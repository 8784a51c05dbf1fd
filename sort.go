package linkedlist

// sortTask is one pending chain on the Sort work stack.
type sortTask struct {
	head NodeID

	// final marks a chain that is already in order (an equal-to-pivot bucket).
	final bool
}

// Sort orders l by value and returns the sorted list.
//
// Each pass takes the head's value as pivot and moves every node into a
// less, equal or greater bucket by head insertion, so equal values are grouped
// but their original order is not kept. The result is less + equal + greater.
// The partitioning is quicksort: O(n log n) on average and O(n²) when pivots
// are consistently extreme, as for already sorted input. Pending buckets are
// kept on an explicit stack rather than the call stack.
func (a *Arena) Sort(l List) List {
	head := a.head(l)
	if head == NoNode || a.get(head).next == NoNode {
		return listOf(head)
	}

	var out, tail NodeID
	emit := func(chain NodeID) {
		if out == NoNode {
			out = chain
		} else {
			a.setNext(tail, chain)
		}
		tail = chain
		for next := a.get(tail).next; next != NoNode; next = a.get(tail).next {
			tail = next
		}
	}

	stack := []sortTask{{head: head}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if task.head == NoNode {
			continue
		}
		if task.final || a.get(task.head).next == NoNode {
			emit(task.head)
			continue
		}

		less, equal, greater := a.partition(task.head)
		stack = append(stack,
			sortTask{head: greater.head},
			sortTask{head: equal.head, final: true},
			sortTask{head: less.head},
		)
	}
	return listOf(out)
}

// partition consumes the chain at head and distributes its nodes around the
// head's value.
func (a *Arena) partition(head NodeID) (less, equal, greater List) {
	pivot := a.get(head).value
	cur := head
	for cur != NoNode {
		n := a.get(cur)
		next := n.next
		a.setNext(cur, NoNode)

		switch {
		case n.value < pivot:
			less = a.InsertHead(less, cur)
		case n.value == pivot:
			equal = a.InsertHead(equal, cur)
		default:
			greater = a.InsertHead(greater, cur)
		}
		cur = next
	}
	return less, equal, greater
}
