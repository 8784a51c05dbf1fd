package linkedlist

// NodeID identifies a node within an Arena.
// The low 32 bits hold the slot index and the high 32 bits its generation.
// The zero NodeID never refers to a node.
type NodeID uint64

// NoNode is the zero handle, used wherever an operation has no node to return.
const NoNode NodeID = 0

// DefaultValue is the value given to default nodes and returned by Max and Min
// on an empty list, unless the arena was configured otherwise.
const DefaultValue = 0

func makeNodeID(index, gen uint32) NodeID {
	return NodeID(uint64(gen)<<32 | uint64(index))
}

func (id NodeID) index() uint32 {
	return uint32(id)
}

func (id NodeID) generation() uint32 {
	return uint32(id >> 32)
}

// node is one arena slot.
type node struct {
	value int
	next  NodeID

	// gen is bumped every time the slot is freed, invalidating old handles.
	gen uint32

	// live is false for slots sitting on the free list.
	live bool

	// linked is true while some other node's next points here.
	// The arena keeps at most one predecessor per node.
	linked bool
}
