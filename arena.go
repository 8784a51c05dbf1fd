package linkedlist

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configures an Arena.
type Options struct {
	// MaxNodes caps the number of live nodes. 0 means unlimited.
	// Allocations beyond the cap fail with ErrOutOfMemory.
	MaxNodes int

	// DefaultValue is used by CreateDefaultNode and returned by Max and Min
	// for an empty list. Zero keeps the package DefaultValue.
	DefaultValue int

	// Logger receives arena diagnostics. nil disables logging.
	Logger *zap.Logger
}

// ArenaStats contains node accounting for an Arena.
type ArenaStats struct {
	LiveNodes   int    // nodes currently allocated
	FreeSlots   int    // released slots waiting to be reused
	MaxNodes    int    // configured limit (0 = unlimited)
	Allocations uint64 // nodes allocated over the arena's lifetime
	Releases    uint64 // nodes released over the arena's lifetime
}

// Arena owns the nodes of any number of lists.
// An Arena is not safe for concurrent use; each list has a single owner.
type Arena struct {
	id  string
	log *zap.Logger

	maxNodes     int
	defaultValue int

	// slots[0] is reserved so that the zero NodeID never resolves.
	slots []node
	free  []uint32
	live  int

	allocations uint64
	releases    uint64
}

// New creates an empty Arena.
func New(options Options) (*Arena, error) {
	if options.MaxNodes < 0 {
		return nil, ErrInvalidOptions
	}

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Arena{
		id:           uuid.NewString(),
		maxNodes:     options.MaxNodes,
		defaultValue: DefaultValue,
		slots:        make([]node, 1),
	}
	if options.DefaultValue != 0 {
		a.defaultValue = options.DefaultValue
	}
	a.log = logger.With(zap.String("arena", a.id))
	a.log.Debug("arena created",
		zap.Int("max_nodes", a.maxNodes),
		zap.Int("default_value", a.defaultValue))

	return a, nil
}

// ID returns the arena's unique identifier.
func (a *Arena) ID() string {
	return a.id
}

// Default returns the value used for default nodes and empty-list reductions.
func (a *Arena) Default() int {
	return a.defaultValue
}

// get resolves a handle, returning nil for zero, foreign or stale handles.
func (a *Arena) get(id NodeID) *node {
	idx := id.index()
	if idx == 0 || int(idx) >= len(a.slots) {
		return nil
	}
	n := &a.slots[idx]
	if !n.live || n.gen != id.generation() {
		return nil
	}
	return n
}

// alloc takes a slot from the free list or grows the slot table.
func (a *Arena) alloc(value int) (NodeID, error) {
	if a.maxNodes > 0 && a.live >= a.maxNodes {
		a.log.Warn("node allocation refused",
			zap.Int("live", a.live),
			zap.Int("max_nodes", a.maxNodes))
		return NoNode, ErrOutOfMemory
	}

	var idx uint32
	if k := len(a.free); k > 0 {
		idx = a.free[k-1]
		a.free = a.free[:k-1]
	} else {
		a.slots = append(a.slots, node{})
		idx = uint32(len(a.slots) - 1)
	}

	n := &a.slots[idx]
	n.gen++
	if n.gen == 0 {
		// Generation 0 is never issued.
		n.gen = 1
	}
	n.value = value
	n.next = NoNode
	n.live = true
	n.linked = false

	a.live++
	a.allocations++
	return makeNodeID(idx, n.gen), nil
}

// release returns a node's slot to the free list. The caller is responsible
// for the node's neighbours.
func (a *Arena) release(id NodeID) {
	n := a.get(id)
	if n == nil {
		return
	}
	n.live = false
	n.linked = false
	n.next = NoNode
	n.gen++
	a.free = append(a.free, id.index())
	a.live--
	a.releases++
}

// setNext makes to the successor of from and keeps the linked marks consistent.
func (a *Arena) setNext(from, to NodeID) {
	f := a.get(from)
	if f == nil {
		return
	}
	if old := a.get(f.next); old != nil {
		old.linked = false
	}
	f.next = NoNode
	if t := a.get(to); t != nil {
		t.linked = true
		f.next = to
	}
}

// Valid reports whether id refers to a live node of this arena.
func (a *Arena) Valid(id NodeID) bool {
	return a.get(id) != nil
}

// Value returns the value stored in a node.
func (a *Arena) Value(id NodeID) (int, error) {
	n := a.get(id)
	if n == nil {
		return 0, ErrStaleNode
	}
	return n.value, nil
}

// Next returns the node's successor, or NoNode at the end of a chain or for
// a stale handle.
func (a *Arena) Next(id NodeID) NodeID {
	n := a.get(id)
	if n == nil {
		return NoNode
	}
	return n.next
}

// Free releases a single node. The node must not have a predecessor; nodes
// returned by RemoveNode and RemoveValue qualify. If the node still has a
// successor, that successor becomes the head of its own chain.
func (a *Arena) Free(id NodeID) error {
	n := a.get(id)
	if n == nil {
		return ErrStaleNode
	}
	if n.linked {
		return ErrNodeLinked
	}
	a.setNext(id, NoNode)
	a.release(id)
	return nil
}

// Reset releases every node in the arena. All outstanding handles become stale.
func (a *Arena) Reset() int {
	released := 0
	for i := 1; i < len(a.slots); i++ {
		n := &a.slots[i]
		if !n.live {
			continue
		}
		a.release(makeNodeID(uint32(i), n.gen))
		released++
	}
	a.log.Debug("arena reset", zap.Int("released", released))
	return released
}

// Stats returns node accounting for the arena.
func (a *Arena) Stats() ArenaStats {
	return ArenaStats{
		LiveNodes:   a.live,
		FreeSlots:   len(a.free),
		MaxNodes:    a.maxNodes,
		Allocations: a.allocations,
		Releases:    a.releases,
	}
}
