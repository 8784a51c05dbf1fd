// Package linkedlist provides a singly-linked list of integers whose nodes live
// in an arena and are addressed by generation-checked handles.
package linkedlist

import "errors"

// Allocation errors
var (
	// ErrOutOfMemory indicates that the arena refused to allocate another node
	// because its configured node limit was reached.
	ErrOutOfMemory = errors.New("node allocation failed: arena limit reached")
)

// Handle errors
var (
	// ErrStaleNode indicates that a NodeID is zero, was never issued by this
	// arena, or refers to a node that has since been freed.
	ErrStaleNode = errors.New("stale or unknown node handle")

	// ErrNodeLinked indicates that a node still has a predecessor and cannot
	// be freed individually.
	ErrNodeLinked = errors.New("node is still linked into a list")
)

// Configuration errors
var (
	// ErrInvalidOptions indicates that arena options are out of range.
	ErrInvalidOptions = errors.New("invalid arena options")
)
