// Package rbtree implements a red-black tree for ordered associative
// containers. A tree is not safe for concurrent use; callers sharing one
// between goroutines must serialize every access, reads included.
package rbtree

import (
	"github.com/cockroachdb/errors"
)

const (
	red color = iota
	black
)

var (
	ErrInvalidIterator = errors.New("rbtree: invalid iterator")
	ErrAllocation      = errors.New("rbtree: node allocation failed")
	ErrInvariant       = errors.New("rbtree: invariant violated")
)

type (
	color uint8

	// Node is a single tree element. Its fields are owned by the tree; an
	// Allocator only hands out and takes back the memory.
	Node[T any] struct {
		color color
		// the tree's own end marker, never carries a value
		sentinel bool
		// handed back to the allocator; iterators still holding it are stale
		released bool
		value    T

		parent *Node[T]
		left   *Node[T]
		right  *Node[T]
	}

	// Tree is a red-black tree of unique values. Create one with New or
	// NewOrdered; a Tree must not be copied after first use.
	Tree[T any] struct {
		root *Node[T]
		// sentinel.left caches the minimum node and sentinel.right the
		// maximum, both nil while the tree is empty or mid-mutation.
		sentinel Node[T]
		size     int

		less   Less[T]
		alloc  Allocator[T]
		format func(T) string
	}

	// Iterator is a position in a tree. Iterators are compared by node
	// identity, so == and Equal agree. Erasing the node an iterator points
	// at invalidates that iterator only.
	Iterator[T any] struct {
		node *Node[T]
		end  *Node[T]
	}

	// ReverseIterator walks a tree from the maximum towards the minimum.
	ReverseIterator[T any] struct {
		node *Node[T]
		end  *Node[T]
	}
)

func (c color) String() string {
	return []string{"R", "B"}[c]
}
