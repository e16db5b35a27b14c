package rbtree

import (
	"golang.org/x/exp/constraints"
)

// Less reports whether a orders before b. It must be a strict weak ordering:
// two values are equivalent, and so duplicates, when neither is less than the other.
type Less[T any] func(a, b T) bool

// Allocator provides the memory for tree nodes. The tree fills in and clears
// the node contents itself, so Allocate may return recycled nodes.
type Allocator[T any] interface {
	Allocate() (*Node[T], error)
	Deallocate(n *Node[T])
}

type Option[T any] func(t *Tree[T])

// WithAllocator makes the tree take its nodes from a instead of the heap.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(t *Tree[T]) {
		if a != nil {
			t.alloc = a
		}
	}
}

// WithFormatter sets how values are printed by Dump and in validation errors.
func WithFormatter[T any](f func(T) string) Option[T] {
	return func(t *Tree[T]) {
		t.format = f
	}
}

func New[T any](less Less[T], opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{
		less:  less,
		alloc: HeapAllocator[T]{},
	}
	t.sentinel.sentinel = true
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewOrdered returns a tree ordered by the < operator of T.
func NewOrdered[T constraints.Ordered](opts ...Option[T]) *Tree[T] {
	return New(func(a, b T) bool { return a < b }, opts...)
}
