package rbtree

import (
	"sync"

	"github.com/cockroachdb/errors"
)

const defaultSlabSize = 64

// HeapAllocator allocates every node separately and leaves reclaiming them to the GC.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Allocate() (*Node[T], error) {
	return new(Node[T]), nil
}

func (HeapAllocator[T]) Deallocate(*Node[T]) {}

// PoolAllocator recycles released nodes through a sync.Pool.
type PoolAllocator[T any] struct {
	pool sync.Pool
}

func NewPoolAllocator[T any]() *PoolAllocator[T] {
	return &PoolAllocator[T]{
		pool: sync.Pool{New: func() any { return new(Node[T]) }},
	}
}

func (p *PoolAllocator[T]) Allocate() (*Node[T], error) {
	if n, ok := p.pool.Get().(*Node[T]); ok {
		return n, nil
	}
	return new(Node[T]), nil
}

func (p *PoolAllocator[T]) Deallocate(n *Node[T]) {
	p.pool.Put(n)
}

// SlabAllocator carves nodes out of fixed size slabs and keeps released
// nodes on a free list. Slabs are never returned, so memory stays at the high
// water mark until the allocator itself is dropped.
type SlabAllocator[T any] struct {
	slabSize int
	slabs    [][]Node[T]
	// next unused index in the last slab
	next int
	free []*Node[T]
}

func NewSlabAllocator[T any](slabSize int) *SlabAllocator[T] {
	if slabSize <= 0 {
		slabSize = defaultSlabSize
	}
	return &SlabAllocator[T]{slabSize: slabSize, next: slabSize}
}

func (s *SlabAllocator[T]) Allocate() (*Node[T], error) {
	if l := len(s.free); l > 0 {
		n := s.free[l-1]
		s.free = s.free[:l-1]
		return n, nil
	}
	if s.next == s.slabSize {
		s.slabs = append(s.slabs, make([]Node[T], s.slabSize))
		s.next = 0
	}
	n := &s.slabs[len(s.slabs)-1][s.next]
	s.next++
	return n, nil
}

func (s *SlabAllocator[T]) Deallocate(n *Node[T]) {
	s.free = append(s.free, n)
}

func (s *SlabAllocator[T]) Slabs() int {
	return len(s.slabs)
}

// LimitAllocator caps the number of live nodes handed out by another
// allocator. Once the budget is used up Allocate fails with ErrAllocation.
type LimitAllocator[T any] struct {
	alloc Allocator[T]
	limit int
	inUse int
}

func NewLimitAllocator[T any](alloc Allocator[T], limit int) *LimitAllocator[T] {
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	return &LimitAllocator[T]{alloc: alloc, limit: limit}
}

func (l *LimitAllocator[T]) Allocate() (*Node[T], error) {
	if l.inUse >= l.limit {
		return nil, errors.Wrapf(ErrAllocation, "node budget of %d exhausted", l.limit)
	}
	n, err := l.alloc.Allocate()
	if err != nil {
		return nil, err
	}
	l.inUse++
	return n, nil
}

func (l *LimitAllocator[T]) Deallocate(n *Node[T]) {
	l.inUse--
	l.alloc.Deallocate(n)
}

func (l *LimitAllocator[T]) InUse() int {
	return l.inUse
}
