package rbtree

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Begin returns the position of the minimum, or End when the tree is empty.
func (t *Tree[T]) Begin() Iterator[T] {
	if t.sentinel.left == nil {
		return t.End()
	}
	return t.iter(t.sentinel.left)
}

// End returns the position one past the maximum. It holds no value.
func (t *Tree[T]) End() Iterator[T] {
	return t.iter(&t.sentinel)
}

// RBegin returns a reverse position at the maximum, or REnd when the tree is empty.
func (t *Tree[T]) RBegin() ReverseIterator[T] {
	if t.sentinel.right == nil {
		return t.REnd()
	}
	return ReverseIterator[T]{node: t.sentinel.right, end: &t.sentinel}
}

// REnd returns the reverse position one before the minimum. It shares the
// end marker with End.
func (t *Tree[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{node: &t.sentinel, end: &t.sentinel}
}

// All yields the values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := t.sentinel.left; n != nil && n != &t.sentinel; n = n.successor(&t.sentinel) {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the values in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := t.sentinel.right; n != nil && n != &t.sentinel; n = n.predecessor(&t.sentinel) {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Valid reports whether it points at a value.
func (it Iterator[T]) Valid() bool {
	return it.node != nil && !it.node.sentinel && !it.node.released
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}

func (it Iterator[T]) Value() (v T, err error) {
	if !it.Valid() {
		return v, errors.Wrap(ErrInvalidIterator, "rbtree: dereference")
	}
	return it.node.value, nil
}

// Next moves it to the following position. Moving past End is an error.
func (it *Iterator[T]) Next() error {
	if !it.Valid() {
		return errors.Wrap(ErrInvalidIterator, "rbtree: advance past end")
	}
	it.node = it.node.successor(it.end)
	return nil
}

// Prev moves it to the preceding position. From End it moves to the maximum;
// moving before the minimum is an error and leaves it unchanged.
func (it *Iterator[T]) Prev() error {
	if it.node == nil || it.node.released {
		return errors.Wrap(ErrInvalidIterator, "rbtree: retreat")
	}

	var prev *Node[T]
	if it.node.sentinel {
		prev = it.node.right
	} else if p := it.node.predecessor(it.end); p != it.end {
		prev = p
	}
	if prev == nil {
		return errors.Wrap(ErrInvalidIterator, "rbtree: retreat before begin")
	}
	it.node = prev
	return nil
}

func (it ReverseIterator[T]) Valid() bool {
	return it.node != nil && !it.node.sentinel && !it.node.released
}

func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return it.node == other.node
}

func (it ReverseIterator[T]) Value() (v T, err error) {
	if !it.Valid() {
		return v, errors.Wrap(ErrInvalidIterator, "rbtree: dereference")
	}
	return it.node.value, nil
}

// Next moves towards the minimum, landing on REnd after it.
func (it *ReverseIterator[T]) Next() error {
	if !it.Valid() {
		return errors.Wrap(ErrInvalidIterator, "rbtree: advance past rend")
	}
	it.node = it.node.predecessor(it.end)
	return nil
}

// Prev moves towards the maximum. From REnd it moves to the minimum.
func (it *ReverseIterator[T]) Prev() error {
	if it.node == nil || it.node.released {
		return errors.Wrap(ErrInvalidIterator, "rbtree: retreat")
	}

	var next *Node[T]
	if it.node.sentinel {
		next = it.node.left
	} else if n := it.node.successor(it.end); n != it.end {
		next = n
	}
	if next == nil {
		return errors.Wrap(ErrInvalidIterator, "rbtree: retreat before rbegin")
	}
	it.node = next
	return nil
}

// Base returns the forward iterator at the same position.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return Iterator[T]{node: it.node, end: it.end}
}
