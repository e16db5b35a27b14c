package rbtree

import (
	"github.com/cockroachdb/errors"
)

func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *Tree[T]) Empty() bool {
	return t.Len() == 0
}

// Insert adds v unless an equivalent value is present. It returns the
// position of v in the tree and whether it was inserted.
func (t *Tree[T]) Insert(v T) (Iterator[T], bool, error) {
	return t.InsertHint(Iterator[T]{}, v)
}

// InsertHint is Insert with a starting position for the search. When v
// orders right next to hint the search starts there, which makes inserting
// already sorted values amortized constant time. Any other hint, including
// the zero Iterator and End, falls back to a search from the root.
func (t *Tree[T]) InsertHint(hint Iterator[T], v T) (Iterator[T], bool, error) {
	start := t.root
	if hint.end == &t.sentinel {
		if n := t.hintStart(hint.node, v); n != nil {
			start = n
		}
	}

	parent, left, match := t.locate(start, v)
	if match != nil {
		return t.iter(match), false, nil
	}

	// allocate before touching any link so a failure leaves the tree as it was
	n, err := t.alloc.Allocate()
	if err != nil {
		return t.End(), false, errors.Wrap(errors.Mark(err, ErrAllocation), "rbtree: insert")
	}
	*n = Node[T]{color: red, value: v, parent: parent}

	// rotations keep the in-order sequence, so only a new leaf at either
	// end moves the cached borders
	switch {
	case parent == nil:
		t.root = n
		t.sentinel.left, t.sentinel.right = n, n
	case left:
		parent.left = n
		if parent == t.sentinel.left {
			t.sentinel.left = n
		}
	default:
		parent.right = n
		if parent == t.sentinel.right {
			t.sentinel.right = n
		}
	}
	t.balanceAfterInsertion(n)
	t.size++

	return t.iter(n), true, nil
}

// hintStart returns hint when v belongs in the subtree under it.
func (t *Tree[T]) hintStart(hint *Node[T], v T) *Node[T] {
	if hint == nil || hint.sentinel || hint.released {
		return nil
	}
	switch {
	case t.less(v, hint.value):
		if hint == t.sentinel.left {
			return hint
		}
		prev := hint.predecessor(&t.sentinel)
		if prev == &t.sentinel || t.less(prev.value, v) {
			return hint
		}
	case t.less(hint.value, v):
		if hint == t.sentinel.right {
			return hint
		}
		next := hint.successor(&t.sentinel)
		if next == &t.sentinel || t.less(v, next.value) {
			return hint
		}
	default:
		return hint
	}
	return nil
}

// locate descends from n looking for v. It returns the node holding an
// equivalent value, or the parent and side of the empty slot v goes into.
func (t *Tree[T]) locate(n *Node[T], v T) (parent *Node[T], left bool, match *Node[T]) {
	for n != nil {
		parent = n
		switch {
		case t.less(v, n.value):
			n, left = n.left, true
		case t.less(n.value, v):
			n, left = n.right, false
		default:
			return parent, false, n
		}
	}
	return parent, left, nil
}

// Find returns the position of the value equivalent to v, or End.
func (t *Tree[T]) Find(v T) Iterator[T] {
	_, _, match := t.locate(t.root, v)
	if match == nil {
		return t.End()
	}
	return t.iter(match)
}

func (t *Tree[T]) Contains(v T) bool {
	_, _, match := t.locate(t.root, v)
	return match != nil
}

// LowerBound returns the first position whose value is not less than v.
func (t *Tree[T]) LowerBound(v T) Iterator[T] {
	found := &t.sentinel
	for n := t.root; n != nil; {
		if t.less(n.value, v) {
			n = n.right
		} else {
			found, n = n, n.left
		}
	}
	return t.iter(found)
}

// UpperBound returns the first position whose value is greater than v.
func (t *Tree[T]) UpperBound(v T) Iterator[T] {
	found := &t.sentinel
	for n := t.root; n != nil; {
		if t.less(v, n.value) {
			found, n = n, n.left
		} else {
			n = n.right
		}
	}
	return t.iter(found)
}

func (t *Tree[T]) Min() (v T, ok bool) {
	if t.sentinel.left == nil {
		return v, false
	}
	return t.sentinel.left.value, true
}

func (t *Tree[T]) Max() (v T, ok bool) {
	if t.sentinel.right == nil {
		return v, false
	}
	return t.sentinel.right.value, true
}

// Erase removes the value at it and returns the position that followed it.
// Only it is invalidated; iterators to other values stay usable.
func (t *Tree[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	if it.end != &t.sentinel || !it.Valid() {
		return t.End(), errors.Wrap(ErrInvalidIterator, "rbtree: erase")
	}
	n := it.node
	next := n.successor(&t.sentinel)

	t.unlinkBorders()
	t.erase(n)
	t.linkBorders()
	t.size--
	t.release(n)

	return t.iter(next), nil
}

// Delete removes the value equivalent to v and reports whether there was one.
func (t *Tree[T]) Delete(v T) bool {
	it := t.Find(v)
	if !it.Valid() {
		return false
	}
	_, err := t.Erase(it)
	return err == nil
}

// erase splices z out of the tree. A node with two children is replaced by
// its in-order successor node, so no value moves between nodes.
func (t *Tree[T]) erase(z *Node[T]) {
	var x, xParent *Node[T]
	removed := z.color

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		t.replaceChild(z.parent, z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		t.replaceChild(z.parent, z, z.left)
	default:
		y := minimum(z.right)
		removed = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.replaceChild(y.parent, y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.replaceChild(z.parent, z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if removed == black {
		t.balanceAfterDeletion(x, xParent)
	}
}

// Clear releases every node. Calling it on an empty tree does nothing.
func (t *Tree[T]) Clear() {
	if t.root == nil {
		return
	}
	t.unlinkBorders()

	stack := []*Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// children are saved before n is wiped
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		t.release(n)
	}

	t.root = nil
	t.size = 0
}

// Assign replaces the contents of t with the values of src, inserted in order.
func (t *Tree[T]) Assign(src *Tree[T]) error {
	if src == t {
		return nil
	}
	t.Clear()

	pos := t.End()
	for n := src.sentinel.left; n != nil && n != &src.sentinel; n = n.successor(&src.sentinel) {
		it, _, err := t.InsertHint(pos, n.value)
		if err != nil {
			t.Clear()
			return err
		}
		pos = it
	}
	return nil
}

// Clone returns a tree holding the same values, sharing t's ordering and allocator.
func (t *Tree[T]) Clone() (*Tree[T], error) {
	c := New(t.less, WithAllocator(t.alloc), WithFormatter(t.format))
	if err := c.Assign(t); err != nil {
		return nil, err
	}
	return c, nil
}

// Height is the number of nodes on the longest root to leaf path.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// BlackHeight counts the black nodes from the root down to a leaf, root included.
func (t *Tree[T]) BlackHeight() int {
	h := 0
	for n := t.root; n != nil; n = n.left {
		if n.color == black {
			h++
		}
	}
	return h
}

func (t *Tree[T]) release(n *Node[T]) {
	*n = Node[T]{released: true}
	t.alloc.Deallocate(n)
}

func (t *Tree[T]) iter(n *Node[T]) Iterator[T] {
	return Iterator[T]{node: n, end: &t.sentinel}
}

// unlinkBorders drops the cached extremes before a structural change.
func (t *Tree[T]) unlinkBorders() {
	t.sentinel.left = nil
	t.sentinel.right = nil
}

func (t *Tree[T]) linkBorders() {
	if t.root == nil {
		t.unlinkBorders()
		return
	}
	t.sentinel.left = minimum(t.root)
	t.sentinel.right = maximum(t.root)
}
