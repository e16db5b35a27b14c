package rbtree

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Validate checks the structure of t: parent links, strict ordering, the
// colour rules, the node count and the cached minimum and maximum. Any
// failure is marked with ErrInvariant.
func (t *Tree[T]) Validate() error {
	if t.root == nil {
		if t.size != 0 {
			return invariantf("empty tree reports size %d", t.size)
		}
		if t.sentinel.left != nil || t.sentinel.right != nil {
			return invariantf("empty tree has cached borders")
		}
		return nil
	}

	if t.root.parent != nil {
		return invariantf("root %s has a parent", t.formatValue(t.root.value))
	}
	if t.root.color != black {
		return invariantf("root %s is red", t.formatValue(t.root.value))
	}

	c := checker[T]{tree: t}
	if _, err := c.check(t.root); err != nil {
		return err
	}
	if c.count != t.size {
		return invariantf("tree holds %d nodes but reports size %d", c.count, t.size)
	}
	if t.sentinel.left != minimum(t.root) {
		return invariantf("cached minimum is stale")
	}
	if t.sentinel.right != maximum(t.root) {
		return invariantf("cached maximum is stale")
	}
	return nil
}

type checker[T any] struct {
	tree  *Tree[T]
	prev  *Node[T]
	count int
}

// check walks the subtree in order and returns its black height.
func (c *checker[T]) check(n *Node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	t := c.tree
	if n.sentinel {
		return 0, invariantf("end marker linked into the tree")
	}
	if n.left != nil && n.left.parent != n {
		return 0, invariantf("left child of %s has a wrong parent", t.formatValue(n.value))
	}
	if n.right != nil && n.right.parent != n {
		return 0, invariantf("right child of %s has a wrong parent", t.formatValue(n.value))
	}
	if n.isRed() && (n.left.isRed() || n.right.isRed()) {
		return 0, invariantf("red node %s has a red child", t.formatValue(n.value))
	}

	lh, err := c.check(n.left)
	if err != nil {
		return 0, err
	}

	if c.prev != nil && !t.less(c.prev.value, n.value) {
		return 0, invariantf("%s is not ordered after %s", t.formatValue(n.value), t.formatValue(c.prev.value))
	}
	c.prev = n
	c.count++

	rh, err := c.check(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, invariantf("black heights under %s differ: %d left, %d right", t.formatValue(n.value), lh, rh)
	}

	if n.color == black {
		lh++
	}
	return lh, nil
}

func invariantf(format string, args ...any) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrInvariant)
}

func (t *Tree[T]) formatValue(v T) string {
	if t.format != nil {
		return t.format(v)
	}
	return fmt.Sprint(v)
}
