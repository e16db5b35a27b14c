package rbtree

// Value returns the payload stored in n.
func (n *Node[T]) Value() T {
	return n.value
}

// absent children count as black
func (n *Node[T]) isRed() bool {
	return n != nil && n.color == red
}

func (n *Node[T]) isBlack() bool {
	return !n.isRed()
}

// find the leftmost node under n
func minimum[T any](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum[T any](n *Node[T]) *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the next node in order, or end when n is the maximum.
func (n *Node[T]) successor(end *Node[T]) *Node[T] {
	if n.right != nil {
		return minimum(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	if p == nil {
		return end
	}
	return p
}

// predecessor returns the previous node in order, or end when n is the minimum.
func (n *Node[T]) predecessor(end *Node[T]) *Node[T] {
	if n.left != nil {
		return maximum(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	if p == nil {
		return end
	}
	return p
}

// sibling of n under parent; n may be nil when it is an empty child slot
func sibling[T any](n, parent *Node[T]) *Node[T] {
	if n == parent.left {
		return parent.right
	}
	return parent.left
}
