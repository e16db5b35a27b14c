package rbtree

// rotateLeft moves x's right child y into x's place, x becomes y's left child
// and y's old left subtree is reattached as x's right subtree.
func (t *Tree[T]) rotateLeft(x *Node[T]) {
	y := x.right

	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x.parent, x, y)
	y.left = x
	x.parent = y
}

func (t *Tree[T]) rotateRight(x *Node[T]) {
	y := x.left

	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceChild(x.parent, x, y)
	y.right = x
	x.parent = y
}

// replaceChild puts n where old hangs off parent, or at the root when parent is nil.
func (t *Tree[T]) replaceChild(parent, old, n *Node[T]) {
	switch {
	case parent == nil:
		t.root = n
	case parent.left == old:
		parent.left = n
	default:
		parent.right = n
	}
	if n != nil {
		n.parent = parent
	}
}

// balanceAfterInsertion restores the colour rules after the red node n was
// attached. The only possible violation is a red n under a red parent.
func (t *Tree[T]) balanceAfterInsertion(n *Node[T]) {
	for {
		parent := n.parent

		// n is the root
		if parent == nil {
			n.color = black
			return
		}
		// nothing to fix
		if parent.color == black {
			return
		}

		grand := parent.parent
		// red root with a red child
		if grand == nil {
			parent.color = black
			return
		}

		uncle := sibling(parent, grand)
		if uncle.isRed() {
			// push the red up and retry from the grandparent
			parent.color = black
			uncle.color = black
			grand.color = red
			n = grand
			continue
		}

		if parent == grand.left {
			// inner grandchild: straighten the zig-zag first
			if n == parent.right {
				t.rotateLeft(parent)
				n, parent = parent, n
			}
			t.rotateRight(grand)
		} else {
			if n == parent.left {
				t.rotateRight(parent)
				n, parent = parent, n
			}
			t.rotateLeft(grand)
		}
		parent.color = black
		grand.color = red
		return
	}
}

// balanceAfterDeletion resolves the missing black on the path through x after
// a black node was spliced out. x may be nil, so its parent is passed along.
func (t *Tree[T]) balanceAfterDeletion(x, parent *Node[T]) {
	for x != t.root && x.isBlack() {
		if x == parent.left {
			w := parent.right
			if w.isRed() {
				w.color = black
				parent.color = red
				t.rotateLeft(parent)
				w = parent.right
			}
			if w.left.isBlack() && w.right.isBlack() {
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if w.right.isBlack() {
				// near child is red: turn it into the far one
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = parent.right
			}
			w.color = parent.color
			parent.color = black
			w.right.color = black
			t.rotateLeft(parent)
			x = t.root
		} else {
			w := parent.left
			if w.isRed() {
				w.color = black
				parent.color = red
				t.rotateRight(parent)
				w = parent.left
			}
			if w.left.isBlack() && w.right.isBlack() {
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if w.left.isBlack() {
				w.right.color = black
				w.color = red
				t.rotateLeft(w)
				w = parent.left
			}
			w.color = parent.color
			parent.color = black
			w.left.color = black
			t.rotateRight(parent)
			x = t.root
		}
	}
	if x != nil {
		x.color = black
	}
}
