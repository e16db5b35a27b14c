package rbtree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

const emptyDump = "(empty)"

// Dump renders the shape of t, one node per line as "value (colour)". Child
// lines are prefixed with L or R, since a lone child could be either.
func (t *Tree[T]) Dump() string {
	if t.root == nil {
		return treeprint.NewWithRoot(emptyDump).String()
	}

	root := treeprint.NewWithRoot(t.label("", t.root))
	t.dump(root, t.root)
	return root.String()
}

func (t *Tree[T]) dump(branch treeprint.Tree, n *Node[T]) {
	children := [...]struct {
		side string
		node *Node[T]
	}{{"L", n.left}, {"R", n.right}}

	for _, c := range children {
		if c.node == nil {
			continue
		}
		if c.node.left == nil && c.node.right == nil {
			branch.AddNode(t.label(c.side, c.node))
			continue
		}
		t.dump(branch.AddBranch(t.label(c.side, c.node)), c.node)
	}
}

func (t *Tree[T]) label(side string, n *Node[T]) string {
	l := fmt.Sprintf("%s (%s)", t.formatValue(n.value), n.color)
	if side == "" {
		return l
	}
	return side + " " + l
}
