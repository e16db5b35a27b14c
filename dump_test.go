package rbtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	tree := NewOrdered[int]()
	assert.Contains(t, tree.Dump(), emptyDump)

	insertAll(t, tree, 5, 2, 8, 1)
	out := tree.Dump()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if assert.Len(t, lines, 4) {
		assert.Equal(t, "5 (B)", lines[0])
		assert.True(t, strings.HasSuffix(lines[1], "L 2 (B)"), lines[1])
		assert.True(t, strings.HasSuffix(lines[2], "L 1 (R)"), lines[2])
		assert.True(t, strings.HasSuffix(lines[3], "R 8 (B)"), lines[3])
	}
}

func TestDumpFormatter(t *testing.T) {
	type pair struct {
		key string
		val int
	}
	tree := New(func(a, b pair) bool { return a.key < b.key },
		WithFormatter(func(p pair) string { return p.key + "=" + string(rune('0'+p.val)) }))
	insertAll(t, tree, pair{"b", 2}, pair{"a", 1})

	out := tree.Dump()
	assert.Contains(t, out, "b=2 (B)")
	assert.Contains(t, out, "L a=1 (R)")
}
