package rbtree

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorForward(t *testing.T) {
	tree := NewOrdered[int]()
	insertAll(t, tree, 5, 3, 8, 1, 4, 7, 9)

	var got []int
	for it := tree.Begin(); it != tree.End(); {
		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, v)
		require.NoError(t, it.Next())
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, got)

	end := tree.End()
	err := end.Next()
	assert.True(t, errors.Is(err, ErrInvalidIterator))
	assert.Equal(t, tree.End(), end)
}

func TestIteratorBackward(t *testing.T) {
	tree := NewOrdered[int]()
	insertAll(t, tree, 5, 3, 8, 1, 4, 7, 9)

	var got []int
	it := tree.End()
	for it != tree.Begin() {
		require.NoError(t, it.Prev())
		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{9, 8, 7, 5, 4, 3, 1}, got)

	// stepping before the minimum fails and leaves the iterator in place
	err := it.Prev()
	assert.True(t, errors.Is(err, ErrInvalidIterator))
	assert.Equal(t, tree.Begin(), it)
}

func TestIteratorInvalid(t *testing.T) {
	var zero Iterator[int]
	assert.False(t, zero.Valid())
	_, err := zero.Value()
	assert.True(t, errors.Is(err, ErrInvalidIterator))
	assert.True(t, errors.Is(zero.Next(), ErrInvalidIterator))
	assert.True(t, errors.Is(zero.Prev(), ErrInvalidIterator))

	empty := NewOrdered[int]()
	end := empty.End()
	assert.True(t, errors.Is(end.Prev(), ErrInvalidIterator))
	assert.True(t, errors.Is(end.Next(), ErrInvalidIterator))
}

func TestIteratorEquality(t *testing.T) {
	tree := NewOrdered[string]()
	insertAll(t, tree, "a", "b", "c")

	a := tree.Find("b")
	b := tree.Begin()
	require.NoError(t, b.Next())
	assert.True(t, a == b)
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Next())
	assert.False(t, a == b)
	assert.False(t, a.Equal(b))
}

func TestIteratorSurvivesInsertions(t *testing.T) {
	tree := NewOrdered[int]()
	insertAll(t, tree, 10, 20, 30)
	it := tree.Find(20)

	for i := 0; i < 100; i++ {
		insertAll(t, tree, i*3+1)
	}
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	require.NoError(t, it.Next())
	v, err = it.Value()
	require.NoError(t, err)
	assert.Equal(t, 22, v)
}

func TestReverseIterator(t *testing.T) {
	tree := NewOrdered[int]()
	insertAll(t, tree, 2, 1, 3)

	var got []int
	for it := tree.RBegin(); it != tree.REnd(); {
		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, v)
		require.NoError(t, it.Next())
	}
	assert.Equal(t, []int{3, 2, 1}, got)

	rend := tree.REnd()
	_, err := rend.Value()
	assert.True(t, errors.Is(err, ErrInvalidIterator))
	assert.True(t, errors.Is(rend.Next(), ErrInvalidIterator))
	assert.Equal(t, tree.End(), rend.Base())

	require.NoError(t, rend.Prev())
	v, err := rend.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	rbegin := tree.RBegin()
	assert.True(t, errors.Is(rbegin.Prev(), ErrInvalidIterator))
	assert.True(t, rbegin.Equal(tree.RBegin()))
	base := rbegin.Base()
	bv, err := base.Value()
	require.NoError(t, err)
	assert.Equal(t, 3, bv)
}

func TestTreeSequences(t *testing.T) {
	tree := NewOrdered[int]()
	insertAll(t, tree, 4, 2, 6, 1, 3, 5, 7)

	var back []int
	for v := range tree.Backward() {
		back = append(back, v)
	}
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, back)

	var firstThree []int
	for v := range tree.All() {
		if len(firstThree) == 3 {
			break
		}
		firstThree = append(firstThree, v)
	}
	assert.Equal(t, []int{1, 2, 3}, firstThree)

	var lastTwo []int
	for v := range tree.Backward() {
		lastTwo = append(lastTwo, v)
		if len(lastTwo) == 2 {
			break
		}
	}
	assert.Equal(t, []int{7, 6}, lastTwo)

	empty := NewOrdered[int]()
	for range empty.All() {
		t.Fatal("empty tree yielded a value")
	}
}
