package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStringAfterRotation(t *testing.T) {
	assert := assert.New(t)

	// Ascending inserts force the straight-line rotation: 20 becomes
	// the black root with red children 10 and 30.
	tree := New()
	for _, k := range []int{10, 20, 30} {
		require.NoError(t, tree.Insert(k))
	}

	assert.Equal(" R10  B20  R30 ", tree.ToInfixString())
	assert.Equal(" B20  R10  R30 ", tree.ToPrefixString())
	assert.Equal(" R10  R30  B20 ", tree.ToPostfixString())
}

func TestToStringEmpty(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	assert.Equal("", tree.ToInfixString())
	assert.Equal("", tree.ToPrefixString())
	assert.Equal("", tree.ToPostfixString())
}

func TestToStringNegativeKeys(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	for _, k := range []int{-5, -10, 0} {
		require.NoError(t, tree.Insert(k))
	}
	assert.Equal(" R-10  B-5  R0 ", tree.ToInfixString())
}

func TestStringIsInfix(t *testing.T) {
	assert := assert.New(t)

	tree := NewWithKey(1)
	assert.Equal(tree.ToInfixString(), tree.String())
}

func TestInfixIsSorted(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	for _, k := range []int{7, 3, 9, 1, 5, 8, 10, 2, 4, 6} {
		require.NoError(t, tree.Insert(k))
	}

	keys := tree.Keys()
	require.Equal(t, tree.Size(), len(keys))
	for i := 1; i < len(keys); i++ {
		assert.Less(keys[i-1], keys[i])
	}
}

func TestForEachAscendingOrder(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	for _, k := range []int{4, 1, 3, 2} {
		require.NoError(t, tree.Insert(k))
	}

	var asc []int
	tree.ForEachAscending(func(key int) bool {
		asc = append(asc, key)
		return true
	})
	assert.Equal([]int{1, 2, 3, 4}, asc)

	var desc []int
	tree.ForEachDescending(func(key int) bool {
		desc = append(desc, key)
		return true
	})
	assert.Equal([]int{4, 3, 2, 1}, desc)
}

func TestForEachStopsEarly(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	for k := 1; k <= 10; k++ {
		require.NoError(t, tree.Insert(k))
	}

	seen := 0
	tree.ForEachAscending(func(key int) bool {
		seen++
		return seen < 3
	})
	assert.Equal(3, seen)
}

func TestTraversalDoesNotMutate(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	for _, k := range []int{2, 1, 3} {
		require.NoError(t, tree.Insert(k))
	}

	first := tree.ToPostfixString()
	tree.ForEachDescending(func(int) bool { return true })
	assert.Equal(first, tree.ToPostfixString())
	assert.Equal(3, tree.Size())
}
