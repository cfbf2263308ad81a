package internal

import (
	"math/rand"
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leansLeft reports whether no node has a red right child, which the
// insertion rules guarantee on top of the red-black rules.
func leansLeft(n *node[int]) bool {
	if n == nil {
		return true
	}
	if isRed(n.right) {
		return false
	}
	return leansLeft(n.left) && leansLeft(n.right)
}

func TestRandomInsertsMatchOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(9024))

	for _, n := range []int{0, 1, 2, 3, 10, 100, 1000} {
		tree := NewTree[int]()
		oracle := rbt.NewWithIntComparator()

		for i := 0; i < n; i++ {
			// a small key space so duplicates are common
			key := rnd.Intn(2 * n)
			var err error
			tree, err = tree.Insert(key)
			require.NoError(t, err)
			oracle.Put(key, struct{}{})

			if n <= 100 {
				require.NoError(t, tree.Validate(), "n=%d after %d", n, key)
			}
		}
		require.NoError(t, tree.Validate())
		require.True(t, leansLeft(tree.root))
		require.Equal(t, oracle.Size(), tree.Len())

		var got []int
		for k := range tree.Ascend() {
			got = append(got, k)
		}
		var want []int
		for _, k := range oracle.Keys() {
			want = append(want, k.(int))
		}
		assert.Equal(t, want, got)

		for key := -1; key <= 2*n; key++ {
			_, found := oracle.Get(key)
			assert.Equal(t, found, tree.Search(key), "key %d", key)
		}

		assert.Equal(t, oracle.Size(), tree.Free())
		assert.Equal(t, int64(0), tree.Stats().Live)
	}
}

func TestAscendStrictlyIncreasing(t *testing.T) {
	rnd := rand.New(rand.NewSource(22))
	tree := NewTree[int]()
	for _, k := range rnd.Perm(2048) {
		var err error
		tree, err = tree.Insert(k - 1024)
		require.NoError(t, err)
	}

	prev, first := 0, true
	count := 0
	for k := range tree.Ascend() {
		if !first {
			require.Less(t, prev, k)
		}
		prev, first = k, false
		count++
	}
	assert.Equal(t, 2048, count)
}

func TestBlackHeightUniform(t *testing.T) {
	rnd := rand.New(rand.NewSource(43))
	tree := NewTree[int]()
	for i := 0; i < 500; i++ {
		var err error
		tree, err = tree.Insert(rnd.Int())
		require.NoError(t, err)
	}

	want := tree.BlackHeight()
	var walk func(n *node[int], blacks int)
	walk = func(n *node[int], blacks int) {
		if n == nil {
			assert.Equal(t, want, blacks)
			return
		}
		if n.color == Black {
			blacks++
		} else {
			assert.False(t, isRed(n.left) || isRed(n.right), "red %d has a red child", n.key)
		}
		walk(n.left, blacks)
		walk(n.right, blacks)
	}
	walk(tree.root, 0)
}
