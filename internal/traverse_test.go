package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllIsMirroredInorder(t *testing.T) {
	tree := buildTree(t, 22, 12, 8, 15, 11, 19, 43)

	var keys []int
	colors := map[int]Color{}
	for k, c := range tree.All() {
		keys = append(keys, k)
		colors[k] = c
	}
	assert.Equal(t, []int{43, 22, 19, 15, 12, 11, 8}, keys)
	assert.Equal(t, map[int]Color{
		43: Black, 22: Red, 19: Black, 15: Black, 12: Red, 11: Black, 8: Red,
	}, colors)
}

func TestAllIsRestartable(t *testing.T) {
	tree := buildTree(t, 5, 3, 9, 1, 7)
	seq := tree.All()

	collect := func() []int {
		var out []int
		for k := range seq {
			out = append(out, k)
		}
		return out
	}
	first := collect()
	assert.Equal(t, []int{9, 7, 5, 3, 1}, first)
	assert.Equal(t, first, collect())
}

func TestAllStopsEarly(t *testing.T) {
	tree := buildTree(t, 22, 12, 8, 15, 11, 19, 43)

	var keys []int
	for k := range tree.All() {
		keys = append(keys, k)
		if len(keys) == 3 {
			break
		}
	}
	assert.Equal(t, []int{43, 22, 19}, keys)

	var asc []int
	for k := range tree.Ascend() {
		if k > 12 {
			break
		}
		asc = append(asc, k)
	}
	assert.Equal(t, []int{8, 11, 12}, asc)

	var depths []int
	for e := range tree.LevelOrder() {
		if e.Depth > 1 {
			break
		}
		depths = append(depths, e.Depth)
	}
	assert.Equal(t, []int{0, 1, 1}, depths)
}

func TestEmptyTreeWalks(t *testing.T) {
	tree := NewTree[int]()
	for range tree.All() {
		t.Fatal("empty tree yielded a key")
	}
	for range tree.Ascend() {
		t.Fatal("empty tree yielded a key")
	}
	for range tree.LevelOrder() {
		t.Fatal("empty tree yielded an entry")
	}
}

func TestLevelOrderLargeTree(t *testing.T) {
	// well past 100 nodes, so the queue has to keep growing
	tree := NewTree[int]()
	for i := 0; i < 1000; i++ {
		tree, _ = tree.Insert(i)
	}

	count, lastDepth := 0, 0
	for e := range tree.LevelOrder() {
		assert.GreaterOrEqual(t, e.Depth, lastDepth)
		lastDepth = e.Depth
		count++
	}
	assert.Equal(t, 1000, count)
	assert.Equal(t, tree.Height()-1, lastDepth)
}
