package internal

import (
	"iter"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"golang.org/x/exp/constraints"
)

// Entry is a node as seen by a diagnostic walk.
type Entry[K constraints.Ordered] struct {
	Key   K
	Color Color
	Depth int
}

// All yields every key with its color, right subtree first, then the node,
// then the left subtree. This is the order of a sideways print, largest key
// on top. Each call to the returned sequence starts a fresh walk.
func (t Tree[K]) All() iter.Seq2[K, Color] {
	return func(yield func(K, Color) bool) {
		walkMirrored(t.root, 0, func(n *node[K], _ int) bool {
			return yield(n.key, n.color)
		})
	}
}

// Ascend yields the keys in increasing order.
func (t Tree[K]) Ascend() iter.Seq[K] {
	return func(yield func(K) bool) {
		walkInorder(t.root, func(n *node[K]) bool {
			return yield(n.key)
		})
	}
}

// LevelOrder yields nodes breadth first, left to right within a level.
func (t Tree[K]) LevelOrder() iter.Seq[Entry[K]] {
	return func(yield func(Entry[K]) bool) {
		if t.root == nil {
			return
		}
		queue := linkedlistqueue.New()
		queue.Enqueue(pending[K]{t.root, 0})
		for !queue.Empty() {
			v, _ := queue.Dequeue()
			p := v.(pending[K])
			if !yield(Entry[K]{Key: p.n.key, Color: p.n.color, Depth: p.depth}) {
				return
			}
			if p.n.left != nil {
				queue.Enqueue(pending[K]{p.n.left, p.depth + 1})
			}
			if p.n.right != nil {
				queue.Enqueue(pending[K]{p.n.right, p.depth + 1})
			}
		}
	}
}

type pending[K constraints.Ordered] struct {
	n     *node[K]
	depth int
}

func walkMirrored[K constraints.Ordered](n *node[K], depth int, visit func(*node[K], int) bool) bool {
	if n == nil {
		return true
	}
	return walkMirrored(n.right, depth+1, visit) &&
		visit(n, depth) &&
		walkMirrored(n.left, depth+1, visit)
}

func walkInorder[K constraints.Ordered](n *node[K], visit func(*node[K]) bool) bool {
	if n == nil {
		return true
	}
	return walkInorder(n.left, visit) &&
		visit(n) &&
		walkInorder(n.right, visit)
}
