package internal

import "golang.org/x/exp/constraints"

/*
Left-leaning red-black tree over unique ordered keys.

Insert walks down to the leaf position of the new key, hangs a red node there,
and rebalances on the way back up. Every ancestor on the path gets the same
checks, each one looking at the node as the previous check left it:

	right red, left not red      -> rotate left
	left red, left.left red      -> rotate right
	left red, right red          -> flip colors

The root is painted black once the recursion has unwound.
*/

type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

type node[K constraints.Ordered] struct {
	key         K
	color       Color
	left, right *node[K]
}

func isRed[K constraints.Ordered](n *node[K]) bool {
	return n != nil && n.color == Red
}

// Tree is a handle to the root of a red-black tree. The zero value is the
// empty tree.
//
// Insert hands back a new handle and the caller must drop the old one: both
// share the same nodes, which Insert mutates in place.
type Tree[K constraints.Ordered] struct {
	root  *node[K]
	arena *arena[K]
}

// NewTree returns the empty tree. Nothing is allocated until the first insert.
func NewTree[K constraints.Ordered]() Tree[K] {
	return Tree[K]{}
}

func NewTreeWithConfig[K constraints.Ordered](cfg Config) Tree[K] {
	return Tree[K]{arena: newArena[K](cfg)}
}

// Insert adds key and returns the tree's new handle. Inserting a key that is
// already present changes nothing. If the node cannot be allocated the error
// wraps utils.ErrAllocationFailure and the tree is left as it was.
func (t Tree[K]) Insert(key K) (Tree[K], error) {
	if t.arena == nil {
		t.arena = newArena[K](DefaultConfig())
	}
	root, inserted, err := insert(t.arena, t.root, key)
	if err != nil || !inserted {
		return t, err
	}
	root.color = Black
	t.root = root
	return t, nil
}

func insert[K constraints.Ordered](a *arena[K], h *node[K], key K) (*node[K], bool, error) {
	if h == nil {
		n, err := a.newNode(key)
		if err != nil {
			return nil, false, err
		}
		return n, true, nil
	}

	var inserted bool
	var err error
	switch {
	case key < h.key:
		h.left, inserted, err = insert(a, h.left, key)
	case key > h.key:
		h.right, inserted, err = insert(a, h.right, key)
	default:
		return h, false, nil
	}
	if err != nil || !inserted {
		return h, inserted, err
	}

	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flip(h)
	}
	return h, true, nil
}

// rotateLeft promotes h's right child into h's place. The promoted node takes
// h's color and h becomes red.
func rotateLeft[K constraints.Ordered](h *node[K]) *node[K] {
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = Red
	return x
}

func rotateRight[K constraints.Ordered](h *node[K]) *node[K] {
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = Red
	return x
}

func flip[K constraints.Ordered](h *node[K]) {
	h.color = Red
	h.left.color = Black
	h.right.color = Black
}

// Search reports whether key is in the tree.
func (t Tree[K]) Search(key K) bool {
	curr := t.root
	for curr != nil {
		switch {
		case key < curr.key:
			curr = curr.left
		case key > curr.key:
			curr = curr.right
		default:
			return true
		}
	}
	return false
}

// Free releases every node, children before parents, and resets t to the
// empty tree. It returns the number of nodes released. Other copies of the
// handle are invalid afterwards.
func (t *Tree[K]) Free() int {
	if t.arena == nil {
		return 0
	}
	released := t.arena.release(t.root)
	t.root = nil
	t.arena.logger.Debug("tree released", "nodes", released, "allocated", t.arena.allocated)
	return released
}

func (t Tree[K]) Len() int {
	if t.arena == nil {
		return 0
	}
	return int(t.arena.live())
}

func (t Tree[K]) Empty() bool {
	return t.root == nil
}

// Stats returns the allocation counters of the tree's arena.
func (t Tree[K]) Stats() Stats {
	if t.arena == nil {
		return Stats{}
	}
	return t.arena.stats()
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t Tree[K]) Height() int {
	return height(t.root)
}

func height[K constraints.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}

// BlackHeight counts the black nodes from the root down its leftmost path.
// On a valid tree every other path gives the same count.
func (t Tree[K]) BlackHeight() int {
	blacks := 0
	for n := t.root; n != nil; n = n.left {
		if n.color == Black {
			blacks++
		}
	}
	return blacks
}

func (t Tree[K]) Min() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

func (t Tree[K]) Max() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}
