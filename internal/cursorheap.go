package internal

import "golang.org/x/exp/constraints"

// shardCursor is the position of one shard's walk during a merge.
type shardCursor[K constraints.Ordered] struct {
	key  K
	next func() (K, bool)
}

type MinCursorHeap[K constraints.Ordered] []*shardCursor[K]

func (h MinCursorHeap[K]) Len() int {
	return len(h)
}

func (h MinCursorHeap[K]) Less(i, j int) bool {
	return h[i].key < h[j].key
}

func (h MinCursorHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *MinCursorHeap[K]) Push(val any) {
	*h = append(*h, val.(*shardCursor[K]))
}

func (h *MinCursorHeap[K]) Pop() any {
	heapDereferenced := *h
	size := len(heapDereferenced)
	val := heapDereferenced[size-1]
	*h = heapDereferenced[:size-1]
	return val
}
