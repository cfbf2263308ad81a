package internal

import (
	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/log"
	"golang.org/x/exp/constraints"

	"github.com/lch000/9024/utils"
)

// Stats counts node allocations over the lifetime of a tree.
type Stats struct {
	Allocated int64
	Freed     int64
	Live      int64
	Capacity  int64
}

// arena hands out nodes for one tree and keeps the books on them.
type arena[K constraints.Ordered] struct {
	capacity  int64
	allocated int64
	freed     int64
	logger    log.Logger
}

func newArena[K constraints.Ordered](cfg Config) *arena[K] {
	cfg = cfg.withDefaults()
	return &arena[K]{
		capacity: cfg.MaxNodes,
		logger:   cfg.Logger,
	}
}

// newNode returns a detached red node holding key.
func (a *arena[K]) newNode(key K) (*node[K], error) {
	if a.capacity > 0 && a.live() >= a.capacity {
		a.logger.Error("node allocation refused", "live", a.live(), "capacity", a.capacity)
		return nil, errors.Wrapf(utils.ErrAllocationFailure, "capacity %d reached", a.capacity)
	}
	a.allocated++
	return &node[K]{key: key, color: Red}, nil
}

// freeNode detaches n from its children. Callers release children first.
func (a *arena[K]) freeNode(n *node[K]) {
	n.left, n.right = nil, nil
	a.freed++
}

func (a *arena[K]) live() int64 {
	return a.allocated - a.freed
}

func (a *arena[K]) stats() Stats {
	return Stats{
		Allocated: a.allocated,
		Freed:     a.freed,
		Live:      a.live(),
		Capacity:  a.capacity,
	}
}

// release frees the subtree rooted at n, children before parent, and returns
// the number of nodes released.
func (a *arena[K]) release(n *node[K]) int {
	if n == nil {
		return 0
	}
	released := a.release(n.left) + a.release(n.right)
	a.freeNode(n)
	return released + 1
}
