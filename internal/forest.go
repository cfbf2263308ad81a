package internal

import (
	"container/heap"
	"fmt"
	"io"
	"iter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/serialx/hashring"
	"github.com/tendermint/tendermint/libs/log"
	"golang.org/x/exp/constraints"

	"github.com/lch000/9024/utils"
)

/*
Forest spreads keys over several trees with consistent hashing. Each key lives
in exactly one tree, picked by hashing its printed form onto the ring, so
membership checks touch a single tree while ordered walks merge all of them.
*/

type Forest[K constraints.Ordered] struct {
	hashRing *hashring.HashRing
	trees    map[string]Tree[K]
	ids      []string
	logger   log.Logger
}

func NewForest[K constraints.Ordered](shards int, cfg Config) (*Forest[K], error) {
	if shards < 1 {
		return nil, errors.WithStack(utils.ErrNoShards)
	}
	cfg = cfg.withDefaults()

	f := &Forest[K]{
		trees:  make(map[string]Tree[K], shards),
		logger: cfg.Logger.With("module", "forest"),
	}
	for i := 1; i <= shards; i++ {
		id := fmt.Sprintf("tree-%d", i)
		shardCfg := cfg
		shardCfg.Logger = cfg.Logger.With("shard", id)
		f.trees[id] = NewTreeWithConfig[K](shardCfg)
		f.ids = append(f.ids, id)
	}
	f.hashRing = hashring.New(f.ids)
	return f, nil
}

// Shard names the tree that key belongs to.
func (f *Forest[K]) Shard(key K) string {
	id, ok := f.hashRing.GetNode(fmt.Sprint(key)) // get which tree this key should be in
	if !ok {
		return f.ids[0]
	}
	return id
}

func (f *Forest[K]) Insert(key K) error {
	id := f.Shard(key)
	t, err := f.trees[id].Insert(key)
	if err != nil {
		return errors.Wrapf(err, "insert into %s", id)
	}
	f.trees[id] = t
	f.logger.Debug("key routed", "key", key, "shard", id)
	return nil
}

func (f *Forest[K]) Search(key K) bool {
	return f.trees[f.Shard(key)].Search(key)
}

func (f *Forest[K]) Len() int {
	total := 0
	for _, t := range f.trees {
		total += t.Len()
	}
	return total
}

// Ascend yields the keys of every shard in increasing order.
func (f *Forest[K]) Ascend() iter.Seq[K] {
	return func(yield func(K) bool) {
		h := &MinCursorHeap[K]{}
		for _, id := range f.ids {
			next, stop := iter.Pull(f.trees[id].Ascend())
			defer stop()
			if key, ok := next(); ok {
				heap.Push(h, &shardCursor[K]{key: key, next: next})
			}
		}
		for h.Len() > 0 {
			c := (*h)[0]
			if !yield(c.key) {
				return
			}
			if key, ok := c.next(); ok {
				c.key = key
				heap.Fix(h, 0)
			} else {
				heap.Pop(h)
			}
		}
	}
}

// Validate checks every shard, and that every key sits in the shard the ring
// assigns it to.
func (f *Forest[K]) Validate() error {
	for _, id := range f.ids {
		t := f.trees[id]
		if err := t.Validate(); err != nil {
			return errors.Wrapf(err, "shard %s", id)
		}
		for key := range t.Ascend() {
			if owner := f.Shard(key); owner != id {
				return errors.Wrapf(utils.ErrInvariantViolation, "key %v in %s, ring says %s", key, id, owner)
			}
		}
	}
	return nil
}

// Free releases every shard and returns the total number of nodes released.
func (f *Forest[K]) Free() int {
	released := 0
	for _, id := range f.ids {
		t := f.trees[id]
		released += t.Free()
		f.trees[id] = t
	}
	f.logger.Debug("forest released", "nodes", released)
	return released
}

func (f *Forest[K]) Stats() Stats {
	var total Stats
	for _, t := range f.trees {
		s := t.Stats()
		total.Allocated += s.Allocated
		total.Freed += s.Freed
		total.Live += s.Live
		total.Capacity += s.Capacity
	}
	return total
}

func (f *Forest[K]) Diagnostics(w io.Writer) {
	for _, id := range f.ids {
		t := f.trees[id]
		fmt.Fprintf(w, "%s num keys: %s height: %d\n", id, humanize.Comma(int64(t.Len())), t.Height())
	}
}

// Tree returns the shard called id.
func (f *Forest[K]) Tree(id string) (Tree[K], bool) {
	t, ok := f.trees[id]
	return t, ok
}

func (f *Forest[K]) Shards() []string {
	return append([]string(nil), f.ids...)
}
