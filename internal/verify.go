package internal

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/lch000/9024/utils"
)

// Validate walks the whole tree and checks the red-black rules: keys in
// strict search order, a black root, no red node with a red child, the same
// number of black nodes on every path down to an empty child, height within
// 2*log2(n+1), and as many reachable nodes as the arena has live.
//
// A tree built only through Insert always passes. Any failure wraps
// utils.ErrInvariantViolation.
func (t Tree[K]) Validate() error {
	live := 0
	if t.arena != nil {
		live = int(t.arena.live())
	}
	if t.root == nil {
		if live != 0 {
			return violation("empty tree with %d live nodes", live)
		}
		return nil
	}
	if t.root.color != Black {
		return violation("root %v is red", t.root.key)
	}

	count, _, h, err := validateNode(t.root, nil, nil, false)
	if err != nil {
		return err
	}
	if limit := 2 * math.Log2(float64(count+1)); float64(h) > limit {
		return violation("height %d exceeds %.2f for %d keys", h, limit, count)
	}
	if count != live {
		return violation("%d reachable nodes, arena has %d live", count, live)
	}
	return nil
}

func validateNode[K constraints.Ordered](
	n *node[K], lo, hi *K, fromRed bool) (count, blacks, h int, err error) {

	if n == nil {
		return 0, 0, 0, nil
	}
	if lo != nil && !(*lo < n.key) {
		return 0, 0, 0, violation("sort order, %v is right of %v", n.key, *lo)
	}
	if hi != nil && !(n.key < *hi) {
		return 0, 0, 0, violation("sort order, %v is left of %v", n.key, *hi)
	}
	if fromRed && n.color == Red {
		return 0, 0, 0, violation("consecutive red at %v", n.key)
	}

	red := n.color == Red
	lcount, lblacks, lh, err := validateNode(n.left, lo, &n.key, red)
	if err != nil {
		return 0, 0, 0, err
	}
	rcount, rblacks, rh, err := validateNode(n.right, &n.key, hi, red)
	if err != nil {
		return 0, 0, 0, err
	}
	if lblacks != rblacks {
		return 0, 0, 0, violation("unbalanced blacks at %v {%d,%d}", n.key, lblacks, rblacks)
	}

	blacks = lblacks
	if !red {
		blacks++
	}
	return lcount + rcount + 1, blacks, max(lh, rh) + 1, nil
}

func violation(format string, args ...interface{}) error {
	return errors.Wrapf(utils.ErrInvariantViolation, format, args...)
}
