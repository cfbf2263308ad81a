package utils

import "github.com/pkg/errors"

var (
	// ErrAllocationFailure is returned when a node cannot be created. The tree
	// that was being inserted into is left exactly as it was.
	ErrAllocationFailure = errors.New("node allocation failed")

	// ErrInvariantViolation means a red-black rule is broken. It is only ever
	// reported by Validate.
	ErrInvariantViolation = errors.New("red-black invariant violated")

	ErrKeyNotFound = errors.New("key not found")
	ErrNoShards    = errors.New("forest needs at least one shard")
)
