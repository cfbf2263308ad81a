package internal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

/*
Diagnostic dumps of a tree. Neither format is meant to be parsed back.

Sideways, largest key on top, one TAB per level of depth:
	43
		22 (red)
19
		15
	12 (red)
		11
			8 (red)

Level order, one line per node:
 level 0 - 19(black)
 level 1 - 12(red)
*/

const (
	PRINT_COLOUR_RED   = "\x1B[31m"
	PRINT_COLOUR_RESET = "\x1B[0m"
)

// WriteSideways prints t rotated a quarter turn counter-clockwise. With ansi
// set red keys are printed in red, otherwise they are tagged " (red)".
func WriteSideways[K constraints.Ordered](w io.Writer, t Tree[K], ansi bool) error {
	bw := bufio.NewWriter(w)
	walkMirrored(t.root, 0, func(n *node[K], depth int) bool {
		bw.WriteString(strings.Repeat("\t", depth))
		switch {
		case n.color == Red && ansi:
			fmt.Fprintf(bw, "%s%v%s\n", PRINT_COLOUR_RED, n.key, PRINT_COLOUR_RESET)
		case n.color == Red:
			fmt.Fprintf(bw, "%v (red)\n", n.key)
		default:
			fmt.Fprintf(bw, "%v\n", n.key)
		}
		return true
	})
	return bw.Flush()
}

func WriteLevelOrder[K constraints.Ordered](w io.Writer, t Tree[K]) error {
	bw := bufio.NewWriter(w)
	if t.Empty() {
		bw.WriteString("Tree is empty\n")
		return bw.Flush()
	}
	bw.WriteString("Level order:\n")
	for e := range t.LevelOrder() {
		fmt.Fprintf(bw, " level %d - %v(%s)\n", e.Depth, e.Key, e.Color)
	}
	return bw.Flush()
}

// Fingerprint hashes the shape and coloring of t. Trees with the same keys
// in the same places with the same colors hash the same.
func (t Tree[K]) Fingerprint() uint64 {
	h := murmur3.New64()
	bw := bufio.NewWriter(h)
	writeShape(bw, t.root)
	bw.Flush()
	return h.Sum64()
}

func writeShape[K constraints.Ordered](w *bufio.Writer, n *node[K]) {
	if n == nil {
		w.WriteByte(0)
		return
	}
	w.WriteByte(1)
	w.WriteByte(byte(n.color))
	fmt.Fprintf(w, "%v", n.key)
	w.WriteByte(0xff)
	writeShape(w, n.left)
	writeShape(w, n.right)
}
