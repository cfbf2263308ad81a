package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/lch000/9024/internal"
)

// index is what the REPL drives: either one tree or a forest of them.
type index interface {
	Insert(key int) error
	Search(key int) bool
	Len() int
	Validate() error
	Free() int
	Stats() internal.Stats
	Show(w io.Writer) error
	Levels(w io.Writer) error
}

type single struct {
	tree internal.Tree[int]
	ansi bool
}

func (s *single) Insert(key int) error {
	t, err := s.tree.Insert(key)
	if err != nil {
		return err
	}
	s.tree = t
	return nil
}

func (s *single) Search(key int) bool { return s.tree.Search(key) }
func (s *single) Len() int { return s.tree.Len() }
func (s *single) Validate() error { return s.tree.Validate() }
func (s *single) Free() int { return s.tree.Free() }
func (s *single) Stats() internal.Stats { return s.tree.Stats() }
func (s *single) Show(w io.Writer) error { return internal.WriteSideways(w, s.tree, s.ansi) }
func (s *single) Levels(w io.Writer) error { return internal.WriteLevelOrder(w, s.tree) }

type sharded struct {
	*internal.Forest[int]
	ansi bool
}

func (s *sharded) Show(w io.Writer) error {
	for _, id := range s.Shards() {
		t, _ := s.Tree(id)
		fmt.Fprintf(w, "== %s\n", id)
		if err := internal.WriteSideways(w, t, s.ansi); err != nil {
			return err
		}
	}
	return nil
}

func (s *sharded) Levels(w io.Writer) error {
	for _, id := range s.Shards() {
		t, _ := s.Tree(id)
		fmt.Fprintf(w, "== %s\n", id)
		if err := internal.WriteLevelOrder(w, t); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	shards := flag.Int("shards", 0, "spread keys over this many trees (0 = one tree)")
	maxNodes := flag.Int64("max-nodes", 0, "cap on live nodes per tree (0 = unbounded)")
	logLevel := flag.String("log-level", "error", "debug, info, error or none")
	ansi := flag.Bool("ansi", true, "print red keys in red")
	flag.Parse()

	logger, err := internal.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg := internal.Config{MaxNodes: *maxNodes, Logger: logger}

	idx, err := newIndex(*shards, cfg, *ansi)
	if err != nil {
		logger.Error("could not build index", "err", err)
		os.Exit(1)
	}
	run(idx, os.Stdin, os.Stdout, logger)
}

func newIndex(shards int, cfg internal.Config, ansi bool) (index, error) {
	if shards == 0 {
		return &single{tree: internal.NewTreeWithConfig[int](cfg), ansi: ansi}, nil
	}
	f, err := internal.NewForest[int](shards, cfg)
	if err != nil {
		return nil, err
	}
	return &sharded{Forest: f, ansi: ansi}, nil
}

const commands = "Commands:\n" +
	"\t- insert  <key>...        : insert one or more integer keys\n" +
	"\t- search  <key>           : check whether a key is present\n" +
	"\t- show                    : print the tree sideways\n" +
	"\t- levels                  : print the tree level by level\n" +
	"\t- check                   : validate the red-black rules\n" +
	"\t- stats                   : node allocation counters\n" +
	"\t- free                    : release every node\n" +
	"\t- ctrl+d                  : exit\n" +
	"\t- help                    : show this message"

func run(idx index, in io.Reader, out io.Writer, logger log.Logger) {
	fmt.Fprintln(out, commands)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "\nEnter command: ")
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "insert":
			if len(args) < 2 {
				fmt.Fprintln(out, "err: insert needs at least one key")
				continue
			}
			for _, arg := range args[1:] {
				key, err := strconv.Atoi(arg)
				if err != nil {
					fmt.Fprintf(out, "err: %q is not an integer\n", arg)
					continue
				}
				if err := idx.Insert(key); err != nil {
					logger.Error("insert failed", "key", key, "err", err)
					fmt.Fprintf(out, "err: could not insert %d\n", key)
				}
			}
		case "search":
			if len(args) != 2 {
				fmt.Fprintln(out, "err: search takes exactly one key")
				continue
			}
			key, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintf(out, "err: %q is not an integer\n", args[1])
				continue
			}
			fmt.Fprintln(out, idx.Search(key))
		case "show":
			idx.Show(out)
		case "levels":
			idx.Levels(out)
		case "check":
			if err := idx.Validate(); err != nil {
				fmt.Fprintln(out, "check: FAILED:", err)
			} else {
				fmt.Fprintln(out, "check: ok")
			}
		case "stats":
			st := idx.Stats()
			fmt.Fprintf(out, "keys: %s allocated: %s freed: %s live: %s\n",
				humanize.Comma(int64(idx.Len())), humanize.Comma(st.Allocated),
				humanize.Comma(st.Freed), humanize.Comma(st.Live))
		case "free":
			fmt.Fprintf(out, "released %s nodes\n", humanize.Comma(int64(idx.Free())))
		case "help":
			fmt.Fprintln(out, "\n"+commands)
		default:
			fmt.Fprintf(out, "err: unknown command %q\n", args[0])
		}
	}
}
