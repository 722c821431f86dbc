package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.lepak.sg/bst/tree/binary"
)

type cmdSort struct {
	reverse  bool
	showTree bool
}

func (cmd *cmdSort) Name() string     { return "sort" }
func (cmd *cmdSort) Synopsis() string { return "sort a line of integers from stdin, dropping duplicates" }
func (cmd *cmdSort) Usage() string {
	return `sort [-r] [-t]:
  Reads one line of space separated integers from stdin, inserts them
  into a binary search tree, and prints them back in order.
`
}

func (cmd *cmdSort) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.reverse, "r", false, "print in descending order")
	f.BoolVar(&cmd.showTree, "t", false, "also print the tree")
}

func (cmd *cmdSort) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	tr := binary.FromSlice(readInts(bufio.NewReader(os.Stdin)))

	keys := tr.All()
	if cmd.reverse {
		keys = tr.Backward()
	}

	sep := ""
	for k := range keys {
		fmt.Print(sep, k)
		sep = " "
	}
	fmt.Println()

	if cmd.showTree {
		fmt.Print(tr.String())
	}
	return subcommands.ExitSuccess
}
