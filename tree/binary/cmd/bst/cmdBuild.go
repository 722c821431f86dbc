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

type cmdBuild struct {
	recursive bool
}

func (cmd *cmdBuild) Name() string     { return "build" }
func (cmd *cmdBuild) Synopsis() string { return "rebuild a tree from its in-order and pre-order traversals" }
func (cmd *cmdBuild) Usage() string {
	return `build [-rec]:
  Reads the in-order traversal, then the pre-order traversal, one line
  each from stdin, and prints the tree they describe.
`
}

func (cmd *cmdBuild) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.recursive, "rec", false, "use the recursive implementation")
}

func (cmd *cmdBuild) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	stdin := bufio.NewReader(os.Stdin)

	fmt.Print("in-order: ")
	in := readInts(stdin)
	fmt.Println(in)

	fmt.Print("pre-order: ")
	pre := readInts(stdin)
	fmt.Println(pre)

	impl := binary.BuildFromPreAndInOrderIter[[]int, int]
	if cmd.recursive {
		impl = binary.BuildFromPreAndInOrderRec[[]int, int]
	}

	tr, err := impl(pre, in)
	if err != nil {
		fmt.Println("error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("tree:")
	fmt.Print(tr.String())
	return subcommands.ExitSuccess
}
