package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"go.lepak.sg/bst/tree/binary"
)

type cmdRandom struct {
	seed     int64
	num      int
	balanced bool
	timeout  time.Duration
	trees    int
	workers  int
}

func (cmd *cmdRandom) Name() string     { return "random" }
func (cmd *cmdRandom) Synopsis() string { return "build random trees and print their traversals" }
func (cmd *cmdRandom) Usage() string {
	return `random [-n num] [-s seed] [-b [-timeout d]] [-trees count [-workers w]]:
  Inserts the keys [0, num) in a random order and prints the result.
  With -trees, builds that many trees concurrently and prints their heights.
`
}

func (cmd *cmdRandom) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&cmd.seed, "s", 0, "seed (default current unix time in ns)")
	f.IntVar(&cmd.num, "n", 10, "number of nodes in the tree")
	f.BoolVar(&cmd.balanced, "b", false, "if true, keep building the tree until it is balanced")
	f.DurationVar(&cmd.timeout, "timeout", 10*time.Second, "give up on -b after this long")
	f.IntVar(&cmd.trees, "trees", 0, "if > 0, build this many trees (seeds s, s+1, ...) and summarize them")
	f.IntVar(&cmd.workers, "workers", 4, "number of trees to build at once with -trees")
}

func (cmd *cmdRandom) Execute(ctx context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if cmd.num < 0 || f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	if cmd.seed == 0 {
		cmd.seed = time.Now().UnixNano()
	}

	if cmd.trees > 0 {
		return cmd.many(ctx)
	}

	var tr *binary.Tree[int]
	attempts := 0

	if cmd.balanced {
		ctx, cancel := context.WithTimeout(ctx, cmd.timeout)
		defer cancel()

		var err error
		tr, attempts, err = binary.BuildRandomBalanced(ctx, cmd.num, cmd.seed)
		if err != nil {
			fmt.Println("error:", err)
			return subcommands.ExitFailure
		}
	} else {
		tr = binary.BuildRandom(cmd.num, cmd.seed)
	}

	preorder := make([]int, 0, cmd.num)
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, cmd.num)
	co := tr.InOrderCoroutine(ctx)
	for n := range co.Items() {
		inorder = append(inorder, n)
	}

	fmt.Println("seed:", cmd.seed)
	fmt.Println("preorder:", preorder)
	fmt.Println("inorder:", inorder)

	fmt.Println("tree:")
	fmt.Println(tr.String())

	actual, ideal := tr.Height()
	fmt.Println("height:", actual, "ideal:", ideal)

	if cmd.balanced {
		fmt.Println("attempts:", attempts)
	}
	return subcommands.ExitSuccess
}

func (cmd *cmdRandom) many(ctx context.Context) subcommands.ExitStatus {
	seeds := make([]int64, cmd.trees)
	for i := range seeds {
		seeds[i] = cmd.seed + int64(i)
	}

	trees, err := binary.BuildRandomMany(ctx, cmd.num, seeds, cmd.workers)
	if err != nil {
		fmt.Println("error:", err)
		return subcommands.ExitFailure
	}

	balanced := 0
	for i, tr := range trees {
		actual, ideal := tr.Height()
		if actual == ideal {
			balanced++
		}
		fmt.Println("seed:", seeds[i], "height:", actual, "ideal:", ideal)
	}
	fmt.Printf("balanced: %d/%d\n", balanced, len(trees))
	return subcommands.ExitSuccess
}
