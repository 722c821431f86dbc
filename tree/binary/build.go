package binary

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.lepak.sg/bst/tree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var (
	ErrEmpty          = errors.New("nothing to build")
	ErrLengthMismatch = errors.New("pre- and in-order traversals have different lengths")
	ErrDuplicateKey   = errors.New("duplicated key")
	ErrKeyNotFound    = errors.New("pre-order key not found in in-order traversal")
	ErrNotSorted      = errors.New("in-order traversal is not sorted")
	ErrBadPreOrder    = errors.New("pre-order traversal does not describe a tree with this in-order traversal")
)

// FromSlice builds a tree by inserting the elements of s in order.
// Duplicates are dropped, as with Insert.
func FromSlice[S ~[]T, T constraints.Ordered](s S) *Tree[T] {
	tr := New[T]()
	for _, k := range s {
		tr.Insert(k)
	}
	return tr
}

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))
	return FromSlice(shuffled(rd, num))
}

func shuffled(rd *rand.Rand, num int) []int {
	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	return nodes
}

// BuildRandomBalanced builds a balanced binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
// Large trees are very unlikely to come out balanced, so this keeps
// trying until it succeeds or ctx is done.
func BuildRandomBalanced(ctx context.Context, num int, seed int64) (*Tree[int], int, error) {
	rd := rand.New(rand.NewSource(seed))

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		if err := ctx.Err(); err != nil {
			return nil, attempts, fmt.Errorf("gave up after %d attempts: %w", attempts, err)
		}
		attempts++
		tr = FromSlice(shuffled(rd, num))
	}

	return tr, attempts, nil
}

// BuildRandomMany builds one random tree of num nodes per seed, with
// at most workers trees being built at a time. The trees are returned
// in the same order as seeds.
// Each tree is only ever touched by the goroutine building it.
func BuildRandomMany(ctx context.Context, num int, seeds []int64, workers int) ([]*Tree[int], error) {
	if workers <= 0 {
		workers = 1
	}

	trees := make([]*Tree[int], len(seeds))
	sema := semaphore.NewWeighted(int64(workers))
	g, gctx := errgroup.WithContext(ctx)

	var err error
	for i, seed := range seeds {
		err = sema.Acquire(gctx, 1)
		if err != nil {
			// ctx was canceled, or a worker failed
			break
		}

		i, seed := i, seed
		g.Go(func() error {
			defer sema.Release(1)
			if err := gctx.Err(); err != nil {
				return err
			}
			trees[i] = BuildRandom(num, seed)
			return nil
		})
	}

	if werr := g.Wait(); werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}

	return trees, nil
}

// BuildFromPreAndInOrderIter iteratively builds a binary tree
// from its pre- and in-order traversal.
func BuildFromPreAndInOrderIter[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// Time O(N*H) Space O(N)
	if err := checkTraversals(pre, in); err != nil {
		return nil, err
	}

	// The idea: the first key of any pre-order traversal is the root
	// of that (sub)tree, so every key is inserted after all of its
	// ancestors. Inserting in pre-order rebuilds exactly the same shape,
	// if pre really is a pre-order traversal.
	tr := FromSlice(pre)

	i := 0
	tr.PreOrder(func(k T) bool {
		if k != pre[i] {
			return false
		}
		i++
		return true
	})
	if i != len(pre) {
		return nil, fmt.Errorf("%w: unexpected %v", ErrBadPreOrder, pre[i])
	}

	return tr, nil
}

// BuildFromPreAndInOrderRec recursively builds a binary tree
// from its pre- and in-order traversal.
func BuildFromPreAndInOrderRec[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// Recursive method. Time O(N^2) Space O(N) (stack frames)
	if err := checkTraversals(pre, in); err != nil {
		return nil, err
	}

	root, err := buildFromPreAndInOrderRecVisit(pre, in)
	if err != nil {
		return nil, err
	}

	tr := New[T]()
	tr.root = root
	return tr, nil
}

func buildFromPreAndInOrderRecVisit[S ~[]T, T constraints.Ordered](
	pre, in S) (*tree.Node[T], error) {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil, nil
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		// checkTraversals made sure x is somewhere in the full
		// in-order traversal, just not in this subtree
		return nil, fmt.Errorf("%w: unexpected %v", ErrBadPreOrder, x)
	}

	inleft, inright := in[0:xi], in[xi+1:]
	preleft, preright := pre[1:xi+1], pre[xi+1:]

	n := tree.NodeOf(x)
	var err error
	if n.Left, err = buildFromPreAndInOrderRecVisit(preleft, inleft); err != nil {
		return nil, err
	}
	if n.Right, err = buildFromPreAndInOrderRecVisit(preright, inright); err != nil {
		return nil, err
	}

	return n, nil
}

func checkTraversals[S ~[]T, T constraints.Ordered](pre, in S) error {
	if len(in) == 0 {
		return ErrEmpty
	}

	if len(in) != len(pre) {
		return ErrLengthMismatch
	}

	for i := 1; i < len(in); i++ {
		switch tree.Compare(in[i-1], in[i]) {
		case tree.Less:
		case tree.Equal:
			return fmt.Errorf("%w in in-order traversal: %v", ErrDuplicateKey, in[i])
		case tree.Greater:
			return fmt.Errorf("%w: %v before %v", ErrNotSorted, in[i-1], in[i])
		}
	}

	// true once seen in pre
	inOrderMap := make(map[T]bool, len(in))
	for _, k := range in {
		inOrderMap[k] = false
	}
	for _, k := range pre {
		seen, ok := inOrderMap[k]
		if !ok {
			return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
		}
		if seen {
			return fmt.Errorf("%w in pre-order traversal: %v", ErrDuplicateKey, k)
		}
		inOrderMap[k] = true
	}

	return nil
}
