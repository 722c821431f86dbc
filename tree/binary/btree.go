package binary

import (
	"context"
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"go.lepak.sg/bst/chops"
	"go.lepak.sg/bst/tree"
	"go.lepak.sg/bst/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting). Nothing checks this: inserting while an iterator
// over the tree is still in use makes that iterator's results undefined.
//
// Create a Tree with New or NewFunc; the zero Tree has no ordering
// and must not be used. Tree should not be passed around as a value.
//
// This tree implementation does not support removal. It is also not
// self-balancing, so inserting keys in sorted order will leave you
// with a linked list.
//
// Invariants:
//  - At any node N in the tree, all node keys in the subtree rooted at N.Left
//    will be less than N.Key
//  - At any node N in the tree, all node keys in the subtree rooted at N.Right
//    will be greater than N.Key
//  - For every possible key, there will be at most one node with that key
//    in the tree (No duplicates allowed)
type Tree[T any] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root *tree.Node[T]
	cmp  func(l, r T) tree.Order
}

// New returns an empty tree ordered by the < operator.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{
		cmp: tree.Compare[T],
	}
}

// NewFunc returns an empty tree ordered by cmp, which must return a
// negative number when a < b, a positive number when a > b and zero
// when a and b are equal. cmp must describe a strict total order.
func NewFunc[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{
		cmp: tree.CompareFunc(cmp),
	}
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch t.cmp(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Without parent pointers we can't climb back up from where k
	// would be, so remember the last node we went right from instead.
	var less *tree.Node[T]
	n := t.root

	for n != nil {
		switch t.cmp(k, n.Key) {
		case tree.Greater:
			n, less = n.Right, n
		case tree.Less, tree.Equal:
			n = n.Left
		default:
			panic("unreachable")
		}
	}

	if less == nil {
		return
	}
	return less.Key, true
}

// Min returns the smallest key in the tree.
// ok is false if the tree is empty.
func (t *Tree[T]) Min() (k T, ok bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.Left != nil {
		n = n.Left
	}
	return n.Key, true
}

// Max returns the largest key in the tree.
// ok is false if the tree is empty.
func (t *Tree[T]) Max() (k T, ok bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.Right != nil {
		n = n.Right
	}
	return n.Key, true
}

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert leaves the existing key in place
// and returns false.
func (t *Tree[T]) Insert(k T) bool {
	// link is the slot the new node will hang from,
	// starting with the root itself
	link := &t.root

	for *link != nil {
		n := *link
		switch t.cmp(k, n.Key) {
		case tree.Less:
			link = &n.Left
		case tree.Greater:
			link = &n.Right
		case tree.Equal:
			return false
		default:
			panic("unreachable")
		}
	}

	*link = tree.NodeOf(k)
	return true
}

// Len counts the keys in the tree. The count isn't stored anywhere,
// so this walks the whole tree.
func (t *Tree[T]) Len() int {
	l := 0
	for i := t.Iterator(); i.Next(); {
		l++
	}
	return l
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	// Compare this to the classic recursive version:
	// the call stack lives inside the iterator instead.
	for i := t.Iterator(); i.Next(); {
		if !f(i.Item()) {
			return
		}
	}
}

// PreOrder applies f to each key in the tree in pre-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	if t.root == nil {
		return
	}

	stack := []*tree.Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f(n.Key) {
			return
		}

		// right first, so that left is popped first
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
}

// Iterator returns an iterator object that yields
// keys from the tree in ascending order.
// It is safe to call on an empty tree.
func (t *Tree[T]) Iterator() *iterator.InOrderStack[T] {
	return iterator.NewInOrderStack(t.root, 0)
}

// ReverseIterator returns an iterator object that yields
// keys from the tree in descending order.
func (t *Tree[T]) ReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root, 0)
}

// All returns the keys of the tree in ascending order, for use with range:
//
//	for k := range t.All() {
//		... do stuff with k, or break ...
//	}
//
// Every range loop over the result starts a new iteration.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := t.Iterator(); i.Next(); {
			if !yield(i.Item()) {
				return
			}
		}
	}
}

// Backward is like All, but in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := t.ReverseIterator(); i.Next(); {
			if !yield(i.Item()) {
				return
			}
		}
	}
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine(ctx)
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called, ctx is done or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine(ctx context.Context) chops.CoIterator[T] {
	return chops.CoIterate[T](ctx, t.Iterator())
}

// Height returns the actual height of the tree, and the smallest height
// a tree with the same number of keys could have.
// An empty tree has height 0 and a single node has height 1.
func (t *Tree[T]) Height() (actual, ideal int) {
	if t.root == nil {
		return 0, 0
	}

	count := 0
	level := []*tree.Node[T]{t.root}
	var next []*tree.Node[T]

	for len(level) > 0 {
		actual++
		count += len(level)
		for _, n := range level {
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		level, next = next, level[:0]
	}

	return actual, bits.Len(uint(count))
}

// Balanced returns true if no tree with the same keys could be shorter.
func (t *Tree[T]) Balanced() bool {
	actual, ideal := t.Height()
	return actual == ideal
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T any](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
