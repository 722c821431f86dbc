package iterator

import (
	"go.lepak.sg/bst/tree"
)

var _ Iterator[int] = (*InOrderStack[int])(nil)

// InOrderStack is an iterator object over a binary tree.
// It does not rely on parent pointers (the nodes don't have any),
// instead keeping an internal stack of ancestors whose right
// subtrees have not been visited yet.
//
// The iterator never writes to the tree, so any number of them
// may run over the same tree at once, from any goroutine, as long
// as nobody inserts into the tree in the meantime.
// The result of mutating the tree while iterating over it is undefined.
type InOrderStack[T any] struct {
	// at is the smallest key not yielded yet, or nil once exhausted.
	at *tree.Node[T]
	// ancestors of at with unvisited right subtrees, nearest on top
	stack []*tree.Node[T]
	// last is the node yielded by the last call to Next
	last *tree.Node[T]
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// Creating the iterator runs everything up to (1), all the way
// down to the leftmost child node. Each pending visit frame
// becomes an entry on i.stack and the leftmost node becomes i.at.
// A call to Next is equivalent to f(i.at) followed by (2): if there
// is a right subtree, walk down its left spine, otherwise resume
// the nearest pending frame by popping it off i.stack.

// NewInOrderStack creates a new in-order iterator over the tree
// rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
// Note: This is meant to be called by other tree implementations.
func NewInOrderStack[T any](root *tree.Node[T], heightHint int) *InOrderStack[T] {
	i := &InOrderStack[T]{
		at:    root,
		stack: make([]*tree.Node[T], 0, heightHint),
	}
	i.pushLeft()
	return i
}

// pushLeft walks down the left spine from i.at, stacking every node
// that has a left child. i.at ends at the leftmost node.
func (i *InOrderStack[T]) pushLeft() {
	if i.at == nil {
		return
	}
	for i.at.Left != nil {
		i.stack = append(i.stack, i.at)
		i.at = i.at.Left
	}
}

func (i *InOrderStack[T]) advance() *tree.Node[T] {
	if i == nil || i.at == nil {
		return nil
	}

	ret := i.at
	if ret.Right != nil {
		i.at = ret.Right
		i.pushLeft()
	} else if len(i.stack) > 0 {
		i.at = i.stack[len(i.stack)-1]
		i.stack[len(i.stack)-1] = nil
		i.stack = i.stack[:len(i.stack)-1]
	} else {
		i.at = nil
	}

	return ret
}

// Pull returns the next key in order. Once the tree is exhausted,
// ok is false and k is the zero T, on this and every later call.
func (i *InOrderStack[T]) Pull() (k T, ok bool) {
	n := i.advance()
	if i != nil {
		i.last = n
	}
	if n == nil {
		return
	}
	return n.Key, true
}

// Next returns true if there is a next key to yield with Item.
// Next must always be called before Item.
func (i *InOrderStack[T]) Next() bool {
	_, ok := i.Pull()
	return ok
}

// Item returns the current key of the iterator.
func (i *InOrderStack[T]) Item() T {
	return i.last.Key
}

// Ref returns a pointer to the current key as it is stored in the tree.
// The key must not be modified through it: the tree relies on keys
// never changing their order.
func (i *InOrderStack[T]) Ref() *T {
	return &i.last.Key
}

// Depth returns the number of pending ancestors, which never exceeds
// the height of the tree.
func (i *InOrderStack[T]) Depth() int {
	return len(i.stack)
}
