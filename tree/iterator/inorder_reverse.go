package iterator

import (
	"go.lepak.sg/bst/tree"
)

var _ Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//	i := someBinaryTree.ReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T any] struct {
	at    *tree.Node[T]
	stack []*tree.Node[T]
	last  *tree.Node[T]
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T any](root *tree.Node[T], heightHint int) *InOrderReverse[T] {
	i := &InOrderReverse[T]{
		at:    root,
		stack: make([]*tree.Node[T], 0, heightHint),
	}
	i.pushRight()
	return i
}

func (i *InOrderReverse[T]) pushRight() {
	if i.at == nil {
		return
	}
	for i.at.Right != nil {
		i.stack = append(i.stack, i.at)
		i.at = i.at.Right
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T]) Next() bool {
	// Basically InOrderStack.Next but left and right are flipped.
	if i == nil || i.at == nil {
		if i != nil {
			i.last = nil
		}
		return false
	}

	i.last = i.at
	if i.at.Left != nil {
		i.at = i.at.Left
		i.pushRight()
	} else if len(i.stack) > 0 {
		i.at = i.stack[len(i.stack)-1]
		i.stack[len(i.stack)-1] = nil
		i.stack = i.stack[:len(i.stack)-1]
	} else {
		i.at = nil
	}

	return true
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.last.Key
}
