package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a single binary tree node. Each node is owned by exactly one parent
// (or by the tree itself, for the root). There is no parent pointer, so a
// subtree can never be reached from below.
type Node[T any] struct {
	Key         T
	Left, Right *Node[T]
}

func NodeOf[T any](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Compare orders l against r with the builtin operators.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// CompareFunc adapts a three-way comparison in the style of strings.Compare
// (negative, zero, positive) to an Order-returning one.
func CompareFunc[T any](cmp func(a, b T) int) func(l, r T) Order {
	return func(l, r T) Order {
		c := cmp(l, r)
		if c < 0 {
			return Less
		} else if c > 0 {
			return Greater
		} else {
			return Equal
		}
	}
}

// Instead of a comparison function, I also considered requiring
// interface[T any] { CompareTo(T) int } on the key itself.
// This allows T to mutate, for example if we defined:
//	type IntPtr *int
// and then implemented:
//	func (ip IntPtr) CompareTo(ip2 IntPtr) int {
//		return (*ip2)-(*ip)
//	}
// client code could mutate *IntPtr at any time, ruining our tree invariants.
// A function fixed at construction at least can't be swapped out later.
