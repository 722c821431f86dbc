package iterator

import (
	"go.lepak.sg/bst/tree"
)

func newCompleteTree_2Tall() *tree.Node[int] {
	return &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 1,
			},
			Key: 2,
			Right: &tree.Node[int]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 5,
			},
			Key: 6,
			Right: &tree.Node[int]{
				Key: 7,
			},
		},
	}
}

// 8
// ├─L─5
// │   ├─L─1
// │   └─R─7
// │       └─L─6
// └─R─9
func newDogleg() *tree.Node[int] {
	return &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 1,
			},
			Key: 5,
			Right: &tree.Node[int]{
				Left: &tree.Node[int]{
					Key: 6,
				},
				Key: 7,
			},
		},
		Key: 8,
		Right: &tree.Node[int]{
			Key: 9,
		},
	}
}

// chain builds a degenerate tree from keys, each key becoming
// the left (if smaller) or right (if larger) child of the one before.
func chain(keys ...int) *tree.Node[int] {
	if len(keys) == 0 {
		return nil
	}
	root := tree.NodeOf(keys[0])
	n := root
	for _, k := range keys[1:] {
		if k < n.Key {
			n.Left = tree.NodeOf(k)
			n = n.Left
		} else {
			n.Right = tree.NodeOf(k)
			n = n.Right
		}
	}
	return root
}
