package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/bst/tree"
)

func TestInOrderReverse(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node[int]
		post   func(t *testing.T, i *InOrderReverse[int])
	}{
		{
			name: "empty",
			create: func() *tree.Node[int] {
				return nil
			},
			post: func(t *testing.T, i *InOrderReverse[int]) {
				assert.False(t, i.Next(), "first")
				assert.False(t, i.Next(), "second")
			},
		},
		{
			name: "one",
			create: func() *tree.Node[int] {
				return &tree.Node[int]{
					Key: 1,
				}
			},
			post: func(t *testing.T, i *InOrderReverse[int]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.False(t, i.Next(), "second")
			},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			post: func(t *testing.T, i *InOrderReverse[int]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 7, i.Item())
				assert.True(t, i.Next(), "second")
				assert.Equal(t, 6, i.Item())
				assert.True(t, i.Next(), "third")
				assert.Equal(t, 5, i.Item())
				assert.True(t, i.Next(), "fourth")
				assert.Equal(t, 4, i.Item())
				assert.True(t, i.Next(), "fifth")
				assert.Equal(t, 3, i.Item())
				assert.True(t, i.Next(), "sixth")
				assert.Equal(t, 2, i.Item())
				assert.True(t, i.Next(), "seventh")
				assert.Equal(t, 1, i.Item())
				assert.False(t, i.Next(), "eighth")
			},
		},
		{
			name:   "dogleg",
			create: newDogleg,
			post: func(t *testing.T, i *InOrderReverse[int]) {
				assert.Equal(t, []int{9, 8, 7, 6, 5, 1}, Collect[int](i))
				assert.False(t, i.Next())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, NewInOrderReverse(tt.create(), 0))
		})
	}
}
