package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	assert.Nil(t, Collect[int](NewInOrderStack[int](nil, 0)))
	assert.Equal(t, []int{1, 5, 6, 7, 8, 9}, Collect[int](NewInOrderStack(newDogleg(), 0)))
}
