package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, Less, Compare(1, 2))
	assert.Equal(t, Equal, Compare(2, 2))
	assert.Equal(t, Greater, Compare(3, 2))
	assert.Equal(t, Less, Compare("a", "b"))
	assert.Equal(t, Greater, Compare(1.5, -1.5))
}

func TestCompareFunc(t *testing.T) {
	cmp := CompareFunc(strings.Compare)
	assert.Equal(t, Less, cmp("a", "b"))
	assert.Equal(t, Equal, cmp("b", "b"))
	assert.Equal(t, Greater, cmp("c", "b"))

	// only the sign counts
	byLen := CompareFunc(func(a, b string) int { return len(a) - len(b) })
	assert.Equal(t, Less, byLen("a", "ccc"))
	assert.Equal(t, Greater, byLen("ccc", "a"))
	assert.Equal(t, Equal, byLen("ab", "cd"))
}

func TestOrder_String(t *testing.T) {
	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "<invalid tree.Order>", Order(7).String())
}

func TestNodeOf(t *testing.T) {
	n := NodeOf("k")
	assert.Equal(t, "k", n.Key)
	assert.Nil(t, n.Left)
	assert.Nil(t, n.Right)
}
