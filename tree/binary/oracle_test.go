package binary

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/assert"
	"go.lepak.sg/bst/tree/iterator"
)

// The trees below are all balanced, so their shapes have nothing in
// common with ours, but every one of them must agree on the order.

func randomInserts(rd *rand.Rand, n, keyRange int) []int {
	inserts := make([]int, n)
	for i := range inserts {
		inserts[i] = rd.Intn(keyRange)
	}
	return inserts
}

func TestOracle_GoogleBTree(t *testing.T) {
	rd := rand.New(rand.NewSource(1))

	for r := 0; r < 20; r++ {
		inserts := randomInserts(rd, 1000, 500)

		bt := btree.NewOrderedG[int](4)
		for _, k := range inserts {
			bt.ReplaceOrInsert(k)
		}
		var want []int
		bt.Ascend(func(k int) bool {
			want = append(want, k)
			return true
		})

		tr := FromSlice(inserts)
		assert.Equal(t, want, iterator.Collect[int](tr.Iterator()), "round %d", r)
		assert.Equal(t, bt.Len(), tr.Len(), "round %d", r)
	}
}

func TestOracle_GodsTreeSet(t *testing.T) {
	rd := rand.New(rand.NewSource(2))

	for r := 0; r < 20; r++ {
		inserts := randomInserts(rd, 1000, 500)

		set := treeset.NewWithIntComparator()
		tr := New[int]()
		for _, k := range inserts {
			// both must agree on what counts as new
			assert.Equal(t, !set.Contains(k), tr.Insert(k))
			set.Add(k)
		}

		var want []int
		for _, v := range set.Values() {
			want = append(want, v.(int))
		}
		assert.Equal(t, want, iterator.Collect[int](tr.Iterator()), "round %d", r)
	}
}

func TestOracle_LLRB(t *testing.T) {
	rd := rand.New(rand.NewSource(3))
	inserts := randomInserts(rd, 5000, 2000)

	lt := llrb.New()
	for _, k := range inserts {
		lt.ReplaceOrInsert(llrb.Int(k))
	}

	var want []int
	lt.AscendGreaterOrEqual(lt.Min(), func(i llrb.Item) bool {
		want = append(want, int(i.(llrb.Int)))
		return true
	})

	var desc []int
	lt.DescendLessOrEqual(lt.Max(), func(i llrb.Item) bool {
		desc = append(desc, int(i.(llrb.Int)))
		return true
	})

	tr := FromSlice(inserts)
	assert.Equal(t, want, iterator.Collect[int](tr.Iterator()))
	assert.Equal(t, desc, iterator.Collect[int](tr.ReverseIterator()))
}
