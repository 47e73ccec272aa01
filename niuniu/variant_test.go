package niuniu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariants(t *testing.T) {
	t.Run("no swappable cards", func(t *testing.T) {
		h := MustHand(1, 2, 4, 9, 10)
		got := Variants(h)
		require.Len(t, got, 1)
		assert.Equal(t, h.Values(), got[0])
	})

	t.Run("mask order", func(t *testing.T) {
		got := Variants(MustHand(3, 1, 6, 10, 10))
		assert.Equal(t, []Variant{
			{3, 1, 6, 10, 10},
			{3, 1, 3, 10, 10},
			{6, 1, 6, 10, 10},
			{6, 1, 3, 10, 10},
		}, got)
	})

	t.Run("rightmost swappable flips fastest", func(t *testing.T) {
		got := Variants(MustHand(3, 3, 1, 1, 1))
		assert.Equal(t, []Variant{
			{3, 3, 1, 1, 1},
			{3, 6, 1, 1, 1},
			{6, 3, 1, 1, 1},
			{6, 6, 1, 1, 1},
		}, got)
	})

	t.Run("original hand first", func(t *testing.T) {
		h := MustHand(6, 6, 3, 2, 3)
		assert.Equal(t, h.Values(), Variants(h)[0])
	})

	t.Run("only 3 and 6 change", func(t *testing.T) {
		h := MustHand(3, 4, 6, 7, 3)
		for _, v := range Variants(h) {
			assert.Equal(t, 4, v[1])
			assert.Equal(t, 7, v[3])
		}
	})
}

func TestVariantCountIsPowerOfTwo(t *testing.T) {
	var values [5]int
	for n := 0; n < 100000; n++ {
		x := n
		k := 0
		for i := range values {
			values[i] = x%10 + 1
			if values[i] == 3 || values[i] == 6 {
				k++
			}
			x /= 10
		}

		got := Variants(MustHand(values[:]...))
		require.Len(t, got, 1<<k, "hand %v", values)

		seen := make(map[Variant]bool, len(got))
		for _, v := range got {
			require.False(t, seen[v], "duplicate variant %v for hand %v", v, values)
			seen[v] = true
		}
	}
}

func TestSplits(t *testing.T) {
	all := Splits()
	require.Len(t, all, SplitCount)

	assert.Equal(t, Split{Triple: [3]int{0, 1, 2}, Pair: [2]int{3, 4}}, all[0])
	assert.Equal(t, Split{Triple: [3]int{0, 1, 3}, Pair: [2]int{2, 4}}, all[1])
	assert.Equal(t, Split{Triple: [3]int{2, 3, 4}, Pair: [2]int{0, 1}}, all[SplitCount-1])

	seen := map[[3]int]bool{}
	for _, s := range all {
		assert.False(t, seen[s.Triple])
		seen[s.Triple] = true

		used := map[int]bool{}
		for _, p := range append(s.Triple[:], s.Pair[:]...) {
			used[p] = true
		}
		assert.Len(t, used, HandSize)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		split   int
		ok      bool
		score   int
		double  bool
	}{
		{name: "triple not a multiple of ten", variant: Variant{1, 2, 3, 4, 5}, split: 0},
		{name: "pair sum multiple of ten scores ten", variant: Variant{10, 10, 10, 4, 6}, split: 0, ok: true, score: 10},
		{name: "pair sum mod ten", variant: Variant{2, 3, 5, 9, 9}, split: 0, ok: true, score: 8, double: true},
		{name: "double niu niu", variant: Variant{10, 10, 10, 5, 5}, split: 0, ok: true, score: 10, double: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Score(tt.variant, splits[tt.split])
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.score, c.Score)
			assert.Equal(t, tt.double, c.Double)
		})
	}
}

func TestSearchSplits(t *testing.T) {
	got := SearchSplits(Variant{5, 5, 10, 10, 10})
	require.Len(t, got, 4)
	for _, c := range got {
		assert.Zero(t, c.Variant.Sum(c.Split.Triple[:]...)%10)
	}
	assert.Equal(t, [3]int{0, 1, 2}, got[0].Split.Triple)

	assert.Empty(t, SearchSplits(Variant{1, 1, 1, 2, 2}))
}
