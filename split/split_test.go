// SPDX-License-Identifier: MIT

package split_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabprep/split"
)

// makeLabels builds n labels with the given class proportions.
func makeLabels(n int, posRate float64) []string {
	labels := make([]string, n)
	nPos := int(float64(n) * posRate)
	for i := range labels {
		if i < nPos {
			labels[i] = "1"
		} else {
			labels[i] = "0"
		}
	}
	return labels
}

//----------------------------------------------------------------------------//
// Stratified Tests
//----------------------------------------------------------------------------//

func TestStratified_DisjointExhaustive(t *testing.T) {
	labels := makeLabels(100, 0.3)
	train, test, err := split.Stratified(labels, 0.2, rand.New(rand.NewSource(123)))
	require.NoError(t, err)

	require.Len(t, test, 20, "test side must hold ceil(0.2*100) rows")
	require.Len(t, train, 80)

	seen := make(map[int]bool, 100)
	for _, p := range append(append([]int{}, train...), test...) {
		require.False(t, seen[p], "position %d appears twice", p)
		seen[p] = true
	}
	require.Len(t, seen, 100, "union must cover every row exactly once")
}

func TestStratified_PreservesClassProportions(t *testing.T) {
	labels := makeLabels(200, 0.25)
	_, test, err := split.Stratified(labels, 0.2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	pos := 0
	for _, p := range test {
		if labels[p] == "1" {
			pos++
		}
	}
	gotRate := float64(pos) / float64(len(test))
	assert.InDelta(t, 0.25, gotRate, 0.05,
		"test class proportion must approximate the full distribution")
}

func TestStratified_RareClassFails(t *testing.T) {
	labels := append(makeLabels(50, 0.5), "lonely")
	_, _, err := split.Stratified(labels, 0.2, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, split.ErrStratification)
}

func TestStratified_Deterministic(t *testing.T) {
	labels := makeLabels(60, 0.4)
	tr1, te1, err := split.Stratified(labels, 0.2, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	tr2, te2, err := split.Stratified(labels, 0.2, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, tr1, tr2)
	assert.Equal(t, te1, te2)
}

//----------------------------------------------------------------------------//
// Validation carve Tests
//----------------------------------------------------------------------------//

func TestCarveValidation_TakesTailExactly(t *testing.T) {
	train := []int{4, 9, 1, 7, 3, 8, 0, 5}
	rest, val := split.CarveValidation(train, 3)
	assert.Equal(t, []int{4, 9, 1, 7, 3}, rest)
	assert.Equal(t, []int{8, 0, 5}, val, "validation must be the tail, order preserved")
}

func TestCarveValidation_Oversized(t *testing.T) {
	rest, val := split.CarveValidation([]int{1, 2}, 5)
	assert.Empty(t, rest)
	assert.Equal(t, []int{1, 2}, val)
}

func TestValSize_Floor(t *testing.T) {
	cases := []struct{ n, want int }{{100, 10}, {105, 10}, {109, 10}, {110, 11}, {9, 0}}
	for _, tc := range cases {
		assert.Equal(t, tc.want, split.ValSize(tc.n, 0.1), "n=%d", tc.n)
	}
}

//----------------------------------------------------------------------------//
// Shard Tests
//----------------------------------------------------------------------------//

func colNames(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = string(rune('a' + i))
	}
	return cols
}

func TestShards_CountRowsAndColumns(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cols := colNames(12)
	shards, err := split.Shards(cols, 100, 3, rng)
	require.NoError(t, err)
	require.Len(t, shards, 3)

	// Row blocks must partition 0..99 contiguously with no overlap.
	next := 0
	for i, sh := range shards {
		for _, r := range sh.Rows {
			require.Equal(t, next, r, "shard %d rows must be contiguous", i)
			next++
		}
	}
	require.Equal(t, 100, next, "row blocks must cover the whole training set")

	// Each shard sees base block + injected complement columns.
	base := len(cols) / 3
	for i, sh := range shards {
		assert.GreaterOrEqual(t, len(sh.Cols), base, "shard %d", i)
		assert.LessOrEqual(t, len(sh.Cols), base+base/2+1, "shard %d", i)
	}
}

func TestShards_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := split.Shards(colNames(4), 10, 0, rng)
	assert.ErrorIs(t, err, split.ErrBadShardCount)
	_, err = split.Shards(colNames(2), 10, 3, rng)
	assert.ErrorIs(t, err, split.ErrTooFewColumns)
}

func TestShards_SingleShardSeesEverything(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	shards, err := split.Shards(colNames(6), 10, 1, rng)
	require.NoError(t, err)
	require.Len(t, shards, 1)
	assert.Len(t, shards[0].Cols, 6, "k=1 base block is the full column list")
	assert.Len(t, shards[0].Rows, 10)
}

//----------------------------------------------------------------------------//
// Pure helper Tests (remainder redistribution)
//----------------------------------------------------------------------------//

func TestColumnBlocks_EvenDivision(t *testing.T) {
	blocks, rem := split.ColumnBlocksForTest([]string{"a", "b", "c", "d"}, 2)
	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"a", "b"}, blocks[0])
	assert.Equal(t, []string{"c", "d"}, blocks[1])
	assert.Empty(t, rem)
}

func TestColumnBlocks_WithRemainder(t *testing.T) {
	blocks, rem := split.ColumnBlocksForTest([]string{"a", "b", "c", "d", "e", "f", "g"}, 3)
	require.Len(t, blocks, 3)
	for i, b := range blocks {
		assert.Len(t, b, 2, "block %d gets floor(7/3)=2 columns", i)
	}
	assert.Equal(t, []string{"g"}, rem, "leftover tail becomes the remainder")
}

func TestRedistributeRemainder_SortsAndDedupsTouchedShards(t *testing.T) {
	shards := [][]string{
		{"d", "b"},
		{"c", "a"},
		{"f", "e"},
	}
	out := split.RedistributeRemainderForTest(shards, []string{"z", "a"})

	assert.Equal(t, []string{"b", "d", "z"}, out[0],
		"shard 0 receives z and gets sorted")
	assert.Equal(t, []string{"a", "c"}, out[1],
		"shard 1 receives a duplicate, which dedups away, and gets sorted")
	assert.Equal(t, []string{"f", "e"}, out[2],
		"untouched shards keep their injection order")
}

func TestRedistributeRemainder_Empty(t *testing.T) {
	shards := [][]string{{"b", "a"}}
	out := split.RedistributeRemainderForTest(shards, nil)
	assert.Equal(t, [][]string{{"b", "a"}}, out, "no remainder, no reordering")
}

func TestRowBlocks_NearEqualSizes(t *testing.T) {
	cases := []struct {
		n, k      int
		wantSizes []int
	}{
		{10, 3, []int{4, 3, 3}},
		{9, 3, []int{3, 3, 3}},
		{11, 4, []int{3, 3, 3, 2}},
		{2, 2, []int{1, 1}},
	}
	for _, tc := range cases {
		blocks := split.RowBlocksForTest(tc.n, tc.k)
		require.Len(t, blocks, tc.k, "n=%d k=%d", tc.n, tc.k)
		total := 0
		for i, b := range blocks {
			assert.Len(t, b, tc.wantSizes[i], "n=%d k=%d block %d", tc.n, tc.k, i)
			total += len(b)
		}
		assert.Equal(t, tc.n, total)
	}
}

func TestSampleComplement_DisjointFromBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	all := colNames(10)
	block := all[:4]
	picked := split.SampleComplementForTest(all, block, 2, rng)
	require.Len(t, picked, 2)
	for _, c := range picked {
		assert.NotContains(t, block, c)
	}
}

func TestSampleComplement_ClampsToComplementSize(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	all := colNames(4)
	picked := split.SampleComplementForTest(all, all, 2, rng)
	assert.Empty(t, picked, "empty complement yields no injected columns")
}
