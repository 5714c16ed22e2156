// SPDX-License-Identifier: MIT

package split

import (
	"fmt"
	"math/rand"
	"sort"
)

// Shard pairs a block of training-row positions with the column names
// that shard sees. Rows partition the training set; column sets may
// overlap across shards.
type Shard struct {
	Rows []int
	Cols []string
}

// Shards builds k shards over nTrain training rows and the given
// retained column list. The column list is shuffled with rng before
// cutting, so the caller's slice is not modified but the shard
// composition depends on rng state.
func Shards(cols []string, nTrain, k int, rng *rand.Rand) ([]Shard, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadShardCount, k)
	}
	if len(cols)/k == 0 {
		return nil, fmt.Errorf("%w: %d column(s), %d shard(s)", ErrTooFewColumns, len(cols), k)
	}

	shuffled := make([]string, len(cols))
	copy(shuffled, cols)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	blocks, remainder := columnBlocks(shuffled, k)
	blockSize := len(shuffled) / k
	colSets := make([][]string, len(blocks))
	for i, b := range blocks {
		colSets[i] = append(append([]string{}, b...), sampleComplement(shuffled, b, blockSize/2, rng)...)
	}
	colSets = redistributeRemainder(colSets, remainder)

	rows := rowBlocks(nTrain, k)
	out := make([]Shard, k)
	for i := 0; i < k; i++ {
		out[i] = Shard{Rows: rows[i], Cols: colSets[i]}
	}
	return out, nil
}

// columnBlocks cuts the shuffled column list into k contiguous blocks
// of floor(len/k) columns plus the leftover tail (empty when k divides
// the column count evenly).
func columnBlocks(shuffled []string, k int) (blocks [][]string, remainder []string) {
	size := len(shuffled) / k
	blocks = make([][]string, k)
	for i := 0; i < k; i++ {
		blocks[i] = shuffled[i*size : (i+1)*size]
	}
	return blocks, shuffled[k*size:]
}

// sampleComplement draws n distinct columns that are outside block.
// The complement is sorted before sampling so the draw depends only on
// rng state, not on shuffle order. When the complement holds fewer than
// n columns (k=1 being the degenerate case), the whole complement is
// returned.
func sampleComplement(all, block []string, n int, rng *rand.Rand) []string {
	inBlock := make(map[string]struct{}, len(block))
	for _, c := range block {
		inBlock[c] = struct{}{}
	}
	comp := make([]string, 0, len(all)-len(block))
	for _, c := range all {
		if _, ok := inBlock[c]; !ok {
			comp = append(comp, c)
		}
	}
	sort.Strings(comp)
	if n > len(comp) {
		n = len(comp)
	}
	picked := make([]string, n)
	for i, p := range rng.Perm(len(comp))[:n] {
		picked[i] = comp[p]
	}
	return picked
}

// redistributeRemainder appends leftover column i to shard i instead of
// keeping a (k+1)-th shard. Each shard that receives a leftover column
// has its column list deduplicated AND sorted; shards past the
// remainder keep their original injection order. Both effects are part
// of the upstream contract and are covered by dedicated tests.
func redistributeRemainder(shards [][]string, remainder []string) [][]string {
	for i, col := range remainder {
		shards[i] = sortUnique(append(shards[i], col))
	}
	return shards
}

func sortUnique(cols []string) []string {
	sort.Strings(cols)
	out := cols[:0]
	for i, c := range cols {
		if i == 0 || c != cols[i-1] {
			out = append(out, c)
		}
	}
	return out
}

// rowBlocks splits positions 0..n-1 into k contiguous blocks; the first
// n%k blocks are one row longer than the rest.
func rowBlocks(n, k int) [][]int {
	size, extra := n/k, n%k
	out := make([][]int, k)
	next := 0
	for i := 0; i < k; i++ {
		length := size
		if i < extra {
			length++
		}
		block := make([]int, length)
		for j := 0; j < length; j++ {
			block[j] = next
			next++
		}
		out[i] = block
	}
	return out
}
