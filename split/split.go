// SPDX-License-Identifier: MIT

package split

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Sentinel errors for partitioning operations.
var (
	// ErrStratification indicates a label class too rare to appear in both splits.
	ErrStratification = errors.New("split: label class has too few members to stratify")

	// ErrBadShardCount indicates a shard count below 1.
	ErrBadShardCount = errors.New("split: shard count must be at least 1")

	// ErrTooFewColumns indicates fewer columns than requested shards.
	ErrTooFewColumns = errors.New("split: fewer columns than shards")
)

// Stratified partitions row positions 0..len(labels)-1 into train and
// test so that each side's class proportions approximate the full
// distribution. The test side holds ceil(n·testFrac) rows, allocated
// across classes by largest remainder. Both slices come back in the
// rng's shuffled order.
//
// Every class must have at least 2 members so it can appear on both
// sides; otherwise ErrStratification is returned.
func Stratified(labels []string, testFrac float64, rng *rand.Rand) (train, test []int, err error) {
	n := len(labels)
	counts := make(map[string]int, 4)
	for _, l := range labels {
		counts[l]++
	}
	classes := make([]string, 0, len(counts))
	for c, cnt := range counts {
		if cnt < 2 {
			return nil, nil, fmt.Errorf("%w: class %q has %d member(s)", ErrStratification, c, cnt)
		}
		classes = append(classes, c)
	}
	sort.Strings(classes)

	quota := testQuota(classes, counts, n, testFrac)

	// Walk a global shuffle and fill each class's test quota first.
	remaining := make(map[string]int, len(quota))
	for c, q := range quota {
		remaining[c] = q
	}
	for _, p := range rng.Perm(n) {
		c := labels[p]
		if remaining[c] > 0 {
			remaining[c]--
			test = append(test, p)
		} else {
			train = append(train, p)
		}
	}
	return train, test, nil
}

// testQuota allocates the ceil(n·frac) test rows across classes by
// largest remainder, clamping every class to [1, count-1] so that both
// sides see every class.
func testQuota(classes []string, counts map[string]int, n int, frac float64) map[string]int {
	total := int(math.Ceil(float64(n) * frac))
	quota := make(map[string]int, len(classes))
	type rem struct {
		class string
		frac  float64
	}
	rems := make([]rem, 0, len(classes))
	assigned := 0
	for _, c := range classes {
		exact := frac * float64(counts[c])
		base := int(math.Floor(exact))
		quota[c] = base
		assigned += base
		rems = append(rems, rem{class: c, frac: exact - float64(base)})
	}
	// Hand out the leftover seats by descending remainder; ties break
	// on class name for determinism.
	sort.Slice(rems, func(i, j int) bool {
		if rems[i].frac != rems[j].frac {
			return rems[i].frac > rems[j].frac
		}
		return rems[i].class < rems[j].class
	})
	for i := 0; assigned < total && i < len(rems); i++ {
		quota[rems[i].class]++
		assigned++
	}
	for _, c := range classes {
		if quota[c] < 1 {
			quota[c] = 1
		}
		if quota[c] > counts[c]-1 {
			quota[c] = counts[c] - 1
		}
	}
	return quota
}

// ValSize returns the validation partition size for a dataset of n
// rows: floor(valFrac·n).
func ValSize(n int, valFrac float64) int {
	return int(math.Floor(valFrac * float64(n)))
}

// CarveValidation splits the train positions into (train, val) where
// val is the LAST valSize entries in current order. No reshuffling, no
// re-stratification. If valSize is not smaller than the partition, the
// whole partition becomes validation.
func CarveValidation(train []int, valSize int) (rest, val []int) {
	if valSize >= len(train) {
		return nil, train
	}
	cut := len(train) - valSize
	return train[:cut], train[cut:]
}
