// SPDX-License-Identifier: MIT

// Package split implements row partitioning for tabular datasets:
// a stratified train/test split, a tail validation carve-out, and the
// optional column/row sharding used to simulate federated data.
//
// Overview:
//
//   - Stratified splits rows into train and test so that each side's
//     label-class proportions approximate the full dataset's. The test
//     partition totals ceil(n·testFrac) rows, allocated per class by
//     largest remainder; both partitions come out in shuffled order.
//   - CarveValidation takes the LAST floor(valFrac·total) rows of the
//     train partition, in its current order. The carve-out is not
//     re-stratified, so its label balance may be skewed. That is the
//     intended policy, not an oversight.
//   - Shards shuffles the full column list, cuts it into k base blocks
//     of floor(nCols/k) columns, injects floor(block/2) randomly
//     sampled complement columns into each, and pairs block i with the
//     i-th contiguous near-equal row block of the training partition.
//     When k does not divide the column count, the leftover columns are
//     redistributed one per earlier shard (and those shards' column
//     lists are sorted and deduplicated) instead of forming a (k+1)-th
//     shard.
//
// Determinism:
//
//	Every random decision draws from the *rand.Rand the caller passes
//	in, in a fixed order: stratified shuffle first, then column
//	shuffle, then per-shard complement sampling. Same seed, same
//	partitions, same shards — on every platform.
//
// Errors (sentinel):
//
//   - ErrStratification if a label class has fewer than 2 members.
//   - ErrBadShardCount  if the shard count is below 1.
//   - ErrTooFewColumns  if there are fewer columns than shards.
package split
