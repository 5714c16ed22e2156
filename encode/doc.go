// SPDX-License-Identifier: MIT

// Package encode implements the per-kind feature transformations:
// mode imputation, min-max scaling of numeric columns, ordinal or
// string passthrough for categorical columns, and truth-token mapping
// for binary columns.
//
// Overview:
//
//   - Every retained column is imputed first: missing cells are filled
//     with the column's most frequent value. The tie-break is explicit
//     and deterministic — numeric modes break toward the SMALLEST value,
//     string modes toward the LEXICOGRAPHICALLY smallest. Do not change
//     this: downstream reproducibility depends on it.
//   - Numeric columns are then rescaled linearly and independently so
//     each column's minimum maps to 0 and its maximum to 1. A constant
//     column maps to all zeros.
//   - Categorical columns stay as strings by default (text-embedding
//     consumers want the raw category names), or are ordinal-encoded
//     with codes assigned over the SORTED category set when requested.
//   - Binary columns are stringified, lowercased and mapped to 1 iff
//     the cell belongs to the truth-token set (default: yes, true, 1,
//     t), else 0.
//   - Apply re-assembles the table with a fixed column order: binary,
//     then numeric, then categorical.
//
// Leakage caveat:
//
//	Imputation statistics and scaling bounds are fit on the ENTIRE
//	table, before any train/test split. This reproduces the upstream
//	pipeline's behavior exactly and is kept for parity; it is a known
//	train/test leakage pattern and not a recommended starting point
//	for a fresh design.
//
// Errors (sentinel):
//
//   - ErrAllMissing if a column has no observed value to impute from.
//   - ErrNotNumeric if a declared-numeric cell does not parse.
package encode
