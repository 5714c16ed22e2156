// Package frame provides the column-typed, in-memory table primitives
// that the rest of tabprep is built on: Series (one named column) and
// Table (an ordered collection of equal-length Series plus a row index).
//
// Overview:
//
//   - A Series holds exactly one of three storage kinds: String (raw or
//     categorical data), Float (numeric features), or Int (binary flags
//     and ordinal codes). The kind is fixed at construction; encoders
//     produce new Series rather than mutating existing ones.
//   - Raw String series carry a missing-value mask. A cell is missing
//     when its trimmed, lowercased text is one of: "", "na", "nan", "?".
//   - A Table keeps its Series in insertion order and aligns every
//     Series with a shared row index. Row subsetting (TakeRows) and
//     column subsetting (Select) always preserve that alignment.
//
// Invariants:
//
//   - All Series in a Table have the same length as the row index.
//   - Column names within a Table are unique.
//   - TakeRows and Select never reorder data relative to the positions
//     they were asked for; Select returns columns in the order the
//     caller named them.
//
// Errors (sentinel):
//
//   - ErrLengthMismatch  if a Series length disagrees with the index.
//   - ErrDuplicateColumn if two Series share a name.
//   - ErrUnknownColumn   if a requested column does not exist.
//   - ErrRowRange        if a requested row position is out of range.
//
// See also: encode (per-kind feature encoding), split (partitioning),
// dataset (the public Load entry point).
package frame
