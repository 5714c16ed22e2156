// Package source resolves a dataset identifier into a raw feature
// table, a target vector, and per-role column lists, from one of two
// places:
//
//   - Local mode: the identifier names an existing directory holding
//     data_processed.csv (column 0 = row index, a target_label column
//     required) plus optional numerical_feature.txt /
//     binary_feature.txt sidecar line-lists. Feature column names are
//     lowercased; columns in neither sidecar default to categorical.
//     The target is returned raw, exactly as read.
//   - External mode: the identifier is a symbolic name or numeric id
//     looked up in an OpenML-style JSON catalog. The catalog supplies
//     the feature table, the raw target, a per-column nominal
//     indicator, and the attribute-name list. Constant columns (at
//     most one distinct value) are dropped from every list; a config
//     rename list is applied first; binary columns are the configured
//     names still present among the (post-drop) categorical columns;
//     the target is label-encoded to dense integers 0..k-1.
//
// Dataset behavior is tuned through a typed Config: a mapping from
// dataset name to an optional column-rename list, an explicit
// binary-column list, and a truth-token override for binary encoding.
// Config files are YAML; see LoadConfig.
//
// Errors (sentinel):
//
//   - ErrNotFound      if the identifier is neither a local directory
//     nor a catalog entry.
//   - ErrShapeMismatch if a rename list length disagrees with the
//     attribute count.
//   - ErrMissingColumn if the local file lacks the target column.
//
// Network behavior is deliberately primitive: one GET per resource, no
// retries, no timeouts beyond the injected http.Client's own; a fetch
// or parse failure propagates to the caller as-is.
package source
