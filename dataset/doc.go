// Package dataset is tabprep's public entry point. Load resolves a
// tabular dataset from a local directory or the public catalog, cleans
// and encodes its columns by role (binary, numeric, categorical), and
// splits it into stratified train/validation/test partitions —
// optionally sharding the training set into overlapping column/row
// subsets for federated-style experiments.
//
// Overview:
//
//	res, err := dataset.Load("credit-g",
//	    dataset.WithSeed(123),
//	    dataset.WithDataCut(3),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// res.All, res.Shards (or res.Train), res.Val, res.Test
//	// res.BinCols, res.NumCols, res.CatCols
//
// Pipeline, in order:
//
//  1. Source resolution (package source): local directory layout or
//     OpenML-style catalog fetch, config renames, constant-column drop.
//  2. Column classification: the numeric and binary lists take
//     precedence (numeric wins when a name appears in both); every
//     remaining retained column is categorical. The three role sets
//     partition the retained columns.
//  3. Encoding (package encode): mode imputation, [0,1] min-max
//     scaling, string/ordinal categoricals, truth-token binaries;
//     output column order is binary, numeric, categorical.
//  4. Partitioning (package split): stratified 80/20 train/test split,
//     validation carved from the train tail (floor(0.1·n) rows), and
//     optional sharding when WithDataCut is set.
//
// Reproducibility:
//
//	One private generator seeded by WithSeed drives the stratified
//	shuffle and, when sharding, the column shuffle and complement
//	sampling — in that fixed order. Two Load calls with the same
//	inputs and seed return identical partitions and shards.
//
// Observability:
//
//	Load emits a one-line summary (sample count, feature count,
//	per-role counts, positive-label rate) and progress lines through
//	the configured *slog.Logger. The lines are informational only;
//	silence them with WithSilent.
//
// Errors: Load fails fast and whole — it either returns a fully-formed
// Result or an error wrapping one of the sentinel conditions
// (source.ErrNotFound, source.ErrShapeMismatch,
// source.ErrMissingColumn, split.ErrStratification,
// split.ErrBadShardCount). Missing cell values are never an error; they
// are imputed before anything can fail on them.
package dataset
