// Package tabprep prepares tabular datasets for machine-learning
// experiments: load, clean, encode, split — one call.
//
// 🚀 What is tabprep?
//
//	A small, deterministic data-preparation library that brings together:
//		• Source resolution: local CSV directories or a public dataset catalog
//		• Column roles: numeric, categorical and binary features, classified once
//		• Cleaning: per-column mode imputation with an explicit, documented tie-break
//		• Encoding: [0,1] min-max scaling, string/ordinal categoricals, truth-token binaries
//		• Splitting: stratified train/val/test partitions from a single seed
//		• Sharding: overlapping column/row subsets for federated-style setups
//
// ✨ Why choose tabprep?
//
//   - Reproducible – one seed drives every random decision, on every platform
//   - Typed config – dataset tweaks (renames, binary columns, truth tokens) are
//     structured and validated, not nested maps
//   - Pure Go – in-memory transforms, explicit errors, no hidden state
//
// Everything is organized under five subpackages:
//
//	frame/   — Series & Table primitives with row-index alignment
//	source/  — local-directory and catalog dataset resolution + config
//	encode/  — per-role imputation and feature encoding
//	split/   — stratified splitting, validation carve-out, sharding
//	dataset/ — the public Load entry point tying it all together
//
// Quick start:
//
//	res, err := dataset.Load("credit-g", dataset.WithSeed(123))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Train.Table.NumRows(), res.Val.Table.NumRows(), res.Test.Table.NumRows())
//
// A command-line wrapper lives in cmd/tabprep.
//
//	go get github.com/katalvlaran/tabprep
package tabprep
