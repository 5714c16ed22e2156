// SPDX-License-Identifier: MIT

package encode

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tabprep/frame"
)

// DefaultTruthTokens returns the default vocabulary of strings mapped
// to 1 when encoding binary columns: yes, true, 1, t.
func DefaultTruthTokens() map[string]struct{} {
	return map[string]struct{}{"yes": {}, "true": {}, "1": {}, "t": {}}
}

// TruthTokens builds a truth-token set from a user-supplied list,
// lowercasing each token.
func TruthTokens(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[strings.ToLower(tok)] = struct{}{}
	}
	return set
}

// Options configures Apply.
//
// Ordinal – integer-encode categorical columns instead of keeping them
// as strings. Truth – the truth-token set for binary columns; nil means
// DefaultTruthTokens().
type Options struct {
	Ordinal bool
	Truth   map[string]struct{}
}

// Numeric imputes a column with its numeric mode and rescales it so min
// maps to 0 and max to 1. A constant column becomes all zeros.
func Numeric(s *frame.Series) (*frame.Series, error) {
	vals, err := imputeFloats(s)
	if err != nil {
		return nil, err
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	span := hi - lo
	out := make([]float64, len(vals))
	if span > 0 {
		for i, v := range vals {
			out[i] = (v - lo) / span
		}
	}
	return frame.NewFloatSeries(s.Name(), out), nil
}

// Categorical imputes a column with its string mode. With ordinal=false
// the result stays a String series; with ordinal=true categories are
// sorted and mapped to dense integer codes.
func Categorical(s *frame.Series, ordinal bool) (*frame.Series, error) {
	vals, err := imputeStrings(s)
	if err != nil {
		return nil, err
	}
	if !ordinal {
		return frame.NewStringSeries(s.Name(), vals), nil
	}
	cats := make([]string, 0)
	seen := make(map[string]struct{})
	for _, v := range vals {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			cats = append(cats, v)
		}
	}
	sort.Strings(cats)
	code := make(map[string]int64, len(cats))
	for i, c := range cats {
		code[c] = int64(i)
	}
	out := make([]int64, len(vals))
	for i, v := range vals {
		out[i] = code[v]
	}
	return frame.NewIntSeries(s.Name(), out), nil
}

// Binary imputes a column with its string mode, then maps each cell to
// 1 iff its lowercased text belongs to the truth-token set, else 0.
func Binary(s *frame.Series, truth map[string]struct{}) (*frame.Series, error) {
	vals, err := imputeStrings(s)
	if err != nil {
		return nil, err
	}
	if truth == nil {
		truth = DefaultTruthTokens()
	}
	out := make([]int64, len(vals))
	for i, v := range vals {
		if _, ok := truth[strings.ToLower(v)]; ok {
			out[i] = 1
		}
	}
	return frame.NewIntSeries(s.Name(), out), nil
}

// Apply encodes every column of tbl according to its role and returns a
// new table with the fixed output order: binary, numeric, categorical.
// Roles with no members are skipped. Statistics are fit on the whole
// table (see the package doc's leakage caveat).
func Apply(tbl *frame.Table, binCols, numCols, catCols []string, opts Options) (*frame.Table, error) {
	encoded := make([]*frame.Series, 0, len(binCols)+len(numCols)+len(catCols))

	for _, name := range binCols {
		s, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		enc, err := Binary(s, opts.Truth)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, enc)
	}
	for _, name := range numCols {
		s, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		enc, err := Numeric(s)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, enc)
	}
	for _, name := range catCols {
		s, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		enc, err := Categorical(s, opts.Ordinal)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, enc)
	}

	return frame.NewTable(tbl.Index(), encoded...)
}
