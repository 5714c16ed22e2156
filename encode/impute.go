// SPDX-License-Identifier: MIT

package encode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tabprep/frame"
)

// Sentinel errors for encoding operations.
var (
	// ErrAllMissing indicates a column with no observed value to compute a mode from.
	ErrAllMissing = errors.New("encode: column is entirely missing")

	// ErrNotNumeric indicates a cell in a declared-numeric column that does not parse as float64.
	ErrNotNumeric = errors.New("encode: numeric column contains non-numeric cell")
)

// ModeString returns the most frequent value; ties break toward the
// lexicographically smallest candidate.
func ModeString(values []string) (string, error) {
	if len(values) == 0 {
		return "", ErrAllMissing
	}
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	best, bestN := "", -1
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	return best, nil
}

// ModeFloat64 returns the most frequent value; ties break toward the
// smallest candidate.
func ModeFloat64(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrAllMissing
	}
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	best, bestN := 0.0, -1
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	return best, nil
}

// imputeStrings returns the series' cells with every missing cell
// replaced by the column mode.
func imputeStrings(s *frame.Series) ([]string, error) {
	n := s.Len()
	observed := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if !s.Missing(i) {
			observed = append(observed, s.At(i))
		}
	}
	mode, err := ModeString(observed)
	if err != nil {
		return nil, fmt.Errorf("%w: column %q", err, s.Name())
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if s.Missing(i) {
			out[i] = mode
		} else {
			out[i] = s.At(i)
		}
	}
	return out, nil
}

// imputeFloats parses the series' observed cells as float64 and fills
// missing cells with the numeric mode.
func imputeFloats(s *frame.Series) ([]float64, error) {
	n := s.Len()
	parsed := make([]float64, n)
	observed := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if s.Missing(i) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s.At(i)), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q cell %d (%q)",
				ErrNotNumeric, s.Name(), i, s.At(i))
		}
		parsed[i] = v
		observed = append(observed, v)
	}
	mode, err := ModeFloat64(observed)
	if err != nil {
		return nil, fmt.Errorf("%w: column %q", err, s.Name())
	}
	for i := 0; i < n; i++ {
		if s.Missing(i) {
			parsed[i] = mode
		}
	}
	return parsed, nil
}
