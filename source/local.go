package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/tabprep/frame"
)

// Sentinel errors for source resolution.
var (
	// ErrNotFound indicates an identifier resolvable neither as a local directory nor in the catalog.
	ErrNotFound = errors.New("source: dataset not found locally or in catalog")

	// ErrShapeMismatch indicates a rename list whose length disagrees with the attribute count.
	ErrShapeMismatch = errors.New("source: rename list length does not match attribute count")

	// ErrMissingColumn indicates a required column absent from the local data file.
	ErrMissingColumn = errors.New("source: required column missing")
)

// Local file layout.
const (
	dataFile    = "data_processed.csv"
	numFile     = "numerical_feature.txt"
	binFile     = "binary_feature.txt"
	targetLabel = "target_label"
)

// local reads the dataset directory layout: data_processed.csv with the
// row index in column 0 and a target_label column, plus the optional
// sidecar line-lists naming numeric and binary features.
func local(dir string) (*Resolved, error) {
	f, err := os.Open(filepath.Join(dir, dataFile))
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", dataFile, err)
	}
	defer f.Close()

	records, err := csv.NewReader(bufio.NewReader(f)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("source: parse %s: %w", dataFile, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("source: %s is empty", dataFile)
	}

	header := records[0]
	targetCol := -1
	for i, name := range header {
		if i > 0 && name == targetLabel {
			targetCol = i
		}
	}
	if targetCol < 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrMissingColumn, targetLabel, dataFile)
	}

	rows := records[1:]
	index := make([]string, len(rows))
	target := make([]string, len(rows))
	// Feature columns: everything but the index (0) and the target.
	var featPos []int
	var featNames []string
	for i := 1; i < len(header); i++ {
		if i == targetCol {
			continue
		}
		featPos = append(featPos, i)
		featNames = append(featNames, strings.ToLower(header[i]))
	}

	cells := make([][]string, len(featPos))
	for c := range cells {
		cells[c] = make([]string, len(rows))
	}
	for r, rec := range rows {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("source: %s row %d has %d fields, header has %d",
				dataFile, r+1, len(rec), len(header))
		}
		index[r] = rec[0]
		target[r] = rec[targetCol]
		for c, p := range featPos {
			cells[c][r] = rec[p]
		}
	}

	cols := make([]*frame.Series, len(featNames))
	for c, name := range featNames {
		cols[c] = frame.NewStringSeries(name, cells[c])
	}
	tbl, err := frame.NewTable(index, cols...)
	if err != nil {
		return nil, err
	}

	numCols, err := sidecar(filepath.Join(dir, numFile))
	if err != nil {
		return nil, err
	}
	binCols, err := sidecar(filepath.Join(dir, binFile))
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Name:    dir,
		Table:   tbl,
		Target:  frame.NewStringSeries(targetLabel, target),
		AllCols: featNames,
		NumCols: numCols,
		BinCols: binCols,
	}, nil
}

// sidecar reads a one-name-per-line feature list; a missing file is an
// empty list, not an error. Lines are trimmed and lowercased; blank
// lines are skipped.
func sidecar(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		name := strings.ToLower(strings.TrimSpace(sc.Text()))
		if name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("source: read %s: %w", filepath.Base(path), err)
	}
	return names, nil
}
