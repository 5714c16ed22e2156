package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/tabprep/dataset"
)

// writePartitions dumps every partition (and shard) as
// <outDir>/<name>.csv with the row index in column 0 and the label in
// the last column.
func writePartitions(outDir string, res *dataset.Result) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	parts := map[string]dataset.Partition{
		"val":  res.Val,
		"test": res.Test,
	}
	if res.Train != nil {
		parts["train"] = *res.Train
	}
	for i, sh := range res.Shards {
		parts[fmt.Sprintf("train_shard_%d", i)] = sh
	}
	for name, p := range parts {
		if err := writeCSV(filepath.Join(outDir, name+".csv"), p); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, p dataset.Partition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append(append([]string{""}, p.Table.Columns()...), "target_label")
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	cols := make([]func(int) string, 0, p.Table.NumCols())
	for _, name := range p.Table.Columns() {
		s, err := p.Table.Column(name)
		if err != nil {
			return err
		}
		cols = append(cols, s.At)
	}
	for r := 0; r < p.Table.NumRows(); r++ {
		rec := make([]string, 0, len(cols)+2)
		rec = append(rec, p.Table.Index()[r])
		for _, at := range cols {
			rec = append(rec, at(r))
		}
		rec = append(rec, p.Labels.At(r))
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}
