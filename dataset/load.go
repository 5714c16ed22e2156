package dataset

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tabprep/encode"
	"github.com/katalvlaran/tabprep/frame"
	"github.com/katalvlaran/tabprep/source"
	"github.com/katalvlaran/tabprep/split"
)

// Partition is one (feature table, labels) pair. Labels align with the
// table by position; the table's index carries row identity.
type Partition struct {
	Table  *frame.Table
	Labels *frame.Series
}

// Result is everything Load produces. Exactly one of Train or Shards is
// populated: Train when no data cut was requested, Shards (k entries)
// otherwise.
type Result struct {
	All    Partition
	Train  *Partition
	Shards []Partition
	Val    Partition
	Test   Partition

	CatCols []string
	NumCols []string
	BinCols []string
}

// Load runs the whole preparation pipeline for the named dataset: see
// the package documentation for the stage-by-stage contract.
func Load(name string, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.configPath != "" {
		cfg, err := source.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		o.config = cfg
	}

	res, err := source.Resolve(name, o.config, o.catalog, o.logger)
	if err != nil {
		return nil, err
	}

	binCols, numCols, catCols := classify(res.AllCols, res.NumCols, res.BinCols)

	var truth map[string]struct{}
	if len(res.Config.BinaryIndicator) > 0 {
		truth = encode.TruthTokens(res.Config.BinaryIndicator)
	}
	encoded, err := encode.Apply(res.Table, binCols, numCols, catCols, encode.Options{
		Ordinal: o.encodeCat,
		Truth:   truth,
	})
	if err != nil {
		return nil, err
	}
	labels := res.Target

	summarize(o, res.Name, encoded, labels, catCols, numCols, binCols)

	rng := rand.New(rand.NewSource(o.seed))
	n := encoded.NumRows()
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = labels.At(i)
	}
	trainPos, testPos, err := split.Stratified(keys, TestFraction, rng)
	if err != nil {
		return nil, err
	}
	trainPos, valPos := split.CarveValidation(trainPos, split.ValSize(n, ValFraction))

	out := &Result{
		All:     Partition{Table: encoded, Labels: labels},
		CatCols: catCols,
		NumCols: numCols,
		BinCols: binCols,
	}
	if out.Val, err = take(encoded, labels, valPos); err != nil {
		return nil, err
	}
	if out.Test, err = take(encoded, labels, testPos); err != nil {
		return nil, err
	}

	train, err := take(encoded, labels, trainPos)
	if err != nil {
		return nil, err
	}
	if o.dataCut == 0 {
		out.Train = &train
		return out, nil
	}

	shards, err := split.Shards(res.AllCols, train.Table.NumRows(), o.dataCut, rng)
	if err != nil {
		return nil, err
	}
	out.Shards = make([]Partition, len(shards))
	for i, sh := range shards {
		p, err := take(train.Table, train.Labels, sh.Rows)
		if err != nil {
			return nil, err
		}
		if p.Table, err = p.Table.Select(sh.Cols); err != nil {
			return nil, err
		}
		out.Shards[i] = p
	}
	return out, nil
}

// classify partitions the retained columns into the three role sets.
// The numeric and binary lists take precedence over the categorical
// default; if a name appears in both lists, numeric wins.
func classify(allCols, numCols, binCols []string) (bin, num, cat []string) {
	isNum := make(map[string]bool, len(numCols))
	for _, c := range numCols {
		isNum[c] = true
	}
	isBin := make(map[string]bool, len(binCols))
	for _, c := range binCols {
		if !isNum[c] {
			isBin[c] = true
		}
	}
	for _, c := range allCols {
		switch {
		case isBin[c]:
			bin = append(bin, c)
		case isNum[c]:
			num = append(num, c)
		default:
			cat = append(cat, c)
		}
	}
	return bin, num, cat
}

// summarize emits the one-line dataset summary. Informational only.
func summarize(o Options, name string, tbl *frame.Table, labels *frame.Series, cat, num, bin []string) {
	pos, total := 0, labels.Len()
	for i := 0; i < total; i++ {
		if labels.At(i) == "1" {
			pos++
		}
	}
	rate := 0.0
	if total > 0 {
		rate = float64(pos) / float64(total)
	}
	o.logger.Info("dataset summary",
		"name", name,
		"samples", tbl.NumRows(),
		"features", tbl.NumCols(),
		"categorical", len(cat),
		"numerical", len(num),
		"binary", len(bin),
		"pos_rate", fmt.Sprintf("%.2f", rate),
	)
}

func take(tbl *frame.Table, labels *frame.Series, pos []int) (Partition, error) {
	t, err := tbl.TakeRows(pos)
	if err != nil {
		return Partition{}, err
	}
	l, err := labels.TakeRows(pos)
	if err != nil {
		return Partition{}, err
	}
	return Partition{Table: t, Labels: l}, nil
}
