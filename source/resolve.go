package source

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/tabprep/frame"
)

// Resolved is the Source Resolver's product: the raw feature table, the
// target vector aligned with it, the ordered retained column list, and
// the numeric/binary role lists (the Column Classifier derives the
// categorical remainder).
//
// Local mode returns the target exactly as read; external mode returns
// it label-encoded to dense integers 0..k-1 with Classes holding the
// original values in code order.
type Resolved struct {
	Name    string
	Table   *frame.Table
	Target  *frame.Series
	AllCols []string
	NumCols []string
	BinCols []string
	Classes []string
	Config  DatasetConfig
}

// Resolve turns a dataset identifier (filesystem path or catalog
// name/id) into a Resolved. A nil cfg means DefaultConfig(); a nil
// catalog means the live HTTP catalog at DefaultCatalogURL.
func Resolve(identifier string, cfg Config, catalog Catalog, log *slog.Logger) (*Resolved, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = slog.Default()
	}

	if info, err := os.Stat(identifier); err == nil && info.IsDir() {
		log.Info("loading dataset", "source", "local", "dir", identifier)
		res, err := local(identifier)
		if err != nil {
			return nil, err
		}
		res.Config = cfg[identifier]
		return res, nil
	}

	if catalog == nil {
		catalog = NewHTTPCatalog("", nil)
	}
	remote, err := catalog.Fetch(identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %q is neither a local directory nor a catalog dataset",
				ErrNotFound, identifier)
		}
		return nil, err
	}
	log.Info("loading dataset", "source", "catalog", "name", remote.Name)
	return fromRemote(remote, cfg)
}

// fromRemote applies the external-mode policy: rename, constant-column
// drop, role derivation, target label encoding.
func fromRemote(remote *RemoteDataset, cfg Config) (*Resolved, error) {
	dsCfg := cfg[remote.Name]
	attrs := remote.AttributeNames
	tbl := remote.Table
	nominal := remote.Nominal

	if len(dsCfg.Cols) > 0 {
		if len(dsCfg.Cols) != len(attrs) {
			return nil, fmt.Errorf("%w: dataset %q has %d attributes, rename list has %d",
				ErrShapeMismatch, remote.Name, len(attrs), len(dsCfg.Cols))
		}
		renamed := make([]*frame.Series, len(attrs))
		newNominal := make(map[string]bool, len(attrs))
		for i, old := range attrs {
			s, err := tbl.Column(old)
			if err != nil {
				return nil, err
			}
			renamed[i] = s.Rename(dsCfg.Cols[i])
			newNominal[dsCfg.Cols[i]] = nominal[old]
		}
		var err error
		if tbl, err = frame.NewTable(tbl.Index(), renamed...); err != nil {
			return nil, err
		}
		attrs = dsCfg.Cols
		nominal = newNominal
	}

	// Drop columns with at most one distinct value.
	dropped := make(map[string]bool)
	for _, name := range attrs {
		s, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		if s.NUnique() <= 1 {
			dropped[name] = true
		}
	}

	var allCols, catCols, numCols []string
	for _, name := range attrs {
		if dropped[name] {
			continue
		}
		allCols = append(allCols, name)
		if nominal[name] {
			catCols = append(catCols, name)
		} else {
			numCols = append(numCols, name)
		}
	}

	// Binary columns: configured names still present among the
	// categorical columns, in categorical order.
	wantBin := make(map[string]bool, len(dsCfg.Bin))
	for _, name := range dsCfg.Bin {
		wantBin[name] = true
	}
	var binCols []string
	for _, name := range catCols {
		if wantBin[name] {
			binCols = append(binCols, name)
		}
	}

	target, classes := frame.LabelEncode(remote.Target)

	return &Resolved{
		Name:    remote.Name,
		Table:   tbl,
		Target:  target,
		AllCols: allCols,
		NumCols: numCols,
		BinCols: binCols,
		Classes: classes,
		Config:  dsCfg,
	}, nil
}
