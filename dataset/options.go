package dataset

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/tabprep/source"
)

// Split policy and seed defaults. The fractions are part of the data
// contract, not tunables.
const (
	// TestFraction is the share of all rows stratified into the test partition.
	TestFraction = 0.2

	// ValFraction is the share of all rows carved from the train tail as validation.
	ValFraction = 0.1

	// DefaultSeed seeds the split/shard generator unless WithSeed overrides it.
	DefaultSeed int64 = 123
)

// Options configures Load. Zero value is not meaningful; options are
// gathered internally from defaults plus the caller's Option list.
type Options struct {
	config     source.Config
	configPath string
	catalog    source.Catalog
	encodeCat  bool
	dataCut    int
	seed       int64
	logger     *slog.Logger
}

// Option is a functional option for Load.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		seed:   DefaultSeed,
		logger: slog.Default(),
	}
}

// WithConfig supplies the dataset configuration map. Unset datasets
// fall back to zero DatasetConfig values.
func WithConfig(cfg source.Config) Option {
	return func(o *Options) { o.config = cfg }
}

// WithConfigFile loads the dataset configuration map from a YAML file
// at Load time; a read or parse failure fails the Load call.
func WithConfigFile(path string) Option {
	return func(o *Options) { o.configPath = path }
}

// WithCatalog substitutes the external-dataset catalog, mainly for
// tests. Default is the live HTTP catalog at source.DefaultCatalogURL.
func WithCatalog(c source.Catalog) Option {
	return func(o *Options) { o.catalog = c }
}

// WithEncodeCat integer-encodes categorical columns instead of keeping
// them as strings. Leave unset for text-embedding-style consumers.
func WithEncodeCat() Option {
	return func(o *Options) { o.encodeCat = true }
}

// WithDataCut shards the training partition into k overlapping
// column/row subsets. k is validated during Load; values below 1 fail
// with split.ErrBadShardCount.
func WithDataCut(k int) Option {
	return func(o *Options) { o.dataCut = k }
}

// WithSeed fixes the random seed for the stratified split and any
// column shuffling. Same seed, same partitions.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithLogger routes the informational output through the given logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithSilent discards all informational output.
func WithSilent() Option {
	return func(o *Options) {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}
