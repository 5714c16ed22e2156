package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DatasetConfig tunes resolution and encoding for one dataset. All
// fields are optional.
//
// Cols            – rename list applied to the fetched table; its
// length must equal the attribute count (ErrShapeMismatch otherwise).
// Only meaningful in external mode.
// Bin             – column names to treat as binary. Only names still
// present among the dataset's categorical columns take effect; only
// meaningful in external mode.
// BinaryIndicator – truth tokens for binary encoding, overriding the
// default yes/true/1/t vocabulary.
type DatasetConfig struct {
	Cols            []string `yaml:"cols"`
	Bin             []string `yaml:"bin"`
	BinaryIndicator []string `yaml:"binary_indicator"`
}

// Config maps dataset names to their DatasetConfig.
type Config map[string]DatasetConfig

// DefaultConfig returns the built-in dataset configuration: the
// credit-g dataset's own_telephone and foreign_worker columns are
// binary.
func DefaultConfig() Config {
	return Config{
		"credit-g": {Bin: []string{"own_telephone", "foreign_worker"}},
	}
}

// LoadConfig reads a whole Config from a YAML file of the shape:
//
//	credit-g:
//	  bin: [own_telephone, foreign_worker]
//	my-data:
//	  cols: [a, b, c]
//	  binary_indicator: [y, n]
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("source: parse config %s: %w", path, err)
	}
	return cfg, nil
}
