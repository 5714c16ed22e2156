package frame

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors shared by the frame package.
var (
	// ErrLengthMismatch indicates a Series whose length disagrees with the table's row index.
	ErrLengthMismatch = errors.New("frame: series length does not match row index")

	// ErrDuplicateColumn indicates two Series with the same name in one Table.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrUnknownColumn indicates a column name not present in the Table.
	ErrUnknownColumn = errors.New("frame: unknown column")

	// ErrRowRange indicates a row position outside [0, NumRows).
	ErrRowRange = errors.New("frame: row position out of range")
)

// Kind identifies the storage type of a Series.
type Kind int

const (
	// String holds raw text cells; the only kind that tracks missing values.
	String Kind = iota
	// Float holds float64 cells (numeric features after encoding).
	Float
	// Int holds int64 cells (binary flags, ordinal codes, encoded labels).
	Int
)

// Series is a single named column. It is immutable once built: encoders
// derive new Series instead of writing through.
type Series struct {
	name    string
	kind    Kind
	str     []string
	f64     []float64
	i64     []int64
	missing []bool // parallel to str; nil for Float/Int kinds
}

// missingToken reports whether a raw cell should be treated as absent.
// The token set mirrors the usual CSV conventions: empty, na, nan, "?".
func missingToken(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "na", "nan", "?":
		return true
	}
	return false
}

// NewStringSeries builds a raw String series, marking missing cells.
func NewStringSeries(name string, cells []string) *Series {
	miss := make([]bool, len(cells))
	for i, c := range cells {
		miss[i] = missingToken(c)
	}
	return &Series{name: name, kind: String, str: cells, missing: miss}
}

// NewFloatSeries builds a Float series. Float series carry no missing
// mask: imputation happens before a column ever becomes Float.
func NewFloatSeries(name string, cells []float64) *Series {
	return &Series{name: name, kind: Float, f64: cells}
}

// NewIntSeries builds an Int series.
func NewIntSeries(name string, cells []int64) *Series {
	return &Series{name: name, kind: Int, i64: cells}
}

// Name returns the column name.
func (s *Series) Name() string { return s.name }

// Kind returns the storage kind.
func (s *Series) Kind() Kind { return s.kind }

// Len returns the number of cells.
func (s *Series) Len() int {
	switch s.kind {
	case Float:
		return len(s.f64)
	case Int:
		return len(s.i64)
	default:
		return len(s.str)
	}
}

// Strings returns the backing string cells. Valid only for String kind;
// callers must not mutate the returned slice.
func (s *Series) Strings() []string { return s.str }

// Floats returns the backing float64 cells. Valid only for Float kind;
// callers must not mutate the returned slice.
func (s *Series) Floats() []float64 { return s.f64 }

// Ints returns the backing int64 cells. Valid only for Int kind;
// callers must not mutate the returned slice.
func (s *Series) Ints() []int64 { return s.i64 }

// Missing reports whether cell i is a missing value. Only raw String
// series ever report true.
func (s *Series) Missing(i int) bool {
	return s.kind == String && s.missing[i]
}

// At renders cell i as text, regardless of kind. Float cells use the
// shortest representation that round-trips (strconv 'g', 64-bit).
func (s *Series) At(i int) string {
	switch s.kind {
	case Float:
		return strconv.FormatFloat(s.f64[i], 'g', -1, 64)
	case Int:
		return strconv.FormatInt(s.i64[i], 10)
	default:
		return s.str[i]
	}
}

// NUnique counts distinct non-missing values, using the textual
// rendering as identity. Used to detect constant columns.
func (s *Series) NUnique() int {
	seen := make(map[string]struct{})
	for i, n := 0, s.Len(); i < n; i++ {
		if s.Missing(i) {
			continue
		}
		seen[s.At(i)] = struct{}{}
	}
	return len(seen)
}

// TakeRows returns a new Series holding the cells at the given
// positions, in the given order.
func (s *Series) TakeRows(pos []int) (*Series, error) {
	n := s.Len()
	for _, p := range pos {
		if p < 0 || p >= n {
			return nil, ErrRowRange
		}
	}
	out := &Series{name: s.name, kind: s.kind}
	switch s.kind {
	case Float:
		out.f64 = make([]float64, len(pos))
		for i, p := range pos {
			out.f64[i] = s.f64[p]
		}
	case Int:
		out.i64 = make([]int64, len(pos))
		for i, p := range pos {
			out.i64[i] = s.i64[p]
		}
	default:
		out.str = make([]string, len(pos))
		out.missing = make([]bool, len(pos))
		for i, p := range pos {
			out.str[i] = s.str[p]
			out.missing[i] = s.missing[p]
		}
	}
	return out, nil
}

// Rename returns a copy of the Series under a new name. Storage is
// shared with the receiver.
func (s *Series) Rename(name string) *Series {
	c := *s
	c.name = name
	return &c
}

// LabelEncode maps arbitrary label values to dense codes 0..k-1 and
// returns the encoded Int series together with the class list. Classes
// are ordered lexicographically by their textual rendering, so the
// mapping depends only on the set of observed values, never on row
// order.
func LabelEncode(s *Series) (*Series, []string) {
	classes := make([]string, 0)
	seen := make(map[string]struct{})
	for i, n := 0, s.Len(); i < n; i++ {
		v := s.At(i)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			classes = append(classes, v)
		}
	}
	sort.Strings(classes)
	code := make(map[string]int64, len(classes))
	for i, c := range classes {
		code[c] = int64(i)
	}
	enc := make([]int64, s.Len())
	for i := range enc {
		enc[i] = code[s.At(i)]
	}
	return NewIntSeries(s.Name(), enc), classes
}
