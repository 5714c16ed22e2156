package frame

import "fmt"

// Table is an ordered collection of equal-length Series sharing a row
// index. The index carries the original row identity (CSV index column
// or remote row id) through every subsetting operation.
type Table struct {
	index  []string
	cols   []*Series
	byName map[string]int
}

// NewTable builds a Table over the given row index. Every Series must
// match the index length and names must be unique.
func NewTable(index []string, cols ...*Series) (*Table, error) {
	t := &Table{
		index:  index,
		cols:   make([]*Series, 0, len(cols)),
		byName: make(map[string]int, len(cols)),
	}
	for _, s := range cols {
		if err := t.append(s); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) append(s *Series) error {
	if s.Len() != len(t.index) {
		return fmt.Errorf("%w: column %q has %d cells, index has %d",
			ErrLengthMismatch, s.Name(), s.Len(), len(t.index))
	}
	if _, dup := t.byName[s.Name()]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, s.Name())
	}
	t.byName[s.Name()] = len(t.cols)
	t.cols = append(t.cols, s)
	return nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.index) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// Index returns the row index. Callers must not mutate it.
func (t *Table) Index() []string { return t.index }

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, s := range t.cols {
		names[i] = s.Name()
	}
	return names
}

// Column returns the named Series.
func (t *Table) Column(name string) (*Series, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return t.cols[i], nil
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Select returns a new Table holding exactly the named columns, in the
// order given. The row index is shared with the receiver.
func (t *Table) Select(names []string) (*Table, error) {
	cols := make([]*Series, len(names))
	for i, name := range names {
		s, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = s
	}
	return NewTable(t.index, cols...)
}

// TakeRows returns a new Table holding the rows at the given positions,
// in the given order, across all columns.
func (t *Table) TakeRows(pos []int) (*Table, error) {
	idx := make([]string, len(pos))
	for i, p := range pos {
		if p < 0 || p >= len(t.index) {
			return nil, ErrRowRange
		}
		idx[i] = t.index[p]
	}
	cols := make([]*Series, len(t.cols))
	for i, s := range t.cols {
		sub, err := s.TakeRows(pos)
		if err != nil {
			return nil, err
		}
		cols[i] = sub
	}
	return NewTable(idx, cols...)
}

// WithColumns returns a new Table over the same row index with the
// given Series replacing any same-named columns and appended otherwise.
// The relative order of untouched columns is preserved; replacement
// happens in place.
func (t *Table) WithColumns(repl ...*Series) (*Table, error) {
	cols := make([]*Series, len(t.cols))
	copy(cols, t.cols)
	var extra []*Series
	for _, s := range repl {
		if i, ok := t.byName[s.Name()]; ok {
			cols[i] = s
		} else {
			extra = append(extra, s)
		}
	}
	return NewTable(t.index, append(cols, extra...)...)
}
