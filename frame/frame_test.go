package frame_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tabprep/frame"
)

//----------------------------------------------------------------------------//
// Series Tests
//----------------------------------------------------------------------------//

// TestStringSeries_MissingMask verifies the missing-token conventions.
func TestStringSeries_MissingMask(t *testing.T) {
	s := frame.NewStringSeries("c", []string{"a", "", "NA", "NaN", "?", " na ", "b"})
	want := []bool{false, true, true, true, true, true, false}
	for i, w := range want {
		if got := s.Missing(i); got != w {
			t.Errorf("Missing(%d) = %v; want %v", i, got, w)
		}
	}
}

// TestSeries_NUnique checks that missing cells are excluded from the
// distinct-value count used for constant-column detection.
func TestSeries_NUnique(t *testing.T) {
	cases := []struct {
		name  string
		s     *frame.Series
		wantN int
	}{
		{"AllSame", frame.NewStringSeries("c", []string{"x", "x", "x"}), 1},
		{"SameWithMissing", frame.NewStringSeries("c", []string{"x", "", "x"}), 1},
		{"Two", frame.NewStringSeries("c", []string{"x", "y", "x"}), 2},
		{"Ints", frame.NewIntSeries("c", []int64{1, 0, 1}), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.NUnique(); got != tc.wantN {
				t.Errorf("NUnique() = %d; want %d", got, tc.wantN)
			}
		})
	}
}

// TestSeries_TakeRows verifies positional selection and range checks.
func TestSeries_TakeRows(t *testing.T) {
	s := frame.NewFloatSeries("f", []float64{10, 20, 30, 40})
	sub, err := s.TakeRows([]int{3, 1})
	if err != nil {
		t.Fatalf("TakeRows error: %v", err)
	}
	if got := sub.Floats(); got[0] != 40 || got[1] != 20 {
		t.Errorf("TakeRows values = %v; want [40 20]", got)
	}
	if _, err = s.TakeRows([]int{4}); !errors.Is(err, frame.ErrRowRange) {
		t.Errorf("TakeRows(4) error = %v; want ErrRowRange", err)
	}
}

// TestLabelEncode verifies dense 0..k-1 codes with sorted class order.
func TestLabelEncode(t *testing.T) {
	s := frame.NewStringSeries("target", []string{"good", "bad", "good", "ugly"})
	enc, classes := frame.LabelEncode(s)
	if want := []string{"bad", "good", "ugly"}; len(classes) != 3 ||
		classes[0] != want[0] || classes[1] != want[1] || classes[2] != want[2] {
		t.Fatalf("classes = %v; want %v", classes, want)
	}
	if got := enc.Ints(); got[0] != 1 || got[1] != 0 || got[2] != 1 || got[3] != 2 {
		t.Errorf("codes = %v; want [1 0 1 2]", got)
	}
}

//----------------------------------------------------------------------------//
// Table Tests
//----------------------------------------------------------------------------//

// TestNewTable_Errors verifies construction invariants.
func TestNewTable_Errors(t *testing.T) {
	idx := []string{"0", "1"}
	ok := frame.NewStringSeries("a", []string{"x", "y"})
	short := frame.NewStringSeries("b", []string{"x"})
	dup := frame.NewStringSeries("a", []string{"p", "q"})

	if _, err := frame.NewTable(idx, ok, short); !errors.Is(err, frame.ErrLengthMismatch) {
		t.Errorf("short column error = %v; want ErrLengthMismatch", err)
	}
	if _, err := frame.NewTable(idx, ok, dup); !errors.Is(err, frame.ErrDuplicateColumn) {
		t.Errorf("duplicate column error = %v; want ErrDuplicateColumn", err)
	}
}

// TestTable_SelectOrder checks that Select returns columns in the
// caller's order, not table order.
func TestTable_SelectOrder(t *testing.T) {
	tbl, err := frame.NewTable([]string{"0"},
		frame.NewStringSeries("a", []string{"1"}),
		frame.NewStringSeries("b", []string{"2"}),
		frame.NewStringSeries("c", []string{"3"}),
	)
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}
	sub, err := tbl.Select([]string{"c", "a"})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if got := sub.Columns(); got[0] != "c" || got[1] != "a" {
		t.Errorf("Select order = %v; want [c a]", got)
	}
	if _, err = tbl.Select([]string{"nope"}); !errors.Is(err, frame.ErrUnknownColumn) {
		t.Errorf("Select(nope) error = %v; want ErrUnknownColumn", err)
	}
}

// TestTable_TakeRows_IndexAlignment verifies the row index travels with
// the selected rows.
func TestTable_TakeRows_IndexAlignment(t *testing.T) {
	tbl, err := frame.NewTable([]string{"r0", "r1", "r2"},
		frame.NewIntSeries("v", []int64{7, 8, 9}),
	)
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}
	sub, err := tbl.TakeRows([]int{2, 0})
	if err != nil {
		t.Fatalf("TakeRows error: %v", err)
	}
	if idx := sub.Index(); idx[0] != "r2" || idx[1] != "r0" {
		t.Errorf("index = %v; want [r2 r0]", idx)
	}
	col, _ := sub.Column("v")
	if vals := col.Ints(); vals[0] != 9 || vals[1] != 7 {
		t.Errorf("values = %v; want [9 7]", vals)
	}
}

// TestTable_WithColumns covers both replace and append paths.
func TestTable_WithColumns(t *testing.T) {
	tbl, err := frame.NewTable([]string{"0", "1"},
		frame.NewStringSeries("a", []string{"x", "y"}),
	)
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}
	out, err := tbl.WithColumns(
		frame.NewIntSeries("a", []int64{1, 0}), // replace in place
		frame.NewFloatSeries("b", []float64{0.5, 1}),
	)
	if err != nil {
		t.Fatalf("WithColumns error: %v", err)
	}
	if got := out.Columns(); got[0] != "a" || got[1] != "b" {
		t.Errorf("columns = %v; want [a b]", got)
	}
	a, _ := out.Column("a")
	if a.Kind() != frame.Int {
		t.Errorf("replaced column kind = %v; want Int", a.Kind())
	}
}
