package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var coordinates = Grid{
	{11, 12, 13, 14, 15, 16, 17, 18, 19},
	{21, 22, 23, 24, 25, 26, 27, 28, 29},
	{31, 32, 33, 34, 35, 36, 37, 38, 39},
	{41, 42, 43, 44, 45, 46, 47, 48, 49},
	{51, 52, 53, 54, 55, 56, 57, 58, 59},
	{61, 62, 63, 64, 65, 66, 67, 68, 69},
	{71, 72, 73, 74, 75, 76, 77, 78, 79},
	{81, 82, 83, 84, 85, 86, 87, 88, 89},
	{91, 92, 93, 94, 95, 96, 97, 98, 99},
}

var solved = Grid{
	{1, 4, 8, 6, 5, 9, 7, 3, 2},
	{7, 2, 5, 8, 1, 3, 9, 6, 4},
	{9, 6, 3, 4, 7, 2, 5, 1, 8},
	{3, 7, 2, 5, 8, 6, 4, 9, 1},
	{5, 1, 6, 9, 2, 4, 3, 8, 7},
	{8, 9, 4, 1, 3, 7, 2, 5, 6},
	{4, 3, 1, 7, 6, 5, 8, 2, 9},
	{6, 5, 7, 2, 9, 8, 1, 4, 3},
	{2, 8, 9, 3, 4, 1, 6, 7, 5},
}

var partial = Grid{
	{1, 4, 0, 0, 0, 9, 0, 3, 0},
	{0, 0, 5, 8, 0, 3, 0, 6, 0},
	{9, 0, 0, 0, 0, 0, 5, 0, 0},
	{3, 7, 0, 5, 0, 0, 4, 0, 0},
	{0, 1, 6, 0, 0, 0, 3, 8, 0},
	{0, 0, 4, 0, 0, 7, 0, 5, 6},
	{0, 0, 1, 0, 0, 0, 0, 0, 9},
	{0, 5, 0, 2, 0, 8, 1, 0, 0},
	{0, 8, 0, 3, 0, 0, 0, 7, 5},
}

// solved with (0,2) changed from 8 to 2
var invalid = Grid{
	{1, 4, 2, 6, 5, 9, 7, 3, 2},
	{7, 2, 5, 8, 1, 3, 9, 6, 4},
	{9, 6, 3, 4, 7, 2, 5, 1, 8},
	{3, 7, 2, 5, 8, 6, 4, 9, 1},
	{5, 1, 6, 9, 2, 4, 3, 8, 7},
	{8, 9, 4, 1, 3, 7, 2, 5, 6},
	{4, 3, 1, 7, 6, 5, 8, 2, 9},
	{6, 5, 7, 2, 9, 8, 1, 4, 3},
	{2, 8, 9, 3, 4, 1, 6, 7, 5},
}

func mustView(t *testing.T, g Grid) *Sudoku {
	t.Helper()
	s, err := NewSudokuView(g)
	if err != nil {
		t.Fatalf("NewSudokuView: %v", err)
	}
	return s
}

func TestSudoku_Row(t *testing.T) {
	got, err := mustView(t, coordinates).Row(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Part{21, 22, 23, 24, 25, 26, 27, 28, 29}, got); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestSudoku_Column(t *testing.T) {
	got, err := mustView(t, coordinates).Column(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Part{11, 21, 31, 41, 51, 61, 71, 81, 91}, got); diff != "" {
		t.Fatalf("column mismatch (-want +got):\n%s", diff)
	}
}

func TestSudoku_Box(t *testing.T) {
	s := mustView(t, coordinates)
	cases := []struct {
		box  int
		want Part
	}{
		{0, Part{11, 12, 13, 21, 22, 23, 31, 32, 33}},
		{1, Part{14, 15, 16, 24, 25, 26, 34, 35, 36}},
		{5, Part{47, 48, 49, 57, 58, 59, 67, 68, 69}},
		{8, Part{77, 78, 79, 87, 88, 89, 97, 98, 99}},
	}
	for _, c := range cases {
		got, err := s.Box(c.box)
		if err != nil {
			t.Fatalf("box %d: unexpected error: %v", c.box, err)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("box %d mismatch (-want +got):\n%s", c.box, diff)
		}
	}
}

func TestSudoku_IndexOutOfRange(t *testing.T) {
	s := mustView(t, coordinates)
	for _, i := range []int{-1, 9} {
		if _, err := s.Row(i); !IsKind(err, KindInvalidArgument) {
			t.Errorf("Row(%d): expected KindInvalidArgument, got %v", i, err)
		}
		if _, err := s.Column(i); !IsKind(err, KindInvalidArgument) {
			t.Errorf("Column(%d): expected KindInvalidArgument, got %v", i, err)
		}
		if _, err := s.Box(i); !IsKind(err, KindInvalidArgument) {
			t.Errorf("Box(%d): expected KindInvalidArgument, got %v", i, err)
		}
	}
}

func TestSudoku_RowReturnsCopy(t *testing.T) {
	s := mustView(t, coordinates)
	row, _ := s.Row(0)
	row[0] = 0
	again, _ := s.Row(0)
	if again[0] != 11 {
		t.Fatalf("Row must not expose internal storage")
	}
}

func TestNewSudoku_CopiesInput(t *testing.T) {
	g := Grid{}
	for _, row := range solved {
		g = append(g, append([]int(nil), row...))
	}
	s, err := NewSudoku(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g[0][0] = 9
	row, _ := s.Row(0)
	if row[0] != 1 {
		t.Fatalf("view changed after caller mutated its grid")
	}
}

func TestNewSudoku_RejectsBadShape(t *testing.T) {
	cases := map[string]Grid{
		"too few rows":  solved[:8],
		"short row":     append(Grid{{1, 2, 3}}, solved[1:]...),
		"out of range":  append(Grid{{10, 0, 0, 0, 0, 0, 0, 0, 0}}, solved[1:]...),
		"negative cell": append(Grid{{-1, 0, 0, 0, 0, 0, 0, 0, 0}}, solved[1:]...),
	}
	for name, g := range cases {
		if _, err := NewSudoku(g); !IsKind(err, KindInvalidArgument) {
			t.Errorf("%s: expected KindInvalidArgument, got %v", name, err)
		}
	}
	if _, err := NewSudokuView(solved[:3]); !IsKind(err, KindInvalidArgument) {
		t.Errorf("view: expected KindInvalidArgument, got %v", err)
	}
}

func TestBoxOrigins(t *testing.T) {
	var rows, cols []int
	for i := 0; i < GridSize; i++ {
		rows = append(rows, (i/3)*3)
		cols = append(cols, (i%3)*3)
	}
	if diff := cmp.Diff([]int{0, 0, 0, 3, 3, 3, 6, 6, 6}, rows); diff != "" {
		t.Fatalf("quotients (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 3, 6, 0, 3, 6, 0, 3, 6}, cols); diff != "" {
		t.Fatalf("remainders (-want +got):\n%s", diff)
	}
}

func TestDuplicates(t *testing.T) {
	if Duplicates(Part{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("expected no duplicates in a full part")
	}
	if Duplicates(Part{0, 2, 0, 4, 0, 6, 7, 0, 9}) {
		t.Errorf("empty cells must not count as duplicates")
	}
	if !Duplicates(Part{0, 2, 2, 4, 0, 6, 7, 0, 9}) {
		t.Errorf("expected duplicate 2 to be found")
	}
}

func TestSudokuValid(t *testing.T) {
	cases := []struct {
		name string
		grid Grid
		want bool
	}{
		{"solved", solved, true},
		{"partial", partial, true},
		{"invalid", invalid, false},
	}
	for _, c := range cases {
		got, err := SudokuValid(c.grid)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: SudokuValid = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSudoku_Conflicts(t *testing.T) {
	s, err := NewSudoku(invalid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.Conflicts()

	want := []Conflict{
		{Unit: UnitRow, Index: 0, Part: Part{1, 4, 2, 6, 5, 9, 7, 3, 2}},
		{Unit: UnitBox, Index: 0, Part: Part{1, 4, 2, 7, 2, 5, 9, 6, 3}},
		{Unit: UnitColumn, Index: 2, Part: Part{2, 5, 3, 2, 6, 4, 1, 7, 9}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("conflicts mismatch (-want +got):\n%s", diff)
	}

	ok, _ := NewSudoku(solved)
	if len(ok.Conflicts()) != 0 {
		t.Fatalf("expected no conflicts in solved grid")
	}
}

func TestSudoku_FilledAndString(t *testing.T) {
	s, err := NewSudoku(partial)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Filled(); got != 32 {
		t.Fatalf("expected 32 filled cells, got %d", got)
	}

	out := s.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("expected 9 rows and 2 separators, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "1 4 . | . . 9 | . 3 ." {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}
