package domain

import (
	"fmt"
	"strings"
)

// GridSize is the side length of a Sudoku grid.
const GridSize = 9

// Part is one row, column or box of nine cells. 0 marks an empty cell.
type Part []int

// Grid is a 9x9 matrix of cells, row-major.
type Grid [][]int

// UnitKind names the three groupings a Sudoku is checked over.
type UnitKind string

const (
	UnitRow    UnitKind = "row"
	UnitColumn UnitKind = "column"
	UnitBox    UnitKind = "box"
)

// Conflict points at a unit holding a repeated value.
type Conflict struct {
	Unit  UnitKind `json:"unit"`
	Index int      `json:"index"`
	Part  Part     `json:"part"`
}

// Sudoku is a read-only view over a validated 9x9 grid.
type Sudoku struct {
	entries Grid
}

// NewSudoku copies grid after checking its shape and cell range.
func NewSudoku(grid Grid) (*Sudoku, error) {
	if len(grid) != GridSize {
		return nil, invalidArgument("sudoku.new", "expected %d rows, got %d", GridSize, len(grid))
	}

	entries := make(Grid, GridSize)
	for r, row := range grid {
		if len(row) != GridSize {
			return nil, invalidArgument("sudoku.new", "row %d: expected %d cells, got %d", r, GridSize, len(row))
		}
		for c, v := range row {
			if v < 0 || v > GridSize {
				return nil, invalidArgument("sudoku.new", "cell (%d,%d): value %d out of range 0..9", r, c, v)
			}
		}
		entries[r] = append([]int(nil), row...)
	}
	return &Sudoku{entries: entries}, nil
}

// NewSudokuView is like NewSudoku but only checks the 9x9 shape, so it can
// expose coordinate-coded grids whose cells exceed 9.
func NewSudokuView(grid Grid) (*Sudoku, error) {
	if len(grid) != GridSize {
		return nil, invalidArgument("sudoku.view", "expected %d rows, got %d", GridSize, len(grid))
	}
	entries := make(Grid, GridSize)
	for r, row := range grid {
		if len(row) != GridSize {
			return nil, invalidArgument("sudoku.view", "row %d: expected %d cells, got %d", r, GridSize, len(row))
		}
		entries[r] = append([]int(nil), row...)
	}
	return &Sudoku{entries: entries}, nil
}

func (s *Sudoku) Row(i int) (Part, error) {
	if err := checkIndex("sudoku.row", i); err != nil {
		return nil, err
	}
	return append(Part(nil), s.entries[i]...), nil
}

func (s *Sudoku) Column(i int) (Part, error) {
	if err := checkIndex("sudoku.column", i); err != nil {
		return nil, err
	}
	out := make(Part, 0, GridSize)
	for _, row := range s.entries {
		out = append(out, row[i])
	}
	return out, nil
}

// Box returns the 3x3 box i, numbered left to right, top to bottom.
func (s *Sudoku) Box(i int) (Part, error) {
	if err := checkIndex("sudoku.box", i); err != nil {
		return nil, err
	}
	y := (i / 3) * 3
	x := (i % 3) * 3
	out := make(Part, 0, GridSize)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out = append(out, s.entries[y+r][x+c])
		}
	}
	return out, nil
}

// Grid returns a copy of the cells.
func (s *Sudoku) Grid() Grid {
	out := make(Grid, len(s.entries))
	for i, row := range s.entries {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Filled counts the non-empty cells.
func (s *Sudoku) Filled() int {
	n := 0
	for _, row := range s.entries {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// Conflicts lists every row, column and box that repeats a value.
func (s *Sudoku) Conflicts() []Conflict {
	var out []Conflict
	for i := 0; i < GridSize; i++ {
		row, _ := s.Row(i)
		if Duplicates(row) {
			out = append(out, Conflict{Unit: UnitRow, Index: i, Part: row})
		}
		col, _ := s.Column(i)
		if Duplicates(col) {
			out = append(out, Conflict{Unit: UnitColumn, Index: i, Part: col})
		}
		box, _ := s.Box(i)
		if Duplicates(box) {
			out = append(out, Conflict{Unit: UnitBox, Index: i, Part: box})
		}
	}
	return out
}

// Valid reports whether no row, column or box repeats a value. Empty cells are ignored.
func (s *Sudoku) Valid() bool {
	for i := 0; i < GridSize; i++ {
		row, _ := s.Row(i)
		col, _ := s.Column(i)
		box, _ := s.Box(i)
		if Duplicates(row) || Duplicates(col) || Duplicates(box) {
			return false
		}
	}
	return true
}

func (s *Sudoku) String() string {
	var b strings.Builder
	for r, row := range s.entries {
		if r > 0 && r%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c, v := range row {
			if c > 0 && c%3 == 0 {
				b.WriteString("| ")
			}
			if v == 0 {
				b.WriteString(".")
			} else {
				fmt.Fprintf(&b, "%d", v)
			}
			if c < len(row)-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Duplicates reports whether any nonzero value appears more than once in p.
func Duplicates(p Part) bool {
	seen := make(map[int]bool, len(p))
	for _, v := range p {
		if v == 0 {
			continue
		}
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}

// SudokuValid checks grid without keeping the view around.
func SudokuValid(grid Grid) (bool, error) {
	s, err := NewSudoku(grid)
	if err != nil {
		return false, err
	}
	return s.Valid(), nil
}

func checkIndex(op string, i int) error {
	if i < 0 || i >= GridSize {
		return invalidArgument(op, "index %d out of range 0..8", i)
	}
	return nil
}
