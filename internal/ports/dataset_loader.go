package ports

import "github.com/thatkingore/mathematical-modelling/internal/domain"

// JugLoader loads jug profiles from a source (e.g., filesystem).
type JugLoader interface {
	LoadJug(path string) (domain.Jug, error)
	ListJugs(root string) ([]domain.JugRef, error)
}

// PuzzleLoader loads Sudoku grids from a source (e.g., filesystem).
type PuzzleLoader interface {
	LoadPuzzle(path string) (domain.Puzzle, error)
	ListPuzzles(root string) ([]domain.PuzzleRef, error)
}
