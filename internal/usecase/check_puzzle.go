package usecase

import (
	"context"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"github.com/thatkingore/mathematical-modelling/internal/infra/logger"
	"github.com/thatkingore/mathematical-modelling/internal/ports"
)

type CheckPuzzle struct {
	puzzles ports.PuzzleLoader
}

func NewCheckPuzzle(puzzles ports.PuzzleLoader) *CheckPuzzle {
	return &CheckPuzzle{puzzles: puzzles}
}

// Execute loads a grid and reports whether any row, column or box repeats a digit.
func (uc *CheckPuzzle) Execute(ctx context.Context, puzzlePath string) (domain.PuzzleReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.PuzzleReport{}, err
	}

	p, err := uc.puzzles.LoadPuzzle(puzzlePath)
	if err != nil {
		return domain.PuzzleReport{}, err
	}

	s, err := domain.NewSudoku(p.Grid)
	if err != nil {
		return domain.PuzzleReport{}, err
	}

	conflicts := s.Conflicts()
	report := domain.PuzzleReport{
		Name:      p.Name,
		Path:      puzzlePath,
		Valid:     len(conflicts) == 0,
		Filled:    s.Filled(),
		Conflicts: conflicts,
		Rendered:  s.String(),
	}

	logger.For("usecase.check_puzzle").Info("puzzle.checked", "puzzle", p.Name, "valid", report.Valid, "conflicts", len(conflicts))
	return report, nil
}
