package tui

import (
	"log/slog"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"github.com/thatkingore/mathematical-modelling/internal/ports"
)

type Deps struct {
	Root   string
	Config domain.Config

	Jugs    ports.JugLoader
	Puzzles ports.PuzzleLoader

	Logger *slog.Logger
	Debug  bool
}
