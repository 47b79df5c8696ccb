package usecase

import (
	"github.com/thatkingore/mathematical-modelling/internal/domain"
)

type fakeJugLoader struct {
	jug domain.Jug
	err error
}

func (f fakeJugLoader) LoadJug(_ string) (domain.Jug, error) {
	return f.jug, f.err
}

func (f fakeJugLoader) ListJugs(_ string) ([]domain.JugRef, error) {
	return nil, nil
}

type fakePuzzleLoader struct {
	puzzle domain.Puzzle
	err    error
}

func (f fakePuzzleLoader) LoadPuzzle(_ string) (domain.Puzzle, error) {
	return f.puzzle, f.err
}

func (f fakePuzzleLoader) ListPuzzles(_ string) ([]domain.PuzzleRef, error) {
	return nil, nil
}

type fakeStore struct {
	saved bool
	last  domain.VolumeReport
	err   error
}

func (s *fakeStore) SaveReport(r domain.VolumeReport) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = r
	return "report-123", nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}
