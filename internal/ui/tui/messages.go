package tui

import "github.com/thatkingore/mathematical-modelling/internal/domain"

type datasetsLoadedMsg struct {
	items []datasetItem
	err   error
}

type jugEstimatedMsg struct {
	report domain.VolumeReport
	err    error
}

type puzzleCheckedMsg struct {
	report domain.PuzzleReport
	err    error
}
