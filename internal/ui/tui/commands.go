package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thatkingore/mathematical-modelling/internal/usecase"
)

const computeTimeout = 30 * time.Second

func cmdLoadDatasets(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Jugs == nil || deps.Puzzles == nil {
			return datasetsLoadedMsg{err: errors.New("dataset loaders are nil")}
		}

		var items []datasetItem

		jugs, jugErr := deps.Jugs.ListJugs(deps.Root)
		for _, r := range jugs {
			items = append(items, datasetItem{kind: kindJug, name: r.Name, path: r.Path})
		}

		puzzles, puzzleErr := deps.Puzzles.ListPuzzles(deps.Root)
		for _, r := range puzzles {
			items = append(items, datasetItem{kind: kindPuzzle, name: r.Name, path: r.Path})
		}

		// A workspace may hold only one kind of dataset.
		if jugErr != nil && puzzleErr != nil {
			return datasetsLoadedMsg{err: errors.Join(jugErr, puzzleErr)}
		}
		return datasetsLoadedMsg{items: items}
	}
}

func cmdEstimateJug(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), computeTimeout)
		defer cancel()

		uc := usecase.NewEstimateJug(deps.Jugs, nil)
		report, _, err := uc.Execute(ctx, path, slices(deps))
		if err != nil {
			logf(deps).Error("tui.estimate.failed", "path", path, "err", err)
		}
		return jugEstimatedMsg{report: report, err: err}
	}
}

func cmdCheckPuzzle(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), computeTimeout)
		defer cancel()

		uc := usecase.NewCheckPuzzle(deps.Puzzles)
		report, err := uc.Execute(ctx, path)
		if err != nil {
			logf(deps).Error("tui.check.failed", "path", path, "err", err)
		}
		return puzzleCheckedMsg{report: report, err: err}
	}
}

func slices(deps Deps) int {
	if deps.Config.Defaults.Slices > 0 {
		return deps.Config.Defaults.Slices
	}
	return 100
}
