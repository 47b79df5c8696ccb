package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thatkingore/mathematical-modelling/internal/buildinfo"
	"github.com/thatkingore/mathematical-modelling/internal/infra/logger"
	"github.com/thatkingore/mathematical-modelling/internal/infra/workspacefinder"
	"github.com/thatkingore/mathematical-modelling/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "mathmod",
		Short:        "mathmod: jug volume estimates, Sudoku checks and fractions",
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			cleanup, _ = logger.Setup(logger.Config{
				Root:    logRoot(),
				Debug:   debug,
				Version: buildinfo.Version,
				Command: c.CommandPath(),
			})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace("")
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Root:    ws.root,
				Config:  ws.cfg,
				Jugs:    ws.jugs,
				Puzzles: ws.puzzles,
				Logger:  logger.For("tui"),
				Debug:   debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .mathmod/logs/mathmod.log")

	cmd.AddCommand(
		initCmd(),
		versionCmd(),
		jugsCmd(),
		jugCmd(),
		puzzlesCmd(),
		sudokuCmd(),
		fractionCmd(),
	)
	return cmd
}

// logRoot is the workspace root when one is found, else the working directory.
func logRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
		return root
	}
	return wd
}
