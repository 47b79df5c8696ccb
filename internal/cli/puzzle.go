package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thatkingore/mathematical-modelling/internal/usecase"
)

func puzzlesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "puzzles",
		Short: "Manage Sudoku puzzles in a workspace",
	}

	c.AddCommand(puzzlesListCmd())
	return c
}

func puzzlesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List puzzles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.puzzles.ListPuzzles(ws.root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no puzzles found)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n", ws.root)
			fmt.Fprintf(w, "Default:   %s\n\n", ws.cfg.Defaults.Puzzle)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func sudokuCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sudoku",
		Short: "Inspect Sudoku grids",
	}

	c.AddCommand(sudokuCheckCmd())
	return c
}

func sudokuCheckCmd() *cobra.Command {
	var workspace string
	var puzzle string
	var format string
	var tmpl string

	c := &cobra.Command{
		Use:   "check",
		Short: "Check that no row, column or box repeats a digit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewCheckPuzzle(ws.puzzles)
			report, err := uc.Execute(cmd.Context(), resolvePuzzleArg(ws, puzzle))
			if err != nil {
				return err
			}

			if err := printPuzzle(cmd.OutOrStdout(), report, format, tmpl); err != nil {
				return err
			}
			if !report.Valid {
				return fmt.Errorf("puzzle %q is invalid (%d conflict(s))", report.Name, len(report.Conflicts))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&puzzle, "puzzle", "p", "", "Puzzle name or path (defaults to the workspace default puzzle)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|line")
	c.Flags().StringVar(&tmpl, "template", "", "Line template for --format line")
	return c
}
