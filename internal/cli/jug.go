package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"github.com/thatkingore/mathematical-modelling/internal/ports"
	"github.com/thatkingore/mathematical-modelling/internal/usecase"
	"github.com/thatkingore/mathematical-modelling/internal/usecase/measure"
)

func jugsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "jugs",
		Short: "Manage jug profiles in a workspace",
	}

	c.AddCommand(jugsListCmd())
	return c
}

func jugsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jug profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.jugs.ListJugs(ws.root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no jugs found)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n", ws.root)
			fmt.Fprintf(w, "Default:   %s\n\n", ws.cfg.Defaults.Jug)
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

func jugCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "jug",
		Short: "Estimate the volume of a jug from its measured bands",
	}

	c.AddCommand(jugVolumeCmd(), jugSliceCmd(), jugMeasureCmd())
	return c
}

func jugVolumeCmd() *cobra.Command {
	var workspace string
	var jug string
	var slices int
	var noSave bool
	var format string
	var tmpl string

	c := &cobra.Command{
		Use:   "volume",
		Short: "Compute adjusted and sliced volume estimates for a jug",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			jugPath, err := resolveJugPath(ws, jug)
			if err != nil {
				return err
			}

			store := ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewEstimateJug(ws.jugs, store)
			report, id, err := uc.Execute(cmd.Context(), jugPath, sliceCount(ws.cfg, slices))
			if err != nil {
				// A failed save still leaves a computed report worth showing.
				if report.Adjusted != 0 {
					_ = printVolume(cmd.OutOrStdout(), report, "", format, tmpl)
				}
				return err
			}

			return printVolume(cmd.OutOrStdout(), report, id, format, tmpl)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&jug, "jug", "j", "", "Jug name or path (defaults to the workspace default jug)")
	c.Flags().IntVar(&slices, "slices", 0, "Slices per band pair (defaults to the workspace setting)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under reports/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|line")
	c.Flags().StringVar(&tmpl, "template", "", "Line template for --format line, e.g. '{{jug}}: {{adjusted}}'")
	return c
}

func jugSliceCmd() *cobra.Command {
	var workspace string
	var jug string
	var pair int
	var slices int
	var format string

	c := &cobra.Command{
		Use:   "slice",
		Short: "Show the thin slices one band pair is cut into",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			jugPath, err := resolveJugPath(ws, jug)
			if err != nil {
				return err
			}

			uc := usecase.NewEstimateJug(ws.jugs, nil)
			out, err := uc.Slice(cmd.Context(), jugPath, pair, sliceCount(ws.cfg, slices))
			if err != nil {
				return err
			}
			return printSlices(cmd.OutOrStdout(), out, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&jug, "jug", "j", "", "Jug name or path (defaults to the workspace default jug)")
	c.Flags().IntVar(&pair, "pair", 0, "Index of the band pair (0 is the widest band)")
	c.Flags().IntVar(&slices, "slices", 0, "Number of slices (defaults to the workspace setting)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func jugMeasureCmd() *cobra.Command {
	var workspace string
	var file string
	var rules measure.Rules
	var slices int
	var noSave bool
	var format string
	var tmpl string

	c := &cobra.Command{
		Use:   "measure",
		Short: "Estimate a jug whose bands are read from a JSON document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := os.ReadFile(file)
			if err != nil {
				return &domain.OpError{Op: "cli.measure", Kind: domain.KindNotFound, Path: file, Err: err}
			}

			jug, err := measure.Extract(body, rules)
			if err != nil {
				return err
			}
			if strings.TrimSpace(jug.Name) == "" {
				jug.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			}

			// A workspace is optional here; without one nothing is saved.
			cfg := domain.DefaultConfig()
			var store ports.ReportStore
			if ws, wsErr := loadWorkspace(workspace); wsErr == nil {
				cfg = ws.cfg
				store = ws.store
			}
			if noSave {
				store = nil
			}

			uc := usecase.NewEstimateBands(store)
			report, id, err := uc.Execute(cmd.Context(), jug, file, sliceCount(cfg, slices))
			if err != nil {
				return err
			}

			return printVolume(cmd.OutOrStdout(), report, id, format, tmpl)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&file, "file", "f", "", "JSON document holding the measurements (required)")
	c.Flags().StringVar(&rules.Bands, "select", measure.DefaultBands, "JSONPath selecting the bands list")
	c.Flags().StringVar(&rules.Name, "name-path", "", "JSONPath selecting the jug name (optional)")
	c.Flags().StringVar(&rules.Measured, "measured-path", "", "JSONPath selecting the measured volume (optional)")
	c.Flags().IntVar(&slices, "slices", 0, "Slices per band pair (defaults to the workspace setting)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under reports/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|line")
	c.Flags().StringVar(&tmpl, "template", "", "Line template for --format line")

	_ = c.MarkFlagRequired("file")
	return c
}

func sliceCount(cfg domain.Config, flag int) int {
	if flag != 0 {
		return flag
	}
	return cfg.Defaults.Slices
}
