package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads mathmod.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, domain.ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	d := y.Mathmod.Defaults
	if d.Jug != "" {
		cfg.Defaults.Jug = d.Jug
	}
	if d.Puzzle != "" {
		cfg.Defaults.Puzzle = d.Puzzle
	}
	if d.Slices != nil {
		if *d.Slices < 1 {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("defaults.slices must be >= 1, got %d: %w", *d.Slices, domain.ErrInvalidConfig),
			}
		}
		cfg.Defaults.Slices = *d.Slices
	}

	p := y.Mathmod.Paths
	if p.JugsDir != "" {
		cfg.Paths.JugsDir = p.JugsDir
	}
	if p.PuzzlesDir != "" {
		cfg.Paths.PuzzlesDir = p.PuzzlesDir
	}
	if p.ReportsDir != "" {
		cfg.Paths.ReportsDir = p.ReportsDir
	}

	if y.Mathmod.Reports.Enabled != nil {
		cfg.Reports.Enabled = *y.Mathmod.Reports.Enabled
	}
	if y.Mathmod.Reports.Index != nil {
		cfg.Reports.Index = *y.Mathmod.Reports.Index
	}

	return cfg, nil
}

type yamlConfig struct {
	Mathmod struct {
		Defaults struct {
			Jug    string `yaml:"jug"`
			Puzzle string `yaml:"puzzle"`
			Slices *int   `yaml:"slices"`
		} `yaml:"defaults"`

		Paths struct {
			JugsDir    string `yaml:"jugs_dir"`
			PuzzlesDir string `yaml:"puzzles_dir"`
			ReportsDir string `yaml:"reports_dir"`
		} `yaml:"paths"`

		Reports struct {
			Enabled *bool `yaml:"enabled"`
			Index   *bool `yaml:"index"`
		} `yaml:"reports"`
	} `yaml:"mathmod"`
}
