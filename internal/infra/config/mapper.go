package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
)

// MapJug validates a decoded jug file. The name defaults to the file name.
func MapJug(path string, yj YAMLJug) (domain.Jug, error) {
	name := strings.TrimSpace(yj.Name)
	if name == "" {
		name = baseName(path)
	}

	if len(yj.Bands) < 2 {
		return domain.Jug{}, invalidField(path, "bands", fmt.Sprintf("at least 2 bands are required, got %d", len(yj.Bands)))
	}

	jug := domain.Jug{
		Name:        name,
		Description: strings.TrimSpace(yj.Description),
		Bands:       make([]domain.Cylinder, 0, len(yj.Bands)),
	}

	if yj.MeasuredVolume != nil {
		if !finite(*yj.MeasuredVolume) {
			return domain.Jug{}, invalidField(path, "measured_volume", "must be a finite number")
		}
		if *yj.MeasuredVolume < 0 {
			return domain.Jug{}, invalidField(path, "measured_volume", "must not be negative")
		}
		jug.MeasuredVolume = *yj.MeasuredVolume
	}

	for i, b := range yj.Bands {
		fieldPrefix := fmt.Sprintf("bands[%d]", i)
		if b.Circumference == nil {
			return domain.Jug{}, invalidField(path, fieldPrefix+".circumference", "circumference is required")
		}
		if b.Height == nil {
			return domain.Jug{}, invalidField(path, fieldPrefix+".height", "height is required")
		}
		if !finite(*b.Circumference) {
			return domain.Jug{}, invalidField(path, fieldPrefix+".circumference", "must be a finite number")
		}
		if !finite(*b.Height) {
			return domain.Jug{}, invalidField(path, fieldPrefix+".height", "must be a finite number")
		}
		if *b.Circumference < 0 {
			return domain.Jug{}, invalidField(path, fieldPrefix+".circumference", "must not be negative")
		}
		if *b.Height < 0 {
			return domain.Jug{}, invalidField(path, fieldPrefix+".height", "must not be negative")
		}

		jug.Bands = append(jug.Bands, domain.Cylinder{
			Circumference: *b.Circumference,
			Height:        *b.Height,
		})
	}

	return jug, nil
}

// MapPuzzle validates a decoded puzzle file. The name defaults to the file name.
func MapPuzzle(path string, yp YAMLPuzzle) (domain.Puzzle, error) {
	name := strings.TrimSpace(yp.Name)
	if name == "" {
		name = baseName(path)
	}

	if len(yp.Grid) != domain.GridSize {
		return domain.Puzzle{}, invalidField(path, "grid", fmt.Sprintf("expected %d rows, got %d", domain.GridSize, len(yp.Grid)))
	}

	grid := make(domain.Grid, 0, domain.GridSize)
	for r, row := range yp.Grid {
		fieldPrefix := fmt.Sprintf("grid[%d]", r)
		if len(row) != domain.GridSize {
			return domain.Puzzle{}, invalidField(path, fieldPrefix, fmt.Sprintf("expected %d cells, got %d", domain.GridSize, len(row)))
		}
		for c, v := range row {
			if v < 0 || v > domain.GridSize {
				return domain.Puzzle{}, invalidField(path, fmt.Sprintf("%s[%d]", fieldPrefix, c), fmt.Sprintf("value %d out of range 0..9", v))
			}
		}
		grid = append(grid, append([]int(nil), row...))
	}

	return domain.Puzzle{Name: name, Grid: grid}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
