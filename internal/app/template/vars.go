package template

import (
	"sort"
	"strconv"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
)

// DefaultVolumeLine is used by `--format line` when no template is given.
const DefaultVolumeLine = "{{jug}} adjusted={{adjusted}} sliced={{sliced}} slices={{slices}}"

// DefaultPuzzleLine is the puzzle counterpart of DefaultVolumeLine.
const DefaultPuzzleLine = "{{name}} valid={{valid}} filled={{filled}} conflicts={{conflicts}}"

// VolumeVars exposes report fields to line templates.
func VolumeVars(r domain.VolumeReport) map[string]string {
	vars := map[string]string{
		"jug":        r.JugName,
		"path":       r.JugPath,
		"bands":      strconv.Itoa(len(r.Bands)),
		"slices":     strconv.Itoa(r.Slices),
		"unadjusted": num(r.Unadjusted),
		"adjusted":   num(r.Adjusted),
		"sliced":     num(r.Sliced),
		"measured":   "",
		"rel_error":  "",
	}
	if rel, ok := r.RelativeError(); ok {
		vars["measured"] = num(r.MeasuredVolume)
		vars["rel_error"] = strconv.FormatFloat(rel, 'f', 4, 64)
	}
	return vars
}

// PuzzleVars exposes puzzle report fields to line templates.
func PuzzleVars(r domain.PuzzleReport) map[string]string {
	return map[string]string{
		"name":      r.Name,
		"path":      r.Path,
		"valid":     strconv.FormatBool(r.Valid),
		"filled":    strconv.Itoa(r.Filled),
		"conflicts": strconv.Itoa(len(r.Conflicts)),
	}
}

// Keys lists the placeholders vars supports, for help output.
func Keys(vars map[string]string) []string {
	out := make([]string, 0, len(vars))
	for k := range vars {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
