package domain

import (
	"math"
	"time"
)

// VolumeReport is the outcome of estimating one jug.
type VolumeReport struct {
	JugName string `json:"jug"`
	JugPath string `json:"jug_path,omitempty"`

	Bands  []Cylinder `json:"bands"`
	Slices int        `json:"slices"`

	Unadjusted float64   `json:"unadjusted"`
	Adjusted   float64   `json:"adjusted"`
	Sliced     float64   `json:"sliced"`
	Segments   []Segment `json:"segments"`

	MeasuredVolume float64 `json:"measured_volume,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// RelativeError compares the adjusted estimate with the measured volume.
// ok is false when no measurement is known.
func (r VolumeReport) RelativeError() (rel float64, ok bool) {
	if r.MeasuredVolume <= 0 {
		return 0, false
	}
	return math.Abs(r.Adjusted-r.MeasuredVolume) / r.MeasuredVolume, true
}

// PuzzleReport is the outcome of checking one Sudoku grid.
type PuzzleReport struct {
	Name      string     `json:"name"`
	Path      string     `json:"path,omitempty"`
	Valid     bool       `json:"valid"`
	Filled    int        `json:"filled"`
	Conflicts []Conflict `json:"conflicts"`
	Rendered  string     `json:"-"`
}

// FractionComparison is the outcome of comparing two fractions.
type FractionComparison struct {
	Left       Fraction `json:"-"`
	Right      Fraction `json:"-"`
	LeftText   string   `json:"left"`
	RightText  string   `json:"right"`
	LeftValue  float64  `json:"left_value"`
	RightValue float64  `json:"right_value"`
	Order      int      `json:"order"`
	Relation   string   `json:"relation"`
}

// Relation renders the Compare result as an operator.
func Relation(order int) string {
	switch {
	case order < 0:
		return "<"
	case order > 0:
		return ">"
	default:
		return "="
	}
}

// SliceReport shows how one pair of bands is cut into thin slices.
type SliceReport struct {
	JugName  string     `json:"jug"`
	Pair     int        `json:"pair"`
	Current  Cylinder   `json:"current"`
	Next     Cylinder   `json:"next"`
	Slices   []Cylinder `json:"slices"`
	Adjusted float64    `json:"adjusted"`
	Sliced   float64    `json:"sliced"`
}
