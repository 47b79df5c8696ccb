package domain

import "math"

const (
	Pi  = math.Pi
	Tau = 2 * Pi

	// WallThickness is subtracted from every averaged radius.
	WallThickness = 0.5

	// ActualJugMeasuredVolume is the capacity of the measured jug, found by filling it.
	// It is a fill measurement to compare estimates against, not a value the formulas reproduce.
	ActualJugMeasuredVolume = 568.0
)

// Cylinder is one measured horizontal band of a vessel.
// Height is the slant measurement along the wall; zero marks the terminating cap.
type Cylinder struct {
	Circumference float64 `json:"circumference" yaml:"circumference"`
	Height        float64 `json:"height" yaml:"height"`
}

// Ideal is a straight-walled reference band.
var Ideal = Cylinder{Circumference: 117.0, Height: 25.0}

var actualJug = [...]Cylinder{
	{Circumference: 35.3, Height: 1.8},
	{Circumference: 34.2, Height: 2.1},
	{Circumference: 32.8, Height: 2.5},
	{Circumference: 30.7, Height: 3.2}, // 3.7 minus 0.5 for the base
	{Circumference: 28.7, Height: 0},
}

// ActualJug returns the measured jug profile, widest band first.
func ActualJug() []Cylinder {
	out := make([]Cylinder, len(actualJug))
	copy(out, actualJug[:])
	return out
}

// IdealJug returns four Ideal bands closed by a zero-height cap.
func IdealJug() []Cylinder {
	out := make([]Cylinder, 5)
	for i := range out {
		out[i] = Ideal
	}
	out[len(out)-1].Height = 0
	return out
}

// Radius converts the band's circumference to a radius.
func (c Cylinder) Radius() float64 {
	return c.Circumference / Tau
}

// Volume treats the band as a right circular cylinder.
func (c Cylinder) Volume() float64 {
	return CylinderVolume(c.Circumference, c.Height)
}

// CylinderVolume computes πr²h with r = c/2π, i.e. c²h/4π.
func CylinderVolume(circumference, height float64) float64 {
	return (circumference * circumference * height) / (4 * Pi)
}

// RadiusDifference is how much narrower next is than current.
func RadiusDifference(current, next Cylinder) float64 {
	return current.Radius() - next.Radius()
}

// AdjustHeight turns the slant height of current into a vertical height using
// Pythagoras against the radius step to next. The circumference is kept.
func AdjustHeight(current, next Cylinder) (Cylinder, error) {
	dr := RadiusDifference(current, next)
	sq := pow2(current.Height) - pow2(dr)
	if math.IsNaN(sq) || math.IsInf(sq, 0) {
		return Cylinder{}, domainViolation("cylinder.adjust_height",
			"non-finite band (%g, %g) next to (%g, %g)", current.Circumference, current.Height, next.Circumference, next.Height)
	}
	if sq < 0 {
		return Cylinder{}, domainViolation("cylinder.adjust_height",
			"slant height %g is shorter than radius step %g", current.Height, math.Abs(dr))
	}
	return Cylinder{Circumference: current.Circumference, Height: math.Sqrt(sq)}, nil
}

// AdjustCircumference replaces the circumference of current with the mean of both bands.
func AdjustCircumference(current, next Cylinder) Cylinder {
	return Cylinder{
		Circumference: (current.Circumference + next.Circumference) / 2,
		Height:        current.Height,
	}
}

// AdjustRadius converts a circumference to a radius inside the wall.
func AdjustRadius(circumference float64) float64 {
	return circumference/Tau - WallThickness
}

// AdjustSegment applies the height and circumference corrections for the pair.
func AdjustSegment(current, next Cylinder) (Cylinder, error) {
	c, err := AdjustHeight(current, next)
	if err != nil {
		return Cylinder{}, err
	}
	return AdjustCircumference(c, next), nil
}

// VolumeAdjusted estimates the volume of the frustum between current and next.
func VolumeAdjusted(current, next Cylinder) (float64, error) {
	c, err := AdjustSegment(current, next)
	if err != nil {
		return 0, err
	}
	return CylinderVolume(AdjustRadius(c.Circumference)*Tau, c.Height), nil
}

// JugVolume sums VolumeAdjusted over every consecutive pair of bands.
func JugVolume(cylinders []Cylinder) (float64, error) {
	if len(cylinders) < 2 {
		return 0, invalidArgument("cylinder.jug_volume", "need at least 2 cylinders, got %d", len(cylinders))
	}

	sum := 0.0
	for i := 0; i < len(cylinders)-1; i++ {
		v, err := VolumeAdjusted(cylinders[i], cylinders[i+1])
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// UnadjustedVolume sums the raw cylinder volumes of every band.
func UnadjustedVolume(cylinders []Cylinder) float64 {
	sum := 0.0
	for _, c := range cylinders {
		sum += c.Volume()
	}
	return sum
}

// IdealJugVolume is the raw volume of four Ideal bands.
func IdealJugVolume() float64 {
	return UnadjustedVolume(IdealJug())
}

// ActualJugVolume is the raw volume of the measured bands.
func ActualJugVolume() float64 {
	return UnadjustedVolume(ActualJug())
}

// Sliced divides the region between current and next into count thin bands with
// linearly interpolated radius, followed by a zero-height cap at next.
func Sliced(current, next Cylinder, count int) ([]Cylinder, error) {
	if count < 1 {
		return nil, invalidArgument("cylinder.sliced", "slice count must be >= 1, got %d", count)
	}

	r := current.Radius()
	dr := RadiusDifference(current, next) / float64(count)
	h := current.Height / float64(count)

	slices := make([]Cylinder, 0, count+1)
	for i := 0; i < count; i++ {
		slices = append(slices, Cylinder{
			Circumference: (r - float64(i)*dr) * Tau,
			Height:        h,
		})
	}
	slices = append(slices, Cylinder{Circumference: next.Circumference, Height: 0})
	return slices, nil
}

// JugVolumeSliced slices every consecutive pair and sums the resulting jug volumes.
func JugVolumeSliced(cylinders []Cylinder, count int) (float64, error) {
	if len(cylinders) < 2 {
		return 0, invalidArgument("cylinder.jug_volume_sliced", "need at least 2 cylinders, got %d", len(cylinders))
	}

	sum := 0.0
	for i := 0; i < len(cylinders)-1; i++ {
		slices, err := Sliced(cylinders[i], cylinders[i+1], count)
		if err != nil {
			return 0, err
		}
		v, err := JugVolume(slices)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// Segment is the adjusted estimate for one pair of bands.
type Segment struct {
	Index    int      `json:"index"`
	Current  Cylinder `json:"current"`
	Next     Cylinder `json:"next"`
	Adjusted Cylinder `json:"adjusted"`
	Volume   float64  `json:"volume"`
}

// Segments returns the per-pair breakdown behind JugVolume.
func Segments(cylinders []Cylinder) ([]Segment, error) {
	if len(cylinders) < 2 {
		return nil, invalidArgument("cylinder.segments", "need at least 2 cylinders, got %d", len(cylinders))
	}

	out := make([]Segment, 0, len(cylinders)-1)
	for i := 0; i < len(cylinders)-1; i++ {
		adj, err := AdjustSegment(cylinders[i], cylinders[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, Segment{
			Index:    i,
			Current:  cylinders[i],
			Next:     cylinders[i+1],
			Adjusted: adj,
			Volume:   CylinderVolume(AdjustRadius(adj.Circumference)*Tau, adj.Height),
		})
	}
	return out, nil
}

func pow2(v float64) float64 {
	return v * v
}
