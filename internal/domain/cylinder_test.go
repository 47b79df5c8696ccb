package domain

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(1e-5, 1e-9)

func assertApprox(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !cmp.Equal(got, want, approx) {
		t.Fatalf("%s: expected ~%v, got %v", name, want, got)
	}
}

func TestCylinderVolume(t *testing.T) {
	if got := CylinderVolume(0, 0); got != 0 {
		t.Fatalf("expected exactly 0, got %v", got)
	}
	if got := CylinderVolume(12, 0); got != 0 {
		t.Fatalf("expected zero-height band to have no volume, got %v", got)
	}
	assertApprox(t, "volume(4,3)", CylinderVolume(4, 3), 3.8197218)
	assertApprox(t, "volume(117,25)", CylinderVolume(117, 25), 27233.42)
	assertApprox(t, "Ideal.Volume", Ideal.Volume(), 27233.42)
}

func TestIdealAndActualJugVolume(t *testing.T) {
	assertApprox(t, "ideal", IdealJugVolume(), 4*27233.42)
	assertApprox(t, "actual", ActualJugVolume(), 827.98561)
}

func TestRadiusDifference(t *testing.T) {
	got := RadiusDifference(Cylinder{10 * Tau, 0}, Cylinder{7 * Tau, 0})
	assertApprox(t, "radius difference", got, 3.0)
}

func TestAdjustHeight(t *testing.T) {
	c, err := AdjustHeight(Ideal, Ideal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertApprox(t, "ideal height", c.Height, 25.0)
	assertApprox(t, "ideal circumference", c.Circumference, 117.0)

	jug := ActualJug()
	c, err = AdjustHeight(jug[0], jug[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertApprox(t, "actual height", c.Height, 1.79147)
	assertApprox(t, "actual circumference", c.Circumference, 35.3)
}

func TestAdjustHeight_DomainViolation(t *testing.T) {
	current := Cylinder{Circumference: 10 * Tau, Height: 1}
	next := Cylinder{Circumference: 7 * Tau, Height: 0}

	_, err := AdjustHeight(current, next)
	if err == nil {
		t.Fatalf("expected error when the radius step exceeds the slant height")
	}
	if !IsKind(err, KindDomain) {
		t.Fatalf("expected KindDomain, got %v", err)
	}

	if _, err := JugVolume([]Cylinder{current, next}); !IsKind(err, KindDomain) {
		t.Fatalf("expected JugVolume to surface KindDomain, got %v", err)
	}
}

func TestAdjustHeight_NonFiniteBands(t *testing.T) {
	cases := [][]Cylinder{
		{{Circumference: math.NaN(), Height: 1}, {Circumference: 1, Height: 0}},
		{{Circumference: 10, Height: math.NaN()}, {Circumference: 9, Height: 0}},
		{{Circumference: 10, Height: math.Inf(1)}, {Circumference: 9, Height: 0}},
		{{Circumference: math.Inf(1), Height: 1}, {Circumference: math.Inf(1), Height: 0}},
	}
	for i, bands := range cases {
		v, err := JugVolume(bands)
		if !IsKind(err, KindDomain) {
			t.Errorf("case %d: expected KindDomain, got v=%v err=%v", i, v, err)
		}
		if _, err := JugVolumeSliced(bands, 10); !IsKind(err, KindDomain) {
			t.Errorf("case %d: expected sliced KindDomain, got %v", i, err)
		}
	}
}

func TestAdjustCircumferenceAndRadius(t *testing.T) {
	c := AdjustCircumference(Cylinder{10, 4}, Cylinder{6, 9})
	if c.Circumference != 8 || c.Height != 4 {
		t.Fatalf("expected {8 4}, got %+v", c)
	}
	assertApprox(t, "adjust radius", AdjustRadius(3*Tau), 2.5)
}

func TestJugVolume(t *testing.T) {
	got, err := JugVolume(IdealJug())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertApprox(t, "ideal jug", got, 103162.141)

	got, err = JugVolume(ActualJug())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertApprox(t, "actual jug", got, 635.665)

	// within 12% of the measured capacity
	if rel := math.Abs(got-ActualJugMeasuredVolume) / ActualJugMeasuredVolume; rel > 0.12 {
		t.Fatalf("estimate drifted from measured capacity: relative error %.3f", rel)
	}
}

func TestJugVolume_TooFewCylinders(t *testing.T) {
	for _, in := range [][]Cylinder{nil, {Ideal}} {
		if _, err := JugVolume(in); !IsKind(err, KindInvalidArgument) {
			t.Fatalf("expected KindInvalidArgument for %d cylinders, got %v", len(in), err)
		}
	}
}

func TestJugVolume_DoesNotMutateInput(t *testing.T) {
	in := ActualJug()
	want := ActualJug()
	if _, err := JugVolume(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := JugVolumeSliced(in, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestActualJugReturnsCopy(t *testing.T) {
	a := ActualJug()
	a[0].Height = 99
	if ActualJug()[0].Height != 1.8 {
		t.Fatalf("ActualJug must return a fresh copy")
	}
}

func TestSliced_IdealCylinder(t *testing.T) {
	got, err := Sliced(Ideal, Ideal, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Cylinder{{117, 25}, {117, 0}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("slices mismatch (-want +got):\n%s", diff)
	}
	if got[1].Height != 0 {
		t.Fatalf("expected exact zero cap height")
	}

	v, err := JugVolume(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertApprox(t, "single ideal slice", v, 25790.535)
}

func TestSliced_OneSliceMatchesAdjusted(t *testing.T) {
	cases := []struct {
		name          string
		current, next Cylinder
	}{
		{"tapered", Cylinder{10.5 * Tau, 5}, Cylinder{7.5 * Tau, 0}},
		{"actual[0]", ActualJug()[0], ActualJug()[1]},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Sliced(c.current, c.next, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("expected 2 records, got %d", len(got))
			}
			assertApprox(t, "first circumference", got[0].Circumference, c.current.Circumference)
			assertApprox(t, "first height", got[0].Height, c.current.Height)
			assertApprox(t, "cap circumference", got[1].Circumference, c.next.Circumference)
			if got[1].Height != 0 {
				t.Fatalf("expected zero cap height, got %v", got[1].Height)
			}

			want, err := VolumeAdjusted(c.current, c.next)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			v, err := JugVolume(got)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertApprox(t, "volume", v, want)
		})
	}
}

func TestSliced_HundredSlices(t *testing.T) {
	const n = 100
	current := Cylinder{10.5 * Tau, 5}
	next := Cylinder{7.5 * Tau, 0}

	got, err := Sliced(current, next, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != n+1 {
		t.Fatalf("expected %d records, got %d", n+1, len(got))
	}

	assertApprox(t, "circumference step", got[n-2].Circumference-got[n-1].Circumference, 3.0/n*Tau)
	for i := 1; i <= n; i++ {
		if !(got[i-1].Circumference > got[i].Circumference) {
			t.Fatalf("circumference not strictly decreasing at %d: %v <= %v", i, got[i-1].Circumference, got[i].Circumference)
		}
	}
	for i := 0; i < n; i++ {
		if got[i].Height != got[0].Height {
			t.Fatalf("height not constant at slice %d", i)
		}
	}
	assertApprox(t, "slice height", got[n-1].Height, 5.0/n)
	if got[n] != (Cylinder{next.Circumference, 0}) {
		t.Fatalf("expected sentinel cap, got %+v", got[n])
	}
}

func TestSliced_ActualPairs(t *testing.T) {
	jug := ActualJug()
	for i := 0; i < len(jug)-1; i++ {
		got, err := Sliced(jug[i], jug[i+1], 100)
		if err != nil {
			t.Fatalf("pair %d: unexpected error: %v", i, err)
		}
		if len(got) != 101 {
			t.Fatalf("pair %d: expected 101 records, got %d", i, len(got))
		}

		sliced, err := JugVolume(got)
		if err != nil {
			t.Fatalf("pair %d: unexpected error: %v", i, err)
		}
		adjusted, err := VolumeAdjusted(jug[i], jug[i+1])
		if err != nil {
			t.Fatalf("pair %d: unexpected error: %v", i, err)
		}
		if !cmp.Equal(sliced, adjusted, cmpopts.EquateApprox(1e-3, 0)) {
			t.Fatalf("pair %d: sliced %v too far from adjusted %v", i, sliced, adjusted)
		}
	}
}

func TestSliced_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := Sliced(Ideal, Ideal, n); !IsKind(err, KindInvalidArgument) {
			t.Fatalf("expected KindInvalidArgument for count %d, got %v", n, err)
		}
	}
}

func TestJugVolumeSliced(t *testing.T) {
	cases := []struct {
		name  string
		jug   []Cylinder
		count int
		want  float64
	}{
		{"ideal/1", IdealJug(), 1, 103162.141},
		{"ideal/100", IdealJug(), 100, 103162.141},
		{"actual/1", ActualJug(), 1, 635.665},
		{"actual/100", ActualJug(), 100, 635.8632},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := JugVolumeSliced(c.jug, c.count)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertApprox(t, c.name, got, c.want)
		})
	}
}

func TestJugVolumeSliced_Converges(t *testing.T) {
	jug := ActualJug()
	vol := func(n int) float64 {
		v, err := JugVolumeSliced(jug, n)
		if err != nil {
			t.Fatalf("count %d: unexpected error: %v", n, err)
		}
		return v
	}

	v1, v10, v100, v1000 := vol(1), vol(10), vol(100), vol(1000)
	d1, d2, d3 := math.Abs(v10-v1), math.Abs(v100-v10), math.Abs(v1000-v100)
	if !(d1 > d2 && d2 > d3) {
		t.Fatalf("expected shrinking steps, got %v %v %v", d1, d2, d3)
	}
}

func TestJugVolumeSliced_Errors(t *testing.T) {
	if _, err := JugVolumeSliced([]Cylinder{Ideal}, 10); !IsKind(err, KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument for single cylinder, got %v", err)
	}
	if _, err := JugVolumeSliced(ActualJug(), 0); !IsKind(err, KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument for zero slices, got %v", err)
	}
}

func TestSegments(t *testing.T) {
	segs, err := Segments(ActualJug())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segs))
	}

	want := []float64{142.43080, 153.14715, 161.36202, 178.72482}
	total := 0.0
	for i, s := range segs {
		if s.Index != i {
			t.Fatalf("expected index %d, got %d", i, s.Index)
		}
		assertApprox(t, "segment volume", s.Volume, want[i])
		total += s.Volume
	}

	jv, _ := JugVolume(ActualJug())
	assertApprox(t, "segments total", total, jv)
	assertApprox(t, "first adjusted circumference", segs[0].Adjusted.Circumference, (35.3+34.2)/2)
}
