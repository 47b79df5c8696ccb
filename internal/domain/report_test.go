package domain

import "testing"

func TestVolumeReport_RelativeError(t *testing.T) {
	r := VolumeReport{Adjusted: 635.66479, MeasuredVolume: ActualJugMeasuredVolume}
	rel, ok := r.RelativeError()
	if !ok {
		t.Fatalf("expected relative error with a measured volume")
	}
	if rel < 0.11 || rel > 0.12 {
		t.Fatalf("expected relative error near 0.119, got %v", rel)
	}

	if _, ok := (VolumeReport{Adjusted: 10}).RelativeError(); ok {
		t.Fatalf("expected no relative error without a measured volume")
	}
}

func TestRelation(t *testing.T) {
	cases := map[int]string{-1: "<", 0: "=", 1: ">", -7: "<", 3: ">"}
	for order, want := range cases {
		if got := Relation(order); got != want {
			t.Errorf("Relation(%d) = %q, want %q", order, got, want)
		}
	}
}
