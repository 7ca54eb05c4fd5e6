package pricing

import "testing"

func TestVolumetricWeight(t *testing.T) {
	got := VolumetricWeight(10, 10, 10)
	if got != 0.02 {
		t.Fatalf("expected 0.02 kg, got %v", got)
	}
}

func TestVolumetricWeight_ZeroDimension(t *testing.T) {
	if got := VolumetricWeight(30, 0, 10); got != 0 {
		t.Fatalf("expected 0 kg, got %v", got)
	}
}

func TestChargeableWeight_IsMax(t *testing.T) {
	cases := []struct {
		actual, volumetric, want float64
	}{
		{2, 1.2, 2},
		{1.2, 2, 2},
		{3, 3, 3},
		{0, 0, 0},
	}
	for _, tc := range cases {
		got := ChargeableWeight(tc.actual, tc.volumetric)
		if got != tc.want {
			t.Fatalf("ChargeableWeight(%v, %v) = %v, want %v", tc.actual, tc.volumetric, got, tc.want)
		}
		if got < tc.actual || got < tc.volumetric {
			t.Fatalf("chargeable weight %v below one of its inputs (%v, %v)", got, tc.actual, tc.volumetric)
		}
	}
}
