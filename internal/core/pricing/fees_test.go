package pricing

import (
	"math"
	"testing"
)

func TestHandlingFee(t *testing.T) {
	if got := HandlingFee(1.0); got != 30 {
		t.Fatalf("expected 30 for 1kg, got %v", got)
	}
	if got := HandlingFee(2.5); got != 60 {
		t.Fatalf("expected 60 for 2.5kg, got %v", got)
	}
	// Sub-1kg weights pay only the first-kg charge.
	if got := HandlingFee(0.3); got != 30 {
		t.Fatalf("expected 30 for 0.3kg, got %v", got)
	}
}

func TestFuelSurcharge(t *testing.T) {
	if got := FuelSurcharge(100, 12); got != 12 {
		t.Fatalf("expected 12, got %v", got)
	}
	if got := FuelSurcharge(65, DefaultFuelSurchargePct); math.Abs(got-7.8) > 1e-9 {
		t.Fatalf("expected 7.8, got %v", got)
	}
	if got := FuelSurcharge(0, 12); got != 0 {
		t.Fatalf("expected 0 on zero base, got %v", got)
	}
}

func TestRepackingFee(t *testing.T) {
	if got := RepackingFee(); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}
