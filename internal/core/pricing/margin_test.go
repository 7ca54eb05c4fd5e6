package pricing

import (
	"errors"
	"math"
	"testing"
)

func TestSuggestedResalePrice(t *testing.T) {
	// item 100 + shipping 50 = 150, 20% margin -> revenue 180,
	// fees 12.9% + 4.4% = 17.3% -> price 180 / 0.827.
	b, err := SuggestedResalePrice(100, 50, 20, 12.9, 4.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantPrice := 180.0 / 0.827
	if math.Abs(b.SellingPrice-wantPrice) > 1e-9 {
		t.Fatalf("selling price: expected %v, got %v", wantPrice, b.SellingPrice)
	}
	if math.Abs(b.MarketplaceFee-b.SellingPrice*0.129) > 1e-9 {
		t.Fatalf("marketplace fee mismatch: %v", b.MarketplaceFee)
	}
	if math.Abs(b.PaymentFee-b.SellingPrice*0.044) > 1e-9 {
		t.Fatalf("payment fee mismatch: %v", b.PaymentFee)
	}

	wantProfit := b.SellingPrice - 150 - b.MarketplaceFee - b.PaymentFee
	if math.Abs(b.NetProfit-wantProfit) > 1e-9 {
		t.Fatalf("net profit: expected %v, got %v", wantProfit, b.NetProfit)
	}
	if math.Abs(b.RealizedMarginPct-b.NetProfit/b.SellingPrice*100) > 1e-9 {
		t.Fatalf("realized margin mismatch: %v", b.RealizedMarginPct)
	}
}

func TestSuggestedResalePrice_FeesExceedMargin(t *testing.T) {
	_, err := SuggestedResalePrice(100, 50, 20, 60, 50)
	if !errors.Is(err, ErrFeesExceedMargin) {
		t.Fatalf("expected ErrFeesExceedMargin, got %v", err)
	}

	// Exactly 100% combined is equally infeasible.
	_, err = SuggestedResalePrice(100, 50, 20, 70, 30)
	if !errors.Is(err, ErrFeesExceedMargin) {
		t.Fatalf("expected ErrFeesExceedMargin at exactly 100%%, got %v", err)
	}
}

func TestSuggestedResalePrice_ZeroCost(t *testing.T) {
	b, err := SuggestedResalePrice(0, 0, 20, 12.9, 4.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.SellingPrice != 0 || b.RealizedMarginPct != 0 {
		t.Fatalf("expected zero breakdown, got %+v", b)
	}
}
