package domain

import "testing"

func TestPaymentStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentPending, PaymentPaid, true},
		{PaymentPending, PaymentFailed, true},
		{PaymentFailed, PaymentPaid, true},
		{PaymentPaid, PaymentPending, false},
		{PaymentPaid, PaymentFailed, false},
		{PaymentFailed, PaymentPending, false},
		{PaymentPending, PaymentPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestPaymentStatusIsValid(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed} {
		if !s.IsValid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if PaymentStatus("refunded").IsValid() {
		t.Fatalf("unknown status must be invalid")
	}
}
