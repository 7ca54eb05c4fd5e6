package domain

import (
	"errors"
	"time"
)

// PaymentStatus is the operator-managed payment state of an order.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// validPaymentTransitions defines the allowed payment state changes.
// "paid" is terminal; a failed payment may be retried and marked paid.
var validPaymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentFailed},
	PaymentFailed:  {PaymentPaid},
}

var ErrInvalidPaymentTransition = errors.New("invalid payment status transition")
var ErrOrderNotFound = errors.New("order not found")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a payment status change is allowed.
func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range validPaymentTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known payment status.
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

// OrderStatusPending is the free-text status every new order starts in.
const OrderStatusPending = "pending"

// Recipient holds the delivery contact details of an order.
type Recipient struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
}

// DeliveryAddress is the destination of an order. Country doubles as the
// zone-lookup key used when the order's quote was computed.
type DeliveryAddress struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Zip     string `json:"zip" bson:"zip"`
	Country string `json:"country" bson:"country"`
}

// ShippingOrder is the persisted record of a submitted quote. The price fields
// are a snapshot of the quote at submission time; rate-table changes after the
// fact never reprice an existing order. Orders are created once at submission
// and only the operator-managed fields (Status, PaymentStatus, TrackingNumber)
// change afterwards. Orders are never deleted.
type ShippingOrder struct {
	ID                  string            `json:"id" bson:"_id,omitempty"`
	UserID              string            `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Recipient           Recipient         `json:"recipient" bson:"recipient"`
	Address             DeliveryAddress   `json:"address" bson:"address"`
	Dimensions          PackageDimensions `json:"dimensions" bson:"dimensions"`
	Repacking           bool              `json:"repacking" bson:"repacking"`
	ActualWeightKg      float64           `json:"actual_weight_kg" bson:"actual_weight"`
	VolumetricWeightKg  float64           `json:"volumetric_weight_kg" bson:"volumetric_weight"`
	ChargeableWeightKg  float64           `json:"chargeable_weight_kg" bson:"chargeable_weight"`
	Zone                int               `json:"zone,omitempty" bson:"zone_number,omitempty"`
	BasePrice           float64           `json:"base_price" bson:"base_price"`
	FuelSurchargeAmount float64           `json:"fuel_surcharge_amount" bson:"fuel_surcharge"`
	HandlingFee         float64           `json:"handling_fee" bson:"handling_fee"`
	RepackingFee        float64           `json:"repacking_fee" bson:"repacking_fee"`
	TotalPrice          float64           `json:"total_price" bson:"total_price"`
	Status              string            `json:"status" bson:"status"`
	PaymentStatus       PaymentStatus     `json:"payment_status" bson:"payment_status"`
	TrackingNumber      string            `json:"tracking_number,omitempty" bson:"tracking_number,omitempty"`
	IdempotencyKey      string            `json:"idempotency_key,omitempty" bson:"idempotency_key,omitempty"`
	CreatedAt           time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at" bson:"updated_at"`
}
