package ports

import (
	"context"
	"time"
)

// OrderAlert is the canonical order-created notification payload. Field names
// marshal to camelCase; this is the one schema the operator webhook receives.
type OrderAlert struct {
	OrderID          string    `json:"orderId"`
	RecipientName    string    `json:"recipientName"`
	Phone            string    `json:"phone"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Country          string    `json:"country"`
	Weight           float64   `json:"weight"`
	ChargeableWeight float64   `json:"chargeableWeight"`
	BasePrice        float64   `json:"basePrice"`
	FuelSurcharge    float64   `json:"fuelSurcharge"`
	HandlingFee      float64   `json:"handlingFee"`
	RepackingFee     float64   `json:"repackingFee"`
	TotalPrice       float64   `json:"totalPrice"`
	CreatedAt        time.Time `json:"createdAt"`
}

// OrderNotifier delivers an operator alert for a newly created order.
// Delivery is best-effort: failures are logged by the caller, never surfaced
// to the customer who submitted the order.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, alert OrderAlert) error
}
