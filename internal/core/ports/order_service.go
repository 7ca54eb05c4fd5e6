package ports

import (
	"context"
	"time"

	"github.com/postrepublic/quote-system/internal/core/domain"
)

// RecipientInput holds the delivery contact of an order.
type RecipientInput struct {
	Name  string
	Phone string
}

// AddressInput holds the destination address of an order.
type AddressInput struct {
	Address string
	City    string
	State   string
	Zip     string
	Country string
}

// CreateOrderInput carries all data needed to submit an order. The price is
// recomputed server-side from Dimensions and Address.Country; client-supplied
// prices are never trusted.
type CreateOrderInput struct {
	Recipient      RecipientInput
	Address        AddressInput
	Dimensions     domain.PackageDimensions
	Repacking      bool
	UserID         string
	IdempotencyKey string
}

// OrderResult is returned by the service after creating an order.
type OrderResult struct {
	OrderID   string
	Quote     domain.Quote
	Status    string
	CreatedAt time.Time
	// AlreadyExisted is true when the Idempotency-Key matched an existing order.
	AlreadyExisted bool
}

// GetOrderInput carries the parameters to retrieve a single order.
// Role and UserID enforce RBAC: customers only see their own orders.
type GetOrderInput struct {
	OrderID string
	Role    string
	UserID  string
}

// ListOrdersInput carries all parameters for the list endpoint.
type ListOrdersInput struct {
	Role          string
	UserID        string
	PaymentStatus string
	Country       string
	Search        string
	DateFrom      time.Time
	DateTo        time.Time
	Page          int
	Limit         int
}

// ListOrdersResult is returned by ListOrders.
type ListOrdersResult struct {
	Items      []*domain.ShippingOrder
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// SetPaymentStatusInput is an operator action on one order.
type SetPaymentStatusInput struct {
	OrderID string
	Status  domain.PaymentStatus
}

// SetTrackingNumberInput is an operator action on one order.
type SetTrackingNumberInput struct {
	OrderID        string
	TrackingNumber string
}

// OrderService defines use-case operations for shipping orders.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResult, error)
	GetOrder(ctx context.Context, input GetOrderInput) (*domain.ShippingOrder, error)
	ListOrders(ctx context.Context, input ListOrdersInput) (*ListOrdersResult, error)
	SetPaymentStatus(ctx context.Context, input SetPaymentStatusInput) (*domain.ShippingOrder, error)
	SetTrackingNumber(ctx context.Context, input SetTrackingNumberInput) (*domain.ShippingOrder, error)
}
