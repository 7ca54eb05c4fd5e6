package ports

import (
	"context"
	"time"

	"github.com/postrepublic/quote-system/internal/core/domain"
)

// ListOrdersFilter carries all query parameters for listing orders.
// UserID is enforced by the service layer: customers only see their own.
type ListOrdersFilter struct {
	UserID        string    // empty = no filter (operator); non-empty = scoped to user
	PaymentStatus string    // optional
	Country       string    // optional: destination country
	Search        string    // optional: partial match on recipient name or tracking number
	DateFrom      time.Time // optional: created_at >= DateFrom
	DateTo        time.Time // optional: created_at <= DateTo
	Page          int       // 1-based
	Limit         int       // capped at 100 by the service
}

// OrderRepository defines persistence operations for shipping orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.ShippingOrder) error
	// FindByID retrieves an order. When userID is non-empty the query is
	// additionally scoped to that user (RBAC).
	FindByID(ctx context.Context, id string, userID string) (*domain.ShippingOrder, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.ShippingOrder, error)
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.ShippingOrder, int64, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
	UpdateTrackingNumber(ctx context.Context, id string, trackingNumber string) error
}
