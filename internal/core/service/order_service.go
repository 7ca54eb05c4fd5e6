package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/postrepublic/quote-system/internal/core/domain"
	"github.com/postrepublic/quote-system/internal/core/ports"
)

const maxListLimit = 100

// Enqueuer hands an order alert to the async notification pipeline.
type Enqueuer interface {
	Enqueue(alert ports.OrderAlert)
}

// OrderService owns the order lifecycle: submission (with server-side
// repricing), listing, and the operator edits.
type OrderService struct {
	orders   ports.OrderRepository
	quotes   ports.QuoteService
	notifier Enqueuer
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, quotes ports.QuoteService, notifier Enqueuer, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, quotes: quotes, notifier: notifier, logger: logger}
}

// CreateOrder recomputes the quote from the submitted dimensions and
// destination, persists the order with the priced snapshot, and enqueues the
// operator notification. If an idempotency key was already seen, the existing
// order is returned without side effects.
//
// Submission requires a resolved destination zone: the UI disables submit in
// the unresolved state and the service enforces the same rule.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	if input.IdempotencyKey != "" {
		existing, err := s.orders.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil && existing != nil {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("order_id", existing.ID).Msg("idempotent replay")
			return &ports.OrderResult{
				OrderID:        existing.ID,
				Quote:          orderQuote(existing),
				Status:         existing.Status,
				CreatedAt:      existing.CreatedAt,
				AlreadyExisted: true,
			}, nil
		}
	}

	estimate, err := s.quotes.Estimate(ctx, ports.QuoteInput{
		Dimensions:         input.Dimensions,
		DestinationCountry: input.Address.Country,
		Repacking:          input.Repacking,
	})
	if err != nil {
		return nil, fmt.Errorf("price order: %w", err)
	}

	q := estimate.Quote
	if !q.ZoneResolved {
		return nil, domain.ErrZoneUnresolved
	}

	now := time.Now().UTC()
	order := &domain.ShippingOrder{
		UserID: input.UserID,
		Recipient: domain.Recipient{
			Name:  input.Recipient.Name,
			Phone: input.Recipient.Phone,
		},
		Address: domain.DeliveryAddress{
			Address: input.Address.Address,
			City:    input.Address.City,
			State:   input.Address.State,
			Zip:     input.Address.Zip,
			Country: input.Address.Country,
		},
		Dimensions:          input.Dimensions,
		Repacking:           input.Repacking,
		ActualWeightKg:      q.ActualWeightKg,
		VolumetricWeightKg:  q.VolumetricWeightKg,
		ChargeableWeightKg:  q.ChargeableWeightKg,
		Zone:                q.Zone,
		BasePrice:           q.BasePrice,
		FuelSurchargeAmount: q.FuelSurchargeAmount,
		HandlingFee:         q.HandlingFee,
		RepackingFee:        q.RepackingFee,
		TotalPrice:          q.TotalPrice,
		Status:              domain.OrderStatusPending,
		PaymentStatus:       domain.PaymentPending,
		IdempotencyKey:      input.IdempotencyKey,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("country", order.Address.Country).
		Float64("total", order.TotalPrice).
		Msg("order created")

	s.notifier.Enqueue(ports.OrderAlert{
		OrderID:          order.ID,
		RecipientName:    order.Recipient.Name,
		Phone:            order.Recipient.Phone,
		City:             order.Address.City,
		State:            order.Address.State,
		Country:          order.Address.Country,
		Weight:           order.ActualWeightKg,
		ChargeableWeight: order.ChargeableWeightKg,
		BasePrice:        order.BasePrice,
		FuelSurcharge:    order.FuelSurchargeAmount,
		HandlingFee:      order.HandlingFee,
		RepackingFee:     order.RepackingFee,
		TotalPrice:       order.TotalPrice,
		CreatedAt:        order.CreatedAt,
	})

	return &ports.OrderResult{
		OrderID:   order.ID,
		Quote:     q,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}, nil
}

// GetOrder retrieves one order. Customers are scoped to their own orders;
// operators see everything.
func (s *OrderService) GetOrder(ctx context.Context, input ports.GetOrderInput) (*domain.ShippingOrder, error) {
	scope := ""
	if input.Role != domain.RoleOperator {
		scope = input.UserID
	}
	return s.orders.FindByID(ctx, input.OrderID, scope)
}

// ListOrders returns a page of orders. Customers are always scoped to their
// own orders regardless of the filter they send.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) (*ports.ListOrdersResult, error) {
	filter := ports.ListOrdersFilter{
		PaymentStatus: input.PaymentStatus,
		Country:       input.Country,
		Search:        input.Search,
		DateFrom:      input.DateFrom,
		DateTo:        input.DateTo,
		Page:          input.Page,
		Limit:         input.Limit,
	}
	if input.Role != domain.RoleOperator {
		filter.UserID = input.UserID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	items, total, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListOrdersResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// SetPaymentStatus applies an operator payment-status edit, validating the
// transition against the payment state machine.
func (s *OrderService) SetPaymentStatus(ctx context.Context, input ports.SetPaymentStatusInput) (*domain.ShippingOrder, error) {
	if !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidPaymentTransition, input.Status)
	}

	order, err := s.orders.FindByID(ctx, input.OrderID, "")
	if err != nil {
		return nil, err
	}

	if !order.PaymentStatus.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidPaymentTransition, order.PaymentStatus, input.Status)
	}

	if err := s.orders.UpdatePaymentStatus(ctx, input.OrderID, input.Status); err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	s.logger.Info().
		Str("order_id", input.OrderID).
		Str("payment_status", string(input.Status)).
		Msg("payment status updated")

	order.PaymentStatus = input.Status
	order.UpdatedAt = time.Now().UTC()
	return order, nil
}

// SetTrackingNumber records the carrier tracking number on an order.
func (s *OrderService) SetTrackingNumber(ctx context.Context, input ports.SetTrackingNumberInput) (*domain.ShippingOrder, error) {
	order, err := s.orders.FindByID(ctx, input.OrderID, "")
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateTrackingNumber(ctx, input.OrderID, input.TrackingNumber); err != nil {
		return nil, fmt.Errorf("update tracking number: %w", err)
	}

	s.logger.Info().
		Str("order_id", input.OrderID).
		Str("tracking_number", input.TrackingNumber).
		Msg("tracking number updated")

	order.TrackingNumber = input.TrackingNumber
	order.UpdatedAt = time.Now().UTC()
	return order, nil
}

// orderQuote rebuilds the quote snapshot stored on a persisted order.
func orderQuote(o *domain.ShippingOrder) domain.Quote {
	return domain.Quote{
		ActualWeightKg:      o.ActualWeightKg,
		VolumetricWeightKg:  o.VolumetricWeightKg,
		ChargeableWeightKg:  o.ChargeableWeightKg,
		Zone:                o.Zone,
		ZoneResolved:        o.Zone != 0,
		BasePrice:           o.BasePrice,
		FuelSurchargeAmount: o.FuelSurchargeAmount,
		HandlingFee:         o.HandlingFee,
		RepackingFee:        o.RepackingFee,
		TotalPrice:          o.TotalPrice,
	}
}
