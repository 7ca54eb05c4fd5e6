package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/postrepublic/quote-system/internal/core/domain"
	"github.com/postrepublic/quote-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubOrderRepo struct {
	orders  map[string]*domain.ShippingOrder
	byKey   map[string]*domain.ShippingOrder
	created []*domain.ShippingOrder

	listFilter ports.ListOrdersFilter
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders: map[string]*domain.ShippingOrder{},
		byKey:  map[string]*domain.ShippingOrder{},
	}
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.ShippingOrder) error {
	if order.ID == "" {
		order.ID = "order-1"
	}
	r.orders[order.ID] = order
	if order.IdempotencyKey != "" {
		r.byKey[order.IdempotencyKey] = order
	}
	r.created = append(r.created, order)
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id, userID string) (*domain.ShippingOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if userID != "" && o.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.ShippingOrder, error) {
	o, ok := r.byKey[key]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, filter ports.ListOrdersFilter) ([]*domain.ShippingOrder, int64, error) {
	r.listFilter = filter
	out := make([]*domain.ShippingOrder, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.UserID != "" && o.UserID != filter.UserID {
			continue
		}
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) UpdatePaymentStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.PaymentStatus = status
	return nil
}

func (r *stubOrderRepo) UpdateTrackingNumber(_ context.Context, id, tracking string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.TrackingNumber = tracking
	return nil
}

type stubQuoteService struct {
	quote domain.Quote
	err   error
}

func (s *stubQuoteService) Estimate(_ context.Context, _ ports.QuoteInput) (*ports.QuoteResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ports.QuoteResult{Quote: s.quote, Currency: Currency}, nil
}

func (s *stubQuoteService) ResellerPrice(_ context.Context, _ ports.ResellerInput) (*ports.ResellerResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubQuoteService) Countries(_ context.Context) ([]ports.CountryInfo, error) {
	return nil, errors.New("not implemented")
}

type stubEnqueuer struct {
	alerts []ports.OrderAlert
}

func (e *stubEnqueuer) Enqueue(alert ports.OrderAlert) {
	e.alerts = append(e.alerts, alert)
}

func resolvedQuote() domain.Quote {
	return domain.Quote{
		ActualWeightKg:      2,
		VolumetricWeightKg:  1.2,
		ChargeableWeightKg:  2,
		Zone:                4,
		ZoneResolved:        true,
		BasePrice:           65,
		FuelSurchargeAmount: 7.8,
		HandlingFee:         50,
		TotalPrice:          142.8,
	}
}

func createInput() ports.CreateOrderInput {
	return ports.CreateOrderInput{
		Recipient: ports.RecipientInput{Name: "Aisyah", Phone: "+60123456789"},
		Address: ports.AddressInput{
			Address: "12 Jalan Besar",
			City:    "Berlin",
			State:   "Berlin",
			Zip:     "10115",
			Country: "Germany",
		},
		Dimensions: domain.PackageDimensions{WeightKg: 2, LengthCm: 30, WidthCm: 20, HeightCm: 10},
		UserID:     "user-1",
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	repo := newStubOrderRepo()
	notifier := &stubEnqueuer{}
	svc := NewOrderService(repo, &stubQuoteService{quote: resolvedQuote()}, notifier, zerolog.Nop())

	result, err := svc.CreateOrder(context.Background(), createInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OrderID == "" {
		t.Fatalf("expected order id to be assigned")
	}
	if result.Status != domain.OrderStatusPending {
		t.Fatalf("expected status pending, got %q", result.Status)
	}
	if result.AlreadyExisted {
		t.Fatalf("fresh order must not be flagged as replay")
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(repo.created))
	}
	stored := repo.created[0]
	if stored.TotalPrice != 142.8 {
		t.Fatalf("expected server-side price 142.8, got %v", stored.TotalPrice)
	}
	if stored.PaymentStatus != domain.PaymentPending {
		t.Fatalf("expected payment pending, got %q", stored.PaymentStatus)
	}

	if len(notifier.alerts) != 1 {
		t.Fatalf("expected one alert enqueued, got %d", len(notifier.alerts))
	}
	alert := notifier.alerts[0]
	if alert.OrderID != stored.ID || alert.TotalPrice != 142.8 || alert.Country != "Germany" {
		t.Fatalf("unexpected alert: %+v", alert)
	}
}

func TestOrderService_CreateOrder_UnresolvedZone(t *testing.T) {
	repo := newStubOrderRepo()
	notifier := &stubEnqueuer{}
	quote := domain.Quote{ActualWeightKg: 2, ChargeableWeightKg: 2}
	svc := NewOrderService(repo, &stubQuoteService{quote: quote}, notifier, zerolog.Nop())

	input := createInput()
	input.Address.Country = "Atlantis"
	_, err := svc.CreateOrder(context.Background(), input)
	if !errors.Is(err, domain.ErrZoneUnresolved) {
		t.Fatalf("expected ErrZoneUnresolved, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("rejected order must not be persisted")
	}
	if len(notifier.alerts) != 0 {
		t.Fatalf("rejected order must not be announced")
	}
}

func TestOrderService_CreateOrder_IdempotentReplay(t *testing.T) {
	repo := newStubOrderRepo()
	notifier := &stubEnqueuer{}
	svc := NewOrderService(repo, &stubQuoteService{quote: resolvedQuote()}, notifier, zerolog.Nop())

	input := createInput()
	input.IdempotencyKey = "key-abc"

	first, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("replay create: %v", err)
	}

	if !second.AlreadyExisted {
		t.Fatalf("replay must be flagged")
	}
	if second.OrderID != first.OrderID {
		t.Fatalf("replay returned different order: %s vs %s", second.OrderID, first.OrderID)
	}
	if len(repo.created) != 1 {
		t.Fatalf("replay must not persist a second order, got %d", len(repo.created))
	}
	if len(notifier.alerts) != 1 {
		t.Fatalf("replay must not enqueue a second alert, got %d", len(notifier.alerts))
	}
}

func TestOrderService_GetOrder_Scoping(t *testing.T) {
	repo := newStubOrderRepo()
	repo.orders["o1"] = &domain.ShippingOrder{ID: "o1", UserID: "user-1"}
	svc := NewOrderService(repo, &stubQuoteService{}, &stubEnqueuer{}, zerolog.Nop())

	if _, err := svc.GetOrder(context.Background(), ports.GetOrderInput{OrderID: "o1", Role: domain.RoleCustomer, UserID: "user-1"}); err != nil {
		t.Fatalf("owner must see own order: %v", err)
	}
	if _, err := svc.GetOrder(context.Background(), ports.GetOrderInput{OrderID: "o1", Role: domain.RoleCustomer, UserID: "user-2"}); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected not found for other customer, got %v", err)
	}
	if _, err := svc.GetOrder(context.Background(), ports.GetOrderInput{OrderID: "o1", Role: domain.RoleOperator, UserID: "user-2"}); err != nil {
		t.Fatalf("operator must see any order: %v", err)
	}
}

func TestOrderService_ListOrders_ScopesCustomers(t *testing.T) {
	repo := newStubOrderRepo()
	repo.orders["o1"] = &domain.ShippingOrder{ID: "o1", UserID: "user-1"}
	repo.orders["o2"] = &domain.ShippingOrder{ID: "o2", UserID: "user-2"}
	svc := NewOrderService(repo, &stubQuoteService{}, &stubEnqueuer{}, zerolog.Nop())

	result, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{Role: domain.RoleCustomer, UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 || len(result.Items) != 1 || result.Items[0].ID != "o1" {
		t.Fatalf("expected only user-1 orders, got %+v", result)
	}
	if repo.listFilter.UserID != "user-1" {
		t.Fatalf("customer filter must be scoped, got %q", repo.listFilter.UserID)
	}

	result, err = svc.ListOrders(context.Background(), ports.ListOrdersInput{Role: domain.RoleOperator, UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("operator must see all orders, got %d", result.Total)
	}
	if repo.listFilter.UserID != "" {
		t.Fatalf("operator filter must be unscoped, got %q", repo.listFilter.UserID)
	}
}

func TestOrderService_ListOrders_PaginationDefaults(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, &stubQuoteService{}, &stubEnqueuer{}, zerolog.Nop())

	result, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{Role: domain.RoleOperator, Limit: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Page != 1 {
		t.Fatalf("expected default page 1, got %d", result.Page)
	}
	if result.Limit != maxListLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxListLimit, result.Limit)
	}
}

func TestOrderService_SetPaymentStatus(t *testing.T) {
	repo := newStubOrderRepo()
	repo.orders["o1"] = &domain.ShippingOrder{ID: "o1", PaymentStatus: domain.PaymentPending}
	svc := NewOrderService(repo, &stubQuoteService{}, &stubEnqueuer{}, zerolog.Nop())

	order, err := svc.SetPaymentStatus(context.Background(), ports.SetPaymentStatusInput{OrderID: "o1", Status: domain.PaymentPaid})
	if err != nil {
		t.Fatalf("pending->paid must succeed: %v", err)
	}
	if order.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("expected paid, got %q", order.PaymentStatus)
	}

	_, err = svc.SetPaymentStatus(context.Background(), ports.SetPaymentStatusInput{OrderID: "o1", Status: domain.PaymentFailed})
	if !errors.Is(err, domain.ErrInvalidPaymentTransition) {
		t.Fatalf("paid is terminal, expected ErrInvalidPaymentTransition, got %v", err)
	}

	_, err = svc.SetPaymentStatus(context.Background(), ports.SetPaymentStatusInput{OrderID: "o1", Status: domain.PaymentStatus("refunded")})
	if !errors.Is(err, domain.ErrInvalidPaymentTransition) {
		t.Fatalf("unknown status must be rejected, got %v", err)
	}
}

func TestOrderService_SetTrackingNumber(t *testing.T) {
	repo := newStubOrderRepo()
	repo.orders["o1"] = &domain.ShippingOrder{ID: "o1"}
	svc := NewOrderService(repo, &stubQuoteService{}, &stubEnqueuer{}, zerolog.Nop())

	order, err := svc.SetTrackingNumber(context.Background(), ports.SetTrackingNumberInput{OrderID: "o1", TrackingNumber: "TRK123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.TrackingNumber != "TRK123" {
		t.Fatalf("expected tracking TRK123, got %q", order.TrackingNumber)
	}

	_, err = svc.SetTrackingNumber(context.Background(), ports.SetTrackingNumberInput{OrderID: "missing", TrackingNumber: "TRK999"})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
