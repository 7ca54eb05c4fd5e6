package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/postrepublic/quote-system/internal/core/domain"
	"github.com/postrepublic/quote-system/internal/core/ports"
)

const collectionOrders = "shipping_orders"

// OrderRepository persists shipping orders.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

// Create inserts a new order document and writes the generated ID back.
func (r *OrderRepository) Create(ctx context.Context, o *domain.ShippingOrder) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if o.ID == "" {
		o.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// FindByID retrieves an order by ID. When userID is non-empty an additional
// filter by user_id is applied (RBAC scoping).
func (r *OrderRepository) FindByID(ctx context.Context, id string, userID string) (*domain.ShippingOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if userID != "" {
		filter["user_id"] = userID
	}

	var o domain.ShippingOrder
	err := r.col.FindOne(ctx, filter).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByIdempotencyKey retrieves an existing order created with the given key.
func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.ShippingOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.ShippingOrder
	err := r.col.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// List returns a page of orders matching the filter, newest first, plus the
// total match count.
func (r *OrderRepository) List(ctx context.Context, f ports.ListOrdersFilter) ([]*domain.ShippingOrder, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.PaymentStatus != "" {
		filter["payment_status"] = f.PaymentStatus
	}
	if f.Country != "" {
		filter["address.country"] = f.Country
	}
	if f.Search != "" {
		regex := bson.M{"$regex": f.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"recipient.name": regex},
			{"tracking_number": regex},
		}
	}
	dateFilter := bson.M{}
	if !f.DateFrom.IsZero() {
		dateFilter["$gte"] = f.DateFrom
	}
	if !f.DateTo.IsZero() {
		dateFilter["$lte"] = f.DateTo
	}
	if len(dateFilter) > 0 {
		filter["created_at"] = dateFilter
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find orders: %w", err)
	}

	var orders []*domain.ShippingOrder
	if err := cur.All(ctx, &orders); err != nil {
		return nil, 0, fmt.Errorf("decode orders: %w", err)
	}
	return orders, total, nil
}

// UpdatePaymentStatus sets the payment status on one order.
func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	return r.updateField(ctx, id, bson.M{"payment_status": status})
}

// UpdateTrackingNumber sets the carrier tracking number on one order.
func (r *OrderRepository) UpdateTrackingNumber(ctx context.Context, id string, trackingNumber string) error {
	return r.updateField(ctx, id, bson.M{"tracking_number": trackingNumber})
}

func (r *OrderRepository) updateField(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set["updated_at"] = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the order queries rely on.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "idempotency_key", Value: 1}}},
		{Keys: bson.D{{Key: "payment_status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
