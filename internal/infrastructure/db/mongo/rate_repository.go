package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/postrepublic/quote-system/internal/core/domain"
)

const (
	collectionZoneRates     = "zone_weight_rates"
	collectionCountryZones  = "country_zones"
	collectionFuelSurcharge = "fuel_surcharge_rates"
)

// RateRepository serves the carrier reference data: rate brackets, country
// zone mappings, and the fuel surcharge history.
type RateRepository struct {
	rates     *mongo.Collection
	countries *mongo.Collection
	surcharge *mongo.Collection
}

func NewRateRepository(db *mongo.Database) *RateRepository {
	return &RateRepository{
		rates:     db.Collection(collectionZoneRates),
		countries: db.Collection(collectionCountryZones),
		surcharge: db.Collection(collectionFuelSurcharge),
	}
}

// RateTable returns all weight brackets sorted ascending by weight. The
// table's integrity invariants are checked on every load so a bad row fails
// here, loudly, instead of mis-ranking a quote later.
func (r *RateRepository) RateTable(ctx context.Context) ([]domain.ZoneRate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "weight_kg", Value: 1}})
	cur, err := r.rates.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find zone rates: %w", err)
	}

	var rows []domain.ZoneRate
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode zone rates: %w", err)
	}

	if err := domain.ValidateRateTable(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountryZones returns every country→zone mapping, sorted by country name.
func (r *RateRepository) CountryZones(ctx context.Context) ([]domain.CountryZone, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "country_name", Value: 1}})
	cur, err := r.countries.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find country zones: %w", err)
	}

	var rows []domain.CountryZone
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode country zones: %w", err)
	}
	return rows, nil
}

// CurrentFuelSurcharge returns the most recent surcharge entry by effective
// date. An empty collection yields domain.ErrNoFuelSurcharge so callers can
// apply the documented default.
func (r *RateRepository) CurrentFuelSurcharge(ctx context.Context) (*domain.FuelSurcharge, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "effective_date", Value: -1}})

	var row domain.FuelSurcharge
	err := r.surcharge.FindOne(ctx, bson.M{}, opts).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoFuelSurcharge
		}
		return nil, fmt.Errorf("find fuel surcharge: %w", err)
	}
	return &row, nil
}
