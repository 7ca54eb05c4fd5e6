package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/postrepublic/quote-system/internal/api/metrics"
	"github.com/postrepublic/quote-system/internal/core/domain"
	"github.com/postrepublic/quote-system/internal/core/ports"
)

// DefaultRateTTL is the accepted staleness window for rate reference data.
const DefaultRateTTL = 5 * time.Minute

const (
	keyRateTable     = "rates:table"
	keyCountryZones  = "rates:countries"
	keyFuelSurcharge = "rates:fuel"
)

// RateCache is a read-through cache in front of a RateRepository. Reference
// data changes rarely, so entries live for the configured TTL. Every cache
// failure (connection, decode) degrades to a direct source read; a quote is
// never failed because Redis is down.
type RateCache struct {
	client *redis.Client
	source ports.RateRepository
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRateCache(client *redis.Client, source ports.RateRepository, ttl time.Duration, log zerolog.Logger) *RateCache {
	if ttl <= 0 {
		ttl = DefaultRateTTL
	}
	return &RateCache{client: client, source: source, ttl: ttl, log: log}
}

func (c *RateCache) RateTable(ctx context.Context) ([]domain.ZoneRate, error) {
	var rows []domain.ZoneRate
	if c.lookup(ctx, keyRateTable, &rows) {
		return rows, nil
	}

	rows, err := c.source.RateTable(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, keyRateTable, rows)
	return rows, nil
}

func (c *RateCache) CountryZones(ctx context.Context) ([]domain.CountryZone, error) {
	var rows []domain.CountryZone
	if c.lookup(ctx, keyCountryZones, &rows) {
		return rows, nil
	}

	rows, err := c.source.CountryZones(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, keyCountryZones, rows)
	return rows, nil
}

func (c *RateCache) CurrentFuelSurcharge(ctx context.Context) (*domain.FuelSurcharge, error) {
	var row domain.FuelSurcharge
	if c.lookup(ctx, keyFuelSurcharge, &row) {
		return &row, nil
	}

	current, err := c.source.CurrentFuelSurcharge(ctx)
	if err != nil {
		// The no-row miss is a defined state; don't cache it, the default
		// rate applies upstream.
		return nil, err
	}
	c.store(ctx, keyFuelSurcharge, current)
	return current, nil
}

// lookup reports whether key was found and decoded into dest.
func (c *RateCache) lookup(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("rate cache read failed, falling back to source")
		}
		metrics.RateCacheTotal.WithLabelValues(key, "miss").Inc()
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("rate cache entry corrupt, falling back to source")
		metrics.RateCacheTotal.WithLabelValues(key, "miss").Inc()
		return false
	}
	metrics.RateCacheTotal.WithLabelValues(key, "hit").Inc()
	return true
}

func (c *RateCache) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("rate cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("rate cache write failed")
	}
}
