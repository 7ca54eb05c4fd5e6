package ports

import (
	"context"

	"github.com/postrepublic/quote-system/internal/core/domain"
)

// RateRepository provides the carrier reference data every quote is priced
// against. Implementations must return the rate table sorted ascending by
// weight and validated (domain.ValidateRateTable); the data is immutable for
// the duration of a quote.
//
// CurrentFuelSurcharge returns domain.ErrNoFuelSurcharge when no row exists;
// callers fall back to pricing.DefaultFuelSurchargePct rather than failing.
type RateRepository interface {
	RateTable(ctx context.Context) ([]domain.ZoneRate, error)
	CountryZones(ctx context.Context) ([]domain.CountryZone, error)
	CurrentFuelSurcharge(ctx context.Context) (*domain.FuelSurcharge, error)
}
