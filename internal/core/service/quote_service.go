package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/postrepublic/quote-system/internal/core/domain"
	"github.com/postrepublic/quote-system/internal/core/ports"
	"github.com/postrepublic/quote-system/internal/core/pricing"
)

// Currency is the fixed quoting currency. Conversion is out of scope.
const Currency = "MYR"

// QuoteService prices packages against the current reference data.
type QuoteService struct {
	rates  ports.RateRepository
	logger zerolog.Logger
}

func NewQuoteService(rates ports.RateRepository, logger zerolog.Logger) *QuoteService {
	return &QuoteService{rates: rates, logger: logger}
}

// Estimate computes a full price breakdown. An unknown destination country is
// a valid zero-priced result, not an error; only reference-data fetch
// failures surface as errors.
func (s *QuoteService) Estimate(ctx context.Context, input ports.QuoteInput) (*ports.QuoteResult, error) {
	q, err := s.compute(ctx, input)
	if err != nil {
		return nil, err
	}

	if !q.ZoneResolved {
		s.logger.Debug().Str("country", input.DestinationCountry).Msg("destination zone unresolved")
	}

	return &ports.QuoteResult{Quote: q, Currency: Currency}, nil
}

// ResellerPrice back-solves a suggested resale price. With UseQuote set the
// shipping cost comes from a fresh estimate for the given package.
func (s *QuoteService) ResellerPrice(ctx context.Context, input ports.ResellerInput) (*ports.ResellerResult, error) {
	shipping := input.ShippingCost
	if input.UseQuote {
		q, err := s.compute(ctx, ports.QuoteInput{
			Dimensions:         input.Dimensions,
			DestinationCountry: input.DestinationCountry,
		})
		if err != nil {
			return nil, err
		}
		shipping = q.TotalPrice
	}

	breakdown, err := pricing.SuggestedResalePrice(
		input.ItemCost,
		shipping,
		input.TargetMarginPct,
		input.MarketplaceFeePct,
		input.PaymentFeePct,
	)
	if err != nil {
		return nil, err
	}

	return &ports.ResellerResult{Breakdown: breakdown, Currency: Currency}, nil
}

// Countries lists the served destinations for the UI dropdown.
func (s *QuoteService) Countries(ctx context.Context) ([]ports.CountryInfo, error) {
	zones, err := s.rates.CountryZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch country zones: %w", err)
	}

	out := make([]ports.CountryInfo, 0, len(zones))
	for _, z := range zones {
		out = append(out, ports.CountryInfo{Name: z.CountryName, Code: z.CountryCode, Zone: z.Zone})
	}
	return out, nil
}

// compute fetches the reference data and runs the pure engine once.
func (s *QuoteService) compute(ctx context.Context, input ports.QuoteInput) (domain.Quote, error) {
	table, err := s.rates.RateTable(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("fetch rate table: %w", err)
	}

	zones, err := s.rates.CountryZones(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("fetch country zones: %w", err)
	}

	var fuelPct *float64
	surcharge, err := s.rates.CurrentFuelSurcharge(ctx)
	switch {
	case err == nil && surcharge != nil:
		fuelPct = &surcharge.RatePercentage
	case errors.Is(err, domain.ErrNoFuelSurcharge):
		s.logger.Warn().Msg("no current fuel surcharge, applying default rate")
	case err != nil:
		return domain.Quote{}, fmt.Errorf("fetch fuel surcharge: %w", err)
	}

	return pricing.Compute(pricing.QuoteInput{
		Dimensions:         input.Dimensions,
		DestinationCountry: input.DestinationCountry,
		Repacking:          input.Repacking,
		RateTable:          table,
		CountryZones:       zones,
		FuelSurchargePct:   fuelPct,
	}), nil
}
