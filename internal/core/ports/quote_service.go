package ports

import (
	"context"

	"github.com/postrepublic/quote-system/internal/core/domain"
	"github.com/postrepublic/quote-system/internal/core/pricing"
)

// QuoteInput carries the user-facing inputs of a price estimate.
type QuoteInput struct {
	Dimensions         domain.PackageDimensions
	DestinationCountry string
	Repacking          bool
}

// QuoteResult is the breakdown returned to the caller. Currency is fixed;
// conversion is out of scope.
type QuoteResult struct {
	Quote    domain.Quote
	Currency string
}

// ResellerInput carries the inputs of a resale price suggestion. When
// UseQuote is set, the shipping cost is taken from a fresh quote for
// Dimensions/DestinationCountry instead of ShippingCost.
type ResellerInput struct {
	ItemCost          float64
	ShippingCost      float64
	TargetMarginPct   float64
	MarketplaceFeePct float64
	PaymentFeePct     float64

	UseQuote           bool
	Dimensions         domain.PackageDimensions
	DestinationCountry string
}

// ResellerResult wraps the margin breakdown with the currency.
type ResellerResult struct {
	Breakdown pricing.ResellerBreakdown
	Currency  string
}

// CountryInfo is one served destination, as shown in the UI dropdown.
type CountryInfo struct {
	Name string
	Code string
	Zone int
}

// QuoteService computes price estimates from the current reference data.
type QuoteService interface {
	Estimate(ctx context.Context, input QuoteInput) (*QuoteResult, error)
	ResellerPrice(ctx context.Context, input ResellerInput) (*ResellerResult, error)
	Countries(ctx context.Context) ([]CountryInfo, error)
}
