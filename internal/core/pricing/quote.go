package pricing

import "github.com/postrepublic/quote-system/internal/core/domain"

// QuoteInput carries everything Compute needs. The rate data is reference
// data fetched by the caller; Compute itself performs no I/O.
type QuoteInput struct {
	Dimensions         domain.PackageDimensions
	DestinationCountry string
	Repacking          bool
	RateTable          []domain.ZoneRate
	CountryZones       []domain.CountryZone
	// FuelSurchargePct is the current surcharge rate. Nil means no current
	// row is available and DefaultFuelSurchargePct applies.
	FuelSurchargePct *float64
}

// Compute produces the full price breakdown for one package/destination pair.
//
// When the destination has no zone mapping the quote comes back with all
// monetary fields zero but the weights populated, so weight feedback still
// works before a destination is chosen. Identical inputs always produce an
// identical Quote; it is safe to call on every keystroke.
func Compute(in QuoteInput) domain.Quote {
	volumetric := VolumetricWeight(in.Dimensions.LengthCm, in.Dimensions.WidthCm, in.Dimensions.HeightCm)
	chargeable := ChargeableWeight(in.Dimensions.WeightKg, volumetric)

	q := domain.Quote{
		ActualWeightKg:     in.Dimensions.WeightKg,
		VolumetricWeightKg: volumetric,
		ChargeableWeightKg: chargeable,
	}

	zone := ZoneForCountry(in.DestinationCountry, in.CountryZones)
	if zone == ZoneUnresolved {
		return q
	}

	ratePct := DefaultFuelSurchargePct
	if in.FuelSurchargePct != nil {
		ratePct = *in.FuelSurchargePct
	}

	q.Zone = zone
	q.ZoneResolved = true
	q.BasePrice = BaseRate(chargeable, zone, in.RateTable)
	q.FuelSurchargeAmount = FuelSurcharge(q.BasePrice, ratePct)
	q.HandlingFee = HandlingFee(chargeable)
	if in.Repacking {
		q.RepackingFee = RepackingFee()
	}
	q.TotalPrice = q.BasePrice + q.FuelSurchargeAmount + q.HandlingFee + q.RepackingFee

	return q
}
