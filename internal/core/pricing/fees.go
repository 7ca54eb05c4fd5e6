package pricing

// Fee schedule. The handling fee is tiered: a flat charge for the first kg
// plus a per-kg charge for every additional kg of chargeable weight.
const (
	firstKgHandlingFee = 30.0
	perAdditionalKgFee = 20.0
	repackingFee       = 10.0
	// DefaultFuelSurchargePct applies whenever no current fuel surcharge row
	// is available. A missing row is expected operational state, not an
	// error; quoting must not silently price fuel at zero.
	DefaultFuelSurchargePct = 12.0
)

// FuelSurcharge returns the fuel surcharge amount for a base price at the
// given percentage rate.
func FuelSurcharge(basePrice, ratePct float64) float64 {
	return basePrice * ratePct / 100
}

// HandlingFee returns the tiered handling fee for a chargeable weight.
// Weights at or under one kg pay only the first-kg charge.
func HandlingFee(chargeableKg float64) float64 {
	extra := chargeableKg - 1
	if extra < 0 {
		extra = 0
	}
	return firstKgHandlingFee + extra*perAdditionalKgFee
}

// RepackingFee is the flat fee charged when the customer requests repacking.
func RepackingFee() float64 {
	return repackingFee
}
