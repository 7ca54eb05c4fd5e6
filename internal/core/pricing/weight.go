// Package pricing implements the shipping quotation engine: volumetric and
// chargeable weight, zone and bracket resolution against the rate table, the
// fee schedule, quote composition, and the reseller margin calculator.
//
// Every function here is a pure total function over float64: no I/O, no
// errors for any numeric input (ErrFeesExceedMargin is the one domain error,
// raised only by the margin calculator). Input validation is the transport
// layer's job.
package pricing

// VolumetricDivisor converts cm³ to kg. Industry constant for DHL-style
// dimensional weight; deliberately not configurable.
const VolumetricDivisor = 5000.0

// VolumetricWeight returns the dimensional weight in kg for a package of the
// given size.
func VolumetricWeight(lengthCm, widthCm, heightCm float64) float64 {
	return lengthCm * widthCm * heightCm / VolumetricDivisor
}

// ChargeableWeight is the billing basis: the greater of actual and volumetric
// weight.
func ChargeableWeight(actualKg, volumetricKg float64) float64 {
	if volumetricKg > actualKg {
		return volumetricKg
	}
	return actualKg
}
