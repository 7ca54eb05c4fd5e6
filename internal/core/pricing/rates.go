package pricing

import "github.com/postrepublic/quote-system/internal/core/domain"

// ZoneUnresolved marks a destination with no zone mapping. Not an error: the
// quote engine returns a zero-priced breakdown and the UI gates submission.
const ZoneUnresolved = 0

// ZoneForCountry resolves a destination country to its zone by exact,
// case-sensitive name match. Returns ZoneUnresolved when the country is not
// in the table.
func ZoneForCountry(countryName string, countries []domain.CountryZone) int {
	for _, c := range countries {
		if c.CountryName == countryName {
			return c.Zone
		}
	}
	return ZoneUnresolved
}

// BaseRate looks up the base price for a chargeable weight in a zone.
// Brackets are upper bounds: the first bracket whose WeightKg is >= the
// chargeable weight prices the shipment. A weight beyond the heaviest bracket
// deliberately degrades to the heaviest bracket's price rather than failing.
// An empty table, an unresolved zone, or an unserved zone column all yield 0.
//
// The table is assumed sorted ascending and duplicate-free; that invariant is
// enforced by domain.ValidateRateTable when the table is loaded.
func BaseRate(chargeableKg float64, zone int, table []domain.ZoneRate) float64 {
	if len(table) == 0 || zone == ZoneUnresolved {
		return 0
	}

	bracket := table[len(table)-1]
	for _, row := range table {
		if row.WeightKg >= chargeableKg {
			bracket = row
			break
		}
	}

	price, ok := bracket.PriceForZone(zone)
	if !ok {
		return 0
	}
	return price
}
