package domain

import (
	"errors"
	"fmt"
	"time"
)

// Zones are numbered 1..8, matching the columns of the carrier rate sheet.
const (
	MinZone = 1
	MaxZone = 8
)

var ErrRateTableIntegrity = errors.New("rate table integrity violation")

// ErrNoFuelSurcharge signals that no fuel surcharge row exists yet. Callers
// apply the documented default rate instead of treating this as a failure.
var ErrNoFuelSurcharge = errors.New("no current fuel surcharge")

// ZoneRate is a single weight bracket of the rate table. Each bracket is an
// upper bound: it prices any chargeable weight up to and including WeightKg.
// A nil zone column means the zone is not served at that bracket.
type ZoneRate struct {
	WeightKg float64  `json:"weight_kg" bson:"weight_kg"`
	Zone1    *float64 `json:"zone_1" bson:"zone_1"`
	Zone2    *float64 `json:"zone_2" bson:"zone_2"`
	Zone3    *float64 `json:"zone_3" bson:"zone_3"`
	Zone4    *float64 `json:"zone_4" bson:"zone_4"`
	Zone5    *float64 `json:"zone_5" bson:"zone_5"`
	Zone6    *float64 `json:"zone_6" bson:"zone_6"`
	Zone7    *float64 `json:"zone_7" bson:"zone_7"`
	Zone8    *float64 `json:"zone_8" bson:"zone_8"`
}

// PriceForZone returns the bracket's price for the given zone column.
// ok is false when the zone is out of range or not served at this bracket.
func (r ZoneRate) PriceForZone(zone int) (price float64, ok bool) {
	var col *float64
	switch zone {
	case 1:
		col = r.Zone1
	case 2:
		col = r.Zone2
	case 3:
		col = r.Zone3
	case 4:
		col = r.Zone4
	case 5:
		col = r.Zone5
	case 6:
		col = r.Zone6
	case 7:
		col = r.Zone7
	case 8:
		col = r.Zone8
	default:
		return 0, false
	}
	if col == nil {
		return 0, false
	}
	return *col, true
}

// ValidateRateTable checks the bracket invariants: weights strictly increasing
// (which also rules out duplicates). Violations are a data problem and must be
// caught when the table is loaded, never at quote time.
func ValidateRateTable(rows []ZoneRate) error {
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1].WeightKg, rows[i].WeightKg
		if cur == prev {
			return fmt.Errorf("%w: duplicate weight bracket %.3f kg", ErrRateTableIntegrity, cur)
		}
		if cur < prev {
			return fmt.Errorf("%w: brackets not sorted ascending (%.3f kg after %.3f kg)", ErrRateTableIntegrity, cur, prev)
		}
	}
	return nil
}

// CountryZone maps a destination country to its rate-table zone.
// Country names are the display keys and are matched exactly, case-sensitive.
type CountryZone struct {
	CountryName string `json:"country_name" bson:"country_name"`
	CountryCode string `json:"country_code" bson:"country_code"`
	Zone        int    `json:"zone_number" bson:"zone_number"`
}

// FuelSurcharge is the carrier's current fuel surcharge rate. Only the most
// recent entry by EffectiveDate applies; history is never applied retroactively.
type FuelSurcharge struct {
	RatePercentage float64   `json:"rate_percentage" bson:"rate_percentage"`
	EffectiveDate  time.Time `json:"effective_date" bson:"effective_date"`
}
