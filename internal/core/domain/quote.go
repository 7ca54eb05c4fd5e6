package domain

import "errors"

// ErrZoneUnresolved rejects an order submission whose destination has no zone
// mapping. Quoting tolerates the unresolved state; persisting an unpriced
// order does not.
var ErrZoneUnresolved = errors.New("destination zone unresolved")

// PackageDimensions is the raw user input for a quote. Values are accepted as
// given; bounds checking belongs to the transport layer.
type PackageDimensions struct {
	WeightKg float64 `json:"weight_kg" bson:"weight_kg"`
	LengthCm float64 `json:"length_cm" bson:"length_cm"`
	WidthCm  float64 `json:"width_cm" bson:"width_cm"`
	HeightCm float64 `json:"height_cm" bson:"height_cm"`
}

// Quote is the full price breakdown for one package/destination pair. It is
// transient: recomputed from scratch on every input change, never cached
// partially.
//
// When ZoneResolved is false the destination country had no zone mapping and
// every monetary field is zero; the weights are still populated so callers can
// show weight feedback before a destination is chosen. That state is valid,
// not an error.
type Quote struct {
	ActualWeightKg      float64 `json:"actual_weight_kg"`
	VolumetricWeightKg  float64 `json:"volumetric_weight_kg"`
	ChargeableWeightKg  float64 `json:"chargeable_weight_kg"`
	Zone                int     `json:"zone,omitempty"`
	ZoneResolved        bool    `json:"zone_resolved"`
	BasePrice           float64 `json:"base_price"`
	FuelSurchargeAmount float64 `json:"fuel_surcharge_amount"`
	HandlingFee         float64 `json:"handling_fee"`
	RepackingFee        float64 `json:"repacking_fee"`
	TotalPrice          float64 `json:"total_price"`
}
