package handler

// --- Request / Response types ---

type dimensionsRequest struct {
	WeightKg float64 `json:"weight_kg" validate:"gte=0"`
	LengthCm float64 `json:"length_cm" validate:"gte=0"`
	WidthCm  float64 `json:"width_cm"  validate:"gte=0"`
	HeightCm float64 `json:"height_cm" validate:"gte=0"`
}

type quoteRequest struct {
	Dimensions dimensionsRequest `json:"dimensions" validate:"required"`
	Country    string            `json:"country"`
	Repacking  bool              `json:"repacking"`
}

// quoteResponse is the full price breakdown. zone is omitted (and zone_resolved
// false) when the destination country has no zone mapping; the weights are
// still populated so the client can show weight feedback.
type quoteResponse struct {
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
	Currency            string  `json:"currency"`
}

type resellerRequest struct {
	ItemCost          float64 `json:"item_cost"          validate:"gte=0"`
	ShippingCost      float64 `json:"shipping_cost"      validate:"gte=0"`
	TargetMarginPct   float64 `json:"target_margin_pct"  validate:"gte=0"`
	MarketplaceFeePct float64 `json:"marketplace_fee_pct" validate:"gte=0"`
	PaymentFeePct     float64 `json:"payment_fee_pct"    validate:"gte=0"`

	// When use_quote is true, shipping_cost is ignored and a fresh quote for
	// dimensions/country supplies it.
	UseQuote   bool              `json:"use_quote"`
	Dimensions dimensionsRequest `json:"dimensions"`
	Country    string            `json:"country"`
}

type resellerResponse struct {
	ItemCost          float64 `json:"item_cost"`
	ShippingCost      float64 `json:"shipping_cost"`
	TotalCost         float64 `json:"total_cost"`
	SellingPrice      float64 `json:"selling_price"`
	MarketplaceFee    float64 `json:"marketplace_fee"`
	PaymentFee        float64 `json:"payment_fee"`
	TotalFees         float64 `json:"total_fees"`
	NetProfit         float64 `json:"net_profit"`
	RealizedMarginPct float64 `json:"realized_margin_pct"`
	Currency          string  `json:"currency"`
}

type countryResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Zone int    `json:"zone"`
}
