package pricing

import "errors"

// ErrFeesExceedMargin is returned when marketplace and payment fees combined
// reach 100% or more of revenue, making the target margin unreachable at any
// price.
var ErrFeesExceedMargin = errors.New("combined fees exceed sellable margin")

// ResellerBreakdown is the result of back-solving a resale price from a
// target margin.
type ResellerBreakdown struct {
	ItemCost          float64 `json:"item_cost"`
	ShippingCost      float64 `json:"shipping_cost"`
	TotalCost         float64 `json:"total_cost"`
	SellingPrice      float64 `json:"selling_price"`
	MarketplaceFee    float64 `json:"marketplace_fee"`
	PaymentFee        float64 `json:"payment_fee"`
	TotalFees         float64 `json:"total_fees"`
	NetProfit         float64 `json:"net_profit"`
	RealizedMarginPct float64 `json:"realized_margin_pct"`
}

// SuggestedResalePrice solves for the listing price that nets the target
// margin over item + shipping cost after proportional marketplace and payment
// fees are taken out of the sale.
func SuggestedResalePrice(itemCost, shippingCost, targetMarginPct, marketplaceFeePct, paymentFeePct float64) (ResellerBreakdown, error) {
	combinedFeeRate := (marketplaceFeePct + paymentFeePct) / 100
	if combinedFeeRate >= 1 {
		return ResellerBreakdown{}, ErrFeesExceedMargin
	}

	totalCost := itemCost + shippingCost
	targetRevenue := totalCost * (1 + targetMarginPct/100)
	sellingPrice := targetRevenue / (1 - combinedFeeRate)

	marketplaceFee := sellingPrice * marketplaceFeePct / 100
	paymentFee := sellingPrice * paymentFeePct / 100
	netProfit := sellingPrice - totalCost - marketplaceFee - paymentFee

	b := ResellerBreakdown{
		ItemCost:       itemCost,
		ShippingCost:   shippingCost,
		TotalCost:      totalCost,
		SellingPrice:   sellingPrice,
		MarketplaceFee: marketplaceFee,
		PaymentFee:     paymentFee,
		TotalFees:      marketplaceFee + paymentFee,
		NetProfit:      netProfit,
	}
	if sellingPrice != 0 {
		b.RealizedMarginPct = netProfit / sellingPrice * 100
	}
	return b, nil
}
