package handler

import "github.com/postrepublic/quote-system/internal/core/domain"

// toOrderResponse maps a persisted order to its transport representation.
func toOrderResponse(o *domain.ShippingOrder) orderResponse {
	return orderResponse{
		OrderID: o.ID,
		Recipient: recipientRequest{
			Name:  o.Recipient.Name,
			Phone: o.Recipient.Phone,
		},
		Address: deliveryAddressRequest{
			Address: o.Address.Address,
			City:    o.Address.City,
			State:   o.Address.State,
			Zip:     o.Address.Zip,
			Country: o.Address.Country,
		},
		Dimensions: dimensionsRequest{
			WeightKg: o.Dimensions.WeightKg,
			LengthCm: o.Dimensions.LengthCm,
			WidthCm:  o.Dimensions.WidthCm,
			HeightCm: o.Dimensions.HeightCm,
		},
		Repacking:           o.Repacking,
		ActualWeightKg:      o.ActualWeightKg,
		VolumetricWeightKg:  o.VolumetricWeightKg,
		ChargeableWeightKg:  o.ChargeableWeightKg,
		Zone:                o.Zone,
		BasePrice:           o.BasePrice,
		FuelSurchargeAmount: o.FuelSurchargeAmount,
		HandlingFee:         o.HandlingFee,
		RepackingFee:        o.RepackingFee,
		TotalPrice:          o.TotalPrice,
		Status:              o.Status,
		PaymentStatus:       string(o.PaymentStatus),
		TrackingNumber:      o.TrackingNumber,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

// toQuoteResponse maps a quote breakdown to its transport representation.
func toQuoteResponse(q domain.Quote, currency string) quoteResponse {
	return quoteResponse{
		ActualWeightKg:      q.ActualWeightKg,
		VolumetricWeightKg:  q.VolumetricWeightKg,
		ChargeableWeightKg:  q.ChargeableWeightKg,
		Zone:                q.Zone,
		ZoneResolved:        q.ZoneResolved,
		BasePrice:           q.BasePrice,
		FuelSurchargeAmount: q.FuelSurchargeAmount,
		HandlingFee:         q.HandlingFee,
		RepackingFee:        q.RepackingFee,
		TotalPrice:          q.TotalPrice,
		Currency:            currency,
	}
}
