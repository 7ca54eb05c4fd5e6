package handler

import "time"

type recipientRequest struct {
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type deliveryAddressRequest struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city"    validate:"required"`
	State   string `json:"state"`
	Zip     string `json:"zip"     validate:"required"`
	Country string `json:"country" validate:"required"`
}

type createOrderRequest struct {
	Recipient  recipientRequest       `json:"recipient"  validate:"required"`
	Address    deliveryAddressRequest `json:"address"    validate:"required"`
	Dimensions dimensionsRequest      `json:"dimensions" validate:"required"`
	Repacking  bool                   `json:"repacking"`
}

type createOrderResponse struct {
	OrderID   string        `json:"order_id"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	Quote     quoteResponse `json:"quote"`
}

// orderResponse is the full order view, price snapshot included.
type orderResponse struct {
	OrderID             string                 `json:"order_id"`
	Recipient           recipientRequest       `json:"recipient"`
	Address             deliveryAddressRequest `json:"address"`
	Dimensions          dimensionsRequest      `json:"dimensions"`
	Repacking           bool                   `json:"repacking"`
	ActualWeightKg      float64                `json:"actual_weight_kg"`
	VolumetricWeightKg  float64                `json:"volumetric_weight_kg"`
	ChargeableWeightKg  float64                `json:"chargeable_weight_kg"`
	Zone                int                    `json:"zone,omitempty"`
	BasePrice           float64                `json:"base_price"`
	FuelSurchargeAmount float64                `json:"fuel_surcharge_amount"`
	HandlingFee         float64                `json:"handling_fee"`
	RepackingFee        float64                `json:"repacking_fee"`
	TotalPrice          float64                `json:"total_price"`
	Status              string                 `json:"status"`
	PaymentStatus       string                 `json:"payment_status"`
	TrackingNumber      string                 `json:"tracking_number,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listOrdersResponse struct {
	Data       []orderResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type setPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid failed"`
}

type setTrackingNumberRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"required"`
}
