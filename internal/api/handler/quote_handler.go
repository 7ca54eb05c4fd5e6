package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/postrepublic/quote-system/internal/api/metrics"
	"github.com/postrepublic/quote-system/internal/core/domain"
	"github.com/postrepublic/quote-system/internal/core/ports"
	"github.com/postrepublic/quote-system/internal/core/pricing"
)

// QuoteHandler handles HTTP requests for price estimation.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Estimate handles POST /v1/quotes.
//
// @Summary      Compute a shipping quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      quoteRequest  true  "Package dimensions and destination"
// @Success      200   {object}  quoteResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Estimate(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.service.Estimate(c.Request().Context(), ports.QuoteInput{
		Dimensions: domain.PackageDimensions{
			WeightKg: req.Dimensions.WeightKg,
			LengthCm: req.Dimensions.LengthCm,
			WidthCm:  req.Dimensions.WidthCm,
			HeightCm: req.Dimensions.HeightCm,
		},
		DestinationCountry: req.Country,
		Repacking:          req.Repacking,
	})
	if err != nil {
		return err
	}

	q := result.Quote
	zoneLabel := "unresolved"
	if q.ZoneResolved {
		zoneLabel = strconv.Itoa(q.Zone)
	}
	metrics.QuotesComputedTotal.WithLabelValues(zoneLabel).Inc()

	return c.JSON(http.StatusOK, toQuoteResponse(q, result.Currency))
}

// Reseller handles POST /v1/quotes/reseller.
//
// @Summary      Suggest a resale price from a target margin
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      resellerRequest  true  "Costs, target margin, and fee percentages"
// @Success      200   {object}  resellerResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/quotes/reseller [post]
func (h *QuoteHandler) Reseller(c echo.Context) error {
	var req resellerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.service.ResellerPrice(c.Request().Context(), ports.ResellerInput{
		ItemCost:          req.ItemCost,
		ShippingCost:      req.ShippingCost,
		TargetMarginPct:   req.TargetMarginPct,
		MarketplaceFeePct: req.MarketplaceFeePct,
		PaymentFeePct:     req.PaymentFeePct,
		UseQuote:          req.UseQuote,
		Dimensions: domain.PackageDimensions{
			WeightKg: req.Dimensions.WeightKg,
			LengthCm: req.Dimensions.LengthCm,
			WidthCm:  req.Dimensions.WidthCm,
			HeightCm: req.Dimensions.HeightCm,
		},
		DestinationCountry: req.Country,
	})
	if err != nil {
		if errors.Is(err, pricing.ErrFeesExceedMargin) {
			metrics.ResellerQuotesTotal.WithLabelValues("infeasible").Inc()
		}
		return err
	}
	metrics.ResellerQuotesTotal.WithLabelValues("ok").Inc()

	b := result.Breakdown
	return c.JSON(http.StatusOK, resellerResponse{
		ItemCost:          b.ItemCost,
		ShippingCost:      b.ShippingCost,
		TotalCost:         b.TotalCost,
		SellingPrice:      b.SellingPrice,
		MarketplaceFee:    b.MarketplaceFee,
		PaymentFee:        b.PaymentFee,
		TotalFees:         b.TotalFees,
		NetProfit:         b.NetProfit,
		RealizedMarginPct: b.RealizedMarginPct,
		Currency:          result.Currency,
	})
}

// Countries handles GET /v1/countries.
//
// @Summary      List served destination countries
// @Tags         quotes
// @Produce      json
// @Success      200  {array}   countryResponse
// @Failure      500  {object}  map[string]string
// @Router       /v1/countries [get]
func (h *QuoteHandler) Countries(c echo.Context) error {
	countries, err := h.service.Countries(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]countryResponse, 0, len(countries))
	for _, cz := range countries {
		out = append(out, countryResponse{Name: cz.Name, Code: cz.Code, Zone: cz.Zone})
	}
	return c.JSON(http.StatusOK, out)
}
