package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/postrepublic/quote-system/internal/core/domain"
	"github.com/postrepublic/quote-system/internal/core/ports"
	"github.com/postrepublic/quote-system/internal/core/pricing"
)

// ---------------------------------------------------------------------------
// Shared test plumbing
// ---------------------------------------------------------------------------

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubQuoteService struct {
	result         *ports.QuoteResult
	resellerResult *ports.ResellerResult
	countries      []ports.CountryInfo
	err            error
}

func (s *stubQuoteService) Estimate(_ context.Context, _ ports.QuoteInput) (*ports.QuoteResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubQuoteService) ResellerPrice(_ context.Context, _ ports.ResellerInput) (*ports.ResellerResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resellerResult, nil
}

func (s *stubQuoteService) Countries(_ context.Context) ([]ports.CountryInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.countries, nil
}

func resolvedQuoteResult() *ports.QuoteResult {
	return &ports.QuoteResult{
		Quote: domain.Quote{
			ActualWeightKg:      2,
			VolumetricWeightKg:  1.2,
			ChargeableWeightKg:  2,
			Zone:                4,
			ZoneResolved:        true,
			BasePrice:           65,
			FuelSurchargeAmount: 7.8,
			HandlingFee:         50,
			TotalPrice:          142.8,
		},
		Currency: "MYR",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestQuoteHandler_Estimate(t *testing.T) {
	h := NewQuoteHandler(&stubQuoteService{result: resolvedQuoteResult()})
	c, rec := newTestContext(http.MethodPost, "/v1/quotes",
		`{"dimensions":{"weight_kg":2,"length_cm":30,"width_cm":20,"height_cm":10},"country":"Germany"}`)

	if err := h.Estimate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalPrice != 142.8 || resp.Zone != 4 || !resp.ZoneResolved || resp.Currency != "MYR" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestQuoteHandler_Estimate_NegativeWeight(t *testing.T) {
	h := NewQuoteHandler(&stubQuoteService{result: resolvedQuoteResult()})
	c, rec := newTestContext(http.MethodPost, "/v1/quotes",
		`{"dimensions":{"weight_kg":-1},"country":"Germany"}`)

	if err := h.Estimate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQuoteHandler_Estimate_UnresolvedZone(t *testing.T) {
	h := NewQuoteHandler(&stubQuoteService{result: &ports.QuoteResult{
		Quote:    domain.Quote{ActualWeightKg: 2, ChargeableWeightKg: 2},
		Currency: "MYR",
	}})
	c, rec := newTestContext(http.MethodPost, "/v1/quotes",
		`{"dimensions":{"weight_kg":2},"country":"Atlantis"}`)

	if err := h.Estimate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unresolved destination is still a 200, got %d", rec.Code)
	}

	var resp quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ZoneResolved || resp.TotalPrice != 0 || resp.ChargeableWeightKg != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestQuoteHandler_Reseller(t *testing.T) {
	h := NewQuoteHandler(&stubQuoteService{resellerResult: &ports.ResellerResult{
		Breakdown: pricing.ResellerBreakdown{
			ItemCost:     100,
			ShippingCost: 50,
			TotalCost:    150,
			SellingPrice: 217.65,
			NetProfit:    30,
		},
		Currency: "MYR",
	}})
	c, rec := newTestContext(http.MethodPost, "/v1/quotes/reseller",
		`{"item_cost":100,"shipping_cost":50,"target_margin_pct":20,"marketplace_fee_pct":12.9,"payment_fee_pct":4.4}`)

	if err := h.Reseller(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp resellerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SellingPrice != 217.65 || resp.Currency != "MYR" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestQuoteHandler_Reseller_Infeasible(t *testing.T) {
	h := NewQuoteHandler(&stubQuoteService{err: pricing.ErrFeesExceedMargin})
	c, _ := newTestContext(http.MethodPost, "/v1/quotes/reseller",
		`{"item_cost":100,"target_margin_pct":20,"marketplace_fee_pct":60,"payment_fee_pct":50}`)

	err := h.Reseller(c)
	if err == nil {
		t.Fatalf("expected error to propagate to the central error handler")
	}
}

func TestQuoteHandler_Countries(t *testing.T) {
	h := NewQuoteHandler(&stubQuoteService{countries: []ports.CountryInfo{
		{Name: "Germany", Code: "DE", Zone: 4},
		{Name: "Japan", Code: "JP", Zone: 3},
	}})
	c, rec := newTestContext(http.MethodGet, "/v1/countries", "")

	if err := h.Countries(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp []countryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].Name != "Germany" || resp[1].Zone != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
