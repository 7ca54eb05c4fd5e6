package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/postrepublic/quote-system/internal/api/metrics"
	"github.com/postrepublic/quote-system/internal/core/domain"
	"github.com/postrepublic/quote-system/internal/core/ports"
	"github.com/postrepublic/quote-system/internal/core/service"
)

// OrderHandler handles HTTP requests for shipping orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /v1/orders.
//
// @Summary      Submit a shipping order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string              false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createOrderRequest  true   "Order details"
// @Success      201              {object}  createOrderResponse
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	_, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}
	idempotencyKey := c.Request().Header.Get("Idempotency-Key")

	result, err := h.service.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		Recipient: ports.RecipientInput{
			Name:  req.Recipient.Name,
			Phone: req.Recipient.Phone,
		},
		Address: ports.AddressInput{
			Address: req.Address.Address,
			City:    req.Address.City,
			State:   req.Address.State,
			Zip:     req.Address.Zip,
			Country: req.Address.Country,
		},
		Dimensions: domain.PackageDimensions{
			WeightKg: req.Dimensions.WeightKg,
			LengthCm: req.Dimensions.LengthCm,
			WidthCm:  req.Dimensions.WidthCm,
			HeightCm: req.Dimensions.HeightCm,
		},
		Repacking:      req.Repacking,
		UserID:         userID,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return err
	}

	if !result.AlreadyExisted {
		metrics.OrdersCreatedTotal.WithLabelValues(req.Address.Country).Inc()
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, createOrderResponse{
		OrderID:   result.OrderID,
		Status:    result.Status,
		CreatedAt: result.CreatedAt,
		Quote:     toQuoteResponse(result.Quote, service.Currency),
	})
}

// Get handles GET /v1/orders/:id.
//
// @Summary      Get an order by ID
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  orderResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	order, err := h.service.GetOrder(c.Request().Context(), ports.GetOrderInput{
		OrderID: c.Param("id"),
		Role:    role,
		UserID:  userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// List handles GET /v1/orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        payment_status  query     string  false  "Filter by payment status"
// @Param        country         query     string  false  "Filter by destination country"
// @Param        search          query     string  false  "Partial match on recipient name or tracking number"
// @Param        date_from       query     string  false  "created_at >= (RFC3339)"
// @Param        date_to         query     string  false  "created_at <= (RFC3339)"
// @Param        page            query     int     false  "Page (1-based)"
// @Param        limit           query     int     false  "Page size (max 100)"
// @Success      200             {object}  listOrdersResponse
// @Failure      401             {object}  map[string]string
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	input := ports.ListOrdersInput{
		Role:          role,
		UserID:        userID,
		PaymentStatus: c.QueryParam("payment_status"),
		Country:       c.QueryParam("country"),
		Search:        c.QueryParam("search"),
	}
	if v := c.QueryParam("date_from"); v != "" {
		if t, perr := time.Parse(time.RFC3339, v); perr == nil {
			input.DateFrom = t
		}
	}
	if v := c.QueryParam("date_to"); v != "" {
		if t, perr := time.Parse(time.RFC3339, v); perr == nil {
			input.DateTo = t
		}
	}
	input.Page = queryInt(c, "page", 1)
	input.Limit = queryInt(c, "limit", 20)

	result, err := h.service.ListOrders(c.Request().Context(), input)
	if err != nil {
		return err
	}

	items := make([]orderResponse, 0, len(result.Items))
	for _, o := range result.Items {
		items = append(items, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, listOrdersResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// SetPaymentStatus handles PATCH /v1/orders/:id/payment (operator only).
//
// @Summary      Update the payment status of an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Order ID"
// @Param        body  body      setPaymentStatusRequest  true  "New payment status"
// @Success      200   {object}  orderResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/orders/{id}/payment [patch]
func (h *OrderHandler) SetPaymentStatus(c echo.Context) error {
	var req setPaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	order, err := h.service.SetPaymentStatus(c.Request().Context(), ports.SetPaymentStatusInput{
		OrderID: c.Param("id"),
		Status:  domain.PaymentStatus(req.PaymentStatus),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// SetTrackingNumber handles PATCH /v1/orders/:id/tracking (operator only).
//
// @Summary      Record the carrier tracking number of an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Order ID"
// @Param        body  body      setTrackingNumberRequest  true  "Tracking number"
// @Success      200   {object}  orderResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/orders/{id}/tracking [patch]
func (h *OrderHandler) SetTrackingNumber(c echo.Context) error {
	var req setTrackingNumberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	order, err := h.service.SetTrackingNumber(c.Request().Context(), ports.SetTrackingNumberInput{
		OrderID:        c.Param("id"),
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// queryInt parses an integer query parameter with a fallback default.
func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
