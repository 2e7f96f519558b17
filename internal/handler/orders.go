package handler

import (
	"net/http"
	"path/filepath"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/infra"
	"github.com/Pujitha233/restaurant-billing-software/internal/metrics"
	"github.com/Pujitha233/restaurant-billing-software/internal/model"
	"github.com/Pujitha233/restaurant-billing-software/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	svc            service.OrderService
	metrics        *metrics.Metrics
	restaurantName string
	pdfPath        string
}

// NewOrdersHandler wires the order endpoints. m may be nil.
func NewOrdersHandler(svc service.OrderService, m *metrics.Metrics, restaurantName, pdfPath string) *OrdersHandler {
	return &OrdersHandler{svc: svc, metrics: m, restaurantName: restaurantName, pdfPath: pdfPath}
}

// Place godoc
// @Summary      Place an order
// @Description  Prices the cart with the given options and records the bill.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body body dto.PlaceOrderRequest true "Cart, mode and payment"
// @Success      201  {object} dto.PlaceOrderResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/orders [post]
func (h *OrdersHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	totals, err := service.PriceCart(req.Cart, req.FlatTaxPercent, req.DiscountPercent)
	if err != nil {
		respondError(c, err)
		return
	}
	placed, err := h.svc.PlaceOrder(c.Request.Context(),
		model.OrderMode(req.Mode), model.PaymentMethod(req.PaymentMethod), totals)
	if err != nil {
		respondError(c, err)
		return
	}
	h.metrics.ObserveOrder(req.Mode, req.PaymentMethod, totals.GrandTotal)
	c.JSON(http.StatusCreated, dto.PlaceOrderResponse{PlacedOrder: *placed, Totals: *totals})
}

// Get godoc
// @Summary      Fetch an order
// @Tags         orders
// @Produce      json
// @Param        id path int true "Order ID"
// @Success      200  {object} dto.OrderResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/orders/{id} [get]
func (h *OrdersHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.FetchOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReceiptPDF godoc
// @Summary      Download the receipt PDF
// @Tags         orders
// @Produce      application/pdf
// @Param        id path int true "Order ID"
// @Success      200  {file}   file
// @Failure      404  {object} apierror.APIError
// @Router       /v1/orders/{id}/receipt.pdf [get]
func (h *OrdersHandler) ReceiptPDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.FetchOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	path, err := infra.GenerateReceiptPDF(resp, h.restaurantName, h.pdfPath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
