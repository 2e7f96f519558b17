package dto

import (
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// PlaceOrderRequest is the confirmation step: the server prices the cart with
// the given options and records the result.
type PlaceOrderRequest struct {
	Mode            string           `json:"mode"             validate:"required,oneof=Dine-In Takeaway"`
	PaymentMethod   string           `json:"payment_method"   validate:"required,oneof=Cash Card UPI"`
	Cart            []CartLine       `json:"cart"             validate:"required,min=1,dive"`
	FlatTaxPercent  *decimal.Decimal `json:"flat_tax_percent" validate:"omitempty,min=0"`
	DiscountPercent decimal.Decimal  `json:"discount_percent" validate:"min=0,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PlacedOrder struct {
	OrderID   uint   `json:"order_id"`
	CreatedAt string `json:"created_at"`
}

type OrderHeader struct {
	ID             uint            `json:"id"`
	Mode           string          `json:"mode"`
	PaymentMethod  string          `json:"payment_method"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	CreatedAt      string          `json:"created_at"`
}

type OrderLineResponse struct {
	ID         uint            `json:"id"`
	OrderID    uint            `json:"order_id"`
	ItemID     *uint           `json:"item_id"`
	ItemName   string          `json:"item_name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TaxPercent decimal.Decimal `json:"tax_percent"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// OrderResponse is the bill document: header plus its lines. The receipt log
// stores exactly this shape.
type OrderResponse struct {
	Order OrderHeader         `json:"order"`
	Items []OrderLineResponse `json:"items"`
}

// PlaceOrderResponse returns the new order's identity along with the totals
// that were recorded for it.
type PlaceOrderResponse struct {
	PlacedOrder
	Totals CartTotals `json:"totals"`
}
