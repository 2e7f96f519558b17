package dto

import "github.com/shopspring/decimal"

// ─── Cart ────────────────────────────────────────────────────────────────────

// CartLine is one requested line of an in-progress order. It is caller-held
// and never persisted as such; prices are snapshots taken when the line was added.
type CartLine struct {
	ItemID     *uint            `json:"item_id"`
	ItemName   string           `json:"item_name"   validate:"required"`
	Quantity   int              `json:"quantity"    validate:"required,min=1"`
	UnitPrice  decimal.Decimal  `json:"unit_price"  validate:"min=0"`
	TaxPercent *decimal.Decimal `json:"tax_percent" validate:"omitempty,min=0"` // nil = default rate
}

// AddToCartRequest adds either a menu item (ItemID set) or a manual line.
type AddToCartRequest struct {
	Cart       []CartLine       `json:"cart"        validate:"dive"`
	ItemID     *uint            `json:"item_id"`
	ItemName   string           `json:"item_name"`
	Quantity   int              `json:"quantity"    validate:"required,min=1"`
	UnitPrice  *decimal.Decimal `json:"unit_price"  validate:"omitempty,min=0"`
	TaxPercent *decimal.Decimal `json:"tax_percent" validate:"omitempty,min=0"`
}

type CartRequest struct {
	Cart []CartLine `json:"cart" validate:"dive"`
}

type CartResponse struct {
	Cart []CartLine `json:"cart"`
}

// ─── Pricing ─────────────────────────────────────────────────────────────────

// PriceCartRequest carries the cart and the bill-level options.
// FlatTaxPercent = null keeps each line's own rate; any value (including 0)
// overrides every line.
type PriceCartRequest struct {
	Cart            []CartLine       `json:"cart"             validate:"dive"`
	FlatTaxPercent  *decimal.Decimal `json:"flat_tax_percent" validate:"omitempty,min=0"`
	DiscountPercent decimal.Decimal  `json:"discount_percent" validate:"min=0,max=100"`
}

// PricedLine is a cart line after pricing: effective tax rate and rounded total.
type PricedLine struct {
	ItemID     *uint           `json:"item_id"`
	ItemName   string          `json:"item_name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TaxPercent decimal.Decimal `json:"tax_percent"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// CartTotals is the pricing engine output.
type CartTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	Lines          []PricedLine    `json:"lines"`
}
