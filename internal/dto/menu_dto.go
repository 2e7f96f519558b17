package dto

import "github.com/shopspring/decimal"

// MenuItemInput is one row handed to the catalog for bulk replacement.
type MenuItemInput struct {
	ItemName   string
	Category   *string
	Price      decimal.Decimal
	TaxPercent *decimal.Decimal
}

type MenuItemResponse struct {
	ID         uint            `json:"id"`
	ItemName   string          `json:"item_name"`
	Category   *string         `json:"category"`
	Price      decimal.Decimal `json:"price"`
	TaxPercent decimal.Decimal `json:"tax_percent"`
}

// MenuImportResponse reports how many CSV rows made it into the menu.
// Skipped counts rows without a name or a price.
type MenuImportResponse struct {
	TotalRows int `json:"total_rows"`
	Imported  int `json:"imported"`
	Skipped   int `json:"skipped"`
}
