package dto

import "github.com/shopspring/decimal"

// ReportQuery is bound from the query string of the report endpoints.
type ReportQuery struct {
	Period string `form:"period,default=daily" validate:"oneof=daily weekly monthly"`
	N      int    `form:"n,default=10"         validate:"min=1,max=500"`
}

// PeriodSummary aggregates every order whose created_at falls in Period.
type PeriodSummary struct {
	Period      string          `json:"period"`
	OrderCount  int             `json:"order_count"`
	SubtotalSum decimal.Decimal `json:"subtotal_sum"`
	TaxSum      decimal.Decimal `json:"tax_sum"`
	DiscountSum decimal.Decimal `json:"discount_sum"`
	TotalSum    decimal.Decimal `json:"total_sum"`
}

type ItemPopularity struct {
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity"`
}

type ReportExportResponse struct {
	Path    string `json:"path"`
	Period  string `json:"period"`
	Periods int    `json:"periods"`
}
