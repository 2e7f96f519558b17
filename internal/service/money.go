package service

import "github.com/shopspring/decimal"

// Storage limits of the money columns: decimal(12,2) for amounts and
// decimal(5,2) for tax rates. Values outside them are rejected up front
// instead of being rounded or overflowing in the database.
var (
	maxAmount     = decimal.RequireFromString("9999999999.99")
	maxTaxPercent = decimal.RequireFromString("999.99")
)

func hasCents(v decimal.Decimal) bool {
	return v.Equal(v.Round(2))
}

// checkPrice validates an amount that will be stored as decimal(12,2).
func checkPrice(field string, v decimal.Decimal) error {
	switch {
	case v.IsNegative():
		return invalid(field, "must not be negative")
	case !hasCents(v):
		return invalid(field, "must have at most 2 decimal places")
	case v.GreaterThan(maxAmount):
		return invalid(field, "must not exceed %s", maxAmount.StringFixed(2))
	}
	return nil
}

// checkTaxPercent validates a rate that will be stored as decimal(5,2).
func checkTaxPercent(field string, v decimal.Decimal) error {
	switch {
	case v.IsNegative():
		return invalid(field, "must not be negative")
	case !hasCents(v):
		return invalid(field, "must have at most 2 decimal places")
	case v.GreaterThan(maxTaxPercent):
		return invalid(field, "must not exceed %s", maxTaxPercent.StringFixed(2))
	}
	return nil
}
