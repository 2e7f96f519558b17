package service

import (
	"fmt"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PriceCart turns cart lines into per-line and bill totals.
//
// Per line: tax is flatTax when given, else the line's own rate, else the
// default rate. line_total = round(q*p*(1+tax/100), 2).
// Bill: subtotal and tax_total are rounded sums of the unrounded line amounts;
// the discount is taken from the rounded subtotal+tax_total. Because of that,
// Σ line_total may differ from subtotal+tax_total by a cent, and that is the
// expected result.
//
// The discount upper bound (100) is the caller's concern.
func PriceCart(lines []dto.CartLine, flatTax *decimal.Decimal, discountPct decimal.Decimal) (*dto.CartTotals, error) {
	if flatTax != nil {
		if err := checkTaxPercent("flat_tax_percent", *flatTax); err != nil {
			return nil, err
		}
	}
	if discountPct.IsNegative() {
		return nil, invalid("discount_percent", "must not be negative")
	}

	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	priced := make([]dto.PricedLine, 0, len(lines))

	for i, l := range lines {
		if l.Quantity <= 0 {
			return nil, invalid(fmt.Sprintf("cart[%d].quantity", i), "must be a positive integer")
		}
		if err := checkPrice(fmt.Sprintf("cart[%d].unit_price", i), l.UnitPrice); err != nil {
			return nil, err
		}

		taxPct := model.DefaultTaxPercent
		switch {
		case flatTax != nil:
			taxPct = *flatTax
		case l.TaxPercent != nil:
			taxPct = *l.TaxPercent
		}
		if err := checkTaxPercent(fmt.Sprintf("cart[%d].tax_percent", i), taxPct); err != nil {
			return nil, err
		}

		lineSub := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		lineTax := lineSub.Mul(taxPct).Div(hundred)
		subtotal = subtotal.Add(lineSub)
		taxTotal = taxTotal.Add(lineTax)

		priced = append(priced, dto.PricedLine{
			ItemID:     l.ItemID,
			ItemName:   l.ItemName,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TaxPercent: taxPct,
			LineTotal:  lineSub.Add(lineTax).Round(2),
		})
	}

	subtotal = subtotal.Round(2)
	taxTotal = taxTotal.Round(2)
	if subtotal.Add(taxTotal).GreaterThan(maxAmount) {
		return nil, invalid("cart", "bill total must not exceed %s", maxAmount.StringFixed(2))
	}
	discount := subtotal.Add(taxTotal).Mul(discountPct).Div(hundred).Round(2)

	return &dto.CartTotals{
		Subtotal:       subtotal,
		TaxTotal:       taxTotal,
		DiscountAmount: discount,
		GrandTotal:     subtotal.Add(taxTotal).Sub(discount).Round(2),
		Lines:          priced,
	}, nil
}
