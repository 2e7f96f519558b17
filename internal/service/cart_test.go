package service_test

import (
	"testing"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddRemoveClear(t *testing.T) {
	cart := service.NewCart(nil)
	require.NoError(t, cart.Add(line("Tea", 2, "20", nil)))
	require.NoError(t, cart.Add(line("Coffee", 1, "35", dp("5"))))
	assert.Equal(t, 2, cart.Len())

	assert.True(t, cart.RemoveLast())
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Tea", lines[0].ItemName)

	cart.Clear()
	assert.Equal(t, 0, cart.Len())
	assert.False(t, cart.RemoveLast(), "empty cart has nothing to remove")
}

func TestCart_RejectsBadLines(t *testing.T) {
	cart := service.NewCart(nil)

	var vErr *service.ValidationError
	require.ErrorAs(t, cart.Add(line("Tea", 0, "20", nil)), &vErr)
	assert.Equal(t, "quantity", vErr.Field)

	require.ErrorAs(t, cart.Add(line("  ", 1, "20", nil)), &vErr)
	assert.Equal(t, "item_name", vErr.Field)

	require.ErrorAs(t, cart.Add(line("Tea", 1, "-20", nil)), &vErr)
	assert.Equal(t, "unit_price", vErr.Field)

	require.ErrorAs(t, cart.Add(line("Tea", 1, "9.999", nil)), &vErr)
	assert.Equal(t, "unit_price", vErr.Field)
	assert.Equal(t, "must have at most 2 decimal places", vErr.Message)

	require.ErrorAs(t, cart.Add(line("Tea", 1, "10000000000.00", nil)), &vErr)
	assert.Equal(t, "unit_price", vErr.Field)

	require.ErrorAs(t, cart.Add(line("Tea", 1, "20", dp("1000"))), &vErr)
	assert.Equal(t, "tax_percent", vErr.Field)

	require.ErrorAs(t, cart.Add(line("Tea", 1, "20", dp("5.125"))), &vErr)
	assert.Equal(t, "tax_percent", vErr.Field)

	assert.Equal(t, 0, cart.Len())
}

func TestCart_AddMenuItemSnapshotsPriceAndTax(t *testing.T) {
	cat := "Beverages"
	item := dto.MenuItemResponse{ID: 7, ItemName: "Masala Chai", Category: &cat, Price: d("25"), TaxPercent: d("12")}

	cart := service.NewCart(nil)
	require.NoError(t, cart.AddMenuItem(item, 3))

	// A later menu change must not reach the line already in the cart.
	item.Price = d("40")

	l := cart.Lines()[0]
	require.NotNil(t, l.ItemID)
	assert.Equal(t, uint(7), *l.ItemID)
	assert.Equal(t, 3, l.Quantity)
	assertMoney(t, "25.00", l.UnitPrice)
	require.NotNil(t, l.TaxPercent)
	assertMoney(t, "12.00", *l.TaxPercent)
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	cart := service.NewCart([]dto.CartLine{line("Tea", 1, "20", nil)})
	lines := cart.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}
