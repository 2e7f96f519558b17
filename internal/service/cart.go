package service

import (
	"fmt"
	"strings"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
)

// Cart is the in-progress order of one session. The caller owns it and
// passes its lines to PriceCart; nothing here touches storage.
type Cart struct {
	lines []dto.CartLine
}

// NewCart starts a cart from previously held lines (nil for an empty cart).
func NewCart(lines []dto.CartLine) *Cart {
	c := &Cart{}
	c.lines = append(c.lines, lines...)
	return c
}

// Add appends a line after checking its shape.
func (c *Cart) Add(line dto.CartLine) error {
	line.ItemName = strings.TrimSpace(line.ItemName)
	if line.ItemName == "" {
		return invalid("item_name", "is required")
	}
	if line.Quantity <= 0 {
		return invalid("quantity", "must be a positive integer")
	}
	if err := checkPrice("unit_price", line.UnitPrice); err != nil {
		return err
	}
	if line.TaxPercent != nil {
		if err := checkTaxPercent("tax_percent", *line.TaxPercent); err != nil {
			return err
		}
	}
	c.lines = append(c.lines, line)
	return nil
}

// AddMenuItem snapshots the item's current price and tax into a new line.
func (c *Cart) AddMenuItem(item dto.MenuItemResponse, qty int) error {
	id := item.ID
	tax := item.TaxPercent
	if err := c.Add(dto.CartLine{
		ItemID:     &id,
		ItemName:   item.ItemName,
		Quantity:   qty,
		UnitPrice:  item.Price,
		TaxPercent: &tax,
	}); err != nil {
		return fmt.Errorf("add %s: %w", item.ItemName, err)
	}
	return nil
}

// RemoveLast drops the most recent line; it reports false on an empty cart.
func (c *Cart) RemoveLast() bool {
	if len(c.lines) == 0 {
		return false
	}
	c.lines = c.lines[:len(c.lines)-1]
	return true
}

func (c *Cart) Clear() { c.lines = nil }

func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a copy so callers cannot alias the cart's storage.
func (c *Cart) Lines() []dto.CartLine {
	out := make([]dto.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
