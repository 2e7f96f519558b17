package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxPercent applies to menu items and cart lines that carry no tax rate.
var DefaultTaxPercent = decimal.NewFromFloat(5.0)

// MenuItem is one entry of the restaurant menu.
// The whole table is replaced on every import; rows are never edited in place.
type MenuItem struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	ItemName   string          `gorm:"not null;index"`
	Category   *string         `gorm:"index"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxPercent decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt  time.Time
}

// TableName keeps the legacy "menu" table name so existing databases open unchanged.
func (MenuItem) TableName() string { return "menu" }
