package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderMode is where the order is served.
type OrderMode string

const (
	ModeDineIn   OrderMode = "Dine-In"
	ModeTakeaway OrderMode = "Takeaway"
)

func (m OrderMode) Valid() bool {
	return m == ModeDineIn || m == ModeTakeaway
}

// PaymentMethod is how the customer settled the bill.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
	PaymentUPI  PaymentMethod = "UPI"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

// Order is the immutable header of a placed bill.
// All amounts are already rounded to two decimals by the pricing engine.
type Order struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"`
	Mode           OrderMode       `gorm:"type:varchar(20);not null"`
	PaymentMethod  PaymentMethod   `gorm:"type:varchar(10);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time       `gorm:"not null;index"`

	Lines []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
}

// OrderLine snapshots the item name, price and tax at order time.
// ItemID has no foreign key: menu imports wipe the menu table
// and historical lines must survive that.
type OrderLine struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	OrderID    uint            `gorm:"not null;index"`
	ItemID     *uint
	ItemName   string          `gorm:"not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxPercent decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	LineTotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
